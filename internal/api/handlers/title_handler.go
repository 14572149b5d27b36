package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prefeitura-rio/app-discover/internal/llm"
	"github.com/prefeitura-rio/app-discover/internal/logging"
	"github.com/prefeitura-rio/app-discover/internal/models"
)

// TitleGenerator devolve o título de um artigo identificado pela URL
type TitleGenerator interface {
	Generate(ctx context.Context, url, content string) (string, error)
}

// TitleHandler gerencia o endpoint de geração de títulos
type TitleHandler struct {
	generator TitleGenerator
	validator *validator.Validate
}

// NewTitleHandler cria um novo handler de títulos
func NewTitleHandler(generator TitleGenerator) *TitleHandler {
	return &TitleHandler{
		generator: generator,
		validator: validator.New(),
	}
}

// GenerateTitle godoc
// @Summary Gera título para um artigo
// @Description Gera um título curto (até 10 palavras) a partir do conteúdo usando o primeiro modelo de linguagem disponível. Títulos ficam em cache por URL.
// @Tags title
// @Accept json
// @Produce json
// @Param request body models.GenerateTitleRequest true "Conteúdo e URL do artigo"
// @Success 200 {object} models.GenerateTitleResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /generate-title [post]
func (h *TitleHandler) GenerateTitle(c *gin.Context) {
	var req models.GenerateTitleRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Content and URL are required"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Content and URL are required"})
		return
	}

	title, err := h.generator.Generate(c.Request.Context(), req.URL, req.Content)
	if err != nil {
		if errors.Is(err, llm.ErrNoProvider) {
			logging.FromGin(c).Warn("nenhum provedor de LLM configurado")
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "No LLM provider available"})
			return
		}
		logging.FromGin(c).WithError(err).WithField("url", req.URL).Error("erro ao gerar título")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to generate title"})
		return
	}

	c.JSON(http.StatusOK, models.GenerateTitleResponse{Title: title})
}
