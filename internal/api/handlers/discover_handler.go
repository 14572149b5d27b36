package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-discover/internal/discover"
	"github.com/prefeitura-rio/app-discover/internal/logging"
	"github.com/prefeitura-rio/app-discover/internal/models"
)

// Discoverer monta o feed de artigos
type Discoverer interface {
	Discover(ctx context.Context, mode string) ([]models.SearchResult, error)
}

// DiscoverHandler gerencia o endpoint de discover
type DiscoverHandler struct {
	discoverer Discoverer
}

// NewDiscoverHandler cria um novo handler de discover
func NewDiscoverHandler(discoverer Discoverer) *DiscoverHandler {
	return &DiscoverHandler{discoverer: discoverer}
}

// Discover godoc
// @Summary Feed de artigos sorteados
// @Description Sorteia domínios, tópicos e subreddits, busca no agregador e devolve os links misturados. No modo normal limita a 3 itens por hostname; o modo preview faz 10 buscas sem deduplicação.
// @Tags discover
// @Produce json
// @Param mode query string false "normal ou preview" default(normal)
// @Success 200 {object} models.DiscoverResponse
// @Failure 500 {object} models.MessageResponse
// @Router /discover [get]
func (h *DiscoverHandler) Discover(c *gin.Context) {
	mode := discover.ParseMode(c.Query("mode"))

	blogs, err := h.discoverer.Discover(c.Request.Context(), mode)
	if err != nil {
		logging.FromGin(c).WithError(err).WithField("mode", mode).Error("erro no discover")
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "An error has occurred"})
		return
	}

	if blogs == nil {
		blogs = []models.SearchResult{}
	}

	logging.FromGin(c).WithField("mode", mode).WithField("blogs", len(blogs)).Info("discover concluído")
	c.JSON(http.StatusOK, models.DiscoverResponse{Blogs: blogs})
}
