package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger é implementado pelos backends de busca
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadyChecker informa se há modelo de linguagem disponível
type ReadyChecker interface {
	Ready(ctx context.Context) bool
}

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct {
	search Pinger
	llm    ReadyChecker
}

// NewHealthHandler cria um novo handler de health check
func NewHealthHandler(search Pinger, llm ReadyChecker) *HealthHandler {
	return &HealthHandler{
		search: search,
		llm:    llm,
	}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness probe endpoint
// @Description Verifica se a aplicação está viva (sem checagem de dependências externas)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness probe endpoint
// @Description Verifica se o backend de busca responde e se algum modelo de linguagem pode ser resolvido
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "ready",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if h.search != nil && h.search.Ping(ctx) == nil {
		response.Checks["search"] = "ok"
	} else {
		response.Checks["search"] = "failed"
		response.Status = "not_ready"
		response.Error = "Search backend not available"
	}

	if h.llm != nil && h.llm.Ready(ctx) {
		response.Checks["llm"] = "ok"
	} else {
		response.Checks["llm"] = "failed"
		response.Status = "not_ready"
		if response.Error == "" {
			response.Error = "No LLM provider available"
		}
	}

	statusCode := http.StatusOK
	if response.Status == "not_ready" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}
