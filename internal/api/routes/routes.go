package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-discover/internal/api/handlers"
	"github.com/prefeitura-rio/app-discover/internal/config"
	"github.com/prefeitura-rio/app-discover/internal/discover"
	"github.com/prefeitura-rio/app-discover/internal/llm"
	middlewares "github.com/prefeitura-rio/app-discover/internal/middleware"
	"github.com/prefeitura-rio/app-discover/internal/search"
	"github.com/prefeitura-rio/app-discover/internal/title"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers agrupa os handlers montados no router
type Handlers struct {
	Discover *handlers.DiscoverHandler
	Title    *handlers.TitleHandler
	Health   *handlers.HealthHandler
}

// searchBackend é o Searcher usado pelo discover, com health check
type searchBackend interface {
	search.Searcher
	handlers.Pinger
}

// SetupRouter monta as dependências a partir da configuração e registra as rotas
func SetupRouter(ctx context.Context, cfg *config.Config) *gin.Engine {
	backend := newSearchBackend(cfg)

	orchestrator := discover.New(backend, discover.WithSearchOptions(search.Options{
		Engines:  cfg.SearchEngines,
		PageNo:   1,
		Language: cfg.SearchLanguage,
	}))

	registry := llm.NewRegistry(ctx, &cfg.LLM)
	resolver := llm.NewResolver(registry, &cfg.LLM, llm.DefaultPreference, registry.HTTPClient())
	titleService := title.NewService(resolver, title.NewCache(cfg.TitleCacheMaxSize))

	return NewRouter(Handlers{
		Discover: handlers.NewDiscoverHandler(orchestrator),
		Title:    handlers.NewTitleHandler(titleService),
		Health:   handlers.NewHealthHandler(backend, titleService),
	})
}

// NewRouter registra as rotas sobre handlers já construídos
func NewRouter(h Handlers) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(corsMiddleware())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestTiming())

	r.GET("/liveness", h.Health.Liveness)
	r.GET("/readiness", h.Health.Readiness)

	r.GET("/discover", h.Discover.Discover)
	r.POST("/generate-title", h.Title.GenerateTitle)

	api := r.Group("/api")
	{
		api.GET("/discover", h.Discover.Discover)
		api.POST("/generate-title", h.Title.GenerateTitle)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func newSearchBackend(cfg *config.Config) searchBackend {
	if cfg.SearchBackend == config.SearchBackendTypesense {
		client := search.NewTypesenseClient(cfg.TypesenseProtocol, cfg.TypesenseHost, cfg.TypesensePort, cfg.TypesenseAPIKey)
		log.WithField("collection", cfg.TypesenseCollection).Info("backend de busca: typesense")
		return search.NewTypesenseSearcher(client, cfg.TypesenseCollection)
	}

	if cfg.SearxNGURL == "" {
		log.Warn("SEARXNG_API_URL não configurada, discover vai falhar")
	} else {
		log.WithField("url", cfg.SearxNGURL).Info("backend de busca: searxng")
	}
	return search.NewSearxNGClient(cfg.SearxNGURL, cfg.SearchTimeout)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
