package main

import (
	"context"

	_ "github.com/prefeitura-rio/app-discover/docs"
	"github.com/prefeitura-rio/app-discover/internal/api/routes"
	"github.com/prefeitura-rio/app-discover/internal/config"
	"github.com/prefeitura-rio/app-discover/internal/logging"
	"github.com/prefeitura-rio/app-discover/internal/observability"
	log "github.com/sirupsen/logrus"
)

// @title           App Discover API
// @version         1.0
// @description     Feed de artigos sorteados a partir de um agregador de busca e geração de títulos com modelos de linguagem
// @termsOfService  http://swagger.io/terms/

// @contact.name   Prefeitura do Rio de Janeiro
// @contact.url    https://prefeitura.rio
// @contact.email  contato@prefeitura.rio

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

func main() {

	cfg := config.LoadConfig()

	if err := logging.Setup(cfg.LogLevel, cfg.LogToFile, cfg.LogDir); err != nil {
		log.WithError(err).Warn("Erro ao configurar arquivo de log, usando stdout")
	}

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	r := routes.SetupRouter(context.Background(), cfg)

	log.Infof("Servidor iniciado na porta %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}
}
