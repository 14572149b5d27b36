package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/prefeitura-rio/app-discover/internal/config"
	"github.com/prefeitura-rio/app-discover/internal/discover"
	"github.com/prefeitura-rio/app-discover/internal/index"
	"github.com/prefeitura-rio/app-discover/internal/llm"
	"github.com/prefeitura-rio/app-discover/internal/logging"
	"github.com/prefeitura-rio/app-discover/internal/search"
	"github.com/prefeitura-rio/app-discover/internal/title"
	log "github.com/sirupsen/logrus"
)

func main() {
	mode := flag.String("mode", "all", "Modo: all, ingest, titles")
	collection := flag.String("collection", "", "Collection alvo (default: TYPESENSE_COLLECTION)")
	batchSize := flag.Int("batch", 50, "Documentos por página")
	workers := flag.Int("workers", 3, "Workers paralelos")
	dryRun := flag.Bool("dry-run", false, "Simular sem alterar")
	force := flag.Bool("force", false, "Regerar títulos mesmo quando já existem")

	flag.Parse()

	cfg := config.LoadConfig()
	if err := logging.Setup(cfg.LogLevel, false, ""); err != nil {
		log.WithError(err).Warn("Erro ao configurar logs")
	}

	name := *collection
	if name == "" {
		name = cfg.TypesenseCollection
	}

	client := search.NewTypesenseClient(cfg.TypesenseProtocol, cfg.TypesenseHost, cfg.TypesensePort, cfg.TypesenseAPIKey)
	store := index.NewTypesenseStore(client, name)
	ctx := context.Background()

	log.WithFields(log.Fields{
		"collection": name,
		"mode":       *mode,
		"batch":      *batchSize,
		"workers":    *workers,
		"dry_run":    *dryRun,
	}).Info("Iniciando reindexação")

	if !*dryRun {
		if _, err := index.EnsureCollection(ctx, client, name); err != nil {
			log.Fatalf("Erro ao garantir collection: %v", err)
		}
	}

	switch *mode {
	case "all":
		runIngest(ctx, cfg, store, *workers, *dryRun)
		runTitles(ctx, cfg, store, *batchSize, *workers, *dryRun, *force)
	case "ingest":
		runIngest(ctx, cfg, store, *workers, *dryRun)
	case "titles":
		runTitles(ctx, cfg, store, *batchSize, *workers, *dryRun, *force)
	default:
		fmt.Fprintf(os.Stderr, "Modo desconhecido: %s\n", *mode)
		flag.Usage()
		os.Exit(1)
	}
}

// runIngest consulta o SearxNG com as listas do discover e grava os artigos
func runIngest(ctx context.Context, cfg *config.Config, store index.Store, workers int, dryRun bool) {
	if cfg.SearxNGURL == "" {
		log.Fatal("SEARXNG_API_URL é obrigatória para ingestão")
	}

	searcher := search.NewSearxNGClient(cfg.SearxNGURL, cfg.SearchTimeout)
	opts := search.Options{Engines: cfg.SearchEngines, PageNo: 1, Language: cfg.SearchLanguage}

	stats := index.NewIngester(searcher, store, opts, workers, dryRun).
		Run(ctx, index.Queries(discover.DefaultSources()))
	printStats("ingestão", stats)
}

// runTitles preenche títulos vazios com a chain descritiva
func runTitles(ctx context.Context, cfg *config.Config, store index.Store, batchSize, workers int, dryRun, force bool) {
	registry := llm.NewRegistry(ctx, &cfg.LLM)
	resolver := llm.NewResolver(registry, &cfg.LLM, llm.DefaultPreference, registry.HTTPClient())

	selection, err := resolver.Resolve(ctx)
	if err != nil {
		log.Fatalf("Erro ao resolver modelo: %v", err)
	}
	log.WithFields(log.Fields{"provider": selection.Provider, "model": selection.Model}).Info("Modelo selecionado")

	chain := title.NewDescriptiveChain()
	generate := func(ctx context.Context, content string) (string, error) {
		return chain.Generate(ctx, content, selection.Handle)
	}

	stats, err := index.NewRetitler(store, generate, index.RetitleConfig{
		BatchSize: batchSize,
		Workers:   workers,
		DryRun:    dryRun,
		Force:     force,
	}).Run(ctx)
	printStats("títulos", stats)
	if err != nil {
		log.Fatalf("Erro no preenchimento de títulos: %v", err)
	}
}

func printStats(stage string, stats index.Stats) {
	fmt.Printf("\n=== Estatísticas (%s) ===\n", stage)
	fmt.Printf("Total: %d\n", stats.Total)
	fmt.Printf("Processados: %d\n", stats.Processed)
	fmt.Printf("Ignorados: %d\n", stats.Skipped)
	fmt.Printf("Erros: %d\n", stats.Errors)
	fmt.Printf("Duração: %s\n", time.Since(stats.StartTime).Round(time.Second))
}
