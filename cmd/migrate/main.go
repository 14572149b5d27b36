package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/prefeitura-rio/app-discover/internal/config"
	"github.com/prefeitura-rio/app-discover/internal/index"
	log "github.com/sirupsen/logrus"
	"github.com/typesense/typesense-go/v3/typesense"
)

var (
	collection = flag.String("collection", "", "Collection de artigos (default: TYPESENSE_COLLECTION)")
	jsonOutput = flag.Bool("json", false, "Saída em formato JSON")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Uso: %s <comando> [opções]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Comandos disponíveis:\n")
		fmt.Fprintf(os.Stderr, "  ensure    Cria a collection de artigos se ela não existe\n")
		fmt.Fprintf(os.Stderr, "  status    Mostra a collection e o número de documentos\n")
		fmt.Fprintf(os.Stderr, "  schema    Imprime o schema da collection\n")
		fmt.Fprintf(os.Stderr, "\nOpções:\n")
		flag.PrintDefaults()
	}

	if len(os.Args) < 2 {
		flag.Usage()
		os.Exit(1)
	}

	command := os.Args[1]
	os.Args = append(os.Args[:1], os.Args[2:]...)
	flag.Parse()

	cfg := config.LoadConfig()

	name := *collection
	if name == "" {
		name = cfg.TypesenseCollection
	}

	typesenseClient := typesense.NewClient(
		typesense.WithServer(fmt.Sprintf("%s://%s:%s", cfg.TypesenseProtocol, cfg.TypesenseHost, cfg.TypesensePort)),
		typesense.WithAPIKey(cfg.TypesenseAPIKey),
		typesense.WithConnectionTimeout(time.Minute),
	)

	ctx := context.Background()

	switch command {
	case "ensure":
		cmdEnsure(ctx, typesenseClient, name)
	case "status":
		cmdStatus(ctx, typesenseClient, name)
	case "schema":
		printJSON(index.ArticlesSchema(name))
	default:
		fmt.Fprintf(os.Stderr, "Comando desconhecido: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

func cmdEnsure(ctx context.Context, client *typesense.Client, name string) {
	created, err := index.EnsureCollection(ctx, client, name)
	if err != nil {
		log.Fatalf("Erro ao garantir collection: %v", err)
	}

	if *jsonOutput {
		printJSON(map[string]interface{}{"collection": name, "created": created, "schema_version": index.SchemaVersion})
		return
	}

	if created {
		fmt.Printf("✅ Collection %s criada (schema %s)\n", name, index.SchemaVersion)
	} else {
		fmt.Printf("Collection %s já existe\n", name)
	}
}

func cmdStatus(ctx context.Context, client *typesense.Client, name string) {
	resp, err := client.Collection(name).Retrieve(ctx)
	if err != nil {
		log.Fatalf("Erro ao consultar collection: %v", err)
	}

	if *jsonOutput {
		printJSON(resp)
		return
	}

	fmt.Printf("Collection: %s\n", resp.Name)
	if resp.NumDocuments != nil {
		fmt.Printf("Documentos: %d\n", *resp.NumDocuments)
	}
	fmt.Printf("Campos: %d\n", len(resp.Fields))
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Erro ao serializar JSON: %v", err)
	}
	fmt.Println(string(data))
}
