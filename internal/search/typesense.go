package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-discover/internal/models"
	"github.com/typesense/typesense-go/v3/typesense"
	"github.com/typesense/typesense-go/v3/typesense/api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Campos esperados na collection de artigos
const (
	fieldURL       = "url"
	fieldTitle     = "title"
	fieldContent   = "content"
	fieldHostname  = "hostname"
	fieldPath      = "path"
	fieldLanguage  = "language"
	fieldThumbnail = "thumbnail"
	fieldAuthor    = "author"
	fieldPublished = "published_date"
)

const typesensePerPage = 10

// TypesenseSearcher busca artigos numa collection Typesense já indexada.
// As engines são ignoradas; "site:" vira filtro por hostname e prefixo de caminho.
type TypesenseSearcher struct {
	client     *typesense.Client
	collection string
}

// NewTypesenseSearcher cria o backend a partir de um cliente configurado
func NewTypesenseSearcher(client *typesense.Client, collection string) *TypesenseSearcher {
	return &TypesenseSearcher{
		client:     client,
		collection: collection,
	}
}

// NewTypesenseClient monta o cliente Typesense a partir dos dados de conexão
func NewTypesenseClient(protocol, host, port, apiKey string) *typesense.Client {
	return typesense.NewClient(
		typesense.WithServer(fmt.Sprintf("%s://%s:%s", protocol, host, port)),
		typesense.WithAPIKey(apiKey),
	)
}

// Search implementa Searcher
func (t *TypesenseSearcher) Search(ctx context.Context, query string, opts Options) (*Response, error) {
	if t.client == nil || t.collection == "" {
		return nil, ErrBackendNotConfigured
	}

	ctx, span := otel.Tracer("search").Start(ctx, "typesense.search", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.String("search.query", query))

	params := buildTypesenseParams(ParseSiteQuery(query), opts)

	result, err := t.client.Collection(t.collection).Documents().Search(ctx, params)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("erro na busca typesense: %w", err)
	}

	out := &Response{Results: make([]models.SearchResult, 0), Suggestions: make([]string, 0)}
	if result.Hits == nil {
		return out, nil
	}

	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		out.Results = append(out.Results, documentToResult(*hit.Document))
	}

	span.SetAttributes(attribute.Int("search.results", len(out.Results)))
	return out, nil
}

// Ping verifica se o Typesense responde
func (t *TypesenseSearcher) Ping(ctx context.Context) error {
	ok, err := t.client.Health(ctx, 2*time.Second)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("typesense não saudável")
	}
	return nil
}

func buildTypesenseParams(sq SiteQuery, opts Options) *api.SearchCollectionParams {
	q := sq.Terms
	if q == "" {
		q = "*"
	}
	queryBy := strings.Join([]string{fieldTitle, fieldContent}, ",")

	page := opts.PageNo
	if page < 1 {
		page = 1
	}
	perPage := typesensePerPage

	filters := make([]string, 0, 3)
	if sq.Host != "" {
		filters = append(filters, fmt.Sprintf("%s:=%s", fieldHostname, sq.Host))
	}
	if sq.Path != "" {
		filters = append(filters, fmt.Sprintf("%s:%s*", fieldPath, sq.Path))
	}
	if opts.Language != "" {
		filters = append(filters, fmt.Sprintf("%s:=%s", fieldLanguage, opts.Language))
	}

	params := &api.SearchCollectionParams{
		Q:       &q,
		QueryBy: &queryBy,
		Page:    &page,
		PerPage: &perPage,
	}
	if len(filters) > 0 {
		filterBy := strings.Join(filters, " && ")
		params.FilterBy = &filterBy
	}
	return params
}

func documentToResult(doc map[string]interface{}) models.SearchResult {
	return models.SearchResult{
		URL:           getString(doc, fieldURL),
		Title:         getString(doc, fieldTitle),
		Content:       getString(doc, fieldContent),
		Thumbnail:     getString(doc, fieldThumbnail),
		Author:        getString(doc, fieldAuthor),
		Engine:        "typesense",
		PublishedDate: getString(doc, fieldPublished),
	}
}

func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
