package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-discover/internal/models"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// SearxNGClient consulta a API JSON de uma instância SearxNG
type SearxNGClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewSearxNGClient cria um cliente para a instância em baseURL
func NewSearxNGClient(baseURL string, timeout time.Duration) *SearxNGClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SearxNGClient{
		baseURL:    strings.TrimSuffix(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Search implementa Searcher
func (s *SearxNGClient) Search(ctx context.Context, query string, opts Options) (*Response, error) {
	if s.baseURL == "" {
		return nil, ErrBackendNotConfigured
	}

	ctx, span := otel.Tracer("search").Start(ctx, "searxng.search", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.String("search.query", query))

	endpoint := s.baseURL + "/search?" + buildSearxNGParams(query, opts).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("erro ao consultar searxng: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		span.SetStatus(codes.Error, resp.Status)
		return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	if !gjson.ValidBytes(body) {
		return nil, ErrInvalidResponse
	}

	result := parseSearxNGBody(body)
	span.SetAttributes(attribute.Int("search.results", len(result.Results)))
	return result, nil
}

func buildSearxNGParams(query string, opts Options) url.Values {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	if len(opts.Engines) > 0 {
		params.Set("engines", strings.Join(opts.Engines, ","))
	}
	if opts.PageNo > 0 {
		params.Set("pageno", strconv.Itoa(opts.PageNo))
	}
	if opts.Language != "" {
		params.Set("language", opts.Language)
	}
	return params
}

func parseSearxNGBody(body []byte) *Response {
	parsed := gjson.ParseBytes(body)
	out := &Response{
		Results:     make([]models.SearchResult, 0),
		Suggestions: make([]string, 0),
	}

	parsed.Get("results").ForEach(func(_, item gjson.Result) bool {
		out.Results = append(out.Results, models.SearchResult{
			URL:           item.Get("url").String(),
			Title:         item.Get("title").String(),
			Content:       item.Get("content").String(),
			Thumbnail:     item.Get("thumbnail").String(),
			ImgSrc:        item.Get("img_src").String(),
			Author:        item.Get("author").String(),
			Engine:        item.Get("engine").String(),
			PublishedDate: item.Get("publishedDate").String(),
		})
		return true
	})

	parsed.Get("suggestions").ForEach(func(_, item gjson.Result) bool {
		out.Suggestions = append(out.Suggestions, item.String())
		return true
	})

	return out
}

// Ping consulta o endpoint /healthz da instância
func (s *SearxNGClient) Ping(ctx context.Context) error {
	if s.baseURL == "" {
		return ErrBackendNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("erro ao criar request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao consultar searxng: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}
	return nil
}
