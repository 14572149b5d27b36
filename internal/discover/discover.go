// Package discover monta o feed de artigos: sorteia domínios, tópicos e
// subreddits, dispara as buscas em paralelo e mistura os resultados.
package discover

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/prefeitura-rio/app-discover/internal/models"
	"github.com/prefeitura-rio/app-discover/internal/search"
	"github.com/prefeitura-rio/app-discover/internal/utils"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// Modos aceitos em ?mode=
const (
	ModeNormal  = "normal"
	ModePreview = "preview"
)

const (
	normalDomains    = 20
	normalTopics     = 4
	normalSubreddits = 5
	hackerNewsTopics = 2
	previewDomains   = 10
	resultsPerQuery  = 3
	maxPerHostname   = 3
)

// ParseMode converte o parâmetro da query. Vazio vira normal; qualquer valor
// diferente de "normal" cai no preview.
func ParseMode(raw string) string {
	switch strings.TrimSpace(raw) {
	case "", ModeNormal:
		return ModeNormal
	default:
		return ModePreview
	}
}

// Option configura o Orchestrator
type Option func(*Orchestrator)

// WithRand define a fonte de aleatoriedade (útil em testes)
func WithRand(r *rand.Rand) Option {
	return func(o *Orchestrator) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithSources substitui as listas embutidas. Listas que não passam em
// Sources.Validate são ignoradas e as embutidas continuam valendo.
func WithSources(s Sources) Option {
	return func(o *Orchestrator) {
		if err := s.Validate(); err != nil {
			log.WithError(err).Warn("fontes do discover ignoradas")
			return
		}
		o.sources = s.clone()
	}
}

// WithSearchOptions define engines, página e idioma das consultas
func WithSearchOptions(opts search.Options) Option {
	return func(o *Orchestrator) {
		o.searchOpts = opts
	}
}

// Orchestrator executa o discover sobre um search.Searcher
type Orchestrator struct {
	searcher   search.Searcher
	sources    Sources
	searchOpts search.Options

	mu  sync.Mutex
	rng *rand.Rand
}

// New cria o orchestrator com as listas embutidas e engines "bing news"
func New(searcher search.Searcher, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		searcher: searcher,
		sources:  DefaultSources(),
		searchOpts: search.Options{
			Engines:  []string{"bing news"},
			PageNo:   1,
			Language: "en",
		},
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Discover executa o modo pedido. Qualquer falha de busca aborta a
// requisição inteira, sem resultados parciais.
func (o *Orchestrator) Discover(ctx context.Context, mode string) ([]models.SearchResult, error) {
	ctx, span := otel.Tracer("discover").Start(ctx, "discover.run")
	defer span.End()
	span.SetAttributes(attribute.String("discover.mode", mode))

	var (
		results []models.SearchResult
		err     error
	)
	if mode == ModeNormal {
		results, err = o.normal(ctx)
	} else {
		results, err = o.preview(ctx)
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("discover.results", len(results)))
	return results, nil
}

func (o *Orchestrator) normal(ctx context.Context) ([]models.SearchResult, error) {
	groups, err := o.fanOut(ctx, o.normalQueries())
	if err != nil {
		return nil, err
	}

	merged := withURL(flatten(groups))

	o.mu.Lock()
	o.rng.Shuffle(len(merged), func(i, j int) { merged[i], merged[j] = merged[j], merged[i] })
	o.mu.Unlock()

	return DedupByHostname(merged, maxPerHostname), nil
}

// normalQueries sorteia as listas e monta as consultas na ordem: domínios
// (domínio i com o tópico i mod 4), subreddits e Hacker News com os dois
// primeiros tópicos sorteados.
func (o *Orchestrator) normalQueries() []string {
	o.mu.Lock()
	domains := o.sample(o.sources.Domains, normalDomains)
	topics := o.sample(o.sources.Topics, normalTopics)
	subreddits := o.sample(o.sources.Subreddits, normalSubreddits)
	o.mu.Unlock()

	queries := make([]string, 0, len(domains)+len(subreddits)+hackerNewsTopics)
	for i, domain := range domains {
		queries = append(queries, fmt.Sprintf("site:%s %s", domain, topics[i%len(topics)]))
	}
	for _, subreddit := range subreddits {
		queries = append(queries, "site:reddit.com/r/"+subreddit)
	}
	for _, topic := range topics[:min(hackerNewsTopics, len(topics))] {
		queries = append(queries, "site:news.ycombinator.com "+topic)
	}
	return queries
}

func (o *Orchestrator) preview(ctx context.Context) ([]models.SearchResult, error) {
	o.mu.Lock()
	domains := o.sample(o.sources.Domains, previewDomains)
	queries := make([]string, 0, len(domains))
	for _, domain := range domains {
		topic := o.sources.Topics[o.rng.Intn(len(o.sources.Topics))]
		queries = append(queries, fmt.Sprintf("site:%s %s", domain, topic))
	}
	o.mu.Unlock()

	groups, err := o.fanOut(ctx, queries)
	if err != nil {
		return nil, err
	}
	return withURL(flatten(groups)), nil
}

// sample embaralha uma cópia da lista e devolve os n primeiros.
// Deve ser chamado com o.mu travado.
func (o *Orchestrator) sample(list []string, n int) []string {
	shuffled := append([]string(nil), list...)
	o.rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return shuffled[:min(n, len(shuffled))]
}

// fanOut executa todas as consultas em paralelo. O resultado i corresponde à
// query i, com no máximo resultsPerQuery itens.
func (o *Orchestrator) fanOut(ctx context.Context, queries []string) ([][]models.SearchResult, error) {
	groups := make([][]models.SearchResult, len(queries))
	g, gctx := errgroup.WithContext(ctx)

	for i, query := range queries {
		g.Go(func() error {
			resp, err := o.searcher.Search(gctx, query, o.searchOpts)
			if err != nil {
				return fmt.Errorf("erro na busca %q: %w", query, err)
			}
			if resp == nil {
				return nil
			}
			groups[i] = resp.Results[:min(resultsPerQuery, len(resp.Results))]
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.WithField("queries", len(queries)).Debug("buscas do discover concluídas")
	return groups, nil
}

// DedupByHostname mantém no máximo limit itens por hostname, na ordem dada.
// Itens cuja URL não tem hostname legível entram sempre e não contam.
func DedupByHostname(items []models.SearchResult, limit int) []models.SearchResult {
	counts := make(map[string]int)
	out := make([]models.SearchResult, 0, len(items))

	for _, item := range items {
		host, err := utils.Hostname(item.URL)
		if err != nil {
			out = append(out, item)
			continue
		}
		if counts[host] < limit {
			counts[host]++
			out = append(out, item)
		}
	}
	return out
}

func flatten(groups [][]models.SearchResult) []models.SearchResult {
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	out := make([]models.SearchResult, 0, total)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func withURL(items []models.SearchResult) []models.SearchResult {
	out := items[:0]
	for _, item := range items {
		if item.HasURL() {
			out = append(out, item)
		}
	}
	return out
}
