package index

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prefeitura-rio/app-discover/internal/discover"
	"github.com/prefeitura-rio/app-discover/internal/search"
	log "github.com/sirupsen/logrus"
)

// Queries gera uma consulta por par domínio/tópico e uma por subreddit
func Queries(s discover.Sources) []string {
	queries := make([]string, 0, len(s.Domains)*len(s.Topics)+len(s.Subreddits))
	for _, domain := range s.Domains {
		for _, topic := range s.Topics {
			queries = append(queries, fmt.Sprintf("site:%s %s", domain, topic))
		}
	}
	for _, subreddit := range s.Subreddits {
		queries = append(queries, "site:reddit.com/r/"+subreddit)
	}
	return queries
}

// Ingester busca no agregador e grava os resultados na collection
type Ingester struct {
	searcher search.Searcher
	store    Store
	opts     search.Options
	workers  int
	dryRun   bool
	now      func() time.Time
}

// NewIngester cria a ingestão com o número de workers informado
func NewIngester(searcher search.Searcher, store Store, opts search.Options, workers int, dryRun bool) *Ingester {
	if workers < 1 {
		workers = 1
	}
	return &Ingester{
		searcher: searcher,
		store:    store,
		opts:     opts,
		workers:  workers,
		dryRun:   dryRun,
		now:      time.Now,
	}
}

// Run processa todas as consultas. Erros de consultas individuais são
// contados e registrados sem interromper as demais.
func (in *Ingester) Run(ctx context.Context, queries []string) Stats {
	stats := &Stats{StartTime: in.now(), Total: int64(len(queries))}

	queryChan := make(chan string, in.workers*2)
	var wg sync.WaitGroup

	for i := 0; i < in.workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for query := range queryChan {
				if err := in.processQuery(ctx, query, stats); err != nil {
					log.WithError(err).WithField("worker", workerID).Warn("erro na ingestão")
					atomic.AddInt64(&stats.Errors, 1)
				}
			}
		}(i)
	}

	for _, query := range queries {
		if ctx.Err() != nil {
			break
		}
		queryChan <- query
	}
	close(queryChan)
	wg.Wait()

	return stats.Snapshot()
}

func (in *Ingester) processQuery(ctx context.Context, query string, stats *Stats) error {
	resp, err := in.searcher.Search(ctx, query, in.opts)
	if err != nil {
		return fmt.Errorf("erro na busca %q: %w", query, err)
	}

	for _, result := range resp.Results {
		doc, err := FromResult(result, in.opts.Language, in.now())
		if err != nil {
			atomic.AddInt64(&stats.Skipped, 1)
			continue
		}

		if in.dryRun {
			log.WithField("url", doc[FieldURL]).Debug("[DRY-RUN] gravaria documento")
			atomic.AddInt64(&stats.Processed, 1)
			continue
		}

		if err := in.store.Upsert(ctx, doc); err != nil {
			return err
		}
		atomic.AddInt64(&stats.Processed, 1)
	}
	return nil
}
