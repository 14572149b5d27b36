package index

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
)

// TitleFunc gera um título para o conteúdo. Título vazio significa que não
// foi possível gerar e o documento é ignorado.
type TitleFunc func(ctx context.Context, content string) (string, error)

// RetitleConfig controla o preenchimento de títulos
type RetitleConfig struct {
	BatchSize int
	Workers   int
	DryRun    bool
	Force     bool // regera mesmo documentos que já têm título
}

// Retitler percorre a collection e preenche títulos faltantes
type Retitler struct {
	store    Store
	generate TitleFunc
	config   RetitleConfig
}

// NewRetitler cria o processo de preenchimento
func NewRetitler(store Store, generate TitleFunc, cfg RetitleConfig) *Retitler {
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 50
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Retitler{store: store, generate: generate, config: cfg}
}

// Run percorre todas as páginas. Só falha se a listagem falhar.
func (r *Retitler) Run(ctx context.Context) (Stats, error) {
	stats := &Stats{StartTime: time.Now()}

	docChan := make(chan map[string]interface{}, r.config.Workers*2)
	var wg sync.WaitGroup

	for i := 0; i < r.config.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for doc := range docChan {
				if err := r.processDocument(ctx, doc, stats); err != nil {
					log.WithError(err).WithField("worker", workerID).Warn("erro ao preencher título")
					atomic.AddInt64(&stats.Errors, 1)
				}
			}
		}(i)
	}

	var listErr error
	for page := 1; ; page++ {
		docs, total, err := r.store.Page(ctx, page, r.config.BatchSize)
		if err != nil {
			listErr = err
			break
		}
		if page == 1 {
			atomic.StoreInt64(&stats.Total, int64(total))
		}
		if len(docs) == 0 {
			break
		}

		for _, doc := range docs {
			if !r.config.Force && strings.TrimSpace(stringField(doc, FieldTitle)) != "" {
				atomic.AddInt64(&stats.Skipped, 1)
				continue
			}
			docChan <- doc
		}

		snap := stats.Snapshot()
		log.WithFields(log.Fields{
			"page":      page,
			"processed": snap.Processed,
			"skipped":   snap.Skipped,
			"errors":    snap.Errors,
		}).Info("progresso")
	}

	close(docChan)
	wg.Wait()

	if listErr != nil {
		return stats.Snapshot(), fmt.Errorf("erro ao listar documentos: %w", listErr)
	}
	return stats.Snapshot(), nil
}

func (r *Retitler) processDocument(ctx context.Context, doc map[string]interface{}, stats *Stats) error {
	content := stringField(doc, FieldContent)
	if strings.TrimSpace(content) == "" {
		atomic.AddInt64(&stats.Skipped, 1)
		return nil
	}

	title, err := r.generate(ctx, content)
	if err != nil {
		return err
	}
	if title == "" {
		atomic.AddInt64(&stats.Skipped, 1)
		return nil
	}

	if r.config.DryRun {
		log.WithFields(log.Fields{"id": doc[FieldID], "title": title}).Info("[DRY-RUN] atualizaria título")
		atomic.AddInt64(&stats.Processed, 1)
		return nil
	}

	updated := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		updated[k] = v
	}
	updated[FieldTitle] = title

	if err := r.store.Upsert(ctx, updated); err != nil {
		return err
	}
	atomic.AddInt64(&stats.Processed, 1)
	return nil
}
