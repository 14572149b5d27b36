package index

import (
	"sync/atomic"
	"time"
)

// Stats acumula o progresso de uma execução
type Stats struct {
	Total     int64
	Processed int64
	Skipped   int64
	Errors    int64
	StartTime time.Time
}

// Snapshot copia os contadores de forma segura
func (s *Stats) Snapshot() Stats {
	return Stats{
		Total:     atomic.LoadInt64(&s.Total),
		Processed: atomic.LoadInt64(&s.Processed),
		Skipped:   atomic.LoadInt64(&s.Skipped),
		Errors:    atomic.LoadInt64(&s.Errors),
		StartTime: s.StartTime,
	}
}
