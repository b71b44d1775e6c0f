package api

import (
	"context"
	"sync"
)

// MemoryHistory is the in-memory HistoryStore used when no database is
// configured. It keeps the most recent evaluations up to a fixed cap.
type MemoryHistory struct {
	mu   sync.RWMutex
	evts []Evaluation
	cap  int
}

// NewMemoryHistory creates an in-memory history retaining up to max entries.
func NewMemoryHistory(max int) *MemoryHistory {
	if max <= 0 {
		max = 1000
	}
	return &MemoryHistory{cap: max}
}

// Record appends an evaluation, evicting the oldest past the cap.
func (m *MemoryHistory) Record(_ context.Context, e Evaluation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.evts = append(m.evts, e)
	if len(m.evts) > m.cap {
		m.evts = m.evts[len(m.evts)-m.cap:]
	}
	return nil
}

// Recent returns up to limit evaluations, newest first.
func (m *MemoryHistory) Recent(_ context.Context, limit int) ([]Evaluation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if limit > len(m.evts) {
		limit = len(m.evts)
	}
	out := make([]Evaluation, 0, limit)
	for i := len(m.evts) - 1; i >= len(m.evts)-limit; i-- {
		out = append(out, m.evts[i])
	}
	return out, nil
}
