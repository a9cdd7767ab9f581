// Package store provides CalculationStore implementations.
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/warp/takehome-engine/generic"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu      sync.RWMutex
	records []generic.Calculation // ascending CreatedAt
	byID    map[generic.CalculationID]int
}

var _ generic.CalculationStore = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		byID: make(map[generic.CalculationID]int),
	}
}

// Append adds a single record. Append-only.
func (m *Memory) Append(_ context.Context, calc generic.Calculation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[calc.ID]; ok {
		return generic.ErrDuplicateCalculation
	}

	// Insert after any record with the same timestamp to keep arrival order
	i := sort.Search(len(m.records), func(i int) bool {
		return m.records[i].CreatedAt.After(calc.CreatedAt)
	})
	m.records = append(m.records, generic.Calculation{})
	copy(m.records[i+1:], m.records[i:])
	m.records[i] = calc
	m.reindexLocked()
	return nil
}

func (m *Memory) Get(_ context.Context, id generic.CalculationID) (generic.Calculation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.byID[id]
	if !ok {
		return generic.Calculation{}, generic.ErrCalculationNotFound
	}
	return m.records[i], nil
}

func (m *Memory) List(_ context.Context, filter generic.CalculationFilter) ([]generic.Calculation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	limit := filter.EffectiveLimit()
	result := []generic.Calculation{}
	for i := len(m.records) - 1; i >= 0 && len(result) < limit; i-- {
		if filter.Kind != "" && m.records[i].Kind != filter.Kind {
			continue
		}
		result = append(result, m.records[i])
	}
	return result, nil
}

func (m *Memory) DeleteBefore(_ context.Context, cutoff time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := sort.Search(len(m.records), func(i int) bool {
		return !m.records[i].CreatedAt.Before(cutoff)
	})
	if n == 0 {
		return 0, nil
	}
	m.records = append([]generic.Calculation{}, m.records[n:]...)
	m.reindexLocked()
	return n, nil
}

func (m *Memory) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = nil
	m.byID = make(map[generic.CalculationID]int)
	return nil
}

func (m *Memory) reindexLocked() {
	for k := range m.byID {
		delete(m.byID, k)
	}
	for i, r := range m.records {
		m.byID[r.ID] = i
	}
}
