// Package dataset holds the currently loaded transaction snapshot.
// Snapshots are immutable once published; a new load replaces the
// previous one wholesale, so readers never observe a partial update.
package dataset

import (
	"sync"
	"time"

	"github.com/fin-tools/expense-atlas/pkg/models/domain"
)

type Snapshot struct {
	Transactions []domain.Transaction
	Origin       string
	LoadedAt     time.Time
}

type Store struct {
	mu   sync.RWMutex
	snap *Snapshot
}

func NewStore() *Store {
	return &Store{}
}

// Replace publishes a new snapshot, discarding the previous one.
func (s *Store) Replace(txs []domain.Transaction, origin string) {
	snap := &Snapshot{
		Transactions: txs,
		Origin:       origin,
		LoadedAt:     time.Now(),
	}
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

// Current returns the published snapshot, or false when nothing has
// been loaded yet.
func (s *Store) Current() (*Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil, false
	}
	return s.snap, true
}
