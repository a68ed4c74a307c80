// Package memory holds the last saved run in process memory. Useful in tests
// and when no database is configured.
package memory

import (
	"context"
	"sync"

	"github.com/paystream/payments-engine/internal/interfaces"
	"github.com/paystream/payments-engine/internal/models"
)

// Store is an in-memory implementation of interfaces.SnapshotStore. It is
// safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	views   []models.AccountView
	entries []models.LedgerEntry
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// SaveRun replaces the stored run with copies of the given slices.
func (s *Store) SaveRun(ctx context.Context, views []models.AccountView, entries []models.LedgerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.views = make([]models.AccountView, len(views))
	copy(s.views, views)
	s.entries = make([]models.LedgerEntry, len(entries))
	copy(s.entries, entries)
	return nil
}

// GetSnapshot returns a copy of the last saved account views.
func (s *Store) GetSnapshot(ctx context.Context) ([]models.AccountView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]models.AccountView, len(s.views))
	copy(views, s.views)
	return views, nil
}

// GetEntries returns a copy of the last saved ledger entries.
func (s *Store) GetEntries(ctx context.Context) ([]models.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]models.LedgerEntry, len(s.entries))
	copy(entries, s.entries)
	return entries, nil
}

var _ interfaces.SnapshotStore = (*Store)(nil)
