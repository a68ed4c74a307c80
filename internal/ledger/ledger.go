// Package ledger tracks every applied deposit and withdrawal by transaction
// id and owns the dispute lifecycle of each entry.
package ledger

import (
	"errors"
	"fmt"
	"sort"

	"github.com/paystream/payments-engine/internal/models"
)

var (
	// ErrDuplicateID means an insertion reused an already recorded id.
	ErrDuplicateID = errors.New("transaction id already recorded")
	// ErrNotFound means no deposit or withdrawal was recorded under the id.
	ErrNotFound = errors.New("transaction id not recorded")
	// ErrBadTransition means the requested status change is not a legal move
	// in the dispute lifecycle.
	ErrBadTransition = errors.New("illegal status transition")
)

// Ledger maps transaction ids to their entries. Entries are never deleted and
// only their status may change after insertion; Get hands out copies so the
// amount, kind and owner stay immutable to callers.
type Ledger struct {
	entries map[uint32]*models.LedgerEntry
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{entries: make(map[uint32]*models.LedgerEntry)}
}

// InsertIfAbsent records a new entry. Reusing a transaction id fails with
// ErrDuplicateID and leaves the original entry untouched.
func (l *Ledger) InsertIfAbsent(entry models.LedgerEntry) error {
	if _, exists := l.entries[entry.TxID]; exists {
		return fmt.Errorf("%w: tx %d", ErrDuplicateID, entry.TxID)
	}
	l.entries[entry.TxID] = &entry
	return nil
}

// Get returns a copy of the entry recorded under the transaction id.
func (l *Ledger) Get(txID uint32) (models.LedgerEntry, bool) {
	entry, ok := l.entries[txID]
	if !ok {
		return models.LedgerEntry{}, false
	}
	return *entry, true
}

// Transition moves the entry to a new status, validating the move first.
func (l *Ledger) Transition(txID uint32, status models.EntryStatus) error {
	entry, ok := l.entries[txID]
	if !ok {
		return fmt.Errorf("%w: tx %d", ErrNotFound, txID)
	}
	if !legalTransition(entry.Status, status) {
		return fmt.Errorf("%w: %s to %s", ErrBadTransition, entry.Status, status)
	}
	entry.Status = status
	return nil
}

func legalTransition(from, to models.EntryStatus) bool {
	switch from {
	case models.StatusNormal:
		return to == models.StatusDisputed
	case models.StatusDisputed:
		return to == models.StatusNormal || to == models.StatusChargedBack
	}
	return false
}

// Len returns the number of recorded entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Entries returns a copy of every entry, sorted by transaction id.
func (l *Ledger) Entries() []models.LedgerEntry {
	entries := make([]models.LedgerEntry, 0, len(l.entries))
	for _, entry := range l.entries {
		entries = append(entries, *entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].TxID < entries[j].TxID
	})
	return entries
}
