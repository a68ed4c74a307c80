// Package accounts owns the mapping from client ids to account state.
package accounts

import (
	"sort"

	"github.com/paystream/payments-engine/internal/models"
)

// Store maps client ids to their accounts. Accounts are created lazily on
// first reference and never removed for the lifetime of a run.
type Store struct {
	accounts map[uint16]*models.Account
}

// NewStore creates an empty account store.
func NewStore() *Store {
	return &Store{accounts: make(map[uint16]*models.Account)}
}

// GetOrCreate returns the client's account, creating a zeroed unlocked one on
// first reference.
func (s *Store) GetOrCreate(clientID uint16) *models.Account {
	acct, ok := s.accounts[clientID]
	if !ok {
		acct = models.NewAccount(clientID)
		s.accounts[clientID] = acct
	}
	return acct
}

// Get returns the client's account if it has been referenced before.
func (s *Store) Get(clientID uint16) (*models.Account, bool) {
	acct, ok := s.accounts[clientID]
	return acct, ok
}

// Len returns the number of accounts created so far.
func (s *Store) Len() int {
	return len(s.accounts)
}

// Snapshot returns the rounded view of every account, sorted by client id so
// output is reproducible across runs.
func (s *Store) Snapshot() []models.AccountView {
	views := make([]models.AccountView, 0, len(s.accounts))
	for _, acct := range s.accounts {
		views = append(views, acct.View())
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].ClientID < views[j].ClientID
	})
	return views
}
