package interfaces

import (
	"context"

	"github.com/paystream/payments-engine/internal/models"
)

// SnapshotStore persists the final state of a processing run: every account
// view plus every ledger entry, atomically.
type SnapshotStore interface {
	SaveRun(ctx context.Context, views []models.AccountView, entries []models.LedgerEntry) error
	GetSnapshot(ctx context.Context) ([]models.AccountView, error)
}
