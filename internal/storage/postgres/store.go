// Package postgres persists run results to a postgres database.
package postgres

import (
	"context"
	"database/sql"

	"github.com/paystream/payments-engine/internal/interfaces"
	"github.com/paystream/payments-engine/internal/models"
)

// Store writes snapshots and ledger entries through database/sql. The caller
// supplies a *sql.DB opened with the lib/pq driver.
type Store struct {
	db *sql.DB
}

// NewStore wraps an open database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// SaveRun writes every account view and ledger entry in a single database
// transaction. Re-running with the same clients or transaction ids updates
// the existing rows.
func (s *Store) SaveRun(ctx context.Context, views []models.AccountView, entries []models.LedgerEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	const accountQuery = `INSERT INTO account_snapshots (client_id, available, held, total, locked)
	VALUES ($1,$2,$3,$4,$5)
	ON CONFLICT (client_id) DO UPDATE
	SET available = EXCLUDED.available, held = EXCLUDED.held,
	    total = EXCLUDED.total, locked = EXCLUDED.locked`

	for _, v := range views {
		if _, err = tx.ExecContext(ctx, accountQuery,
			v.ClientID, v.Available, v.Held, v.Total, v.Locked); err != nil {
			return err
		}
	}

	const entryQuery = `INSERT INTO ledger_entries (tx_id, client_id, amount, kind, status)
	VALUES ($1,$2,$3,$4,$5)
	ON CONFLICT (tx_id) DO UPDATE SET status = EXCLUDED.status`

	for _, e := range entries {
		if _, err = tx.ExecContext(ctx, entryQuery,
			e.TxID, e.ClientID, e.Amount, e.Kind.String(), e.Status.String()); err != nil {
			return err
		}
	}

	err = tx.Commit()
	return err
}

// GetSnapshot reads back the persisted account views, ordered by client id.
func (s *Store) GetSnapshot(ctx context.Context) ([]models.AccountView, error) {
	const query = `SELECT client_id, available, held, total, locked
	FROM account_snapshots ORDER BY client_id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []models.AccountView
	for rows.Next() {
		var v models.AccountView
		if err := rows.Scan(&v.ClientID, &v.Available, &v.Held, &v.Total, &v.Locked); err != nil {
			return nil, err
		}
		views = append(views, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}

var _ interfaces.SnapshotStore = (*Store)(nil)
