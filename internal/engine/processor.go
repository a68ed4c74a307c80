// Package engine applies transaction records to account and ledger state, one
// record at a time in input order.
package engine

import (
	"fmt"

	"github.com/paystream/payments-engine/internal/accounts"
	"github.com/paystream/payments-engine/internal/ledger"
	"github.com/paystream/payments-engine/internal/models"
)

// Processor consumes records strictly in the order they arrive. Each Apply
// either commits the full state change or leaves both stores untouched; a
// rejection never stops the run.
type Processor struct {
	accounts *accounts.Store
	ledger   *ledger.Ledger
}

// NewProcessor wires a processor over the given stores. The processor owns
// both exclusively for the duration of a run.
func NewProcessor(accts *accounts.Store, led *ledger.Ledger) *Processor {
	return &Processor{accounts: accts, ledger: led}
}

// Apply processes one record. A non-nil error classifies why the record was
// rejected; the error wraps one of the package sentinels and carries the
// operation, client and transaction ids.
func (p *Processor) Apply(rec models.Record) error {
	// Every record creates its client's account on first reference, even
	// when the record itself ends up rejected.
	acct := p.accounts.GetOrCreate(rec.ClientID)

	var err error
	switch rec.Op {
	case models.OpDeposit:
		err = p.deposit(acct, rec)
	case models.OpWithdrawal:
		err = p.withdraw(acct, rec)
	case models.OpDispute:
		err = p.dispute(acct, rec)
	case models.OpResolve:
		err = p.resolve(acct, rec)
	case models.OpChargeback:
		err = p.chargeback(acct, rec)
	default:
		err = fmt.Errorf("unsupported operation %q", rec.Op)
	}
	if err != nil {
		return fmt.Errorf("%s client=%d tx=%d: %w", rec.Op, rec.ClientID, rec.TxID, err)
	}
	return nil
}

// Snapshot exposes the current account views for export, sorted by client id.
func (p *Processor) Snapshot() []models.AccountView {
	return p.accounts.Snapshot()
}

// Account returns one client's current view.
func (p *Processor) Account(clientID uint16) (models.AccountView, bool) {
	acct, ok := p.accounts.Get(clientID)
	if !ok {
		return models.AccountView{}, false
	}
	return acct.View(), true
}

// Entries exposes every recorded ledger entry, sorted by transaction id.
func (p *Processor) Entries() []models.LedgerEntry {
	return p.ledger.Entries()
}

// Entry returns the ledger entry recorded under the transaction id.
func (p *Processor) Entry(txID uint32) (models.LedgerEntry, bool) {
	return p.ledger.Get(txID)
}

func (p *Processor) deposit(acct *models.Account, rec models.Record) error {
	if !rec.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if acct.Locked {
		return ErrAccountLocked
	}
	if _, exists := p.ledger.Get(rec.TxID); exists {
		return ErrDuplicateTransaction
	}
	acct.Credit(rec.Amount)
	if err := p.ledger.InsertIfAbsent(models.LedgerEntry{
		TxID:     rec.TxID,
		ClientID: rec.ClientID,
		Amount:   rec.Amount,
		Kind:     models.KindDeposit,
		Status:   models.StatusNormal,
	}); err != nil {
		return err
	}
	return p.verify(acct)
}

func (p *Processor) withdraw(acct *models.Account, rec models.Record) error {
	if !rec.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if acct.Locked {
		return ErrAccountLocked
	}
	if _, exists := p.ledger.Get(rec.TxID); exists {
		return ErrDuplicateTransaction
	}
	if acct.Available.LessThan(rec.Amount) {
		return ErrInsufficientFunds
	}
	acct.Debit(rec.Amount)
	if err := p.ledger.InsertIfAbsent(models.LedgerEntry{
		TxID:     rec.TxID,
		ClientID: rec.ClientID,
		Amount:   rec.Amount,
		Kind:     models.KindWithdrawal,
		Status:   models.StatusNormal,
	}); err != nil {
		return err
	}
	return p.verify(acct)
}

func (p *Processor) dispute(acct *models.Account, rec models.Record) error {
	entry, err := p.lookup(rec)
	if err != nil {
		return err
	}
	if err := p.ledger.Transition(rec.TxID, models.StatusDisputed); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidState, entry.Status)
	}
	acct.Hold(entry.Kind, entry.Amount)
	return p.verify(acct)
}

func (p *Processor) resolve(acct *models.Account, rec models.Record) error {
	entry, err := p.lookup(rec)
	if err != nil {
		return err
	}
	if err := p.ledger.Transition(rec.TxID, models.StatusNormal); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidState, entry.Status)
	}
	acct.Release(entry.Kind, entry.Amount)
	return p.verify(acct)
}

func (p *Processor) chargeback(acct *models.Account, rec models.Record) error {
	entry, err := p.lookup(rec)
	if err != nil {
		return err
	}
	if err := p.ledger.Transition(rec.TxID, models.StatusChargedBack); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidState, entry.Status)
	}
	acct.Chargeback(entry.Amount)
	return p.verify(acct)
}

// lookup validates a dispute-family reference: the transaction must exist and
// must belong to the record's client.
func (p *Processor) lookup(rec models.Record) (models.LedgerEntry, error) {
	entry, ok := p.ledger.Get(rec.TxID)
	if !ok {
		return models.LedgerEntry{}, ErrUnknownTransaction
	}
	if entry.ClientID != rec.ClientID {
		return models.LedgerEntry{}, fmt.Errorf("%w: owned by client %d", ErrClientMismatch, entry.ClientID)
	}
	return entry, nil
}

func (p *Processor) verify(acct *models.Account) error {
	if !acct.Consistent() {
		return fmt.Errorf("%w: available=%s held=%s total=%s",
			ErrInconsistentAccount, acct.Available, acct.Held, acct.Total)
	}
	return nil
}
