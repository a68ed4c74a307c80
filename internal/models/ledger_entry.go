package models

import "github.com/shopspring/decimal"

// EntryKind tags whether the original record moved funds into or out of the
// account.
type EntryKind int

const (
	KindDeposit EntryKind = iota
	KindWithdrawal
)

func (k EntryKind) String() string {
	switch k {
	case KindDeposit:
		return "deposit"
	case KindWithdrawal:
		return "withdrawal"
	}
	return "unknown"
}

// EntryStatus is the dispute lifecycle position of a ledger entry.
// Legal moves are Normal->Disputed, Disputed->Normal (resolve) and
// Disputed->ChargedBack; ChargedBack is terminal.
type EntryStatus int

const (
	StatusNormal EntryStatus = iota
	StatusDisputed
	StatusChargedBack
)

func (s EntryStatus) String() string {
	switch s {
	case StatusNormal:
		return "normal"
	case StatusDisputed:
		return "disputed"
	case StatusChargedBack:
		return "charged_back"
	}
	return "unknown"
}

// LedgerEntry records one applied deposit or withdrawal together with its
// dispute status. Amount is the positive magnitude moved in either direction;
// Kind carries the direction. Only Status changes after creation.
type LedgerEntry struct {
	TxID     uint32
	ClientID uint16
	Amount   decimal.Decimal
	Kind     EntryKind
	Status   EntryStatus
}
