package engine

import "errors"

// Every rejection Apply can return. All are per-record and non-fatal; the
// caller decides whether to log or count them and then moves on.
var (
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrAccountLocked        = errors.New("account is locked")
	ErrInsufficientFunds    = errors.New("insufficient available funds")
	ErrDuplicateTransaction = errors.New("duplicate transaction id")
	ErrUnknownTransaction   = errors.New("unknown transaction id")
	ErrClientMismatch       = errors.New("client does not own transaction")
	ErrInvalidState         = errors.New("transaction not in required status")

	// ErrInconsistentAccount is returned when the balance check after a
	// mutation finds total != available + held. It signals a bookkeeping
	// bug, not bad input.
	ErrInconsistentAccount = errors.New("account balance inconsistency")
)
