package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Operation is the kind of instruction a Record carries.
type Operation string

const (
	OpDeposit    Operation = "deposit"
	OpWithdrawal Operation = "withdrawal"
	OpDispute    Operation = "dispute"
	OpResolve    Operation = "resolve"
	OpChargeback Operation = "chargeback"
)

// ParseOperation maps a textual record type to an Operation. Matching is
// case-insensitive and ignores surrounding whitespace; anything else is a
// parse error, not a processing error.
func ParseOperation(s string) (Operation, error) {
	op := Operation(strings.ToLower(strings.TrimSpace(s)))
	switch op {
	case OpDeposit, OpWithdrawal, OpDispute, OpResolve, OpChargeback:
		return op, nil
	}
	return "", fmt.Errorf("unknown operation %q", s)
}

// HasAmount reports whether records of this operation carry an amount.
// Dispute-family records reference a prior transaction's amount instead.
func (o Operation) HasAmount() bool {
	return o == OpDeposit || o == OpWithdrawal
}

// Record is one parsed transaction instruction, the engine's only input.
// Amount is meaningful only when Op.HasAmount(); a missing amount arrives as
// zero and is rejected by the processor.
type Record struct {
	Op       Operation
	ClientID uint16
	TxID     uint32
	Amount   decimal.Decimal
}
