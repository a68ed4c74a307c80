// Package events defines the payloads published after records are applied.
package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionAccepted is emitted after a deposit or withdrawal commits.
type TransactionAccepted struct {
	EventID    string          `json:"event_id"`
	Type       string          `json:"type"`
	ClientID   uint16          `json:"client"`
	TxID       uint32          `json:"tx"`
	Amount     decimal.Decimal `json:"amount"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// AccountLocked is emitted when a chargeback removes held funds and locks the
// owning account.
type AccountLocked struct {
	EventID    string          `json:"event_id"`
	ClientID   uint16          `json:"client"`
	TxID       uint32          `json:"tx"`
	Amount     decimal.Decimal `json:"amount"`
	OccurredAt time.Time       `json:"occurred_at"`
}
