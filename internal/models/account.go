package models

import "github.com/shopspring/decimal"

// Account is one client's balance state. Available, Held and Total are all
// maintained on every mutation; Total must equal Available + Held after each
// applied record.
type Account struct {
	ClientID  uint16
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}

// NewAccount returns a zeroed, unlocked account for the client.
func NewAccount(clientID uint16) *Account {
	return &Account{
		ClientID:  clientID,
		Available: decimal.Zero,
		Held:      decimal.Zero,
		Total:     decimal.Zero,
	}
}

// Credit adds amount to available funds.
func (a *Account) Credit(amount decimal.Decimal) {
	a.Available = a.Available.Add(amount)
	a.Total = a.Total.Add(amount)
}

// Debit removes amount from available funds.
func (a *Account) Debit(amount decimal.Decimal) {
	a.Available = a.Available.Sub(amount)
	a.Total = a.Total.Sub(amount)
}

// Hold freezes a disputed amount. A disputed deposit still has its funds in
// available, so they move from available to held. A disputed withdrawal's
// funds already left the account, so the frozen amount grows held and total
// while available stands.
func (a *Account) Hold(kind EntryKind, amount decimal.Decimal) {
	a.Held = a.Held.Add(amount)
	if kind == KindDeposit {
		a.Available = a.Available.Sub(amount)
	} else {
		a.Total = a.Total.Add(amount)
	}
}

// Release undoes Hold exactly, restoring the pre-dispute balances.
func (a *Account) Release(kind EntryKind, amount decimal.Decimal) {
	a.Held = a.Held.Sub(amount)
	if kind == KindDeposit {
		a.Available = a.Available.Add(amount)
	} else {
		a.Total = a.Total.Sub(amount)
	}
}

// Chargeback removes the held amount from the account entirely and locks it.
func (a *Account) Chargeback(amount decimal.Decimal) {
	a.Held = a.Held.Sub(amount)
	a.Total = a.Total.Sub(amount)
	a.Locked = true
}

// Consistent reports whether the bookkeeping still balances.
func (a *Account) Consistent() bool {
	return a.Total.Equal(a.Available.Add(a.Held))
}

// View returns the export form of the account with amounts rounded to four
// fractional digits.
func (a *Account) View() AccountView {
	return AccountView{
		ClientID:  a.ClientID,
		Available: a.Available.Round(4),
		Held:      a.Held.Round(4),
		Total:     a.Total.Round(4),
		Locked:    a.Locked,
	}
}

// AccountView is the read-only snapshot row handed to exporters.
type AccountView struct {
	ClientID  uint16          `json:"client"`
	Available decimal.Decimal `json:"available"`
	Held      decimal.Decimal `json:"held"`
	Total     decimal.Decimal `json:"total"`
	Locked    bool            `json:"locked"`
}
