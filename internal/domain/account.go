package domain

import "github.com/shopspring/decimal"

// Precision is the number of fractional digits kept on every balance.
// Midpoints round half to even.
const Precision = 4

// Account holds one client's balances and lock state. It is owned
// exclusively by the Ledger and mutated only through the methods below.
type Account struct {
	ID        uint16
	Available decimal.Decimal
	Held      decimal.Decimal
	Locked    bool
}

// NewAccount creates an empty, unlocked account for a client.
func NewAccount(id uint16) *Account {
	return &Account{
		ID:        id,
		Available: decimal.Zero,
		Held:      decimal.Zero,
	}
}

// Total returns the true economic balance: available plus held.
func (a *Account) Total() decimal.Decimal {
	return a.Available.Add(a.Held)
}

// Deposit adds amount to the available balance.
func (a *Account) Deposit(amount decimal.Decimal) {
	a.Available = a.Available.Add(amount).RoundBank(Precision)
}

// Withdraw subtracts amount from the available balance. It is the only
// mover that enforces policy: a locked account rejects all withdrawals
// and the available balance may not go below zero.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if a.Locked {
		return ErrAccountLocked
	}

	if a.Available.LessThan(amount) {
		return ErrInsufficientFunds
	}

	a.Available = a.Available.Sub(amount).RoundBank(Precision)

	return nil
}

// HoldFunds moves amount from available to held. The move is
// unconditional; available may go negative when a withdrawal already
// cleared against the disputed funds.
func (a *Account) HoldFunds(amount decimal.Decimal) {
	a.Available = a.Available.Sub(amount).RoundBank(Precision)
	a.Held = a.Held.Add(amount).RoundBank(Precision)
}

// ReleaseFunds moves amount back from held to available.
func (a *Account) ReleaseFunds(amount decimal.Decimal) {
	a.Held = a.Held.Sub(amount).RoundBank(Precision)
	a.Available = a.Available.Add(amount).RoundBank(Precision)
}

// Chargeback removes amount from held without restoring it and locks
// the account.
func (a *Account) Chargeback(amount decimal.Decimal) {
	a.Held = a.Held.Sub(amount).RoundBank(Precision)
	a.Locked = true
}
