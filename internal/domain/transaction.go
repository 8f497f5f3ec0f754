package domain

import "github.com/shopspring/decimal"

// Transaction is the closed set of operations the ledger replays. The
// five implementations in this package are exhaustive; dispute-class
// calls reach a stored transaction through this interface.
type Transaction interface {
	// Execute applies the transaction against the ledger.
	Execute(ledger *Ledger) error

	// Dispute, Resolve and Chargeback transition the transaction's
	// dispute state and move funds on the given account. Only deposits
	// support them; every other variant returns ErrDisputeNotSupported.
	Dispute(account *Account) error
	Resolve(account *Account) error
	Chargeback(account *Account) error

	// ID returns the transaction's own id. Reference-only variants have
	// no id of their own and return false.
	ID() (uint32, bool)
}

// DisputeStatus tracks where a deposit is in its dispute lifecycle.
type DisputeStatus string

const (
	DisputeStatusNone        DisputeStatus = "none"
	DisputeStatusInDispute   DisputeStatus = "in_dispute"
	DisputeStatusResolved    DisputeStatus = "resolved"
	DisputeStatusChargedback DisputeStatus = "chargedback"
)

func (s DisputeStatus) underDispute() bool {
	return s == DisputeStatusInDispute
}

// solved reports whether the dispute reached a terminal state.
func (s DisputeStatus) solved() bool {
	return s == DisputeStatusResolved || s == DisputeStatusChargedback
}

// Deposit credits a client's available balance. It is the only variant
// that can be disputed, so it carries the dispute status.
type Deposit struct {
	id       uint32
	clientID uint16
	amount   decimal.Decimal
	status   DisputeStatus
}

// NewDeposit validates the amount and builds a deposit.
func NewDeposit(id uint32, clientID uint16, amount decimal.Decimal) (*Deposit, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	return &Deposit{
		id:       id,
		clientID: clientID,
		amount:   amount,
		status:   DisputeStatusNone,
	}, nil
}

// Execute credits the client, creating the account on first sight.
func (d *Deposit) Execute(ledger *Ledger) error {
	ledger.account(d.clientID).Deposit(d.amount)
	return nil
}

func (d *Deposit) Dispute(account *Account) error {
	if d.status.underDispute() {
		return ErrTransactionUnderDispute
	}

	if d.status.solved() {
		return ErrTransactionAlreadyDisputed
	}

	account.HoldFunds(d.amount)
	d.status = DisputeStatusInDispute

	return nil
}

func (d *Deposit) Resolve(account *Account) error {
	if d.status.solved() {
		return ErrTransactionAlreadyDisputed
	}

	if !d.status.underDispute() {
		return ErrTransactionNotDisputed
	}

	account.ReleaseFunds(d.amount)
	d.status = DisputeStatusResolved

	return nil
}

func (d *Deposit) Chargeback(account *Account) error {
	if d.status.solved() {
		return ErrTransactionAlreadyDisputed
	}

	if !d.status.underDispute() {
		return ErrTransactionNotDisputed
	}

	account.Chargeback(d.amount)
	d.status = DisputeStatusChargedback

	return nil
}

func (d *Deposit) ID() (uint32, bool) {
	return d.id, true
}

// Status returns the deposit's current dispute state.
func (d *Deposit) Status() DisputeStatus {
	return d.status
}

// Withdrawal debits a client's available balance. Withdrawals never
// create accounts and cannot be disputed.
type Withdrawal struct {
	id       uint32
	clientID uint16
	amount   decimal.Decimal
}

// NewWithdrawal validates the amount and builds a withdrawal.
func NewWithdrawal(id uint32, clientID uint16, amount decimal.Decimal) (*Withdrawal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	return &Withdrawal{id: id, clientID: clientID, amount: amount}, nil
}

func (w *Withdrawal) Execute(ledger *Ledger) error {
	account, ok := ledger.accounts[w.clientID]
	if !ok {
		return ErrClientNotFound
	}

	return account.Withdraw(w.amount)
}

func (w *Withdrawal) Dispute(_ *Account) error {
	return ErrDisputeNotSupported
}

func (w *Withdrawal) Resolve(_ *Account) error {
	return ErrDisputeNotSupported
}

func (w *Withdrawal) Chargeback(_ *Account) error {
	return ErrDisputeNotSupported
}

func (w *Withdrawal) ID() (uint32, bool) {
	return w.id, true
}

// Dispute opens a dispute on a previously executed transaction.
type Dispute struct {
	refTxID  uint32
	clientID uint16
}

// NewDispute builds a dispute referencing a prior transaction id.
func NewDispute(refTxID uint32, clientID uint16) *Dispute {
	return &Dispute{refTxID: refTxID, clientID: clientID}
}

func (d *Dispute) Execute(ledger *Ledger) error {
	account, ok := ledger.accounts[d.clientID]
	if !ok {
		return ErrClientNotFound
	}

	tx, ok := ledger.history[d.refTxID]
	if !ok {
		return ErrTransactionNotFound
	}

	return tx.Dispute(account)
}

func (d *Dispute) Dispute(_ *Account) error {
	return ErrDisputeNotSupported
}

func (d *Dispute) Resolve(_ *Account) error {
	return ErrDisputeNotSupported
}

func (d *Dispute) Chargeback(_ *Account) error {
	return ErrDisputeNotSupported
}

func (d *Dispute) ID() (uint32, bool) {
	return 0, false
}

// Resolve settles a dispute in the client's favor, releasing the held
// funds.
type Resolve struct {
	refTxID  uint32
	clientID uint16
}

// NewResolve builds a resolve referencing a prior transaction id.
func NewResolve(refTxID uint32, clientID uint16) *Resolve {
	return &Resolve{refTxID: refTxID, clientID: clientID}
}

func (r *Resolve) Execute(ledger *Ledger) error {
	account, ok := ledger.accounts[r.clientID]
	if !ok {
		return ErrClientNotFound
	}

	tx, ok := ledger.history[r.refTxID]
	if !ok {
		return ErrTransactionNotFound
	}

	return tx.Resolve(account)
}

func (r *Resolve) Dispute(_ *Account) error {
	return ErrDisputeNotSupported
}

func (r *Resolve) Resolve(_ *Account) error {
	return ErrDisputeNotSupported
}

func (r *Resolve) Chargeback(_ *Account) error {
	return ErrDisputeNotSupported
}

func (r *Resolve) ID() (uint32, bool) {
	return 0, false
}

// Chargeback settles a dispute against the client, withdrawing the held
// funds and locking the account.
type Chargeback struct {
	refTxID  uint32
	clientID uint16
}

// NewChargeback builds a chargeback referencing a prior transaction id.
func NewChargeback(refTxID uint32, clientID uint16) *Chargeback {
	return &Chargeback{refTxID: refTxID, clientID: clientID}
}

func (c *Chargeback) Execute(ledger *Ledger) error {
	account, ok := ledger.accounts[c.clientID]
	if !ok {
		return ErrClientNotFound
	}

	tx, ok := ledger.history[c.refTxID]
	if !ok {
		return ErrTransactionNotFound
	}

	return tx.Chargeback(account)
}

func (c *Chargeback) Dispute(_ *Account) error {
	return ErrDisputeNotSupported
}

func (c *Chargeback) Resolve(_ *Account) error {
	return ErrDisputeNotSupported
}

func (c *Chargeback) Chargeback(_ *Account) error {
	return ErrDisputeNotSupported
}

func (c *Chargeback) ID() (uint32, bool) {
	return 0, false
}
