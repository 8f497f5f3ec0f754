package domain

// Ledger owns every account and the history of transactions that were
// accepted. It is the sole mutator of account state and is not safe for
// concurrent use; the engine replays one ordered stream at a time.
type Ledger struct {
	accounts map[uint16]*Account
	history  map[uint32]Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		accounts: make(map[uint16]*Account),
		history:  make(map[uint32]Transaction),
	}
}

// Execute applies one transaction. A transaction whose id was already
// accepted is discarded silently, without re-validation. Transactions
// that carry their own id are recorded only after they succeed, so a
// failed transaction can never be referenced by a later dispute.
func (l *Ledger) Execute(tx Transaction) error {
	if id, ok := tx.ID(); ok {
		if _, seen := l.history[id]; seen {
			return nil
		}
	}

	if err := tx.Execute(l); err != nil {
		return err
	}

	if id, ok := tx.ID(); ok {
		l.history[id] = tx
	}

	return nil
}

// account returns the client's account, creating it on first sight.
// Only deposits create accounts; every other path looks the map up
// directly and reports ErrClientNotFound.
func (l *Ledger) account(clientID uint16) *Account {
	acc, ok := l.accounts[clientID]
	if !ok {
		acc = NewAccount(clientID)
		l.accounts[clientID] = acc
	}

	return acc
}

// Account looks up a client's account without creating it.
func (l *Ledger) Account(clientID uint16) (*Account, bool) {
	acc, ok := l.accounts[clientID]
	return acc, ok
}

// Accounts returns every account the stream has touched. Order follows
// map iteration and is not stable.
func (l *Ledger) Accounts() []*Account {
	accounts := make([]*Account, 0, len(l.accounts))
	for _, acc := range l.accounts {
		accounts = append(accounts, acc)
	}

	return accounts
}

// Transaction looks up a previously accepted transaction by id.
func (l *Ledger) Transaction(id uint32) (Transaction, bool) {
	tx, ok := l.history[id]
	return tx, ok
}
