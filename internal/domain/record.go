package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TransactionType names the five record types the engine accepts.
type TransactionType string

const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
	TypeDispute    TransactionType = "dispute"
	TypeResolve    TransactionType = "resolve"
	TypeChargeback TransactionType = "chargeback"
)

// Record is one row of the input stream as the record source yields it.
// For deposit and withdrawal rows ID is the transaction's own id; for
// dispute-class rows it names the referenced transaction. Amount is nil
// when the column is absent.
type Record struct {
	Type     TransactionType
	ClientID uint16
	ID       uint32
	Amount   *decimal.Decimal
}

// NewTransaction validates a record's shape and builds the matching
// transaction variant. A record that fails here never reaches the
// ledger.
func NewTransaction(rec Record) (Transaction, error) {
	switch rec.Type {
	case TypeDeposit:
		if rec.Amount == nil {
			return nil, ErrMissingAmount
		}
		return NewDeposit(rec.ID, rec.ClientID, *rec.Amount)

	case TypeWithdrawal:
		if rec.Amount == nil {
			return nil, ErrMissingAmount
		}
		return NewWithdrawal(rec.ID, rec.ClientID, *rec.Amount)

	case TypeDispute:
		return NewDispute(rec.ID, rec.ClientID), nil

	case TypeResolve:
		return NewResolve(rec.ID, rec.ClientID), nil

	case TypeChargeback:
		return NewChargeback(rec.ID, rec.ClientID), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransactionType, rec.Type)
	}
}
