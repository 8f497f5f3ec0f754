package domain

import "errors"

var (
	// Account errors
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAccountLocked     = errors.New("account is locked")
	ErrClientNotFound    = errors.New("client not found")

	// Construction errors
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrMissingAmount          = errors.New("transaction requires amount")
	ErrUnknownTransactionType = errors.New("unknown transaction type")

	// Dispute errors
	ErrTransactionNotFound        = errors.New("transaction not found")
	ErrDisputeNotSupported        = errors.New("dispute not supported for this transaction")
	ErrTransactionUnderDispute    = errors.New("transaction is under a dispute")
	ErrTransactionAlreadyDisputed = errors.New("transaction already has a resolved dispute")
	ErrTransactionNotDisputed     = errors.New("transaction is not under a dispute")
)
