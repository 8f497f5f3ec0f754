package usecase

import (
	"github.com/Sol1du2/transacto/internal/domain"
)

// RecordSource yields transaction records in input order.
type RecordSource interface {
	// Next returns the next record. It returns io.EOF once the source
	// is exhausted. Any other error marks a single unreadable record;
	// the source must stay usable for the records after it.
	Next() (domain.Record, error)
}

// SnapshotWriter receives the final per-client account rows after the
// stream has been consumed.
type SnapshotWriter interface {
	Write(accounts []*domain.Account) error
}
