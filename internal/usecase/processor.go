package usecase

import (
	"errors"
	"fmt"
	"io"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/Sol1du2/transacto/internal/domain"
	"github.com/Sol1du2/transacto/internal/infrastructure/metrics"
)

// Processor replays one ordered record stream against a ledger. A
// malformed record or a rejected transaction is logged and skipped;
// only an exhausted source ends the run. In strict mode the first
// rejected transaction aborts instead.
type Processor struct {
	ledger  *domain.Ledger
	metrics *metrics.Metrics
	log     zerolog.Logger
	strict  bool
}

// Option configures a Processor.
type Option func(*Processor)

// WithStrict makes the first rejected transaction abort the replay.
func WithStrict(strict bool) Option {
	return func(p *Processor) {
		p.strict = strict
	}
}

// NewProcessor creates a Processor. Every log line carries a ULID
// identifying the run.
func NewProcessor(ledger *domain.Ledger, m *metrics.Metrics, log zerolog.Logger, opts ...Option) *Processor {
	p := &Processor{
		ledger:  ledger,
		metrics: m,
		log:     log.With().Str("run_id", ulid.Make().String()).Logger(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Replay consumes the source to completion, applying each record to the
// ledger in order.
func (p *Processor) Replay(src RecordSource) error {
	var line int

	for {
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		line++

		if err != nil {
			p.metrics.RecordsSkipped.Inc()
			p.log.Debug().Err(err).Int("record", line).Msg("skipping unreadable record")
			continue
		}

		p.metrics.RecordsRead.Inc()

		tx, err := domain.NewTransaction(rec)
		if err != nil {
			p.metrics.RecordsSkipped.Inc()
			p.log.Debug().Err(err).
				Int("record", line).
				Str("type", string(rec.Type)).
				Uint32("tx", rec.ID).
				Msg("invalid transaction")
			continue
		}

		if err := p.ledger.Execute(tx); err != nil {
			p.metrics.TransactionsRejected.WithLabelValues(rejectionReason(err)).Inc()
			p.log.Debug().Err(err).
				Int("record", line).
				Str("type", string(rec.Type)).
				Uint16("client", rec.ClientID).
				Uint32("tx", rec.ID).
				Msg("transaction rejected")

			if p.strict {
				return fmt.Errorf("record %d: %w", line, err)
			}
			continue
		}

		p.metrics.TransactionsApplied.Inc()
	}

	p.log.Info().
		Int("records", line).
		Int("accounts", len(p.ledger.Accounts())).
		Msg("replay finished")

	return nil
}

// WriteSnapshot hands the final account rows to the sink.
func (p *Processor) WriteSnapshot(sink SnapshotWriter) error {
	return sink.Write(p.ledger.Accounts())
}

// rejectionReason collapses a ledger error to a stable metrics label.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrAccountLocked):
		return "account_locked"
	case errors.Is(err, domain.ErrClientNotFound):
		return "client_not_found"
	case errors.Is(err, domain.ErrTransactionNotFound):
		return "transaction_not_found"
	case errors.Is(err, domain.ErrDisputeNotSupported):
		return "dispute_not_supported"
	case errors.Is(err, domain.ErrTransactionUnderDispute):
		return "transaction_under_dispute"
	case errors.Is(err, domain.ErrTransactionAlreadyDisputed):
		return "transaction_already_disputed"
	case errors.Is(err, domain.ErrTransactionNotDisputed):
		return "transaction_not_disputed"
	default:
		return "other"
	}
}
