// Package csvio adapts the engine's record source and snapshot sink
// contracts to CSV streams.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Sol1du2/transacto/internal/domain"
)

// Reader yields transaction records from a CSV stream in file order.
// Expected columns: type, client, tx, amount; the amount column may be
// empty or missing for dispute-class rows. Fields are trimmed of
// surrounding whitespace.
type Reader struct {
	csv        *csv.Reader
	skipHeader bool
}

// NewReader wraps an input stream. The first row is treated as the
// header and skipped.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	// Row width varies: dispute-class rows may omit the amount column.
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	return &Reader{csv: cr, skipHeader: true}
}

// Next returns the next record. It returns io.EOF once the stream is
// exhausted. Any other error marks a single unreadable row; the reader
// stays usable for the rows after it.
func (r *Reader) Next() (domain.Record, error) {
	if r.skipHeader {
		r.skipHeader = false
		if _, err := r.csv.Read(); err != nil {
			return domain.Record{}, err
		}
	}

	row, err := r.csv.Read()
	if err != nil {
		return domain.Record{}, err
	}

	return parseRow(row)
}

func parseRow(row []string) (domain.Record, error) {
	if len(row) < 3 || len(row) > 4 {
		return domain.Record{}, fmt.Errorf("expected 3 or 4 fields, got %d", len(row))
	}

	clientID, err := strconv.ParseUint(strings.TrimSpace(row[1]), 10, 16)
	if err != nil {
		return domain.Record{}, fmt.Errorf("invalid client id %q: %w", row[1], err)
	}

	txID, err := strconv.ParseUint(strings.TrimSpace(row[2]), 10, 32)
	if err != nil {
		return domain.Record{}, fmt.Errorf("invalid transaction id %q: %w", row[2], err)
	}

	rec := domain.Record{
		Type:     domain.TransactionType(strings.TrimSpace(row[0])),
		ClientID: uint16(clientID),
		ID:       uint32(txID),
	}

	if len(row) > 3 {
		if raw := strings.TrimSpace(row[3]); raw != "" {
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				return domain.Record{}, fmt.Errorf("invalid amount %q: %w", row[3], err)
			}
			rec.Amount = &amount
		}
	}

	return rec, nil
}
