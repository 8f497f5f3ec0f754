package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/Sol1du2/transacto/internal/domain"
)

var snapshotHeader = []string{"client", "available", "held", "total", "locked"}

// Writer renders the final account snapshot as CSV. Rows are written in
// the order given; the engine makes no ordering promise.
type Writer struct {
	csv *csv.Writer
}

// NewWriter wraps an output stream.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// Write renders the header and one row per account, then flushes.
func (w *Writer) Write(accounts []*domain.Account) error {
	if err := w.csv.Write(snapshotHeader); err != nil {
		return err
	}

	for _, acc := range accounts {
		row := []string{
			strconv.FormatUint(uint64(acc.ID), 10),
			acc.Available.String(),
			acc.Held.String(),
			acc.Total().String(),
			strconv.FormatBool(acc.Locked),
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}

	w.csv.Flush()

	return w.csv.Error()
}
