package testutil

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Sol1du2/transacto/internal/adapter/csvio"
	"github.com/Sol1du2/transacto/internal/domain"
	"github.com/Sol1du2/transacto/internal/infrastructure/metrics"
	"github.com/Sol1du2/transacto/internal/usecase"
)

// CSV builds an input body from rows, prefixing the standard header.
func CSV(rows ...string) string {
	return "type,client,tx,amount\n" + strings.Join(rows, "\n") + "\n"
}

// SnapshotRow is one parsed line of the engine's output.
type SnapshotRow struct {
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}

// Replay runs a full replay of the CSV body through the real reader,
// ledger and writer, and returns the parsed snapshot keyed by client.
func Replay(t *testing.T, input string) map[uint16]SnapshotRow {
	t.Helper()

	ledger := domain.NewLedger()
	m := metrics.New(prometheus.NewRegistry())
	processor := usecase.NewProcessor(ledger, m, zerolog.Nop())

	require.NoError(t, processor.Replay(csvio.NewReader(strings.NewReader(input))))

	var buf bytes.Buffer
	require.NoError(t, processor.WriteSnapshot(csvio.NewWriter(&buf)))

	return ParseSnapshot(t, &buf)
}

// ParseSnapshot reads the output CSV into a map keyed by client id.
// Output order is unspecified, so callers compare by key.
func ParseSnapshot(t *testing.T, r io.Reader) map[uint16]SnapshotRow {
	t.Helper()

	cr := csv.NewReader(r)

	header, err := cr.Read()
	require.NoError(t, err)
	require.Equal(t, []string{"client", "available", "held", "total", "locked"}, header)

	rows := make(map[uint16]SnapshotRow)

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		require.Len(t, row, 5)

		client, err := strconv.ParseUint(row[0], 10, 16)
		require.NoError(t, err)

		locked, err := strconv.ParseBool(row[4])
		require.NoError(t, err)

		rows[uint16(client)] = SnapshotRow{
			Available: decimal.RequireFromString(row[1]),
			Held:      decimal.RequireFromString(row[2]),
			Total:     decimal.RequireFromString(row[3]),
			Locked:    locked,
		}
	}

	return rows
}

// EqualDecimal asserts decimal equality with readable output.
func EqualDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	require.True(t, got.Equal(decimal.RequireFromString(want)), "decimal = %s, want %s %v", got, want, msgAndArgs)
}
