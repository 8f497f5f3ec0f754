package csvio

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/Sol1du2/transacto/internal/domain"
)

func TestReader_Next(t *testing.T) {
	input := strings.Join([]string{
		"type,client,tx,amount",
		"deposit,1,1,10.5",
		"withdrawal, 1, 2, 3.25",
		"dispute,1,1,",
		"chargeback,1,1",
	}, "\n")

	r := NewReader(strings.NewReader(input))

	rec, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Type != domain.TypeDeposit || rec.ClientID != 1 || rec.ID != 1 {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.Amount == nil || !rec.Amount.Equal(decimalFromString(t, "10.5")) {
		t.Errorf("amount = %v, want 10.5", rec.Amount)
	}

	// Fields arrive trimmed.
	rec, err = r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Type != domain.TypeWithdrawal || rec.ClientID != 1 || rec.ID != 2 {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.Amount == nil || !rec.Amount.Equal(decimalFromString(t, "3.25")) {
		t.Errorf("amount = %v, want 3.25", rec.Amount)
	}

	// Empty amount column.
	rec, err = r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Type != domain.TypeDispute || rec.Amount != nil {
		t.Errorf("unexpected record: %+v", rec)
	}

	// Missing amount column.
	rec, err = r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Type != domain.TypeChargeback || rec.Amount != nil {
		t.Errorf("unexpected record: %+v", rec)
	}

	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("err = %v, want io.EOF", err)
	}
}

func TestReader_BadRowDoesNotPoisonStream(t *testing.T) {
	input := strings.Join([]string{
		"type,client,tx,amount",
		"deposit,not-a-client,1,10",
		"deposit,1,not-a-tx,10",
		"deposit,1,2,not-an-amount",
		"deposit",
		"deposit,1,2,10,extra",
		"deposit,2,3,7",
	}, "\n")

	r := NewReader(strings.NewReader(input))

	for i := 0; i < 5; i++ {
		if _, err := r.Next(); err == nil {
			t.Fatalf("row %d: expected an error", i)
		}
	}

	rec, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ClientID != 2 || rec.ID != 3 {
		t.Errorf("unexpected record: %+v", rec)
	}

	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("err = %v, want io.EOF", err)
	}
}

func TestReader_EmptyInput(t *testing.T) {
	r := NewReader(strings.NewReader(""))

	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("err = %v, want io.EOF", err)
	}
}

func TestReader_ClientIDOutOfRange(t *testing.T) {
	input := "type,client,tx,amount\ndeposit,70000,1,10\n"

	r := NewReader(strings.NewReader(input))

	if _, err := r.Next(); err == nil {
		t.Fatal("expected an error for out-of-range client id")
	}
}
