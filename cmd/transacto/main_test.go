package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Sol1du2/transacto/internal/infrastructure/metrics"
)

func TestRunProcess(t *testing.T) {
	dir := t.TempDir()

	input := filepath.Join(dir, "in.csv")
	body := "type,client,tx,amount\ndeposit,0,0,10\nwithdrawal,0,1,7\n"
	if err := os.WriteFile(input, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	output := filepath.Join(dir, "out.csv")
	if err := runProcess(input, output, false); err != nil {
		t.Fatalf("runProcess failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), string(data))
	}
	if lines[0] != "client,available,held,total,locked" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "0,3,0,3,false" {
		t.Errorf("row = %q, want 0,3,0,3,false", lines[1])
	}

	// A second run in the same process must not trip duplicate metric
	// registration.
	if err := runProcess(input, output, true); err != nil {
		t.Fatalf("second runProcess failed: %v", err)
	}
}

func TestRunProcessUnreadableInput(t *testing.T) {
	if err := runProcess(filepath.Join(t.TempDir(), "missing.csv"), "", false); err == nil {
		t.Fatal("expected error for missing input file")
	}
}

func TestWriteMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	m.RecordsRead.Inc()

	var buf bytes.Buffer
	if err := writeMetrics(&buf, registry); err != nil {
		t.Fatalf("writeMetrics failed: %v", err)
	}

	if !strings.Contains(buf.String(), "transacto_records_read_total 1") {
		t.Errorf("dump missing counter: %q", buf.String())
	}
}
