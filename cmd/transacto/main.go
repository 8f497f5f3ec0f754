package main

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/Sol1du2/transacto/internal/adapter/csvio"
	"github.com/Sol1du2/transacto/internal/domain"
	"github.com/Sol1du2/transacto/internal/infrastructure/config"
	"github.com/Sol1du2/transacto/internal/infrastructure/logger"
	"github.com/Sol1du2/transacto/internal/infrastructure/metrics"
	"github.com/Sol1du2/transacto/internal/usecase"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "transacto",
		Short: "Transacto transaction replay engine",
		Long:  `Replays a log of transactions against client accounts and prints the final balances as CSV.`,
	}

	var (
		outputPath  string
		dumpMetrics bool
	)

	processCmd := &cobra.Command{
		Use:   "process <input.csv>",
		Short: "Replay a transaction log and print final account balances",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runProcess(args[0], outputPath, dumpMetrics)
		},
	}

	processCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the snapshot to a file instead of stdout")
	processCmd.Flags().BoolVar(&dumpMetrics, "metrics", false, "dump run counters to stderr after processing")

	rootCmd.AddCommand(processCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runProcess(inputPath, outputPath string, dumpMetrics bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	input, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer input.Close()

	// Per-run registry so repeated runs in one process never collide.
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	ledger := domain.NewLedger()
	processor := usecase.NewProcessor(ledger, m, log, usecase.WithStrict(cfg.Strict))

	if err := processor.Replay(csvio.NewReader(input)); err != nil {
		return err
	}

	output := os.Stdout
	if outputPath != "" {
		output, err = os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer output.Close()
	}

	if err := processor.WriteSnapshot(csvio.NewWriter(output)); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	if dumpMetrics {
		if err := writeMetrics(os.Stderr, registry); err != nil {
			log.Warn().Err(err).Msg("failed to dump metrics")
		}
	}

	return nil
}

// writeMetrics renders the run counters in the Prometheus text format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
