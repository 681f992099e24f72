package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"looseeq/explain"
)

var (
	batchWorkers int
	batchStrict  bool
)

var batchCmd = &cobra.Command{
	Use:   "batch [file...]",
	Short: "Explain every line of the given files (or stdin)",
	Long: `Reads one JavaScript value per line and prints a report for each, in input
order. Blank lines and lines starting with # are skipped. Reports are computed
concurrently.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		workers := cfg.Batch.Workers
		if cmd.Flags().Changed("workers") {
			workers = batchWorkers
		}

		var inputs []string
		if len(args) == 0 {
			lines, err := readLines(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			inputs = lines
		}
		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open input: %w", err)
			}
			lines, err := readLines(f)
			f.Close()
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			inputs = append(inputs, lines...)
		}

		failed, err := runBatch(cmd.Context(), cmd.OutOrStdout(), inputs, workers, cfg.Display.Verify)
		if err != nil {
			return err
		}
		if failed > 0 {
			logger.Info("batch finished with failures", zap.Int("failed", failed), zap.Int("total", len(inputs)))
			if batchStrict {
				return errFailed
			}
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Concurrent workers (default from config)")
	batchCmd.Flags().BoolVar(&batchStrict, "strict", false, "Exit non-zero if any input fails")
}

// readLines returns the non-blank, non-comment lines of r
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

// runBatch explains inputs with at most workers goroutines and writes the
// reports to w in input order, separated by blank lines. It returns how
// many inputs failed.
func runBatch(ctx context.Context, w io.Writer, inputs []string, workers int, verify bool) (int, error) {
	if workers < 1 {
		workers = 1
	}

	reports := make([]explain.Report, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, src := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = explain.Explain(src, explain.WithVerify(verify))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("batch cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("batch cancelled: %w", err)
	}

	failed := 0
	bw := bufio.NewWriter(w)
	for i, r := range reports {
		if i > 0 {
			bw.WriteString("\n")
		}
		bw.WriteString(r.String())
		bw.WriteString("\n")
		if r.Failed() {
			failed++
		}
	}
	return failed, bw.Flush()
}
