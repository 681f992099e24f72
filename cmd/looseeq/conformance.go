package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"looseeq/conformance"
)

var (
	conformanceDir     string
	conformanceVerbose bool
)

var conformanceCmd = &cobra.Command{
	Use:   "conformance",
	Short: "Run the YAML conformance suites",
	Long: `Runs the conformance suites built into the binary, or every .yaml suite
below --dir, and prints the failures and a summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			tests []conformance.LoadedTest
			err   error
		)
		if conformanceDir != "" {
			tests, err = conformance.LoadDir(conformanceDir)
		} else {
			tests, err = conformance.LoadAllTests()
		}
		if err != nil {
			return fmt.Errorf("failed to load tests: %w", err)
		}

		results := conformance.NewRunner(cfg.Display.Verify).RunAll(tests)
		stats := printResults(cmd.OutOrStdout(), results, conformanceVerbose)
		if stats.Failed > 0 {
			return errFailed
		}
		return nil
	},
}

func init() {
	conformanceCmd.Flags().StringVar(&conformanceDir, "dir", "", "Directory of YAML suites (default: built-in suites)")
	conformanceCmd.Flags().BoolVar(&conformanceVerbose, "list", false, "List passing and skipped tests too")
}

func printResults(w io.Writer, results []conformance.TestResult, all bool) conformance.SummaryStats {
	for _, r := range results {
		name := r.Test.File + ": " + r.Test.Test.Name
		switch {
		case r.Skipped:
			if all {
				fmt.Fprintf(w, "SKIP %s (%s)\n", name, r.SkipReason)
			}
		case r.Passed:
			if all {
				fmt.Fprintf(w, "PASS %s\n", name)
			}
		default:
			fmt.Fprintf(w, "FAIL %s\n     %v\n", name, r.Error)
		}
	}
	stats := conformance.ComputeStats(results)
	fmt.Fprintln(w, conformance.FormatStats(stats))
	return stats
}
