package conformance

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"looseeq/explain"
	"looseeq/parser"
	"looseeq/types"
)

// TestResult represents the outcome of running a single test
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Error      error
}

// Runner executes conformance tests
type Runner struct {
	verify bool
}

// NewRunner creates a new test runner. With verify set every test checks
// its examples with LooselyEqual, not only the ones that ask for it.
func NewRunner(verify bool) *Runner {
	return &Runner{verify: verify}
}

// Run executes a single test case
func (r *Runner) Run(test LoadedTest) TestResult {
	// Check if test should be skipped
	if skipped, reason := test.Test.IsSkipped(); skipped {
		return TestResult{
			Test:       test,
			Skipped:    true,
			SkipReason: reason,
		}
	}

	report := explain.Explain(test.Test.Input, explain.WithVerify(r.verify || test.Test.Verify))

	err := checkExpectation(test.Test.Expect, report)
	return TestResult{
		Test:   test,
		Passed: err == nil,
		Error:  err,
	}
}

// RunAll executes all loaded tests
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, len(tests))
	for i, test := range tests {
		results[i] = r.Run(test)
	}
	return results
}

// SummaryStats computes statistics from test results
type SummaryStats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// ComputeStats generates statistics from test results
func ComputeStats(results []TestResult) SummaryStats {
	stats := SummaryStats{Total: len(results)}
	for _, r := range results {
		if r.Skipped {
			stats.Skipped++
		} else if r.Passed {
			stats.Passed++
		} else {
			stats.Failed++
		}
	}
	return stats
}

// FormatStats returns a human-readable summary
func FormatStats(stats SummaryStats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}

// checkExpectation checks the report against every expectation field that
// is set and joins the mismatches
func checkExpectation(expect Expectation, report explain.Report) error {
	if expect.IsEmpty() {
		return fmt.Errorf("no expectation specified")
	}

	// Check for expected error
	if expect.Error != "" {
		if !report.Failed() {
			return fmt.Errorf("expected error %q, got %s", expect.Error, report.Header)
		}
		if !strings.Contains(report.Err.Error(), expect.Error) {
			return fmt.Errorf("expected error %q, got %q", expect.Error, report.Err.Error())
		}
		return nil
	}

	if report.Failed() {
		return fmt.Errorf("unexpected error: %w", report.Err)
	}

	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if expect.Header != "" && report.Header != expect.Header {
		fail("expected header %q, got %q", expect.Header, report.Header)
	}
	if expect.Body != "" && report.Body != expect.Body {
		fail("expected body %q, got %q", expect.Body, report.Body)
	}
	if expect.Render != "" {
		if got := renderInput(report); got != expect.Render {
			fail("expected render %q, got %q", expect.Render, got)
		}
	}
	if expect.Class != "" && report.Class.String() != expect.Class {
		fail("expected class %s, got %s", expect.Class, report.Class)
	}
	if expect.Infinite != nil && report.Infinite != *expect.Infinite {
		fail("expected infinite=%t, got %t", *expect.Infinite, report.Infinite)
	}
	if expect.Count != nil && len(report.Examples) != *expect.Count {
		fail("expected %d examples, got %d", *expect.Count, len(report.Examples))
	}
	if expect.Examples != nil {
		if err := checkPrefix(expect.Examples, report.Examples); err != nil {
			errs = append(errs, err)
		}
	}
	if expect.Match != "" {
		re, err := regexp.Compile(expect.Match)
		if err != nil {
			fail("bad match pattern: %v", err)
		} else if !re.MatchString(report.String()) {
			fail("output does not match %q", expect.Match)
		}
	}
	for _, want := range expect.Contains {
		if !strings.Contains(report.String(), want) {
			fail("output does not contain %q", want)
		}
	}
	for _, src := range expect.EqualTo {
		if err := checkLoose(report.Input, src, true); err != nil {
			errs = append(errs, err)
		}
	}
	for _, src := range expect.NotEqualTo {
		if err := checkLoose(report.Input, src, false); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// renderInput is the header without its declaration wrapper
func renderInput(report explain.Report) string {
	s := strings.TrimPrefix(report.Header, "const x = ")
	return strings.TrimSuffix(s, ";")
}

func checkPrefix(want []string, examples []explain.Example) error {
	if len(examples) < len(want) {
		return fmt.Errorf("expected at least %d examples, got %d", len(want), len(examples))
	}
	for i, w := range want {
		if examples[i].Text != w {
			return fmt.Errorf("example %d: expected %s, got %s", i, w, examples[i].Text)
		}
	}
	return nil
}

func checkLoose(input types.Value, src string, want bool) error {
	other, err := parser.Parse(src)
	if err != nil {
		return fmt.Errorf("comparison value %q: %w", src, err)
	}
	got, err := types.LooselyEqual(input, other)
	if err != nil {
		return fmt.Errorf("comparing with %s: %w", src, err)
	}
	if got != want {
		if want {
			return fmt.Errorf("expected x == %s", src)
		}
		return fmt.Errorf("expected x != %s", src)
	}
	return nil
}
