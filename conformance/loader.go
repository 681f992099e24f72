package conformance

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

//go:embed suites/*.yaml
var builtin embed.FS

// LoadedTest represents a test with its source file path
type LoadedTest struct {
	File  string
	Suite TestSuite
	Test  TestCase
}

// LoadAllTests loads the suites compiled into the binary
func LoadAllTests() ([]LoadedTest, error) {
	sub, err := fs.Sub(builtin, "suites")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub)
}

// LoadDir loads every .yaml suite below dir
func LoadDir(dir string) ([]LoadedTest, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("could not find conformance test directory: %w", err)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS walks fsys and loads all test cases. Unlike a lenient loader a
// malformed file is an error: the suites are ours.
func LoadFS(fsys fs.FS) ([]LoadedTest, error) {
	var loaded []LoadedTest

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Only process .yaml files
		if d.IsDir() || path.Ext(p) != ".yaml" {
			return nil
		}

		tests, err := loadTestFile(fsys, p)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		loaded = append(loaded, tests...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return loaded, nil
}

// loadTestFile parses a single YAML file and returns all test cases
func loadTestFile(fsys fs.FS, p string) ([]LoadedTest, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, err
	}

	var suite TestSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, err
	}

	tests := make([]LoadedTest, 0, len(suite.Tests))
	for _, test := range suite.Tests {
		tests = append(tests, LoadedTest{
			File:  p,
			Suite: suite,
			Test:  test,
		})
	}

	return tests, nil
}
