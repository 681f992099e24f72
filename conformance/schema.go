package conformance

// TestSuite represents a complete YAML test file
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase represents a single test within a suite
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Skip        interface{} `yaml:"skip,omitempty"`   // bool or string
	Input       string      `yaml:"input"`            // source text for the reader
	Verify      bool        `yaml:"verify,omitempty"` // check examples with LooselyEqual
	Expect      Expectation `yaml:"expect"`
}

// Expectation defines what result is expected from a test. Every field that
// is set must hold.
type Expectation struct {
	Header   string   `yaml:"header,omitempty"`   // exact declaration line
	Body     string   `yaml:"body,omitempty"`     // exact example block
	Render   string   `yaml:"render,omitempty"`   // input as declared in the header
	Class    string   `yaml:"class,omitempty"`    // ZeroFamily, NaNClass, etc.
	Examples []string `yaml:"examples,omitempty"` // leading rendered examples
	Count    *int     `yaml:"count,omitempty"`    // number of examples shown
	Infinite *bool    `yaml:"infinite,omitempty"`
	Error    string   `yaml:"error,omitempty"` // substring of the failure message
	Match    string   `yaml:"match,omitempty"` // regex over header and body
	Contains []string `yaml:"contains,omitempty"`

	// EqualTo and NotEqualTo are sources whose values must (or must not)
	// be loosely equal to the input
	EqualTo    []string `yaml:"equal_to,omitempty"`
	NotEqualTo []string `yaml:"not_equal_to,omitempty"`
}

// IsEmpty reports whether no expectation field is set
func (e Expectation) IsEmpty() bool {
	return e.Header == "" && e.Body == "" && e.Render == "" && e.Class == "" &&
		e.Examples == nil && e.Count == nil && e.Infinite == nil &&
		e.Error == "" && e.Match == "" && e.Contains == nil &&
		e.EqualTo == nil && e.NotEqualTo == nil
}

// IsSkipped returns true if this test should be skipped
func (tc *TestCase) IsSkipped() (bool, string) {
	if tc.Skip == nil {
		return false, ""
	}

	switch v := tc.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}
