// Package explain composes the reader, the classifier and the formatter
// into the text the front ends display for one input.
package explain

import (
	"strings"

	"looseeq/classify"
	"looseeq/parser"
	"looseeq/render"
	"looseeq/types"
)

// Ellipsis closes the example list of an infinite family
const Ellipsis = "…"

// Example is one rendered member of an example set
type Example struct {
	Value types.Value
	Text  string

	// Checked is set when the example was verified with LooselyEqual;
	// Equal holds the outcome
	Checked bool
	Equal   bool
}

// Report is everything shown for one input. On failure Header is
// "undefined", Body is the diagnostic message and Err holds the error.
type Report struct {
	Input    types.Value
	Header   string
	Body     string
	Examples []Example
	Infinite bool
	Class    classify.Class
	Err      error
}

// String joins the header and the body the way the front ends print them
func (r Report) String() string {
	return r.Header + "\n" + r.Body
}

// Failed reports whether the input could not be read or classified
func (r Report) Failed() bool {
	return r.Err != nil
}

// Mismatches returns the verified examples that are not loosely equal to
// the input
func (r Report) Mismatches() []Example {
	var out []Example
	for _, e := range r.Examples {
		if e.Checked && !e.Equal {
			out = append(out, e)
		}
	}
	return out
}

type options struct {
	verify bool
}

// Option configures a report
type Option func(*options)

// WithVerify checks every example against the input with LooselyEqual
// and marks the ones that fail
func WithVerify(verify bool) Option {
	return func(o *options) {
		o.verify = verify
	}
}

// Explain reads src and reports the values loosely equal to it
func Explain(src string, opts ...Option) Report {
	v, err := parser.Parse(src)
	if err != nil {
		return failure(err)
	}
	return Value(v, opts...)
}

// Value reports the values loosely equal to v
func Value(v types.Value, opts ...Option) Report {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if v == nil {
		v = types.Undefined
	}

	set, err := classify.Classify(v)
	if err != nil {
		return failure(err)
	}

	r := Report{
		Input:    v,
		Header:   Header(v),
		Infinite: set.IsInfinite,
		Class:    set.Class,
		Examples: make([]Example, 0, len(set.Examples)),
	}
	for _, e := range set.Examples {
		ex := Example{Value: e, Text: render.Render(e)}
		if o.verify {
			ex.Checked = true
			ex.Equal, _ = types.LooselyEqual(v, e)
		}
		r.Examples = append(r.Examples, ex)
	}
	r.Body = body(v, r.Examples, set.IsInfinite)
	return r
}

// Header is the declaration line shown above the examples
func Header(v types.Value) string {
	return "const x = " + strings.TrimSuffix(render.Render(v), ";") + ";"
}

func body(v types.Value, examples []Example, infinite bool) string {
	if len(examples) == 0 {
		return "Nothing is loosely equal to " + render.Render(v) + "."
	}

	lines := make([]string, 0, len(examples)+1)
	for _, e := range examples {
		line := "x == " + e.Text
		if e.Checked && !e.Equal {
			line += " // not loosely equal"
		}
		lines = append(lines, line)
	}
	if infinite {
		lines = append(lines, Ellipsis)
	}
	return strings.Join(lines, "\n")
}

func failure(err error) Report {
	return Report{
		Header: "undefined",
		Body:   err.Error(),
		Err:    err,
	}
}
