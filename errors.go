package parco

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnboundForward reports a parse attempt through a Forward whose
// Set method was never called.  It is a grammar-construction error,
// distinguishable from malformed input, and it bypasses backtracking
// so a broken grammar never degrades into a misleading syntax error.
var ErrUnboundForward = errors.New("parse attempted through an unbound Forward")

// Diagnostic is the user-facing parse failure.  It points at the
// deepest input position any attempted branch reached and lists, in
// the order they were first tried, everything that would have been
// accepted there.
type Diagnostic struct {
	// Offset is the rune offset of the deepest failure.
	Offset int

	// Line and Column are the 1-based textual position of Offset.
	Line   int
	Column int

	// Expected is the deduplicated list of expectation
	// descriptions at the failure position.
	Expected []string
}

func (d *Diagnostic) Error() string {
	switch len(d.Expected) {
	case 0:
		return fmt.Sprintf("parse failed at line %d, column %d", d.Line, d.Column)
	case 1:
		return fmt.Sprintf("at line %d, column %d: expected %s", d.Line, d.Column, d.Expected[0])
	default:
		return fmt.Sprintf("at line %d, column %d: expected one of %s",
			d.Line, d.Column, strings.Join(d.Expected, ", "))
	}
}

// TranslationError reports a Translate function rejecting a value the
// grammar otherwise matched.  It is a hard failure of the enclosing
// parse, never retried through other alternatives.
type TranslationError struct {
	// Offset is where the rejected match ended.
	Offset int

	// Err is the error returned by the translation function.
	Err error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("translation failed at offset %d: %v", e.Offset, e.Err)
}

func (e *TranslationError) Unwrap() error { return e.Err }

// diagnostic condenses an expectation list into a Diagnostic: keep
// only the expectations at the maximal position, deduplicated in
// first-encountered order.
func (s *source) diagnostic(expected []Expectation) *Diagnostic {
	d := &Diagnostic{}
	if len(expected) > 0 {
		max := expected[0].Pos
		for _, e := range expected[1:] {
			if e.Pos > max {
				max = e.Pos
			}
		}
		seen := map[string]bool{}
		for _, e := range expected {
			if e.Pos != max || seen[e.Desc] {
				continue
			}
			seen[e.Desc] = true
			d.Expected = append(d.Expected, e.Desc)
		}
		d.Offset = max
	}
	loc := s.locationAt(d.Offset)
	d.Line = loc.Line
	d.Column = loc.Column
	return d
}
