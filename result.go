package parco

import "fmt"

// Expectation describes one thing a parser would have accepted at a
// given input position.  Failures carry the expectations that were not
// met; successes carry the expectations that would have let the parser
// match even more input, which is what makes trailing-input
// diagnostics informative.
type Expectation struct {
	Pos  int
	Desc string
}

func (e Expectation) String() string {
	return fmt.Sprintf("%s @ %d", e.Desc, e.Pos)
}

// Result is the outcome of a single parse attempt.  Custom parsers
// implement the Parser interface by returning one of these, built with
// Match, NoMatch, or Throw.
type Result struct {
	// Matched tells whether the parser matched.  When false, End
	// and Value are meaningless.
	Matched bool

	// End is the offset just past the matched input, where the
	// next parser is expected to start.
	End int

	// Value is the value this parse produced.  nil is the absent
	// value.
	Value Value

	// Expected carries expectation data for diagnostics; see the
	// Expectation type.
	Expected []Expectation

	// Fatal is set on failures that bypass backtracking: a
	// translation function rejecting a matched value, or a parse
	// reaching an unbound Forward.  Combinators propagate it
	// unchanged instead of trying other alternatives.
	Fatal error
}

// Match builds a successful Result ending at end with the given value.
// The expectations describe what would have allowed this parser to
// match more input than it did.
func Match(end int, value Value, expected ...Expectation) Result {
	return Result{Matched: true, End: end, Value: value, Expected: expected}
}

// NoMatch builds an ordinary match failure carrying the expectations
// that were not satisfied.
func NoMatch(expected ...Expectation) Result {
	return Result{Expected: expected}
}

// Throw builds a failure that cannot be recovered by backtracking.
// First, Optional and the repetition combinators all propagate it
// immediately instead of trying further alternatives.
func Throw(err error) Result {
	return Result{Fatal: err}
}

// mergeExpectations concatenates expectation lists into a freshly
// allocated slice, so callers never alias a child's backing array.
func mergeExpectations(lists ...[]Expectation) []Expectation {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	out := make([]Expectation, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
