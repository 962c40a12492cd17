package parco

// Option adjusts a single Parse invocation.
type Option func(*parseOptions)

type parseOptions struct {
	allowTrailing bool
	skip          Parser
}

// AllowTrailing lets a parse succeed even when input remains after the
// match, returning the matched prefix's value.  By default unconsumed
// trailing input is a failure.
func AllowTrailing() Option {
	return func(o *parseOptions) { o.allowTrailing = true }
}

// Skipping installs a skip parser that is applied, and its matches
// discarded, before every leaf match.  Skipping(Whitespace()) makes a
// grammar insensitive to blanks between tokens; wrap subtrees in Exact
// where blanks are significant.  A bare string is promoted to a
// Literal.
func Skipping(skip any) Option {
	return func(o *parseOptions) { o.skip = lift(skip) }
}

// Parse drives parser over input from position zero.  On success it
// returns the result value, which may be nil when the grammar yields
// the absent value.  On failure the error is a *Diagnostic carrying
// the deepest failure position and the expectations there, a
// *TranslationError when a semantic action rejected a match, or an
// error wrapping ErrUnboundForward for a malformed grammar.
func Parse(parser Parser, input string, opts ...Option) (Value, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	src := newSource(input)
	c := Cursor{src: src, skip: o.skip}
	r := parser.Parse(c)
	if r.Fatal != nil {
		return nil, r.Fatal
	}
	if !r.Matched {
		return nil, src.diagnostic(r.Expected)
	}

	// Trailing blanks are not trailing input when a skip parser is
	// in play.
	end := c.At(r.End).skipLeading().Pos()
	if end < len(src.input) && !o.allowTrailing {
		expected := mergeExpectations(r.Expected, []Expectation{endOfInput(end)})
		return nil, src.diagnostic(expected)
	}
	return r.Value, nil
}
