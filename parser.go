package parco

import "fmt"

// Parser is implemented by every grammar node: attempt to parse at the
// given cursor and report the outcome.  A constructed grammar is
// immutable (once every Forward is bound) and side-effect free, so one
// Parser value may serve concurrent parses of different inputs.
//
// Custom parsers only need this one method; build their Result with
// Match, NoMatch, or Throw.
type Parser interface {
	Parse(Cursor) Result
}

// lift promotes v into a Parser.  Parsers pass through unchanged and
// strings become Literal nodes, which is what lets combinators accept
// bare literal operands.  Anything else is a construction error.
func lift(v any) Parser {
	switch p := v.(type) {
	case Parser:
		return p
	case string:
		return Literal(p)
	default:
		panic(fmt.Sprintf("parco: cannot use %T as a parser", v))
	}
}

func liftAll(vs []any) []Parser {
	out := make([]Parser, len(vs))
	for i, v := range vs {
		out[i] = lift(v)
	}
	return out
}

// describe returns a short description of a parser for use in
// expectation messages, e.g. the "not X" reported by Except.
func describe(p Parser) string {
	if s, ok := p.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", p)
}
