package parco

import "fmt"

// Forward is a placeholder grammar node whose definition is supplied
// after construction, enabling direct or mutual recursion:
//
//	expr := &parco.Forward{}
//	term := parco.First(number, parco.Seq("(", expr, ")"))
//	expr.Set(term)
//
// Set must be called exactly once, before the first parse.  Binding is
// a construction-phase step: it must happen before any concurrent
// parse begins, and a second Set panics rather than silently rewiring
// a grammar that may already be in use.
type Forward struct {
	parser Parser
}

// Set binds the forward reference to its real definition.  A bare
// string is promoted to a Literal.  Calling Set twice is a
// construction error and panics.
func (f *Forward) Set(parser any) {
	if f.parser != nil {
		panic("parco: Forward.Set called twice")
	}
	f.parser = lift(parser)
}

// Parse delegates to the bound parser.  Before Set is called it fails
// with ErrUnboundForward, a fatal error that bypasses backtracking, so
// a malformed grammar is never mistaken for malformed input and never
// hangs.
func (f *Forward) Parse(c Cursor) Result {
	if f.parser == nil {
		return Throw(fmt.Errorf("%w at offset %d", ErrUnboundForward, c.Pos()))
	}
	return f.parser.Parse(c)
}

func (f *Forward) String() string {
	if f.parser == nil {
		return "Forward(unbound)"
	}
	return "Forward(...)"
}
