package parco

import "fmt"

// ---- Translate ----

type translateParser struct {
	parser Parser
	fn     func(Value) (Value, error)
}

// Translate maps a successful result of parser through fn; failures
// propagate unchanged.  An error returned by fn means the grammar
// matched but the semantic action rejected the matched shape: it is
// reported as a TranslationError and bypasses backtracking.
func Translate(parser any, fn func(Value) (Value, error)) Parser {
	return &translateParser{parser: lift(parser), fn: fn}
}

func (p *translateParser) Parse(c Cursor) Result {
	r := p.parser.Parse(c)
	if !r.Matched {
		return r
	}
	v, err := p.fn(r.Value)
	if err != nil {
		return Throw(&TranslationError{Offset: r.End, Err: err})
	}
	return Match(r.End, v, r.Expected...)
}

func (p *translateParser) String() string {
	return fmt.Sprintf("Translate(%s)", describe(p.parser))
}

// ---- Bind ----

type bindParser struct {
	parser Parser
	fn     func(Value) Parser
}

// Bind matches parser, feeds its value to fn to obtain a second
// parser, and applies that parser where the first one stopped,
// yielding its result.  It is the monadic cousin of Then for grammars
// whose shape depends on already-parsed values, such as
// length-prefixed payloads.
func Bind(parser any, fn func(Value) Parser) Parser {
	return &bindParser{parser: lift(parser), fn: fn}
}

func (p *bindParser) Parse(c Cursor) Result {
	fr := p.parser.Parse(c)
	if !fr.Matched {
		return fr
	}
	return p.fn(fr.Value).Parse(c.At(fr.End))
}

func (p *bindParser) String() string {
	return fmt.Sprintf("Bind(%s)", describe(p.parser))
}
