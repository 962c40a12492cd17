package parco

import (
	"fmt"
	"strings"
)

// NoLimit lifts the upper bound of Repeat and WordOf.
const NoLimit = -1

// ---- Then ----

type thenParser struct {
	first, second Parser
}

// Then matches first followed by second.  Both operands may be bare
// strings, which are promoted to Literal nodes.  The two result values
// merge by the absorption rules: absent values disappear, tuples are
// spliced in flat, and any other pair becomes a two-element tuple, so
// long chains of Then accumulate one flat Tuple.
func Then(first, second any) Parser {
	return &thenParser{first: lift(first), second: lift(second)}
}

// Seq folds Then over its operands left to right.
func Seq(parts ...any) Parser {
	ps := liftAll(parts)
	if len(ps) == 0 {
		panic("parco: Seq needs at least one operand")
	}
	out := ps[0]
	for _, p := range ps[1:] {
		out = &thenParser{first: out, second: p}
	}
	return out
}

func (p *thenParser) Parse(c Cursor) Result {
	fr := p.first.Parse(c)
	if !fr.Matched {
		return fr
	}
	sr := p.second.Parse(c.At(fr.End))
	if !sr.Matched {
		return sr
	}
	return Match(sr.End, combine(fr.Value, sr.Value), sr.Expected...)
}

func (p *thenParser) String() string {
	return fmt.Sprintf("Then(%s, %s)", describe(p.first), describe(p.second))
}

// ---- First ----

type firstParser struct {
	parsers []Parser
}

// First tries each alternative in order at the same starting cursor
// and returns the first success as-is.  When every alternative fails,
// the collected expectations flow upward so the final diagnostic can
// report the deepest failure, merging descriptions on ties.
func First(parsers ...any) Parser {
	ps := liftAll(parsers)
	if len(ps) == 0 {
		panic("parco: First needs at least one alternative")
	}
	return &firstParser{parsers: ps}
}

func (p *firstParser) Parse(c Cursor) Result {
	var expected []Expectation
	for _, alt := range p.parsers {
		r := alt.Parse(c)
		if r.Matched || r.Fatal != nil {
			return r
		}
		expected = append(expected, r.Expected...)
	}
	return NoMatch(expected...)
}

func (p *firstParser) String() string {
	return altString("First", p.parsers)
}

// ---- Longest ----

type longestParser struct {
	parsers []Parser
}

// Longest tries every alternative at the same starting cursor and
// returns the success that consumed the most input, preferring the
// earliest on ties.  It fails only when every alternative fails.
func Longest(parsers ...any) Parser {
	ps := liftAll(parsers)
	if len(ps) == 0 {
		panic("parco: Longest needs at least one alternative")
	}
	return &longestParser{parsers: ps}
}

func (p *longestParser) Parse(c Cursor) Result {
	var (
		expected []Expectation
		best     Result
		found    bool
	)
	for _, alt := range p.parsers {
		r := alt.Parse(c)
		if r.Fatal != nil {
			return r
		}
		if !r.Matched {
			expected = append(expected, r.Expected...)
			continue
		}
		if !found || r.End > best.End {
			best, found = r, true
		}
	}
	if !found {
		return NoMatch(expected...)
	}
	return best
}

func (p *longestParser) String() string {
	return altString("Longest", p.parsers)
}

func altString(name string, parsers []Parser) string {
	var s strings.Builder
	s.WriteString(name)
	s.WriteString("(")
	for i, p := range parsers {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(describe(p))
	}
	s.WriteString(")")
	return s.String()
}

// ---- Optional ----

type optionalParser struct {
	parser Parser
	def    Value
}

// Optional attempts its operand and absorbs any failure: on failure it
// succeeds with the absent value at the original cursor, consuming
// nothing.  The absorbed failure's expectations are threaded through
// the success so the deepest-failure diagnostic still sees how far the
// attempt got.
func Optional(parser any) Parser {
	return &optionalParser{parser: lift(parser)}
}

// OptionalDefault is Optional with a caller-chosen value for the
// absorbed case instead of the absent value.
func OptionalDefault(parser any, def Value) Parser {
	return &optionalParser{parser: lift(parser), def: def}
}

func (p *optionalParser) Parse(c Cursor) Result {
	r := p.parser.Parse(c)
	if r.Matched || r.Fatal != nil {
		return r
	}
	return Match(c.Pos(), p.def, r.Expected...)
}

func (p *optionalParser) String() string {
	return fmt.Sprintf("Optional(%s)", describe(p.parser))
}

// ---- Repeat / OneOrMore / ZeroOrMore ----

type repeatParser struct {
	parser   Parser
	min, max int
}

// Repeat matches its operand at least min and at most max times,
// collecting the non-absent result values into a Tuple.  Pass NoLimit
// as max for no upper bound.  Fewer than min matches fails with the
// failure that stopped the loop.
//
// An iteration that succeeds without consuming input ends the loop:
// repetition over a zero-width match must force progress rather than
// spin forever.
func Repeat(parser any, min, max int) Parser {
	return &repeatParser{parser: lift(parser), min: min, max: max}
}

// OneOrMore is Repeat(parser, 1, NoLimit).
func OneOrMore(parser any) Parser {
	return Repeat(parser, 1, NoLimit)
}

// ZeroOrMore is Repeat(parser, 0, NoLimit).  It never fails.
func ZeroOrMore(parser any) Parser {
	return Repeat(parser, 0, NoLimit)
}

func (p *repeatParser) Parse(c Cursor) Result {
	var (
		out   = Tuple{}
		pos   = c.Pos()
		count = 0
		last  Result
	)
	for p.max == NoLimit || count < p.max {
		last = p.parser.Parse(c.At(pos))
		if last.Fatal != nil {
			return last
		}
		if !last.Matched {
			break
		}
		if last.Value != nil {
			out = append(out, last.Value)
		}
		count++
		if last.End == pos {
			break
		}
		pos = last.End
	}
	if count < p.min {
		return NoMatch(last.Expected...)
	}
	return Match(pos, out, last.Expected...)
}

func (p *repeatParser) String() string {
	max := "∞"
	if p.max != NoLimit {
		max = fmt.Sprintf("%d", p.max)
	}
	return fmt.Sprintf("Repeat(%s, %d, %s)", describe(p.parser), p.min, max)
}

// ---- Except ----

type exceptParser struct {
	parser, avoid Parser
}

// Except matches parser as long as avoid does not also match at the
// same cursor.  When avoid matches, Except fails at the current
// position; avoid's result and consumption are always discarded.
func Except(parser, avoid any) Parser {
	return &exceptParser{parser: lift(parser), avoid: lift(avoid)}
}

func (p *exceptParser) Parse(c Cursor) Result {
	ar := p.avoid.Parse(c)
	if ar.Fatal != nil {
		return ar
	}
	if ar.Matched {
		return NoMatch(Expectation{Pos: c.Pos(), Desc: "not " + describe(p.avoid)})
	}
	return p.parser.Parse(c)
}

func (p *exceptParser) String() string {
	return fmt.Sprintf("Except(%s, %s)", describe(p.parser), describe(p.avoid))
}

// ---- Discard ----

type discardParser struct {
	parser Parser
}

// Discard matches whatever its operand matches but yields the absent
// value, letting Then's absorption drop the operand from sequence
// results.
func Discard(parser any) Parser {
	return &discardParser{parser: lift(parser)}
}

func (p *discardParser) Parse(c Cursor) Result {
	r := p.parser.Parse(c)
	if !r.Matched {
		return r
	}
	return Match(r.End, nil, r.Expected...)
}

func (p *discardParser) String() string {
	return fmt.Sprintf("Discard(%s)", describe(p.parser))
}

// ---- Present ----

type presentParser struct {
	parser Parser
}

// Present is a positive lookahead: it succeeds when its operand
// matches at the cursor but consumes nothing and yields the absent
// value.
func Present(parser any) Parser {
	return &presentParser{parser: lift(parser)}
}

func (p *presentParser) Parse(c Cursor) Result {
	r := p.parser.Parse(c)
	if !r.Matched {
		return r
	}
	return Match(c.Pos(), nil, endOfInput(c.Pos()))
}

func (p *presentParser) String() string {
	return fmt.Sprintf("Present(%s)", describe(p.parser))
}

// ---- Keyword ----

type keywordParser struct {
	parser, terminator Parser
}

// Keyword matches parser only when terminator also matches right
// after it.  The terminator is lookahead only: the result and end
// position are those of parser alone.
func Keyword(parser, terminator any) Parser {
	return &keywordParser{parser: lift(parser), terminator: lift(terminator)}
}

func (p *keywordParser) Parse(c Cursor) Result {
	r := p.parser.Parse(c)
	if !r.Matched {
		return r
	}
	tr := p.terminator.Parse(c.At(r.End))
	if tr.Fatal != nil {
		return tr
	}
	if !tr.Matched {
		return NoMatch(tr.Expected...)
	}
	return r
}

func (p *keywordParser) String() string {
	return fmt.Sprintf("Keyword(%s, %s)", describe(p.parser), describe(p.terminator))
}

// ---- Exact ----

type exactParser struct {
	parser Parser
}

// Exact suppresses the skip parser for its whole subtree, after
// applying it once at the subtree's entry.  String-literal bodies are
// the usual use: the blanks inside them are significant even when the
// surrounding grammar skips whitespace.
func Exact(parser any) Parser {
	return &exactParser{parser: lift(parser)}
}

func (p *exactParser) Parse(c Cursor) Result {
	c = c.skipLeading()
	return p.parser.Parse(c.withSkip(nil))
}

func (p *exactParser) String() string {
	return fmt.Sprintf("Exact(%s)", describe(p.parser))
}
