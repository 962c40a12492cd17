package parco

import (
	"fmt"
	"strings"
)

// Character sets backing the single-symbol matcher presets.
const (
	upperChars    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars    = "abcdefghijklmnopqrstuvwxyz"
	alphaChars    = upperChars + lowerChars
	digitChars    = "0123456789"
	alphanumChars = alphaChars + digitChars
	spaceChars    = " \t\r\n"
)

// endOfInput is the expectation successful leaves thread forward: the
// one way a fully matched parser could have accepted more input is for
// the input to end where it did.
func endOfInput(pos int) Expectation {
	return Expectation{Pos: pos, Desc: "end of input"}
}

// ---- Literal ----

type literalParser struct {
	text        []rune
	significant bool
	foldCase    bool
}

// Literal matches the given piece of text exactly and yields the
// absent value.  Use SignificantLiteral when the grammar needs to know
// the literal occurred.
func Literal(text string) Parser {
	return &literalParser{text: []rune(text)}
}

// SignificantLiteral behaves like Literal but yields the matched text
// itself as the result value.
func SignificantLiteral(text string) Parser {
	return &literalParser{text: []rune(text), significant: true}
}

// AnyCase is a case-insensitive Literal.  Like Literal it yields the
// absent value.
func AnyCase(text string) Parser {
	return &literalParser{text: []rune(strings.ToLower(text)), foldCase: true}
}

func (p *literalParser) Parse(c Cursor) Result {
	c = c.skipLeading()
	ok := c.hasPrefix(p.text)
	if p.foldCase {
		ok = c.hasPrefixFold(p.text)
	}
	if !ok {
		return NoMatch(Expectation{Pos: c.Pos(), Desc: "`" + string(p.text) + "`"})
	}
	end := c.Pos() + len(p.text)
	var v Value
	if p.significant {
		v = string(p.text)
	}
	return Match(end, v, endOfInput(end))
}

func (p *literalParser) String() string {
	switch {
	case p.significant:
		return fmt.Sprintf("SignificantLiteral(%q)", string(p.text))
	case p.foldCase:
		return fmt.Sprintf("AnyCase(%q)", string(p.text))
	default:
		return fmt.Sprintf("Literal(%q)", string(p.text))
	}
}

// ---- Single-symbol matchers ----

type charClassParser struct {
	chars  string
	negate bool
	desc   string
}

// CharIn matches a single symbol contained in chars and yields it as a
// one-symbol string.
func CharIn(chars string) Parser {
	return &charClassParser{chars: chars, desc: "any char in `" + chars + "`"}
}

// CharNotIn matches a single symbol not contained in chars.  Input
// must remain; end of input fails.
func CharNotIn(chars string) Parser {
	return &charClassParser{chars: chars, negate: true, desc: "any char not in `" + chars + "`"}
}

func charPreset(chars, desc string) Parser {
	return &charClassParser{chars: chars, desc: desc}
}

// Digit matches a single decimal digit.
func Digit() Parser { return charPreset(digitChars, "digit") }

// Upper matches a single uppercase ASCII letter.
func Upper() Parser { return charPreset(upperChars, "uppercase letter") }

// Lower matches a single lowercase ASCII letter.
func Lower() Parser { return charPreset(lowerChars, "lowercase letter") }

// Alpha matches a single ASCII letter.
func Alpha() Parser { return charPreset(alphaChars, "letter") }

// Alphanum matches a single ASCII letter or digit.
func Alphanum() Parser { return charPreset(alphanumChars, "letter or digit") }

// Whitespace matches a single blank symbol: space, tab, carriage
// return, or newline.  Skipping(Whitespace()) is the usual way to make
// a grammar insensitive to blanks between tokens.
func Whitespace() Parser { return charPreset(spaceChars, "whitespace") }

func (p *charClassParser) Parse(c Cursor) Result {
	c = c.skipLeading()
	r := c.Peek()
	if r == eof || strings.ContainsRune(p.chars, r) == p.negate {
		return NoMatch(Expectation{Pos: c.Pos(), Desc: p.desc})
	}
	end := c.Pos() + 1
	return Match(end, string(r), endOfInput(end))
}

func (p *charClassParser) String() string {
	if p.negate {
		return fmt.Sprintf("CharNotIn(%q)", p.chars)
	}
	return fmt.Sprintf("CharIn(%q)", p.chars)
}

type charRangeParser struct {
	lo, hi rune
}

// CharRange matches a single symbol between lo and hi inclusive and
// yields it as a one-symbol string.
func CharRange(lo, hi rune) Parser {
	return &charRangeParser{lo: lo, hi: hi}
}

func (p *charRangeParser) Parse(c Cursor) Result {
	c = c.skipLeading()
	r := c.Peek()
	if r == eof || r < p.lo || r > p.hi {
		desc := fmt.Sprintf("any char in `%c-%c`", p.lo, p.hi)
		return NoMatch(Expectation{Pos: c.Pos(), Desc: desc})
	}
	end := c.Pos() + 1
	return Match(end, string(r), endOfInput(end))
}

func (p *charRangeParser) String() string {
	return fmt.Sprintf("CharRange(%q, %q)", p.lo, p.hi)
}

type anyCharParser struct{}

// AnyChar matches any single symbol and yields it as a one-symbol
// string.  It fails only at end of input.
func AnyChar() Parser { return anyCharParser{} }

func (anyCharParser) Parse(c Cursor) Result {
	c = c.skipLeading()
	if c.atEnd() {
		return NoMatch(Expectation{Pos: c.Pos(), Desc: "any char"})
	}
	end := c.Pos() + 1
	return Match(end, string(c.Peek()), endOfInput(end))
}

func (anyCharParser) String() string { return "AnyChar()" }

// ---- Word ----

type wordParser struct {
	chars     string
	initChars string
	min, max  int
}

// Word matches a run of one or more symbols drawn from chars and
// yields them as a single string.  WordOf gives control over the
// allowed first symbol and the length bounds.
func Word(chars string) Parser {
	return WordOf(chars, chars, 1, NoLimit)
}

// WordOf matches between min and max symbols drawn from chars, where
// the first symbol must additionally belong to initChars.  Pass
// NoLimit as max for no upper bound.  With min zero the empty string
// is an acceptable match.
func WordOf(chars, initChars string, min, max int) Parser {
	return &wordParser{chars: chars, initChars: initChars, min: min, max: max}
}

func (p *wordParser) Parse(c Cursor) Result {
	c = c.skipLeading()
	pos := c.Pos()
	r := c.Peek()
	if r == eof || !strings.ContainsRune(p.initChars, r) {
		if p.min == 0 {
			return Match(pos, "", Expectation{Pos: pos, Desc: "any char in `" + p.initChars + "`"})
		}
		return NoMatch(Expectation{Pos: pos, Desc: "any char in `" + p.initChars + "`"})
	}
	var word strings.Builder
	word.WriteRune(r)
	end := pos + 1
	for p.max == NoLimit || end-pos < p.max {
		r = c.src.at(end)
		if r == eof || !strings.ContainsRune(p.chars, r) {
			break
		}
		word.WriteRune(r)
		end++
	}
	if end-pos < p.min {
		return NoMatch(Expectation{Pos: end, Desc: "any char in `" + p.chars + "`"})
	}
	return Match(end, word.String(), Expectation{Pos: end, Desc: "any char in `" + p.chars + "`"})
}

func (p *wordParser) String() string {
	return fmt.Sprintf("Word(%q)", p.chars)
}

// ---- Chars ----

type charsParser struct {
	count int
}

// Chars matches exactly count symbols and yields them as a single
// string.  Unlike a repetition of AnyChar, the skip parser applies
// only before the first symbol.
func Chars(count int) Parser {
	return &charsParser{count: count}
}

func (p *charsParser) Parse(c Cursor) Result {
	c = c.skipLeading()
	pos := c.Pos()
	if pos+p.count > len(c.src.input) {
		desc := fmt.Sprintf("%d more chars", p.count)
		return NoMatch(Expectation{Pos: pos, Desc: desc})
	}
	end := pos + p.count
	return Match(end, string(c.src.input[pos:end]), endOfInput(end))
}

func (p *charsParser) String() string {
	return fmt.Sprintf("Chars(%d)", p.count)
}

// ---- Trivial parsers ----

type invalidParser struct{}

// Invalid never matches.  It is occasionally useful as a placeholder
// operand while a grammar is under construction.
func Invalid() Parser { return invalidParser{} }

func (invalidParser) Parse(c Cursor) Result {
	return NoMatch(Expectation{Pos: c.Pos(), Desc: "nothing"})
}

func (invalidParser) String() string { return "Invalid()" }

type returnParser struct {
	value Value
}

// Return always succeeds, consumes nothing, and yields the given
// value.
func Return(value Value) Parser {
	return &returnParser{value: value}
}

func (p *returnParser) Parse(c Cursor) Result {
	return Match(c.Pos(), p.value, endOfInput(c.Pos()))
}

func (p *returnParser) String() string {
	return fmt.Sprintf("Return(%v)", p.value)
}
