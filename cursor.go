package parco

import "unicode"

const eof = -1

// Cursor is an immutable view of the input plus an offset.  Advancing
// produces a new cursor and never mutates the original, so a single
// grammar can drive any number of concurrent parses over distinct
// inputs.  Offsets are rune-based.
type Cursor struct {
	src  *source
	pos  int
	skip Parser
}

// Pos returns the cursor's offset into the input.
func (c Cursor) Pos() int { return c.pos }

// Peek returns the symbol under the cursor, or eof once the entire
// input has been consumed.
func (c Cursor) Peek() rune {
	if c.pos >= len(c.src.input) {
		return eof
	}
	return c.src.input[c.pos]
}

// At returns a cursor over the same input positioned at pos.
func (c Cursor) At(pos int) Cursor {
	c.pos = pos
	return c
}

func (c Cursor) withSkip(p Parser) Cursor {
	c.skip = p
	return c
}

func (c Cursor) atEnd() bool {
	return c.pos >= len(c.src.input)
}

func (c Cursor) hasPrefix(text []rune) bool {
	if c.pos+len(text) > len(c.src.input) {
		return false
	}
	for i, r := range text {
		if c.src.input[c.pos+i] != r {
			return false
		}
	}
	return true
}

// hasPrefixFold is the case-insensitive variant of hasPrefix; text
// must already be lower-cased.
func (c Cursor) hasPrefixFold(text []rune) bool {
	if c.pos+len(text) > len(c.src.input) {
		return false
	}
	for i, r := range text {
		if unicode.ToLower(c.src.input[c.pos+i]) != r {
			return false
		}
	}
	return true
}

// skipLeading repeatedly applies the cursor's skip parser, discarding
// whatever it matches, and returns the cursor past the skipped input.
// The skip parser itself runs without skipping.
func (c Cursor) skipLeading() Cursor {
	if c.skip == nil {
		return c
	}
	bare := c.withSkip(nil)
	for {
		r := c.skip.Parse(bare)
		if !r.Matched || r.End == bare.pos {
			return c.At(bare.pos)
		}
		bare.pos = r.End
	}
}
