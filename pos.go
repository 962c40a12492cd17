package parco

import (
	"fmt"
	"sort"
)

// Location is a human-oriented position within a textual input.  Line
// and Column are 1-based; Offset is the rune offset the parser works
// with.
type Location struct {
	Offset int
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// source holds the decoded input shared by every cursor of one parse
// invocation, plus a lazily built index of line starts used to turn
// offsets into line/column pairs for diagnostics.
type source struct {
	input     []rune
	lineStart []int
}

func newSource(input string) *source {
	return &source{input: []rune(input)}
}

func (s *source) at(pos int) rune {
	if pos < 0 || pos >= len(s.input) {
		return eof
	}
	return s.input[pos]
}

// locationAt translates a rune offset into a Location.  The line-start
// index is built on first use; diagnostics are the only consumer.
func (s *source) locationAt(offset int) Location {
	if offset < 0 {
		offset = 0
	}
	if offset > len(s.input) {
		offset = len(s.input)
	}
	if s.lineStart == nil {
		// Line 1 always starts at offset 0.
		s.lineStart = append(s.lineStart, 0)
		for i, r := range s.input {
			if r == '\n' {
				s.lineStart = append(s.lineStart, i+1)
			}
		}
	}

	// Find the first line starting after offset, then step back one.
	idx := sort.Search(len(s.lineStart), func(i int) bool {
		return s.lineStart[i] > offset
	}) - 1
	if idx < 0 {
		idx = 0
	}
	return Location{
		Offset: offset,
		Line:   idx + 1,
		Column: offset - s.lineStart[idx] + 1,
	}
}
