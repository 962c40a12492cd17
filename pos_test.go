package parco

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationAt(t *testing.T) {
	src := newSource("ab\ncd\n\nefg")

	tests := []struct {
		name   string
		offset int
		line   int
		column int
	}{
		{name: "start of input", offset: 0, line: 1, column: 1},
		{name: "middle of first line", offset: 1, line: 1, column: 2},
		{name: "the newline belongs to its line", offset: 2, line: 1, column: 3},
		{name: "start of second line", offset: 3, line: 2, column: 1},
		{name: "empty line", offset: 6, line: 3, column: 1},
		{name: "last line", offset: 8, line: 4, column: 2},
		{name: "end of input", offset: 10, line: 4, column: 4},
		{name: "offset is clamped", offset: 99, line: 4, column: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := src.locationAt(tt.offset)
			assert.Equal(t, tt.line, loc.Line)
			assert.Equal(t, tt.column, loc.Column)
		})
	}
}

func TestDiagnosticCondensesExpectations(t *testing.T) {
	src := newSource("abcdef")
	d := src.diagnostic([]Expectation{
		{Pos: 1, Desc: "shallow"},
		{Pos: 4, Desc: "deep one"},
		{Pos: 2, Desc: "middle"},
		{Pos: 4, Desc: "deep two"},
		{Pos: 4, Desc: "deep one"},
	})

	assert.Equal(t, 4, d.Offset)
	assert.Equal(t, []string{"deep one", "deep two"}, d.Expected,
		"only the deepest expectations survive, deduplicated in first-seen order")
}

func TestDiagnosticWithoutExpectations(t *testing.T) {
	src := newSource("xyz")
	d := src.diagnostic(nil)
	assert.Equal(t, 0, d.Offset)
	assert.Equal(t, 1, d.Line)
	assert.NotEmpty(t, d.Error())
}
