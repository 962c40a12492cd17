package parco

import (
	"fmt"
	"strings"
)

// Value is the result of a successful parse.  Three shapes flow
// through the combinators: the absent value (untyped nil), a single
// opaque value, and an ordered Tuple of values.  Then and Repeat apply
// the absorption and flattening rules documented on each combinator.
type Value = any

// Tuple is an ordered sequence of parse results.  Chains of Then
// accumulate one flat Tuple instead of nested pairs.
type Tuple []Value

func (t Tuple) String() string {
	var s strings.Builder
	s.WriteString("Tuple(")
	for i, item := range t {
		if i > 0 {
			s.WriteString(", ")
		}
		fmt.Fprintf(&s, "%v", item)
	}
	s.WriteString(")")
	return s.String()
}

// combine merges the result values of two sequenced parsers.  Absent
// values are absorbed, tuples are spliced in flat, and any other pair
// of values becomes a fresh two-element tuple.
func combine(a, b Value) Value {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	ta, aok := a.(Tuple)
	tb, bok := b.(Tuple)
	switch {
	case aok && bok:
		out := make(Tuple, 0, len(ta)+len(tb))
		out = append(out, ta...)
		return append(out, tb...)
	case aok:
		out := make(Tuple, 0, len(ta)+1)
		out = append(out, ta...)
		return append(out, b)
	case bok:
		out := make(Tuple, 0, len(tb)+1)
		out = append(out, a)
		return append(out, tb...)
	default:
		return Tuple{a, b}
	}
}

// Flatten recursively splices nested tuples into a single flat Tuple.
// The absent value flattens to the empty tuple, and a lone value to a
// one-element tuple.  It is meant to be used with Translate on parsers
// that build up nested sequences.
func Flatten(v Value) Tuple {
	if v == nil {
		return Tuple{}
	}
	t, ok := v.(Tuple)
	if !ok {
		return Tuple{v}
	}
	out := make(Tuple, 0, len(t))
	for _, item := range t {
		out = append(out, Flatten(item)...)
	}
	return out
}

// JoinText concatenates every string reachable within v, walking
// tuples recursively.  The absent value contributes nothing.  It
// mirrors the common "flatten then join" step used to reassemble the
// text matched by a chain of single-symbol parsers.
func JoinText(v Value) string {
	var s strings.Builder
	joinText(&s, v)
	return s.String()
}

func joinText(s *strings.Builder, v Value) {
	switch val := v.(type) {
	case nil:
	case string:
		s.WriteString(val)
	case Tuple:
		for _, item := range val {
			joinText(s, item)
		}
	default:
		fmt.Fprintf(s, "%v", val)
	}
}
