package parco

import "fmt"

// Operator pairs an operator matcher with the function that reduces
// the values on either side of it.  The matcher's own result value is
// discarded.
type Operator struct {
	Match  Parser
	Reduce func(left, right Value) Value
}

// Op builds an Operator, promoting a bare string into a Literal
// matcher.
func Op(match any, reduce func(left, right Value) Value) Operator {
	return Operator{Match: lift(match), Reduce: reduce}
}

type infixParser struct {
	term      Parser
	operators []Operator
}

// InfixExpr parses left-associative infix expressions: a term,
// followed by any number of operator/term pairs, reducing as it goes
// so "10-3-2" evaluates as (10-3)-2.  At each step the operator
// matchers are tried in table order; the order expresses nothing about
// precedence.  Differing precedence levels are built by nesting: an
// outer InfixExpr whose term is an inner InfixExpr binds more loosely,
// since the inner layer fully resolves its own operators first.
//
// An operator match commits to an operand: when a matched operator is
// not followed by a term, the whole expression fails.
func InfixExpr(term any, operators []Operator) Parser {
	if len(operators) == 0 {
		panic("parco: InfixExpr needs at least one operator")
	}
	return &infixParser{term: lift(term), operators: operators}
}

func (p *infixParser) Parse(c Cursor) Result {
	r := p.term.Parse(c)
	if !r.Matched {
		return r
	}
	value, pos := r.Value, r.End
	for {
		// Thread the last term's expectations together with
		// those of every operator that failed to match here, so
		// a failure past this expression still reports what
		// could have extended it.
		expected := mergeExpectations(r.Expected)
		var (
			matched *Operator
			opEnd   int
		)
		for i := range p.operators {
			or := p.operators[i].Match.Parse(c.At(pos))
			if or.Fatal != nil {
				return or
			}
			if or.Matched {
				matched = &p.operators[i]
				opEnd = or.End
				break
			}
			expected = append(expected, or.Expected...)
		}
		if matched == nil {
			return Match(pos, value, expected...)
		}
		r = p.term.Parse(c.At(opEnd))
		if !r.Matched {
			return r
		}
		value = matched.Reduce(value, r.Value)
		pos = r.End
	}
}

func (p *infixParser) String() string {
	return fmt.Sprintf("InfixExpr(%s, %d operators)", describe(p.term), len(p.operators))
}
