package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	parco "github.com/parco-lang/parco"
)

// ANSI color codes for terminal output
const (
	colorReset = "\033[0m"
	colorRed   = "\033[1;31m"
	colorCyan  = "\033[1;36m"
	colorGray  = "\033[0;37m"
)

type args struct {
	expression  *string
	interactive *bool
	noColor     *bool
}

func readArgs() *args {
	a := &args{
		expression:  flag.String("e", "", "Expression to evaluate"),
		interactive: flag.Bool("i", false, "Read expressions from stdin, one per line"),
		noColor:     flag.Bool("no-color", false, "Disable ANSI colors in error output"),
	}
	flag.Parse()
	return a
}

// grammar builds the calculator: numbers with an optional fraction,
// parenthesized groups, and two precedence levels built by nesting
// InfixExpr layers.
func grammar() parco.Parser {
	expr := &parco.Forward{}

	number := parco.Translate(
		parco.Exact(parco.Then(
			parco.OneOrMore(parco.Digit()),
			parco.Optional(parco.Then(
				parco.SignificantLiteral("."),
				parco.OneOrMore(parco.Digit()),
			)),
		)),
		func(v parco.Value) (parco.Value, error) {
			return strconv.ParseFloat(parco.JoinText(v), 64)
		},
	)

	term := parco.First(number, parco.Seq("(", expr, ")"))
	product := parco.InfixExpr(term, []parco.Operator{
		parco.Op("*", func(a, b parco.Value) parco.Value { return a.(float64) * b.(float64) }),
		parco.Op("/", func(a, b parco.Value) parco.Value { return a.(float64) / b.(float64) }),
	})
	sum := parco.InfixExpr(product, []parco.Operator{
		parco.Op("+", func(a, b parco.Value) parco.Value { return a.(float64) + b.(float64) }),
		parco.Op("-", func(a, b parco.Value) parco.Value { return a.(float64) - b.(float64) }),
	})
	expr.Set(sum)
	return expr
}

func evaluate(expr parco.Parser, input string, color bool) bool {
	v, err := parco.Parse(expr, input, parco.Skipping(parco.Whitespace()))
	if err != nil {
		printError(input, err, color)
		return false
	}
	fmt.Println(v)
	return true
}

// printError renders a diagnostic with a caret under the failure
// position; other error kinds print as-is.
func printError(input string, err error, color bool) {
	red, gray, reset := colorRed, colorGray, colorReset
	if !color {
		red, gray, reset = "", "", ""
	}

	var d *parco.Diagnostic
	if !errors.As(err, &d) {
		fmt.Fprintf(os.Stderr, "%serror:%s %s\n", red, reset, err)
		return
	}

	fmt.Fprintf(os.Stderr, "%serror:%s %s\n", red, reset, d)
	fmt.Fprintf(os.Stderr, "%s  %s%s\n", gray, input, reset)
	fmt.Fprintf(os.Stderr, "  %s%s^%s\n", strings.Repeat(" ", d.Offset), red, reset)
}

func repl(expr parco.Parser, color bool) {
	cyan, reset := colorCyan, colorReset
	if !color {
		cyan, reset = "", ""
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%s> %s", cyan, reset)
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		evaluate(expr, line, color)
	}
}

func main() {
	a := readArgs()
	expr := grammar()
	color := !*a.noColor

	switch {
	case *a.interactive:
		repl(expr, color)
	case *a.expression != "":
		if !evaluate(expr, *a.expression, color) {
			os.Exit(1)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}
