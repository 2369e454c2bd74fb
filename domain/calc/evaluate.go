// Package calc evaluates single binary arithmetic expressions of the form
// "number operator number".
//
// Everything in this package is pure: no I/O, no logging and no state shared
// between calls, so the same input always produces the same outcome.
package calc

import (
	"errors"
	"strconv"
	"strings"
)

// Command is a line split into its three tokens.
type Command struct {
	Left     string
	Operator string
	Right    string
}

// Parse splits line on runs of whitespace. It fails with ErrMalformedInput
// unless exactly three tokens are present.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Command{}, ErrMalformedInput
	}
	return Command{Left: fields[0], Operator: fields[1], Right: fields[2]}, nil
}

// Eval parses both operands, left first, then applies the operator.
func (c Command) Eval() (float64, error) {
	a, err := parseOperand(c.Left)
	if err != nil {
		return 0, err
	}
	b, err := parseOperand(c.Right)
	if err != nil {
		return 0, err
	}

	op, ok := ParseOperator(c.Operator)
	if !ok {
		return 0, &Error{Kind: KindUnsupportedOperator, Token: c.Operator}
	}
	return op.Apply(a, b)
}

// Evaluate computes the value of line. Failures are always *Error.
func Evaluate(line string) (float64, error) {
	cmd, err := Parse(line)
	if err != nil {
		return 0, err
	}
	return cmd.Eval()
}

// parseOperand accepts whatever strconv.ParseFloat accepts. Out-of-range
// literals keep the saturated value ParseFloat returns instead of failing.
func parseOperand(token string) (float64, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return v, nil
	}
	return 0, &Error{Kind: KindInvalidOperand, Token: token}
}

// FormatResult renders v as the shortest decimal that round-trips,
// without an exponent: 8, 2.5, -0, +Inf, NaN.
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
