package calc

// Operator selects one of the supported arithmetic operations.
type Operator string

// Supported operators.
const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
)

// ParseOperator maps an operator token to an Operator.
// It reports false for any token outside {+, -, *, /}.
func ParseOperator(token string) (Operator, bool) {
	switch op := Operator(token); op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return op, true
	}
	return "", false
}

// Apply computes a op b.
func (op Operator) Apply(a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		// -0 compares equal to 0 as well.
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		return 0, &Error{Kind: KindUnsupportedOperator, Token: string(op)}
	}
}
