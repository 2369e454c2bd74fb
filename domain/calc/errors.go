package calc

import "fmt"

// Kind classifies an evaluation failure.
type Kind int

// Evaluation failure kinds.
const (
	KindMalformedInput Kind = iota + 1
	KindInvalidOperand
	KindUnsupportedOperator
	KindDivisionByZero
)

var kindNames = map[Kind]string{
	KindMalformedInput:      "malformed_input",
	KindInvalidOperand:      "invalid_operand",
	KindUnsupportedOperator: "unsupported_operator",
	KindDivisionByZero:      "division_by_zero",
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Error is an evaluation failure. Token holds the offending literal for
// KindInvalidOperand and KindUnsupportedOperator and is empty otherwise.
type Error struct {
	Kind  Kind
	Token string
}

// Sentinel errors, one per kind. errors.Is matches any *Error of the same kind.
var (
	ErrMalformedInput      = &Error{Kind: KindMalformedInput}
	ErrInvalidOperand      = &Error{Kind: KindInvalidOperand}
	ErrUnsupportedOperator = &Error{Kind: KindUnsupportedOperator}
	ErrDivisionByZero      = &Error{Kind: KindDivisionByZero}
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindMalformedInput:
		return "Format should be: number operator number"
	case KindInvalidOperand:
		return fmt.Sprintf("'%s' is not a valid number", e.Token)
	case KindUnsupportedOperator:
		return "Unsupported operator: " + e.Token
	case KindDivisionByZero:
		return "Cannot divide by zero!"
	default:
		return "evaluation failed: " + e.Kind.String()
	}
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
