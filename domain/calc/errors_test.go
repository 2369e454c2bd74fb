package calc

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind_RoundTrip(t *testing.T) {
	for _, k := range []Kind{KindMalformedInput, KindInvalidOperand, KindUnsupportedOperator, KindDivisionByZero} {
		got, ok := ParseKind(k.String())
		if !ok {
			t.Fatalf("ParseKind(%q) not found", k.String())
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}

	if _, ok := ParseKind("overflow"); ok {
		t.Error("ParseKind(\"overflow\") should fail")
	}
}

func TestError_IsMatchesKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("evaluate: %w", &Error{Kind: KindInvalidOperand, Token: "abc"})

	if !errors.Is(err, ErrInvalidOperand) {
		t.Errorf("errors.Is(%v, ErrInvalidOperand) = false", err)
	}
	if errors.Is(err, ErrUnsupportedOperator) {
		t.Errorf("errors.Is(%v, ErrUnsupportedOperator) = true", err)
	}
}

func TestOperator_Apply(t *testing.T) {
	if _, err := Operator("%").Apply(1, 2); !errors.Is(err, ErrUnsupportedOperator) {
		t.Errorf("Apply with %% error = %v, want ErrUnsupportedOperator", err)
	}
	if got, err := OpMultiply.Apply(7, 8); err != nil || got != 56 {
		t.Errorf("OpMultiply.Apply(7, 8) = %v, %v", got, err)
	}
}
