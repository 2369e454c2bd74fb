package calculator

import (
	"context"
	"fmt"
	"strconv"

	"github.com/example/go-calculator/domain/calc"
)

// EvaluateRequest is the request for the evaluate service.
type EvaluateRequest struct {
	Expression string `json:"expression"`
}

// EvaluateResponse is the response from the evaluate service.
// Result is a string because JSON has no encoding for ±Inf and NaN.
type EvaluateResponse struct {
	ID         string `json:"id"`
	Expression string `json:"expression"`
	Result     string `json:"result,omitempty"`
	ErrorKind  string `json:"error_kind,omitempty"`
	Token      string `json:"token,omitempty"`
	Error      string `json:"error,omitempty"`
}

// CalculatorPort is the port dependents use to evaluate expressions.
// Evaluation failures are returned as *calc.Error; any other error means
// the evaluation could not be performed at all.
type CalculatorPort interface {
	Evaluate(ctx context.Context, expression string) (float64, error)
}

// encodeResult renders v so that decodeResult recovers it bit for bit.
func encodeResult(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func decodeResult(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid result %q: %w", s, err)
	}
	return v, nil
}

// Value converts the response back into the evaluator's outcome.
func (r EvaluateResponse) Value() (float64, error) {
	if r.ErrorKind != "" {
		kind, ok := calc.ParseKind(r.ErrorKind)
		if !ok {
			return 0, fmt.Errorf("unknown error kind %q: %s", r.ErrorKind, r.Error)
		}
		return 0, &calc.Error{Kind: kind, Token: r.Token}
	}
	return decodeResult(r.Result)
}
