package calculator

import (
	"context"
	"errors"
	"time"

	"github.com/example/go-calculator/domain/calc"
	"github.com/example/go-calculator/events"
	"github.com/go-monolith/mono"
	"github.com/google/uuid"
)

// evaluate handles the calculator.evaluate service request.
// Evaluation failures are returned in the response, not as Go errors.
func (m *CalculatorModule) evaluate(_ context.Context, req EvaluateRequest, _ *mono.Msg) (EvaluateResponse, error) {
	resp := EvaluateResponse{
		ID:         uuid.New().String(),
		Expression: req.Expression,
	}

	cmd, err := calc.Parse(req.Expression)
	var value float64
	if err == nil {
		value, err = cmd.Eval()
	}

	var calcErr *calc.Error
	switch {
	case err == nil:
		resp.Result = encodeResult(value)
	case errors.As(err, &calcErr):
		resp.ErrorKind = calcErr.Kind.String()
		resp.Token = calcErr.Token
		resp.Error = calcErr.Error()
	default:
		resp.Error = err.Error()
	}

	m.publishEvaluated(resp, appliedOperator(cmd, err))
	return resp, nil
}

// appliedOperator returns the operator that was dispatched for cmd, or ""
// when evaluation stopped before reaching it.
func appliedOperator(cmd calc.Command, err error) string {
	if err == nil || errors.Is(err, calc.ErrDivisionByZero) {
		return cmd.Operator
	}
	return ""
}

func (m *CalculatorModule) publishEvaluated(resp EvaluateResponse, operator string) {
	if m.eventBus == nil {
		return
	}

	event := events.CalculationEvaluatedEvent{
		CalculationID: resp.ID,
		Expression:    resp.Expression,
		Operator:      operator,
		Result:        resp.Result,
		ErrorKind:     resp.ErrorKind,
		EvaluatedAt:   time.Now(),
	}
	if err := events.CalculationEvaluatedV1.Publish(m.eventBus, event, nil); err != nil {
		// Best effort; the caller still gets its answer.
		m.logger.Warn("Failed to publish CalculationEvaluated event",
			"calculation_id", resp.ID,
			"error", err)
	}
}
