package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// CalculationEvaluatedEvent is emitted after every evaluation, successful or not.
// Operator is set only when one of +, -, * or / was applied.
type CalculationEvaluatedEvent struct {
	CalculationID string    `json:"calculation_id"`
	Expression    string    `json:"expression"`
	Operator      string    `json:"operator,omitempty"`
	Result        string    `json:"result,omitempty"`
	ErrorKind     string    `json:"error_kind,omitempty"`
	EvaluatedAt   time.Time `json:"evaluated_at"`
}

// Succeeded reports whether the evaluation produced a value.
func (e CalculationEvaluatedEvent) Succeeded() bool {
	return e.ErrorKind == ""
}

// CalculationEvaluatedV1 is the typed event definition for evaluations.
// Subject: events.calculator.v1.calculation-evaluated
var CalculationEvaluatedV1 = helper.EventDefinition[CalculationEvaluatedEvent](
	"calculator", "CalculationEvaluated", "v1",
)
