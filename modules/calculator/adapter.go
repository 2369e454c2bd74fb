package calculator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// calculatorAdapter wraps ServiceContainer for type-safe cross-module communication.
type calculatorAdapter struct {
	container mono.ServiceContainer
}

// NewCalculatorAdapter creates a CalculatorPort backed by the evaluate service.
// container is the ServiceContainer received via SetDependencyServiceContainer.
func NewCalculatorAdapter(container mono.ServiceContainer) CalculatorPort {
	if container == nil {
		panic("calculator adapter requires non-nil ServiceContainer")
	}
	return &calculatorAdapter{container: container}
}

// Evaluate evaluates expression via the evaluate service.
func (a *calculatorAdapter) Evaluate(ctx context.Context, expression string) (float64, error) {
	req := EvaluateRequest{Expression: expression}
	var resp EvaluateResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"evaluate",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return 0, fmt.Errorf("evaluate service call failed: %w", err)
	}
	return resp.Value()
}
