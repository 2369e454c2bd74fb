package calculator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/go-calculator/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
)

// CalculatorModule exposes the expression evaluator as a request-reply service.
type CalculatorModule struct {
	eventBus mono.EventBus
	logger   types.Logger
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*CalculatorModule)(nil)
	_ mono.ServiceProviderModule = (*CalculatorModule)(nil)
	_ mono.EventBusAwareModule   = (*CalculatorModule)(nil)
	_ mono.EventEmitterModule    = (*CalculatorModule)(nil)
)

// NewModule creates a new CalculatorModule.
func NewModule(logger types.Logger) *CalculatorModule {
	return &CalculatorModule{logger: logger}
}

// Name returns the module name.
func (m *CalculatorModule) Name() string {
	return "calculator"
}

// SetEventBus receives the EventBus from the framework.
func (m *CalculatorModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module can emit.
func (m *CalculatorModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.CalculationEvaluatedV1.ToBase(),
	}
}

// RegisterServices registers request-reply services in the service container.
// "evaluate" is reachable as services.calculator.evaluate.
func (m *CalculatorModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "evaluate", json.Unmarshal, json.Marshal, m.evaluate,
	); err != nil {
		return fmt.Errorf("failed to register evaluate service: %w", err)
	}

	m.logger.Info("Registered services", "services", "services.calculator.evaluate")
	return nil
}

// Start initializes the calculator module.
func (m *CalculatorModule) Start(_ context.Context) error {
	m.logger.Info("Calculator module started")
	return nil
}

// Stop gracefully stops the calculator module.
func (m *CalculatorModule) Stop(_ context.Context) error {
	m.logger.Info("Calculator module stopped")
	return nil
}
