package repl

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/example/go-calculator/config"
	"github.com/example/go-calculator/modules/calculator"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
)

// ReplModule runs the interactive input loop as a driving adapter of the
// calculator module.
type ReplModule struct {
	in         io.Reader
	out        io.Writer
	cfg        config.Config
	calculator calculator.CalculatorPort
	logger     types.Logger

	cancel  context.CancelFunc
	done    chan error
	running atomic.Bool
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*ReplModule)(nil)
	_ mono.DependentModule       = (*ReplModule)(nil)
	_ mono.HealthCheckableModule = (*ReplModule)(nil)
)

// NewModule creates a ReplModule reading from in and writing to out.
func NewModule(logger types.Logger, in io.Reader, out io.Writer, cfg config.Config) *ReplModule {
	return &ReplModule{
		in:     in,
		out:    out,
		cfg:    cfg,
		logger: logger,
		done:   make(chan error, 1),
	}
}

// Name returns the module name.
func (m *ReplModule) Name() string {
	return "repl"
}

// Dependencies returns the modules this module calls.
func (m *ReplModule) Dependencies() []string {
	return []string{"calculator"}
}

// SetDependencyServiceContainer receives the calculator's service container.
func (m *ReplModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	if dependency == "calculator" {
		m.calculator = calculator.NewCalculatorAdapter(container)
	}
}

// Start launches the input loop in its own goroutine. The outcome of the
// loop is delivered once on Done.
func (m *ReplModule) Start(_ context.Context) error {
	if m.calculator == nil {
		return fmt.Errorf("required dependency 'calculator' not set")
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	loop := NewLoop(m.calculator, m.cfg.Color, m.cfg.EvaluateTimeout)
	m.running.Store(true)
	go func() {
		defer close(m.done)
		err := loop.Run(ctx, m.in, m.out)
		m.running.Store(false)
		if err != nil {
			m.logger.Debug("Input loop ended", "error", err)
		}
		m.done <- err
	}()

	m.logger.Info("Input loop started")
	return nil
}

// Done delivers the input loop's result: nil after a quit command,
// otherwise the failure that ended it.
func (m *ReplModule) Done() <-chan error {
	return m.done
}

// Stop cancels the input loop. A read already blocked on the input is not
// interrupted; the loop ends before its next prompt.
func (m *ReplModule) Stop(_ context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	m.logger.Info("Input loop stopped")
	return nil
}

// Health reports whether the input loop is still running.
func (m *ReplModule) Health(_ context.Context) mono.HealthStatus {
	message := "stopped"
	if m.running.Load() {
		message = "operational"
	}
	return mono.HealthStatus{
		Healthy: m.running.Load(),
		Message: message,
	}
}
