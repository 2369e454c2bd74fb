package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/example/go-calculator/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
)

// StatsModule tallies CalculationEvaluated events for the running session.
// Nothing is persisted.
type StatsModule struct {
	mu         sync.RWMutex
	total      int
	succeeded  int
	byOperator map[string]int
	byError    map[string]int
	logger     types.Logger
}

var _ mono.Module = (*StatsModule)(nil)
var _ mono.EventConsumerModule = (*StatsModule)(nil)
var _ mono.ServiceProviderModule = (*StatsModule)(nil)

func NewModule(logger types.Logger) *StatsModule {
	return &StatsModule{
		byOperator: make(map[string]int),
		byError:    make(map[string]int),
		logger:     logger,
	}
}

func (m *StatsModule) Name() string {
	return "stats"
}

func (m *StatsModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.CalculationEvaluatedV1, m.handleCalculationEvaluated, m); err != nil {
		return fmt.Errorf("failed to register CalculationEvaluated consumer: %w", err)
	}

	m.logger.Info("Registered event consumers", "events", "CalculationEvaluated")
	return nil
}

func (m *StatsModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "session-stats", json.Unmarshal, json.Marshal, m.sessionStats,
	); err != nil {
		return fmt.Errorf("failed to register session-stats service: %w", err)
	}
	return nil
}

func (m *StatsModule) handleCalculationEvaluated(_ context.Context, event events.CalculationEvaluatedEvent, _ *mono.Msg) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total++
	if event.Succeeded() {
		m.succeeded++
	} else {
		m.byError[event.ErrorKind]++
	}
	if event.Operator != "" {
		m.byOperator[event.Operator]++
	}
	return nil
}

func (m *StatsModule) sessionStats(_ context.Context, _ SessionStatsRequest, _ *mono.Msg) (SessionStatsResponse, error) {
	return m.Snapshot(), nil
}

// Snapshot returns a copy of the current tally.
func (m *StatsModule) Snapshot() SessionStatsResponse {
	m.mu.RLock()
	defer m.mu.RUnlock()

	resp := SessionStatsResponse{
		Total:      m.total,
		Succeeded:  m.succeeded,
		Failed:     m.total - m.succeeded,
		ByOperator: make(map[string]int, len(m.byOperator)),
		ByError:    make(map[string]int, len(m.byError)),
	}
	for k, v := range m.byOperator {
		resp.ByOperator[k] = v
	}
	for k, v := range m.byError {
		resp.ByError[k] = v
	}
	return resp
}

func (m *StatsModule) Start(_ context.Context) error {
	m.logger.Info("Stats module started - listening for calculation events")
	return nil
}

func (m *StatsModule) Stop(_ context.Context) error {
	s := m.Snapshot()
	m.logger.Info("Stats module stopped",
		"total", s.Total,
		"succeeded", s.Succeeded,
		"failed", s.Failed)
	return nil
}
