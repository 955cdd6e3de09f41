package analytics

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/calculator-service/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
)

// Module implements the analytics consumer module.
// It consumes calculation events and tracks usage data.
type Module struct {
	store  *UsageStore
	logger types.Logger
}

// Compile-time interface checks
var (
	_ mono.Module                = (*Module)(nil)
	_ mono.EventConsumerModule   = (*Module)(nil)
	_ mono.ServiceProviderModule = (*Module)(nil)
)

// NewModule creates a new analytics module.
func NewModule(logger types.Logger) *Module {
	return &Module{
		store:  NewUsageStore(),
		logger: logger,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "analytics"
}

// RegisterEventConsumers registers event handlers for calculation events.
func (m *Module) RegisterEventConsumers(registry mono.EventRegistry) error {
	// Register consumer for CalculationCompleted events
	completedDef, ok := registry.GetEventByName("CalculationCompleted", "v1", "calculator")
	if !ok {
		return fmt.Errorf("event CalculationCompleted.v1 not found")
	}
	if err := registry.RegisterEventConsumer(completedDef, m.handleCalculationCompleted, m); err != nil {
		return fmt.Errorf("failed to register CalculationCompleted consumer: %w", err)
	}

	// Register consumer for CalculationFailed events
	failedDef, ok := registry.GetEventByName("CalculationFailed", "v1", "calculator")
	if !ok {
		return fmt.Errorf("event CalculationFailed.v1 not found")
	}
	if err := registry.RegisterEventConsumer(failedDef, m.handleCalculationFailed, m); err != nil {
		return fmt.Errorf("failed to register CalculationFailed consumer: %w", err)
	}

	m.logger.Info("Registered event consumers",
		"events", []string{"CalculationCompleted.v1", "CalculationFailed.v1"})
	return nil
}

// handleCalculationCompleted processes CalculationCompleted events.
func (m *Module) handleCalculationCompleted(_ context.Context, msg *mono.Msg) error {
	var event events.CalculationCompletedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		m.logger.Error("Failed to unmarshal CalculationCompleted event", "error", err)
		return nil // Don't retry on unmarshal errors
	}

	m.store.RecordCompleted(CalculationLog{
		CalculationID: event.CalculationID,
		Operation:     event.Operation,
		Num1:          event.Num1,
		Num2:          event.Num2,
		Result:        event.Result,
		ComputedAt:    event.ComputedAt,
	})
	m.logger.Debug("Recorded calculation",
		"operation", event.Operation,
		"result", event.Result)

	return nil
}

// handleCalculationFailed processes CalculationFailed events.
func (m *Module) handleCalculationFailed(_ context.Context, msg *mono.Msg) error {
	var event events.CalculationFailedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		m.logger.Error("Failed to unmarshal CalculationFailed event", "error", err)
		return nil // Don't retry on unmarshal errors
	}

	m.store.RecordFailed(event.Operation, event.FailedAt)
	m.logger.Info("Recorded rejected calculation",
		"operation", event.Operation,
		"reason", event.Reason)

	return nil
}

// Start initializes the analytics module.
func (m *Module) Start(_ context.Context) error {
	m.logger.Info("Analytics module started")
	return nil
}

// Stop gracefully shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	m.logger.Info("Analytics module stopped")
	return nil
}

// Store returns the usage store.
func (m *Module) Store() *UsageStore {
	return m.store
}

// RegisterServices registers this module's services in the service container.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	// Register get-usage-summary service
	if err := container.RegisterRequestReplyService("get-usage-summary", m.handleGetSummary); err != nil {
		return fmt.Errorf("failed to register get-usage-summary service: %w", err)
	}

	// Register get-recent-calculations service
	if err := container.RegisterRequestReplyService("get-recent-calculations", m.handleGetRecent); err != nil {
		return fmt.Errorf("failed to register get-recent-calculations service: %w", err)
	}

	m.logger.Info("Registered analytics services",
		"services", []string{"get-usage-summary", "get-recent-calculations"})
	return nil
}

// Service handler functions

// handleGetSummary handles get-usage-summary service requests.
func (m *Module) handleGetSummary(_ context.Context, _ *mono.Msg) ([]byte, error) {
	summary := m.store.GetSummary()
	return json.Marshal(summary)
}

// handleGetRecent handles get-recent-calculations service requests.
func (m *Module) handleGetRecent(_ context.Context, msg *mono.Msg) ([]byte, error) {
	var req struct {
		Limit int `json:"limit"`
	}
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	// Default limit
	if req.Limit <= 0 {
		req.Limit = 100
	}
	if req.Limit > 1000 {
		req.Limit = 1000
	}

	logs := m.store.GetRecentLogs(req.Limit)
	return json.Marshal(logs)
}
