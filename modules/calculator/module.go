package calculator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/calculator-service/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
)

// Module implements the calculator core domain module.
type Module struct {
	service  *Service
	eventBus mono.EventBus
	logger   types.Logger
}

// Compile-time interface checks
var (
	_ mono.Module                = (*Module)(nil)
	_ mono.ServiceProviderModule = (*Module)(nil)
	_ mono.EventBusAwareModule   = (*Module)(nil)
	_ mono.EventEmitterModule    = (*Module)(nil)
)

// NewModule creates a new calculator module.
func NewModule(logger types.Logger) *Module {
	return &Module{
		service: NewService(),
		logger:  logger,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "calculator"
}

// SetEventBus receives the EventBus from the framework.
func (m *Module) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module can emit.
func (m *Module) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.CalculationCompletedV1.ToBase(),
		events.CalculationFailedV1.ToBase(),
	}
}

// RegisterServices registers this module's services in the service container.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "calculate", json.Unmarshal, json.Marshal, m.handleCalculate,
	); err != nil {
		return fmt.Errorf("failed to register calculate service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list-operations", json.Unmarshal, json.Marshal, m.handleListOperations,
	); err != nil {
		return fmt.Errorf("failed to register list-operations service: %w", err)
	}

	m.logger.Info("Registered calculator services",
		"services", []string{"calculate", "list-operations"})
	return nil
}

// Start initializes the module.
func (m *Module) Start(_ context.Context) error {
	if m.eventBus == nil {
		m.logger.Warn("EventBus not set, calculation events will not be published")
	}
	m.logger.Info("Calculator module started",
		"operations", SupportedOperations())
	return nil
}

// Stop gracefully shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	m.logger.Info("Calculator module stopped")
	return nil
}

// Service returns the calculator service instance.
func (m *Module) Service() *Service {
	return m.service
}

// PublishCalculationCompleted publishes a CalculationCompleted event.
func (m *Module) PublishCalculationCompleted(event events.CalculationCompletedEvent) error {
	if m.eventBus == nil {
		return nil
	}
	return events.CalculationCompletedV1.Publish(m.eventBus, event, nil)
}

// PublishCalculationFailed publishes a CalculationFailed event.
func (m *Module) PublishCalculationFailed(event events.CalculationFailedEvent) error {
	if m.eventBus == nil {
		return nil
	}
	return events.CalculationFailedV1.Publish(m.eventBus, event, nil)
}
