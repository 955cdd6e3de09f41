package calculator

import (
	"context"
	"time"

	"github.com/example/calculator-service/events"
	"github.com/go-monolith/mono"
)

// handleCalculate handles the calculate service request.
func (m *Module) handleCalculate(ctx context.Context, req CalculateRequest, _ *mono.Msg) (CalculateResponse, error) {
	calc, err := m.service.Calculate(ctx, req.Operation, req.Num1, req.Num2)
	if err != nil {
		// Event publishing is best-effort; log but don't mask the rejection
		if pubErr := m.PublishCalculationFailed(events.CalculationFailedEvent{
			Operation: req.Operation,
			Num1:      req.Num1,
			Num2:      req.Num2,
			Reason:    err.Error(),
			FailedAt:  time.Now(),
		}); pubErr != nil {
			m.logger.Warn("Failed to publish CalculationFailed event",
				"operation", req.Operation, "error", pubErr)
		}
		return CalculateResponse{}, err
	}

	if pubErr := m.PublishCalculationCompleted(events.CalculationCompletedEvent{
		CalculationID: calc.ID,
		Operation:     calc.Operation,
		Num1:          calc.Num1,
		Num2:          calc.Num2,
		Result:        calc.Result,
		ComputedAt:    calc.ComputedAt,
	}); pubErr != nil {
		m.logger.Warn("Failed to publish CalculationCompleted event",
			"calculationID", calc.ID, "error", pubErr)
	}

	return CalculateResponse{
		CalculationID: calc.ID,
		Operation:     calc.Operation,
		Num1:          calc.Num1,
		Num2:          calc.Num2,
		Result:        calc.Result,
		ComputedAt:    calc.ComputedAt,
	}, nil
}

// handleListOperations handles the list-operations service request.
func (m *Module) handleListOperations(_ context.Context, _ ListOperationsRequest, _ *mono.Msg) (ListOperationsResponse, error) {
	catalog := m.service.OperationCatalog()
	return ListOperationsResponse{
		SupportedOperations: catalog,
		TotalCount:          len(catalog),
	}, nil
}
