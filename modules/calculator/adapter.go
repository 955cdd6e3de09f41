package calculator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// CalculatorPort defines the interface for interacting with the calculator module.
// Consumers should use this interface instead of directly referencing the Module.
type CalculatorPort interface {
	Calculate(ctx context.Context, operation string, num1, num2 float64) (*CalculateResponse, error)
	ListOperations(ctx context.Context) (*ListOperationsResponse, error)
}

// calculatorAdapter implements CalculatorPort using the service container.
type calculatorAdapter struct {
	container mono.ServiceContainer
}

// NewCalculatorAdapter creates a new adapter for the calculator services.
func NewCalculatorAdapter(container mono.ServiceContainer) CalculatorPort {
	return &calculatorAdapter{
		container: container,
	}
}

// Calculate performs a calculation via the calculate service.
func (a *calculatorAdapter) Calculate(ctx context.Context, operation string, num1, num2 float64) (*CalculateResponse, error) {
	client, err := a.container.GetRequestReplyService("calculate")
	if err != nil {
		return nil, fmt.Errorf("failed to get calculate service: %w", err)
	}

	req := CalculateRequest{
		Operation: operation,
		Num1:      num1,
		Num2:      num2,
	}

	reqData, err := json.Marshal(&req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Call(ctx, reqData)
	if err != nil {
		return nil, mapServiceError(err, operation)
	}

	// Check for error response
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(resp.Data, &errResp); err == nil && errResp.Error != "" {
		return nil, mapServiceError(fmt.Errorf("%s", errResp.Error), operation)
	}

	var response CalculateResponse
	if err := json.Unmarshal(resp.Data, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &response, nil
}

// ListOperations returns the annotated operation listing via the
// list-operations service.
func (a *calculatorAdapter) ListOperations(ctx context.Context) (*ListOperationsResponse, error) {
	req := ListOperationsRequest{}

	var response ListOperationsResponse
	err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"list-operations",
		json.Marshal,
		json.Unmarshal,
		&req,
		&response,
	)
	if err != nil {
		return nil, fmt.Errorf("list-operations service call failed: %w", err)
	}
	return &response, nil
}

// mapServiceError converts service errors back to typed errors by checking
// the error message content. This is necessary because errors lose their
// type information when sent over NATS.
func mapServiceError(err error, operation string) error {
	if err == nil {
		return nil
	}

	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "cannot divide by zero") {
		return ErrDivisionByZero
	}
	if strings.Contains(errMsg, "unsupported operation") {
		return &UnsupportedOperationError{
			Operation: strings.ToLower(operation),
			Supported: SupportedOperations(),
		}
	}

	return err
}
