package analytics

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// AnalyticsPort defines the interface for interacting with the analytics module.
// Consumers should use this interface instead of directly referencing the Module.
type AnalyticsPort interface {
	GetSummary(ctx context.Context) (map[string]any, error)
	GetRecentCalculations(ctx context.Context, limit int) ([]CalculationLog, error)
}

// analyticsAdapter implements AnalyticsPort using the service container.
type analyticsAdapter struct {
	container mono.ServiceContainer
}

// NewAnalyticsAdapter creates a new adapter for the analytics services.
func NewAnalyticsAdapter(container mono.ServiceContainer) AnalyticsPort {
	return &analyticsAdapter{
		container: container,
	}
}

// GetSummary retrieves the usage summary.
func (a *analyticsAdapter) GetSummary(ctx context.Context) (map[string]any, error) {
	client, err := a.container.GetRequestReplyService("get-usage-summary")
	if err != nil {
		return nil, fmt.Errorf("failed to get get-usage-summary service: %w", err)
	}

	resp, err := client.Call(ctx, []byte{})
	if err != nil {
		return nil, fmt.Errorf("get-usage-summary service call failed: %w", err)
	}

	var response map[string]any
	if err := json.Unmarshal(resp.Data, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return response, nil
}

// GetRecentCalculations retrieves recent calculation logs.
func (a *analyticsAdapter) GetRecentCalculations(ctx context.Context, limit int) ([]CalculationLog, error) {
	req := struct {
		Limit int `json:"limit"`
	}{
		Limit: limit,
	}

	var response []CalculationLog
	err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"get-recent-calculations",
		json.Marshal,
		json.Unmarshal,
		&req,
		&response,
	)
	if err != nil {
		return nil, fmt.Errorf("get-recent-calculations service call failed: %w", err)
	}
	return response, nil
}
