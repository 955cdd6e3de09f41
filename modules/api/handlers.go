package api

import (
	"errors"
	"fmt"

	"github.com/example/calculator-service/modules/calculator"
	"github.com/gofiber/fiber/v2"
)

// setupRoutes configures all HTTP routes.
func (m *Module) setupRoutes(app *fiber.App) {
	// Service metadata
	app.Get("/", m.rootHandler)

	// Calculator endpoints
	app.Post("/calculate", m.calculateHandler)
	app.Get("/operations", m.operationsHandler)

	// Usage analytics
	app.Get("/analytics", m.analyticsSummaryHandler)
	app.Get("/analytics/recent", m.analyticsRecentHandler)

	// Health check endpoint
	app.Get("/health", m.healthHandler)
}

// rootHandler handles GET / (static service metadata).
func (m *Module) rootHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":     "Welcome to Calculator API",
		"description": "A modular calculator with separated business logic",
		"version":     serviceVersion,
		"endpoints": fiber.Map{
			"calculate":  "POST /calculate",
			"operations": "GET /operations",
			"analytics":  "GET /analytics",
			"health":     "GET /health",
		},
	})
}

// calculateHandler handles POST /calculate.
func (m *Module) calculateHandler(c *fiber.Ctx) error {
	var req CalculateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Detail: "Invalid request body",
		})
	}

	// Validate request fields
	if req.Operation == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Detail: "operation is required",
		})
	}
	if req.Num1 == nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Detail: "num1 is required",
		})
	}
	if req.Num2 == nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Detail: "num2 is required",
		})
	}

	resp, err := m.calculator.Calculate(c.UserContext(), req.Operation, *req.Num1, *req.Num2)
	if err != nil {
		var unsupported *calculator.UnsupportedOperationError
		if errors.Is(err, calculator.ErrDivisionByZero) || errors.As(err, &unsupported) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Detail: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Detail: fmt.Sprintf("An unexpected error occurred: %v", err),
		})
	}

	return c.JSON(CalculationResponse{
		Operation: resp.Operation,
		Num1:      resp.Num1,
		Num2:      resp.Num2,
		Result:    resp.Result,
	})
}

// operationsHandler handles GET /operations.
func (m *Module) operationsHandler(c *fiber.Ctx) error {
	resp, err := m.calculator.ListOperations(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Detail: "Failed to list operations",
		})
	}

	return c.JSON(OperationsResponse{
		SupportedOperations: resp.SupportedOperations,
		TotalCount:          resp.TotalCount,
	})
}

// analyticsSummaryHandler handles GET /analytics.
func (m *Module) analyticsSummaryHandler(c *fiber.Ctx) error {
	summary, err := m.analytics.GetSummary(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Detail: "Failed to get usage summary",
		})
	}
	return c.JSON(summary)
}

// analyticsRecentHandler handles GET /analytics/recent.
func (m *Module) analyticsRecentHandler(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)

	logs, err := m.analytics.GetRecentCalculations(c.UserContext(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Detail: "Failed to get recent calculations",
		})
	}

	return c.JSON(fiber.Map{
		"recent_calculations": logs,
		"count":               len(logs),
	})
}

// healthHandler handles GET /health.
func (m *Module) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:          "healthy",
		CalculatorReady: m.calculator != nil,
		Version:         serviceVersion,
	})
}
