package api

import (
	"context"
	"fmt"
	"os"

	"github.com/example/calculator-service/modules/analytics"
	"github.com/example/calculator-service/modules/calculator"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// serviceVersion is reported by the health and metadata endpoints.
const serviceVersion = "2.0.0"

// Module is the driving adapter that exposes REST endpoints using Fiber.
type Module struct {
	app        *fiber.App
	calculator calculator.CalculatorPort
	analytics  analytics.AnalyticsPort
	port       string
	logger     types.Logger
}

// Compile-time interface checks
var (
	_ mono.Module                = (*Module)(nil)
	_ mono.DependentModule       = (*Module)(nil)
	_ mono.HealthCheckableModule = (*Module)(nil)
)

// NewModule creates a new API module.
func NewModule(moduleLogger types.Logger) *Module {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	return &Module{
		port:   port,
		logger: moduleLogger,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies.
func (m *Module) Dependencies() []string {
	return []string{"calculator", "analytics"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *Module) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "calculator":
		m.calculator = calculator.NewCalculatorAdapter(container)
	case "analytics":
		m.analytics = analytics.NewAnalyticsAdapter(container)
	}
}

// Start initializes the Fiber HTTP server.
func (m *Module) Start(_ context.Context) error {
	if m.calculator == nil {
		return fmt.Errorf("calculator dependency not set")
	}
	if m.analytics == nil {
		return fmt.Errorf("analytics dependency not set")
	}

	m.app = m.newFiberApp()

	// Start server in goroutine
	go func() {
		if err := m.app.Listen(":" + m.port); err != nil {
			m.logger.Error("HTTP server error", "error", err)
		}
	}()

	m.logger.Info("HTTP server started", "port", m.port)
	return nil
}

// Stop shuts down the Fiber HTTP server.
func (m *Module) Stop(ctx context.Context) error {
	if m.app == nil {
		return nil
	}
	m.logger.Info("Shutting down HTTP server...")
	return m.app.ShutdownWithContext(ctx)
}

// Health returns the health status of the module.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"port":    m.port,
			"version": serviceVersion,
		},
	}
}

// newFiberApp builds the Fiber application with middleware and routes.
func (m *Module) newFiberApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Calculator API",
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler,
	})

	// Add recovery and logging middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} ${method} ${path} ${latency}\n",
	}))

	m.setupRoutes(app)
	return app
}

// customErrorHandler handles Fiber errors.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(ErrorResponse{
		Detail: message,
	})
}
