package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/calculator-service/modules/analytics"
	"github.com/example/calculator-service/modules/api"
	"github.com/example/calculator-service/modules/calculator"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Calculator API - Fiber + mono modules ===")

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	logger := app.Logger()

	// Register modules with the framework.
	// Order: independent modules first, then modules with dependencies
	// - analytics: Event consumer (subscribes to calculation events)
	// - calculator: Core domain (arithmetic engine, emits events)
	// - api: Driving adapter (Fiber HTTP server, depends on both)
	app.Register(analytics.NewModule(logger))  // Event consumer
	app.Register(calculator.NewModule(logger)) // Core domain + event emitter
	app.Register(api.NewModule(logger))        // HTTP API

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("Architecture:")
	log.Println("  - HTTP Framework: Fiber")
	log.Println("  - Core Domain: arithmetic engine (add, subtract, multiply, divide)")
	log.Println("")
	log.Println("Event-Driven Analytics:")
	log.Println("  - CalculationCompleted events -> analytics module")
	log.Println("  - CalculationFailed events    -> analytics module")
	log.Println("")
	log.Printf("REST API Endpoints (http://localhost:%s):", port)
	log.Println("  POST   /calculate          - Perform a calculation")
	log.Println("  GET    /operations         - List supported operations")
	log.Println("  GET    /analytics          - Usage summary")
	log.Println("  GET    /analytics/recent   - Recent calculations")
	log.Println("  GET    /health             - Health check")
	log.Println("  GET    /                   - Service metadata")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
