package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/example/go-calculator/config"
	"github.com/example/go-calculator/modules/calculator"
	"github.com/example/go-calculator/modules/repl"
	"github.com/example/go-calculator/modules/stats"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

type stopper interface {
	Stop(ctx context.Context) error
}

func main() {
	cfg := config.Load()

	app, done, err := start(cfg, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	// Setup graceful shutdown for SIGINT/SIGTERM while the loop is waiting on input
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				return app.Stop(ctx)
			},
		},
	)

	select {
	case exitCode := <-wait:
		os.Exit(exitCode)
	case loopErr := <-done:
		os.Exit(finish(app, cfg, loopErr))
	}
}

// start builds and starts the mono application with the input loop bound to
// in and out. The returned channel delivers the loop's outcome.
func start(cfg config.Config, in io.Reader, out io.Writer) (stopper, <-chan error, error) {
	logLevel := mono.WithLogLevel(mono.LogLevelError)
	switch cfg.LogLevel {
	case "debug":
		logLevel = mono.WithLogLevel(mono.LogLevelDebug)
	case "info":
		logLevel = mono.WithLogLevel(mono.LogLevelInfo)
	case "warn":
		logLevel = mono.WithLogLevel(mono.LogLevelWarn)
	}
	logFormat := mono.WithLogFormat(mono.LogFormatText)
	if cfg.LogFormat == "json" {
		logFormat = mono.WithLogFormat(mono.LogFormatJSON)
	}

	// The embedded NATS server only binds a TCP port when one is configured
	natsListen := mono.WithNATSDontListen()
	if cfg.NATSPort > 0 {
		natsListen = mono.WithNATSPort(cfg.NATSPort)
	}

	// Create mono application with embedded NATS; stdout belongs to the input loop
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(cfg.ShutdownTimeout),
		logLevel,
		logFormat,
		mono.WithLogOutput(os.Stderr),
		mono.WithNATSInProcessConn(),
		natsListen,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("create mono application: %w", err)
	}

	// Order: independent modules first, then modules with dependencies
	replModule := repl.NewModule(app.Logger(), in, out, cfg)
	app.Register(calculator.NewModule(app.Logger())) // Core: services.calculator.evaluate
	app.Register(stats.NewModule(app.Logger()))      // Event consumer: CalculationEvaluated
	app.Register(replModule)                         // Driving adapter (depends on calculator)

	if err := app.Start(context.Background()); err != nil {
		return nil, nil, fmt.Errorf("start application: %w", err)
	}
	return app, replModule.Done(), nil
}

// finish stops the application after the input loop has ended and returns
// the process exit code: 0 after quit, 1 if the loop failed.
func finish(app stopper, cfg config.Config, loopErr error) int {
	exitCode := 0
	if loopErr != nil {
		if errors.Is(loopErr, repl.ErrInputClosed) {
			log.Println("Input closed before quit")
		} else {
			log.Printf("Input loop failed: %v", loopErr)
		}
		exitCode = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := app.Stop(ctx); err != nil {
		log.Printf("Failed to stop application: %v", err)
		exitCode = 1
	}
	return exitCode
}
