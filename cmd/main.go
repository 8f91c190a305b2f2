package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"draw-lab/domain/event"
	"draw-lab/internal"
	"draw-lab/observability"
	"draw-lab/projection"
	"draw-lab/repositories"
	"draw-lab/runtime"
	"draw-lab/runtime/workers"
	"draw-lab/services"
	"draw-lab/sink"
)

// Exit codes to provide meaningful status to the operating system or service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "draw-lab terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the session lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for the REPL and background workers.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB, in-memory unless a path is configured)
	db, err := badger.Open(buildBadgerOpts(config, logger))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		// Defer ensures buffers are flushed before the function returns.
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	repo, err := repositories.NewParticipantRepository(db, logger)
	if err != nil {
		return exitRuntime, err
	}
	defer func() { _ = repo.Close() }()

	// 3. Setup Supervision & Controller
	events := make(chan event.Event, config.BufferSize)
	telemetry := make(chan event.Event, config.BufferSize)
	sup := workers.NewSupervisor(logger, telemetry, config.RestartInterval)

	seed := uint64(time.Now().UnixNano())
	drawRng := rand.New(rand.NewPCG(seed, seed<<17|1))
	groupRng := rand.New(rand.NewPCG(seed^0x9E3779B97F4A7C15, seed|1))

	rosterService := services.NewRosterService(logger, repo)
	drawService := services.NewDrawService(logger, repo, sup, events, drawRng,
		config.RevealDuration, config.RevealTickInterval)
	groupingService := services.NewGroupingService(logger, repo, events, groupRng)

	controller := runtime.NewController(logger, sup,
		rosterService, drawService, groupingService,
		events, telemetry, config.SinkTimeout)

	stats := observability.NewDrawStats(logger)
	timeline := projection.NewTimeline()
	controller.AddSinks(sink.NewConsoleSink(logger, os.Stdout))
	controller.AddHandlers(stats, timeline, event.NewWorkerRestartedAfterPanicHandler(logger))

	drawService.SetAllowRepeat(config.AllowRepeatWinners)

	// 4. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Start the pipeline (fanout + telemetry under supervision)
	go func() {
		logger.Debug("Starting controller...")
		_ = controller.Start(ctx)
	}()

	// 6. Interactive session
	session := newREPL(logger, controller, stats, timeline, config, os.Stdin, os.Stdout)
	replErr := session.run(ctx)

	// 7. Final Cleanup
	controller.Stop()
	if replErr != nil {
		return exitRuntime, replErr
	}
	logger.Info("Program stopped cleanly")
	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger) badger.Options {
	var options badger.Options
	if config.BadgerFilepath == "" {
		options = badger.DefaultOptions("").WithInMemory(true)
	} else {
		options = badger.DefaultOptions(config.BadgerFilepath)
	}

	if logger.Enabled(context.Background(), slog.LevelDebug) {
		return options.WithLoggingLevel(badger.DEBUG)
	}
	// The badger INFO logger is chatty; keep it quiet behind the REPL.
	return options.WithLogger(nil)
}
