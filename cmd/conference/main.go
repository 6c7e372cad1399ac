package main

import (
	"conference-sim/cli"
	"conference-sim/internal"
	"conference-sim/repositories"
	"conference-sim/services"
	"conference-sim/workers"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Netflix/go-env"
	"github.com/chzyer/readline"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the calling shell.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conference terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires storage, services and the terminal, then hands over to the CLI loop.
// Deferred closes run before the exit code reaches main.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLogger(nil))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if log.Enabled(context.Background(), slog.LevelDebug) {
		endpoint := "/inspect"
		log.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
		internal.StartDebugServer(db, config.DebugPort, endpoint, nil, nil, log)
	}

	// 3. Restore the conference
	gateway := services.NewGateway(
		repositories.NewEventRepository(db, log),
		repositories.NewUserRepository(db, log),
		repositories.NewMessageRepository(db, log),
		log,
	)
	svc := gateway.LoadConference(config.DefaultSpeakerPassword)

	// 4. Background autosave, stopped before the database closes
	if config.AutosaveInterval > 0 {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		sup := workers.NewSupervisor(log)
		go func() {
			sup.Add(workers.NewAutosaveWorker(svc, gateway, config.AutosaveInterval, log)).Run(ctx)
			close(done)
		}()
		defer func() {
			cancel()
			<-done
		}()
	}

	// 5. Terminal
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "conference> ",
		HistoryFile:     config.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return exitRuntime, fmt.Errorf("terminal initialization failed: %w", err)
	}
	defer rl.Close()

	renderer := cli.NewRenderer(rl.Stdout(), config.Colours)
	if err = cli.NewCLI(svc, gateway, rl, renderer, config.TimeLayout, log).Run(); err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}
