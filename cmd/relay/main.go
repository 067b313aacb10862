package main

import (
	"chat-relay/agents"
	"chat-relay/infrastructure/websocket"
	"chat-relay/internal"
	"chat-relay/moderation"
	"chat-relay/observability"
	"chat-relay/runtime"
	"chat-relay/runtime/workers"
	"chat-relay/services"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Relay terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a signal or a fatal error.
// Deferred cleanups run before main exits.
func run() (int, error) {
	// 1. Configuration & Logger
	// A missing .env file is fine, the environment may already be set
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(registry)

	// 3. Moderation dictionary
	censored, err := moderation.NewCensoredLoader(moderation.Dictionary).LoadAll(moderation.DictionaryDir)
	if err != nil {
		return exitConfig, fmt.Errorf("censored words loading failed: %w", err)
	}
	log.Info("Censored words loaded", "words", len(censored.Words), "languages", censored.Languages)
	moderator, err := moderation.NewModerator(censored.Words, charReplacement, log)
	if err != nil {
		return exitConfig, fmt.Errorf("moderator init failed: %w", err)
	}

	// 4. Runtime
	supervisor := workers.NewSupervisor(log, metrics, config.RestartInterval)
	rooms := runtime.NewRooms(log, config.RoomPruneEmpty)
	sessions := runtime.NewRegistry(log, rooms)
	orchestrator := runtime.NewOrchestrator(log, supervisor, sessions, rooms, metrics, runtime.Settings{
		BufferSize:       config.BufferSize,
		MailboxSize:      config.MailboxSize,
		SinkTimeout:      config.SinkTimeout,
		MetricInterval:   config.MetricInterval,
		MaxContentLength: config.MaxContentLength,
		ForwardToAgents:  config.ForwardToAgents,
		CommandPrefix:    config.CommandPrefix,
	})

	roster, err := agents.NewRoster(config.Agents(), agents.Deps{
		Log:           log,
		Names:         sessions,
		Census:        orchestrator,
		Moderator:     moderator,
		CommandPrefix: config.CommandPrefix,
		MinConfidence: config.MinLangConfidence,
	})
	if err != nil {
		return exitConfig, err
	}
	orchestrator.Enroll(roster...)

	// 5. Transport
	chatService := services.NewChatService(orchestrator)
	server := websocket.NewChatServer(log, chatService, websocket.Settings{
		ConnectionBufferSize: config.ConnectionBufferSize,
		WriteTimeout:         config.WriteTimeout,
		PongTimeout:          config.PongTimeout,
		CloseTimeout:         config.ShutdownTimeout,
		MaxFrameSize:         int64(config.MaxFrameSize),
		AllowedOrigins:       config.AllowedOrigins(),
	})
	httpServer := &http.Server{
		Addr:              config.Address(),
		Handler:           websocket.NewRouter(server, chatService, registry),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return orchestrator.Start(gctx)
	})
	g.Go(func() error {
		log.Info("Starting relay", "address", httpServer.Addr, "agents", config.Agents())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})

	// 7. Wait for Stop or Error, then drain connections before stopping the runtime
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		err := httpServer.Shutdown(shutdownCtx)
		orchestrator.Stop()
		return err
	})

	if err := g.Wait(); err != nil {
		return exitRuntime, err
	}
	log.Info("Relay stopped cleanly")
	return exitOK, nil
}
