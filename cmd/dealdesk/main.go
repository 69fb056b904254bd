// DealDesk orchestrator server: serves the analysis HTTP API, manages
// queue workers, and runs the due-diligence agent pipeline.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dealdesk/dealdesk/pkg/api"
	"github.com/dealdesk/dealdesk/pkg/config"
	"github.com/dealdesk/dealdesk/pkg/database"
	"github.com/dealdesk/dealdesk/pkg/events"
	"github.com/dealdesk/dealdesk/pkg/ingest"
	"github.com/dealdesk/dealdesk/pkg/llm"
	"github.com/dealdesk/dealdesk/pkg/orchestrator"
	"github.com/dealdesk/dealdesk/pkg/providers"
	"github.com/dealdesk/dealdesk/pkg/services"
	"github.com/dealdesk/dealdesk/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// buildProvider resolves an LLM provider by role name; empty name or a
// missing registry entry yields nil (role disabled).
func buildProvider(cfg *config.Config, name string) llm.Provider {
	if name == "" {
		return nil
	}
	provCfg, err := cfg.LLMProviderRegistry.Get(name)
	if err != nil {
		slog.Warn("LLM provider not configured, role disabled", "provider", name, "error", err)
		return nil
	}
	return llm.NewHTTPProvider(name, provCfg)
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting DealDesk",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup
	if err := orchestrator.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal; orphan detection will retry
	}

	// 4. Domain services
	jobService := services.NewJobService(dbClient.Client)
	recordService := services.NewRecordService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. LLM pipeline and external data providers
	pipeline := llm.NewPipeline(
		buildProvider(cfg, cfg.Defaults.PrimaryProvider),
		buildProvider(cfg, cfg.Defaults.FallbackProvider),
		buildProvider(cfg, cfg.Defaults.ReasonerProvider),
		cfg.Pipeline,
	)
	financialClient := providers.NewFinancialClient(cfg.DataSources)
	filingsClient := providers.NewFilingsClient(cfg.DataSources)
	searchClient := providers.NewSearchClient(cfg.DataSources)
	ingestor := ingest.New(financialClient, filingsClient)
	slog.Info("LLM pipeline and data providers initialized",
		"primary", cfg.Defaults.PrimaryProvider,
		"fallback", cfg.Defaults.FallbackProvider,
		"reasoner", cfg.Defaults.ReasonerProvider)

	// 6. Streaming infrastructure
	publisher := events.NewPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(eventService, 10*time.Second)

	// Dedicated pgx connection for LISTEN
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 7. Executor and worker pool
	executor := orchestrator.NewPipelineExecutor(
		cfg, jobService, recordService, publisher, ingestor, pipeline, searchClient)
	workerPool := orchestrator.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor, publisher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. HTTP server
	httpServer := api.NewServer(
		jobService, recordService, eventService,
		publisher, connManager, workerPool, dbClient)

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(":" + httpPort); err != nil {
			errCh <- err
		}
	}()

	slog.Info("DealDesk started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: drain workers within budget, then HTTP.
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete jobs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
