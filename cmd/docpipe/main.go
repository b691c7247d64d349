// docpipe server — provides the HTTP API, runs the pipeline queue
// workers, and drives webhook delivery.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/docpipe/docpipe/pkg/accounting"
	"github.com/docpipe/docpipe/pkg/api"
	"github.com/docpipe/docpipe/pkg/blob"
	"github.com/docpipe/docpipe/pkg/config"
	"github.com/docpipe/docpipe/pkg/database"
	"github.com/docpipe/docpipe/pkg/kb"
	"github.com/docpipe/docpipe/pkg/llm"
	"github.com/docpipe/docpipe/pkg/models"
	"github.com/docpipe/docpipe/pkg/ocr"
	"github.com/docpipe/docpipe/pkg/pipeline"
	"github.com/docpipe/docpipe/pkg/queue"
	"github.com/docpipe/docpipe/pkg/secrets"
	"github.com/docpipe/docpipe/pkg/services"
	"github.com/docpipe/docpipe/pkg/webhook"
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

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting docpipe", "http_port", httpPort, "pod_id", podID)

	ctx := context.Background()

	// 1. Initialize configuration (fatal on missing MASTER_SECRET)
	cfg, err := config.Initialize()
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	cipher, err := secrets.NewCipher(cfg.MasterSecret)
	if err != nil {
		slog.Error("Failed to derive encryption key", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
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

	// 3. Queue service with LISTEN wakeups; a failed LISTEN probe pins
	// the polling strategy instead of failing startup.
	queues := []string{
		models.QueueOCR, models.QueueOCRErr, models.QueueLLM,
		models.QueueKBIndex, models.QueueWebhook,
	}
	notifier := queue.NewNotifier(dbConfig.DSN(), queues)
	if err := notifier.Start(ctx); err != nil {
		slog.Warn("LISTEN unavailable, queue receives will poll", "error", err)
		notifier = nil
	} else {
		defer notifier.Stop(ctx)
	}
	queueSvc := queue.NewService(dbClient.Client, dbClient.DB(), notifier, cfg.Queue.PollInterval)

	// 4. One-time startup recovery pass
	if err := queue.RecoverStartupBacklog(ctx, queueSvc, cfg.Queue.VisibilityTimeout); err != nil {
		slog.Error("Failed to recover startup backlog", "error", err)
		// Non-fatal — the recovery sweep retries
	}

	// 5. Domain services and providers
	blobs := blob.NewStore(dbClient.Client)
	indexer := kb.Indexer(kb.NoOpIndexer{})
	docService := services.NewDocumentService(dbClient.Client, blobs, indexer)
	webhookService := services.NewWebhookService(dbClient.Client, cipher)
	engine := webhook.NewEngine(dbClient.Client, queueSvc, webhookService, cipher, cfg.Webhook)

	ocrProvider := ocr.NewHTTPProvider(getEnv("OCR_SERVICE_URL", "http://localhost:8081"))
	llmClient := llm.NewClient(getEnv("LLM_SERVICE_URL", "http://localhost:8082"))
	slog.Info("Services initialized")

	deps := &pipeline.Deps{
		Client:     dbClient.Client,
		Docs:       docService,
		Blobs:      blobs,
		Queue:      queueSvc,
		OCR:        ocrProvider,
		LLM:        llmClient,
		KB:         indexer,
		Accounting: accounting.NoOpRecorder{},
		Webhooks:   engine,
	}

	// 6. Start worker pool and webhook scheduler (before HTTP server)
	workerPool := queue.NewWorkerPool(podID, queueSvc, cfg.Queue, deps.Handlers())
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	scheduler := webhook.NewScheduler(dbClient.Client, queueSvc, cfg.Webhook.SchedulerInterval)
	scheduler.Start(ctx)

	// 7. Start HTTP server (non-blocking)
	apiServer := api.NewServer(dbClient, docService, webhookService, engine, blobs, queueSvc, workerPool)
	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: apiServer.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("docpipe started successfully",
		"pod_id", podID,
		"workers_per_queue", cfg.Queue.WorkersPerQueue)

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	scheduler.Stop()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — in-flight messages will be sweep-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
