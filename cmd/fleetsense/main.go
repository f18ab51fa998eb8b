// FleetSense pipeline server: hosts the HTTP surface, the durable message
// bus with all stage workers, the orchestrator, and the retention sweeper.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fleetsense/fleetsense/pkg/api"
	"github.com/fleetsense/fleetsense/pkg/bus"
	"github.com/fleetsense/fleetsense/pkg/cleanup"
	"github.com/fleetsense/fleetsense/pkg/config"
	"github.com/fleetsense/fleetsense/pkg/database"
	"github.com/fleetsense/fleetsense/pkg/llm"
	"github.com/fleetsense/fleetsense/pkg/notify"
	"github.com/fleetsense/fleetsense/pkg/orchestrator"
	"github.com/fleetsense/fleetsense/pkg/services"
	"github.com/fleetsense/fleetsense/pkg/stages"
	"github.com/fleetsense/fleetsense/pkg/telephony"
	"github.com/fleetsense/fleetsense/pkg/version"
	"github.com/fleetsense/fleetsense/pkg/warehouse"
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
	configPath := flag.String("config",
		getEnv("CONFIG_PATH", ""),
		"Path to the YAML configuration file (built-in defaults when empty)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting FleetSense",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_path", *configPath)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configPath)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	stats := cfg.Stats()
	slog.Info("Configuration loaded",
		"service_centers", stats.ServiceCenters,
		"topics", stats.Topics)

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

	// 3. Domain services
	telemetryService := services.NewTelemetryService(dbClient.Client)
	vehicleService := services.NewVehicleService(dbClient.Client)
	anomalyService := services.NewAnomalyService(dbClient.Client)
	diagnosisService := services.NewDiagnosisService(dbClient.Client)
	rcaService := services.NewRcaService(dbClient.Client)
	schedulingService := services.NewSchedulingService(dbClient.Client)
	engagementService := services.NewEngagementService(dbClient.Client)
	bookingService := services.NewBookingService(dbClient.Client)
	communicationService := services.NewCommunicationService(dbClient.Client)
	feedbackService := services.NewFeedbackService(dbClient.Client)
	manufacturingService := services.NewManufacturingService(dbClient.Client)
	pipelineService := services.NewPipelineService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. Model backend
	llmConfig := llm.LoadConfigFromEnv()
	if llmConfig.Endpoint == "" {
		slog.Error("MODEL_ENDPOINT is required")
		os.Exit(1)
	}
	model := llm.NewRetry(llm.NewHTTPClient(llmConfig))
	slog.Info("Model client initialized", "endpoint", llmConfig.Endpoint, "model", llmConfig.Model)

	// 5. Telephony (optional; without it the communication stage records
	// the case and reports a failed call)
	var dialer stages.Dialer
	telephonyConfig := telephony.ConfigFromEnv()
	if telephonyConfig.Configured() {
		caller, err := telephony.NewCaller(telephonyConfig)
		if err != nil {
			slog.Error("Failed to initialize telephony", "error", err)
			os.Exit(1)
		}
		dialer = caller
		slog.Info("Telephony initialized", "from", telephonyConfig.FromNumber)
	} else {
		slog.Warn("Telephony not configured, live calls disabled")
	}

	// 6. Bus publisher, warehouse sink, stage workers
	publisher := bus.NewPublisher(dbClient.DB())
	sink := warehouse.NewSink(dbClient.DB())

	stageDeps := stages.Deps{
		Telemetry:      telemetryService,
		Vehicles:       vehicleService,
		Anomalies:      anomalyService,
		Diagnoses:      diagnosisService,
		Rcas:           rcaService,
		Schedulings:    schedulingService,
		Engagements:    engagementService,
		Bookings:       bookingService,
		Communications: communicationService,
		Feedbacks:      feedbackService,
		Manufacturing:  manufacturingService,
		Sink:           sink,
		Model:          model,
		Publisher:      publisher,
		Defaults:       cfg.Defaults,
		Topics:         cfg.Topics,
		Centers:        cfg.Centers,
		Dialer:         dialer,
	}

	orch := orchestrator.New(orchestrator.Deps{
		Pipeline:  pipelineService,
		Anomalies: anomalyService,
		Diagnoses: diagnosisService,
		Rcas:      rcaService,
		Sink:      sink,
		Publisher: publisher,
		Notifier:  notify.NewService(cfg.Notifications, cfg.Defaults.ConfidenceThreshold),
		Defaults:  cfg.Defaults,
		Topics:    cfg.Topics,
	})

	// 7. Dispatcher: every worker is a topic handler
	dispatcher := bus.NewDispatcher(podID, dbClient.Client, cfg.Queue)
	dispatcher.Register(cfg.Topics.TelemetryIngested, stages.NewAnomalyWorker(stageDeps).Handle)
	dispatcher.Register(cfg.Topics.DiagnosisDispatch, stages.NewDiagnosisWorker(stageDeps).Handle)
	dispatcher.Register(cfg.Topics.RcaDispatch, stages.NewRcaWorker(stageDeps).Handle)
	dispatcher.Register(cfg.Topics.SchedulingDispatch, stages.NewSchedulingWorker(stageDeps).Handle)
	dispatcher.Register(cfg.Topics.EngagementDispatch, stages.NewEngagementWorker(stageDeps).Handle)
	dispatcher.Register(cfg.Topics.CommunicationTrigger, stages.NewCommunicationWorker(stageDeps).Handle)
	dispatcher.Register(cfg.Topics.FeedbackRequested, stages.NewFeedbackWorker(stageDeps).Handle)
	dispatcher.Register(cfg.Topics.ManufacturingDispatch, stages.NewManufacturingWorker(stageDeps).Handle)
	for _, topic := range cfg.Topics.CompletionTopics() {
		dispatcher.Register(topic, orch.Handle)
	}

	// 8. LISTEN wakeup (dedicated pgx connection)
	listener := bus.NewNotifyListener(dbConfig.DSN(), func(string) { dispatcher.Wake() })
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop(ctx)
	for _, topic := range dispatcher.Topics() {
		if err := listener.Subscribe(ctx, topic); err != nil {
			slog.Error("Failed to LISTEN on topic", "topic", topic, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("Bus listener subscribed", "topics", len(dispatcher.Topics()))

	if err := dispatcher.Start(ctx); err != nil {
		slog.Error("Failed to start dispatcher", "error", err)
		os.Exit(1)
	}

	// 9. Retention sweeper
	sweeper := cleanup.NewService(cfg.Retention, dbClient.Client, communicationService)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	// 10. HTTP server
	httpServer := api.NewServer(cfg, dbClient, api.Deps{
		Telemetry:      telemetryService,
		Vehicles:       vehicleService,
		Engagements:    engagementService,
		Communications: communicationService,
		Pipeline:       pipelineService,
		Publisher:      publisher,
		Model:          model,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("FleetSense started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: dispatcher first so in-flight handlers finish,
	// then the HTTP surface
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		dispatcher.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Dispatcher stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, unfinished messages will be redelivered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
