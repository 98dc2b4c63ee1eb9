package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yegors/eco-flight/internal/ai"
	"github.com/yegors/eco-flight/internal/ai/gemini"
	"github.com/yegors/eco-flight/internal/ai/openai"
	"github.com/yegors/eco-flight/internal/airports"
	"github.com/yegors/eco-flight/internal/api"
	"github.com/yegors/eco-flight/internal/config"
	"github.com/yegors/eco-flight/internal/ecoplan"
	"github.com/yegors/eco-flight/internal/route"
	"github.com/yegors/eco-flight/internal/traffic"
	"github.com/yegors/eco-flight/internal/websocket"
	"github.com/yegors/eco-flight/pkg/logger"
)

var (
	// Version is injected at build time
	Version = "dev"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (optional - will search in configs/ and root directory)")
	flag.Parse()

	cfg, err := config.LoadWithFallback(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting eco-flight server",
		logger.String("version", Version),
		logger.String("config_path", *configPath),
	)

	// Airport directory
	directory, err := airports.Load(cfg.Airports.CSVPath)
	if err != nil {
		log.Error("Failed to load airport directory", logger.Error(err))
		os.Exit(1)
	}
	log.Info("Airport directory loaded", logger.Int("airport_count", directory.Len()))

	routeService := route.NewService(directory)

	// WebSocket server
	wsServer := websocket.NewServer(log)
	go wsServer.Run()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Traffic service
	var trafficService *traffic.Service
	if cfg.Traffic.Enabled {
		trafficClient := traffic.NewClient(
			cfg.Traffic.BaseURL,
			traffic.BoundingBox{
				LatMin: cfg.Traffic.BBoxLamin,
				LonMin: cfg.Traffic.BBoxLomin,
				LatMax: cfg.Traffic.BBoxLamax,
				LonMax: cfg.Traffic.BBoxLomax,
			},
			cfg.Traffic.CredentialsPath,
			time.Duration(cfg.Traffic.RequestTimeoutSecs)*time.Second,
			log,
		)
		trafficService = traffic.NewService(
			trafficClient,
			time.Duration(cfg.Traffic.FetchIntervalSecs)*time.Second,
			wsServer,
			log,
		)
		if err := trafficService.Start(ctx); err != nil {
			log.Error("Failed to start traffic service", logger.Error(err))
			os.Exit(1)
		}
	} else {
		log.Info("Traffic service disabled in configuration")
	}

	// Eco-plan service
	var planService *ecoplan.Service
	if cfg.AI.Enabled {
		var provider ai.ChatProvider
		switch cfg.AI.Provider {
		case "gemini":
			provider, err = gemini.NewClient(ctx, cfg.AI.APIKey, log)
			if err != nil {
				log.Error("Failed to create Gemini client", logger.Error(err))
				os.Exit(1)
			}
		case "openai":
			provider = openai.NewClient(cfg.AI.APIKey, cfg.AI.BaseURL, log)
		}
		planService = ecoplan.NewService(provider, ecoplan.Config{
			Model:       cfg.AI.Model,
			Temperature: cfg.AI.Temperature,
			MaxTokens:   cfg.AI.MaxTokens,
		}, log)
		log.Info("Eco-plan service enabled", logger.String("provider", cfg.AI.Provider))
	} else {
		log.Info("Eco-plan service disabled in configuration")
	}

	// API router
	var snapshots api.SnapshotProvider
	if trafficService != nil {
		snapshots = trafficService
	}
	handler := api.NewHandler(directory, routeService, snapshots, planService, cfg, log, wsServer)
	router := api.NewRouter(handler, log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router.Routes(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSecs) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSecs) * time.Second,
	}

	go func() {
		log.Info("Starting HTTP server", logger.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error on startup", logger.String("addr", addr), logger.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("Shutting down server...")

	if trafficService != nil {
		log.Info("Stopping traffic service...")
		trafficService.Stop()
		log.Info("Traffic service stopped.")
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", logger.Error(err))
	}

	log.Info("Server fully stopped")
}
