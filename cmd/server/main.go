package main

import (
	"context"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/socialposts/internal/app"
	"github.com/kahvecikaan/socialposts/internal/config"
	"github.com/kahvecikaan/socialposts/internal/events"
	httpTransport "github.com/kahvecikaan/socialposts/internal/transport/http"
	websocketTransport "github.com/kahvecikaan/socialposts/internal/transport/websocket"
	"github.com/nicholasjackson/env"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Environment variables
var (
	bindAddress = env.String("BIND_ADDRESS", false,
		":9090", "Bind address for the server")
	logLevel = env.String("LOG_LEVEL", false,
		"info", "Log output level for the server [trace, debug, info, warn, error]")
	apiKey = env.String("OPENAI_API_KEY", false,
		"", "OpenAI API key")
	baseURL = env.String("OPENAI_BASE_URL", false,
		"https://api.openai.com/v1", "Base URL of the OpenAI API")
	configFile = env.String("CONFIG_FILE", false,
		"", "Optional YAML file overriding platform and generation settings")
	corsOrigins = env.String("CORS_ALLOWED_ORIGINS", false,
		"http://localhost:3000", "Comma-separated list of allowed CORS origins")
)

func main() {
	env.Parse()

	// Initialize the logger
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "socialposts",
		Level: hclog.LevelFromString(*logLevel),
	})

	// Create a standard logger for the HTTP server
	standardLogger := logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})

	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.Error("Unable to load configuration", "file", *configFile, "error", err)
		os.Exit(1)
	}

	if *apiKey == "" {
		// Requests will fail with OPENAI_INVALID_KEY until a key is provided
		logger.Warn("OPENAI_API_KEY is not set")
	}

	// Shared between the post service and websocket clients
	eventBus := events.NewEventBus[any]()

	a := app.New(app.Options{
		Config:   cfg,
		APIKey:   *apiKey,
		BaseURL:  *baseURL,
		EventBus: eventBus,
		Logger:   logger,
	})

	ph := httpTransport.NewPostHandler(a.Actions, cfg, logger.Named("http-handler"))

	origins := httpTransport.ParseOrigins(*corsOrigins)
	wh := websocketTransport.NewHandler(
		logger.Named("websocket-handler"),
		eventBus,
		origins,
	)

	corsConfig := httpTransport.DefaultCORSConfig()
	corsConfig.AllowedOrigins = origins

	router := httpTransport.NewRouter(ph, logger, wh, corsConfig)

	// Generation with research can take research timeout + generation
	// timeout, each retried, so the write timeout is generous
	server := &http.Server{
		Addr:         *bindAddress,
		Handler:      router,
		ErrorLog:     standardLogger,
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: writeTimeout(cfg),
	}

	// Start the server in a new goroutine
	go func() {
		logger.Info("Starting server", "bind_address", *bindAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Error starting server", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	logger.Info("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error shutting down server", "error", err)
	}
}

func writeTimeout(cfg *config.Config) time.Duration {
	research := cfg.Research.Timeout * time.Duration(cfg.Research.Retries+1)
	generation := cfg.API.Timeout * time.Duration(cfg.API.Retries+1)
	return research + generation + 10*time.Second
}
