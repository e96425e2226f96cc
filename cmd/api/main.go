package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"outreach-agent/config"
	_ "outreach-agent/docs" // Swagger docs
	"outreach-agent/internal/httpserver"
	"outreach-agent/internal/notify"
	"outreach-agent/pkg/llmprovider"
	"outreach-agent/pkg/log"
	"outreach-agent/pkg/sqlite"
)

// @title       Outreach Agent API
// @description Conversational recruiting outreach agent: chat, sequences, sessions and live events.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Outreach Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlite.Open(ctx, sqlite.Config{
		Path:         cfg.Database.Path,
		MaxOpenConns: cfg.Database.MaxOpenConns,
	})
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Database ready at %s", cfg.Database.Path)

	// 4. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	managerCfg, err := llmprovider.ManagerConfig(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Invalid LLM manager config: ", err)
		return
	}
	llm := llmprovider.NewManager(providers, managerCfg, logger)
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider enabled: %s (%s)", p.Name(), p.Model())
	}

	// 5. Live events
	broadcaster := notify.NewBroadcaster(logger, cfg.Notify.SubscriberBuffer)
	defer broadcaster.Close()

	// 6. HTTP Server (builds every domain)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		LLM:         llm,
		Broadcaster: broadcaster,
		Agent:       cfg.Agent,
		Session:     cfg.Session,
		RateLimit:   cfg.RateLimit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
