package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dias221467/Alumni_Connect/internal/config"
	"github.com/Dias221467/Alumni_Connect/internal/jobs"
	"github.com/Dias221467/Alumni_Connect/internal/repository"
	"github.com/Dias221467/Alumni_Connect/internal/router"
	cron "github.com/Dias221467/Alumni_Connect/internal/scheduler"
	"github.com/Dias221467/Alumni_Connect/internal/session"
	"github.com/Dias221467/Alumni_Connect/pkg/logger"
)

func main() {
	// Load configuration from .env, optional YAML file and environment
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logger.InitLogger(cfg.LogLevel)
	logger.Log.Info("Logger initialized")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Portal backend ---
	client := repository.NewClient(cfg.RemoteBaseURL, cfg.RemoteTimeout)
	sessions := session.NewManager(session.HTTPFactory(client))

	// --- Background jobs ---
	sweeper := jobs.NewSessionSweeper(sessions, cfg.SessionIdleTTL)
	scheduler, err := cron.StartSessionCronJobs(sweeper, cfg.SessionSweepSchedule)
	if err != nil {
		logger.Log.Fatalf("Scheduler error: %v", err)
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.NewRouter(cfg, sessions),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Infof("Server running on port %s, portal backend %s", cfg.Port, cfg.RemoteBaseURL)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("HTTP server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Shutting down")

	<-scheduler.Stop().Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("Graceful shutdown failed")
	}
}
