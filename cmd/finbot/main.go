package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"finbot/internal/bot"
	"finbot/internal/config"
	"finbot/internal/core"
	"finbot/internal/httpapi"
	"finbot/internal/log"
	"finbot/internal/messaging"
	"finbot/internal/scheduler"
	"finbot/internal/storage"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)

	logger.Info("Starting finbot")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize storage", log.FieldError, err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	defer store.Close()
	logger.Info("Storage initialized", "backend", cfg.DataBackend)

	var messenger *messaging.Client
	if cfg.AMQPURL != "" {
		messenger, err = messaging.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPOutboundQueue, cfg.AMQPSyncQueue, logger)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", log.FieldError, err)
			os.Exit(1)
		}
		defer messenger.Close()
		logger.Info("AMQP client initialized", "exchange", cfg.AMQPExchange)
	} else {
		logger.Info("AMQP disabled - replies travel only in HTTP responses")
	}

	clock, err := core.NewSystemClock(cfg.Timezone)
	if err != nil {
		logger.Error("Failed to load timezone", log.FieldError, err, "timezone", cfg.Timezone)
		os.Exit(1)
	}

	var syncer bot.SyncPublisher
	var outbound messaging.Messenger
	if messenger != nil {
		syncer = messenger
		outbound = messenger
	}

	botSvc := bot.New(store, clock, syncer, logger)
	srv := httpapi.NewServer(":"+cfg.Port, botSvc, store, outbound, logger)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("Starting HTTP server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if messenger != nil {
		sched := scheduler.New(store, messenger, clock, cfg.SchedulerInterval, logger)
		group.Go(func() error {
			if err := sched.Run(groupCtx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	} else {
		logger.Info("Scheduler disabled - no outbound channel for reminders")
	}

	group.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received", "signal", sig.String())
		case <-groupCtx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", log.FieldError, err)
		}
		cancel()
		return nil
	})

	if err := group.Wait(); err != nil {
		logger.Error("Service error", log.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
