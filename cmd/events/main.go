package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lukrum-models-go/internal/config"
	"lukrum-models-go/internal/events"
	"lukrum-models-go/internal/logger"

	"go.uber.org/zap"
)

func main() {
	// Load application configuration
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		// We can't use the logger here because it's not initialized yet.
		panic(fmt.Sprintf("could not load config: %v", err))
	}

	// Initialize logger
	log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log.Info("Configuration loaded")

	// Setup context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sigchan := make(chan os.Signal, 1)
		signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
		<-sigchan
		log.Info("Shutdown signal received, cancelling run...")
		cancel()
	}()

	opts := events.StreamOptions{
		Active:     cfg.Stream.Active,
		ModelUUIDs: cfg.Stream.ModelUUIDs,
		PageSize:   cfg.Stream.PageSize,
		MaxWorkers: cfg.Stream.MaxWorkers,
	}
	if cfg.Stream.StartDate != "" {
		start, err := time.Parse("2006-01-02", cfg.Stream.StartDate)
		if err != nil {
			log.Fatal("Invalid stream.start_date", zap.String("value", cfg.Stream.StartDate), zap.Error(err))
		}
		opts.StartDate = start
	}

	aggregator := events.NewAggregator(&cfg, log)
	rows, err := aggregator.BuildTradeEventStream(ctx, opts)
	if err != nil {
		log.Fatal("Trade event aggregation failed", zap.Error(err))
	}

	enc := json.NewEncoder(os.Stdout)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			log.Fatal("Failed to encode event row", zap.Error(err))
		}
	}

	log.Info("Done", zap.Int("rows", len(rows)))
}
