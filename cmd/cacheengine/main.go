package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	_ "go.uber.org/automaxprocs"

	"github.com/caspercasanova/nautilus-trader/internal/cache"
)

func main() {
	cfg, err := loadProcessConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := cache.NewLogger(level, cfg.LogPretty)
	logger.Info("starting cache engine", "trader_id", cfg.TraderID)

	registry := prometheus.NewRegistry()
	go serveMetrics(cfg.MetricsAddr, registry, logger)

	redisOpts := &redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Username: cfg.RedisUsername,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDatabase,
	}
	readClient := redis.NewClient(redisOpts)
	writeClient := redis.NewClient(redisOpts)

	engineCfg := cache.Config{
		Database: cache.DatabaseConfig{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Username: cfg.RedisUsername,
			Password: cfg.RedisPassword,
			Database: cfg.RedisDatabase,
			UseTLS:   cfg.RedisUseTLS,
		},
		UseTraderPrefix:  cfg.UseTraderPrefix,
		UseInstanceID:    cfg.UseInstanceID,
		BufferIntervalMS: cfg.BufferIntervalMS,
		Encoding:         cache.Encoding(cfg.Encoding),
	}

	instanceID := uuid.New()
	engine, err := cache.NewEngine(cfg.TraderID, instanceID, engineCfg, readClient, writeClient, logger, registry)
	if err != nil {
		logger.Error("failed to construct cache engine", "error", err)
		os.Exit(1)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down cache engine")
	if err := engine.Close(); err != nil {
		logger.Error("error during cache engine shutdown", "error", err)
	}
}

func serveMetrics(addr string, gatherer prometheus.Gatherer, logger cache.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil {
		logger.Error("metrics server stopped", "error", err)
	}
}
