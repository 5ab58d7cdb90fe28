// Command server wires high-level dependencies, exposes the HTTP router, and
// keeps the server lifecycle small. Business logic lives in internal packages.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/twmb/franz-go/pkg/kgo"

	"courtcal/internal/audit"
	"courtcal/internal/auth/jwttoken"
	"courtcal/internal/auth/revocation"
	"courtcal/internal/documents"
	"courtcal/internal/extraction"
	"courtcal/internal/extraction/ai"
	extractionhandler "courtcal/internal/extraction/handler"
	extractionmetrics "courtcal/internal/extraction/metrics"
	"courtcal/internal/platform/config"
	"courtcal/internal/platform/httpserver"
	platformredis "courtcal/internal/platform/redis"
	"courtcal/internal/registry"
	regcache "courtcal/internal/registry/cache"
	httptransport "courtcal/internal/transport/http"
	mwauth "courtcal/pkg/platform/middleware/auth"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Error("config load failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		pool, err = pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("database connect failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
	}

	var registrySource registry.Source
	var auditStore audit.Store
	if pool != nil {
		registrySource = registry.NewPostgresSource(pool)
		auditStore = audit.NewPostgresStore(pool)
	} else {
		logger.Warn("no DATABASE_URL configured, using in-memory registry and audit stores")
		registrySource = &registry.MemorySource{}
		auditStore = audit.NewMemoryStore()
	}

	var auditMirror *kgo.Client
	if len(cfg.Audit.Brokers) > 0 {
		auditMirror, err = kgo.NewClient(
			kgo.SeedBrokers(cfg.Audit.Brokers...),
			kgo.DefaultProduceTopic(cfg.Audit.Topic),
		)
		if err != nil {
			logger.Error("audit kafka client failed", "error", err)
			os.Exit(1)
		}
		defer auditMirror.Close()
	}

	var revocationChecker mwauth.TokenRevocationChecker
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		logger.Error("redis connect failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		revocationChecker = revocation.NewRedisTRL(redisClient.Client)
	}

	registryCache := regcache.New(registrySource, logger)
	resolver := extraction.NewResolver(extraction.SubstringMatcher{}, logger)
	auditor := audit.NewPublisher(auditStore, auditMirror, logger)
	docStore := documents.NewFSStore(cfg.DocumentRoot)
	aiClient := ai.NewClient(ai.Config{
		APIKey:          cfg.AI.APIKey,
		BaseURL:         cfg.AI.BaseURL,
		Model:           cfg.AI.Model,
		Temperature:     cfg.AI.Temperature,
		MaxOutputTokens: cfg.AI.MaxOutputTokens,
		Timeout:         cfg.AI.Timeout,
	}, logger)

	service := extraction.NewService(
		docStore, aiClient, registryCache, resolver, auditor,
		cfg.Building, logger, extractionmetrics.New(),
	)
	handler := extractionhandler.New(service, logger)

	jwtService := jwttoken.NewService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)
	router := httptransport.NewRouter(handler, jwtService, revocationChecker, logger)

	srv := httpserver.New(cfg.Addr, router)

	logger.Info("starting courtcal", "addr", cfg.Addr, "building", cfg.Building)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
