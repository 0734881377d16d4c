package main

import (
	"context"
	"log"
	"time"

	"remedy-engine/internal/core/cache"
	"remedy-engine/internal/core/config"
	"remedy-engine/internal/core/logger"
	"remedy-engine/internal/core/server"
	metricsadapter "remedy-engine/internal/features/metrics/adapters"
	metricshandler "remedy-engine/internal/features/metrics/handler"
	metricsservice "remedy-engine/internal/features/metrics/service"
	rulesadapter "remedy-engine/internal/features/rules/adapters"
	ruleshandler "remedy-engine/internal/features/rules/handler"
	rulesservice "remedy-engine/internal/features/rules/service"
	tooladapter "remedy-engine/internal/features/tools/adapters"
	toolhandler "remedy-engine/internal/features/tools/handler"
	"remedy-engine/internal/features/tools/ports"
	toolservice "remedy-engine/internal/features/tools/service"

	"go.uber.org/zap"
)

// @title Remedy Engine API
// @version 1.0
// @description Customer remediation rules and scenario analyzer tools for last-mile delivery operations.
// @contact.name API Support
// @contact.email support@remedyengine.in
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Initialize the metrics store and verify connectivity
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to create Redis adapter", zap.Error(err))
	}
	defer redisCache.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		l.Fatal("Redis health check failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// Initialize Metrics Service & Handler
	metricsRepo := metricsadapter.NewRedisMetricsRepository(redisCache)
	metricsSvc := metricsservice.NewMetricsService(metricsRepo)
	metricsHdl := metricshandler.NewMetricsHandler(metricsSvc)

	// Initialize Rule Engine Service & Handler
	tables := rulesadapter.NewStaticTables()
	rulesSvc := rulesservice.NewRuleService(tables, tables, tables)
	rulesHdl := ruleshandler.NewRulesHandler(rulesSvc)

	// Initialize the scenario analyzer registry
	latency := time.Duration(cfg.Tools.LatencyMs) * time.Millisecond
	registry, err := toolservice.NewRegistry(
		[]ports.Tool{
			tooladapter.NewPackageDamageAssessment().WithLatency(latency),
			tooladapter.NewRouteDisruptionAnalyzer().WithLatency(latency),
			tooladapter.NewEvidenceAnalyzer().WithLatency(latency),
			tooladapter.NewRefundEligibilityChecker().WithLatency(latency),
		}...,
	)
	if err != nil {
		l.Fatal("Failed to build tool registry", zap.Error(err))
	}
	toolsHdl := toolhandler.NewToolsHandler(registry)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/compensation", rulesHdl.CalculateCompensation)
	srv.App.Get("/peak-hours/:city", rulesHdl.GetPeakHours)
	srv.App.Get("/festival-impact", rulesHdl.GetFestivalImpact)

	srv.App.Get("/tools", toolsHdl.ListTools)
	srv.App.Get("/tools/:name", toolsHdl.DescribeTool)
	srv.App.Post("/tools/:name/execute", toolsHdl.ExecuteTool)

	srv.App.Get("/metrics/delivery", metricsHdl.GetMetrics)
	srv.App.Put("/metrics/delivery", metricsHdl.UpdateMetrics)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
