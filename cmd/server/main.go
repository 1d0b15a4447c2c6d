package main

import (
	"net/http"
	"time"

	"canteen-be/internal/admin"
	"canteen-be/internal/config"
	"canteen-be/internal/db"
	"canteen-be/internal/food"
	"canteen-be/internal/httpapi"
	"canteen-be/internal/logger"
	"canteen-be/internal/metrics"
	"canteen-be/internal/middleware"
	"canteen-be/internal/order"
	"canteen-be/internal/report"
	"canteen-be/internal/settings"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	reg := metrics.NewRegistry()
	tokens := admin.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	adminRepo := admin.NewRepository(database)
	adminSvc := admin.NewService(adminRepo, tokens)

	foodRepo := food.NewRepository(database)
	foodSvc := food.NewService(foodRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, reg)

	reportRepo := report.NewRepository(database)
	reportSvc := report.NewService(reportRepo)

	settingsRepo := settings.NewRepository(database)
	settingsSvc := settings.NewService(settingsRepo)

	h := httpapi.New(adminSvc, foodSvc, orderSvc, reportSvc, settingsSvc, reg)

	// Auth must wrap RateLimit so the limiter can key authenticated
	// clients by admin id instead of source IP.
	var handler http.Handler = h.Routes()
	handler = middleware.RateLimit(handler)
	handler = middleware.Auth(tokens)(handler)
	handler = middleware.Metrics(reg)(handler)
	handler = logger.LoggingMiddleware(handler)
	handler = logger.RequestIDMiddleware(handler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}

	logger.L().Info("canteen server listening", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		logger.L().Fatal("server exited", zap.Error(err))
	}
}
