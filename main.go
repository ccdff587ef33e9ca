// File: cyfairmaids/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"cyfairmaids/config"
	"cyfairmaids/cron"
	"cyfairmaids/gateway"
	"cyfairmaids/handlers"
	"cyfairmaids/middleware"
	"cyfairmaids/routes"
	"cyfairmaids/services/wizard"
	"cyfairmaids/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()

	gatewayClient := gateway.NewClient(config.AppConfig.GatewayBaseURL, config.GatewayTimeout(), logger)

	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer taskClient.Close()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.OptionalAuth())

	// services.
	wizardService := &wizard.DefaultWizardService{
		Gateway: gatewayClient,
		Cache:   utils.GetSessionCacheClient(),
		Logger:  logger,
		Tasks:   taskClient,
	}

	wizardHandler := handlers.NewWizardHandler(wizardService, logger)

	routes.RegisterRoutes(router, wizardHandler)

	// Background workers and monitors.
	cron.InitReminderWorker(gatewayClient)
	utils.StartHealthMonitor(utils.GetSessionCacheClient(), gatewayClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
