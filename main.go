// File: roomfinder/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomfinder/apiclient"
	"roomfinder/config"
	"roomfinder/cron"
	"roomfinder/handlers"
	"roomfinder/middleware"
	"roomfinder/routes"
	"roomfinder/session"
	"roomfinder/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()
	utils.InitStatsCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	httpClient := &http.Client{
		Timeout: time.Duration(config.AppConfig.APITimeoutSeconds) * time.Second,
	}

	// Every request gets an API client bound to the caller's own token so
	// upstream sessions never leak across users.
	clientFactory := func(token string) *apiclient.Client {
		return apiclient.New(config.AppConfig.APIBaseURL, session.Static(token), httpClient, logger)
	}

	pageSize := config.AppConfig.DefaultPageSize
	dashboardHandler := handlers.NewDashboardHandler(clientFactory, pageSize, logger)
	propertyHandler := handlers.NewPropertyHandler(clientFactory, utils.GetStatsCacheClient(), pageSize, logger)
	authHandler := handlers.NewAuthHandler(config.AppConfig.APIBaseURL, httpClient, utils.GetSessionCacheClient(), logger)
	revenueHandler := handlers.NewRevenueHandler(clientFactory, logger)

	// Background stats worker uses an anonymous client; public totals need
	// no session.
	cron.InitStatsWorker(clientFactory(""), utils.GetStatsCacheClient())

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Auth endpoints.
		LoginHandler:                 authHandler.LoginHandler,
		LogoutHandler:                authHandler.LogoutHandler,
		ProfileHandler:               authHandler.ProfileHandler,
		HostApplicationHandler:       authHandler.HostApplicationHandler,
		SubmitHostApplicationHandler: authHandler.SubmitHostApplicationHandler,

		// Public property endpoints.
		SearchPropertiesHandler: propertyHandler.SearchPropertiesHandler,
		GetPropertyHandler:      propertyHandler.GetPropertyHandler,
		PropertyReviewsHandler:  propertyHandler.PropertyReviewsHandler,
		PlatformStatsHandler:    propertyHandler.PlatformStatsHandler,

		// Dashboard feed endpoints.
		OverviewHandler:                 dashboardHandler.OverviewHandler,
		PropertiesHandler:               dashboardHandler.PropertiesHandler,
		BookingsHandler:                 dashboardHandler.BookingsHandler,
		ReviewsHandler:                  dashboardHandler.ReviewsHandler,
		EnquiriesHandler:                dashboardHandler.EnquiriesHandler,
		FavoritesHandler:                dashboardHandler.FavoritesHandler,
		NotificationsHandler:            dashboardHandler.NotificationsHandler,
		TransactionsHandler:             dashboardHandler.TransactionsHandler,
		MarkNotificationReadHandler:     dashboardHandler.MarkNotificationReadHandler,
		MarkAllNotificationsReadHandler: dashboardHandler.MarkAllNotificationsReadHandler,
		WithdrawHandler:                 dashboardHandler.WithdrawHandler,
		CreateEnquiryHandler:            dashboardHandler.CreateEnquiryHandler,

		// Admin revenue endpoints.
		RevenueListHandler:      revenueHandler.ListHandler,
		RevenueCreateHandler:    revenueHandler.CreateHandler,
		RevenueActivateHandler:  revenueHandler.ActivateHandler,
		RevenueUpdateHandler:    revenueHandler.UpdateHandler,
		RevenueDeleteHandler:    revenueHandler.DeleteHandler,
		RevenueCalculateHandler: revenueHandler.CalculateHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
