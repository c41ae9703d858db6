package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sellerpulse/config"
	"sellerpulse/cron"
	"sellerpulse/database"
	sellerRepoPkg "sellerpulse/database/repository/seller"
	sessionlogRepoPkg "sellerpulse/database/repository/sessionlog"
	targetsRepoPkg "sellerpulse/database/repository/targets"
	"sellerpulse/handlers"
	"sellerpulse/middleware"
	"sellerpulse/routes"
	sellerSvc "sellerpulse/services/seller"
	sessionSvc "sellerpulse/services/session"
	statsSvc "sellerpulse/services/stats"
	targetsSvc "sellerpulse/services/targets"
	"sellerpulse/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	loc := config.BusinessLocation()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	sellerRepo := sellerRepoPkg.NewMongoSellerRepo()
	sessionRepo := sessionlogRepoPkg.NewMongoSessionLogRepo()
	targetsRepo := targetsRepoPkg.NewMongoTargetsRepo()

	// services.
	statsCache := statsSvc.NewRedisStatsCache(utils.GetCacheClient())

	sellerService := &sellerSvc.DefaultSellerService{
		Repo: sellerRepo,
	}
	sessionService := &sessionSvc.DefaultSessionService{
		Repo:  sessionRepo,
		Cache: statsCache,
		Loc:   loc,
	}
	targetsService := &targetsSvc.DefaultTargetsService{
		Repo:  targetsRepo,
		Cache: statsCache,
	}
	statsService := &statsSvc.DefaultStatsService{
		Logs:    sessionRepo,
		Targets: targetsRepo,
		Cache:   statsCache,
		Loc:     loc,
	}

	authHandler := handlers.NewAuthHandler(sellerService)
	sellerHandler := handlers.NewSellerHandler(sellerService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	targetsHandler := handlers.NewTargetsHandler(targetsService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		SellerRepo: sellerRepo,

		// Auth endpoints.
		RegisterHandler:       authHandler.RegisterHandler,
		LoginHandler:          authHandler.LoginHandler,
		LogoutHandler:         authHandler.LogoutHandler,
		UpdatePasswordHandler: authHandler.UpdatePasswordHandler,
		ResetPasswordHandler:  authHandler.ResetPasswordHandler,

		// Seller endpoints.
		GetProfileHandler:    sellerHandler.GetProfileHandler,
		UpdateProfileHandler: sellerHandler.UpdateProfileHandler,
		GetAllSellersHandler: sellerHandler.GetAllSellersHandler,
		DeleteSellerHandler:  sellerHandler.DeleteSellerHandler,

		// Session-log endpoints.
		CreateSessionHandler: sessionHandler.CreateSessionHandler,
		UpdateSessionHandler: sessionHandler.UpdateSessionHandler,
		ListSessionsHandler:  sessionHandler.ListSessionsHandler,

		// Bonus-target endpoints.
		GetTargetsHandler:    targetsHandler.GetTargetsHandler,
		UpdateTargetsHandler: targetsHandler.UpdateTargetsHandler,

		// Stats endpoints.
		WeeklyStatsHandler: statsHandler.WeeklyStatsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background cache warming plus external service health checks.
	cron.InitStatsWarmWorker(statsService, sellerRepo)
	utils.StartHealthMonitor([]*redis.Client{
		utils.GetCacheClient(),
		utils.GetAuthCacheClient(),
	}, database.MongoClient)

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
