package routes

import (
	"net/http"
	"time"

	"sellerpulse/handlers"
	"sellerpulse/middleware"
	"sellerpulse/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.SellerRepo))
		api.POST("/logout", hb.LogoutHandler)
		api.PUT("/password", hb.UpdatePasswordHandler)
		api.POST("/reset-password", middleware.AdminOnlyMiddleware(), hb.ResetPasswordHandler)
	}
}

// RegisterSellerRoutes registers profile and account-management endpoints.
func RegisterSellerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sellers")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.SellerRepo))
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)

		// Admin-only account management.
		admin := api.Group("")
		admin.Use(middleware.AdminOnlyMiddleware())
		admin.GET("", hb.GetAllSellersHandler)
		admin.DELETE("/:id", hb.DeleteSellerHandler)
	}
}

// RegisterSessionRoutes registers session-log endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sessions")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.SellerRepo))
		api.POST("", hb.CreateSessionHandler)
		api.PUT("/:id", hb.UpdateSessionHandler)
		api.GET("", hb.ListSessionsHandler)
	}
}

// RegisterTargetsRoutes registers bonus-target configuration endpoints.
// Reads are open to any authenticated account; writes are admin-only.
func RegisterTargetsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/targets")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.SellerRepo))
		api.GET("", hb.GetTargetsHandler)

		admin := api.Group("")
		admin.Use(middleware.AdminOnlyMiddleware())
		admin.PUT("", hb.UpdateTargetsHandler)
	}
}

// RegisterStatsRoutes registers the weekly-stats endpoint.
func RegisterStatsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/stats")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.SellerRepo))
		api.GET("/weekly", hb.WeeklyStatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterSellerRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterTargetsRoutes(r, hb)
	RegisterStatsRoutes(r, hb)
	RegisterHealthRoute(r)
}
