package handlers

import (
	sellerRepo "sellerpulse/database/repository/seller"

	"github.com/gin-gonic/gin"
)

// HandlerBundle collects every route handler plus the repositories the
// middleware needs, so route registration takes a single value.
type HandlerBundle struct {
	SellerRepo sellerRepo.SellerRepository

	// Auth endpoints.
	RegisterHandler       gin.HandlerFunc
	LoginHandler          gin.HandlerFunc
	LogoutHandler         gin.HandlerFunc
	UpdatePasswordHandler gin.HandlerFunc
	ResetPasswordHandler  gin.HandlerFunc

	// Seller endpoints.
	GetProfileHandler    gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc
	GetAllSellersHandler gin.HandlerFunc
	DeleteSellerHandler  gin.HandlerFunc

	// Session-log endpoints.
	CreateSessionHandler gin.HandlerFunc
	UpdateSessionHandler gin.HandlerFunc
	ListSessionsHandler  gin.HandlerFunc

	// Bonus-target endpoints.
	GetTargetsHandler    gin.HandlerFunc
	UpdateTargetsHandler gin.HandlerFunc

	// Stats endpoints.
	WeeklyStatsHandler gin.HandlerFunc
}
