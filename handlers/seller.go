package handlers

import (
	"net/http"

	"sellerpulse/models"
	sellerSvc "sellerpulse/services/seller"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SellerHandler exposes profile and account-management endpoints.
type SellerHandler struct {
	Service sellerSvc.SellerService
}

func NewSellerHandler(svc sellerSvc.SellerService) *SellerHandler {
	return &SellerHandler{Service: svc}
}

// GetProfileHandler returns the authenticated account's profile.
func (h *SellerHandler) GetProfileHandler(c *gin.Context) {
	sellerID := c.GetString("sellerID")
	if sellerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.Service.GetSellerByID(sellerID)
	if err != nil {
		getLogger(c).Error("Failed to get profile", zap.String("sellerID", sellerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler updates the authenticated account's profile.
func (h *SellerHandler) UpdateProfileHandler(c *gin.Context) {
	sellerID := c.GetString("sellerID")
	if sellerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.SellerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = sellerID

	updated, err := h.Service.UpdateProfile(req)
	if err != nil {
		getLogger(c).Error("Failed to update profile", zap.String("sellerID", sellerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetAllSellersHandler lists every account (admin only).
func (h *SellerHandler) GetAllSellersHandler(c *gin.Context) {
	sellers, err := h.Service.GetAllSellers()
	if err != nil {
		getLogger(c).Error("Failed to list sellers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sellers"})
		return
	}
	c.JSON(http.StatusOK, sellers)
}

// DeleteSellerHandler removes an account (admin only).
func (h *SellerHandler) DeleteSellerHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteSeller(id); err != nil {
		getLogger(c).Error("Failed to delete seller", zap.String("sellerID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete seller"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Seller deleted"})
}
