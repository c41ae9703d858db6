package handlers

import (
	"errors"
	"net/http"

	"sellerpulse/models"
	sellerSvc "sellerpulse/services/seller"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes registration and login endpoints.
type AuthHandler struct {
	Service sellerSvc.SellerService
}

func NewAuthHandler(svc sellerSvc.SellerService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
	GCash    string `json:"gcash"`
}

// RegisterHandler creates a new seller account.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Register(models.Seller{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		GCash:    req.GCash,
		Role:     models.RoleSeller,
	}, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, sellerSvc.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, sellerSvc.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to register seller", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler authenticates a seller or admin and returns a token.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, sellerSvc.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Login failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// LogoutHandler revokes the caller's outstanding token.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	sellerID := c.GetString("sellerID")
	if sellerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Service.RevokeToken(sellerID); err != nil {
		getLogger(c).Error("Failed to revoke token", zap.String("sellerID", sellerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

type resetPasswordRequest struct {
	SellerID    string `json:"sellerId" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// ResetPasswordHandler lets an admin overwrite a seller's password. The
// target's outstanding token is revoked.
func (h *AuthHandler) ResetPasswordHandler(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.ResetPassword(req.SellerID, req.NewPassword); err != nil {
		if errors.Is(err, sellerSvc.ErrWeakPassword) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("Failed to reset password", zap.String("sellerID", req.SellerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset"})
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// UpdatePasswordHandler changes the caller's password.
func (h *AuthHandler) UpdatePasswordHandler(c *gin.Context) {
	sellerID := c.GetString("sellerID")
	if sellerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.UpdatePassword(sellerID, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, sellerSvc.ErrWeakPassword) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("Failed to update password", zap.String("sellerID", sellerID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated; please log in again"})
}
