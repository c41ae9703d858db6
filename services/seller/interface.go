package seller

import (
	sellerRepo "sellerpulse/database/repository/seller"
	"sellerpulse/models"
)

// SellerService manages seller accounts and authentication.
type SellerService interface {
	// Registration and authentication
	Register(reg models.Seller, password string) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	RevokeToken(sellerID string) error
	UpdatePassword(sellerID, currentPassword, newPassword string) error
	ResetPassword(sellerID, newPassword string) error

	// Account management
	GetSellerByID(sellerID string) (*models.Seller, error)
	UpdateProfile(req models.SellerUpdateRequest) (*models.Seller, error)

	// Admin
	GetAllSellers() ([]models.Seller, error)
	DeleteSeller(sellerID string) error
}

// DefaultSellerService is the production implementation.
type DefaultSellerService struct {
	Repo sellerRepo.SellerRepository
}

// AuthResponse contains the account's ID, token, and display details.
type AuthResponse struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	Name     string `json:"name,omitempty"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}
