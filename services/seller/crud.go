package seller

import (
	"fmt"
	"time"

	"sellerpulse/models"
	"sellerpulse/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetSellerByID retrieves an account by ID, excluding sensitive fields.
func (s *DefaultSellerService) GetSellerByID(sellerID string) (*models.Seller, error) {
	projection := bson.M{"password_hash": 0, "token_hash": 0}
	acct, err := s.Repo.GetByIDWithProjection(sellerID, projection)
	if err != nil {
		return nil, fmt.Errorf("failed to get seller: %w", err)
	}
	return acct, nil
}

// UpdateProfile applies a partial update of the seller-editable fields.
func (s *DefaultSellerService) UpdateProfile(req models.SellerUpdateRequest) (*models.Seller, error) {
	logger := utils.GetLogger()

	if req.ID == "" {
		return nil, fmt.Errorf("seller ID is required for update")
	}

	updateFields := map[string]any{
		"updatedAt": time.Now(),
	}
	if req.Name != "" {
		updateFields["name"] = req.Name
	}
	if req.Phone != "" {
		updateFields["phone"] = req.Phone
	}
	if req.GCash != "" {
		updateFields["gcash"] = req.GCash
	}
	if len(updateFields) == 1 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateSetDocument(req.ID, updateFields); err != nil {
		logger.Error("Failed to update seller profile", zap.String("sellerID", req.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return s.GetSellerByID(req.ID)
}

// GetAllSellers retrieves every account, sensitive fields stripped.
func (s *DefaultSellerService) GetAllSellers() ([]models.Seller, error) {
	accts, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list sellers: %w", err)
	}
	for i := range accts {
		accts[i].PasswordHash = ""
		accts[i].TokenHash = ""
	}
	return accts, nil
}

// DeleteSeller removes an account by ID.
func (s *DefaultSellerService) DeleteSeller(sellerID string) error {
	if err := s.Repo.Delete(sellerID); err != nil {
		return fmt.Errorf("failed to delete seller with id %s: %w", sellerID, err)
	}
	return nil
}
