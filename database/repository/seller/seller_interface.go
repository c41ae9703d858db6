package sellerRepo

import (
	"sellerpulse/models"

	"go.mongodb.org/mongo-driver/bson"
)

// SellerRepository defines methods for seller account data access.
type SellerRepository interface {
	// GetByID retrieves a seller by its unique ID.
	GetByID(id string) (*models.Seller, error)
	// GetByEmail retrieves a seller by its email address, nil when absent.
	GetByEmail(email string) (*models.Seller, error)
	// GetAll retrieves all sellers.
	GetAll() ([]models.Seller, error)
	// Create inserts a new seller record.
	Create(seller *models.Seller) error
	// Update modifies an existing seller record.
	Update(seller *models.Seller) error
	// Delete removes a seller record by its ID.
	Delete(id string) error
	// UpdateSetDocument applies a partial $set update to a seller.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// GetByIDWithProjection retrieves a seller by ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.Seller, error)
}
