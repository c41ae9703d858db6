package sellerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sellerpulse/database"
	"sellerpulse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no seller matches the query.
var ErrNotFound = errors.New("seller not found")

// MongoSellerRepo implements SellerRepository using MongoDB.
type MongoSellerRepo struct {
	coll *mongo.Collection
}

// NewMongoSellerRepo creates a new instance of SellerRepository using MongoDB.
func NewMongoSellerRepo() SellerRepository {
	coll := database.MongoClient.Database("sellerpulse").Collection("sellers")
	repo := &MongoSellerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoSellerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByIDWithProjection retrieves a seller by its unique ID using a
// projection. Pass nil for projection to retrieve the full document.
func (r *MongoSellerRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Seller, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var seller models.Seller
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&seller); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch seller with id %s: %w", id, err)
	}
	return &seller, nil
}

// GetByID retrieves a seller by its unique ID (full document).
func (r *MongoSellerRepo) GetByID(id string) (*models.Seller, error) {
	return r.GetByIDWithProjection(id, nil)
}

// GetByEmail retrieves a seller by its email address. Returns nil, nil when
// no account exists so registration can distinguish "free" from "failed".
func (r *MongoSellerRepo) GetByEmail(email string) (*models.Seller, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var seller models.Seller
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&seller); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch seller with email %s: %w", email, err)
	}
	return &seller, nil
}

// GetAll retrieves all sellers.
func (r *MongoSellerRepo) GetAll() ([]models.Seller, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve sellers: %w", err)
	}
	defer cursor.Close(ctx)

	var sellers []models.Seller
	if err := cursor.All(ctx, &sellers); err != nil {
		return nil, fmt.Errorf("failed to decode sellers: %w", err)
	}
	return sellers, nil
}

// Create inserts a new seller document.
func (r *MongoSellerRepo) Create(seller *models.Seller) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	seller.CreatedAt = now
	seller.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, seller)
	if err != nil {
		return fmt.Errorf("failed to create seller: %w", err)
	}
	return nil
}

// Update modifies an existing seller document.
func (r *MongoSellerRepo) Update(seller *models.Seller) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	seller.UpdatedAt = time.Now()
	filter := bson.M{"id": seller.ID}
	update := bson.M{"$set": seller}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update seller with id %s: %w", seller.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a seller document by its ID.
func (r *MongoSellerRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete seller with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateSetDocument applies a partial $set update to a seller document.
func (r *MongoSellerRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": updateDoc}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update seller with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
