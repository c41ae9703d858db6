package targetsRepo

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

// ErrNotFound is returned when the configuration record has never been set.
var ErrNotFound = errors.New("bonus targets not configured")

// The configuration is a singleton document pinned to a fixed _id.
const singletonID = "bonus_targets"

// MongoTargetsRepo implements TargetsRepository using MongoDB.
type MongoTargetsRepo struct {
	coll *mongo.Collection
}

// NewMongoTargetsRepo creates a new instance of TargetsRepository using MongoDB.
func NewMongoTargetsRepo() TargetsRepository {
	coll := database.MongoClient.Database("sellerpulse").Collection("bonus_targets")
	return &MongoTargetsRepo{coll: coll}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Get retrieves the singleton configuration document.
func (r *MongoTargetsRepo) Get() (*models.BonusTargets, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var targets models.BonusTargets
	if err := r.coll.FindOne(ctx, bson.M{"_id": singletonID}).Decode(&targets); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch bonus targets: %w", err)
	}
	return &targets, nil
}

// Set replaces the configuration wholesale, creating it on first write.
func (r *MongoTargetsRepo) Set(targets *models.BonusTargets) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	targets.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": singletonID}, targets, opts); err != nil {
		return fmt.Errorf("failed to store bonus targets: %w", err)
	}
	return nil
}
