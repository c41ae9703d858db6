package sessionlogRepo

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

// ErrNotFound is returned when no session log matches the query.
var ErrNotFound = errors.New("session log not found")

// MongoSessionLogRepo implements SessionLogRepository using MongoDB.
type MongoSessionLogRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionLogRepo creates a new instance of SessionLogRepository using MongoDB.
func NewMongoSessionLogRepo() SessionLogRepository {
	coll := database.MongoClient.Database("sellerpulse").Collection("session_logs")
	repo := &MongoSessionLogRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates the indexes backing the week-window queries.
func (r *MongoSessionLogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "sellerId", Value: 1}, {Key: "startTime", Value: 1}}},
		{Keys: bson.D{{Key: "startTime", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a session log by its unique ID.
func (r *MongoSessionLogRepo) GetByID(id string) (*models.SessionLog, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var log models.SessionLog
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&log); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch session log with id %s: %w", id, err)
	}
	return &log, nil
}

// Create inserts a new session log document.
func (r *MongoSessionLogRepo) Create(log *models.SessionLog) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	log.CreatedAt = now
	log.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to create session log: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of an existing session log.
func (r *MongoSessionLogRepo) Update(log *models.SessionLog) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	log.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"startTime":         log.StartTime,
		"endTime":           log.EndTime,
		"brandedItemsSold":  log.BrandedItemsSold,
		"freeSizeItemsSold": log.FreeSizeItemsSold,
		"updatedAt":         log.UpdatedAt,
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": log.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update session log with id %s: %w", log.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a session log document by its ID.
func (r *MongoSessionLogRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete session log with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByWindow returns logs whose start time falls in [start, end),
// optionally restricted to one seller. Ordering is ascending by start time
// so aggregation sees days in order.
func (r *MongoSessionLogRepo) ListByWindow(sellerID string, start, end time.Time) ([]models.SessionLog, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"startTime": bson.M{"$gte": start, "$lt": end},
	}
	if sellerID != SellerAll {
		filter["sellerId"] = sellerID
	}

	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session logs: %w", err)
	}
	defer cursor.Close(ctx)

	var logs []models.SessionLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("failed to decode session logs: %w", err)
	}
	return logs, nil
}

// ListBySeller returns all logs for one seller, newest first.
func (r *MongoSessionLogRepo) ListBySeller(sellerID string) ([]models.SessionLog, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"sellerId": sellerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session logs for seller %s: %w", sellerID, err)
	}
	defer cursor.Close(ctx)

	var logs []models.SessionLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("failed to decode session logs: %w", err)
	}
	return logs, nil
}
