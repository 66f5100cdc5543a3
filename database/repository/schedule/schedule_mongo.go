package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitlink/database"
	"fitlink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo creates a new ScheduleRepository backed by the
// "weekly_availability" collection.
func NewMongoScheduleRepo() ScheduleRepository {
	coll := database.Collection("weekly_availability")
	return &MongoScheduleRepo{coll: coll}
}

func newContext(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, d)
}

// GetWeeklyAvailability fetches the availability record for one weekday.
// A missing record is not an error: it returns (nil, nil).
func (r *MongoScheduleRepo) GetWeeklyAvailability(ctx context.Context, providerID string, weekday models.Weekday) (*models.RecurringAvailability, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var rec models.RecurringAvailability
	filter := bson.M{"provider_id": providerID, "weekday": weekday}
	err := r.coll.FindOne(ctx, filter).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weekly availability for provider %s weekday %d: %w", providerID, weekday, err)
	}
	return &rec, nil
}

// GetWeeklySchedule returns all availability records for a provider, ordered by weekday.
func (r *MongoScheduleRepo) GetWeeklySchedule(ctx context.Context, providerID string) ([]models.RecurringAvailability, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "weekday", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"provider_id": providerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weekly schedule for provider %s: %w", providerID, err)
	}
	defer cursor.Close(ctx)

	var recs []models.RecurringAvailability
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("failed to decode weekly schedule: %w", err)
	}
	return recs, nil
}

// UpsertWeeklyAvailability inserts or replaces the record for (provider, weekday).
// The unique index on (provider_id, weekday) keeps at most one record per pair.
func (r *MongoScheduleRepo) UpsertWeeklyAvailability(ctx context.Context, rec models.RecurringAvailability) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"provider_id": rec.ProviderID, "weekday": rec.Weekday}
	update := bson.M{"$set": rec}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert weekly availability for provider %s weekday %d: %w", rec.ProviderID, rec.Weekday, err)
	}
	return nil
}

// DeleteWeeklyAvailability removes the record for (provider, weekday), if any.
func (r *MongoScheduleRepo) DeleteWeeklyAvailability(ctx context.Context, providerID string, weekday models.Weekday) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"provider_id": providerID, "weekday": weekday}
	if _, err := r.coll.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete weekly availability for provider %s weekday %d: %w", providerID, weekday, err)
	}
	return nil
}
