package reservationRepo

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

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo creates a new ReservationRepository backed by the
// "reservations" collection.
func NewMongoReservationRepo() ReservationRepository {
	coll := database.Collection("reservations")
	return &MongoReservationRepo{coll: coll}
}

func newContext(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, d)
}

// GetReservations returns all non-cancelled reservations for a provider on a
// date, in ascending start order.
func (r *MongoReservationRepo) GetReservations(ctx context.Context, providerID, date string) ([]models.Reservation, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"provider_id": providerID,
		"date":        date,
		"status":      bson.M{"$ne": models.StatusCancelled},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations for provider %s on %s: %w", providerID, date, err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return reservations, nil
}

func (r *MongoReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var res models.Reservation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&res); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("reservation %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch reservation %s: %w", id, err)
	}
	return &res, nil
}

func (r *MongoReservationRepo) ListByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *MongoReservationRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Reservation, error) {
	return r.list(ctx, bson.M{"provider_id": providerID})
}

func (r *MongoReservationRepo) list(ctx context.Context, filter bson.M) ([]models.Reservation, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return reservations, nil
}

// CountOverlapping counts non-cancelled reservations whose [start, end)
// interval intersects the given one. Touching endpoints do not count.
func (r *MongoReservationRepo) CountOverlapping(ctx context.Context, providerID, date string, start, end int) (int64, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"provider_id": providerID,
		"date":        date,
		"status":      bson.M{"$ne": models.StatusCancelled},
		"start":       bson.M{"$lt": end},
		"end":         bson.M{"$gt": start},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count overlapping reservations: %w", err)
	}
	return count, nil
}

// Create inserts a new reservation document.
//
// Mongo offers no interval-exclusion constraint, so the caller must re-check
// conflicts via CountOverlapping immediately before calling Create; a
// concurrent submission between the check and the insert can still
// double-book. That window is an accepted limitation of the store.
func (r *MongoReservationRepo) Create(ctx context.Context, res *models.Reservation) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, res); err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

// UpdateStatus transitions a reservation's status.
func (r *MongoReservationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"status": status}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update reservation %s status: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("reservation %s not found", id)
	}
	return nil
}
