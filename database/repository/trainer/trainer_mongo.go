package trainerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitlink/database"
	"fitlink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTrainerRepo implements TrainerRepository using MongoDB.
type MongoTrainerRepo struct {
	coll *mongo.Collection
}

// NewMongoTrainerRepo creates a new TrainerRepository backed by the "trainers" collection.
func NewMongoTrainerRepo() TrainerRepository {
	coll := database.Collection("trainers")
	return &MongoTrainerRepo{coll: coll}
}

func newContext(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, d)
}

func (r *MongoTrainerRepo) GetByID(ctx context.Context, id string) (*models.Trainer, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var t models.Trainer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("trainer with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch trainer with id %s: %w", id, err)
	}
	return &t, nil
}

func (r *MongoTrainerRepo) GetByEmail(ctx context.Context, email string) (*models.Trainer, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var t models.Trainer
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("trainer with email %s not found", email)
		}
		return nil, fmt.Errorf("failed to fetch trainer with email %s: %w", email, err)
	}
	return &t, nil
}

func (r *MongoTrainerRepo) Create(ctx context.Context, t *models.Trainer) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("failed to create trainer: %w", err)
	}
	return nil
}

func (r *MongoTrainerRepo) Update(ctx context.Context, t *models.Trainer) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": t.ID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": t})
	if err != nil {
		return fmt.Errorf("failed to update trainer with id %s: %w", t.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("trainer with id %s not found", t.ID)
	}
	return nil
}

func (r *MongoTrainerRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete trainer with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("trainer with id %s not found", id)
	}
	return nil
}

// Search applies the criteria's filters store-side; scoring and ranking stay
// in the matching service.
func (r *MongoTrainerRepo) Search(ctx context.Context, criteria TrainerSearchCriteria) ([]models.Trainer, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if criteria.Specialty != "" {
		filter["profile.specialties"] = bson.M{"$regex": criteria.Specialty, "$options": "i"}
	}
	if criteria.City != "" {
		filter["profile.city"] = bson.M{"$regex": "^" + criteria.City + "$", "$options": "i"}
	}
	if criteria.MaxHourlyRate > 0 {
		filter["hourly_rate"] = bson.M{"$lte": criteria.MaxHourlyRate}
	}
	if criteria.MaxDistanceKm > 0 && len(criteria.LocationGeo.Coordinates) >= 2 {
		filter["profile.location_geo"] = bson.M{
			"$nearSphere": bson.M{
				"$geometry":    criteria.LocationGeo,
				"$maxDistance": criteria.MaxDistanceKm * 1000,
			},
		}
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("trainer search failed: %w", err)
	}
	defer cursor.Close(ctx)

	var trainers []models.Trainer
	if err := cursor.All(ctx, &trainers); err != nil {
		return nil, fmt.Errorf("failed to decode trainers: %w", err)
	}
	return trainers, nil
}

func (r *MongoTrainerRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	return r.setField(ctx, id, "token_hash", tokenHash)
}

func (r *MongoTrainerRepo) SetPhotoURL(ctx context.Context, id, url string) error {
	return r.setField(ctx, id, "profile.photo_url", url)
}

func (r *MongoTrainerRepo) setField(ctx context.Context, id, field string, value interface{}) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return fmt.Errorf("failed to update trainer %s field %s: %w", id, field, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("trainer with id %s not found", id)
	}
	return nil
}

func (r *MongoTrainerRepo) IncrementCompletedSessions(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$inc": bson.M{"completed_sessions": 1}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("failed to increment completed sessions for trainer %s: %w", id, err)
	}
	return nil
}
