package gymRepo

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

// GymRepository defines data access for gyms.
type GymRepository interface {
	GetByID(ctx context.Context, id string) (*models.Gym, error)
	Create(ctx context.Context, g *models.Gym) error
	Update(ctx context.Context, g *models.Gym) error
	Delete(ctx context.Context, id string) error
	SearchByCity(ctx context.Context, city string) ([]models.Gym, error)
	SearchNear(ctx context.Context, location models.GeoPoint, maxDistanceKm float64) ([]models.Gym, error)
	SetPhotoURL(ctx context.Context, id, url string) error
}

// MongoGymRepo implements GymRepository using MongoDB.
type MongoGymRepo struct {
	coll *mongo.Collection
}

// NewMongoGymRepo creates a new GymRepository backed by the "gyms" collection.
func NewMongoGymRepo() GymRepository {
	coll := database.Collection("gyms")
	return &MongoGymRepo{coll: coll}
}

func newContext(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, d)
}

func (r *MongoGymRepo) GetByID(ctx context.Context, id string) (*models.Gym, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var g models.Gym
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&g); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("gym with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch gym with id %s: %w", id, err)
	}
	return &g, nil
}

func (r *MongoGymRepo) Create(ctx context.Context, g *models.Gym) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, g); err != nil {
		return fmt.Errorf("failed to create gym: %w", err)
	}
	return nil
}

func (r *MongoGymRepo) Update(ctx context.Context, g *models.Gym) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": g.ID}, bson.M{"$set": g})
	if err != nil {
		return fmt.Errorf("failed to update gym with id %s: %w", g.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("gym with id %s not found", g.ID)
	}
	return nil
}

func (r *MongoGymRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete gym with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("gym with id %s not found", id)
	}
	return nil
}

func (r *MongoGymRepo) SearchByCity(ctx context.Context, city string) ([]models.Gym, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"city": bson.M{"$regex": "^" + city + "$", "$options": "i"}}
	return r.find(ctx, filter)
}

func (r *MongoGymRepo) SearchNear(ctx context.Context, location models.GeoPoint, maxDistanceKm float64) ([]models.Gym, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"location_geo": bson.M{
			"$nearSphere": bson.M{
				"$geometry":    location,
				"$maxDistance": maxDistanceKm * 1000,
			},
		},
	}
	return r.find(ctx, filter)
}

func (r *MongoGymRepo) find(ctx context.Context, filter bson.M) ([]models.Gym, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("gym search failed: %w", err)
	}
	defer cursor.Close(ctx)

	var gyms []models.Gym
	if err := cursor.All(ctx, &gyms); err != nil {
		return nil, fmt.Errorf("failed to decode gyms: %w", err)
	}
	return gyms, nil
}

func (r *MongoGymRepo) SetPhotoURL(ctx context.Context, id, url string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"photo_url": url}})
	if err != nil {
		return fmt.Errorf("failed to update gym %s photo: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("gym with id %s not found", id)
	}
	return nil
}

// EnsureIndexes creates the gym lookup and geo indexes.
func (r *MongoGymRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "location_geo", Value: "2dsphere"}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create gym indexes: %w", err)
	}
	return nil
}
