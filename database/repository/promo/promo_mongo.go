package promoRepo

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

// PromoRepository defines data access for promotion codes.
type PromoRepository interface {
	GetByCode(ctx context.Context, code string) (*models.Promotion, error)
	Create(ctx context.Context, p *models.Promotion) error
	// Redeem atomically increments the usage counter, failing when the cap
	// has been reached.
	Redeem(ctx context.Context, code string) error
}

// MongoPromoRepo implements PromoRepository using MongoDB.
type MongoPromoRepo struct {
	coll *mongo.Collection
}

// NewMongoPromoRepo creates a new PromoRepository backed by the "promotions" collection.
func NewMongoPromoRepo() PromoRepository {
	coll := database.Collection("promotions")
	return &MongoPromoRepo{coll: coll}
}

func newContext(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, d)
}

func (r *MongoPromoRepo) GetByCode(ctx context.Context, code string) (*models.Promotion, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var p models.Promotion
	if err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("promotion %s not found", code)
		}
		return nil, fmt.Errorf("failed to fetch promotion %s: %w", code, err)
	}
	return &p, nil
}

func (r *MongoPromoRepo) Create(ctx context.Context, p *models.Promotion) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create promotion: %w", err)
	}
	return nil
}

// Redeem increments uses only while under the cap, in a single conditional
// update so concurrent redemptions cannot exceed max_uses.
func (r *MongoPromoRepo) Redeem(ctx context.Context, code string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"code": code,
		"$or": []bson.M{
			{"max_uses": 0},
			{"$expr": bson.M{"$lt": []string{"$uses", "$max_uses"}}},
		},
	}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"uses": 1}})
	if err != nil {
		return fmt.Errorf("failed to redeem promotion %s: %w", code, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("promotion %s is exhausted or does not exist", code)
	}
	return nil
}

// EnsureIndexes creates the unique code index.
func (r *MongoPromoRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create promotion indexes: %w", err)
	}
	return nil
}
