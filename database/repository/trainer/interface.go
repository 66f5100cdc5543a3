package trainerRepo

import (
	"context"

	"fitlink/models"
)

// TrainerSearchCriteria narrows the trainer search before scoring.
type TrainerSearchCriteria struct {
	Specialty     string
	City          string
	LocationGeo   models.GeoPoint
	MaxDistanceKm float64
	MaxHourlyRate float64
}

// TrainerRepository defines data access for trainer accounts.
type TrainerRepository interface {
	GetByID(ctx context.Context, id string) (*models.Trainer, error)
	GetByEmail(ctx context.Context, email string) (*models.Trainer, error)
	Create(ctx context.Context, t *models.Trainer) error
	Update(ctx context.Context, t *models.Trainer) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, criteria TrainerSearchCriteria) ([]models.Trainer, error)
	SetTokenHash(ctx context.Context, id, tokenHash string) error
	SetPhotoURL(ctx context.Context, id, url string) error
	IncrementCompletedSessions(ctx context.Context, id string) error
}
