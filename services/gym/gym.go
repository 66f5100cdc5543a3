package gym

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	gymRepo "fitlink/database/repository/gym"
	"fitlink/models"
	"fitlink/services/storage"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("gym not found")

// GymRequest is the create/update payload for gyms.
type GymRequest struct {
	Name      string   `json:"name" binding:"required"`
	City      string   `json:"city" binding:"required"`
	Address   string   `json:"address,omitempty"`
	Longitude float64  `json:"longitude"`
	Latitude  float64  `json:"latitude"`
	Amenities []string `json:"amenities,omitempty"`
}

// GymService manages the gym directory.
type GymService interface {
	Create(ctx context.Context, req GymRequest) (*models.Gym, error)
	GetByID(ctx context.Context, id string) (*models.Gym, error)
	Update(ctx context.Context, id string, req GymRequest) (*models.Gym, error)
	Delete(ctx context.Context, id string) error
	SearchByCity(ctx context.Context, city string) ([]models.Gym, error)
	SearchNear(ctx context.Context, lon, lat, maxDistanceKm float64) ([]models.Gym, error)
	UploadPhoto(ctx context.Context, id string, photo io.Reader) (string, error)
}

// DefaultGymService is the production implementation of GymService.
type DefaultGymService struct {
	Gyms    gymRepo.GymRepository
	Storage storage.StorageService
}

func (s *DefaultGymService) Create(ctx context.Context, req GymRequest) (*models.Gym, error) {
	now := time.Now()
	g := models.Gym{
		ID:          uuid.New().String(),
		Name:        req.Name,
		City:        req.City,
		Address:     req.Address,
		LocationGeo: models.NewGeoPoint(req.Longitude, req.Latitude),
		Amenities:   req.Amenities,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Gyms.Create(ctx, &g); err != nil {
		return nil, fmt.Errorf("failed to create gym: %w", err)
	}
	return &g, nil
}

func (s *DefaultGymService) GetByID(ctx context.Context, id string) (*models.Gym, error) {
	g, err := s.Gyms.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return g, nil
}

func (s *DefaultGymService) Update(ctx context.Context, id string, req GymRequest) (*models.Gym, error) {
	g, err := s.Gyms.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	g.Name = req.Name
	g.City = req.City
	g.Address = req.Address
	g.LocationGeo = models.NewGeoPoint(req.Longitude, req.Latitude)
	g.Amenities = req.Amenities
	g.UpdatedAt = time.Now()

	if err := s.Gyms.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to update gym: %w", err)
	}
	return g, nil
}

func (s *DefaultGymService) Delete(ctx context.Context, id string) error {
	return s.Gyms.Delete(ctx, id)
}

func (s *DefaultGymService) SearchByCity(ctx context.Context, city string) ([]models.Gym, error) {
	return s.Gyms.SearchByCity(ctx, city)
}

func (s *DefaultGymService) SearchNear(ctx context.Context, lon, lat, maxDistanceKm float64) ([]models.Gym, error) {
	return s.Gyms.SearchNear(ctx, models.NewGeoPoint(lon, lat), maxDistanceKm)
}

func (s *DefaultGymService) UploadPhoto(ctx context.Context, id string, photo io.Reader) (string, error) {
	if _, err := s.Gyms.GetByID(ctx, id); err != nil {
		return "", ErrNotFound
	}
	url, err := s.Storage.UploadImage(ctx, photo, "gyms", id)
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}
	if err := s.Gyms.SetPhotoURL(ctx, id, url); err != nil {
		return "", fmt.Errorf("failed to record photo URL: %w", err)
	}
	return url, nil
}
