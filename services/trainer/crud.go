package trainer

import (
	"context"
	"fmt"
	"io"
	"time"

	"fitlink/models"
	"fitlink/utils"

	"go.uber.org/zap"
)

// GetByID fetches a trainer record.
func (s *DefaultTrainerService) GetByID(ctx context.Context, id string) (*models.Trainer, error) {
	t, err := s.Trainers.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return t, nil
}

// UpdateProfile replaces the public profile fields. Rating and verification
// are server-managed and cannot be set by the trainer.
func (s *DefaultTrainerService) UpdateProfile(ctx context.Context, id string, profile models.TrainerProfile) (*models.Trainer, error) {
	t, err := s.Trainers.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	profile.Rating = t.Profile.Rating
	profile.Verified = t.Profile.Verified
	profile.PhotoURL = t.Profile.PhotoURL
	t.Profile = profile
	t.UpdatedAt = time.Now()

	if err := s.Trainers.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to update trainer: %w", err)
	}
	return t, nil
}

// Delete removes the trainer account and revokes any session.
func (s *DefaultTrainerService) Delete(ctx context.Context, id string) error {
	if err := utils.RevokeSessionToken(utils.GetAuthCacheClient(), RoleTrainer, id); err != nil {
		utils.GetLogger().Warn("Delete: failed to revoke session", zap.String("trainerID", id), zap.Error(err))
	}
	return s.Trainers.Delete(ctx, id)
}

// UploadPhoto stores the profile photo and records its URL.
func (s *DefaultTrainerService) UploadPhoto(ctx context.Context, trainerID string, photo io.Reader) (string, error) {
	if _, err := s.Trainers.GetByID(ctx, trainerID); err != nil {
		return "", ErrNotFound
	}

	url, err := s.Storage.UploadImage(ctx, photo, "trainers", trainerID)
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}
	if err := s.Trainers.SetPhotoURL(ctx, trainerID, url); err != nil {
		return "", fmt.Errorf("failed to record photo URL: %w", err)
	}
	return url, nil
}
