package trainer

import (
	"context"
	"fmt"
	"time"

	scheduleRepo "fitlink/database/repository/schedule"
	trainerRepo "fitlink/database/repository/trainer"
	"fitlink/models"
	"fitlink/services/storage"
	"fitlink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RoleTrainer is the JWT role claim issued to trainer tokens.
const RoleTrainer = "trainer"

const tokenTTL = 72 * time.Hour

// DefaultTrainerService is the production implementation of TrainerService.
type DefaultTrainerService struct {
	Trainers  trainerRepo.TrainerRepository
	Schedules scheduleRepo.ScheduleRepository
	Storage   storage.StorageService
}

// Register creates a trainer account and signs it in.
func (s *DefaultTrainerService) Register(ctx context.Context, req models.TrainerRegistration) (*AuthResponse, error) {
	logger := utils.GetLogger()

	existing, err := s.Trainers.GetByEmail(ctx, req.Email)
	if err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	t := models.Trainer{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: string(hashed),
		Profile: models.TrainerProfile{
			Name:        req.Name,
			Specialties: req.Specialties,
			City:        req.City,
		},
		HourlyRate: req.HourlyRate,
		Currency:   req.Currency,
		GymID:      req.GymID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.Trainers.Create(ctx, &t); err != nil {
		logger.Error("Register: failed to create trainer", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(ctx, &t)
}

// Authenticate verifies credentials and issues a fresh token, replacing any
// outstanding session for this trainer.
func (s *DefaultTrainerService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	t, err := s.Trainers.GetByEmail(ctx, email)
	if err != nil || t == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(t.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(ctx, t)
}

// SignOut revokes the trainer's session so the outstanding token stops working.
func (s *DefaultTrainerService) SignOut(ctx context.Context, trainerID string) error {
	if err := utils.RevokeSessionToken(utils.GetAuthCacheClient(), RoleTrainer, trainerID); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	if err := s.Trainers.SetTokenHash(ctx, trainerID, ""); err != nil {
		return fmt.Errorf("failed to clear token hash: %w", err)
	}
	return nil
}

func (s *DefaultTrainerService) issueToken(ctx context.Context, t *models.Trainer) (*AuthResponse, error) {
	logger := utils.GetLogger()

	token, err := utils.GenerateToken(t.ID, t.Email, RoleTrainer, tokenTTL)
	if err != nil {
		logger.Error("issueToken: failed to generate token", zap.String("trainerID", t.ID), zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	if err := s.Trainers.SetTokenHash(ctx, t.ID, tokenHash); err != nil {
		logger.Error("issueToken: failed to store token hash", zap.String("trainerID", t.ID), zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if err := utils.SaveSessionToken(utils.GetAuthCacheClient(), RoleTrainer, t.ID, tokenHash, tokenTTL); err != nil {
		logger.Error("issueToken: failed to save session", zap.String("trainerID", t.ID), zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{
		ID:         t.ID,
		Token:      token,
		Email:      t.Email,
		Profile:    t.Profile,
		HourlyRate: t.HourlyRate,
		Currency:   t.Currency,
	}, nil
}
