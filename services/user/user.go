package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "fitlink/database/repository/user"
	"fitlink/models"
	"fitlink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RoleUser is the JWT role claim issued to athlete tokens.
const RoleUser = "user"

const tokenTTL = 72 * time.Hour

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("user not found")
)

// AuthResponse is returned on successful registration or sign-in.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// UserService manages athlete accounts.
type UserService interface {
	Register(ctx context.Context, req models.UserRegistration) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	SignOut(ctx context.Context, userID string) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, name, city string, goals []string) (*models.User, error)
	Delete(ctx context.Context, id string) error
	SetFCMToken(ctx context.Context, id, token string) error
}

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Users userRepo.UserRepository
}

// Register creates an athlete account and signs it in.
func (s *DefaultUserService) Register(ctx context.Context, req models.UserRegistration) (*AuthResponse, error) {
	logger := utils.GetLogger()

	existing, err := s.Users.GetByEmail(ctx, req.Email)
	if err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	u := models.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: string(hashed),
		Name:         req.Name,
		City:         req.City,
		Goals:        req.Goals,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Users.Create(ctx, &u); err != nil {
		logger.Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(ctx, &u)
}

// Authenticate verifies credentials and issues a fresh token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(ctx, u)
}

// SignOut revokes the athlete's session.
func (s *DefaultUserService) SignOut(ctx context.Context, userID string) error {
	if err := utils.RevokeSessionToken(utils.GetAuthCacheClient(), RoleUser, userID); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	if err := s.Users.SetTokenHash(ctx, userID, ""); err != nil {
		return fmt.Errorf("failed to clear token hash: %w", err)
	}
	return nil
}

// GetByID fetches an athlete record.
func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return u, nil
}

// UpdateProfile updates the editable profile fields.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, id string, name, city string, goals []string) (*models.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	if name != "" {
		u.Name = name
	}
	if city != "" {
		u.City = city
	}
	if goals != nil {
		u.Goals = goals
	}
	u.UpdatedAt = time.Now()

	if err := s.Users.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return u, nil
}

// Delete removes the athlete account and revokes any session.
func (s *DefaultUserService) Delete(ctx context.Context, id string) error {
	if err := utils.RevokeSessionToken(utils.GetAuthCacheClient(), RoleUser, id); err != nil {
		utils.GetLogger().Warn("Delete: failed to revoke session", zap.String("userID", id), zap.Error(err))
	}
	return s.Users.Delete(ctx, id)
}

// SetFCMToken records the device push token for reminders.
func (s *DefaultUserService) SetFCMToken(ctx context.Context, id, token string) error {
	return s.Users.SetFCMToken(ctx, id, token)
}

func (s *DefaultUserService) issueToken(ctx context.Context, u *models.User) (*AuthResponse, error) {
	logger := utils.GetLogger()

	token, err := utils.GenerateToken(u.ID, u.Email, RoleUser, tokenTTL)
	if err != nil {
		logger.Error("issueToken: failed to generate token", zap.String("userID", u.ID), zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	if err := s.Users.SetTokenHash(ctx, u.ID, tokenHash); err != nil {
		logger.Error("issueToken: failed to store token hash", zap.String("userID", u.ID), zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if err := utils.SaveSessionToken(utils.GetAuthCacheClient(), RoleUser, u.ID, tokenHash, tokenTTL); err != nil {
		logger.Error("issueToken: failed to save session", zap.String("userID", u.ID), zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{
		ID:    u.ID,
		Token: token,
		Email: u.Email,
		Name:  u.Name,
	}, nil
}
