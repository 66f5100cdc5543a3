package trainer

import (
	"context"
	"io"

	"fitlink/models"
)

// AuthResponse is returned on successful registration or sign-in.
type AuthResponse struct {
	ID         string                `json:"id"`
	Token      string                `json:"token"`
	Email      string                `json:"email"`
	Profile    models.TrainerProfile `json:"profile"`
	HourlyRate float64               `json:"hourlyRate"`
	Currency   string                `json:"currency"`
}

// TrainerService manages trainer accounts, profiles and weekly schedules.
type TrainerService interface {
	Register(ctx context.Context, req models.TrainerRegistration) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	SignOut(ctx context.Context, trainerID string) error

	GetByID(ctx context.Context, id string) (*models.Trainer, error)
	UpdateProfile(ctx context.Context, id string, profile models.TrainerProfile) (*models.Trainer, error)
	Delete(ctx context.Context, id string) error

	GetWeeklySchedule(ctx context.Context, trainerID string) ([]models.RecurringAvailability, error)
	SetWeeklySchedule(ctx context.Context, trainerID string, req models.WeeklyScheduleRequest) error
	ClearWeeklyAvailability(ctx context.Context, trainerID string, weekday models.Weekday) error

	UploadPhoto(ctx context.Context, trainerID string, photo io.Reader) (string, error)
}
