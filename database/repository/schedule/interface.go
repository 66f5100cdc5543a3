package scheduleRepo

import (
	"context"

	"fitlink/models"
)

// ScheduleRepository is the read/write store for recurring weekly availability.
// GetWeeklyAvailability returns (nil, nil) when no record exists for the
// weekday; callers treat that as zero availability, never as an error.
type ScheduleRepository interface {
	GetWeeklyAvailability(ctx context.Context, providerID string, weekday models.Weekday) (*models.RecurringAvailability, error)
	GetWeeklySchedule(ctx context.Context, providerID string) ([]models.RecurringAvailability, error)
	UpsertWeeklyAvailability(ctx context.Context, rec models.RecurringAvailability) error
	DeleteWeeklyAvailability(ctx context.Context, providerID string, weekday models.Weekday) error
}
