package trainer

import (
	"context"
	"fmt"

	"fitlink/models"
	"fitlink/utils"
)

// GetWeeklySchedule returns the trainer's recurring availability records.
func (s *DefaultTrainerService) GetWeeklySchedule(ctx context.Context, trainerID string) ([]models.RecurringAvailability, error) {
	return s.Schedules.GetWeeklySchedule(ctx, trainerID)
}

// SetWeeklySchedule validates and upserts the given day records. Days not
// present in the request are left untouched.
func (s *DefaultTrainerService) SetWeeklySchedule(ctx context.Context, trainerID string, req models.WeeklyScheduleRequest) error {
	if len(req.Days) == 0 {
		return fmt.Errorf("%w: no days provided", ErrInvalidSchedule)
	}

	seen := make(map[models.Weekday]bool, len(req.Days))
	for _, day := range req.Days {
		if err := validateDay(day); err != nil {
			return err
		}
		if seen[day.Weekday] {
			return fmt.Errorf("%w: weekday %d appears twice", ErrInvalidSchedule, day.Weekday)
		}
		seen[day.Weekday] = true
	}

	for _, day := range req.Days {
		day.ProviderID = trainerID
		if err := s.Schedules.UpsertWeeklyAvailability(ctx, day); err != nil {
			return fmt.Errorf("failed to save schedule for weekday %d: %w", day.Weekday, err)
		}
	}
	return nil
}

// ClearWeeklyAvailability removes the record for one weekday, making that day
// fully unavailable.
func (s *DefaultTrainerService) ClearWeeklyAvailability(ctx context.Context, trainerID string, weekday models.Weekday) error {
	if weekday < 0 || weekday > 6 {
		return fmt.Errorf("%w: weekday must be 0 through 6", ErrInvalidSchedule)
	}
	return s.Schedules.DeleteWeeklyAvailability(ctx, trainerID, weekday)
}

func validateDay(day models.RecurringAvailability) error {
	if day.Weekday < 0 || day.Weekday > 6 {
		return fmt.Errorf("%w: weekday must be 0 through 6, got %d", ErrInvalidSchedule, day.Weekday)
	}
	if !day.IsAvailable {
		return nil
	}
	if day.WindowStart < 0 || day.WindowEnd > utils.MinutesPerDay {
		return fmt.Errorf("%w: window must fall within 00:00 and 24:00", ErrInvalidSchedule)
	}
	if day.WindowStart >= day.WindowEnd {
		return fmt.Errorf("%w: window start %s must precede end %s",
			ErrInvalidSchedule, utils.FormatClock(day.WindowStart), utils.FormatClock(day.WindowEnd))
	}
	return nil
}
