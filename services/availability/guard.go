package availability

import (
	"context"
	"fmt"
	"time"

	reservationRepo "fitlink/database/repository/reservation"
	scheduleRepo "fitlink/database/repository/schedule"
	"fitlink/models"
)

// Guard decides whether a proposed reservation may be committed.
type Guard interface {
	// IsBookable re-derives the weekday window and existing reservations and
	// checks the proposed interval against both. It is advisory until the
	// moment of commit: callers must invoke it again immediately before the
	// reservation write, since another client may have booked in between.
	IsBookable(ctx context.Context, providerID string, date time.Time, start, end int) (bool, error)
}

// DefaultGuard implements Guard over the same stores as the resolver.
type DefaultGuard struct {
	Schedules    scheduleRepo.ScheduleRepository
	Reservations reservationRepo.ReservationRepository
}

func (g *DefaultGuard) IsBookable(ctx context.Context, providerID string, date time.Time, start, end int) (bool, error) {
	if start >= end {
		return false, ErrInvalidInterval
	}

	weekday := int(date.Weekday())
	schedule, err := g.Schedules.GetWeeklyAvailability(ctx, providerID, weekday)
	if err != nil {
		return false, fmt.Errorf("%w: weekly availability: %v", ErrStoreUnavailable, err)
	}
	// No schedule row for the weekday rejects the booking (fail-closed).
	if schedule == nil || !schedule.IsAvailable {
		return false, nil
	}
	if start < schedule.WindowStart || end > schedule.WindowEnd {
		return false, nil
	}

	reservations, err := g.Reservations.GetReservations(ctx, providerID, date.Format(models.DateLayout))
	if err != nil {
		return false, fmt.Errorf("%w: reservations: %v", ErrStoreUnavailable, err)
	}
	return !overlapsAny(start, end, reservations), nil
}
