package availability

import (
	"context"
	"fmt"
	"time"

	reservationRepo "fitlink/database/repository/reservation"
	scheduleRepo "fitlink/database/repository/schedule"
	"fitlink/models"
	"fitlink/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SlotMinutes is the fixed candidate slot length.
const SlotMinutes = 60

// Resolver computes bookable slots for a trainer on a calendar date.
type Resolver interface {
	// ResolveSlots returns the ordered 1-hour candidate slots for the date,
	// each flagged available or not. A trainer with no schedule for the
	// weekday (or is_available=false) gets an empty result, not an error.
	ResolveSlots(ctx context.Context, providerID string, date time.Time) ([]models.Slot, error)
}

// DefaultResolver implements Resolver over the schedule and reservation stores.
type DefaultResolver struct {
	Schedules    scheduleRepo.ScheduleRepository
	Reservations reservationRepo.ReservationRepository
}

// ResolveSlots is a pure read: same schedule and reservation data always
// yields the same slot sequence. The two store reads are independent, so they
// are issued concurrently and joined before slots are computed.
func (r *DefaultResolver) ResolveSlots(ctx context.Context, providerID string, date time.Time) ([]models.Slot, error) {
	weekday := int(date.Weekday()) // Sunday = 0 … Saturday = 6
	dateStr := date.Format(models.DateLayout)

	var (
		schedule     *models.RecurringAvailability
		reservations []models.Reservation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		schedule, err = r.Schedules.GetWeeklyAvailability(gctx, providerID, weekday)
		if err != nil {
			return fmt.Errorf("%w: weekly availability: %v", ErrStoreUnavailable, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		reservations, err = r.Reservations.GetReservations(gctx, providerID, dateStr)
		if err != nil {
			return fmt.Errorf("%w: reservations: %v", ErrStoreUnavailable, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// No schedule, or the weekday switched off, means zero availability.
	// Never fall back to a default window.
	if schedule == nil || !schedule.IsAvailable {
		utils.GetLogger().Debug("no weekly availability",
			zap.String("providerID", providerID),
			zap.Int("weekday", weekday))
		return nil, nil
	}

	return buildSlots(*schedule, reservations), nil
}

// buildSlots enumerates hour-aligned slots fully contained in the window and
// marks each against the fetched reservations.
func buildSlots(schedule models.RecurringAvailability, reservations []models.Reservation) []models.Slot {
	var slots []models.Slot

	// First hour boundary at or after the window start; partial leading and
	// trailing fractions are never emitted.
	firstHour := (schedule.WindowStart + SlotMinutes - 1) / SlotMinutes
	for h := firstHour; (h+1)*SlotMinutes <= schedule.WindowEnd; h++ {
		start := h * SlotMinutes
		end := start + SlotMinutes
		slots = append(slots, models.Slot{
			Start:     start,
			End:       end,
			Available: !overlapsAny(start, end, reservations),
			Label:     utils.IntervalLabel(start, end),
		})
	}
	return slots
}

// overlapsAny applies the half-open interval test: [a,b) and [c,d) overlap
// iff a < d && c < b. Touching endpoints do not conflict. Cancelled
// reservations never block.
func overlapsAny(start, end int, reservations []models.Reservation) bool {
	for _, res := range reservations {
		if !res.Blocks() {
			continue
		}
		if res.Start < end && res.End > start {
			return true
		}
	}
	return false
}
