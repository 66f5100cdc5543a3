package reservationRepo

import (
	"context"

	"fitlink/models"
)

// ReservationRepository is the store for booked sessions.
//
// GetReservations returns the non-cancelled reservations for a provider on a
// date; cancelled rows are filtered store-side so callers never see them on
// the availability path.
type ReservationRepository interface {
	GetReservations(ctx context.Context, providerID, date string) ([]models.Reservation, error)
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]models.Reservation, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Reservation, error)
	// CountOverlapping counts non-cancelled reservations intersecting
	// [start, end) on the given date, under the half-open overlap rule.
	CountOverlapping(ctx context.Context, providerID, date string, start, end int) (int64, error)
	Create(ctx context.Context, res *models.Reservation) error
	UpdateStatus(ctx context.Context, id, status string) error
}
