package booking

import (
	"context"

	"fitlink/models"
)

// BookingService manages the lifecycle of reservations.
type BookingService interface {
	CreateBooking(ctx context.Context, userID string, req models.BookingRequest) (*models.Reservation, error)
	CancelBooking(ctx context.Context, callerID, reservationID string) (*models.Reservation, error)
	CompleteBooking(ctx context.Context, trainerID, reservationID string) (*models.Reservation, error)
	ListUserBookings(ctx context.Context, userID string) ([]models.Reservation, error)
	ListTrainerBookings(ctx context.Context, trainerID string) ([]models.Reservation, error)
}
