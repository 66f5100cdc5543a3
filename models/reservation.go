package models

import "time"

// Reservation statuses. Only non-cancelled reservations block availability.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Reservation represents a booked training session.
type Reservation struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"provider_id" json:"providerId"` // trainer who was booked
	UserID     string    `bson:"user_id" json:"userId"`         // athlete who booked
	GymID      string    `bson:"gym_id,omitempty" json:"gymId,omitempty"`
	Date       string    `bson:"date" json:"date"`   // "2006-01-02"
	Start      int       `bson:"start" json:"start"` // minutes from midnight
	End        int       `bson:"end" json:"end"`     // minutes from midnight, > Start
	Status     string    `bson:"status" json:"status"`
	TotalPrice float64   `bson:"total_price" json:"totalPrice"`
	PromoCode  string    `bson:"promo_code,omitempty" json:"promoCode,omitempty"`
	InvoiceID  string    `bson:"invoice_id,omitempty" json:"invoiceId,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// Blocks reports whether the reservation occupies its interval for
// availability purposes.
func (r Reservation) Blocks() bool {
	return r.Status != StatusCancelled
}

// BookingRequest is the payload for creating a reservation.
type BookingRequest struct {
	ProviderID string `json:"providerId" binding:"required"`
	GymID      string `json:"gymId,omitempty"`
	Date       string `json:"date" binding:"required"`  // "2006-01-02"
	Start      int    `json:"start" binding:"required"` // minutes from midnight
	End        int    `json:"end" binding:"required"`   // minutes from midnight
	PromoCode  string `json:"promoCode,omitempty"`
}
