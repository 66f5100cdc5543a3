package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitlink/middleware"
	"fitlink/models"
	"fitlink/services/availability"
	"fitlink/services/booking"
	"fitlink/utils"
)

// CreateBooking books a session for the authenticated athlete.
// POST /api/bookings
func (h *Handler) CreateBooking(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	reservation, err := h.Bookings.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

// CancelBooking cancels a reservation owned by the caller (athlete side).
// POST /api/bookings/:id/cancel
func (h *Handler) CancelBooking(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	reservation, err := h.Bookings.CancelBooking(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// TrainerCancelBooking cancels a reservation from the trainer side.
// POST /api/trainer/bookings/:id/cancel
func (h *Handler) TrainerCancelBooking(c *gin.Context) {
	trainerID := c.GetString(middleware.ContextTrainerID)

	reservation, err := h.Bookings.CancelBooking(c.Request.Context(), trainerID, c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// CompleteBooking marks a confirmed session as completed (trainer only).
// POST /api/trainer/bookings/:id/complete
func (h *Handler) CompleteBooking(c *gin.Context) {
	trainerID := c.GetString(middleware.ContextTrainerID)

	reservation, err := h.Bookings.CompleteBooking(c.Request.Context(), trainerID, c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// ListMyBookings returns the authenticated athlete's reservations.
// GET /api/bookings
func (h *Handler) ListMyBookings(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	reservations, err := h.Bookings.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", "")
		return
	}
	if reservations == nil {
		reservations = []models.Reservation{}
	}
	c.JSON(http.StatusOK, reservations)
}

// ListTrainerBookings returns the authenticated trainer's reservations.
// GET /api/trainer/bookings
func (h *Handler) ListTrainerBookings(c *gin.Context) {
	trainerID := c.GetString(middleware.ContextTrainerID)

	reservations, err := h.Bookings.ListTrainerBookings(c.Request.Context(), trainerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", "")
		return
	}
	if reservations == nil {
		reservations = []models.Reservation{}
	}
	c.JSON(http.StatusOK, reservations)
}

// writeBookingError maps booking service errors to HTTP statuses.
func writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrInvalidDate),
		errors.Is(err, availability.ErrInvalidInterval),
		errors.Is(err, booking.ErrPromoInvalid):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, booking.ErrSlotUnavailable),
		errors.Is(err, booking.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	case errors.Is(err, booking.ErrNotAuthorized):
		utils.JSONError(c, http.StatusForbidden, err.Error(), "")
	case errors.Is(err, availability.ErrStoreUnavailable):
		utils.JSONError(c, http.StatusServiceUnavailable, "booking temporarily unavailable", "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "booking failed", "")
	}
}
