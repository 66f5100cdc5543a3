package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fitlink/models"
	"fitlink/services/availability"
	"fitlink/utils"
)

// GetTrainerSlots returns the hourly slots for a trainer on a given date.
// GET /api/trainers/:id/slots?date=2024-01-08
//
// A trainer with no availability that weekday gets 200 with an empty list;
// a store failure gets 503 so the client can distinguish "nothing offered"
// from "could not answer".
func (h *Handler) GetTrainerSlots(c *gin.Context) {
	trainerID := c.Param("id")
	dateStr := c.Query("date")
	if dateStr == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date", "query parameter 'date' is required (YYYY-MM-DD)")
		return
	}

	date, err := time.Parse(models.DateLayout, dateStr)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "date must be formatted YYYY-MM-DD")
		return
	}

	slots, err := h.Availability.ResolveSlots(c.Request.Context(), trainerID, date)
	if err != nil {
		if errors.Is(err, availability.ErrStoreUnavailable) {
			utils.JSONError(c, http.StatusServiceUnavailable, "availability temporarily unavailable", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to resolve slots", "")
		return
	}

	if slots == nil {
		slots = []models.Slot{}
	}
	c.JSON(http.StatusOK, gin.H{
		"trainerId": trainerID,
		"date":      dateStr,
		"slots":     slots,
	})
}
