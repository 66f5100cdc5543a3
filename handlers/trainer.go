package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitlink/middleware"
	"fitlink/models"
	"fitlink/services/trainer"
	"fitlink/utils"
)

// RegisterTrainer creates a trainer account.
// POST /api/trainer/auth/register
func (h *Handler) RegisterTrainer(c *gin.Context) {
	var req models.TrainerRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Trainers.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, trainer.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateTrainer signs a trainer in.
// POST /api/trainer/auth/login
func (h *Handler) AuthenticateTrainer(c *gin.Context) {
	var req models.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Trainers.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, trainer.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignOutTrainer revokes the trainer's session.
// POST /api/trainer/auth/logout
func (h *Handler) SignOutTrainer(c *gin.Context) {
	trainerID := c.GetString(middleware.ContextTrainerID)
	if err := h.Trainers.SignOut(c.Request.Context(), trainerID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to sign out", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// GetTrainer returns a trainer's public record.
// GET /api/trainers/:id
func (h *Handler) GetTrainer(c *gin.Context) {
	t, err := h.Trainers.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "trainer not found", "")
		return
	}
	c.JSON(http.StatusOK, models.TrainerDTO{
		ID:         t.ID,
		Profile:    t.Profile,
		HourlyRate: t.HourlyRate,
		Currency:   t.Currency,
		GymID:      t.GymID,
	})
}

// UpdateTrainerProfile replaces the authenticated trainer's profile.
// PUT /api/trainer/profile
func (h *Handler) UpdateTrainerProfile(c *gin.Context) {
	trainerID := c.GetString(middleware.ContextTrainerID)

	var profile models.TrainerProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	t, err := h.Trainers.UpdateProfile(c.Request.Context(), trainerID, profile)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update profile", "")
		return
	}
	c.JSON(http.StatusOK, t)
}

// DeleteTrainer removes the authenticated trainer's account.
// DELETE /api/trainer/profile
func (h *Handler) DeleteTrainer(c *gin.Context) {
	trainerID := c.GetString(middleware.ContextTrainerID)
	if err := h.Trainers.Delete(c.Request.Context(), trainerID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete account", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

// GetWeeklySchedule returns the authenticated trainer's availability template.
// GET /api/trainer/schedule
func (h *Handler) GetWeeklySchedule(c *gin.Context) {
	trainerID := c.GetString(middleware.ContextTrainerID)

	days, err := h.Trainers.GetWeeklySchedule(c.Request.Context(), trainerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch schedule", "")
		return
	}
	if days == nil {
		days = []models.RecurringAvailability{}
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

// SetWeeklySchedule upserts day records in the trainer's availability template.
// PUT /api/trainer/schedule
func (h *Handler) SetWeeklySchedule(c *gin.Context) {
	trainerID := c.GetString(middleware.ContextTrainerID)

	var req models.WeeklyScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Trainers.SetWeeklySchedule(c.Request.Context(), trainerID, req); err != nil {
		if errors.Is(err, trainer.ErrInvalidSchedule) {
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to save schedule", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "schedule saved"})
}

// ClearWeeklyAvailability deletes one weekday from the template.
// DELETE /api/trainer/schedule/:weekday
func (h *Handler) ClearWeeklyAvailability(c *gin.Context) {
	trainerID := c.GetString(middleware.ContextTrainerID)

	var uri struct {
		Weekday int `uri:"weekday" binding:"min=0,max=6"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid weekday", err.Error())
		return
	}

	if err := h.Trainers.ClearWeeklyAvailability(c.Request.Context(), trainerID, uri.Weekday); err != nil {
		if errors.Is(err, trainer.ErrInvalidSchedule) {
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to clear availability", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "availability cleared"})
}

// UploadTrainerPhoto stores the trainer's profile photo.
// POST /api/trainer/profile/photo
func (h *Handler) UploadTrainerPhoto(c *gin.Context) {
	trainerID := c.GetString(middleware.ContextTrainerID)

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "missing photo", "multipart field 'photo' is required")
		return
	}
	defer file.Close()

	url, err := h.Trainers.UploadPhoto(c.Request.Context(), trainerID, file)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to upload photo", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"photoUrl": url})
}
