package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fitlink/models"
	"fitlink/services/gym"
	"fitlink/utils"
)

// CreateGym adds a gym to the directory.
// POST /api/gyms
func (h *Handler) CreateGym(c *gin.Context) {
	var req gym.GymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	g, err := h.Gyms.Create(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create gym", "")
		return
	}
	c.JSON(http.StatusCreated, g)
}

// GetGym returns one gym.
// GET /api/gyms/:id
func (h *Handler) GetGym(c *gin.Context) {
	g, err := h.Gyms.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "gym not found", "")
		return
	}
	c.JSON(http.StatusOK, g)
}

// UpdateGym replaces a gym's details.
// PUT /api/gyms/:id
func (h *Handler) UpdateGym(c *gin.Context) {
	var req gym.GymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	g, err := h.Gyms.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, gym.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "gym not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update gym", "")
		return
	}
	c.JSON(http.StatusOK, g)
}

// DeleteGym removes a gym from the directory.
// DELETE /api/gyms/:id
func (h *Handler) DeleteGym(c *gin.Context) {
	if err := h.Gyms.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete gym", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "gym deleted"})
}

// SearchGyms searches gyms by city or by proximity.
// GET /api/gyms?city=Berlin
// GET /api/gyms?lon=13.4&lat=52.5&maxKm=10
func (h *Handler) SearchGyms(c *gin.Context) {
	ctx := c.Request.Context()

	if city := c.Query("city"); city != "" {
		gyms, err := h.Gyms.SearchByCity(ctx, city)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to search gyms", "")
			return
		}
		writeGyms(c, gyms)
		return
	}

	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	if lonErr != nil || latErr != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid search", "provide 'city' or 'lon' and 'lat'")
		return
	}
	maxKm, err := strconv.ParseFloat(c.DefaultQuery("maxKm", "10"), 64)
	if err != nil || maxKm <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid search", "maxKm must be a positive number")
		return
	}

	gyms, err := h.Gyms.SearchNear(ctx, lon, lat, maxKm)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to search gyms", "")
		return
	}
	writeGyms(c, gyms)
}

// UploadGymPhoto stores a gym's photo.
// POST /api/gyms/:id/photo
func (h *Handler) UploadGymPhoto(c *gin.Context) {
	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "missing photo", "multipart field 'photo' is required")
		return
	}
	defer file.Close()

	url, err := h.Gyms.UploadPhoto(c.Request.Context(), c.Param("id"), file)
	if err != nil {
		if errors.Is(err, gym.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "gym not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to upload photo", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"photoUrl": url})
}

func writeGyms(c *gin.Context, gyms []models.Gym) {
	if gyms == nil {
		gyms = []models.Gym{}
	}
	c.JSON(http.StatusOK, gyms)
}
