package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitlink/middleware"
	"fitlink/models"
	"fitlink/services/user"
	"fitlink/utils"
)

// RegisterUser creates an athlete account.
// POST /api/auth/register
func (h *Handler) RegisterUser(c *gin.Context) {
	var req models.UserRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Users.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUser signs an athlete in.
// POST /api/auth/login
func (h *Handler) AuthenticateUser(c *gin.Context) {
	var req models.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignOutUser revokes the athlete's session.
// POST /api/auth/logout
func (h *Handler) SignOutUser(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if err := h.Users.SignOut(c.Request.Context(), userID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to sign out", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// GetProfile returns the authenticated athlete's record.
// GET /api/profile
func (h *Handler) GetProfile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	u, err := h.Users.GetByID(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "user not found", "")
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateProfile updates the athlete's editable fields.
// PUT /api/profile
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req struct {
		Name  string   `json:"name,omitempty"`
		City  string   `json:"city,omitempty"`
		Goals []string `json:"goals,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	u, err := h.Users.UpdateProfile(c.Request.Context(), userID, req.Name, req.City, req.Goals)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update profile", "")
		return
	}
	c.JSON(http.StatusOK, u)
}

// DeleteUser removes the athlete's account.
// DELETE /api/profile
func (h *Handler) DeleteUser(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if err := h.Users.Delete(c.Request.Context(), userID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete account", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

// SetFCMToken records the device push token for session reminders.
// PUT /api/profile/fcm-token
func (h *Handler) SetFCMToken(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Users.SetFCMToken(c.Request.Context(), userID, req.Token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save token", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "token saved"})
}
