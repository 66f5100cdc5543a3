package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitlink/models"
	"fitlink/utils"
)

// MatchTrainers returns a ranked trainer list for the given criteria.
// POST /api/match
func (h *Handler) MatchTrainers(c *gin.Context) {
	var criteria models.MatchCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ranked, err := h.Matching.MatchTrainers(c.Request.Context(), criteria)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to match trainers", "")
		return
	}
	if ranked == nil {
		ranked = []models.TrainerDTO{}
	}
	c.JSON(http.StatusOK, gin.H{"trainers": ranked})
}
