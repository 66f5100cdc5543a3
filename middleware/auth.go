package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	trainerRepo "fitlink/database/repository/trainer"
	userRepo "fitlink/database/repository/user"
	"fitlink/utils"
)

const (
	// ContextUserID is the gin context key carrying the authenticated athlete ID.
	ContextUserID = "userID"
	// ContextTrainerID is the gin context key carrying the authenticated trainer ID.
	ContextTrainerID = "trainerID"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}

// validateBearer checks the signature, role claim and live session for the
// request token. Returns the subject ID on success.
func validateBearer(c *gin.Context, role string) (string, bool) {
	tokenString, ok := bearerToken(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return "", false
	}

	token, err := utils.ValidateToken(tokenString)
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return "", false
	}

	tokenRole, err := utils.ExtractRoleFromToken(tokenString)
	if err != nil || tokenRole != role {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Token not valid for this resource"})
		return "", false
	}

	id, err := utils.ExtractIDFromToken(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return "", false
	}

	// A revoked session invalidates tokens before they expire.
	ok, err = utils.CheckSessionToken(utils.GetAuthCacheClient(), role, id, utils.HashToken(tokenString))
	if err != nil || !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or revoked"})
		return "", false
	}

	return id, true
}

// UserAuthMiddleware authenticates athlete tokens and verifies the token hash
// against the stored account record.
func UserAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := validateBearer(c, "user")
		if !ok {
			return
		}

		tokenString, _ := bearerToken(c)
		u, err := users.GetByID(c.Request.Context(), id)
		if err != nil || u == nil || u.TokenHash != utils.HashToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or user not found"})
			return
		}

		c.Set(ContextUserID, u.ID)
		c.Next()
	}
}

// TrainerAuthMiddleware authenticates trainer tokens and verifies the token
// hash against the stored account record.
func TrainerAuthMiddleware(trainers trainerRepo.TrainerRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := validateBearer(c, "trainer")
		if !ok {
			return
		}

		tokenString, _ := bearerToken(c)
		t, err := trainers.GetByID(c.Request.Context(), id)
		if err != nil || t == nil || t.TokenHash != utils.HashToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or trainer not found"})
			return
		}

		c.Set(ContextTrainerID, t.ID)
		c.Next()
	}
}
