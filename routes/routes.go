package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	trainerRepo "fitlink/database/repository/trainer"
	userRepo "fitlink/database/repository/user"
	"fitlink/handlers"
	"fitlink/middleware"
	"fitlink/utils"
)

// RegisterUserRoutes registers athlete account and booking endpoints.
func RegisterUserRoutes(r *gin.Engine, h *handlers.Handler, users userRepo.UserRepository) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.RegisterUser)
		auth.POST("/login", h.AuthenticateUser)
	}

	// Protected routes (require an athlete token).
	protected := r.Group("/api")
	protected.Use(middleware.UserAuthMiddleware(users))
	{
		protected.POST("/auth/logout", h.SignOutUser)
		protected.GET("/profile", h.GetProfile)
		protected.PUT("/profile", h.UpdateProfile)
		protected.DELETE("/profile", h.DeleteUser)
		protected.PUT("/profile/fcm-token", h.SetFCMToken)

		protected.POST("/bookings", h.CreateBooking)
		protected.GET("/bookings", h.ListMyBookings)
		protected.POST("/bookings/:id/cancel", h.CancelBooking)

		protected.POST("/match", h.MatchTrainers)
	}
}

// RegisterTrainerRoutes registers trainer account, schedule and booking endpoints.
func RegisterTrainerRoutes(r *gin.Engine, h *handlers.Handler, trainers trainerRepo.TrainerRepository) {
	auth := r.Group("/api/trainer/auth")
	{
		auth.POST("/register", h.RegisterTrainer)
		auth.POST("/login", h.AuthenticateTrainer)
	}

	// Public trainer lookups.
	r.GET("/api/trainers/:id", h.GetTrainer)
	r.GET("/api/trainers/:id/slots", h.GetTrainerSlots)

	// Protected routes (require a trainer token).
	protected := r.Group("/api/trainer")
	protected.Use(middleware.TrainerAuthMiddleware(trainers))
	{
		protected.POST("/auth/logout", h.SignOutTrainer)
		protected.PUT("/profile", h.UpdateTrainerProfile)
		protected.DELETE("/profile", h.DeleteTrainer)
		protected.POST("/profile/photo", h.UploadTrainerPhoto)

		protected.GET("/schedule", h.GetWeeklySchedule)
		protected.PUT("/schedule", h.SetWeeklySchedule)
		protected.DELETE("/schedule/:weekday", h.ClearWeeklyAvailability)

		protected.GET("/bookings", h.ListTrainerBookings)
		protected.POST("/bookings/:id/cancel", h.TrainerCancelBooking)
		protected.POST("/bookings/:id/complete", h.CompleteBooking)
	}
}

// RegisterGymRoutes registers gym directory endpoints. Writes require a
// trainer token; reads are public.
func RegisterGymRoutes(r *gin.Engine, h *handlers.Handler, trainers trainerRepo.TrainerRepository) {
	api := r.Group("/api/gyms")
	{
		api.GET("", h.SearchGyms)
		api.GET("/:id", h.GetGym)

		protected := api.Group("")
		protected.Use(middleware.TrainerAuthMiddleware(trainers))
		protected.POST("", h.CreateGym)
		protected.PUT("/:id", h.UpdateGym)
		protected.DELETE("/:id", h.DeleteGym)
		protected.POST("/:id/photo", h.UploadGymPhoto)
	}
}

// RegisterHealthRoute registers a health-check endpoint backed by the
// dependency monitor.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, users userRepo.UserRepository, trainers trainerRepo.TrainerRepository) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())
	r.Use(utils.ErrorHandler())

	RegisterUserRoutes(r, h, users)
	RegisterTrainerRoutes(r, h, trainers)
	RegisterGymRoutes(r, h, trainers)
	RegisterHealthRoute(r)
}
