package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitlink/config"
	"fitlink/cron"
	"fitlink/database"
	gymRepoPkg "fitlink/database/repository/gym"
	promoRepoPkg "fitlink/database/repository/promo"
	reservationRepoPkg "fitlink/database/repository/reservation"
	scheduleRepoPkg "fitlink/database/repository/schedule"
	trainerRepoPkg "fitlink/database/repository/trainer"
	userRepoPkg "fitlink/database/repository/user"
	"fitlink/handlers"
	"fitlink/routes"
	"fitlink/services/availability"
	"fitlink/services/booking"
	"fitlink/services/gym"
	"fitlink/services/matching"
	"fitlink/services/notification"
	"fitlink/services/tasks"
	"fitlink/services/trainer"
	"fitlink/services/user"
	"fitlink/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	trainerRepo := trainerRepoPkg.NewMongoTrainerRepo()
	gymRepo := gymRepoPkg.NewMongoGymRepo()
	promoRepo := promoRepoPkg.NewMongoPromoRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()

	ensureIndexes(logger,
		userRepo, trainerRepo, gymRepo, promoRepo, scheduleRepo, reservationRepo)

	// Services.
	resolver := &availability.DefaultResolver{
		Schedules:    scheduleRepo,
		Reservations: reservationRepo,
	}
	guard := &availability.DefaultGuard{
		Schedules:    scheduleRepo,
		Reservations: reservationRepo,
	}

	notificationService := &notification.DefaultNotificationService{
		Users:    userRepo,
		Trainers: trainerRepo,
	}
	reminderScheduler := tasks.NewReminderScheduler()
	defer reminderScheduler.Close()

	bookingService := &booking.DefaultBookingService{
		Reservations: reservationRepo,
		Trainers:     trainerRepo,
		Promos:       promoRepo,
		Guard:        guard,
		Payments:     booking.NewPaymentHandler(logger),
		Notifier:     notificationService,
		Reminders:    reminderScheduler,
	}

	matchingService := &matching.DefaultMatchingService{
		Trainers:    trainerRepo,
		CacheClient: utils.GetCacheClient(),
	}

	trainerService := &trainer.DefaultTrainerService{
		Trainers:  trainerRepo,
		Schedules: scheduleRepo,
		Storage:   storageService,
	}
	userService := &user.DefaultUserService{Users: userRepo}
	gymService := &gym.DefaultGymService{Gyms: gymRepo, Storage: storageService}

	// Background reminder worker and dependency health monitor.
	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	handler := &handlers.Handler{
		Users:        userService,
		Trainers:     trainerService,
		Gyms:         gymService,
		Bookings:     bookingService,
		Matching:     matchingService,
		Availability: resolver,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	routes.RegisterRoutes(router, handler, userRepo, trainerRepo)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// ensureIndexes creates collection indexes at startup. A failed index build
// is fatal: the booking guard depends on them.
func ensureIndexes(logger *zap.Logger, repos ...any) {
	type indexer interface {
		EnsureIndexes() error
	}
	for _, r := range repos {
		if idx, ok := r.(indexer); ok {
			if err := idx.EnsureIndexes(); err != nil {
				logger.Sugar().Fatalf("main: failed to create indexes: %v", err)
			}
		}
	}
}
