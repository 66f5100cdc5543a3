package cron

import (
	"context"
	"encoding/json"
	"time"

	"fitlink/config"
	"fitlink/models"
	"fitlink/services/notification"
	"fitlink/services/tasks"
	"fitlink/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc))

	go monitorRedisConnection()

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempt := 1; attempt <= maxAttempts; attempt++ {
			err := srv.Run(mux)
			if err == nil {
				break
			}
			logger.Error("reminder worker failed to start",
				zap.Int("attempt", attempt),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err))
			if attempt == maxAttempts {
				logger.Fatal("reminder worker exhausted retries")
			}
			time.Sleep(time.Duration(attempt*2) * time.Second)
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		logger.Info("firing session reminder",
			zap.String("target", p.Target),
			zap.String("id", p.ID),
			zap.String("reservationID", p.ReservationID))

		data := map[string]string{
			"reservationId": p.ReservationID,
			"fireDate":      p.FireDate,
		}

		var err error
		switch p.Target {
		case "user":
			err = notifSvc.SendUserPush(ctx, p.ID, p.Title, p.Body, data)
		case "trainer":
			err = notifSvc.SendTrainerPush(ctx, p.ID, p.Title, p.Body, data)
		default:
			logger.Warn("unknown reminder target", zap.String("target", p.Target))
			return nil
		}

		if err != nil {
			logger.Error("failed to send reminder", zap.Error(err))
		}
		return err
	}
}

// monitorRedisConnection pings the reminder queue Redis periodically to
// detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()
	for {
		if err := client.Ping(ctx).Err(); err != nil {
			utils.GetLogger().Warn("reminder queue redis unreachable", zap.Error(err))
		}
		time.Sleep(10 * time.Second)
	}
}
