package notification

import (
	"context"
	"fmt"

	trainerRepo "fitlink/database/repository/trainer"
	userRepo "fitlink/database/repository/user"
	"fitlink/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendUserPush(ctx context.Context, userID, title, body string, data map[string]string) error
	SendTrainerPush(ctx context.Context, trainerID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users    userRepo.UserRepository
	Trainers trainerRepo.TrainerRepository
}

// SendUserPush looks up an athlete's FCM token and sends a push.
func (s *DefaultNotificationService) SendUserPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("SendUserPush: could not find user %s: %w", userID, err)
	}
	if u.FCMToken == "" {
		return fmt.Errorf("SendUserPush: user %s has no FCM token", userID)
	}
	return send(ctx, u.FCMToken, title, body, data)
}

// SendTrainerPush looks up a trainer's FCM token and sends a push.
func (s *DefaultNotificationService) SendTrainerPush(ctx context.Context, trainerID, title, body string, data map[string]string) error {
	t, err := s.Trainers.GetByID(ctx, trainerID)
	if err != nil {
		return fmt.Errorf("SendTrainerPush: could not find trainer %s: %w", trainerID, err)
	}
	if t.FCMToken == "" {
		return fmt.Errorf("SendTrainerPush: trainer %s has no FCM token", trainerID)
	}
	return send(ctx, t.FCMToken, title, body, data)
}

func send(ctx context.Context, token, title, body string, data map[string]string) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	id, err := utils.FCMClient.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("fcm send failed: %w", err)
	}
	utils.GetLogger().Debug("push sent", zap.String("messageID", id))
	return nil
}
