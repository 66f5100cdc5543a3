package booking

import (
	"context"
	"fmt"
	"time"

	promoRepo "fitlink/database/repository/promo"
	reservationRepo "fitlink/database/repository/reservation"
	trainerRepo "fitlink/database/repository/trainer"
	"fitlink/models"
	"fitlink/services/availability"
	"fitlink/services/notification"
	"fitlink/services/tasks"
	"fitlink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// reminderLead is how long before a session the reminder push fires.
const reminderLead = time.Hour

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	Reservations reservationRepo.ReservationRepository
	Trainers     trainerRepo.TrainerRepository
	Promos       promoRepo.PromoRepository
	Guard        availability.Guard
	Payments     PaymentHandler
	Notifier     notification.NotificationService
	Reminders    tasks.ReminderScheduler
}

// CreateBooking validates the proposed interval against the trainer's weekly
// window and existing reservations, charges the athlete and persists the
// reservation.
//
// The guard result is advisory until the write: the slot list the athlete saw
// may be stale, so bookability is re-derived here, and the repository
// performs a final overlap count immediately before the insert. Mongo has no
// interval-exclusion constraint, so two submissions racing between that
// count and the insert can still double-book; the store keeps that window as
// small as possible.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, userID string, req models.BookingRequest) (*models.Reservation, error) {
	logger := utils.GetLogger()

	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	trainer, err := s.Trainers.GetByID(ctx, req.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trainer: %w", err)
	}

	ok, err := s.Guard.IsBookable(ctx, req.ProviderID, date, req.Start, req.End)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSlotUnavailable
	}

	price := trainer.HourlyRate * float64(req.End-req.Start) / 60
	if req.PromoCode != "" {
		promo, err := s.Promos.GetByCode(ctx, req.PromoCode)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPromoInvalid, err)
		}
		if !promo.Active(time.Now()) {
			return nil, ErrPromoInvalid
		}
		if err := s.Promos.Redeem(ctx, req.PromoCode); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPromoInvalid, err)
		}
		price = promo.Apply(price)
	}

	// Final conflict re-count as close to the write as the store allows.
	conflicts, err := s.Reservations.CountOverlapping(ctx, req.ProviderID, req.Date, req.Start, req.End)
	if err != nil {
		return nil, fmt.Errorf("conflict re-check failed: %w", err)
	}
	if conflicts > 0 {
		return nil, ErrSlotUnavailable
	}

	invoice, err := s.Payments.ProcessPayment(ctx, models.PaymentRequest{
		UserID:   userID,
		Amount:   price,
		Currency: trainer.Currency,
		Method:   "card",
	})
	if err != nil {
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	reservation := &models.Reservation{
		ID:         uuid.New().String(),
		ProviderID: req.ProviderID,
		UserID:     userID,
		GymID:      req.GymID,
		Date:       req.Date,
		Start:      req.Start,
		End:        req.End,
		Status:     invoice.Status,
		TotalPrice: price,
		PromoCode:  req.PromoCode,
		InvoiceID:  invoice.InvoiceID,
		CreatedAt:  time.Now(),
	}
	if err := s.Reservations.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("failed to save reservation: %w", err)
	}

	logger.Info("reservation created",
		zap.String("reservationID", reservation.ID),
		zap.String("providerID", reservation.ProviderID),
		zap.String("date", reservation.Date))

	s.notifyBoth(ctx, reservation, "Session booked",
		fmt.Sprintf("Session on %s at %s", reservation.Date, utils.ClockLabel(reservation.Start)))
	s.scheduleReminders(reservation, date)

	return reservation, nil
}

// CancelBooking transitions a pending or confirmed reservation to cancelled.
// Either party may cancel their own reservation.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, callerID, reservationID string) (*models.Reservation, error) {
	reservation, err := s.Reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.UserID != callerID && reservation.ProviderID != callerID {
		return nil, ErrNotAuthorized
	}
	if reservation.Status != models.StatusPending && reservation.Status != models.StatusConfirmed {
		return nil, fmt.Errorf("%w: cannot cancel a %s reservation", ErrInvalidTransition, reservation.Status)
	}

	if err := s.Reservations.UpdateStatus(ctx, reservationID, models.StatusCancelled); err != nil {
		return nil, err
	}
	reservation.Status = models.StatusCancelled

	s.notifyBoth(ctx, reservation, "Session cancelled",
		fmt.Sprintf("Session on %s at %s was cancelled", reservation.Date, utils.ClockLabel(reservation.Start)))

	return reservation, nil
}

// CompleteBooking lets the trainer mark a confirmed session as completed.
func (s *DefaultBookingService) CompleteBooking(ctx context.Context, trainerID, reservationID string) (*models.Reservation, error) {
	reservation, err := s.Reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.ProviderID != trainerID {
		return nil, ErrNotAuthorized
	}
	if reservation.Status != models.StatusConfirmed {
		return nil, fmt.Errorf("%w: cannot complete a %s reservation", ErrInvalidTransition, reservation.Status)
	}

	if err := s.Reservations.UpdateStatus(ctx, reservationID, models.StatusCompleted); err != nil {
		return nil, err
	}
	reservation.Status = models.StatusCompleted

	if err := s.Trainers.IncrementCompletedSessions(ctx, trainerID); err != nil {
		utils.GetLogger().Warn("failed to bump completed sessions",
			zap.String("trainerID", trainerID), zap.Error(err))
	}
	return reservation, nil
}

func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.Reservation, error) {
	return s.Reservations.ListByUser(ctx, userID)
}

func (s *DefaultBookingService) ListTrainerBookings(ctx context.Context, trainerID string) ([]models.Reservation, error) {
	return s.Reservations.ListByProvider(ctx, trainerID)
}

// notifyBoth sends best-effort pushes to the athlete and the trainer.
func (s *DefaultBookingService) notifyBoth(ctx context.Context, res *models.Reservation, title, body string) {
	if s.Notifier == nil {
		return
	}
	logger := utils.GetLogger()
	data := map[string]string{"reservationId": res.ID, "date": res.Date}
	if err := s.Notifier.SendUserPush(ctx, res.UserID, title, body, data); err != nil {
		logger.Warn("user push failed", zap.String("userID", res.UserID), zap.Error(err))
	}
	if err := s.Notifier.SendTrainerPush(ctx, res.ProviderID, title, body, data); err != nil {
		logger.Warn("trainer push failed", zap.String("trainerID", res.ProviderID), zap.Error(err))
	}
}

// scheduleReminders enqueues a reminder for each party an hour before the session.
func (s *DefaultBookingService) scheduleReminders(res *models.Reservation, date time.Time) {
	if s.Reminders == nil {
		return
	}
	logger := utils.GetLogger()

	sessionStart := date.Add(time.Duration(res.Start) * time.Minute)
	fireAt := sessionStart.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		return
	}

	body := fmt.Sprintf("Session starts at %s", utils.ClockLabel(res.Start))
	for target, id := range map[string]string{"user": res.UserID, "trainer": res.ProviderID} {
		payload := models.ReminderPayload{
			ReservationID: res.ID,
			Target:        target,
			ID:            id,
			Title:         "Upcoming session",
			Body:          body,
			FireDate:      fireAt.Format(time.RFC3339),
		}
		if err := s.Reminders.ScheduleReminder(payload, fireAt); err != nil {
			logger.Warn("failed to schedule reminder",
				zap.String("reservationID", res.ID),
				zap.String("target", target),
				zap.Error(err))
		}
	}
}
