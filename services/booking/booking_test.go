package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	trainerRepo "fitlink/database/repository/trainer"
	"fitlink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeReservations struct {
	byID      map[string]*models.Reservation
	created   []*models.Reservation
	conflicts int64
	countErr  error
}

func (f *fakeReservations) GetReservations(context.Context, string, string) ([]models.Reservation, error) {
	return nil, nil
}

func (f *fakeReservations) GetByID(_ context.Context, id string) (*models.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, errors.New("reservation not found")
	}
	return res, nil
}

func (f *fakeReservations) ListByUser(context.Context, string) ([]models.Reservation, error) {
	return nil, nil
}

func (f *fakeReservations) ListByProvider(context.Context, string) ([]models.Reservation, error) {
	return nil, nil
}

func (f *fakeReservations) CountOverlapping(context.Context, string, string, int, int) (int64, error) {
	return f.conflicts, f.countErr
}

func (f *fakeReservations) Create(_ context.Context, res *models.Reservation) error {
	f.created = append(f.created, res)
	return nil
}

func (f *fakeReservations) UpdateStatus(_ context.Context, id, status string) error {
	if res, ok := f.byID[id]; ok {
		res.Status = status
		return nil
	}
	return errors.New("reservation not found")
}

type fakeTrainers struct {
	trainer     *models.Trainer
	completions int
}

func (f *fakeTrainers) GetByID(_ context.Context, id string) (*models.Trainer, error) {
	if f.trainer == nil || f.trainer.ID != id {
		return nil, errors.New("trainer not found")
	}
	return f.trainer, nil
}

func (f *fakeTrainers) GetByEmail(context.Context, string) (*models.Trainer, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeTrainers) Create(context.Context, *models.Trainer) error { return nil }
func (f *fakeTrainers) Update(context.Context, *models.Trainer) error { return nil }
func (f *fakeTrainers) Delete(context.Context, string) error          { return nil }
func (f *fakeTrainers) Search(context.Context, trainerRepo.TrainerSearchCriteria) ([]models.Trainer, error) {
	return nil, nil
}
func (f *fakeTrainers) SetTokenHash(context.Context, string, string) error { return nil }
func (f *fakeTrainers) SetPhotoURL(context.Context, string, string) error  { return nil }
func (f *fakeTrainers) IncrementCompletedSessions(context.Context, string) error {
	f.completions++
	return nil
}

type fakePromos struct {
	promo *models.Promotion
}

func (f *fakePromos) GetByCode(_ context.Context, code string) (*models.Promotion, error) {
	if f.promo == nil || f.promo.Code != code {
		return nil, errors.New("promotion not found")
	}
	return f.promo, nil
}
func (f *fakePromos) Create(context.Context, *models.Promotion) error { return nil }
func (f *fakePromos) Redeem(_ context.Context, code string) error {
	if f.promo == nil || f.promo.Code != code {
		return errors.New("promotion not found")
	}
	f.promo.Uses++
	return nil
}

type stubGuard struct {
	ok  bool
	err error
}

func (g *stubGuard) IsBookable(context.Context, string, time.Time, int, int) (bool, error) {
	return g.ok, g.err
}

type fakePayments struct {
	invoices int
	fail     bool
}

func (f *fakePayments) ProcessPayment(_ context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if f.fail {
		return nil, errors.New("card declined")
	}
	f.invoices++
	return &models.Invoice{
		InvoiceID: "pi_test",
		Amount:    req.Amount,
		Currency:  req.Currency,
		Status:    models.StatusConfirmed,
	}, nil
}

// --- helpers ---

func testTrainer() *models.Trainer {
	return &models.Trainer{
		ID:         "trainer-1",
		HourlyRate: 50,
		Currency:   "USD",
	}
}

func newService(res *fakeReservations, guard *stubGuard, payments *fakePayments, promos *fakePromos) *DefaultBookingService {
	return &DefaultBookingService{
		Reservations: res,
		Trainers:     &fakeTrainers{trainer: testTrainer()},
		Promos:       promos,
		Guard:        guard,
		Payments:     payments,
	}
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		ProviderID: "trainer-1",
		Date:       "2024-01-08",
		Start:      600,
		End:        660,
	}
}

// --- tests ---

func TestCreateBookingHappyPath(t *testing.T) {
	reservations := &fakeReservations{}
	payments := &fakePayments{}
	svc := newService(reservations, &stubGuard{ok: true}, payments, &fakePromos{})

	res, err := svc.CreateBooking(context.Background(), "athlete-1", validRequest())
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, "trainer-1", res.ProviderID)
	assert.Equal(t, "athlete-1", res.UserID)
	assert.Equal(t, models.StatusConfirmed, res.Status)
	assert.Equal(t, 50.0, res.TotalPrice, "one hour at 50/hr")
	assert.Equal(t, "pi_test", res.InvoiceID)
	assert.NotEmpty(t, res.ID)
	require.Len(t, reservations.created, 1)
	assert.Equal(t, 1, payments.invoices)
}

func TestCreateBookingRejectsBadDate(t *testing.T) {
	svc := newService(&fakeReservations{}, &stubGuard{ok: true}, &fakePayments{}, &fakePromos{})

	req := validRequest()
	req.Date = "08/01/2024"
	_, err := svc.CreateBooking(context.Background(), "athlete-1", req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateBookingGuardRejection(t *testing.T) {
	payments := &fakePayments{}
	svc := newService(&fakeReservations{}, &stubGuard{ok: false}, payments, &fakePromos{})

	_, err := svc.CreateBooking(context.Background(), "athlete-1", validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Zero(t, payments.invoices, "no charge when the slot is unavailable")
}

func TestCreateBookingCommitTimeConflict(t *testing.T) {
	// Guard says yes (stale view), but the final re-count finds a conflict.
	reservations := &fakeReservations{conflicts: 1}
	payments := &fakePayments{}
	svc := newService(reservations, &stubGuard{ok: true}, payments, &fakePromos{})

	_, err := svc.CreateBooking(context.Background(), "athlete-1", validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Empty(t, reservations.created)
	assert.Zero(t, payments.invoices)
}

func TestCreateBookingAppliesPromo(t *testing.T) {
	promos := &fakePromos{promo: &models.Promotion{
		Code:       "LAUNCH20",
		PercentOff: 20,
		ExpiresAt:  time.Now().Add(24 * time.Hour),
	}}
	svc := newService(&fakeReservations{}, &stubGuard{ok: true}, &fakePayments{}, promos)

	req := validRequest()
	req.PromoCode = "LAUNCH20"
	res, err := svc.CreateBooking(context.Background(), "athlete-1", req)
	require.NoError(t, err)
	assert.Equal(t, 40.0, res.TotalPrice, "20% off 50")
	assert.Equal(t, 1, promos.promo.Uses)
}

func TestCreateBookingRejectsExpiredPromo(t *testing.T) {
	promos := &fakePromos{promo: &models.Promotion{
		Code:       "OLD",
		PercentOff: 50,
		ExpiresAt:  time.Now().Add(-time.Hour),
	}}
	svc := newService(&fakeReservations{}, &stubGuard{ok: true}, &fakePayments{}, promos)

	req := validRequest()
	req.PromoCode = "OLD"
	_, err := svc.CreateBooking(context.Background(), "athlete-1", req)
	assert.ErrorIs(t, err, ErrPromoInvalid)
}

func TestCreateBookingPaymentFailure(t *testing.T) {
	reservations := &fakeReservations{}
	svc := newService(reservations, &stubGuard{ok: true}, &fakePayments{fail: true}, &fakePromos{})

	_, err := svc.CreateBooking(context.Background(), "athlete-1", validRequest())
	require.Error(t, err)
	assert.Empty(t, reservations.created, "no reservation on failed payment")
}

func TestCancelBookingTransitions(t *testing.T) {
	reservations := &fakeReservations{byID: map[string]*models.Reservation{
		"r1": {ID: "r1", UserID: "athlete-1", ProviderID: "trainer-1", Status: models.StatusConfirmed},
	}}
	svc := newService(reservations, &stubGuard{ok: true}, &fakePayments{}, &fakePromos{})

	res, err := svc.CancelBooking(context.Background(), "athlete-1", "r1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, res.Status)

	// Cancelling again is an invalid transition.
	_, err = svc.CancelBooking(context.Background(), "athlete-1", "r1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancelBookingAuthorization(t *testing.T) {
	reservations := &fakeReservations{byID: map[string]*models.Reservation{
		"r1": {ID: "r1", UserID: "athlete-1", ProviderID: "trainer-1", Status: models.StatusPending},
	}}
	svc := newService(reservations, &stubGuard{ok: true}, &fakePayments{}, &fakePromos{})

	_, err := svc.CancelBooking(context.Background(), "someone-else", "r1")
	assert.ErrorIs(t, err, ErrNotAuthorized)

	// The trainer may cancel too.
	_, err = svc.CancelBooking(context.Background(), "trainer-1", "r1")
	assert.NoError(t, err)
}

func TestCompleteBooking(t *testing.T) {
	trainers := &fakeTrainers{trainer: testTrainer()}
	reservations := &fakeReservations{byID: map[string]*models.Reservation{
		"r1": {ID: "r1", UserID: "athlete-1", ProviderID: "trainer-1", Status: models.StatusConfirmed},
	}}
	svc := &DefaultBookingService{
		Reservations: reservations,
		Trainers:     trainers,
		Promos:       &fakePromos{},
		Guard:        &stubGuard{ok: true},
		Payments:     &fakePayments{},
	}

	res, err := svc.CompleteBooking(context.Background(), "trainer-1", "r1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, res.Status)
	assert.Equal(t, 1, trainers.completions)

	// Only the booked trainer can complete.
	reservations.byID["r2"] = &models.Reservation{ID: "r2", ProviderID: "trainer-2", Status: models.StatusConfirmed}
	_, err = svc.CompleteBooking(context.Background(), "trainer-1", "r2")
	assert.ErrorIs(t, err, ErrNotAuthorized)
}
