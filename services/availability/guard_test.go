package availability

import (
	"context"
	"errors"
	"testing"

	"fitlink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuard(schedules *fakeScheduleStore, reservations *fakeReservationStore) *DefaultGuard {
	return &DefaultGuard{Schedules: schedules, Reservations: reservations}
}

func TestIsBookableRejectsInvalidInterval(t *testing.T) {
	schedules := &fakeScheduleStore{records: mondaySchedule(540, 1020)}
	g := newGuard(schedules, &fakeReservationStore{})

	ok, err := g.IsBookable(context.Background(), "trainer-1", monday, 660, 600)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	ok, err = g.IsBookable(context.Background(), "trainer-1", monday, 600, 600)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	// Rejected before any store call.
	assert.Zero(t, schedules.calls)
}

func TestIsBookableFailsClosedWithoutSchedule(t *testing.T) {
	g := newGuard(&fakeScheduleStore{}, &fakeReservationStore{})

	ok, err := g.IsBookable(context.Background(), "trainer-1", monday, 600, 660)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsBookableRejectsUnavailableWeekday(t *testing.T) {
	schedules := &fakeScheduleStore{records: map[int]models.RecurringAvailability{
		1: {ProviderID: "trainer-1", Weekday: 1, IsAvailable: false, WindowStart: 540, WindowEnd: 1020},
	}}
	g := newGuard(schedules, &fakeReservationStore{})

	ok, err := g.IsBookable(context.Background(), "trainer-1", monday, 600, 660)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsBookableRejectsOutOfWindow(t *testing.T) {
	g := newGuard(&fakeScheduleStore{records: mondaySchedule(540, 1020)}, &fakeReservationStore{})

	// Starts before the window opens.
	ok, err := g.IsBookable(context.Background(), "trainer-1", monday, 480, 540)
	require.NoError(t, err)
	assert.False(t, ok)

	// Ends after the window closes.
	ok, err = g.IsBookable(context.Background(), "trainer-1", monday, 990, 1050)
	require.NoError(t, err)
	assert.False(t, ok)

	// Exactly at the window edges is fine.
	ok, err = g.IsBookable(context.Background(), "trainer-1", monday, 540, 1020)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsBookableDetectsConflicts(t *testing.T) {
	reservations := &fakeReservationStore{reservations: []models.Reservation{
		{ID: "r1", Start: 600, End: 660, Status: models.StatusConfirmed},
	}}
	g := newGuard(&fakeScheduleStore{records: mondaySchedule(540, 1020)}, reservations)

	ok, err := g.IsBookable(context.Background(), "trainer-1", monday, 600, 660)
	require.NoError(t, err)
	assert.False(t, ok, "exact overlap conflicts")

	ok, err = g.IsBookable(context.Background(), "trainer-1", monday, 630, 690)
	require.NoError(t, err)
	assert.False(t, ok, "partial overlap conflicts")

	ok, err = g.IsBookable(context.Background(), "trainer-1", monday, 540, 600)
	require.NoError(t, err)
	assert.True(t, ok, "touching the start does not conflict")

	ok, err = g.IsBookable(context.Background(), "trainer-1", monday, 660, 720)
	require.NoError(t, err)
	assert.True(t, ok, "touching the end does not conflict")
}

func TestIsBookableIgnoresCancelled(t *testing.T) {
	reservations := &fakeReservationStore{reservations: []models.Reservation{
		{ID: "r1", Start: 600, End: 660, Status: models.StatusCancelled},
	}}
	g := newGuard(&fakeScheduleStore{records: mondaySchedule(540, 1020)}, reservations)

	ok, err := g.IsBookable(context.Background(), "trainer-1", monday, 600, 660)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsBookableStoreErrorPropagates(t *testing.T) {
	g := newGuard(&fakeScheduleStore{err: errors.New("unreachable")}, &fakeReservationStore{})

	ok, err := g.IsBookable(context.Background(), "trainer-1", monday, 600, 660)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
