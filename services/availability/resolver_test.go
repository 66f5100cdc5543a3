package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitlink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-01-07 is a Sunday, 2024-01-08 a Monday.
var (
	sunday = time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	monday = time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
)

func mondaySchedule(startMins, endMins int) map[int]models.RecurringAvailability {
	return map[int]models.RecurringAvailability{
		1: {
			ProviderID:  "trainer-1",
			Weekday:     1,
			IsAvailable: true,
			WindowStart: startMins,
			WindowEnd:   endMins,
		},
	}
}

func newResolver(schedules *fakeScheduleStore, reservations *fakeReservationStore) *DefaultResolver {
	return &DefaultResolver{Schedules: schedules, Reservations: reservations}
}

func TestResolveSlotsNoScheduleYieldsNoSlots(t *testing.T) {
	r := newResolver(&fakeScheduleStore{}, &fakeReservationStore{})

	slots, err := r.ResolveSlots(context.Background(), "trainer-1", monday)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestResolveSlotsUnavailableWeekdayYieldsNoSlots(t *testing.T) {
	schedules := &fakeScheduleStore{records: map[int]models.RecurringAvailability{
		1: {ProviderID: "trainer-1", Weekday: 1, IsAvailable: false, WindowStart: 540, WindowEnd: 1020},
	}}
	r := newResolver(schedules, &fakeReservationStore{})

	slots, err := r.ResolveSlots(context.Background(), "trainer-1", monday)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestResolveSlotsWindowContainment(t *testing.T) {
	// 09:00–17:00 window.
	r := newResolver(&fakeScheduleStore{records: mondaySchedule(540, 1020)}, &fakeReservationStore{})

	slots, err := r.ResolveSlots(context.Background(), "trainer-1", monday)
	require.NoError(t, err)
	require.Len(t, slots, 8)

	for i, slot := range slots {
		assert.GreaterOrEqual(t, slot.Start, 540)
		assert.LessOrEqual(t, slot.End, 1020)
		assert.Equal(t, slot.Start+60, slot.End)
		if i > 0 {
			assert.Greater(t, slot.Start, slots[i-1].Start, "slots must be in ascending start order")
		}
	}
	assert.Equal(t, 540, slots[0].Start)
	assert.Equal(t, 1020, slots[len(slots)-1].End)
}

func TestResolveSlotsDropsPartialHours(t *testing.T) {
	// 09:00–11:30 yields exactly 09:00-10:00 and 10:00-11:00; no 11:00-11:30.
	r := newResolver(&fakeScheduleStore{records: mondaySchedule(540, 690)}, &fakeReservationStore{})

	slots, err := r.ResolveSlots(context.Background(), "trainer-1", monday)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, 540, slots[0].Start)
	assert.Equal(t, 600, slots[0].End)
	assert.Equal(t, 600, slots[1].Start)
	assert.Equal(t, 660, slots[1].End)
}

func TestResolveSlotsDropsPartialLeadingFraction(t *testing.T) {
	// 09:30–12:00: the 09:30-10:00 fraction is not a slot; first slot is 10:00.
	r := newResolver(&fakeScheduleStore{records: mondaySchedule(570, 720)}, &fakeReservationStore{})

	slots, err := r.ResolveSlots(context.Background(), "trainer-1", monday)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, 600, slots[0].Start)
	assert.Equal(t, 660, slots[1].Start)
}

func TestResolveSlotsOverlapMarksUnavailable(t *testing.T) {
	// Window 09:00–12:00, confirmed reservation 10:00–11:00.
	reservations := &fakeReservationStore{reservations: []models.Reservation{
		{ID: "r1", ProviderID: "trainer-1", Date: "2024-01-08", Start: 600, End: 660, Status: models.StatusConfirmed},
	}}
	r := newResolver(&fakeScheduleStore{records: mondaySchedule(540, 720)}, reservations)

	slots, err := r.ResolveSlots(context.Background(), "trainer-1", monday)
	require.NoError(t, err)
	require.Len(t, slots, 3)

	// Touching endpoints do not conflict.
	assert.True(t, slots[0].Available, "09:00-10:00 touches but does not overlap")
	assert.False(t, slots[1].Available, "10:00-11:00 is taken")
	assert.True(t, slots[2].Available, "11:00-12:00 touches but does not overlap")
}

func TestResolveSlotsIgnoresCancelledReservations(t *testing.T) {
	reservations := &fakeReservationStore{reservations: []models.Reservation{
		{ID: "r1", ProviderID: "trainer-1", Date: "2024-01-08", Start: 600, End: 660, Status: models.StatusCancelled},
	}}
	r := newResolver(&fakeScheduleStore{records: mondaySchedule(540, 720)}, reservations)

	slots, err := r.ResolveSlots(context.Background(), "trainer-1", monday)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	for _, slot := range slots {
		assert.True(t, slot.Available)
	}
}

func TestResolveSlotsPendingReservationsBlock(t *testing.T) {
	reservations := &fakeReservationStore{reservations: []models.Reservation{
		{ID: "r1", Start: 600, End: 660, Status: models.StatusPending},
	}}
	r := newResolver(&fakeScheduleStore{records: mondaySchedule(540, 720)}, reservations)

	slots, err := r.ResolveSlots(context.Background(), "trainer-1", monday)
	require.NoError(t, err)
	assert.False(t, slots[1].Available)
}

func TestResolveSlotsIdempotent(t *testing.T) {
	reservations := &fakeReservationStore{reservations: []models.Reservation{
		{ID: "r1", Start: 600, End: 660, Status: models.StatusConfirmed},
	}}
	r := newResolver(&fakeScheduleStore{records: mondaySchedule(540, 1020)}, reservations)

	first, err := r.ResolveSlots(context.Background(), "trainer-1", monday)
	require.NoError(t, err)
	second, err := r.ResolveSlots(context.Background(), "trainer-1", monday)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolveSlotsWeekdayMapping(t *testing.T) {
	// 2024-01-07 is a Sunday and must be queried as weekday 0.
	schedules := &fakeScheduleStore{records: map[int]models.RecurringAvailability{
		0: {ProviderID: "trainer-1", Weekday: 0, IsAvailable: true, WindowStart: 540, WindowEnd: 660},
	}}
	r := newResolver(schedules, &fakeReservationStore{})

	slots, err := r.ResolveSlots(context.Background(), "trainer-1", sunday)
	require.NoError(t, err)
	assert.Equal(t, 0, schedules.lastWeekday)
	assert.Len(t, slots, 2)

	// The Monday right after must hit weekday 1 and find nothing.
	slots, err = r.ResolveSlots(context.Background(), "trainer-1", monday)
	require.NoError(t, err)
	assert.Equal(t, 1, schedules.lastWeekday)
	assert.Empty(t, slots)
}

func TestResolveSlotsStoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("connection reset")
	r := newResolver(&fakeScheduleStore{err: storeErr}, &fakeReservationStore{})

	slots, err := r.ResolveSlots(context.Background(), "trainer-1", monday)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Nil(t, slots)
}

func TestResolveSlotsReservationErrorPropagates(t *testing.T) {
	r := newResolver(
		&fakeScheduleStore{records: mondaySchedule(540, 1020)},
		&fakeReservationStore{err: errors.New("timeout")},
	)

	_, err := r.ResolveSlots(context.Background(), "trainer-1", monday)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestResolveSlotsLabels(t *testing.T) {
	r := newResolver(&fakeScheduleStore{records: mondaySchedule(540, 660)}, &fakeReservationStore{})

	slots, err := r.ResolveSlots(context.Background(), "trainer-1", monday)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "9:00 AM - 10:00 AM", slots[0].Label)
	assert.Equal(t, "10:00 AM - 11:00 AM", slots[1].Label)
}
