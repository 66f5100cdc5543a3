package trainer

import (
	"context"
	"testing"

	"fitlink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScheduleRepo struct {
	upserts []models.RecurringAvailability
	deleted []models.Weekday
}

func (f *fakeScheduleRepo) GetWeeklyAvailability(context.Context, string, models.Weekday) (*models.RecurringAvailability, error) {
	return nil, nil
}

func (f *fakeScheduleRepo) GetWeeklySchedule(context.Context, string) ([]models.RecurringAvailability, error) {
	return f.upserts, nil
}

func (f *fakeScheduleRepo) UpsertWeeklyAvailability(_ context.Context, rec models.RecurringAvailability) error {
	f.upserts = append(f.upserts, rec)
	return nil
}

func (f *fakeScheduleRepo) DeleteWeeklyAvailability(_ context.Context, _ string, weekday models.Weekday) error {
	f.deleted = append(f.deleted, weekday)
	return nil
}

func day(weekday models.Weekday, available bool, start, end int) models.RecurringAvailability {
	return models.RecurringAvailability{
		Weekday:     weekday,
		IsAvailable: available,
		WindowStart: start,
		WindowEnd:   end,
	}
}

func TestSetWeeklyScheduleStampsProviderID(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := &DefaultTrainerService{Schedules: repo}

	req := models.WeeklyScheduleRequest{Days: []models.RecurringAvailability{
		day(1, true, 540, 1020),
		day(2, false, 0, 0),
	}}
	require.NoError(t, svc.SetWeeklySchedule(context.Background(), "trainer-1", req))
	require.Len(t, repo.upserts, 2)
	for _, rec := range repo.upserts {
		assert.Equal(t, "trainer-1", rec.ProviderID)
	}
}

func TestSetWeeklyScheduleValidation(t *testing.T) {
	svc := &DefaultTrainerService{Schedules: &fakeScheduleRepo{}}
	ctx := context.Background()

	cases := []struct {
		name string
		days []models.RecurringAvailability
	}{
		{"empty request", nil},
		{"weekday out of range", []models.RecurringAvailability{day(7, true, 540, 600)}},
		{"negative weekday", []models.RecurringAvailability{day(-1, true, 540, 600)}},
		{"inverted window", []models.RecurringAvailability{day(1, true, 600, 540)}},
		{"empty window", []models.RecurringAvailability{day(1, true, 600, 600)}},
		{"window past midnight", []models.RecurringAvailability{day(1, true, 1380, 1500)}},
		{"duplicate weekday", []models.RecurringAvailability{day(1, true, 540, 600), day(1, true, 660, 720)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.SetWeeklySchedule(ctx, "trainer-1", models.WeeklyScheduleRequest{Days: tc.days})
			assert.ErrorIs(t, err, ErrInvalidSchedule)
		})
	}
}

func TestSetWeeklyScheduleAllowsUnavailableDayWithZeroWindow(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := &DefaultTrainerService{Schedules: repo}

	req := models.WeeklyScheduleRequest{Days: []models.RecurringAvailability{day(0, false, 0, 0)}}
	assert.NoError(t, svc.SetWeeklySchedule(context.Background(), "trainer-1", req))
}

func TestClearWeeklyAvailability(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := &DefaultTrainerService{Schedules: repo}

	require.NoError(t, svc.ClearWeeklyAvailability(context.Background(), "trainer-1", 3))
	assert.Equal(t, []models.Weekday{3}, repo.deleted)

	assert.ErrorIs(t, svc.ClearWeeklyAvailability(context.Background(), "trainer-1", 9), ErrInvalidSchedule)
}
