package availability

import (
	"context"

	"fitlink/models"
)

// fakeScheduleStore serves canned weekly availability records keyed by weekday.
type fakeScheduleStore struct {
	records     map[int]models.RecurringAvailability
	err         error
	lastWeekday int
	calls       int
}

func (f *fakeScheduleStore) GetWeeklyAvailability(_ context.Context, _ string, weekday models.Weekday) (*models.RecurringAvailability, error) {
	f.lastWeekday = weekday
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	rec, ok := f.records[weekday]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeScheduleStore) GetWeeklySchedule(context.Context, string) ([]models.RecurringAvailability, error) {
	var out []models.RecurringAvailability
	for _, rec := range f.records {
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeScheduleStore) UpsertWeeklyAvailability(_ context.Context, rec models.RecurringAvailability) error {
	if f.records == nil {
		f.records = map[int]models.RecurringAvailability{}
	}
	f.records[rec.Weekday] = rec
	return nil
}

func (f *fakeScheduleStore) DeleteWeeklyAvailability(_ context.Context, _ string, weekday models.Weekday) error {
	delete(f.records, weekday)
	return nil
}

// fakeReservationStore serves canned reservations for any provider/date.
type fakeReservationStore struct {
	reservations []models.Reservation
	err          error
}

func (f *fakeReservationStore) GetReservations(context.Context, string, string) ([]models.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.reservations, nil
}

func (f *fakeReservationStore) GetByID(context.Context, string) (*models.Reservation, error) {
	return nil, nil
}

func (f *fakeReservationStore) ListByUser(context.Context, string) ([]models.Reservation, error) {
	return f.reservations, nil
}

func (f *fakeReservationStore) ListByProvider(context.Context, string) ([]models.Reservation, error) {
	return f.reservations, nil
}

func (f *fakeReservationStore) CountOverlapping(_ context.Context, _, _ string, start, end int) (int64, error) {
	var n int64
	for _, res := range f.reservations {
		if res.Blocks() && res.Start < end && res.End > start {
			n++
		}
	}
	return n, nil
}

func (f *fakeReservationStore) Create(_ context.Context, res *models.Reservation) error {
	f.reservations = append(f.reservations, *res)
	return nil
}

func (f *fakeReservationStore) UpdateStatus(_ context.Context, id, status string) error {
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			f.reservations[i].Status = status
		}
	}
	return nil
}
