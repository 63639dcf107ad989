package service

import (
	"context"

	"github.com/Freeeeeet/tutoring_api/internal/model"
)

type fakeBookingRepo struct {
	created  []model.Booking
	canceled []string
	bookings map[string][]model.Booking
	err      error
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *model.Booking) error {
	if f.err != nil {
		return f.err
	}
	booking.Status = model.BookingStatusBooked
	f.created = append(f.created, *booking)
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.canceled = append(f.canceled, id)
	for _, b := range f.created {
		if b.ID == id {
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeBookingRepo) GetByStudentID(_ context.Context, studentID string) ([]model.Booking, error) {
	return f.bookings[studentID], f.err
}

type fakeTaskRepo struct {
	created []model.Task
	patches map[string]model.TaskPatch
	tasks   []model.Task
	total   int64
	done    int64
	filter  model.ProgressFilter
	err     error
}

func (f *fakeTaskRepo) Create(_ context.Context, task *model.Task) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, *task)
	return nil
}

func (f *fakeTaskRepo) GetByUserID(_ context.Context, _ string) ([]model.Task, error) {
	return f.tasks, f.err
}

func (f *fakeTaskRepo) Patch(_ context.Context, id string, patch model.TaskPatch) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if f.patches == nil {
		f.patches = map[string]model.TaskPatch{}
	}
	f.patches[id] = patch
	return 1, nil
}

func (f *fakeTaskRepo) CountProgress(_ context.Context, filter model.ProgressFilter) (int64, int64, error) {
	f.filter = filter
	return f.total, f.done, f.err
}
