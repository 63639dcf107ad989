package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Freeeeeet/tutoring_api/internal/model"
)

func TestCreateBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := NewBookingService(repo, zaptest.NewLogger(t))

	booking, err := svc.CreateBooking(context.Background(), CreateBookingInput{
		ID: "b1", StudentID: "st1", TutorID: "t1", SlotID: "s1",
	})
	require.NoError(t, err)
	assert.Equal(t, "b1", booking.ID)
	assert.Equal(t, model.BookingStatusBooked, booking.Status)
	assert.Len(t, repo.created, 1)
}

func TestCreateBookingMissingFields(t *testing.T) {
	full := CreateBookingInput{ID: "b1", StudentID: "st1", TutorID: "t1", SlotID: "s1"}
	inputs := map[string]CreateBookingInput{}

	noID := full
	noID.ID = ""
	inputs["id"] = noID

	noStudent := full
	noStudent.StudentID = ""
	inputs["studentId"] = noStudent

	noTutor := full
	noTutor.TutorID = ""
	inputs["tutorId"] = noTutor

	noSlot := full
	noSlot.SlotID = ""
	inputs["slotId"] = noSlot

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			repo := &fakeBookingRepo{}
			svc := NewBookingService(repo, zaptest.NewLogger(t))

			_, err := svc.CreateBooking(context.Background(), in)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Empty(t, repo.created)
		})
	}
}

func TestCreateBookingSameSlotTwice(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := NewBookingService(repo, zaptest.NewLogger(t))

	_, err := svc.CreateBooking(context.Background(), CreateBookingInput{ID: "b1", StudentID: "st1", TutorID: "t1", SlotID: "s1"})
	require.NoError(t, err)
	_, err = svc.CreateBooking(context.Background(), CreateBookingInput{ID: "b2", StudentID: "st2", TutorID: "t1", SlotID: "s1"})
	require.NoError(t, err)

	assert.Len(t, repo.created, 2)
}

func TestCancelBookingIdempotent(t *testing.T) {
	repo := &fakeBookingRepo{created: []model.Booking{{ID: "b1"}}}
	svc := NewBookingService(repo, zaptest.NewLogger(t))

	require.NoError(t, svc.CancelBooking(context.Background(), "b1"))
	require.NoError(t, svc.CancelBooking(context.Background(), "b1"))
	require.NoError(t, svc.CancelBooking(context.Background(), "missing"))
	assert.Equal(t, []string{"b1", "b1", "missing"}, repo.canceled)
}

func TestCancelBookingStoreError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("db down")}
	svc := NewBookingService(repo, zaptest.NewLogger(t))

	err := svc.CancelBooking(context.Background(), "b1")
	require.Error(t, err)
	assert.False(t, IsValidation(err))
}

func TestGetStudentBookings(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[string][]model.Booking{"st1": {{ID: "b1"}}}}
	svc := NewBookingService(repo, zaptest.NewLogger(t))

	bookings, err := svc.GetStudentBookings(context.Background(), "st1")
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	_, err = svc.GetStudentBookings(context.Background(), "")
	assert.True(t, IsValidation(err))
}
