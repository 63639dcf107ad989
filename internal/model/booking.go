package model

import "time"

type BookingStatus string

const (
	BookingStatusBooked   BookingStatus = "booked"
	BookingStatusCanceled BookingStatus = "canceled"
)

type Booking struct {
	ID        string        `json:"id"`
	StudentID string        `json:"studentId"`
	TutorID   string        `json:"tutorId"`
	SlotID    string        `json:"slotId"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}
