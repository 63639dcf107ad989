package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/tutoring_api/internal/model"
	"github.com/Freeeeeet/tutoring_api/internal/repository/base"
)

type BookingRepository struct {
	*base.Repository
}

func NewBookingRepository(db base.DB) *BookingRepository {
	return &BookingRepository{Repository: base.NewRepository(db)}
}

// Create создаёт новое бронирование со статусом booked.
// Занятость слота не проверяется.
func (r *BookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	query := `
		INSERT INTO bookings (id, student_id, tutor_id, slot_id, status)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.ExecAffected(
		ctx, query,
		booking.ID,
		booking.StudentID,
		booking.TutorID,
		booking.SlotID,
		model.BookingStatusBooked,
	)
	if err != nil {
		return fmt.Errorf("create booking: %w", err)
	}

	booking.Status = model.BookingStatusBooked
	return nil
}

// Cancel отменяет бронирование. Отсутствие строки ошибкой не считается.
func (r *BookingRepository) Cancel(ctx context.Context, id string) (int64, error) {
	query := `
		UPDATE bookings
		SET status = $1
		WHERE id = $2
	`

	affected, err := r.ExecAffected(ctx, query, model.BookingStatusCanceled, id)
	if err != nil {
		return 0, fmt.Errorf("cancel booking: %w", err)
	}

	return affected, nil
}

// GetByStudentID получает все бронирования студента
func (r *BookingRepository) GetByStudentID(ctx context.Context, studentID string) ([]model.Booking, error) {
	query := `
		SELECT id, student_id, tutor_id, slot_id, status, created_at
		FROM bookings
		WHERE student_id = $1
		ORDER BY created_at DESC, id ASC
	`

	rows, err := r.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("get bookings by student: %w", err)
	}
	defer rows.Close()

	bookings := make([]model.Booking, 0)
	for rows.Next() {
		var booking model.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.StudentID,
			&booking.TutorID,
			&booking.SlotID,
			&booking.Status,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return bookings, nil
}
