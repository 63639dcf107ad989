package service

import (
	"context"

	"github.com/Freeeeeet/tutoring_api/internal/model"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	Cancel(ctx context.Context, id string) (int64, error)
	GetByStudentID(ctx context.Context, studentID string) ([]model.Booking, error)
}

type BookingService struct {
	bookingRepo BookingRepository
	logger      *zap.Logger
}

func NewBookingService(bookingRepo BookingRepository, logger *zap.Logger) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// CreateBookingInput данные для новой записи
type CreateBookingInput struct {
	ID        string `json:"id" validate:"required"`
	StudentID string `json:"studentId" validate:"required"`
	TutorID   string `json:"tutorId" validate:"required"`
	SlotID    string `json:"slotId" validate:"required"`
}

// CreateBooking записывает студента на слот.
// Двойное бронирование одного слота не проверяется.
func (s *BookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*model.Booking, error) {
	if in.ID == "" || in.StudentID == "" || in.TutorID == "" || in.SlotID == "" {
		return nil, newValidationError(ReasonMissingFields)
	}

	booking := &model.Booking{
		ID:        in.ID,
		StudentID: in.StudentID,
		TutorID:   in.TutorID,
		SlotID:    in.SlotID,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("student_id", booking.StudentID),
		zap.String("tutor_id", booking.TutorID),
		zap.String("slot_id", booking.SlotID),
	)

	return booking, nil
}

// CancelBooking отменяет запись; повторная отмена и неизвестный id не ошибка
func (s *BookingService) CancelBooking(ctx context.Context, id string) error {
	affected, err := s.bookingRepo.Cancel(ctx, id)
	if err != nil {
		return err
	}

	s.logger.Info("Booking canceled",
		zap.String("booking_id", id),
		zap.Int64("rows_affected", affected),
	)

	return nil
}

// GetStudentBookings получает все бронирования студента
func (s *BookingService) GetStudentBookings(ctx context.Context, studentID string) ([]model.Booking, error) {
	if studentID == "" {
		return nil, newValidationError(ReasonStudentID)
	}
	return s.bookingRepo.GetByStudentID(ctx, studentID)
}
