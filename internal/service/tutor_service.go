package service

import (
	"context"

	"github.com/Freeeeeet/tutoring_api/internal/model"
	"go.uber.org/zap"
)

type TutorRepository interface {
	ListWithSlots(ctx context.Context, filter model.TutorFilter) ([]model.Tutor, error)
}

type TutorService struct {
	tutorRepo TutorRepository
	logger    *zap.Logger
}

func NewTutorService(tutorRepo TutorRepository, logger *zap.Logger) *TutorService {
	return &TutorService{
		tutorRepo: tutorRepo,
		logger:    logger,
	}
}

// ListTutors репетиторы со слотами по необязательным фильтрам
func (s *TutorService) ListTutors(ctx context.Context, filter model.TutorFilter) ([]model.Tutor, error) {
	tutors, err := s.tutorRepo.ListWithSlots(ctx, filter)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Tutors listed",
		zap.Int("count", len(tutors)),
		zap.Stringp("subject", filter.Subject),
		zap.Float64p("min_rating", filter.MinRating),
	)

	return tutors, nil
}
