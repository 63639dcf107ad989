package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/tutoring_api/internal/model"
	"github.com/Freeeeeet/tutoring_api/internal/repository/base"
)

type TutorRepository struct {
	*base.Repository
}

func NewTutorRepository(db base.DB) *TutorRepository {
	return &TutorRepository{Repository: base.NewRepository(db)}
}

// tutorSlotRow одна строка LEFT JOIN tutors × slots
type tutorSlotRow struct {
	TutorID    string
	Name       string
	Subjects   []string
	HourlyRate float64
	Rating     float64
	Bio        string
	SlotID     *string
	SlotStart  *time.Time
	SlotEnd    *time.Time
}

// TutorPredicates превращает фильтр в список условий WHERE
func TutorPredicates(filter model.TutorFilter) []base.Predicate {
	var preds []base.Predicate
	if filter.Subject != nil {
		preds = append(preds, base.Predicate{Expr: "? = ANY(t.subjects)", Args: []any{*filter.Subject}})
	}
	if filter.MinRating != nil {
		preds = append(preds, base.Predicate{Expr: "t.rating >= ?", Args: []any{*filter.MinRating}})
	}
	return preds
}

// ListWithSlots возвращает репетиторов с их слотами, отсортированных по имени
func (r *TutorRepository) ListWithSlots(ctx context.Context, filter model.TutorFilter) ([]model.Tutor, error) {
	where, args, err := base.Where(TutorPredicates(filter), 0)
	if err != nil {
		return nil, fmt.Errorf("build tutor filter: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT t.id, t.name, t.subjects, COALESCE(t.hourly_rate, 0)::float8, COALESCE(t.rating, 0)::float8, COALESCE(t.bio, ''),
		       s.id, s.start_time, s.end_time
		FROM tutors t
		LEFT JOIN slots s ON s.tutor_id = t.id
		%s
		ORDER BY t.name ASC, t.id ASC, s.start_time ASC
	`, where)

	rows, err := r.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tutors: %w", err)
	}
	defer rows.Close()

	var flat []tutorSlotRow
	for rows.Next() {
		var row tutorSlotRow
		err := rows.Scan(
			&row.TutorID,
			&row.Name,
			&row.Subjects,
			&row.HourlyRate,
			&row.Rating,
			&row.Bio,
			&row.SlotID,
			&row.SlotStart,
			&row.SlotEnd,
		)
		if err != nil {
			return nil, fmt.Errorf("scan tutor: %w", err)
		}
		flat = append(flat, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tutors: %w", err)
	}

	return foldTutorRows(flat), nil
}

// foldTutorRows сворачивает плоские строки в репетиторов с вложенными слотами.
// Строки одного репетитора идут подряд, слоты уже отсортированы по start.
func foldTutorRows(rows []tutorSlotRow) []model.Tutor {
	tutors := make([]model.Tutor, 0)
	for _, row := range rows {
		if len(tutors) == 0 || tutors[len(tutors)-1].ID != row.TutorID {
			subjects := row.Subjects
			if subjects == nil {
				subjects = []string{}
			}
			tutors = append(tutors, model.Tutor{
				ID:         row.TutorID,
				Name:       row.Name,
				Subjects:   subjects,
				HourlyRate: row.HourlyRate,
				Rating:     row.Rating,
				Bio:        row.Bio,
				Slots:      []model.Slot{},
			})
		}

		// У репетитора без слотов LEFT JOIN даёт одну строку с NULL
		if row.SlotID == nil {
			continue
		}

		cur := &tutors[len(tutors)-1]
		slot := model.Slot{ID: *row.SlotID}
		if row.SlotStart != nil {
			slot.Start = *row.SlotStart
		}
		if row.SlotEnd != nil {
			slot.End = *row.SlotEnd
		}
		cur.Slots = append(cur.Slots, slot)
	}
	return tutors
}
