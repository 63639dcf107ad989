package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Freeeeeet/tutoring_api/internal/model"
	"go.uber.org/zap"
)

const (
	defaultGoal         = "Exam prep"
	defaultHoursPerWeek = 4.0
	defaultSubject      = "General"

	minTotalMinutes   = 60
	minSessionMinutes = 20
	nominalStudyDays  = 5
	restDay           = time.Saturday
)

// StudyPlanInput параметры плана; нулевые значения заменяются дефолтами
type StudyPlanInput struct {
	Goal         string      `json:"goal"`
	ExamDate     *model.Date `json:"examDate"`
	HoursPerWeek *float64    `json:"hoursPerWeek"`
	Subjects     []string    `json:"subjects"`
}

type PlanService struct {
	clock  Clock
	logger *zap.Logger
}

func NewPlanService(clock Clock, logger *zap.Logger) *PlanService {
	return &PlanService{
		clock:  clock,
		logger: logger,
	}
}

// GenerateStudyPlan строит план от сегодняшнего дня до экзамена. Ничего не сохраняет.
func (s *PlanService) GenerateStudyPlan(in StudyPlanInput) ([]model.PlanTask, error) {
	if in.ExamDate == nil {
		return nil, newValidationError(ReasonExamDate)
	}

	goal := in.Goal
	if goal == "" {
		goal = defaultGoal
	}
	hours := defaultHoursPerWeek
	if in.HoursPerWeek != nil {
		hours = *in.HoursPerWeek
	}
	subjects := in.Subjects
	if len(subjects) == 0 {
		subjects = []string{defaultSubject}
	}

	tasks := BuildStudyPlan(s.clock.Now(), *in.ExamDate, hours, subjects, goal)

	s.logger.Info("Study plan generated",
		zap.String("exam_date", in.ExamDate.String()),
		zap.Float64("hours_per_week", hours),
		zap.Strings("subjects", subjects),
		zap.Int("tasks", len(tasks)),
	)

	return tasks, nil
}

// PlanDays число дней плана: ceil((экзамен - сейчас) в сутках), минимум 1
func PlanDays(now time.Time, exam model.Date) int {
	days := int(math.Ceil(exam.Sub(now).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// SessionMinutes длина одной сессии: недельный бюджет делится на 5 учебных дней
func SessionMinutes(hoursPerWeek float64) int {
	total := math.Max(minTotalMinutes, hoursPerWeek*60)
	perDay := int(math.Round(total / nominalStudyDays))
	if perDay < minSessionMinutes {
		return minSessionMinutes
	}
	return perDay
}

// BuildStudyPlan чистая функция: по дню на задачу, суббота пропускается,
// предметы идут по кругу.
func BuildStudyPlan(now time.Time, exam model.Date, hoursPerWeek float64, subjects []string, goal string) []model.PlanTask {
	days := PlanDays(now, exam)
	perDay := SessionMinutes(hoursPerWeek)
	today := model.NewDate(now.UTC())

	tasks := make([]model.PlanTask, 0, days)
	for offset := 0; offset < days; offset++ {
		day := today.AddDays(offset)
		if day.Weekday() == restDay {
			continue
		}

		n := len(tasks) + 1
		subject := subjects[(n-1)%len(subjects)]
		tasks = append(tasks, model.PlanTask{
			Title:   fmt.Sprintf("%s: %s session %d", subject, goal, n),
			DueDate: day,
			EstMins: perDay,
			Status:  model.TaskStatusTodo,
			Tags:    []string{strings.ToLower(subject), "plan"},
		})
	}
	return tasks
}
