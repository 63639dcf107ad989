package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Freeeeeet/tutoring_api/internal/model"
)

// 2025-09-01 понедельник
var monday = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

func date(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestGenerateStudyPlanWeek(t *testing.T) {
	svc := NewPlanService(FixedClock(monday), zaptest.NewLogger(t))
	exam := date(t, "2025-09-08")
	hours := 4.0

	tasks, err := svc.GenerateStudyPlan(StudyPlanInput{
		ExamDate:     &exam,
		HoursPerWeek: &hours,
		Subjects:     []string{"Math", "Bio"},
	})
	require.NoError(t, err)
	require.Len(t, tasks, 6)

	wantTitles := []string{
		"Math: Exam prep session 1",
		"Bio: Exam prep session 2",
		"Math: Exam prep session 3",
		"Bio: Exam prep session 4",
		"Math: Exam prep session 5",
		"Bio: Exam prep session 6",
	}
	wantDates := []string{"2025-09-01", "2025-09-02", "2025-09-03", "2025-09-04", "2025-09-05", "2025-09-07"}

	for i, task := range tasks {
		assert.Equal(t, wantTitles[i], task.Title)
		assert.Equal(t, wantDates[i], task.DueDate.String())
		assert.Equal(t, 48, task.EstMins)
		assert.Equal(t, model.TaskStatusTodo, task.Status)
		assert.NotEqual(t, time.Saturday, task.DueDate.Weekday())
	}
	assert.Equal(t, []string{"math", "plan"}, tasks[0].Tags)
	assert.Equal(t, []string{"bio", "plan"}, tasks[1].Tags)
}

func TestGenerateStudyPlanDefaults(t *testing.T) {
	svc := NewPlanService(FixedClock(monday), zaptest.NewLogger(t))
	exam := date(t, "2025-09-03")

	tasks, err := svc.GenerateStudyPlan(StudyPlanInput{ExamDate: &exam})
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, "General: Exam prep session 1", tasks[0].Title)
	assert.Equal(t, "General: Exam prep session 2", tasks[1].Title)
	assert.Equal(t, 48, tasks[0].EstMins)
	assert.Equal(t, []string{"general", "plan"}, tasks[0].Tags)
}

func TestGenerateStudyPlanNonPositiveHours(t *testing.T) {
	svc := NewPlanService(FixedClock(monday), zaptest.NewLogger(t))
	exam := date(t, "2025-09-03")

	tests := []struct {
		hours float64
		want  int
	}{
		{0, 20},
		{-2, 20},
	}

	for _, tt := range tests {
		hours := tt.hours
		tasks, err := svc.GenerateStudyPlan(StudyPlanInput{ExamDate: &exam, HoursPerWeek: &hours})
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		for _, task := range tasks {
			assert.Equal(t, tt.want, task.EstMins, "hours=%v", tt.hours)
		}
	}
}

func TestGenerateStudyPlanCustomGoal(t *testing.T) {
	svc := NewPlanService(FixedClock(monday), zaptest.NewLogger(t))
	exam := date(t, "2025-09-02")

	tasks, err := svc.GenerateStudyPlan(StudyPlanInput{Goal: "Finals", ExamDate: &exam, Subjects: []string{"Chemistry"}})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Chemistry: Finals session 1", tasks[0].Title)
}

func TestGenerateStudyPlanRequiresExamDate(t *testing.T) {
	svc := NewPlanService(FixedClock(monday), zaptest.NewLogger(t))

	_, err := svc.GenerateStudyPlan(StudyPlanInput{})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, ReasonExamDate, err.Error())
}

func TestGenerateStudyPlanPastExam(t *testing.T) {
	exam := date(t, "2025-08-01")

	// Понедельник: один день плана, одна задача
	tasks := BuildStudyPlan(monday, exam, 4, []string{"Math"}, "Exam prep")
	require.Len(t, tasks, 1)
	assert.Equal(t, "2025-09-01", tasks[0].DueDate.String())

	// Суббота: один день плана, но это день отдыха
	saturday := time.Date(2025, 9, 6, 15, 0, 0, 0, time.UTC)
	assert.Empty(t, BuildStudyPlan(saturday, exam, 4, []string{"Math"}, "Exam prep"))
}

func TestPlanDays(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		exam string
		want int
	}{
		{"exact week", monday, "2025-09-08", 7},
		{"partial day rounds up", monday.Add(10 * time.Hour), "2025-09-03", 2},
		{"today", monday, "2025-09-01", 1},
		{"past", monday, "2024-01-01", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlanDays(tt.now, date(t, tt.exam)))
		})
	}
}

func TestSessionMinutes(t *testing.T) {
	tests := []struct {
		hours float64
		want  int
	}{
		{4, 48},
		{10, 120},
		{0.5, 20}, // 60 минут минимум, 12 на день -> минимум 20
		{1, 20},
		{3.3, 40},
		{2, 24},
		{0, 20},
		{-2, 20},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SessionMinutes(tt.hours), "hours=%v", tt.hours)
	}
}

func TestBuildStudyPlanRoundRobinSkipsRestDay(t *testing.T) {
	// Старт в пятницу: суббота пропускается, нумерация не прерывается
	friday := time.Date(2025, 9, 5, 8, 0, 0, 0, time.UTC)
	tasks := BuildStudyPlan(friday, date(t, "2025-09-08"), 4, []string{"A", "B", "C"}, "G")

	require.Len(t, tasks, 2)
	assert.Equal(t, "A: G session 1", tasks[0].Title)
	assert.Equal(t, "2025-09-05", tasks[0].DueDate.String())
	assert.Equal(t, "B: G session 2", tasks[1].Title)
	assert.Equal(t, "2025-09-07", tasks[1].DueDate.String())
}
