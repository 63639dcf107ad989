package model

type TaskStatus string

const (
	TaskStatusTodo TaskStatus = "todo"
	TaskStatusDone TaskStatus = "done"
)

// DefaultEstMins оценка длительности задачи по умолчанию
const DefaultEstMins = 30

type Task struct {
	ID      string     `json:"id"`
	UserID  string     `json:"userId"`
	Title   string     `json:"title"`
	DueDate *Date      `json:"dueDate"` // nil = без срока
	EstMins int        `json:"estMins"`
	Status  TaskStatus `json:"status"`
	Tags    []string   `json:"tags"`
}

// TaskField поле задачи, которое можно менять через patch
type TaskField string

const (
	TaskFieldTitle   TaskField = "title"
	TaskFieldDueDate TaskField = "dueDate"
	TaskFieldEstMins TaskField = "estMins"
	TaskFieldStatus  TaskField = "status"
	TaskFieldTags    TaskField = "tags"
)

// TaskPatchFields порядок полей при построении UPDATE
var TaskPatchFields = []TaskField{
	TaskFieldTitle,
	TaskFieldDueDate,
	TaskFieldEstMins,
	TaskFieldStatus,
	TaskFieldTags,
}

// TaskPatch частичное обновление: присутствуют только переданные поля.
// Значение nil для dueDate означает очистку срока.
type TaskPatch map[TaskField]any

func (p TaskPatch) IsEmpty() bool {
	return len(p) == 0
}

// PlanTask задача учебного плана, не сохраняется генератором
type PlanTask struct {
	Title   string     `json:"title"`
	DueDate Date       `json:"dueDate"`
	EstMins int        `json:"estMins"`
	Status  TaskStatus `json:"status"`
	Tags    []string   `json:"tags"`
}
