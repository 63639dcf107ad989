package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/tutoring_api/internal/model"
	"github.com/Freeeeeet/tutoring_api/internal/repository/base"
)

type TaskRepository struct {
	*base.Repository
}

func NewTaskRepository(db base.DB) *TaskRepository {
	return &TaskRepository{Repository: base.NewRepository(db)}
}

// taskColumns соответствие полей patch колонкам таблицы tasks
var taskColumns = map[model.TaskField]string{
	model.TaskFieldTitle:   "title",
	model.TaskFieldDueDate: "due_date",
	model.TaskFieldEstMins: "est_mins",
	model.TaskFieldStatus:  "status",
	model.TaskFieldTags:    "tags",
}

// Create создаёт задачу
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	query := `
		INSERT INTO tasks (id, user_id, title, due_date, est_mins, status, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.ExecAffected(
		ctx, query,
		task.ID,
		task.UserID,
		task.Title,
		dateArg(task.DueDate),
		task.EstMins,
		string(task.Status),
		task.Tags,
	)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

// GetByUserID получает задачи пользователя: сначала по сроку, без срока в конце
func (r *TaskRepository) GetByUserID(ctx context.Context, userID string) ([]model.Task, error) {
	query := `
		SELECT id, user_id, title, due_date, est_mins, status, tags
		FROM tasks
		WHERE user_id = $1
		ORDER BY due_date ASC NULLS LAST, id ASC
	`

	rows, err := r.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get tasks by user: %w", err)
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		var (
			task model.Task
			due  *time.Time
		)
		err := rows.Scan(
			&task.ID,
			&task.UserID,
			&task.Title,
			&due,
			&task.EstMins,
			&task.Status,
			&task.Tags,
		)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if due != nil {
			d := model.NewDate(*due)
			task.DueDate = &d
		}
		if task.Tags == nil {
			task.Tags = []string{}
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	return tasks, nil
}

// TaskAssignments строит список присваиваний только для переданных полей
func TaskAssignments(patch model.TaskPatch) []base.Assignment {
	assignments := make([]base.Assignment, 0, len(patch))
	for _, field := range model.TaskPatchFields {
		value, ok := patch[field]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case *model.Date:
			value = dateArg(v)
		case model.TaskStatus:
			value = string(v)
		}
		assignments = append(assignments, base.Assignment{Column: taskColumns[field], Value: value})
	}
	return assignments
}

// Patch обновляет переданные поля одним UPDATE
func (r *TaskRepository) Patch(ctx context.Context, id string, patch model.TaskPatch) (int64, error) {
	set, args, err := base.Set(TaskAssignments(patch), 0)
	if err != nil {
		return 0, fmt.Errorf("build task patch: %w", err)
	}

	query := fmt.Sprintf(`UPDATE tasks %s WHERE id = $%d`, set, len(args)+1)
	args = append(args, id)

	affected, err := r.ExecAffected(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("patch task: %w", err)
	}

	return affected, nil
}

// ProgressPredicates условия выборки для подсчёта прогресса.
// Задача без срока попадает в любой диапазон.
func ProgressPredicates(filter model.ProgressFilter) []base.Predicate {
	preds := []base.Predicate{{Expr: "user_id = ?", Args: []any{filter.UserID}}}
	if filter.From != nil {
		preds = append(preds, base.Predicate{Expr: "(due_date IS NULL OR due_date >= ?)", Args: []any{filter.From.Time}})
	}
	if filter.To != nil {
		preds = append(preds, base.Predicate{Expr: "(due_date IS NULL OR due_date <= ?)", Args: []any{filter.To.Time}})
	}
	return preds
}

// CountProgress считает задачи todo/done пользователя в диапазоне
func (r *TaskRepository) CountProgress(ctx context.Context, filter model.ProgressFilter) (total, done int64, err error) {
	where, args, err := base.Where(ProgressPredicates(filter), 0)
	if err != nil {
		return 0, 0, fmt.Errorf("build progress filter: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT
			COUNT(*) FILTER (WHERE status IN ('todo', 'done')),
			COUNT(*) FILTER (WHERE status = 'done')
		FROM tasks
		%s
	`, where)

	if err := r.QueryRow(ctx, query, args...).Scan(&total, &done); err != nil {
		return 0, 0, fmt.Errorf("count progress: %w", err)
	}

	return total, done, nil
}

func dateArg(d *model.Date) any {
	if d == nil {
		return nil
	}
	return d.Time
}
