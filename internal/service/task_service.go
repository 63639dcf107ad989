package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/Freeeeeet/tutoring_api/internal/model"
	"go.uber.org/zap"
)

type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	GetByUserID(ctx context.Context, userID string) ([]model.Task, error)
	Patch(ctx context.Context, id string, patch model.TaskPatch) (int64, error)
	CountProgress(ctx context.Context, filter model.ProgressFilter) (total, done int64, err error)
}

type TaskService struct {
	taskRepo TaskRepository
	logger   *zap.Logger
}

func NewTaskService(taskRepo TaskRepository, logger *zap.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// CreateTaskInput данные новой задачи; nil означает значение по умолчанию
type CreateTaskInput struct {
	ID      string            `json:"id" validate:"required"`
	UserID  string            `json:"userId" validate:"required"`
	Title   string            `json:"title" validate:"required"`
	DueDate *model.Date       `json:"dueDate"`
	EstMins *int              `json:"estMins" validate:"omitempty,min=0"`
	Status  *model.TaskStatus `json:"status"`
	Tags    []string          `json:"tags"`
}

// ListTasks задачи пользователя по сроку, задачи без срока в конце
func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]model.Task, error) {
	if userID == "" {
		return nil, newValidationError(ReasonUserIDRequired)
	}
	return s.taskRepo.GetByUserID(ctx, userID)
}

// CreateTask создаёт задачу, подставляя значения по умолчанию
func (s *TaskService) CreateTask(ctx context.Context, in CreateTaskInput) (*model.Task, error) {
	if in.ID == "" || in.UserID == "" || in.Title == "" {
		return nil, newValidationError(ReasonMissingFields)
	}

	task := &model.Task{
		ID:      in.ID,
		UserID:  in.UserID,
		Title:   in.Title,
		DueDate: in.DueDate,
		EstMins: model.DefaultEstMins,
		Status:  model.TaskStatusTodo,
		Tags:    in.Tags,
	}
	if in.EstMins != nil {
		task.EstMins = *in.EstMins
	}
	if in.Status != nil && *in.Status != "" {
		task.Status = *in.Status
	}
	if task.Tags == nil {
		task.Tags = []string{}
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.logger.Info("Task created",
		zap.String("task_id", task.ID),
		zap.String("user_id", task.UserID),
		zap.String("status", string(task.Status)),
	)

	return task, nil
}

// PatchTask обновляет только переданные поля
func (s *TaskService) PatchTask(ctx context.Context, id string, patch model.TaskPatch) error {
	if patch.IsEmpty() {
		return newValidationError(ReasonNoFields)
	}

	affected, err := s.taskRepo.Patch(ctx, id, patch)
	if err != nil {
		return err
	}

	fields := make([]string, 0, len(patch))
	for _, f := range model.TaskPatchFields {
		if _, ok := patch[f]; ok {
			fields = append(fields, string(f))
		}
	}
	s.logger.Info("Task patched",
		zap.String("task_id", id),
		zap.Strings("fields", fields),
		zap.Int64("rows_affected", affected),
	)

	return nil
}

// Progress доля выполненных задач пользователя
func (s *TaskService) Progress(ctx context.Context, filter model.ProgressFilter) (model.Progress, error) {
	if filter.UserID == "" {
		return model.Progress{}, newValidationError(ReasonUserIDRequired)
	}

	total, done, err := s.taskRepo.CountProgress(ctx, filter)
	if err != nil {
		return model.Progress{}, err
	}

	return model.NewProgress(int(total), int(done)), nil
}

// ParseTaskPatch разбирает тело PATCH. Неизвестные ключи игнорируются,
// dueDate: null очищает срок.
func ParseTaskPatch(body map[string]json.RawMessage) (model.TaskPatch, error) {
	patch := model.TaskPatch{}

	for _, field := range model.TaskPatchFields {
		raw, ok := body[string(field)]
		if !ok {
			continue
		}

		var (
			value any
			err   error
		)
		switch field {
		case model.TaskFieldTitle:
			var v string
			err = decodeStrict(raw, &v)
			value = v
		case model.TaskFieldDueDate:
			if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
				value = (*model.Date)(nil)
				break
			}
			var v model.Date
			err = json.Unmarshal(raw, &v)
			value = &v
		case model.TaskFieldEstMins:
			var v int
			err = decodeStrict(raw, &v)
			if err == nil && v < 0 {
				err = fmt.Errorf("must not be negative")
			}
			value = v
		case model.TaskFieldStatus:
			var v string
			err = decodeStrict(raw, &v)
			value = model.TaskStatus(v)
		case model.TaskFieldTags:
			var v []string
			err = decodeStrict(raw, &v)
			value = v
		}
		if err != nil {
			return nil, newValidationError("invalid " + string(field))
		}

		patch[field] = value
	}

	if patch.IsEmpty() {
		return nil, newValidationError(ReasonNoFields)
	}

	return patch, nil
}

// decodeStrict как json.Unmarshal, но null не принимается
func decodeStrict(raw json.RawMessage, v any) error {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return fmt.Errorf("null is not allowed")
	}
	return json.Unmarshal(raw, v)
}
