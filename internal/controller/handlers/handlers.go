package handlers

import (
	"context"
	"net/http"

	"github.com/Freeeeeet/tutoring_api/internal/model"
	"github.com/Freeeeeet/tutoring_api/internal/service"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type TutorService interface {
	ListTutors(ctx context.Context, filter model.TutorFilter) ([]model.Tutor, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, in service.CreateBookingInput) (*model.Booking, error)
	CancelBooking(ctx context.Context, id string) error
	GetStudentBookings(ctx context.Context, studentID string) ([]model.Booking, error)
}

type TaskService interface {
	ListTasks(ctx context.Context, userID string) ([]model.Task, error)
	CreateTask(ctx context.Context, in service.CreateTaskInput) (*model.Task, error)
	PatchTask(ctx context.Context, id string, patch model.TaskPatch) error
	Progress(ctx context.Context, filter model.ProgressFilter) (model.Progress, error)
}

type PlanService interface {
	GenerateStudyPlan(in service.StudyPlanInput) ([]model.PlanTask, error)
}

// Handlers обработчики HTTP API
type Handlers struct {
	tutorService   TutorService
	bookingService BookingService
	taskService    TaskService
	planService    PlanService
	logger         *zap.Logger
}

func NewHandlers(
	tutorService TutorService,
	bookingService BookingService,
	taskService TaskService,
	planService PlanService,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		tutorService:   tutorService,
		bookingService: bookingService,
		taskService:    taskService,
		planService:    planService,
		logger:         logger,
	}
}

// Register регистрирует все маршруты в группе /api
func (h *Handlers) Register(api *echo.Group) {
	api.GET("/health", h.HandleHealth)

	api.GET("/tutors", h.HandleListTutors)

	api.GET("/bookings", h.HandleListBookings)
	api.POST("/bookings", h.HandleCreateBooking)
	api.DELETE("/bookings/:id", h.HandleCancelBooking)

	api.GET("/tasks", h.HandleListTasks)
	api.POST("/tasks", h.HandleCreateTask)
	api.PATCH("/tasks/:id", h.HandlePatchTask)

	api.GET("/progress", h.HandleProgress)

	api.POST("/ai/study-plan", h.HandleStudyPlan)
}

// HandleHealth проверка живости
func (h *Handlers) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, okResponse{OK: true})
}
