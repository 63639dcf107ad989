package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Freeeeeet/tutoring_api/internal/model"
	"github.com/Freeeeeet/tutoring_api/internal/service"
	"github.com/labstack/echo/v4"
)

// HandleListTasks GET /api/tasks?userId=
func (h *Handlers) HandleListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context(), c.QueryParam("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// HandleCreateTask POST /api/tasks
func (h *Handlers) HandleCreateTask(c echo.Context) error {
	var in service.CreateTaskInput
	if err := bind(c, &in); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), in)
	if err != nil {
		return err
	}

	return sendOK(c, http.StatusCreated, task.ID)
}

// HandlePatchTask PATCH /api/tasks/:id
func (h *Handlers) HandlePatchTask(c echo.Context) error {
	var body map[string]json.RawMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return errInvalidBody
	}

	patch, err := service.ParseTaskPatch(body)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.taskService.PatchTask(c.Request().Context(), id, patch); err != nil {
		return err
	}

	return sendOK(c, http.StatusOK, id)
}

// HandleProgress GET /api/progress?userId=&from=&to=
func (h *Handlers) HandleProgress(c echo.Context) error {
	from, err := queryDate(c, "from")
	if err != nil {
		return err
	}
	to, err := queryDate(c, "to")
	if err != nil {
		return err
	}

	progress, err := h.taskService.Progress(c.Request().Context(), model.ProgressFilter{
		UserID: c.QueryParam("userId"),
		From:   from,
		To:     to,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, progress)
}
