package handlers

import (
	"net/http"

	"github.com/Freeeeeet/tutoring_api/internal/model"
	"github.com/Freeeeeet/tutoring_api/internal/service"
	"github.com/labstack/echo/v4"
)

type studyPlanResponse struct {
	Tasks []model.PlanTask `json:"tasks"`
}

// HandleStudyPlan POST /api/ai/study-plan
func (h *Handlers) HandleStudyPlan(c echo.Context) error {
	var in service.StudyPlanInput
	if err := c.Bind(&in); err != nil {
		return errInvalidBody
	}

	tasks, err := h.planService.GenerateStudyPlan(in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, studyPlanResponse{Tasks: tasks})
}
