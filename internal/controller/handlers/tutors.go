package handlers

import (
	"net/http"

	"github.com/Freeeeeet/tutoring_api/internal/model"
	"github.com/labstack/echo/v4"
)

// HandleListTutors GET /api/tutors?subject=&minRating=
func (h *Handlers) HandleListTutors(c echo.Context) error {
	minRating, err := queryFloat(c, "minRating")
	if err != nil {
		return err
	}

	tutors, err := h.tutorService.ListTutors(c.Request().Context(), model.TutorFilter{
		Subject:   queryString(c, "subject"),
		MinRating: minRating,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tutors)
}
