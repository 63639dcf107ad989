package handlers

import (
	"net/http"

	"github.com/Freeeeeet/tutoring_api/internal/service"
	"github.com/labstack/echo/v4"
)

// HandleCreateBooking POST /api/bookings
func (h *Handlers) HandleCreateBooking(c echo.Context) error {
	var in service.CreateBookingInput
	if err := bind(c, &in); err != nil {
		return err
	}

	booking, err := h.bookingService.CreateBooking(c.Request().Context(), in)
	if err != nil {
		return err
	}

	return sendOK(c, http.StatusCreated, booking.ID)
}

// HandleCancelBooking DELETE /api/bookings/:id
func (h *Handlers) HandleCancelBooking(c echo.Context) error {
	id := c.Param("id")
	if err := h.bookingService.CancelBooking(c.Request().Context(), id); err != nil {
		return err
	}
	return sendOK(c, http.StatusOK, id)
}

// HandleListBookings GET /api/bookings?studentId=
func (h *Handlers) HandleListBookings(c echo.Context) error {
	bookings, err := h.bookingService.GetStudentBookings(c.Request().Context(), c.QueryParam("studentId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}
