package handlers

import (
	"net/http"
	"strconv"

	"github.com/Freeeeeet/tutoring_api/internal/model"
	"github.com/labstack/echo/v4"
)

var errInvalidBody = echo.NewHTTPError(http.StatusBadRequest, "invalid body")

type okResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id,omitempty"`
}

func badRequest(reason string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, reason)
}

// sendOK отправляет {ok:true, id}
func sendOK(c echo.Context, code int, id string) error {
	return c.JSON(code, okResponse{OK: true, ID: id})
}

// bind разбирает JSON тело и проверяет теги validate
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errInvalidBody
	}
	return c.Validate(dst)
}

// queryString возвращает nil для отсутствующего или пустого параметра
func queryString(c echo.Context, name string) *string {
	v := c.QueryParam(name)
	if v == "" {
		return nil
	}
	return &v
}

func queryFloat(c echo.Context, name string) (*float64, error) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, badRequest("invalid " + name)
	}
	return &f, nil
}

func queryDate(c echo.Context, name string) (*model.Date, error) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, nil
	}
	d, err := model.ParseDate(v)
	if err != nil {
		return nil, badRequest("invalid " + name)
	}
	return &d, nil
}
