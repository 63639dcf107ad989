package controller

import (
	"errors"
	"net/http"

	"github.com/Freeeeeet/tutoring_api/internal/service"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const serverErrorCode = "server_error"

type errorResponse struct {
	Error string `json:"error"`
}

// newHTTPErrorHandler отдаёт ошибки в JSON. Всё, что не ошибка валидации
// и не echo.HTTPError, логируется и превращается в 500 без подробностей.
func newHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := serverErrorCode

		var (
			vErr *service.ValidationError
			hErr *echo.HTTPError
		)
		switch {
		case errors.As(err, &vErr):
			code = http.StatusBadRequest
			message = vErr.Reason
		case errors.As(err, &hErr) && hErr.Code < http.StatusInternalServerError:
			code = hErr.Code
			if m, ok := hErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		default:
			logger.Error("Request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				zap.Error(err),
			)
		}

		var sendErr error
		if c.Request().Method == http.MethodHead {
			sendErr = c.NoContent(code)
		} else {
			sendErr = c.JSON(code, errorResponse{Error: message})
		}
		if sendErr != nil {
			logger.Error("Failed to send error response", zap.Error(sendErr))
		}
	}
}
