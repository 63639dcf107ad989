package service

import "errors"

// ValidationError ошибка входных данных, отдаётся клиенту как 400
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func newValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}

// IsValidation проверяет что ошибка вызвана входными данными
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// Причины отказа, которые видит клиент
const (
	ReasonMissingFields  = "missing fields"
	ReasonUserIDRequired = "userId required"
	ReasonNoFields       = "no fields"
	ReasonExamDate       = "examDate required"
	ReasonStudentID      = "studentId required"
)
