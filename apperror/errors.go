package apperror

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ClientError is a request-level failure with an explicit HTTP status,
// covering both missing resources (404) and forbidden actions (401).
type ClientError struct {
	StatusCode  int    `json:"statusCode"`
	Message     string `json:"message"`
	Explanation string `json:"explanation,omitempty"`
}

func (e *ClientError) Error() string {
	return e.Message
}

func NewNotFound(message string) *ClientError {
	return &ClientError{
		StatusCode:  fiber.StatusNotFound,
		Message:     message,
		Explanation: "the requested resource does not exist",
	}
}

func NewUnauthorized(message string) *ClientError {
	return &ClientError{
		StatusCode:  fiber.StatusUnauthorized,
		Message:     message,
		Explanation: "the caller is not allowed to perform this action",
	}
}

// ValidationError carries one message per offending field and always maps
// to HTTP 400.
type ValidationError struct {
	Message     string   `json:"message"`
	Explanation []string `json:"explanation"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(message string, explanation ...string) *ValidationError {
	if len(explanation) == 0 {
		explanation = []string{message}
	}
	return &ValidationError{Message: message, Explanation: explanation}
}

// FromValidator translates go-playground field errors into a
// ValidationError. Any other error is returned unchanged.
func FromValidator(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	explanation := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		explanation = append(explanation, fe.Field()+" failed on the '"+fe.Tag()+"' rule")
	}
	return &ValidationError{Message: "invalid request payload", Explanation: explanation}
}

// StatusCode reports the HTTP status an error maps to at the boundary.
// Unclassified errors fall through to 500.
func StatusCode(err error) int {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.StatusCode
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
