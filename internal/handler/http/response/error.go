package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/stafftrack/activity-backend-go/internal/domain/activity"
	"github.com/stafftrack/activity-backend-go/internal/domain/auth"
	"github.com/stafftrack/activity-backend-go/internal/domain/employee"
	"github.com/stafftrack/activity-backend-go/internal/domain/user"
	"github.com/stafftrack/activity-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Anything not
// recognized is logged and returned as a 500.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var forbiddenField *employee.ForbiddenFieldError
	if errors.As(err, &forbiddenField) {
		Forbidden(w, forbiddenField.Error())
		return
	}

	switch {
	case errors.Is(err, activity.ErrInvalidDate),
		errors.Is(err, activity.ErrInvalidInterval),
		errors.Is(err, employee.ErrInvalidFieldValue):
		BadRequest(w, err.Error())
	case errors.Is(err, activity.ErrActivityNotFound),
		errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, user.ErrUserNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		BadRequest(w, err.Error())
	case errors.Is(err, auth.ErrEmailExists):
		Conflict(w, err.Error())
	case errors.Is(err, user.ErrHRAccessRequired),
		errors.Is(err, employee.ErrFieldForbidden):
		Forbidden(w, err.Error())
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w)
	}
}
