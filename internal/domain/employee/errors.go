package employee

import (
	"errors"
	"fmt"
)

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrFieldForbidden    = errors.New("field is not editable for this role")
	ErrInvalidFieldValue = errors.New("invalid value for field")
)

// ForbiddenFieldError names the offending path so the editing UI can point
// at the exact field. Matches ErrFieldForbidden under errors.Is.
type ForbiddenFieldError struct {
	Path string
}

func (e *ForbiddenFieldError) Error() string {
	return fmt.Sprintf("field %q is not editable for this role", e.Path)
}

func (e *ForbiddenFieldError) Unwrap() error {
	return ErrFieldForbidden
}
