package activity

import "errors"

var (
	ErrInvalidDate      = errors.New("invalid date: expected dd/MM/yyyy")
	ErrInvalidInterval  = errors.New("start date is after end date")
	ErrActivityNotFound = errors.New("activity not found")
)
