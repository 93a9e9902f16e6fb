package activity

import (
	"github.com/stafftrack/activity-backend-go/internal/pkg/validator"
)

type CreateActivityRequest struct {
	EmployeeID   int64  `json:"employee_id"`
	ActivityType string `json:"activity_type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Description  string `json:"description,omitempty"`
}

func (r *CreateActivityRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.ActivityType) {
		errs = append(errs, validator.ValidationError{
			Field:   "activity_type",
			Message: "activity_type is required",
		})
	}
	if len(r.Description) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must not exceed 500 characters",
		})
	}

	start, startErr := ParseDate(r.StartDate)
	if startErr != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid dd/MM/yyyy date",
		})
	}
	end, endErr := ParseDate(r.EndDate)
	if endErr != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid dd/MM/yyyy date",
		})
	}
	if startErr == nil && endErr == nil && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date cannot be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity assumes Validate has passed.
func (r *CreateActivityRequest) ToEntity() (Activity, error) {
	interval, err := ParseInterval(r.StartDate, r.EndDate)
	if err != nil {
		return Activity{}, err
	}
	return Activity{
		EmployeeID:  r.EmployeeID,
		Type:        r.ActivityType,
		Interval:    interval,
		Description: r.Description,
	}, nil
}

type ActivityResponse struct {
	ID           int64     `json:"id"`
	EmployeeID   int64     `json:"employee_id"`
	ActivityType string    `json:"activity_type"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	Description  string    `json:"description,omitempty"`
	DurationDays int       `json:"duration_days"`
	Style        TypeStyle `json:"style"`
}

func ToResponse(a Activity) ActivityResponse {
	return ActivityResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		ActivityType: a.Type,
		StartDate:    a.Interval.Start.String(),
		EndDate:      a.Interval.End.String(),
		Description:  a.Description,
		DurationDays: a.Interval.DurationDays(),
		Style:        StyleFor(a.Type),
	}
}

func ToResponses(list []Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(list))
	for _, a := range list {
		out = append(out, ToResponse(a))
	}
	return out
}

// Sort keys accepted by the list endpoint.
const (
	SortByDate     = "date"
	SortByType     = "type"
	SortByEmployee = "employee"
)

type ListFilter struct {
	Type       string
	EmployeeID int64
	SortBy     string
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.SortBy == "" {
		f.SortBy = SortByDate
	}
	if !validator.IsInSlice(f.SortBy, []string{SortByDate, SortByType, SortByEmployee}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_by",
			Message: "sort_by must be one of: date, type, employee",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
