package employee

import (
	"context"

	"github.com/stafftrack/activity-backend-go/internal/domain/employee"
	"github.com/stafftrack/activity-backend-go/internal/domain/user"
)

type EmployeeServiceImpl struct {
	repo employee.Repository
}

func NewEmployeeService(repo employee.Repository) employee.Service {
	return &EmployeeServiceImpl{repo: repo}
}

// GetProfile implements employee.Service. A zero employeeID resolves to the
// caller's own record; non-HR callers may only read their own.
func (s *EmployeeServiceImpl) GetProfile(ctx context.Context, session user.Session, employeeID int64, revealCompensation bool) (employee.ProfileResponse, error) {
	id, err := s.resolveTarget(session, employeeID)
	if err != nil {
		return employee.ProfileResponse{}, err
	}

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return employee.ProfileResponse{}, err
	}
	return employee.ToProfileResponse(record, session.Role, revealCompensation), nil
}

// ListProfiles implements employee.Service. Listing the whole directory is
// an HR operation regardless of which records it would reveal.
func (s *EmployeeServiceImpl) ListProfiles(ctx context.Context, session user.Session) ([]employee.ProfileResponse, error) {
	if session.Role != user.RoleHR {
		return nil, user.ErrHRAccessRequired
	}

	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]employee.ProfileResponse, 0, len(records))
	for _, record := range records {
		profiles = append(profiles, employee.ToProfileResponse(record, session.Role, false))
	}
	return profiles, nil
}

// UpdateProfile implements employee.Service. Every save runs through
// MergeEdit first; a forbidden field rejects the whole edit and nothing is
// written.
func (s *EmployeeServiceImpl) UpdateProfile(ctx context.Context, session user.Session, employeeID int64, req employee.UpdateProfileRequest) (employee.ProfileResponse, error) {
	id, err := s.resolveTarget(session, employeeID)
	if err != nil {
		return employee.ProfileResponse{}, err
	}

	original, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return employee.ProfileResponse{}, err
	}

	merged, err := employee.MergeEdit(original, req.Edits, session.Role)
	if err != nil {
		return employee.ProfileResponse{}, err
	}

	if err := s.repo.Update(ctx, merged); err != nil {
		return employee.ProfileResponse{}, err
	}
	return employee.ToProfileResponse(merged, session.Role, false), nil
}

func (s *EmployeeServiceImpl) resolveTarget(session user.Session, employeeID int64) (int64, error) {
	if employeeID == 0 {
		employeeID = session.EmployeeID
	}
	if employeeID == 0 {
		return 0, employee.ErrEmployeeNotFound
	}
	if session.Role != user.RoleHR && employeeID != session.EmployeeID {
		return 0, user.ErrHRAccessRequired
	}
	return employeeID, nil
}
