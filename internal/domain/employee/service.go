package employee

import (
	"context"

	"github.com/stafftrack/activity-backend-go/internal/domain/user"
)

type Service interface {
	GetProfile(ctx context.Context, session user.Session, employeeID int64, revealCompensation bool) (ProfileResponse, error)
	ListProfiles(ctx context.Context, session user.Session) ([]ProfileResponse, error)
	UpdateProfile(ctx context.Context, session user.Session, employeeID int64, req UpdateProfileRequest) (ProfileResponse, error)
}
