package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/stafftrack/activity-backend-go/internal/domain/auth"
	"github.com/stafftrack/activity-backend-go/internal/domain/employee"
	"github.com/stafftrack/activity-backend-go/internal/domain/user"
	"github.com/stafftrack/activity-backend-go/internal/pkg/jwt"
	"github.com/stafftrack/activity-backend-go/internal/pkg/oauth"
)

type AuthServiceImpl struct {
	userRepo      user.Repository
	employeeRepo  employee.Repository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(userRepo user.Repository, employeeRepo employee.Repository, jwtService jwt.Service, googleService oauth.GoogleService) auth.Service {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		employeeRepo:  employeeRepo,
		jwtService:    jwtService,
		googleService: googleService,
	}
}

// Register implements auth.Service. New accounts get the employee role; HR
// is assigned out of band.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return auth.AuthResponse{}, auth.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.AuthResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.AuthResponse{}, err
	}
	hashedStr := string(hashed)

	created, err := s.userRepo.Insert(ctx, user.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: &hashedStr,
		Role:         user.RoleEmployee,
	})
	if err != nil {
		return auth.AuthResponse{}, err
	}

	return s.issueToken(ctx, created)
}

// Login implements auth.Service.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, err
	}

	if u.PasswordHash == nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueToken(ctx, u)
}

// LoginWithGoogle implements auth.Service. Exchanges the OAuth code, then
// finds or creates the matching account.
func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.AuthResponse, error) {
	token, err := s.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	info, err := s.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	provider := "google"
	u, err := s.userRepo.GetByOAuth(ctx, provider, info.ID)
	if errors.Is(err, user.ErrUserNotFound) {
		u, err = s.userRepo.Insert(ctx, user.User{
			ID:              uuid.NewString(),
			Email:           strings.ToLower(info.Email),
			Role:            user.RoleEmployee,
			OAuthProvider:   &provider,
			OAuthProviderID: &info.ID,
		})
	}
	if err != nil {
		return auth.AuthResponse{}, err
	}

	return s.issueToken(ctx, u)
}

// Logout implements auth.Service by revoking the presented access token.
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return auth.ErrInvalidToken
	}
	s.jwtService.RevokeToken(token)
	return nil
}

// issueToken resolves the user's employee record before minting the token,
// so employee-scoped features (activities, countdown stream) work even when
// the account was created before its employee record was linked.
func (s *AuthServiceImpl) issueToken(ctx context.Context, u user.User) (auth.AuthResponse, error) {
	employeeID := u.EmployeeID
	if employeeID == nil {
		record, err := s.employeeRepo.GetByUserID(ctx, u.ID)
		switch {
		case err == nil:
			employeeID = &record.ID
		case !errors.Is(err, employee.ErrEmployeeNotFound):
			return auth.AuthResponse{}, err
		}
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, employeeID, u.Role)
	if err != nil {
		return auth.AuthResponse{}, err
	}
	return auth.AuthResponse{
		AccessToken:          token,
		AccessTokenExpiresAt: expiresAt,
		UserID:               u.ID,
		Role:                 string(u.Role),
		EmployeeID:           employeeID,
	}, nil
}
