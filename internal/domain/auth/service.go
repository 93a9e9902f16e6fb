package auth

import "context"

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	LoginWithGoogle(ctx context.Context, code string) (AuthResponse, error)
	Logout(ctx context.Context, token string) error
}
