package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/stafftrack/activity-backend-go/internal/domain/user"
	"github.com/stafftrack/activity-backend-go/internal/pkg/database"
)

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, password_hash, role, employee_id, oauth_provider, oauth_provider_id, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var (
		u    user.User
		role string
	)
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &role, &u.EmployeeID,
		&u.OAuthProvider, &u.OAuthProviderID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	u.Role = user.ParseRole(role)
	return u, nil
}

// GetByID implements user.Repository.
func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	return scanUser(r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id))
}

// GetByEmail implements user.Repository.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return scanUser(r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email))
}

// GetByOAuth implements user.Repository.
func (r *UserRepository) GetByOAuth(ctx context.Context, provider, providerID string) (user.User, error) {
	return scanUser(r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE oauth_provider = $1 AND oauth_provider_id = $2
	`, provider, providerID))
}

// Insert implements user.Repository.
func (r *UserRepository) Insert(ctx context.Context, u user.User) (user.User, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (id, email, password_hash, role, employee_id, oauth_provider, oauth_provider_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`, u.ID, u.Email, u.PasswordHash, string(u.Role), u.EmployeeID, u.OAuthProvider, u.OAuthProviderID).
		Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}
