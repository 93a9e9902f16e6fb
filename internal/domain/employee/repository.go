package employee

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int64) (Record, error)
	GetByUserID(ctx context.Context, userID string) (Record, error)
	Update(ctx context.Context, r Record) error
	List(ctx context.Context) ([]Record, error)
}
