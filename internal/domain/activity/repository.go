package activity

import "context"

type Repository interface {
	ListAll(ctx context.Context) ([]Activity, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]Activity, error)
	Insert(ctx context.Context, a Activity) (Activity, error)
	GetByID(ctx context.Context, id int64) (Activity, error)
}
