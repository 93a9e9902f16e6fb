package activity

import "context"

type Service interface {
	List(ctx context.Context, filter ListFilter) ([]ActivityResponse, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]ActivityResponse, error)
	Create(ctx context.Context, req CreateActivityRequest) (ActivityResponse, error)
	Types(ctx context.Context) ([]string, error)
}
