package postgresql

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/stafftrack/activity-backend-go/internal/domain/employee"
	"github.com/stafftrack/activity-backend-go/internal/pkg/database"
)

type EmployeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &EmployeeRepository{db: db}
}

const employeeColumns = `id, user_id, identity, contact, employment, compensation,
	emergency_contact, leave_balances, documents, performance_reviews,
	created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Record, error) {
	var (
		r                                          employee.Record
		identity, contact, employment, comp, emerg []byte
		balances                                   []byte
	)
	err := row.Scan(
		&r.ID, &r.UserID,
		&identity, &contact, &employment, &comp, &emerg, &balances,
		&r.Documents, &r.PerformanceReviews,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Record{}, employee.ErrEmployeeNotFound
		}
		return employee.Record{}, err
	}

	sections := []struct {
		raw []byte
		dst any
	}{
		{identity, &r.Identity},
		{contact, &r.Contact},
		{employment, &r.Employment},
		{comp, &r.Compensation},
		{emerg, &r.EmergencyContact},
		{balances, &r.LeaveBalances},
	}
	for _, s := range sections {
		if len(s.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(s.raw, s.dst); err != nil {
			return employee.Record{}, err
		}
	}
	return r, nil
}

// GetByID implements employee.Repository.
func (e *EmployeeRepository) GetByID(ctx context.Context, id int64) (employee.Record, error) {
	return scanEmployee(e.db.QueryRow(ctx, `
		SELECT `+employeeColumns+`
		FROM employees
		WHERE id = $1
	`, id))
}

// GetByUserID implements employee.Repository.
func (e *EmployeeRepository) GetByUserID(ctx context.Context, userID string) (employee.Record, error) {
	return scanEmployee(e.db.QueryRow(ctx, `
		SELECT `+employeeColumns+`
		FROM employees
		WHERE user_id = $1
	`, userID))
}

// List implements employee.Repository.
func (e *EmployeeRepository) List(ctx context.Context) ([]employee.Record, error) {
	rows, err := e.db.Query(ctx, `
		SELECT `+employeeColumns+`
		FROM employees
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []employee.Record
	for rows.Next() {
		r, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Update implements employee.Repository. The whole record is written at
// once; partial writes never reach storage.
func (e *EmployeeRepository) Update(ctx context.Context, r employee.Record) error {
	identity, err := json.Marshal(r.Identity)
	if err != nil {
		return err
	}
	contact, err := json.Marshal(r.Contact)
	if err != nil {
		return err
	}
	employment, err := json.Marshal(r.Employment)
	if err != nil {
		return err
	}
	comp, err := json.Marshal(r.Compensation)
	if err != nil {
		return err
	}
	emerg, err := json.Marshal(r.EmergencyContact)
	if err != nil {
		return err
	}
	balances, err := json.Marshal(r.LeaveBalances)
	if err != nil {
		return err
	}

	tag, err := e.db.Exec(ctx, `
		UPDATE employees
		SET identity = $2,
			contact = $3,
			employment = $4,
			compensation = $5,
			emergency_contact = $6,
			leave_balances = $7,
			documents = $8,
			performance_reviews = $9,
			updated_at = NOW()
		WHERE id = $1
	`, r.ID, identity, contact, employment, comp, emerg, balances, r.Documents, r.PerformanceReviews)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
