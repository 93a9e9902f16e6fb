package postgresql

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/stafftrack/activity-backend-go/internal/domain/activity"
	"github.com/stafftrack/activity-backend-go/internal/pkg/database"
)

type ActivityRepository struct {
	db *database.DB
}

func NewActivityRepository(db *database.DB) activity.Repository {
	return &ActivityRepository{db: db}
}

// activityRow mirrors the wire contract: dates are stored in the dd/MM/yyyy
// text form they arrive in.
type activityRow struct {
	ID          int64
	EmployeeID  int64
	Type        string
	StartDate   string
	EndDate     string
	Description string
	CreatedAt   time.Time
}

// toEntity parses the interval. A malformed row yields an error; callers
// drop the row instead of failing the whole listing.
func (r activityRow) toEntity() (activity.Activity, error) {
	interval, err := activity.ParseInterval(r.StartDate, r.EndDate)
	if err != nil {
		return activity.Activity{}, err
	}
	return activity.Activity{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		Type:        r.Type,
		Interval:    interval,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}, nil
}

const activityColumns = `id, employee_id, activity_type, start_date, end_date, COALESCE(description, ''), created_at`

// ListAll implements activity.Repository.
func (r *ActivityRepository) ListAll(ctx context.Context) ([]activity.Activity, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+activityColumns+`
		FROM activities
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectActivities(rows)
}

// ListByEmployee implements activity.Repository.
func (r *ActivityRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]activity.Activity, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+activityColumns+`
		FROM activities
		WHERE employee_id = $1
		ORDER BY id
	`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectActivities(rows)
}

// GetByID implements activity.Repository.
func (r *ActivityRepository) GetByID(ctx context.Context, id int64) (activity.Activity, error) {
	var row activityRow
	err := r.db.QueryRow(ctx, `
		SELECT `+activityColumns+`
		FROM activities
		WHERE id = $1
	`, id).Scan(&row.ID, &row.EmployeeID, &row.Type, &row.StartDate, &row.EndDate, &row.Description, &row.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return activity.Activity{}, activity.ErrActivityNotFound
		}
		return activity.Activity{}, err
	}
	return row.toEntity()
}

// Insert implements activity.Repository.
func (r *ActivityRepository) Insert(ctx context.Context, a activity.Activity) (activity.Activity, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO activities (employee_id, activity_type, start_date, end_date, description, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NOW())
		RETURNING id, created_at
	`, a.EmployeeID, a.Type, a.Interval.Start.String(), a.Interval.End.String(), a.Description).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return activity.Activity{}, err
	}
	return a, nil
}

// collectActivities scans and parses every row, dropping the malformed ones
// so one bad activity never blanks the whole calendar.
func collectActivities(rows pgx.Rows) ([]activity.Activity, error) {
	var out []activity.Activity
	for rows.Next() {
		var row activityRow
		if err := rows.Scan(&row.ID, &row.EmployeeID, &row.Type, &row.StartDate, &row.EndDate, &row.Description, &row.CreatedAt); err != nil {
			return nil, err
		}
		entity, err := row.toEntity()
		if err != nil {
			slog.Warn("skipping activity with malformed dates",
				"activity_id", row.ID,
				"start_date", row.StartDate,
				"end_date", row.EndDate,
				"error", err,
			)
			continue
		}
		out = append(out, entity)
	}
	return out, rows.Err()
}
