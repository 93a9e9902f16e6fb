package employee

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftrack/activity-backend-go/internal/domain/employee"
	"github.com/stafftrack/activity-backend-go/internal/domain/user"
)

// fakeRepository is an in-memory employee.Repository for service tests.
type fakeRepository struct {
	records map[int64]employee.Record
	updates int
}

func newFakeRepository(records ...employee.Record) *fakeRepository {
	m := make(map[int64]employee.Record, len(records))
	for _, r := range records {
		m[r.ID] = r
	}
	return &fakeRepository{records: m}
}

func (f *fakeRepository) GetByID(ctx context.Context, id int64) (employee.Record, error) {
	r, ok := f.records[id]
	if !ok {
		return employee.Record{}, employee.ErrEmployeeNotFound
	}
	return r, nil
}

func (f *fakeRepository) GetByUserID(ctx context.Context, userID string) (employee.Record, error) {
	for _, r := range f.records {
		if r.UserID != nil && *r.UserID == userID {
			return r, nil
		}
	}
	return employee.Record{}, employee.ErrEmployeeNotFound
}

func (f *fakeRepository) Update(ctx context.Context, r employee.Record) error {
	if _, ok := f.records[r.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.records[r.ID] = r
	f.updates++
	return nil
}

func (f *fakeRepository) List(ctx context.Context) ([]employee.Record, error) {
	out := make([]employee.Record, 0, len(f.records))
	for _, r := range f.records {
		out = append(out, r)
	}
	return out, nil
}

func testRecord(id int64) employee.Record {
	return employee.Record{
		ID:       id,
		Identity: employee.Identity{FirstName: "Jane", LastName: "Doe"},
		Contact:  employee.Contact{Email: "jane@example.com", Phone: "+15550100100"},
		Compensation: employee.Compensation{
			BaseSalary: decimal.NewFromInt(90000),
			Currency:   "USD",
		},
		PerformanceReviews: employee.PerformanceReviews{
			{Period: "2023-H1", Rating: 4},
		},
	}
}

func employeeSession(employeeID int64) user.Session {
	return user.Session{UserID: "u-1", EmployeeID: employeeID, Role: user.RoleEmployee}
}

func hrSession() user.Session {
	return user.Session{UserID: "u-hr", EmployeeID: 99, Role: user.RoleHR}
}

func TestGetProfile_OwnRecordDefaultsHidden(t *testing.T) {
	svc := NewEmployeeService(newFakeRepository(testRecord(7)))

	got, err := svc.GetProfile(context.Background(), employeeSession(7), 0, false)
	require.NoError(t, err)

	assert.Equal(t, int64(7), got.ID)
	assert.Nil(t, got.Compensation)
	assert.True(t, got.CompensationHidden)
	assert.Empty(t, got.PerformanceReviews)
	assert.Contains(t, got.EditablePaths, "contact.phone")
	assert.NotContains(t, got.EditablePaths, "compensation.baseSalary")
}

func TestGetProfile_OwnRecordWithReveal(t *testing.T) {
	svc := NewEmployeeService(newFakeRepository(testRecord(7)))

	got, err := svc.GetProfile(context.Background(), employeeSession(7), 0, true)
	require.NoError(t, err)

	require.NotNil(t, got.Compensation)
	assert.True(t, got.Compensation.BaseSalary.Equal(decimal.NewFromInt(90000)))
	assert.Empty(t, got.PerformanceReviews, "reveal never covers reviews")
}

func TestGetProfile_CrossAccessDenied(t *testing.T) {
	svc := NewEmployeeService(newFakeRepository(testRecord(7), testRecord(8)))

	_, err := svc.GetProfile(context.Background(), employeeSession(7), 8, false)
	assert.ErrorIs(t, err, user.ErrHRAccessRequired)
}

func TestGetProfile_HRReadsAnyRecord(t *testing.T) {
	svc := NewEmployeeService(newFakeRepository(testRecord(7)))

	got, err := svc.GetProfile(context.Background(), hrSession(), 7, false)
	require.NoError(t, err)
	require.NotNil(t, got.Compensation)
	assert.Len(t, got.PerformanceReviews, 1)
}

func TestGetProfile_NoEmployeeRecord(t *testing.T) {
	svc := NewEmployeeService(newFakeRepository())

	_, err := svc.GetProfile(context.Background(), employeeSession(0), 0, false)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListProfiles_HROnly(t *testing.T) {
	svc := NewEmployeeService(newFakeRepository(testRecord(7), testRecord(8)))

	got, err := svc.ListProfiles(context.Background(), hrSession())
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, p := range got {
		assert.NotNil(t, p.Compensation)
	}

	_, err = svc.ListProfiles(context.Background(), employeeSession(7))
	assert.ErrorIs(t, err, user.ErrHRAccessRequired)
}

func TestUpdateProfile_AllowedEdit(t *testing.T) {
	repo := newFakeRepository(testRecord(7))
	svc := NewEmployeeService(repo)

	got, err := svc.UpdateProfile(context.Background(), employeeSession(7), 0, employee.UpdateProfileRequest{
		Edits: employee.Edits{"contact.phone": "+15550109999"},
	})
	require.NoError(t, err)

	assert.Equal(t, "+15550109999", got.Contact.Phone)
	assert.Equal(t, 1, repo.updates)
	stored, _ := repo.GetByID(context.Background(), 7)
	assert.Equal(t, "+15550109999", stored.Contact.Phone)
}

func TestUpdateProfile_ForbiddenEditWritesNothing(t *testing.T) {
	repo := newFakeRepository(testRecord(7))
	svc := NewEmployeeService(repo)

	_, err := svc.UpdateProfile(context.Background(), employeeSession(7), 0, employee.UpdateProfileRequest{
		Edits: employee.Edits{
			"contact.phone":           "+15550109999",
			"compensation.baseSalary": 999999.0,
		},
	})

	assert.ErrorIs(t, err, employee.ErrFieldForbidden)
	assert.Equal(t, 0, repo.updates)
	stored, _ := repo.GetByID(context.Background(), 7)
	assert.Equal(t, "+15550100100", stored.Contact.Phone)
}

func TestUpdateProfile_HREditsRestrictedField(t *testing.T) {
	repo := newFakeRepository(testRecord(7))
	svc := NewEmployeeService(repo)

	got, err := svc.UpdateProfile(context.Background(), hrSession(), 7, employee.UpdateProfileRequest{
		Edits: employee.Edits{"compensation.baseSalary": 95000.0},
	})
	require.NoError(t, err)

	require.NotNil(t, got.Compensation)
	assert.True(t, got.Compensation.BaseSalary.Equal(decimal.NewFromInt(95000)))
}
