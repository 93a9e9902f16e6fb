package activity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafftrack/activity-backend-go/internal/domain/activity"
	"github.com/stafftrack/activity-backend-go/internal/pkg/validator"
)

// fakeRepository is an in-memory activity.Repository for service tests.
type fakeRepository struct {
	activities []activity.Activity
	nextID     int64
}

func newFakeRepository(entries ...activity.Activity) *fakeRepository {
	nextID := int64(1)
	for _, a := range entries {
		if a.ID >= nextID {
			nextID = a.ID + 1
		}
	}
	return &fakeRepository{activities: entries, nextID: nextID}
}

func (f *fakeRepository) ListAll(ctx context.Context) ([]activity.Activity, error) {
	out := make([]activity.Activity, len(f.activities))
	copy(out, f.activities)
	return out, nil
}

func (f *fakeRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]activity.Activity, error) {
	var out []activity.Activity
	for _, a := range f.activities {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepository) Insert(ctx context.Context, a activity.Activity) (activity.Activity, error) {
	a.ID = f.nextID
	f.nextID++
	f.activities = append(f.activities, a)
	return a, nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id int64) (activity.Activity, error) {
	for _, a := range f.activities {
		if a.ID == id {
			return a, nil
		}
	}
	return activity.Activity{}, activity.ErrActivityNotFound
}

func newTestService(t *testing.T, entries ...activity.Activity) (*ActivityServiceImpl, *Store) {
	t.Helper()
	store := NewStore()
	svc := NewActivityService(newFakeRepository(entries...), store)
	require.NoError(t, svc.Refresh(context.Background()))
	return svc, store
}

func TestService_Refresh_PopulatesStore(t *testing.T) {
	_, store := newTestService(t,
		mustActivity(t, 1, 10, activity.TypeVacation, "01/06/2023", "05/06/2023"),
		mustActivity(t, 2, 11, activity.TypeMeeting, "03/06/2023", "03/06/2023"),
	)
	assert.Equal(t, 2, store.Len())
}

func TestService_List_DefaultSortByDate(t *testing.T) {
	svc, _ := newTestService(t,
		mustActivity(t, 1, 10, activity.TypeVacation, "10/06/2023", "12/06/2023"),
		mustActivity(t, 2, 11, activity.TypeMeeting, "03/06/2023", "03/06/2023"),
		mustActivity(t, 3, 12, activity.TypeTraining, "05/06/2023", "07/06/2023"),
	)

	got, err := svc.List(context.Background(), activity.ListFilter{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "03/06/2023", got[0].StartDate)
	assert.Equal(t, "05/06/2023", got[1].StartDate)
	assert.Equal(t, "10/06/2023", got[2].StartDate)
}

func TestService_List_FilterByType(t *testing.T) {
	svc, _ := newTestService(t,
		mustActivity(t, 1, 10, activity.TypeVacation, "01/06/2023", "05/06/2023"),
		mustActivity(t, 2, 11, activity.TypeMeeting, "03/06/2023", "03/06/2023"),
	)

	got, err := svc.List(context.Background(), activity.ListFilter{Type: "vacation"})
	require.NoError(t, err)
	require.Len(t, got, 1, "type filter is case-insensitive")
	assert.Equal(t, activity.TypeVacation, got[0].ActivityType)
}

func TestService_List_FilterByEmployee(t *testing.T) {
	svc, _ := newTestService(t,
		mustActivity(t, 1, 10, activity.TypeVacation, "01/06/2023", "05/06/2023"),
		mustActivity(t, 2, 11, activity.TypeMeeting, "03/06/2023", "03/06/2023"),
	)

	got, err := svc.List(context.Background(), activity.ListFilter{EmployeeID: 11})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestService_List_SortByType(t *testing.T) {
	svc, _ := newTestService(t,
		mustActivity(t, 1, 10, activity.TypeVacation, "01/06/2023", "05/06/2023"),
		mustActivity(t, 2, 11, activity.TypeMeeting, "03/06/2023", "03/06/2023"),
	)

	got, err := svc.List(context.Background(), activity.ListFilter{SortBy: activity.SortByType})
	require.NoError(t, err)
	assert.Equal(t, activity.TypeMeeting, got[0].ActivityType)
	assert.Equal(t, activity.TypeVacation, got[1].ActivityType)
}

func TestService_List_InvalidSortKey(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.List(context.Background(), activity.ListFilter{SortBy: "priority"})
	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)
}

func TestService_Create_RefreshesStore(t *testing.T) {
	svc, store := newTestService(t)

	created, err := svc.Create(context.Background(), activity.CreateActivityRequest{
		EmployeeID:   10,
		ActivityType: activity.TypeVacation,
		StartDate:    "15/05/2023",
		EndDate:      "20/05/2023",
		Description:  "Annual leave",
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, 6, created.DurationDays)
	assert.Equal(t, "bg-blue-100", created.Style.ColorClass)
	assert.Equal(t, 1, store.Len(), "store sees the new activity")
}

func TestService_Create_RejectsBadDates(t *testing.T) {
	svc, store := newTestService(t)

	cases := []activity.CreateActivityRequest{
		{EmployeeID: 10, ActivityType: "Vacation", StartDate: "2023-05-15", EndDate: "20/05/2023"},
		{EmployeeID: 10, ActivityType: "Vacation", StartDate: "15/05/2023", EndDate: "31/02/2023"},
		{EmployeeID: 10, ActivityType: "Vacation", StartDate: "20/05/2023", EndDate: "15/05/2023"},
		{EmployeeID: 0, ActivityType: "Vacation", StartDate: "15/05/2023", EndDate: "20/05/2023"},
		{EmployeeID: 10, ActivityType: "", StartDate: "15/05/2023", EndDate: "20/05/2023"},
	}
	for _, req := range cases {
		_, err := svc.Create(context.Background(), req)
		var errs validator.ValidationErrors
		assert.ErrorAs(t, err, &errs, "request %+v", req)
	}
	assert.Equal(t, 0, store.Len(), "nothing persisted")
}

func TestService_ListByEmployee(t *testing.T) {
	svc, _ := newTestService(t,
		mustActivity(t, 1, 10, activity.TypeVacation, "10/06/2023", "12/06/2023"),
		mustActivity(t, 2, 10, activity.TypeMeeting, "03/06/2023", "03/06/2023"),
		mustActivity(t, 3, 11, activity.TypeTraining, "05/06/2023", "07/06/2023"),
	)

	got, err := svc.ListByEmployee(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "03/06/2023", got[0].StartDate, "sorted by date")
}

func TestService_Types(t *testing.T) {
	svc, _ := newTestService(t,
		mustActivity(t, 1, 10, activity.TypeVacation, "10/06/2023", "12/06/2023"),
		mustActivity(t, 2, 11, activity.TypeMeeting, "03/06/2023", "03/06/2023"),
	)

	got, err := svc.Types(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Meeting", "Vacation"}, got)
}
