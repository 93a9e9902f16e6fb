package activity

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/stafftrack/activity-backend-go/internal/domain/activity"
)

type ActivityServiceImpl struct {
	repo      activity.Repository
	store     *Store
	onRefresh func()
}

func NewActivityService(repo activity.Repository, store *Store) *ActivityServiceImpl {
	return &ActivityServiceImpl{
		repo:  repo,
		store: store,
	}
}

var _ activity.Service = (*ActivityServiceImpl)(nil)

// OnRefresh registers a callback invoked after every store repopulation,
// periodic or mutation-driven. Set once during wiring, before any Refresh
// runs.
func (s *ActivityServiceImpl) OnRefresh(fn func()) {
	s.onRefresh = fn
}

// Refresh re-populates the store wholesale from the repository. Registered
// as a periodic job and invoked after every mutation, so reads between
// refreshes always see one consistent snapshot.
func (s *ActivityServiceImpl) Refresh(ctx context.Context) error {
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		return err
	}
	s.store.Replace(list)
	slog.Debug("activity store refreshed", "count", len(list))
	if s.onRefresh != nil {
		s.onRefresh()
	}
	return nil
}

// List implements activity.Service.
func (s *ActivityServiceImpl) List(ctx context.Context, filter activity.ListFilter) ([]activity.ActivityResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	all := s.store.All()
	filtered := all[:0]
	for _, a := range all {
		if filter.Type != "" && !strings.EqualFold(a.Type, filter.Type) {
			continue
		}
		if filter.EmployeeID != 0 && a.EmployeeID != filter.EmployeeID {
			continue
		}
		filtered = append(filtered, a)
	}

	sortActivities(filtered, filter.SortBy)
	return activity.ToResponses(filtered), nil
}

// ListByEmployee implements activity.Service.
func (s *ActivityServiceImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]activity.ActivityResponse, error) {
	list, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	sortActivities(list, activity.SortByDate)
	return activity.ToResponses(list), nil
}

// Create implements activity.Service. The submission flow validates the
// request; the store is re-populated wholesale afterwards so queries pick
// the new activity up atomically.
func (s *ActivityServiceImpl) Create(ctx context.Context, req activity.CreateActivityRequest) (activity.ActivityResponse, error) {
	if err := req.Validate(); err != nil {
		return activity.ActivityResponse{}, err
	}

	entity, err := req.ToEntity()
	if err != nil {
		return activity.ActivityResponse{}, err
	}

	created, err := s.repo.Insert(ctx, entity)
	if err != nil {
		return activity.ActivityResponse{}, err
	}

	if err := s.Refresh(ctx); err != nil {
		slog.Error("activity store refresh after create failed", "error", err)
	}
	return activity.ToResponse(created), nil
}

// Types implements activity.Service.
func (s *ActivityServiceImpl) Types(ctx context.Context) ([]string, error) {
	return s.store.Types(), nil
}

func sortActivities(list []activity.Activity, sortBy string) {
	switch sortBy {
	case activity.SortByType:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Type < list[j].Type
		})
	case activity.SortByEmployee:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].EmployeeID < list[j].EmployeeID
		})
	default:
		sort.SliceStable(list, func(i, j int) bool {
			if c := list[i].Interval.Compare(list[j].Interval); c != 0 {
				return c < 0
			}
			return list[i].ID < list[j].ID
		})
	}
}
