package activity

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/stafftrack/activity-backend-go/internal/domain/activity"
)

// Store holds the in-memory activity collection behind an atomic snapshot
// pointer. Population replaces the whole snapshot; readers never observe a
// half-replaced collection and queries never fail, absence is an empty
// result.
type Store struct {
	snap atomic.Pointer[snapshot]
}

type snapshot struct {
	activities []activity.Activity
}

func NewStore() *Store {
	s := &Store{}
	s.snap.Store(&snapshot{})
	return s
}

// Replace swaps in a new immutable snapshot. The caller must not retain or
// mutate the slice afterwards.
func (s *Store) Replace(list []activity.Activity) {
	copied := make([]activity.Activity, len(list))
	copy(copied, list)
	s.snap.Store(&snapshot{activities: copied})
}

// All returns a copy of the current snapshot. Order is whatever the last
// population produced; consumers sort explicitly.
func (s *Store) All() []activity.Activity {
	cur := s.snap.Load().activities
	out := make([]activity.Activity, len(cur))
	copy(out, cur)
	return out
}

// Len reports the current snapshot size.
func (s *Store) Len() int {
	return len(s.snap.Load().activities)
}

// OnDay returns every activity whose interval contains the day. Linear scan;
// the expected scale is tens to low hundreds of activities.
func (s *Store) OnDay(day activity.Date) []activity.Activity {
	var out []activity.Activity
	for _, a := range s.snap.Load().activities {
		if a.Interval.Contains(day) {
			out = append(out, a)
		}
	}
	return out
}

// NearestFuture returns the activity with the earliest start date that is
// today (by now's calendar day) or later. Ties break on the smallest ID.
// The second return is false when no such activity exists.
func (s *Store) NearestFuture(now time.Time) (activity.Activity, bool) {
	return s.NearestFutureFor(now, 0)
}

// NearestFutureFor restricts NearestFuture to one employee's activities.
// employeeID zero matches everything.
func (s *Store) NearestFutureFor(now time.Time, employeeID int64) (activity.Activity, bool) {
	today := activity.DateOf(now)

	var best activity.Activity
	found := false
	for _, a := range s.snap.Load().activities {
		if employeeID != 0 && a.EmployeeID != employeeID {
			continue
		}
		if a.Interval.Start.Before(today) {
			continue
		}
		if !found ||
			a.Interval.Start.Before(best.Interval.Start) ||
			(a.Interval.Start.Equal(best.Interval.Start) && a.ID < best.ID) {
			best = a
			found = true
		}
	}
	return best, found
}

// Types returns the distinct activity types present, sorted, for filter
// dropdowns.
func (s *Store) Types() []string {
	seen := make(map[string]struct{})
	for _, a := range s.snap.Load().activities {
		seen[a.Type] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
