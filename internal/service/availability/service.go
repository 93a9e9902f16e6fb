package availability

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/stafftrack/activity-backend-go/internal/domain/activity"
	activitysvc "github.com/stafftrack/activity-backend-go/internal/service/activity"
	"github.com/stafftrack/activity-backend-go/internal/pkg/sse"
)

// ReferenceHour is the assumed start-of-day time for activities. The source
// data carries no time-of-day, so same-day countdowns run toward 09:00
// local; from 09:00 on the activity counts as in progress.
const ReferenceHour = 9

// DefaultTickInterval matches the once-per-minute recomputation of the
// dashboard countdown.
const DefaultTickInterval = time.Minute

type Status string

const (
	StatusNone       Status = "none"
	StatusFuture     Status = "future"
	StatusToday      Status = "today"
	StatusInProgress Status = "in-progress"
)

// State is the full countdown output. It is recomputed whole on every tick
// and on every activity-set change, never patched field by field.
type State struct {
	Status   Status                     `json:"status"`
	Label    string                     `json:"label,omitempty"`
	Activity *activity.ActivityResponse `json:"activity,omitempty"`
}

func (s State) equal(o State) bool {
	if s.Status != o.Status || s.Label != o.Label {
		return false
	}
	if (s.Activity == nil) != (o.Activity == nil) {
		return false
	}
	return s.Activity == nil || s.Activity.ID == o.Activity.ID
}

// Countdown computes time-to-next-activity per employee and pushes changes
// to SSE subscribers. It owns exactly one ticker; Stop is safe to call more
// than once.
type Countdown struct {
	store    *activitysvc.Store
	hub      *sse.Hub
	clock    func() time.Time
	interval time.Duration

	mu   sync.Mutex
	last map[string]State

	done     chan struct{}
	stopOnce sync.Once
}

type Option func(*Countdown)

// WithClock overrides the time source, for tests.
func WithClock(clock func() time.Time) Option {
	return func(c *Countdown) { c.clock = clock }
}

func WithTickInterval(d time.Duration) Option {
	return func(c *Countdown) { c.interval = d }
}

func NewCountdown(store *activitysvc.Store, hub *sse.Hub, opts ...Option) *Countdown {
	c := &Countdown{
		store:    store,
		hub:      hub,
		clock:    time.Now,
		interval: DefaultTickInterval,
		last:     make(map[string]State),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ComputeFor derives the countdown state for one employee at the given
// instant. Pure apart from the store snapshot read.
func (c *Countdown) ComputeFor(now time.Time, employeeID int64) State {
	act, ok := c.store.NearestFutureFor(now, employeeID)
	if !ok {
		return State{Status: StatusNone}
	}
	resp := activity.ToResponse(act)

	today := activity.DateOf(now)
	start := act.Interval.Start

	if start.After(today) {
		hours := start.MidnightIn(now.Location()).Sub(now).Hours()
		days := int(math.Ceil(hours / 24))
		if days < 1 {
			days = 1
		}
		return State{
			Status:   StatusFuture,
			Label:    fmt.Sprintf("%d day%s", days, plural(days)),
			Activity: &resp,
		}
	}

	// Starts today: count toward the reference start time.
	ref := time.Date(today.Year(), today.Month(), today.Day(), ReferenceHour, 0, 0, 0, now.Location())
	if now.Before(ref) {
		remaining := ref.Sub(now)
		h := int(remaining.Hours())
		m := int(remaining.Minutes()) % 60
		var label string
		if h > 0 {
			label = fmt.Sprintf("%d hour%s and %d minute%s", h, plural(h), m, plural(m))
		} else {
			label = fmt.Sprintf("%d minute%s", m, plural(m))
		}
		return State{Status: StatusToday, Label: label, Activity: &resp}
	}

	return State{Status: StatusInProgress, Label: "in progress now", Activity: &resp}
}

// Start launches the periodic tick. Call Stop when the consumer goes away.
func (c *Countdown) Start() {
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-c.done:
				return
			case <-ticker.C:
				c.Recompute()
			}
		}
	}()
	slog.Info("availability countdown started", "interval", c.interval)
}

// Stop cancels the ticker. Repeated calls are no-ops.
func (c *Countdown) Stop() {
	c.stopOnce.Do(func() {
		close(c.done)
		slog.Info("availability countdown stopped")
	})
}

// Recompute runs one pass over every subscribed employee and publishes the
// states that changed since the last pass. Invoked by the ticker and after
// every activity-store refresh.
func (c *Countdown) Recompute() {
	now := c.clock()

	c.mu.Lock()
	defer c.mu.Unlock()

	active := make(map[string]struct{})
	for _, key := range c.hub.Keys() {
		active[key] = struct{}{}

		employeeID, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		state := c.ComputeFor(now, employeeID)
		if prev, ok := c.last[key]; ok && prev.equal(state) {
			continue
		}
		c.last[key] = state
		c.hub.Publish(key, sse.Event{
			Key:   key,
			Event: "countdown",
			Data:  state,
		})
	}

	// Drop state for employees nobody is watching anymore.
	for key := range c.last {
		if _, ok := active[key]; !ok {
			delete(c.last, key)
		}
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
