package calendar

import (
	"time"

	"github.com/stafftrack/activity-backend-go/internal/domain/activity"
)

// GridSize is the fixed cell count of a month view: 6 rows of 7 days,
// week starting Sunday. Every month renders the same size grid; short
// months show up to two full rows of adjacent-month overflow, which keeps
// the layout stable on navigation.
const GridSize = 42

// Cell is one day of the month grid, built fresh per request.
type Cell struct {
	Date           string                      `json:"date"`
	InCurrentMonth bool                        `json:"in_current_month"`
	Activities     []activity.ActivityResponse `json:"activities"`
}

// DayIndex is the slice of the activity store the builder needs.
type DayIndex interface {
	OnDay(day activity.Date) []activity.Activity
}

type Builder struct {
	index DayIndex
}

func NewBuilder(index DayIndex) *Builder {
	return &Builder{index: index}
}

// Build produces the 42-cell grid for the month containing anchor. The grid
// is purely a function of the anchor and the store contents; there is no
// hidden state between navigations.
func (b *Builder) Build(anchor activity.Date) []Cell {
	monthStart := activity.NewDate(anchor.Year(), anchor.Month(), 1)
	leadingDays := int(monthStart.Weekday()) // 0 = Sunday

	cells := make([]Cell, 0, GridSize)
	day := monthStart.AddDays(-leadingDays)
	for len(cells) < GridSize {
		cells = append(cells, Cell{
			Date:           day.String(),
			InCurrentMonth: day.Month() == monthStart.Month() && day.Year() == monthStart.Year(),
			Activities:     activity.ToResponses(b.index.OnDay(day)),
		})
		day = day.AddDays(1)
	}
	return cells
}

// MonthResponse is the calendar endpoint payload.
type MonthResponse struct {
	Month string `json:"month"` // "MM/yyyy"
	Cells []Cell `json:"cells"`
}

// BuildMonth renders the grid for a parsed month anchor instant.
func (b *Builder) BuildMonth(anchor time.Time) MonthResponse {
	date := activity.DateOf(anchor)
	return MonthResponse{
		Month: anchor.Format("01/2006"),
		Cells: b.Build(date),
	}
}
