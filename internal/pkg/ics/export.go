package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/stafftrack/activity-backend-go/internal/domain/activity"
)

// Export renders activities as an iCalendar feed of all-day events, so the
// schedule can be subscribed to from any external calendar client.
func Export(activities []activity.Activity, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)

	for _, a := range activities {
		event := cal.AddEvent(fmt.Sprintf("activity-%d@stafftrack", a.ID))
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(a.Interval.Start.MidnightIn(time.UTC))
		// DTEND is exclusive for all-day events; the interval end is
		// inclusive.
		event.SetAllDayEndAt(a.Interval.End.AddDays(1).MidnightIn(time.UTC))
		event.SetSummary(fmt.Sprintf("%s - employee #%d", a.Type, a.EmployeeID))
		if a.Description != "" {
			event.SetDescription(a.Description)
		}
	}

	return cal.Serialize()
}
