package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/stafftrack/activity-backend-go/internal/handler/http/response"
	"github.com/stafftrack/activity-backend-go/internal/pkg/ics"
	"github.com/stafftrack/activity-backend-go/internal/pkg/validator"
	activitysvc "github.com/stafftrack/activity-backend-go/internal/service/activity"
	"github.com/stafftrack/activity-backend-go/internal/service/calendar"
)

type CalendarHandler struct {
	builder *calendar.Builder
	store   *activitysvc.Store
}

func NewCalendarHandler(builder *calendar.Builder, store *activitysvc.Store) *CalendarHandler {
	return &CalendarHandler{builder: builder, store: store}
}

// Month handles GET /api/v1/calendar?month=MM/yyyy. Without the month
// parameter it renders the current month.
func (h *CalendarHandler) Month(w http.ResponseWriter, r *http.Request) {
	anchor := time.Now()

	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, ok := validator.IsValidMonthAnchor(raw)
		if !ok {
			response.BadRequest(w, "month must be in MM/yyyy format")
			return
		}
		anchor = parsed
	}

	response.Success(w, h.builder.BuildMonth(anchor))
}

// Export handles GET /api/v1/calendar/export.ics. An optional
// employee_id parameter narrows the export to one employee.
func (h *CalendarHandler) Export(w http.ResponseWriter, r *http.Request) {
	activities := h.store.All()

	if raw := r.URL.Query().Get("employee_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.BadRequest(w, "employee_id must be a positive integer")
			return
		}
		filtered := activities[:0]
		for _, a := range activities {
			if a.EmployeeID == id {
				filtered = append(filtered, a)
			}
		}
		activities = filtered
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="activities.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(ics.Export(activities, time.Now())))
}
