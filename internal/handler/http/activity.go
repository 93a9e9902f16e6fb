package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stafftrack/activity-backend-go/internal/domain/activity"
	"github.com/stafftrack/activity-backend-go/internal/handler/http/response"
)

type ActivityHandler struct {
	activityService activity.Service
}

func NewActivityHandler(activityService activity.Service) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// List handles GET /api/v1/activities. Optional query parameters:
// type, employee_id, sort_by (date|type|employee).
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := activity.ListFilter{
		Type:   r.URL.Query().Get("type"),
		SortBy: r.URL.Query().Get("sort_by"),
	}

	if raw := r.URL.Query().Get("employee_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.BadRequest(w, "employee_id must be a positive integer")
			return
		}
		filter.EmployeeID = id
	}

	result, err := h.activityService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByEmployee handles GET /api/v1/activities/user/{employeeID}
func (h *ActivityHandler) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "employeeID must be a positive integer")
		return
	}

	result, err := h.activityService.ListByEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create handles POST /api/v1/activities
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req activity.CreateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.activityService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result)
}

// Types handles GET /api/v1/activities/types
func (h *ActivityHandler) Types(w http.ResponseWriter, r *http.Request) {
	result, err := h.activityService.Types(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
