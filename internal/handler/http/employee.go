package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stafftrack/activity-backend-go/internal/domain/employee"
	"github.com/stafftrack/activity-backend-go/internal/handler/http/middleware"
	"github.com/stafftrack/activity-backend-go/internal/handler/http/response"
)

type EmployeeHandler struct {
	employeeService employee.Service
}

func NewEmployeeHandler(employeeService employee.Service) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// Me handles GET /api/v1/employees/me. Pass reveal=compensation to see
// salary fields; without it they are redacted for non-HR callers.
func (h *EmployeeHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	reveal := r.URL.Query().Get("reveal") == "compensation"

	result, err := h.employeeService.GetProfile(r.Context(), session, 0, reveal)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateMe handles PUT /api/v1/employees/me
func (h *EmployeeHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req employee.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.employeeService.UpdateProfile(r.Context(), session, 0, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List handles GET /api/v1/employees, restricted to HR.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	result, err := h.employeeService.ListProfiles(r.Context(), session)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get handles GET /api/v1/employees/{employeeID}, restricted to HR.
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "employeeID must be a positive integer")
		return
	}

	result, err := h.employeeService.GetProfile(r.Context(), session, id, true)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update handles PUT /api/v1/employees/{employeeID}, restricted to HR.
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "employeeID must be a positive integer")
		return
	}

	var req employee.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.employeeService.UpdateProfile(r.Context(), session, id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
