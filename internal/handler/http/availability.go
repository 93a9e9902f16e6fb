package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/stafftrack/activity-backend-go/internal/domain/user"
	"github.com/stafftrack/activity-backend-go/internal/handler/http/middleware"
	"github.com/stafftrack/activity-backend-go/internal/handler/http/response"
	"github.com/stafftrack/activity-backend-go/internal/pkg/jwt"
	"github.com/stafftrack/activity-backend-go/internal/pkg/sse"
	"github.com/stafftrack/activity-backend-go/internal/service/availability"
)

type AvailabilityHandler struct {
	countdown  *availability.Countdown
	hub        *sse.Hub
	jwtService jwt.Service
}

func NewAvailabilityHandler(countdown *availability.Countdown, hub *sse.Hub, jwtService jwt.Service) *AvailabilityHandler {
	return &AvailabilityHandler{
		countdown:  countdown,
		hub:        hub,
		jwtService: jwtService,
	}
}

// Next handles GET /api/v1/availability/next. It returns the countdown
// state for the caller's employee record; HR may pass employee_id to
// look at someone else.
func (h *AvailabilityHandler) Next(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	employeeID := session.EmployeeID
	if raw := r.URL.Query().Get("employee_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.BadRequest(w, "employee_id must be a positive integer")
			return
		}
		if id != session.EmployeeID && session.Role != user.RoleHR {
			response.Forbidden(w, user.ErrHRAccessRequired.Error())
			return
		}
		employeeID = id
	}

	response.Success(w, h.countdown.ComputeFor(time.Now(), employeeID))
}

// StreamToken handles POST /api/v1/availability/stream-token. EventSource
// cannot set an Authorization header, so the client trades its access
// token for a short-lived token passed in the stream URL.
func (h *AvailabilityHandler) StreamToken(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	token, expiresIn, err := h.jwtService.GenerateStreamToken(session.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]any{
		"token":      token,
		"expires_in": expiresIn,
	})
}

// Stream handles GET /api/v1/availability/stream?token=... as an SSE
// endpoint pushing countdown changes for one employee.
func (h *AvailabilityHandler) Stream(w http.ResponseWriter, r *http.Request) {
	employeeID, err := h.jwtService.ValidateStreamToken(r.URL.Query().Get("token"))
	if err != nil {
		response.Unauthorized(w, "Invalid stream token")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	key := strconv.FormatInt(employeeID, 10)
	events, cleanup := h.hub.Subscribe(key)
	defer cleanup()

	// Send the current state right away so the client never waits a full
	// tick for its first frame.
	writeSSE(w, "countdown", h.countdown.ComputeFor(time.Now(), employeeID))
	flusher.Flush()

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": keepalive\n\n")
			flusher.Flush()
		case event, open := <-events:
			if !open {
				return
			}
			writeSSE(w, event.Event, event.Data)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, event string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload)
}
