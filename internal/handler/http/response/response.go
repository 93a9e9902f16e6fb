package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the standard JSON response shape
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// Success writes a 200 response with data
func Success(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// Created writes a 201 response with data
func Created(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, Envelope{Success: true, Data: data})
}

// NoContent writes a 204 response
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// BadRequest writes a 400 error response
func BadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, Envelope{
		Success: false,
		Error:   &ErrorBody{Code: "BAD_REQUEST", Message: message},
	})
}

// ValidationError writes a 422 error response with field details
func ValidationError(w http.ResponseWriter, details any) {
	writeJSON(w, http.StatusUnprocessableEntity, Envelope{
		Success: false,
		Error:   &ErrorBody{Code: "VALIDATION_ERROR", Message: "Validation failed", Details: details},
	})
}

// Unauthorized writes a 401 error response
func Unauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, Envelope{
		Success: false,
		Error:   &ErrorBody{Code: "UNAUTHORIZED", Message: message},
	})
}

// Forbidden writes a 403 error response
func Forbidden(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusForbidden, Envelope{
		Success: false,
		Error:   &ErrorBody{Code: "FORBIDDEN", Message: message},
	})
}

// NotFound writes a 404 error response
func NotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, Envelope{
		Success: false,
		Error:   &ErrorBody{Code: "NOT_FOUND", Message: message},
	})
}

// Conflict writes a 409 error response
func Conflict(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusConflict, Envelope{
		Success: false,
		Error:   &ErrorBody{Code: "CONFLICT", Message: message},
	})
}

// InternalServerError writes a 500 error response
func InternalServerError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, Envelope{
		Success: false,
		Error:   &ErrorBody{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"},
	})
}
