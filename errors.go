package main

import (
	"net/http"
)

// Error codes returned in the "code" field of every error body
const (
	codeValidation   = "VALIDATION_ERROR"
	codeUnauthorized = "UNAUTHORIZED"
	codeNotFound     = "NOT_FOUND"
	codeConflict     = "CONFLICT"
	codeInternal     = "INTERNAL_ERROR"
)

// APIError represents a structured API error response
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// writeError writes a structured error response
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, APIError{
		Code:    code,
		Message: message,
	})
}

func badRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, codeValidation, message)
}

// unauthorized reminds the client that a bearer token is expected
func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(w, http.StatusUnauthorized, codeUnauthorized, message)
}

func notFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, codeNotFound, message)
}

func conflict(w http.ResponseWriter, message string) {
	writeError(w, http.StatusConflict, codeConflict, message)
}

func (a *App) serverError(w http.ResponseWriter, r *http.Request, err error) {
	a.logger.WithError(err).WithFields(requestFields(r)).Error("request failed")
	writeError(w, http.StatusInternalServerError, codeInternal, http.StatusText(http.StatusInternalServerError))
}

// routeNotFound answers any request that matches no route
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	notFound(w, "Route not found")
}
