package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it with the given status code and an
// application/json content type. When marshaling fails it answers 500 and
// returns the error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ErrorResponse is the body written for every failed gateway request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    uint32 `json:"code,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

// WriteError writes an ErrorResponse with the given status.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int, message string, code uint32) {
	traceID, _ := GetTraceIDFromContext(r.Context())
	_, _ = WriteJSON(w, ErrorResponse{Error: message, Code: code, TraceID: traceID}, statusCode)
}
