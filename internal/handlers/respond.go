package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error envelope returned by every handler
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// MessageResponse is a plain success acknowledgement
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
