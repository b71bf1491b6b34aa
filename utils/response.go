package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error      string      `json:"error,omitempty"`
	Message    string      `json:"message,omitempty"`
	StatusCode int         `json:"statusCode,omitempty"`
	Details    interface{} `json:"details,omitempty"`
}

// CreatedResponse is the body of a successful create. The record is always
// under "user", teams included.
type CreatedResponse struct {
	Message    string      `json:"message"`
	User       interface{} `json:"user"`
	StatusCode int         `json:"statusCode"`
}

// MessageResponse carries a message and a status code in the body.
type MessageResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondWithError writes {"error": message, "statusCode": code} plus details when set.
func RespondWithError(w http.ResponseWriter, code int, message string, details interface{}) {
	RespondWithJSON(w, code, ErrorResponse{
		Error:      message,
		StatusCode: code,
		Details:    details,
	})
}

// RespondWithMessage writes {"message": message, "statusCode": code}.
func RespondWithMessage(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, MessageResponse{Message: message, StatusCode: code})
}
