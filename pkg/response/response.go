package response

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the `{"message": ...}` body used for registration
// results and every error the API returns.
type MessageResponse struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Message(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, MessageResponse{Message: message})
}

func BadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Bad Request"
	}
	Message(w, http.StatusBadRequest, message)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Message(w, http.StatusNotFound, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal Server Error"
	}
	Message(w, http.StatusInternalServerError, message)
}
