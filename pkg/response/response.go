package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the error payload shape shared by every non-2xx response.
type ErrorBody struct {
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

// CreatedBody wraps a newly created resource.
type CreatedBody struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Created(w http.ResponseWriter, message string, data interface{}) {
	JSON(w, http.StatusCreated, CreatedBody{Message: message, Data: data})
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorBody{Message: message})
}

func ValidationError(w http.ResponseWriter, message string, errors interface{}) {
	JSON(w, http.StatusBadRequest, ErrorBody{Message: message, Errors: errors})
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message)
}
