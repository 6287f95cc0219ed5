package response

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// ErrorBody is the error payload; Code is stable and meant for clients to branch on.
type ErrorBody struct {
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Error codes
const (
	CodeValidationFailed = "validation_failed"
	CodeInvalidDate      = "invalid_date"
	CodeInvalidTime      = "invalid_time"
	CodeDateMismatch     = "date_mismatch"
	CodeInvertedInterval = "inverted_interval"
	CodeOutOfBounds      = "out_of_bounds"
	CodeSlotNotFound     = "slot_not_found"
	CodePatternNotFound  = "pattern_not_found"
	CodePatternConflict  = "pattern_conflict"
	CodeNotFound         = "not_found"
	CodeUnauthorized     = "unauthorized"
	CodeForbidden        = "forbidden"
	CodeLockTimeout      = "lock_timeout"
	CodeInternal         = "internal_error"
)

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(w http.ResponseWriter, statusCode int, message string, code string) {
	JSON(w, statusCode, Response{
		Success: false,
		Message: message,
		Error:   ErrorBody{Code: code},
	})
}

func ValidationError(w http.ResponseWriter, fields map[string]string) {
	JSON(w, http.StatusBadRequest, Response{
		Success: false,
		Message: "Validation failed",
		Error:   ErrorBody{Code: CodeValidationFailed, Fields: fields},
	})
}

func BadRequest(w http.ResponseWriter, message string, code string) {
	if code == "" {
		code = CodeValidationFailed
	}
	Error(w, http.StatusBadRequest, message, code)
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message, CodeUnauthorized)
}

func NotFound(w http.ResponseWriter, message string, code string) {
	if message == "" {
		message = "Resource not found"
	}
	if code == "" {
		code = CodeNotFound
	}
	Error(w, http.StatusNotFound, message, code)
}

func Conflict(w http.ResponseWriter, message string, code string) {
	Error(w, http.StatusConflict, message, code)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message, CodeInternal)
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Forbidden"
	}
	Error(w, http.StatusForbidden, message, CodeForbidden)
}
