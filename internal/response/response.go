// Package response provides shared JSON response helpers for HTTP handlers.
//
// The wire shapes mirror the public contract of the original API: list reads
// return {status,data}, writes return {success,message,...} and every failure
// is a plain {error} object.
package response

import (
	"encoding/json"
	"net/http"
)

// ListEnvelope wraps a successful list read.
type ListEnvelope struct {
	Status int         `json:"status"`
	Data   interface{} `json:"data"`
}

// SuccessEnvelope wraps a successful write.
type SuccessEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// DeleteEnvelope wraps a successful delete and echoes the removed record.
type DeleteEnvelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	DeletedDoc interface{} `json:"deletedDoc"`
}

// ErrorEnvelope is the body of every failed request.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

// JSON writes a JSON-encoded payload with the given HTTP status code.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// List writes a 200 response with the list envelope.
func List(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, ListEnvelope{Status: http.StatusOK, Data: data})
}

// Success writes a 200 response with a message and data.
func Success(w http.ResponseWriter, message string, data interface{}) {
	JSON(w, http.StatusOK, SuccessEnvelope{Success: true, Message: message, Data: data})
}

// Deleted writes a 200 response echoing the deleted record.
func Deleted(w http.ResponseWriter, message string, doc interface{}) {
	JSON(w, http.StatusOK, DeleteEnvelope{Success: true, Message: message, DeletedDoc: doc})
}

// Error writes an error response with the given status and message.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorEnvelope{Error: message})
}

// BadRequest writes a 400 response.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// Forbidden writes a 403 response.
func Forbidden(w http.ResponseWriter, message string) {
	Error(w, http.StatusForbidden, message)
}

// NotFound writes a 404 response.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// InternalError writes a 500 response with a generic message.
func InternalError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "internal server error")
}
