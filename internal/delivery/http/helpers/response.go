package helpers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"communityday/internal/domain"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest           = "bad_request"
	ErrCodeUnauthorized         = "unauthorized"
	ErrCodeForbidden            = "forbidden"
	ErrCodeNotFound             = "not_found"
	ErrCodeConflict             = "conflict"
	ErrCodePayloadTooLarge      = "payload_too_large"
	ErrCodeUnsupportedMediaType = "unsupported_media_type"
	ErrCodeInternalError        = "internal_error"
)

const internalErrorMessage = "internal server error"

// APIError is the error object in the standardized API response envelope.
// swagger:model APIError
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the standardized envelope for all API responses.
// On success: Data is set, Error is nil. On error: Data is nil, Error is set.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with the given data and error set to nil.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{Data: data, Error: nil})
}

// WriteJSONError sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with data nil and the given error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{
		Data:  nil,
		Error: &APIError{Code: code, Message: message},
	})
}

type errorMapping struct {
	target error
	status int
	code   string
}

// Checked in order; the first match wins.
var errorMappings = []errorMapping{
	{domain.ErrInvalidInput, http.StatusBadRequest, ErrCodeBadRequest},
	{domain.ErrInvalidReference, http.StatusBadRequest, ErrCodeBadRequest},
	{domain.ErrInvalidMediaURL, http.StatusBadRequest, ErrCodeBadRequest},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, ErrCodeUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden, ErrCodeForbidden},
	{domain.ErrNotFound, http.StatusNotFound, ErrCodeNotFound},
	{domain.ErrDuplicate, http.StatusConflict, ErrCodeConflict},
	{domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge},
	{domain.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType, ErrCodeUnsupportedMediaType},
}

// StatusForError returns the HTTP status and error code for err. Unknown errors map to 500.
func StatusForError(err error) (int, string) {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, ErrCodeInternalError
}

// WriteServiceError writes the envelope for an error returned by a service.
// Internal errors are logged and answered with a generic message.
func WriteServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status, code := StatusForError(err)
	if status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, status, code, internalErrorMessage)
		return
	}
	WriteJSONError(w, status, code, clientMessage(err))
}

// clientMessage drops the operation prefixes added while wrapping, keeping the
// sentinel text and whatever detail follows it.
func clientMessage(err error) string {
	msg := err.Error()
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		if i := strings.Index(msg, m.target.Error()); i >= 0 {
			msg = msg[i:]
		}
		if detail, ok := strings.CutPrefix(msg, domain.ErrInvalidInput.Error()+": "); ok {
			return detail
		}
		return msg
	}
	return msg
}
