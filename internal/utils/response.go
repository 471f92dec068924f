package utils

import (
	"encoding/json"
	"net/http"

	"github.com/homescout/listing-service/internal/dtos"
)

// Error codes. They are logged with every failed response; the public body
// only carries the message.
const (
	ErrCodeInvalidPayload = "invalid_payload"
	ErrCodeValidation     = "validation_error"
	ErrCodeNotFound       = "not_found"
	ErrCodeCreation       = "creation_error"
	ErrCodeFetch          = "fetch_error"
	ErrCodeInternal       = "internal_server_error"
	ErrCodeUnavailable    = "service_unavailable"
)

// ErrorResponse is the body of every non-2xx response except validation
// failures.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the body of a 400 caused by schema violations.
type ValidationErrorResponse struct {
	Success bool                         `json:"success"`
	Errors  []dtos.ValidationErrorDetail `json:"errors"`
}

// RespondErrorWithCode writes {success:false, message} and logs the
// internal error, if any, next to the code and the request id.
func RespondErrorWithCode(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	errorCode string,
	publicMessage string,
	devErrs ...error,
) {
	RespondWithJSON(w, status, ErrorResponse{Success: false, Message: publicMessage})

	fields := requestFields(r)
	fields["status"] = status
	fields["code"] = errorCode
	if len(devErrs) > 0 && devErrs[0] != nil {
		fields["error"] = devErrs[0].Error()
	}
	entry := Logger.WithFields(fields)
	if status >= http.StatusInternalServerError {
		entry.Error(publicMessage)
	} else {
		entry.Warn(publicMessage)
	}
}

// RespondWithJSON for successful cases
func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
