package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/homescout/listing-service/internal/dtos"
)

const MsgSomethingWentWrong = "Something went wrong"

// EntityKind tags a NotFoundError with the kind of record that was missing.
type EntityKind string

const (
	EntityProject EntityKind = "project"
	EntityAmenity EntityKind = "amenity"
	EntityUnit    EntityKind = "unit"
)

// NotFoundError is returned for any missing Project, Amenity or Unit.
type NotFoundError struct {
	Kind EntityKind
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s_not_found: %s", e.Kind, e.ID)
}

// Message is the fixed public message for the entity kind.
func (e *NotFoundError) Message() string {
	switch e.Kind {
	case EntityProject:
		return "Project not found"
	case EntityAmenity:
		return "Amenity not found"
	case EntityUnit:
		return "Unit not found"
	default:
		return "Not found"
	}
}

func NewNotFoundError(kind EntityKind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// IsNotFound reports whether err is a NotFoundError of the given kind.
func IsNotFound(err error, kind EntityKind) bool {
	var nf *NotFoundError
	return errors.As(err, &nf) && nf.Kind == kind
}

// ValidationError carries every schema violation found in a payload.
type ValidationError struct {
	Details []dtos.ValidationErrorDetail
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d violation(s)", len(e.Details))
}

// AppError for structured error handling from services to controllers.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewCreationError wraps a persistence failure during create.
func NewCreationError(err error) error {
	return &AppError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrCodeCreation,
		Message:    "Could not create unit",
		Err:        err,
	}
}

// NewFetchError wraps a persistence failure during a read.
func NewFetchError(err error) error {
	return &AppError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrCodeFetch,
		Message:    "Could not fetch units",
		Err:        err,
	}
}

// HandleAppError is the single place where domain errors become HTTP
// responses.
func HandleAppError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		notFound   *NotFoundError
		validation *ValidationError
		appErr     *AppError
	)
	switch {
	case errors.As(err, &notFound):
		RespondErrorWithCode(w, r, http.StatusNotFound, ErrCodeNotFound, notFound.Message(), err)
	case errors.As(err, &validation):
		RespondWithJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Success: false,
			Errors:  validation.Details,
		})
		fields := requestFields(r)
		fields["status"] = http.StatusBadRequest
		fields["code"] = ErrCodeValidation
		fields["violations"] = len(validation.Details)
		Logger.WithFields(fields).Warn("Validation failed")
	case errors.As(err, &appErr):
		RespondErrorWithCode(w, r, appErr.StatusCode, appErr.Code, appErr.Message, appErr.Err)
	default:
		RespondErrorWithCode(w, r, http.StatusInternalServerError, ErrCodeInternal, MsgSomethingWentWrong, err)
	}
}
