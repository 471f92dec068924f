package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/homescout/listing-service/internal/dtos"
)

func TestHandleAppError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "project not found",
			err:    NewNotFoundError(EntityProject, "p1"),
			status: http.StatusNotFound,
			body:   `{"success":false,"message":"Project not found"}`,
		},
		{
			name:   "wrapped unit not found",
			err:    fmt.Errorf("lookup: %w", NewNotFoundError(EntityUnit, "u1")),
			status: http.StatusNotFound,
			body:   `{"success":false,"message":"Unit not found"}`,
		},
		{
			name: "validation",
			err: &ValidationError{Details: []dtos.ValidationErrorDetail{{
				Message: "Field 'name' is required", Field: "name", Path: []string{"name"}, Type: "validation_required",
			}}},
			status: http.StatusBadRequest,
			body:   `{"success":false,"errors":[{"message":"Field 'name' is required","field":"name","path":["name"],"type":"validation_required"}]}`,
		},
		{
			name:   "creation error hides cause",
			err:    NewCreationError(errors.New("E11000 duplicate key")),
			status: http.StatusInternalServerError,
			body:   `{"success":false,"message":"Could not create unit"}`,
		},
		{
			name:   "fetch error",
			err:    NewFetchError(errors.New("socket closed")),
			status: http.StatusInternalServerError,
			body:   `{"success":false,"message":"Could not fetch units"}`,
		},
		{
			name:   "unclassified",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			body:   `{"success":false,"message":"Something went wrong"}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleAppError(rec, httptest.NewRequest(http.MethodPost, "/api/units", nil), tc.err)
			require.Equal(t, tc.status, rec.Code)
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			require.JSONEq(t, tc.body, rec.Body.String())
		})
	}
}

func TestHandleAppErrorLogsRequestID(t *testing.T) {
	var logs bytes.Buffer
	Logger.SetOutput(&logs)

	req := httptest.NewRequest(http.MethodGet, "/api/units/x", nil)
	req = req.WithContext(context.WithValue(req.Context(), CtxKeyRequestID, "req-42"))

	HandleAppError(httptest.NewRecorder(), req, NewFetchError(errors.New("socket closed")))
	require.Contains(t, logs.String(), "request_id=req-42")
	require.Contains(t, logs.String(), "code=fetch_error")

	logs.Reset()
	HandleAppError(httptest.NewRecorder(), req, &ValidationError{})
	require.Contains(t, logs.String(), "request_id=req-42")
}

func TestRequestIDFromContext(t *testing.T) {
	require.Empty(t, RequestIDFromContext(context.Background()))
	ctx := context.WithValue(context.Background(), CtxKeyRequestID, "req-7")
	require.Equal(t, "req-7", RequestIDFromContext(ctx))
}

func TestIsNotFound(t *testing.T) {
	err := fmt.Errorf("wrap: %w", NewNotFoundError(EntityAmenity, "a1"))
	require.True(t, IsNotFound(err, EntityAmenity))
	require.False(t, IsNotFound(err, EntityProject))
	require.False(t, IsNotFound(errors.New("other"), EntityAmenity))
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	require.True(t, errors.Is(NewCreationError(cause), cause))
}
