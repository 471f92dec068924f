package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/homescout/listing-service/internal/dtos"
)

func TestQueryInt(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/units?limit=25&offset=abc", nil)
	require.Equal(t, 25, queryInt(r, "limit"))
	require.Equal(t, 0, queryInt(r, "offset"))
	require.Equal(t, 0, queryInt(r, "page"))
}

func TestDecodeBodyCollectsViolations(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/units", strings.NewReader(`{"name":"Villa 3","bedrooms":"three","bathrooms":"two","floor":4}`))
	rec := httptest.NewRecorder()
	var req dtos.CreateUnitRequest

	violations, ok := decodeBody(rec, r, &req)
	require.True(t, ok)
	require.Len(t, violations, 3)
	require.Equal(t, "bedrooms", violations[0].Field)
	require.Equal(t, "bathrooms", violations[1].Field)
	require.Equal(t, "floor", violations[2].Field)
	require.Equal(t, "Villa 3", *req.Name)
	// nothing written yet; the caller reports the violations
	require.Zero(t, rec.Body.Len())
}

func TestDecodeBodyRejectsMalformedJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/units", strings.NewReader(`{"name":`))
	rec := httptest.NewRecorder()
	var req dtos.CreateUnitRequest

	_, ok := decodeBody(rec, r, &req)
	require.False(t, ok)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"success":false,"message":"Invalid JSON payload"}`, rec.Body.String())
}

func TestDecodeBodyTooLarge(t *testing.T) {
	big := `{"name":"` + strings.Repeat("x", maxBodyBytes) + `"}`
	r := httptest.NewRequest(http.MethodPost, "/api/units", strings.NewReader(big))
	rec := httptest.NewRecorder()
	var req dtos.CreateUnitRequest

	_, ok := decodeBody(rec, r, &req)
	require.False(t, ok)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
