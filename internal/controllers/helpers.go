package controllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/homescout/listing-service/internal/dtos"
	"github.com/homescout/listing-service/internal/utils"
	"github.com/homescout/listing-service/internal/validation"
)

const maxBodyBytes = 1 << 20

// decodeBody reads the request body into dst and returns the field level
// violations found while decoding. ok is false when the body could not be
// read as a JSON object; the 400 has already been written in that case.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) (violations []dtos.ValidationErrorDetail, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err == nil {
		violations, err = validation.Decode(body, dst)
	}
	if err != nil {
		utils.RespondErrorWithCode(w, r, http.StatusBadRequest, utils.ErrCodeInvalidPayload, msgInvalidJSON, err)
		return nil, false
	}
	return violations, true
}

// queryInt parses a query parameter; absent or non-numeric values yield 0.
func queryInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return n
}
