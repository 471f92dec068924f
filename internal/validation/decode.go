package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/homescout/listing-service/internal/dtos"
)

const unknownFieldTag = "unknown"

// Decode unmarshals a JSON object into dst, a pointer to a tagged request
// struct. Each key whose value has the wrong JSON type and each key dst does
// not declare comes back as a violation, so a payload with several mistyped
// fields reports all of them. An error means the body is not a JSON object.
func Decode(body []byte, dst any) ([]dtos.ValidationErrorDetail, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, err
		}
	}
	return fieldViolations(fields, reflect.TypeOf(dst).Elem()), nil
}

func fieldViolations(fields map[string]json.RawMessage, t reflect.Type) []dtos.ValidationErrorDetail {
	var details []dtos.ValidationErrorDetail
	declared := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name := jsonFieldName(sf)
		if name == "" || !sf.IsExported() {
			continue
		}
		declared[name] = true
		raw, ok := fields[name]
		if !ok {
			continue
		}
		// Decode the value on its own against the field type.
		err := json.Unmarshal(raw, reflect.New(sf.Type).Interface())
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			mismatch := *typeErr
			mismatch.Field = name
			details = append(details, TypeMismatch(&mismatch))
		}
	}

	unknown := make([]string, 0)
	for key := range fields {
		if !declared[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		details = append(details, dtos.ValidationErrorDetail{
			Message: fmt.Sprintf("Field '%s' is not allowed", key),
			Field:   key,
			Path:    []string{key},
			Type:    "validation_" + unknownFieldTag,
		})
	}
	return details
}
