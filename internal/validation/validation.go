// Package validation checks request payloads against their declared schema
// before any storage access happens. Every function here is pure.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homescout/listing-service/internal/dtos"
	"github.com/homescout/listing-service/internal/models"
)

const typeMismatchTag = "type"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	mustRegister(v, "object_id", func(fl validator.FieldLevel) bool {
		return primitive.IsValidObjectID(fl.Field().String())
	})
	mustRegister(v, "property_type", func(fl validator.FieldLevel) bool {
		return models.PropertyType(fl.Field().String()).IsValid()
	})
	mustRegister(v, "sale_type", func(fl validator.FieldLevel) bool {
		return models.SaleType(fl.Field().String()).IsValid()
	})
	mustRegister(v, "finishing_type", func(fl validator.FieldLevel) bool {
		return models.FinishingType(fl.Field().String()).IsValid()
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

// ValidateCreateUnit checks a unit payload against the unit schema. On
// success it returns the payload with list defaults applied; otherwise it
// returns every violation found.
func ValidateCreateUnit(req dtos.CreateUnitRequest) (dtos.CreateUnitRequest, []dtos.ValidationErrorDetail) {
	if details := Struct(req); len(details) > 0 {
		return req, details
	}
	if req.ImageURLs == nil {
		req.ImageURLs = []string{}
	}
	if req.AmenitiesIDs == nil {
		req.AmenitiesIDs = []string{}
	}
	return req, nil
}

// Struct validates any tagged request struct and converts the failures into
// response details. A nil result means the value is valid.
func Struct(s any) []dtos.ValidationErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []dtos.ValidationErrorDetail{{
			Message: err.Error(),
			Field:   "",
			Path:    []string{},
			Type:    "validation_invalid",
		}}
	}
	details := make([]dtos.ValidationErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		field := stripRoot(fe.Namespace())
		details = append(details, dtos.ValidationErrorDetail{
			Message: message(field, fe),
			Field:   field,
			Path:    splitPath(field),
			Type:    "validation_" + fe.Tag(),
		})
	}
	return details
}

// TypeMismatch reports a JSON value whose type does not fit its field, e.g.
// a string where an integer is expected.
func TypeMismatch(err *json.UnmarshalTypeError) dtos.ValidationErrorDetail {
	field := err.Field
	return dtos.ValidationErrorDetail{
		Message: fmt.Sprintf("Field '%s' must be of type %s, got %s", field, describeKind(err.Type), err.Value),
		Field:   field,
		Path:    splitPath(field),
		Type:    "validation_" + typeMismatchTag,
	}
}

// Merge combines decode-time violations with schema violations. A schema
// violation on a field that already has a decode violation, or on one of its
// elements, is dropped: the value is only "missing" or empty because it
// could not be decoded.
func Merge(typeErrs, schemaErrs []dtos.ValidationErrorDetail) []dtos.ValidationErrorDetail {
	if len(typeErrs) == 0 {
		return schemaErrs
	}
	seen := make(map[string]bool, len(typeErrs))
	out := make([]dtos.ValidationErrorDetail, 0, len(typeErrs)+len(schemaErrs))
	for _, d := range typeErrs {
		seen[d.Field] = true
		out = append(out, d)
	}
	for _, d := range schemaErrs {
		if len(d.Path) > 0 && seen[d.Path[0]] {
			continue
		}
		out = append(out, d)
	}
	return out
}

func message(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Field '%s' is required", field)
	case "min":
		if fe.Kind() == reflect.String && fe.Param() == "1" {
			return fmt.Sprintf("Field '%s' must not be empty", field)
		}
		return fmt.Sprintf("Field '%s' must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("Field '%s' must not exceed %s characters", field, fe.Param())
	case "object_id":
		return fmt.Sprintf("Field '%s' must be a 24 character hex string", field)
	case "property_type":
		return oneOf(field, models.PropertyTypes())
	case "sale_type":
		return oneOf(field, models.SaleTypes())
	case "finishing_type":
		return oneOf(field, models.FinishingTypes())
	default:
		return fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", field, fe.Tag())
	}
}

func oneOf[T ~string](field string, values []T) string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return fmt.Sprintf("Field '%s' must be one of [%s]", field, strings.Join(names, ", "))
}

func describeKind(t reflect.Type) string {
	if t == nil {
		return "unknown"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Bool:
		return "boolean"
	case reflect.Struct, reflect.Map:
		return "object"
	}
	return t.Kind().String()
}

// stripRoot drops the top-level struct name from a validator namespace.
func stripRoot(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// splitPath turns "amenitiesIds[1]" into ["amenitiesIds", "1"].
func splitPath(field string) []string {
	path := []string{}
	if field == "" {
		return path
	}
	for _, seg := range strings.Split(field, ".") {
		for {
			open := strings.IndexByte(seg, '[')
			if open < 0 {
				break
			}
			if open > 0 {
				path = append(path, seg[:open])
			}
			end := strings.IndexByte(seg[open:], ']')
			if end < 0 {
				break
			}
			if idx := seg[open+1 : open+end]; idx != "" {
				path = append(path, idx)
			}
			seg = seg[open+end+1:]
		}
		if seg != "" {
			path = append(path, seg)
		}
	}
	return path
}
