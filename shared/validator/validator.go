package validator

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"

	"backlog/shared/dto"
	"backlog/shared/failure"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	validate.RegisterCustomTypeFunc(extractOptional, dto.Optional[string]{}, dto.Optional[int]{})
}

// extractOptional exposes the value carried by an Optional field to the rule
// engine. Absent and null fields surface as a nil pointer, so omitnil skips
// their rules.
func extractOptional(field reflect.Value) any {
	switch opt := field.Interface().(type) {
	case interface{ Ptr() *string }:
		return opt.Ptr()
	case interface{ Ptr() *int }:
		return opt.Ptr()
	}

	return nil
}

type selfValidating interface {
	Validate() error
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. Every violated rule becomes one field issue on the
// returned failure; a body that cannot be decoded becomes an issue on the offending field, or on
// the body as a whole when no field can be blamed. Structs carrying rules the tag language
// cannot express implement Validate and take over after decoding.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		return failure.Validation(decodeIssues(err)) //nolint:wrapcheck
	}

	if v, ok := any(data).(selfValidating); ok {
		return v.Validate() //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)
	if err != nil {
		return failure.Validation(issues(err)) //nolint:wrapcheck
	}

	return nil
}

func decodeIssues(err error) []failure.Issue {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []failure.Issue{{
			Path:    typeErr.Field,
			Message: typeErr.Field + " must be " + jsonTypeName(typeErr.Type),
		}}
	}

	return []failure.Issue{{
		Path:    "body",
		Message: "body must be a valid JSON object",
	}}
}

func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "an object"
	}
}
