package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"

	"backlog/shared/failure"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be at most {param}",
		"min":      "{field} must be at least {param}",
		"datetime": "{field} must be a valid RFC 3339 timestamp",
	}
)

// issues flattens every violation into its own field issue, keeping the
// declaration order of the struct fields.
func issues(err error) []failure.Issue {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return []failure.Issue{{Path: "body", Message: err.Error()}}
	}

	result := make([]failure.Issue, 0, len(valErrors))

	for _, valErr := range valErrors {
		result = append(result, failure.Issue{
			Path:    valErr.Field(),
			Message: message(valErr),
		})
	}

	return result
}

func message(valErr val.FieldError) string {
	msg := messages[valErr.Tag()]
	if msg == "" {
		return valErr.Error()
	}

	msg = strings.ReplaceAll(msg, "{field}", valErr.Field())
	msg = strings.ReplaceAll(msg, "{param}", valErr.Param())

	return msg
}
