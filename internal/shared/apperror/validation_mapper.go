package apperror

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// recipient_phone -> Recipient Phone
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError converts binding errors into a per-field map keyed by json name.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return ErrInvalidInput.WithDetails(map[string]string{"body": "malformed request body"})
	}

	fields := make(map[string]string, len(errs))
	for _, e := range errs {
		// e.Field() sudah berupa nama json karena RegisterTagNameFunc di Init()
		name := e.Field()
		human := formatFieldName(name)
		switch e.Tag() {
		case "required":
			fields[name] = human + " is required"
		case "email":
			fields[name] = human + " must be a valid email"
		case "min":
			fields[name] = human + " must be at least " + e.Param()
		case "max":
			fields[name] = human + " must be at most " + e.Param()
		case "oneof":
			fields[name] = human + " must be one of " + e.Param()
		default:
			fields[name] = human + " is invalid"
		}
	}
	return Validation(fields)
}
