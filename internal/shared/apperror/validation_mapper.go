package apperror

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")

	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns a gin binding failure into an AppError with a
// human-readable message for the first offending field. Only used for the
// small auth DTOs; employee form validation has its own fixed message table.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return New(CodeValidation, fmt.Sprintf("%s is required", field), http.StatusBadRequest)
		case "email":
			return New(CodeValidation, fmt.Sprintf("%s must be a valid email address", field), http.StatusBadRequest)
		default:
			return New(CodeValidation, fmt.Sprintf("%s is invalid", field), http.StatusBadRequest)
		}
	}

	return New(
		CodeValidation,
		"Invalid input",
		http.StatusBadRequest,
	)
}
