package apperror

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Init registers a tag name func on Gin's validator so that field errors are
// reported with json field names instead of Go struct names.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns validator errors into a single Validation error
// carrying every field-path/message pair from the pass.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		fields := make([]FieldError, 0, len(errs))
		for _, e := range errs {
			field := e.Field()
			if ns := e.Namespace(); strings.Contains(ns, "[") {
				// keep the array index for nested child rows, e.g.
				// relationships[2].name
				if i := strings.Index(ns, "."); i >= 0 {
					field = ns[i+1:]
				}
			}

			var msg string
			switch e.Tag() {
			case "required":
				msg = formatFieldName(e.Field()) + " is required"
			case "email":
				msg = formatFieldName(e.Field()) + " must be a valid email address"
			default:
				msg = formatFieldName(e.Field()) + " is invalid"
			}
			fields = append(fields, FieldError{Field: field, Message: msg})
		}
		return Validation(fields)
	}

	return ErrInvalidInput
}
