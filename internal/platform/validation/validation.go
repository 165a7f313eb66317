// Package validation configures go-playground/validator for request and settings structs.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New returns a validator that reports fields by their json names.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Fields lists the namespaces of the fields that failed validation, without the
// top-level struct name. It returns nil when err is not a validation error.
func Fields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		ns := fe.Namespace()
		if _, rest, ok := strings.Cut(ns, "."); ok {
			ns = rest
		}
		fields = append(fields, ns)
	}
	return fields
}

// Message renders a validation error as "invalid fields: a, b".
func Message(err error) string {
	fields := Fields(err)
	if len(fields) == 0 {
		return err.Error()
	}
	return "invalid fields: " + strings.Join(fields, ", ")
}
