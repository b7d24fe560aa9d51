// Package validate runs struct-tag validation for input entered on the client
// before anything is sent to the remote API.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var v = New()

// New returns a validator with the notblank rule registered.
func New() *validator.Validate {
	val := validator.New()
	if err := val.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("validate: register notblank: %v", err))
	}

	return val
}

// Error lists the struct fields that failed validation.
type Error struct {
	Fields []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid input: %s", strings.Join(e.Fields, ", "))
}

// Has reports whether field is among the failed fields.
func (e *Error) Has(field string) bool {
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}

	return false
}

// Struct validates s and returns *Error when any tag rule fails.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validateErr validator.ValidationErrors
	if !errors.As(err, &validateErr) {
		return err
	}

	fields := make([]string, 0, len(validateErr))
	for _, fe := range validateErr {
		fields = append(fields, fe.Field())
	}

	return &Error{Fields: fields}
}
