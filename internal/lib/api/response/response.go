package response

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Response struct {
	Data   map[string]any `json:"data,omitempty"`
	Errors []Message      `json:"errors,omitempty"`
}

type Message struct {
	Message string `json:"message"`
}

func OK(field string, value any) Response {
	return Response{Data: map[string]any{field: value}}
}

func Error(msg string) Response {
	return Response{Errors: []Message{{Message: msg}}}
}

// Failure is returned by resolvers to pick the HTTP status and the message
// reported to the client.
type Failure struct {
	Status  int
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

func BadRequest(msg string) *Failure {
	return &Failure{Status: http.StatusBadRequest, Message: msg}
}

func Unauthenticated() *Failure {
	return &Failure{Status: http.StatusUnauthorized, Message: "Unauthenticated!"}
}

func NotFound(msg string) *Failure {
	return &Failure{Status: http.StatusNotFound, Message: msg}
}

func Internal(msg string) *Failure {
	return &Failure{Status: http.StatusInternalServerError, Message: msg}
}

func ValidationError(errs validator.ValidationErrors) *Failure {
	var errMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required", "notblank":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "gt":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s must be greater than %s", err.Field(), err.Param()))
		case "email":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not a valid email", err.Field()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return BadRequest(strings.Join(errMsgs, ", "))
}
