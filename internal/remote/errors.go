package remote

import (
	"fmt"
)

type Kind string

const (
	KindUnauthorized   Kind = "unauthorized"
	KindServerRejected Kind = "server_rejected"
	KindNetwork        Kind = "network"
)

// Error is returned by Execute for every failed call. Status is zero when no
// response was received.
type Error struct {
	Kind    Kind
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d): %s", e.Op, e.Kind, e.Status, msg)
	}

	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a remote error of the given kind.
func IsKind(err error, kind Kind) bool {
	remoteErr, ok := AsError(err)

	return ok && remoteErr.Kind == kind
}

// Unauthenticated builds the error returned when an operation needs a
// session and none is held. No request is sent in that case.
func Unauthenticated(op string) *Error {
	return &Error{Kind: KindUnauthorized, Op: op, Message: "not authenticated"}
}
