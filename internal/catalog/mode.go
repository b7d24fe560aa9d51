package catalog

import "eventBookerClient/internal/models"

// Mode is the workflow step of the events screen. Exactly one mode is active;
// the concrete types below are the only implementations.
type Mode interface {
	mode()
	String() string
}

type Idle struct{}

type Creating struct {
	Draft models.EventDraft
}

// Submitting means a create-event call is in flight.
type Submitting struct {
	Draft models.EventDraft
}

type ViewingDetail struct {
	Event models.Event
}

type BookingInFlight struct {
	Event models.Event
}

func (Idle) mode()            {}
func (Creating) mode()        {}
func (Submitting) mode()      {}
func (ViewingDetail) mode()   {}
func (BookingInFlight) mode() {}

func (Idle) String() string            { return "idle" }
func (Creating) String() string        { return "creating" }
func (Submitting) String() string      { return "submitting" }
func (ViewingDetail) String() string   { return "viewing-detail" }
func (BookingInFlight) String() string { return "booking-in-flight" }
