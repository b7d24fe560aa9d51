package models

type Creator struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

type Event struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Price       float64 `json:"price"`
	Creator     Creator `json:"creator"`
}

// OwnedBy reports whether userID created the event.
func (e Event) OwnedBy(userID string) bool {
	return userID != "" && e.Creator.ID == userID
}

// EventDraft holds the fields entered while creating an event.
type EventDraft struct {
	Title       string  `json:"title" validate:"notblank"`
	Description string  `json:"description" validate:"notblank"`
	Date        string  `json:"date" validate:"notblank"`
	Price       float64 `json:"price" validate:"gt=0"`
}
