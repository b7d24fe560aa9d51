package models

import "time"

// Session is the authenticated identity held by the client. The zero value is
// the absent session.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}

func (s Session) Authenticated() bool {
	return s.Token != "" && s.UserID != ""
}

// Expired reports whether a known expiry lies before now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
