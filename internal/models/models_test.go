package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventOwnedBy(t *testing.T) {
	t.Parallel()

	event := Event{ID: "e1", Creator: Creator{ID: "u1"}}

	assert.True(t, event.OwnedBy("u1"))
	assert.False(t, event.OwnedBy("u2"))
	assert.False(t, event.OwnedBy(""))
	assert.False(t, Event{}.OwnedBy(""))
}

func TestSession(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, Session{}.Authenticated())
	assert.False(t, Session{}.Expired(now))

	s := Session{Token: "tok1", UserID: "u1", ExpiresAt: now.Add(time.Hour)}
	assert.True(t, s.Authenticated())
	assert.False(t, s.Expired(now))
	assert.True(t, s.Expired(now.Add(2*time.Hour)))
}
