package memory

import (
	"testing"
	"time"

	"eventBookerClient/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsers(t *testing.T) {
	t.Parallel()

	s := New()

	u, err := s.CreateUser("Ann@example.com", []byte("hash"))
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)

	_, err = s.CreateUser("ann@example.com", []byte("other"))
	assert.ErrorIs(t, err, storage.ErrUserExists)

	got, hash, err := s.UserByEmail("ANN@example.com")
	require.NoError(t, err)
	assert.Equal(t, u, got)
	assert.Equal(t, []byte("hash"), hash)

	_, _, err = s.UserByEmail("bob@example.com")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestEventsAndBookings(t *testing.T) {
	t.Parallel()

	s := New()
	s.now = func() time.Time { return time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC) }

	owner, err := s.CreateUser("owner@example.com", nil)
	require.NoError(t, err)
	guest, err := s.CreateUser("guest@example.com", nil)
	require.NoError(t, err)

	late, err := s.CreateEvent("Gala", "Evening", 250, time.Date(2024, 3, 1, 19, 0, 0, 0, time.UTC), owner.ID)
	require.NoError(t, err)
	early, err := s.CreateEvent("Concert", "Live", 20, time.Date(2024, 2, 1, 19, 0, 0, 0, time.UTC), owner.ID)
	require.NoError(t, err)

	assert.Equal(t, "2024-02-01T19:00:00Z", early.Date)
	assert.Equal(t, owner.ID, early.Creator.ID)
	assert.Equal(t, "owner@example.com", early.Creator.Email)

	_, err = s.CreateEvent("Nope", "x", 1, time.Now(), "ghost")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	events, err := s.GetAllEvents()
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, early.ID, events[0].ID)
	assert.Equal(t, late.ID, events[1].ID)

	b, err := s.BookEvent(early.ID, guest.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01T09:00:00Z", b.CreatedAt)
	assert.Equal(t, early.ID, b.Event.ID)

	_, err = s.BookEvent("missing", guest.ID)
	assert.ErrorIs(t, err, storage.ErrEventNotFound)

	bookings, err := s.UserBookings(guest.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 1)

	ownerBookings, err := s.UserBookings(owner.ID)
	require.NoError(t, err)
	assert.Empty(t, ownerBookings)

	_, err = s.CancelBooking(b.ID, owner.ID)
	assert.ErrorIs(t, err, storage.ErrBookingNotFound)

	cancelled, err := s.CancelBooking(b.ID, guest.ID)
	require.NoError(t, err)
	assert.Equal(t, "Concert", cancelled.Title)

	_, err = s.CancelBooking(b.ID, guest.ID)
	assert.ErrorIs(t, err, storage.ErrBookingNotFound)
}
