// Package session holds the client's authentication session. A Store is
// created once and handed to every consumer explicitly; readers only ever see
// immutable snapshots.
package session

import (
	"errors"
	"sync"
	"time"

	"eventBookerClient/internal/models"
)

var ErrPartialSession = errors.New("token and user id must be set together")

type Store struct {
	mu        sync.RWMutex
	current   models.Session
	listeners map[int]func(models.Session)
	nextID    int
}

func NewStore() *Store {
	return &Store{listeners: make(map[int]func(models.Session))}
}

// Login replaces the session. A partial session is rejected and leaves the
// current one untouched.
func (s *Store) Login(token, userID string, expiresAt time.Time) error {
	if (token == "") != (userID == "") {
		return ErrPartialSession
	}

	s.replace(models.Session{Token: token, UserID: userID, ExpiresAt: expiresAt})

	return nil
}

func (s *Store) Logout() {
	s.replace(models.Session{})
}

func (s *Store) Snapshot() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

// Token returns the bearer credential, or "" for an anonymous session.
func (s *Store) Token() string {
	return s.Snapshot().Token
}

func (s *Store) Authenticated() bool {
	return s.Snapshot().Authenticated()
}

// Subscribe registers fn to be called with every new snapshot. The returned
// func removes the listener.
func (s *Store) Subscribe(fn func(models.Session)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) replace(next models.Session) {
	s.mu.Lock()
	s.current = next
	listeners := make([]func(models.Session), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
}
