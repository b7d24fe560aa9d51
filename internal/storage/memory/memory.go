package memory

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"eventBookerClient/internal/models"
	"eventBookerClient/internal/storage"

	"github.com/google/uuid"
)

type user struct {
	models.User
	passwordHash []byte
}

type event struct {
	id          string
	title       string
	description string
	date        time.Time
	price       float64
	creatorID   string
}

type booking struct {
	id        string
	eventID   string
	userID    string
	createdAt time.Time
	updatedAt time.Time
}

// Storage keeps users, events and bookings in process memory.
type Storage struct {
	mu       sync.RWMutex
	users    map[string]*user
	emails   map[string]string
	events   map[string]*event
	bookings map[string]*booking
	now      func() time.Time
}

func New() *Storage {
	return &Storage{
		users:    make(map[string]*user),
		emails:   make(map[string]string),
		events:   make(map[string]*event),
		bookings: make(map[string]*booking),
		now:      time.Now,
	}
}

func (s *Storage) CreateUser(email string, passwordHash []byte) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(email)
	if _, ok := s.emails[key]; ok {
		return models.User{}, storage.ErrUserExists
	}

	u := &user{
		User:         models.User{ID: uuid.NewString(), Email: email},
		passwordHash: passwordHash,
	}
	s.users[u.ID] = u
	s.emails[key] = u.ID

	return u.User, nil
}

func (s *Storage) UserByEmail(email string) (models.User, []byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emails[strings.ToLower(email)]
	if !ok {
		return models.User{}, nil, storage.ErrUserNotFound
	}

	u := s.users[id]

	return u.User, u.passwordHash, nil
}

func (s *Storage) CreateEvent(title, description string, price float64, date time.Time, creatorID string) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[creatorID]; !ok {
		return models.Event{}, fmt.Errorf("failed to create event: %w", storage.ErrUserNotFound)
	}

	e := &event{
		id:          uuid.NewString(),
		title:       title,
		description: description,
		date:        date.UTC(),
		price:       price,
		creatorID:   creatorID,
	}
	s.events[e.id] = e

	return s.eventModel(e), nil
}

// GetAllEvents returns every event ordered by date.
func (s *Storage) GetAllEvents() ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*event, 0, len(s.events))
	for _, e := range s.events {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].date.Equal(list[j].date) {
			return list[i].id < list[j].id
		}
		return list[i].date.Before(list[j].date)
	})

	events := make([]models.Event, 0, len(list))
	for _, e := range list {
		events = append(events, s.eventModel(e))
	}

	return events, nil
}

func (s *Storage) BookEvent(eventID, userID string) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[eventID]
	if !ok {
		return models.Booking{}, storage.ErrEventNotFound
	}

	now := s.now().UTC()
	b := &booking{
		id:        uuid.NewString(),
		eventID:   eventID,
		userID:    userID,
		createdAt: now,
		updatedAt: now,
	}
	s.bookings[b.id] = b

	return s.bookingModel(b, e), nil
}

// UserBookings returns the bookings of userID, oldest first.
func (s *Storage) UserBookings(userID string) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*booking, 0)
	for _, b := range s.bookings {
		if b.userID == userID {
			list = append(list, b)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].createdAt.Equal(list[j].createdAt) {
			return list[i].id < list[j].id
		}
		return list[i].createdAt.Before(list[j].createdAt)
	})

	bookings := make([]models.Booking, 0, len(list))
	for _, b := range list {
		bookings = append(bookings, s.bookingModel(b, s.events[b.eventID]))
	}

	return bookings, nil
}

// CancelBooking deletes a booking owned by userID and returns its event.
func (s *Storage) CancelBooking(bookingID, userID string) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[bookingID]
	if !ok || b.userID != userID {
		return models.Event{}, storage.ErrBookingNotFound
	}

	delete(s.bookings, bookingID)

	return s.eventModel(s.events[b.eventID]), nil
}

func (s *Storage) eventModel(e *event) models.Event {
	m := models.Event{
		ID:          e.id,
		Title:       e.title,
		Description: e.description,
		Date:        e.date.Format(time.RFC3339),
		Price:       e.price,
		Creator:     models.Creator{ID: e.creatorID},
	}
	if u, ok := s.users[e.creatorID]; ok {
		m.Creator.Email = u.Email
	}

	return m
}

func (s *Storage) bookingModel(b *booking, e *event) models.Booking {
	return models.Booking{
		ID:        b.id,
		CreatedAt: b.createdAt.Format(time.RFC3339),
		UpdatedAt: b.updatedAt.Format(time.RFC3339),
		Event:     s.eventModel(e),
	}
}
