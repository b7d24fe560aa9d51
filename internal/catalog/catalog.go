package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"eventBookerClient/internal/lib/logger/sl"
	"eventBookerClient/internal/lib/validate"
	"eventBookerClient/internal/lifecycle"
	"eventBookerClient/internal/models"
	"eventBookerClient/internal/remote"
)

var (
	ErrInvalidTransition = errors.New("operation not allowed in current mode")
	ErrEventNotFound     = errors.New("event not found")
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrLoading           = errors.New("events are loading")
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=QueryExecutor
type QueryExecutor interface {
	Execute(ctx context.Context, op remote.Operation, vars map[string]any, out any) error
}

type SessionReader interface {
	Snapshot() models.Session
}

// Catalog owns the list of known events and the create/view/book workflow.
type Catalog struct {
	log      *slog.Logger
	executor QueryExecutor
	session  SessionReader
	live     *lifecycle.Liveness

	mu      sync.Mutex
	events  []models.Event
	loading bool
	gen     uint64
	mode    Mode
}

type Snapshot struct {
	Events       []models.Event
	Loading      bool
	Mode         Mode
	UserID       string
	CanCreate    bool
	ConfirmLabel string
}

func New(log *slog.Logger, executor QueryExecutor, session SessionReader) *Catalog {
	return &Catalog{
		log:      log,
		executor: executor,
		session:  session,
		live:     lifecycle.NewLiveness(),
		mode:     Idle{},
	}
}

func (c *Catalog) Snapshot() Snapshot {
	sess := c.session.Snapshot()

	c.mu.Lock()
	defer c.mu.Unlock()

	events := make([]models.Event, len(c.events))
	copy(events, c.events)

	label := "Confirm"
	if sess.Authenticated() {
		label = "Book"
	}

	return Snapshot{
		Events:       events,
		Loading:      c.loading,
		Mode:         c.mode,
		UserID:       sess.UserID,
		CanCreate:    sess.Authenticated(),
		ConfirmLabel: label,
	}
}

// Load fetches every event. Only the most recently issued load applies its
// result; older completions, completions after Teardown and completions whose
// context is done are dropped.
func (c *Catalog) Load(ctx context.Context) error {
	const op = "catalog.Load"

	log := c.log.With(slog.String("op", op))

	c.mu.Lock()
	c.gen++
	id := c.gen
	c.loading = true
	c.mu.Unlock()

	var events []models.Event
	err := c.executor.Execute(ctx, remote.OpEvents, nil, &events)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.live.Alive() {
		log.Debug("catalog torn down, dropping events")
		return err
	}

	if id != c.gen {
		log.Debug("newer load issued, dropping events", slog.Uint64("generation", id))
		return err
	}

	c.loading = false

	if err != nil {
		log.Error("failed to load events", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if ctx.Err() != nil {
		log.Debug("caller gone, dropping events")
		return ctx.Err()
	}

	c.events = events

	log.Info("events loaded", slog.Int("count", len(events)))

	return nil
}

func (c *Catalog) StartCreate() error {
	if !c.session.Snapshot().Authenticated() {
		return ErrNotAuthenticated
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.mode.(Idle); !ok {
		return ErrInvalidTransition
	}

	c.mode = Creating{}

	return nil
}

// UpdateDraft stores the fields entered so far.
func (c *Catalog) UpdateDraft(draft models.EventDraft) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.mode.(Creating); !ok {
		return ErrInvalidTransition
	}

	c.mode = Creating{Draft: draft}

	return nil
}

// ConfirmCreate validates draft and submits it. Invalid input returns a
// *validate.Error and keeps the workflow in Creating without any request.
// The created event is appended from the server's fields only after the call
// succeeds.
func (c *Catalog) ConfirmCreate(ctx context.Context, draft models.EventDraft) (models.Event, error) {
	const op = "catalog.ConfirmCreate"

	log := c.log.With(slog.String("op", op))

	c.mu.Lock()
	if _, ok := c.mode.(Creating); !ok {
		c.mu.Unlock()
		return models.Event{}, ErrInvalidTransition
	}

	c.mode = Creating{Draft: draft}

	if err := validate.Struct(draft); err != nil {
		c.mu.Unlock()
		log.Debug("draft rejected", sl.Err(err))
		return models.Event{}, err
	}

	sess := c.session.Snapshot()
	c.mode = Submitting{Draft: draft}
	c.mu.Unlock()

	vars := map[string]any{
		"title":       draft.Title,
		"description": draft.Description,
		"price":       draft.Price,
		"date":        draft.Date,
	}

	var created models.Event
	err := c.executor.Execute(ctx, remote.OpCreateEvent, vars, &created)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		if _, ok := c.mode.(Submitting); ok {
			c.mode = Creating{Draft: draft}
		}

		log.Error("failed to create event", sl.Err(err))

		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	created.Creator = models.Creator{ID: sess.UserID}

	if !c.live.Alive() {
		return created, nil
	}

	c.events = append(c.events, created)
	c.mode = Idle{}

	log.Info("event created", slog.String("id", created.ID))

	return created, nil
}

// CancelCreate leaves Creating and drops the draft.
func (c *Catalog) CancelCreate() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.mode.(Creating); !ok {
		return ErrInvalidTransition
	}

	c.mode = Idle{}

	return nil
}

func (c *Catalog) ViewDetail(eventID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.mode.(Idle); !ok {
		return ErrInvalidTransition
	}

	if c.loading {
		return ErrLoading
	}

	for _, e := range c.events {
		if e.ID == eventID {
			c.mode = ViewingDetail{Event: e}
			return nil
		}
	}

	return ErrEventNotFound
}

// BookOrDismiss books the selected event for an authenticated session and
// closes the detail view either way. An anonymous session just dismisses and
// gets a nil booking. The workflow returns to Idle whether or not the booking
// call succeeds.
func (c *Catalog) BookOrDismiss(ctx context.Context) (*models.Booking, error) {
	const op = "catalog.BookOrDismiss"

	log := c.log.With(slog.String("op", op))

	c.mu.Lock()
	detail, ok := c.mode.(ViewingDetail)
	if !ok {
		c.mu.Unlock()
		return nil, ErrInvalidTransition
	}

	if !c.session.Snapshot().Authenticated() {
		c.mode = Idle{}
		c.mu.Unlock()
		return nil, nil
	}

	c.mode = BookingInFlight{Event: detail.Event}
	c.mu.Unlock()

	var booking models.Booking
	err := c.executor.Execute(ctx, remote.OpBookEvent, map[string]any{"id": detail.Event.ID}, &booking)

	c.mu.Lock()
	if _, ok := c.mode.(BookingInFlight); ok {
		c.mode = Idle{}
	}
	c.mu.Unlock()

	log = log.With(slog.String("event_id", detail.Event.ID))

	if err != nil {
		log.Error("failed to book event", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	booking.Event = detail.Event

	log.Info("event booked", slog.String("booking_id", booking.ID))

	return &booking, nil
}

func (c *Catalog) DismissDetail() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.mode.(ViewingDetail); !ok {
		return ErrInvalidTransition
	}

	c.mode = Idle{}

	return nil
}

// Reset abandons any open workflow. The public event list is kept.
func (c *Catalog) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mode = Idle{}
}

// Teardown marks the catalog as no longer observed. In-flight completions
// arriving afterwards leave its state untouched.
func (c *Catalog) Teardown() {
	c.live.Kill()
}
