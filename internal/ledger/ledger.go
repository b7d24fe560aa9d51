package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"eventBookerClient/internal/lib/logger/sl"
	"eventBookerClient/internal/lifecycle"
	"eventBookerClient/internal/models"
	"eventBookerClient/internal/remote"
)

type DisplayMode string

const (
	DisplayList  DisplayMode = "list"
	DisplayChart DisplayMode = "chart"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=QueryExecutor
type QueryExecutor interface {
	Execute(ctx context.Context, op remote.Operation, vars map[string]any, out any) error
}

type SessionReader interface {
	Snapshot() models.Session
}

// Ledger owns the current user's bookings.
type Ledger struct {
	log      *slog.Logger
	executor QueryExecutor
	session  SessionReader
	live     *lifecycle.Liveness

	mu       sync.Mutex
	bookings []models.Booking
	gen      uint64
	loads    int
	cancels  int
	// removed holds bookings cancelled while a load was in flight; that load
	// must not bring them back.
	removed map[string]struct{}
	display DisplayMode
}

type Snapshot struct {
	Bookings []models.Booking
	Loading  bool
	Display  DisplayMode
	// Actions is false while any request is in flight; no cancel buttons are
	// offered then.
	Actions bool
}

func New(log *slog.Logger, executor QueryExecutor, session SessionReader) *Ledger {
	return &Ledger{
		log:      log,
		executor: executor,
		session:  session,
		live:     lifecycle.NewLiveness(),
		removed:  make(map[string]struct{}),
		display:  DisplayList,
	}
}

func (l *Ledger) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	bookings := make([]models.Booking, len(l.bookings))
	copy(bookings, l.bookings)

	loading := l.loads+l.cancels > 0

	return Snapshot{
		Bookings: bookings,
		Loading:  loading,
		Display:  l.display,
		Actions:  !loading,
	}
}

// Load fetches the bookings of the current session. Results are dropped when
// the ledger was torn down or reset, the session changed meanwhile or a newer
// load was issued. Bookings cancelled during the load are filtered out.
func (l *Ledger) Load(ctx context.Context) error {
	const op = "ledger.Load"

	log := l.log.With(slog.String("op", op))

	issued := l.session.Snapshot()
	if !issued.Authenticated() {
		return remote.Unauthenticated(remote.OpBookings.Name)
	}

	l.mu.Lock()
	l.gen++
	id := l.gen
	l.loads++
	l.mu.Unlock()

	var bookings []models.Booking
	err := l.executor.Execute(ctx, remote.OpBookings, nil, &bookings)

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := l.removed
	l.loads--
	if l.loads == 0 {
		l.removed = make(map[string]struct{})
	}

	if !l.live.Alive() || id != l.gen {
		log.Debug("dropping stale bookings", slog.Uint64("generation", id))
		return err
	}

	if err != nil {
		log.Error("failed to load bookings", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if l.session.Snapshot().Token != issued.Token {
		log.Debug("session changed, dropping bookings")
		return nil
	}

	l.bookings = without(bookings, removed)

	log.Info("bookings loaded", slog.Int("count", len(l.bookings)))

	return nil
}

// Cancel cancels bookingID remotely and removes it locally once confirmed.
func (l *Ledger) Cancel(ctx context.Context, bookingID string) error {
	const op = "ledger.Cancel"

	log := l.log.With(slog.String("op", op), slog.String("booking_id", bookingID))

	if !l.session.Snapshot().Authenticated() {
		return remote.Unauthenticated(remote.OpCancelBooking.Name)
	}

	l.mu.Lock()
	l.cancels++
	l.mu.Unlock()

	var cancelled models.Event
	err := l.executor.Execute(ctx, remote.OpCancelBooking, map[string]any{"id": bookingID}, &cancelled)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.cancels--

	if err != nil {
		log.Error("failed to cancel booking", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if !l.live.Alive() {
		return nil
	}

	if l.loads > 0 {
		l.removed[bookingID] = struct{}{}
	}
	l.bookings = without(l.bookings, map[string]struct{}{bookingID: {}})

	log.Info("booking cancelled", slog.String("event", cancelled.Title))

	return nil
}

// Reset forgets the bookings of the previous session and drops loads still
// in flight. The display goes back to the list.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.gen++
	l.bookings = nil
	l.display = DisplayList
}

func without(bookings []models.Booking, ids map[string]struct{}) []models.Booking {
	kept := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if _, ok := ids[b.ID]; !ok {
			kept = append(kept, b)
		}
	}

	return kept
}

// SetDisplayMode switches the presentation. Anything other than list selects
// the chart.
func (l *Ledger) SetDisplayMode(mode DisplayMode) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if mode == DisplayList {
		l.display = DisplayList
		return
	}

	l.display = DisplayChart
}

func (l *Ledger) Teardown() {
	l.live.Kill()
}
