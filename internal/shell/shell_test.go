package shell

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventBookerClient/internal/app"
	"eventBookerClient/internal/catalog"
	"eventBookerClient/internal/config"
	"eventBookerClient/internal/http-server/api"
	"eventBookerClient/internal/ledger"
	"eventBookerClient/internal/lib/logger/handlers/slogdiscard"
	"eventBookerClient/internal/lib/token"
	"eventBookerClient/internal/router"
	"eventBookerClient/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passwords struct {
	password string
	err      error
}

func (p passwords) ReadPassword(string) ([]byte, error) {
	return []byte(p.password), p.err
}

func newTestShell(t *testing.T, pw PasswordReader) (*Shell, *app.App, *bytes.Buffer) {
	t.Helper()

	log := slogdiscard.NewDiscardLogger()

	srv := httptest.NewServer(api.NewRouter(log, memory.New(), token.NewIssuer("secret", time.Hour)))
	t.Cleanup(srv.Close)

	cfg := &config.Config{API: config.API{URL: srv.URL + api.Path}}
	a := app.New(cfg, log)
	t.Cleanup(a.Close)

	var out bytes.Buffer

	return New(log, a, &out, pw), a, &out
}

func run(t *testing.T, s *Shell, out *bytes.Buffer, line string) string {
	t.Helper()

	out.Reset()
	require.NoError(t, s.Exec(context.Background(), line))

	return out.String()
}

func TestShellSession(t *testing.T) {
	t.Parallel()

	s, a, out := newTestShell(t, passwords{password: "secret"})

	assert.Contains(t, run(t, s, out, "events"), "log in to see events")
	assert.Contains(t, run(t, s, out, "signup ann@example.com"), "account ann@example.com created")
	assert.Contains(t, run(t, s, out, "login ann@example.com"), "logged in")
	assert.Contains(t, s.Prompt("event-booker"), router.PathEvents)
	assert.Contains(t, run(t, s, out, "whoami"), a.Session.Snapshot().UserID)

	run(t, s, out, "create")
	run(t, s, out, "set title Rooftop party")
	assert.Contains(t, run(t, s, out, "save"), "please fill in: Description, Date, Price")
	assert.IsType(t, catalog.Creating{}, a.Catalog.Snapshot().Mode)

	run(t, s, out, "set description Drinks and music")
	run(t, s, out, "set date 2030-06-01")
	assert.Contains(t, run(t, s, out, "set price cheap"), "price must be a number")
	run(t, s, out, "set price 150")

	text := run(t, s, out, "save")
	assert.Contains(t, text, "Rooftop party")
	assert.Contains(t, text, "You're the owner of this event.")

	events := a.Catalog.Snapshot().Events
	require.Len(t, events, 1)

	assert.Contains(t, run(t, s, out, "view "+events[0].ID), "Drinks and music")
	assert.Contains(t, run(t, s, out, "book"), "booked Rooftop party")
	assert.IsType(t, catalog.Idle{}, a.Catalog.Snapshot().Mode)

	text = run(t, s, out, "bookings")
	assert.Contains(t, text, "Rooftop party")

	text = run(t, s, out, "display chart")
	assert.Contains(t, text, "Normal")
	assert.Equal(t, ledger.DisplayChart, a.Ledger.Snapshot().Display)

	run(t, s, out, "display list")
	bookings := a.Ledger.Snapshot().Bookings
	require.Len(t, bookings, 1)

	assert.Contains(t, run(t, s, out, "cancel "+bookings[0].ID), "no bookings")
	assert.Contains(t, run(t, s, out, "cancel "+bookings[0].ID), "request failed: booking not found")

	assert.Contains(t, run(t, s, out, "logout"), "logged out")
	assert.Contains(t, s.Prompt("event-booker"), router.PathAuth)
	assert.Contains(t, run(t, s, out, "bookings"), "log in to see your bookings")
}

func TestShellErrors(t *testing.T) {
	t.Parallel()

	s, _, out := newTestShell(t, passwords{err: errors.New("no tty")})

	assert.Contains(t, run(t, s, out, "fly"), `unknown command "fly"`)
	assert.Contains(t, run(t, s, out, "login"), "usage: login <email>")
	assert.Contains(t, run(t, s, out, "login ann@example.com"), "failed to read password")
	assert.Contains(t, run(t, s, out, "create"), "not authenticated")
	assert.Contains(t, run(t, s, out, "dismiss"), "not possible right now")
	assert.Contains(t, run(t, s, out, "cancel b1"), "not authorized, please log in")
	assert.Empty(t, run(t, s, out, "   "))

	assert.ErrorIs(t, s.Exec(context.Background(), "quit"), ErrQuit)
	assert.ErrorIs(t, s.Exec(context.Background(), "EXIT"), ErrQuit)
}

func TestCompletions(t *testing.T) {
	t.Parallel()

	s, _, out := newTestShell(t, passwords{})

	names := s.Completions()
	assert.Contains(t, names, "quit")
	assert.Contains(t, names, "bookings")
	assert.True(t, strings.Compare(names[0], names[len(names)-1]) < 0)

	text := run(t, s, out, "help")
	for _, name := range names {
		assert.Contains(t, text, name)
	}
}
