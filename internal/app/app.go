package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"eventBookerClient/internal/auth"
	"eventBookerClient/internal/catalog"
	"eventBookerClient/internal/config"
	"eventBookerClient/internal/ledger"
	"eventBookerClient/internal/models"
	"eventBookerClient/internal/remote"
	"eventBookerClient/internal/router"
	"eventBookerClient/internal/session"

	"golang.org/x/sync/errgroup"
)

type App struct {
	log *slog.Logger

	Session *session.Store
	Client  *remote.Client
	Auth    *auth.Authenticator
	Catalog *catalog.Catalog
	Ledger  *ledger.Ledger

	unsubscribe func()

	mu     sync.Mutex
	path   string
	screen router.Screen
}

func New(cfg *config.Config, log *slog.Logger, opts ...remote.Option) *App {
	store := session.NewStore()

	opts = append([]remote.Option{remote.WithTimeout(cfg.API.Timeout)}, opts...)
	client := remote.New(log, cfg.API.URL, store, opts...)

	a := &App{
		log:     log,
		Session: store,
		Client:  client,
		Auth:    auth.New(log, client, store),
		Catalog: catalog.New(log, client, store),
		Ledger:  ledger.New(log, client, store),
	}

	a.screen, a.path = router.Mount(router.PathRoot, false)
	a.unsubscribe = store.Subscribe(a.remount)

	return a
}

// Navigate mounts the screen for path given the current session.
func (a *App) Navigate(path string) (router.Screen, string) {
	authenticated := a.Session.Authenticated()

	a.mu.Lock()
	defer a.mu.Unlock()

	a.screen, a.path = router.Mount(path, authenticated)

	return a.screen, a.path
}

func (a *App) Screen() (router.Screen, string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.screen, a.path
}

// remount runs on every session change. The previous session's bookings and
// any open workflow are dropped before the screen is mounted again.
func (a *App) remount(s models.Session) {
	a.Catalog.Reset()
	a.Ledger.Reset()

	a.mu.Lock()
	defer a.mu.Unlock()

	a.screen, a.path = router.Mount(a.path, s.Authenticated())
	a.log.Debug("screen remounted", slog.String("path", a.path))
}

// Refresh reloads the events and, with a session, the bookings. Both loads run
// concurrently and independently: a failing bookings load does not cut the
// events load short. The first error is returned.
func (a *App) Refresh(ctx context.Context) error {
	const op = "app.Refresh"

	var g errgroup.Group

	g.Go(func() error {
		return a.Catalog.Load(ctx)
	})

	if a.Session.Authenticated() {
		g.Go(func() error {
			return a.Ledger.Load(ctx)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (a *App) Close() {
	a.unsubscribe()
	a.Catalog.Teardown()
	a.Ledger.Teardown()
}
