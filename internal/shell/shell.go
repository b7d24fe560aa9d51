// Package shell implements the line-oriented terminal front end. It renders
// component snapshots and forwards commands; all state lives in the app.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"eventBookerClient/internal/app"
	"eventBookerClient/internal/catalog"
	"eventBookerClient/internal/ledger"
	"eventBookerClient/internal/lib/logger/sl"
	"eventBookerClient/internal/lib/validate"
	"eventBookerClient/internal/remote"
	"eventBookerClient/internal/router"
)

// ErrQuit is returned by Exec when the user asked to leave.
var ErrQuit = errors.New("quit")

type PasswordReader interface {
	ReadPassword(prompt string) ([]byte, error)
}

type command struct {
	usage string
	help  string
	run   func(ctx context.Context, args []string) error
}

type Shell struct {
	log       *slog.Logger
	app       *app.App
	out       io.Writer
	passwords PasswordReader
	commands  map[string]command
}

func New(log *slog.Logger, a *app.App, out io.Writer, passwords PasswordReader) *Shell {
	s := &Shell{
		log:       log,
		app:       a,
		out:       out,
		passwords: passwords,
	}

	s.commands = map[string]command{
		"help":     {usage: "help", help: "list commands", run: s.help},
		"whoami":   {usage: "whoami", help: "show the session", run: s.whoami},
		"login":    {usage: "login <email>", help: "log in", run: s.login},
		"signup":   {usage: "signup <email>", help: "create an account", run: s.signup},
		"logout":   {usage: "logout", help: "end the session", run: s.logout},
		"goto":     {usage: "goto <path>", help: "open /auth, /events or /bookings", run: s.gotoPath},
		"events":   {usage: "events", help: "load and list events", run: s.events},
		"create":   {usage: "create", help: "start a new event", run: s.create},
		"set":      {usage: "set <title|description|date|price> <value>", help: "edit the new event", run: s.set},
		"save":     {usage: "save", help: "submit the new event", run: s.save},
		"discard":  {usage: "discard", help: "drop the new event", run: s.discard},
		"view":     {usage: "view <event id>", help: "show event details", run: s.view},
		"book":     {usage: "book", help: "book the shown event", run: s.book},
		"confirm":  {usage: "confirm", help: "close the shown event", run: s.book},
		"dismiss":  {usage: "dismiss", help: "close the shown event", run: s.dismiss},
		"bookings": {usage: "bookings", help: "load and list your bookings", run: s.bookings},
		"cancel":   {usage: "cancel <booking id>", help: "cancel a booking", run: s.cancel},
		"display":  {usage: "display <list|chart>", help: "switch the bookings view", run: s.display},
		"refresh":  {usage: "refresh", help: "reload events and bookings", run: s.refresh},
	}

	return s
}

// Completions lists the command names, sorted.
func (s *Shell) Completions() []string {
	names := make([]string, 0, len(s.commands)+1)
	for name := range s.commands {
		names = append(names, name)
	}
	names = append(names, "quit")
	sort.Strings(names)

	return names
}

// Exec runs one input line. Command failures are reported to the output and
// not returned; only ErrQuit is.
func (s *Shell) Exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	name, args := strings.ToLower(fields[0]), fields[1:]
	if name == "quit" || name == "exit" {
		return ErrQuit
	}

	cmd, ok := s.commands[name]
	if !ok {
		failure.Fprintf(s.out, "unknown command %q, try help\n", name)
		return nil
	}

	if err := cmd.run(ctx, args); err != nil {
		s.report(name, err)
	}

	return nil
}

func (s *Shell) report(name string, err error) {
	s.log.Debug("command failed", slog.String("command", name), sl.Err(err))

	var verr *validate.Error
	var rerr *remote.Error

	switch {
	case errors.As(err, &verr):
		failure.Fprintf(s.out, "please fill in: %s\n", strings.Join(verr.Fields, ", "))
	case errors.As(err, &rerr):
		switch rerr.Kind {
		case remote.KindUnauthorized:
			failure.Fprintln(s.out, "not authorized, please log in")
		case remote.KindNetwork:
			failure.Fprintf(s.out, "cannot reach the server: %s\n", rerr.Message)
		default:
			failure.Fprintf(s.out, "request failed: %s\n", rerr.Message)
		}
	case errors.Is(err, catalog.ErrInvalidTransition):
		failure.Fprintln(s.out, "not possible right now")
	default:
		failure.Fprintln(s.out, err.Error())
	}
}

func (s *Shell) usage(name string) error {
	return fmt.Errorf("usage: %s", s.commands[name].usage)
}

// Prompt shows the mounted path.
func (s *Shell) Prompt(base string) string {
	_, path := s.app.Screen()

	return fmt.Sprintf("[%s] %s", path, base)
}

func (s *Shell) help(context.Context, []string) error {
	names := s.Completions()
	for _, name := range names {
		cmd, ok := s.commands[name]
		if !ok {
			fmt.Fprintf(s.out, "  %-44s %s\n", name, "leave the shell")
			continue
		}
		fmt.Fprintf(s.out, "  %-44s %s\n", cmd.usage, cmd.help)
	}

	return nil
}

func (s *Shell) whoami(context.Context, []string) error {
	renderSession(s.out, s.app.Session.Snapshot())

	return nil
}

func (s *Shell) credentials(name string, args []string) (string, string, error) {
	if len(args) != 1 {
		return "", "", s.usage(name)
	}

	password, err := s.passwords.ReadPassword("password: ")
	if err != nil {
		return "", "", fmt.Errorf("failed to read password: %w", err)
	}

	return args[0], string(password), nil
}

func (s *Shell) login(ctx context.Context, args []string) error {
	email, password, err := s.credentials("login", args)
	if err != nil {
		return err
	}

	if err := s.app.Auth.Login(ctx, email, password); err != nil {
		return err
	}

	success.Fprintln(s.out, "logged in")

	return s.events(ctx, nil)
}

func (s *Shell) signup(ctx context.Context, args []string) error {
	email, password, err := s.credentials("signup", args)
	if err != nil {
		return err
	}

	user, err := s.app.Auth.Signup(ctx, email, password)
	if err != nil {
		return err
	}

	success.Fprintf(s.out, "account %s created, you can log in now\n", user.Email)

	return nil
}

func (s *Shell) logout(context.Context, []string) error {
	s.app.Auth.Logout()
	muted.Fprintln(s.out, "logged out")

	return nil
}

func (s *Shell) gotoPath(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return s.usage("goto")
	}

	screen, path := s.app.Navigate(args[0])
	muted.Fprintf(s.out, "at %s\n", path)

	switch screen {
	case router.ScreenEvents:
		return s.events(ctx, nil)
	case router.ScreenBookings:
		return s.bookings(ctx, nil)
	}

	return nil
}

func (s *Shell) events(ctx context.Context, _ []string) error {
	if screen, _ := s.app.Navigate(router.PathEvents); screen != router.ScreenEvents {
		muted.Fprintln(s.out, "log in to see events")
		return nil
	}

	err := s.app.Catalog.Load(ctx)
	renderEvents(s.out, s.app.Catalog.Snapshot())

	return err
}

func (s *Shell) create(context.Context, []string) error {
	if err := s.app.Catalog.StartCreate(); err != nil {
		return err
	}

	renderMode(s.out, s.app.Catalog.Snapshot())

	return nil
}

func (s *Shell) set(_ context.Context, args []string) error {
	if len(args) < 2 {
		return s.usage("set")
	}

	creating, ok := s.app.Catalog.Snapshot().Mode.(catalog.Creating)
	if !ok {
		return catalog.ErrInvalidTransition
	}

	draft := creating.Draft
	value := strings.Join(args[1:], " ")

	switch strings.ToLower(args[0]) {
	case "title":
		draft.Title = value
	case "description":
		draft.Description = value
	case "date":
		draft.Date = value
	case "price":
		price, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("price must be a number")
		}
		draft.Price = price
	default:
		return s.usage("set")
	}

	return s.app.Catalog.UpdateDraft(draft)
}

func (s *Shell) save(ctx context.Context, _ []string) error {
	creating, ok := s.app.Catalog.Snapshot().Mode.(catalog.Creating)
	if !ok {
		return catalog.ErrInvalidTransition
	}

	event, err := s.app.Catalog.ConfirmCreate(ctx, creating.Draft)
	if err != nil {
		return err
	}

	success.Fprintf(s.out, "event %s created\n", event.ID)
	renderEvents(s.out, s.app.Catalog.Snapshot())

	return nil
}

func (s *Shell) discard(context.Context, []string) error {
	return s.app.Catalog.CancelCreate()
}

func (s *Shell) view(_ context.Context, args []string) error {
	if len(args) != 1 {
		return s.usage("view")
	}

	if err := s.app.Catalog.ViewDetail(args[0]); err != nil {
		return err
	}

	renderMode(s.out, s.app.Catalog.Snapshot())

	return nil
}

func (s *Shell) book(ctx context.Context, _ []string) error {
	booking, err := s.app.Catalog.BookOrDismiss(ctx)
	if err != nil {
		return err
	}

	if booking != nil {
		success.Fprintf(s.out, "booked %s (booking %s)\n", booking.Event.Title, booking.ID)
	}

	return nil
}

func (s *Shell) dismiss(context.Context, []string) error {
	return s.app.Catalog.DismissDetail()
}

func (s *Shell) bookings(ctx context.Context, _ []string) error {
	if screen, _ := s.app.Navigate(router.PathBookings); screen != router.ScreenBookings {
		muted.Fprintln(s.out, "log in to see your bookings")
		return nil
	}

	err := s.app.Ledger.Load(ctx)
	renderBookings(s.out, s.app.Ledger.Snapshot())

	return err
}

func (s *Shell) cancel(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return s.usage("cancel")
	}

	if err := s.app.Ledger.Cancel(ctx, args[0]); err != nil {
		return err
	}

	success.Fprintln(s.out, "booking cancelled")
	renderBookings(s.out, s.app.Ledger.Snapshot())

	return nil
}

func (s *Shell) display(_ context.Context, args []string) error {
	if len(args) != 1 {
		return s.usage("display")
	}

	s.app.Ledger.SetDisplayMode(ledger.DisplayMode(strings.ToLower(args[0])))
	renderBookings(s.out, s.app.Ledger.Snapshot())

	return nil
}

func (s *Shell) refresh(ctx context.Context, _ []string) error {
	return s.app.Refresh(ctx)
}
