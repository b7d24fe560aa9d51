package shell

import (
	"fmt"
	"io"
	"strings"
	"time"

	"eventBookerClient/internal/catalog"
	"eventBookerClient/internal/ledger"
	"eventBookerClient/internal/models"

	"github.com/fatih/color"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	muted   = color.New(color.FgHiBlack)
	success = color.New(color.FgGreen)
	failure = color.New(color.FgRed)
	accent  = color.New(color.FgYellow)
)

const barWidth = 30

func renderEvents(w io.Writer, snap catalog.Snapshot) {
	heading.Fprintln(w, "Events")

	if snap.Loading {
		muted.Fprintln(w, "  loading...")
		return
	}

	if len(snap.Events) == 0 {
		muted.Fprintln(w, "  no events yet")
	}

	for _, e := range snap.Events {
		line := fmt.Sprintf("  %s  %-24s $%.2f  %s", e.ID, e.Title, e.Price, formatDate(e.Date))
		if e.OwnedBy(snap.UserID) {
			accent.Fprintf(w, "%s  (You're the owner of this event.)\n", line)
			continue
		}
		fmt.Fprintln(w, line)
	}

	if snap.CanCreate {
		muted.Fprintln(w, "  share your own events: create")
	}
}

func renderMode(w io.Writer, snap catalog.Snapshot) {
	switch m := snap.Mode.(type) {
	case catalog.Creating:
		heading.Fprintln(w, "Add Event")
		fmt.Fprintf(w, "  title:       %s\n", m.Draft.Title)
		fmt.Fprintf(w, "  description: %s\n", m.Draft.Description)
		fmt.Fprintf(w, "  date:        %s\n", m.Draft.Date)
		fmt.Fprintf(w, "  price:       %.2f\n", m.Draft.Price)
		muted.Fprintln(w, "  set <field> <value>, save or discard")
	case catalog.Submitting:
		muted.Fprintf(w, "creating %q...\n", m.Draft.Title)
	case catalog.ViewingDetail:
		heading.Fprintln(w, m.Event.Title)
		fmt.Fprintf(w, "  $%.2f - %s\n", m.Event.Price, formatDate(m.Event.Date))
		fmt.Fprintf(w, "  %s\n", m.Event.Description)
		muted.Fprintf(w, "  %s or dismiss\n", strings.ToLower(snap.ConfirmLabel))
	case catalog.BookingInFlight:
		muted.Fprintf(w, "booking %q...\n", m.Event.Title)
	}
}

func renderBookings(w io.Writer, snap ledger.Snapshot) {
	heading.Fprintln(w, "Bookings")

	if snap.Loading {
		muted.Fprintln(w, "  loading...")
		return
	}

	if snap.Display == ledger.DisplayChart {
		renderChart(w, ledger.Chart(snap.Bookings, ledger.PriceBuckets))
		return
	}

	if len(snap.Bookings) == 0 {
		muted.Fprintln(w, "  no bookings")
		return
	}

	for _, b := range snap.Bookings {
		fmt.Fprintf(w, "  %s  %-24s %s\n", b.ID, b.Event.Title, formatDate(b.Event.Date))
	}

	if snap.Actions {
		muted.Fprintln(w, "  cancel <id> to cancel a booking")
	}
}

func renderChart(w io.Writer, points []ledger.Point) {
	most := 0
	for _, p := range points {
		if p.Count > most {
			most = p.Count
		}
	}

	for _, p := range points {
		width := 0
		if most > 0 {
			width = p.Count * barWidth / most
		}
		fmt.Fprintf(w, "  %-10s %s %d ($%.2f)\n", p.Label, accent.Sprint(strings.Repeat("#", width)), p.Count, p.Total)
	}
}

func renderSession(w io.Writer, s models.Session) {
	if !s.Authenticated() {
		muted.Fprintln(w, "not logged in")
		return
	}

	fmt.Fprintf(w, "logged in as %s", s.UserID)
	if !s.ExpiresAt.IsZero() {
		fmt.Fprintf(w, " until %s", s.ExpiresAt.Local().Format(time.DateTime))
	}
	fmt.Fprintln(w)
}

// formatDate renders RFC3339 dates as a local calendar day and passes other
// values through.
func formatDate(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}

	return t.Local().Format(time.DateOnly)
}
