package api

import (
	"log/slog"
	"net/http"

	"eventBookerClient/internal/http-server/handlers/booking/bookEvent"
	"eventBookerClient/internal/http-server/handlers/booking/cancelBooking"
	"eventBookerClient/internal/http-server/handlers/booking/getBookings"
	"eventBookerClient/internal/http-server/handlers/event/createEvent"
	"eventBookerClient/internal/http-server/handlers/event/getAllEvents"
	"eventBookerClient/internal/http-server/handlers/graphql"
	"eventBookerClient/internal/http-server/handlers/user/createUser"
	"eventBookerClient/internal/http-server/handlers/user/login"
	"eventBookerClient/internal/http-server/middleware/mwauth"
	"eventBookerClient/internal/http-server/middleware/mwlogger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const Path = "/graphql"

type Storage interface {
	createUser.UserCreator
	login.UserProvider
	createEvent.EventCreator
	getAllEvents.EventsGetter
	bookEvent.BookingCreator
	getBookings.BookingsGetter
	cancelBooking.BookingCanceller
}

type Tokens interface {
	login.TokenIssuer
	mwauth.TokenVerifier
}

// NewRouter serves every operation of the booking API on a single POST
// endpoint.
func NewRouter(log *slog.Logger, storage Storage, tokens Tokens) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(mwauth.New(log, tokens))

	router.Post(Path, graphql.New(log, map[string]graphql.Resolver{
		"login":         login.New(log, storage, tokens),
		"createUser":    createUser.New(log, storage),
		"events":        getAllEvents.New(log, storage),
		"createEvent":   createEvent.New(log, storage),
		"bookings":      getBookings.New(log, storage),
		"bookEvent":     bookEvent.New(log, storage),
		"cancelBooking": cancelBooking.New(log, storage),
	}))

	return router
}
