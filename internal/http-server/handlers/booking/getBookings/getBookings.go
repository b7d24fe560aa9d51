package getBookings

import (
	"context"
	"encoding/json"
	"log/slog"

	"eventBookerClient/internal/http-server/handlers/graphql"
	"eventBookerClient/internal/http-server/middleware/mwauth"
	"eventBookerClient/internal/lib/api/response"
	"eventBookerClient/internal/lib/logger/sl"
	"eventBookerClient/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsGetter
type BookingsGetter interface {
	UserBookings(userID string) ([]models.Booking, error)
}

func New(log *slog.Logger, getter BookingsGetter) graphql.Resolver {
	return func(ctx context.Context, _ json.RawMessage) (any, error) {
		const op = "handlers.booking.getBookings.New"

		log := log.With(slog.String("op", op))

		userID, ok := mwauth.UserIDFromContext(ctx)
		if !ok {
			return nil, response.Unauthenticated()
		}

		bookings, err := getter.UserBookings(userID)
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			return nil, response.Internal("failed to get bookings")
		}

		log.Info("bookings retrieved", slog.String("user_id", userID), slog.Int("count", len(bookings)))

		return bookings, nil
	}
}
