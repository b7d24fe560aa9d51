package cancelBooking

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"eventBookerClient/internal/http-server/handlers/graphql"
	"eventBookerClient/internal/http-server/middleware/mwauth"
	"eventBookerClient/internal/lib/api/response"
	"eventBookerClient/internal/lib/logger/sl"
	"eventBookerClient/internal/models"
	"eventBookerClient/internal/storage"
)

type Request struct {
	ID string `json:"id" validate:"notblank"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCanceller
type BookingCanceller interface {
	CancelBooking(bookingID, userID string) (models.Event, error)
}

// New resolves cancelBooking to the event the removed booking referred to.
func New(log *slog.Logger, canceller BookingCanceller) graphql.Resolver {
	return func(ctx context.Context, vars json.RawMessage) (any, error) {
		const op = "handlers.booking.cancelBooking.New"

		log := log.With(slog.String("op", op))

		userID, ok := mwauth.UserIDFromContext(ctx)
		if !ok {
			return nil, response.Unauthenticated()
		}

		var req Request
		if err := graphql.Bind(vars, &req); err != nil {
			log.Error("invalid request", sl.Err(err))
			return nil, err
		}

		log = log.With(slog.String("booking_id", req.ID))

		event, err := canceller.CancelBooking(req.ID, userID)
		if err != nil {
			log.Error("failed to cancel booking", sl.Err(err))

			if errors.Is(err, storage.ErrBookingNotFound) {
				return nil, response.NotFound("booking not found")
			}

			return nil, response.Internal("failed to cancel booking")
		}

		log.Info("booking cancelled")

		return event, nil
	}
}
