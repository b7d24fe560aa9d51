package bookEvent

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	BookEvent(eventID, userID string) (models.Booking, error)
}

func New(log *slog.Logger, booking BookingCreator) graphql.Resolver {
	return func(ctx context.Context, vars json.RawMessage) (any, error) {
		const op = "handlers.booking.bookEvent.New"

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

		log = log.With(slog.String("event_id", req.ID))

		b, err := booking.BookEvent(req.ID, userID)
		if err != nil {
			log.Error("failed to book event", sl.Err(err))

			if errors.Is(err, storage.ErrEventNotFound) {
				return nil, response.NotFound("event not found")
			}

			return nil, response.Internal("failed to book event")
		}

		log.Info("event booked successfully", slog.String("user_id", userID))

		return b, nil
	}
}
