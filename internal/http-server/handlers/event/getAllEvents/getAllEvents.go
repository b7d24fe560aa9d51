package getAllEvents

import (
	"context"
	"encoding/json"
	"log/slog"

	"eventBookerClient/internal/http-server/handlers/graphql"
	"eventBookerClient/internal/lib/api/response"
	"eventBookerClient/internal/lib/logger/sl"
	"eventBookerClient/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	GetAllEvents() ([]models.Event, error)
}

func New(log *slog.Logger, getter EventsGetter) graphql.Resolver {
	return func(ctx context.Context, _ json.RawMessage) (any, error) {
		const op = "handlers.event.getAllEvents.New"

		log := log.With(slog.String("op", op))

		events, err := getter.GetAllEvents()
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			return nil, response.Internal("failed to get events")
		}

		log.Info("events retrieved", slog.Int("count", len(events)))

		return events, nil
	}
}
