package createEvent

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"eventBookerClient/internal/http-server/handlers/graphql"
	"eventBookerClient/internal/http-server/middleware/mwauth"
	"eventBookerClient/internal/lib/api/response"
	"eventBookerClient/internal/lib/logger/sl"
	"eventBookerClient/internal/models"
)

type Request struct {
	Title       string  `json:"title" validate:"notblank"`
	Description string  `json:"description" validate:"notblank"`
	Price       float64 `json:"price" validate:"gt=0"`
	Date        string  `json:"date" validate:"notblank"`
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(title, description string, price float64, date time.Time, creatorID string) (models.Event, error)
}

func New(log *slog.Logger, creator EventCreator) graphql.Resolver {
	return func(ctx context.Context, vars json.RawMessage) (any, error) {
		const op = "handlers.event.createEvent.New"

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

		date, err := parseDate(req.Date)
		if err != nil {
			log.Error("invalid date", slog.String("date", req.Date))
			return nil, response.BadRequest("invalid date format")
		}

		event, err := creator.CreateEvent(req.Title, req.Description, req.Price, date, userID)
		if err != nil {
			log.Error("failed to add event", sl.Err(err))
			return nil, response.Internal("failed to add event")
		}

		log.Info("event added", slog.String("id", event.ID))

		return event, nil
	}
}

func parseDate(s string) (time.Time, error) {
	var err error

	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, err
}
