package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"eventBookerClient/internal/http-server/handlers/graphql"
	"eventBookerClient/internal/lib/api/response"
	"eventBookerClient/internal/lib/logger/sl"
	"eventBookerClient/internal/models"
	"eventBookerClient/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

type Request struct {
	Email    string `json:"email" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	UserByEmail(email string) (models.User, []byte, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenIssuer
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
	TTL() time.Duration
}

func New(log *slog.Logger, users UserProvider, issuer TokenIssuer) graphql.Resolver {
	return func(ctx context.Context, vars json.RawMessage) (any, error) {
		const op = "handlers.user.login.New"

		log := log.With(slog.String("op", op))

		var req Request
		if err := graphql.Bind(vars, &req); err != nil {
			log.Error("invalid request", sl.Err(err))
			return nil, err
		}

		user, hash, err := users.UserByEmail(req.Email)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				log.Info("unknown user", slog.String("email", req.Email))
				return nil, response.BadRequest("User does not exist!")
			}

			log.Error("failed to get user", sl.Err(err))
			return nil, response.Internal("failed to login")
		}

		if err := bcrypt.CompareHashAndPassword(hash, []byte(req.Password)); err != nil {
			log.Info("wrong password", slog.String("user_id", user.ID))
			return nil, response.BadRequest("Password is incorrect!")
		}

		token, err := issuer.Issue(user.ID, user.Email)
		if err != nil {
			log.Error("failed to issue token", sl.Err(err))
			return nil, response.Internal("failed to login")
		}

		log.Info("user logged in", slog.String("user_id", user.ID))

		return models.AuthData{
			UserID:          user.ID,
			Token:           token,
			TokenExpiration: expirationHours(issuer.TTL()),
		}, nil
	}
}

func expirationHours(ttl time.Duration) int {
	hours := int(ttl / time.Hour)
	if hours < 1 {
		return 1
	}

	return hours
}
