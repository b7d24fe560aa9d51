package createUser

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"eventBookerClient/internal/http-server/handlers/graphql"
	"eventBookerClient/internal/lib/api/response"
	"eventBookerClient/internal/lib/logger/sl"
	"eventBookerClient/internal/models"
	"eventBookerClient/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"notblank"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserCreator
type UserCreator interface {
	CreateUser(email string, passwordHash []byte) (models.User, error)
}

func New(log *slog.Logger, creator UserCreator) graphql.Resolver {
	return func(ctx context.Context, vars json.RawMessage) (any, error) {
		const op = "handlers.user.createUser.New"

		log := log.With(slog.String("op", op))

		var req Request
		if err := graphql.Bind(vars, &req); err != nil {
			log.Error("invalid request", sl.Err(err))
			return nil, err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("failed to hash password", sl.Err(err))
			return nil, response.Internal("failed to create user")
		}

		user, err := creator.CreateUser(req.Email, hash)
		if err != nil {
			if errors.Is(err, storage.ErrUserExists) {
				log.Info("user already exists", slog.String("email", req.Email))
				return nil, response.BadRequest("User exists already.")
			}

			log.Error("failed to create user", sl.Err(err))
			return nil, response.Internal("failed to create user")
		}

		log.Info("user created", slog.String("id", user.ID))

		return user, nil
	}
}
