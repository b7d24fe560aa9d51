package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eventBookerClient/internal/lib/logger/sl"
	"eventBookerClient/internal/lib/validate"
	"eventBookerClient/internal/models"
	"eventBookerClient/internal/remote"
	"eventBookerClient/internal/session"
)

type QueryExecutor interface {
	Execute(ctx context.Context, op remote.Operation, vars map[string]any, out any) error
}

type SessionWriter interface {
	Login(token, userID string, expiresAt time.Time) error
	Logout()
}

type Authenticator struct {
	log      *slog.Logger
	executor QueryExecutor
	session  SessionWriter
	now      func() time.Time
}

func New(log *slog.Logger, executor QueryExecutor, session SessionWriter) *Authenticator {
	return &Authenticator{
		log:      log,
		executor: executor,
		session:  session,
		now:      time.Now,
	}
}

// Login exchanges credentials for a token and starts a session. A response
// without a token leaves the session untouched.
func (a *Authenticator) Login(ctx context.Context, email, password string) error {
	const op = "auth.Login"

	log := a.log.With(slog.String("op", op))

	creds := models.Credentials{Email: email, Password: password}
	if err := validate.Struct(creds); err != nil {
		return err
	}

	var data models.AuthData
	if err := a.executor.Execute(ctx, remote.OpLogin, credentialVars(creds), &data); err != nil {
		log.Error("login failed", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if data.Token == "" {
		log.Warn("login response carried no token")
		return nil
	}

	if err := a.session.Login(data.Token, data.UserID, a.expiresAt(data)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("logged in", slog.String("user_id", data.UserID))

	return nil
}

// Signup creates an account. It does not log the user in.
func (a *Authenticator) Signup(ctx context.Context, email, password string) (models.User, error) {
	const op = "auth.Signup"

	log := a.log.With(slog.String("op", op))

	creds := models.Credentials{Email: email, Password: password}
	if err := validate.Struct(creds); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err := a.executor.Execute(ctx, remote.OpCreateUser, credentialVars(creds), &user); err != nil {
		log.Error("signup failed", sl.Err(err))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user created", slog.String("user_id", user.ID))

	return user, nil
}

func (a *Authenticator) Logout() {
	a.session.Logout()
}

func (a *Authenticator) expiresAt(data models.AuthData) time.Time {
	if data.TokenExpiration > 0 {
		return a.now().Add(time.Duration(data.TokenExpiration) * time.Hour)
	}

	if exp, ok := session.ExpiryFromToken(data.Token); ok {
		return exp
	}

	return time.Time{}
}

func credentialVars(c models.Credentials) map[string]any {
	return map[string]any{
		"email":    c.Email,
		"password": c.Password,
	}
}
