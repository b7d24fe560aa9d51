package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"regexp"

	"eventBookerClient/internal/lib/api/response"
	"eventBookerClient/internal/lib/logger/sl"
	"eventBookerClient/internal/lib/validate"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// Resolver produces the value of one top-level field from the request
// variables. Errors of type *response.Failure choose the status code.
type Resolver func(ctx context.Context, vars json.RawMessage) (any, error)

type Request struct {
	Query     string          `json:"query" validate:"required"`
	Variables json.RawMessage `json:"variables"`
}

var fieldRe = regexp.MustCompile(`\{\s*([A-Za-z_][A-Za-z0-9_]*)`)

var checker = validate.New()

// FieldName returns the first selected field of a query document.
func FieldName(query string) string {
	m := fieldRe.FindStringSubmatch(query)
	if m == nil {
		return ""
	}

	return m[1]
}

func New(log *slog.Logger, resolvers map[string]Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.graphql.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		if err = checker.Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(response.ValidationError(validateErr).Message))

			return
		}

		field := FieldName(req.Query)

		resolve, ok := resolvers[field]
		if !ok {
			log.Error("unknown operation", slog.String("field", field))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("unknown operation"))

			return
		}

		log = log.With(slog.String("field", field))

		result, err := resolve(r.Context(), req.Variables)
		if err != nil {
			var failure *response.Failure
			if !errors.As(err, &failure) {
				failure = response.Internal("internal error")
			}

			log.Error("operation failed", sl.Err(err), slog.Int("status", failure.Status))
			render.Status(r, failure.Status)
			render.JSON(w, r, response.Error(failure.Message))

			return
		}

		log.Info("operation resolved")

		render.JSON(w, r, response.OK(field, result))
	}
}

// Bind decodes vars into dst and validates it. Failures are reported as bad
// requests.
func Bind(vars json.RawMessage, dst any) error {
	if len(bytes.TrimSpace(vars)) > 0 {
		if err := json.Unmarshal(vars, dst); err != nil {
			return response.BadRequest("failed to decode variables")
		}
	}

	if err := checker.Struct(dst); err != nil {
		var validateErr validator.ValidationErrors
		if errors.As(err, &validateErr) {
			return response.ValidationError(validateErr)
		}

		return response.BadRequest("invalid variables")
	}

	return nil
}
