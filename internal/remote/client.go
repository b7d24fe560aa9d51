// Package remote executes typed operations against the booking API. It never
// touches client state; callers reconcile results themselves.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventBookerClient/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

// CredentialSource yields the bearer token, or "" when anonymous.
type CredentialSource interface {
	Token() string
}

type Client struct {
	url     string
	creds   CredentialSource
	http    *http.Client
	timeout time.Duration
	log     *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds every request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

func New(log *slog.Logger, url string, creds CredentialSource, opts ...Option) *Client {
	c := &Client{
		url:   url,
		creds: creds,
		http:  &http.Client{},
		log:   log,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.timeout > 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}

	return c
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type responseError struct {
	Message string `json:"message"`
}

type envelope struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []responseError            `json:"errors"`
}

func (e envelope) message() string {
	if len(e.Errors) == 0 {
		return ""
	}

	return e.Errors[0].Message
}

// Execute sends op with vars and decodes the op.Field entry of the response
// data into out, which may be nil. Every failure is returned as *Error.
func (c *Client) Execute(ctx context.Context, op Operation, vars map[string]any, out any) error {
	log := c.log.With(slog.String("op", "remote.Execute"), slog.String("operation", op.Name))

	body, err := json.Marshal(request{Query: op.Query, Variables: vars})
	if err != nil {
		return &Error{Kind: KindNetwork, Op: op.Name, Message: "failed to encode request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return &Error{Kind: KindNetwork, Op: op.Name, Message: "failed to create request", Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	if c.creds != nil {
		if token := c.creds.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error("request failed", sl.Err(err))
		return &Error{Kind: KindNetwork, Op: op.Name, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := render.DecodeJSON(resp.Body, &env)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		kind := KindServerRejected
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			kind = KindUnauthorized
		}

		msg := env.message()
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}

		log.Warn("request rejected", slog.Int("status", resp.StatusCode), slog.String("message", msg))

		return &Error{Kind: kind, Op: op.Name, Status: resp.StatusCode, Message: msg}
	}

	if decodeErr != nil {
		log.Error("failed to decode response", sl.Err(decodeErr))
		return &Error{Kind: KindNetwork, Op: op.Name, Status: resp.StatusCode, Message: "malformed response", Err: decodeErr}
	}

	raw, ok := env.Data[op.Field]
	if !ok || isNull(raw) {
		msg := env.message()
		if msg == "" {
			msg = "missing " + op.Field + " in response"
		}

		return &Error{Kind: KindServerRejected, Op: op.Name, Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}

	if err = json.Unmarshal(raw, out); err != nil {
		log.Error("failed to decode payload", sl.Err(err))
		return &Error{Kind: KindNetwork, Op: op.Name, Status: resp.StatusCode, Message: "malformed response", Err: err}
	}

	log.Debug("operation completed")

	return nil
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// AsError extracts the *Error from err, if any.
func AsError(err error) (*Error, bool) {
	var remoteErr *Error
	ok := errors.As(err, &remoteErr)

	return remoteErr, ok
}
