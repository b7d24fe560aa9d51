package mwauth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventBookerClient/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
)

type verifierFunc func(string) (string, error)

func (f verifierFunc) Verify(token string) (string, error) { return f(token) }

func TestMiddleware(t *testing.T) {
	t.Parallel()

	verifier := verifierFunc(func(token string) (string, error) {
		if token == "good" {
			return "u1", nil
		}
		return "", errors.New("bad token")
	})

	testCases := []struct {
		name     string
		header   string
		wantUser string
		wantOK   bool
	}{
		{name: "No header"},
		{name: "Wrong scheme", header: "Basic abc"},
		{name: "Empty token", header: "Bearer   "},
		{name: "Invalid token", header: "Bearer bad"},
		{name: "Valid token", header: "Bearer good", wantUser: "u1", wantOK: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var (
				gotUser string
				gotOK   bool
				called  bool
			)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				gotUser, gotOK = UserIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			New(slogdiscard.NewDiscardLogger(), verifier)(next).ServeHTTP(httptest.NewRecorder(), req)

			assert.True(t, called)
			assert.Equal(t, tc.wantOK, gotOK)
			assert.Equal(t, tc.wantUser, gotUser)
		})
	}
}
