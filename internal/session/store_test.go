package session

import (
	"sync"
	"testing"
	"time"

	"eventBookerClient/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginLogout(t *testing.T) {
	t.Parallel()

	store := NewStore()
	expires := time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC)

	require.NoError(t, store.Login("tok1", "u1", expires))

	snap := store.Snapshot()
	assert.Equal(t, "tok1", snap.Token)
	assert.Equal(t, "u1", snap.UserID)
	assert.Equal(t, expires, snap.ExpiresAt)
	assert.True(t, store.Authenticated())
	assert.Equal(t, "tok1", store.Token())

	store.Logout()
	assert.Equal(t, models.Session{}, store.Snapshot())

	store.Logout()
	assert.Equal(t, models.Session{}, store.Snapshot())
	assert.False(t, store.Authenticated())
	assert.Empty(t, store.Token())
}

func TestLoginRejectsPartialSession(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		token  string
		userID string
	}{
		{name: "Missing user id", token: "tok1"},
		{name: "Missing token", userID: "u1"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := NewStore()
			require.NoError(t, store.Login("old", "u0", time.Time{}))

			err := store.Login(tc.token, tc.userID, time.Time{})
			require.ErrorIs(t, err, ErrPartialSession)

			assert.Equal(t, "old", store.Snapshot().Token)
			assert.Equal(t, "u0", store.Snapshot().UserID)
		})
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	t.Parallel()

	store := NewStore()
	require.NoError(t, store.Login("tok1", "u1", time.Time{}))

	snap := store.Snapshot()
	snap.Token = "mutated"

	assert.Equal(t, "tok1", store.Token())
}

func TestSubscribe(t *testing.T) {
	t.Parallel()

	store := NewStore()

	var (
		mu   sync.Mutex
		seen []models.Session
	)
	unsubscribe := store.Subscribe(func(s models.Session) {
		mu.Lock()
		seen = append(seen, s)
		mu.Unlock()
	})

	require.NoError(t, store.Login("tok1", "u1", time.Time{}))
	store.Logout()
	unsubscribe()
	require.NoError(t, store.Login("tok2", "u2", time.Time{}))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 2)
	assert.Equal(t, "tok1", seen[0].Token)
	assert.Equal(t, models.Session{}, seen[1])
}

func TestConcurrentReaders(t *testing.T) {
	t.Parallel()

	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s := store.Snapshot()
				assert.Equal(t, s.Token == "", s.UserID == "")
			}
		}()
	}

	for j := 0; j < 100; j++ {
		require.NoError(t, store.Login("tok", "user", time.Time{}))
		store.Logout()
	}

	wg.Wait()
}

func TestExpiryFromToken(t *testing.T) {
	t.Parallel()

	exp := time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	got, ok := ExpiryFromToken(token)
	require.True(t, ok)
	assert.True(t, exp.Equal(got))

	_, ok = ExpiryFromToken("not-a-jwt")
	assert.False(t, ok)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "u1"}).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, ok = ExpiryFromToken(noExp)
	assert.False(t, ok)
}
