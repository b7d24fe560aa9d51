package getBookings

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"eventBookerClient/internal/http-server/handlers/booking/getBookings/mocks"
	"eventBookerClient/internal/http-server/middleware/mwauth"
	"eventBookerClient/internal/lib/api/response"
	"eventBookerClient/internal/lib/logger/handlers/slogdiscard"
	"eventBookerClient/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBookingsResolver(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		bookings := []models.Booking{{ID: "b1", Event: models.Event{ID: "e1"}}}

		getter := mocks.NewBookingsGetter(t)
		getter.On("UserBookings", "u1").Return(bookings, nil)

		result, err := New(logger, getter)(mwauth.SetUserID(context.Background(), "u1"), nil)
		require.NoError(t, err)
		assert.Equal(t, bookings, result)
	})

	t.Run("Anonymous", func(t *testing.T) {
		t.Parallel()

		getter := mocks.NewBookingsGetter(t)

		_, err := New(logger, getter)(context.Background(), nil)

		var failure *response.Failure
		require.ErrorAs(t, err, &failure)
		assert.Equal(t, http.StatusUnauthorized, failure.Status)
	})

	t.Run("Storage error", func(t *testing.T) {
		t.Parallel()

		getter := mocks.NewBookingsGetter(t)
		getter.On("UserBookings", "u1").Return(nil, errors.New("boom"))

		_, err := New(logger, getter)(mwauth.SetUserID(context.Background(), "u1"), nil)

		var failure *response.Failure
		require.ErrorAs(t, err, &failure)
		assert.Equal(t, http.StatusInternalServerError, failure.Status)
		assert.Equal(t, "failed to get bookings", failure.Message)
	})
}
