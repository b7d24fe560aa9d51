package cancelBooking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"eventBookerClient/internal/http-server/handlers/booking/cancelBooking/mocks"
	"eventBookerClient/internal/http-server/middleware/mwauth"
	"eventBookerClient/internal/lib/api/response"
	"eventBookerClient/internal/lib/logger/handlers/slogdiscard"
	"eventBookerClient/internal/models"
	"eventBookerClient/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelBookingResolver(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	event := models.Event{ID: "e1", Title: "Party"}

	testCases := []struct {
		name           string
		userID         string
		vars           string
		mockSetup      func(m *mocks.BookingCanceller)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "Success",
			userID: "u1",
			vars:   `{"id":"b1"}`,
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("CancelBooking", "b1", "u1").Return(event, nil)
			},
		},
		{
			name:           "Anonymous",
			vars:           `{"id":"b1"}`,
			mockSetup:      func(m *mocks.BookingCanceller) {},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Unauthenticated!",
		},
		{
			name:           "Invalid variables",
			userID:         "u1",
			vars:           `{"id":42}`,
			mockSetup:      func(m *mocks.BookingCanceller) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "failed to decode variables",
		},
		{
			name:   "Foreign booking",
			userID: "u1",
			vars:   `{"id":"b2"}`,
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("CancelBooking", "b2", "u1").Return(models.Event{}, storage.ErrBookingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "booking not found",
		},
		{
			name:   "Storage error",
			userID: "u1",
			vars:   `{"id":"b1"}`,
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("CancelBooking", "b1", "u1").Return(models.Event{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "failed to cancel booking",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			canceller := mocks.NewBookingCanceller(t)
			tc.mockSetup(canceller)

			ctx := context.Background()
			if tc.userID != "" {
				ctx = mwauth.SetUserID(ctx, tc.userID)
			}

			result, err := New(logger, canceller)(ctx, json.RawMessage(tc.vars))

			if tc.expectedStatus == 0 {
				require.NoError(t, err)
				assert.Equal(t, event, result)
				return
			}

			var failure *response.Failure
			require.ErrorAs(t, err, &failure)
			assert.Equal(t, tc.expectedStatus, failure.Status)
			assert.Equal(t, tc.expectedMsg, failure.Message)
		})
	}
}
