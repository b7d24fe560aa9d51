package createEvent

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"eventBookerClient/internal/http-server/handlers/event/createEvent/mocks"
	"eventBookerClient/internal/http-server/middleware/mwauth"
	"eventBookerClient/internal/lib/api/response"
	"eventBookerClient/internal/lib/logger/handlers/slogdiscard"
	"eventBookerClient/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEventResolver(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testTime := time.Date(2024, 12, 25, 18, 0, 0, 0, time.UTC)
	created := models.Event{ID: "e1", Title: "Party", Description: "Fun", Price: 10, Date: "2024-12-25T18:00:00Z"}

	testCases := []struct {
		name           string
		userID         string
		vars           string
		mockSetup      func(m *mocks.EventCreator)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "Success",
			userID: "u1",
			vars:   `{"title":"Party","description":"Fun","price":10,"date":"2024-12-25T18:00:00Z"}`,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", "Party", "Fun", 10.0, testTime, "u1").Return(created, nil)
			},
		},
		{
			name:   "Local datetime input",
			userID: "u1",
			vars:   `{"title":"Party","description":"Fun","price":10,"date":"2024-12-25T18:00"}`,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", "Party", "Fun", 10.0, testTime, "u1").Return(created, nil)
			},
		},
		{
			name:           "Anonymous",
			vars:           `{"title":"Party","description":"Fun","price":10,"date":"2024-12-25"}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Unauthenticated!",
		},
		{
			name:           "Blank title",
			userID:         "u1",
			vars:           `{"title":"  ","description":"Fun","price":10,"date":"2024-12-25"}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "field Title is a required field",
		},
		{
			name:           "Bad date",
			userID:         "u1",
			vars:           `{"title":"Party","description":"Fun","price":10,"date":"tomorrow"}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid date format",
		},
		{
			name:   "Storage error",
			userID: "u1",
			vars:   `{"title":"Party","description":"Fun","price":10,"date":"2024-12-25T18:00:00Z"}`,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", "Party", "Fun", 10.0, testTime, "u1").Return(models.Event{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "failed to add event",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			creator := mocks.NewEventCreator(t)
			tc.mockSetup(creator)

			ctx := context.Background()
			if tc.userID != "" {
				ctx = mwauth.SetUserID(ctx, tc.userID)
			}

			result, err := New(logger, creator)(ctx, json.RawMessage(tc.vars))

			if tc.expectedStatus == 0 {
				require.NoError(t, err)
				assert.Equal(t, created, result)
				return
			}

			var failure *response.Failure
			require.ErrorAs(t, err, &failure)
			assert.Equal(t, tc.expectedStatus, failure.Status)
			assert.Equal(t, tc.expectedMsg, failure.Message)
		})
	}
}
