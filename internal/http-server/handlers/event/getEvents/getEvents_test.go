package getEvents

import (
	"campusEvents/internal/http-server/handlers/event/getEvents/mocks"
	"campusEvents/internal/lib/logger/handlers/slogdiscard"
	"campusEvents/internal/models"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testTime := time.Date(2025, 4, 1, 14, 0, 0, 0, time.UTC)
	testEvents := []models.Event{
		{
			ID:         1,
			Name:       "Talk",
			Date:       testTime,
			Visibility: models.VisibilityPublic,
			Location:   "Campus Auditorium",
		},
		{
			ID:         2,
			Name:       "Workshop",
			Date:       testTime.Add(24 * time.Hour),
			Visibility: models.VisibilityPrivate,
		},
	}

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)

	testCases := []struct {
		name           string
		query          string
		mockSetup      func(m *mocks.EventsGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:  "Success with events",
			query: "",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("Events", mock.Anything, models.EventFilter{}).Return(testEvents, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var events []models.Event
				require.NoError(t, json.Unmarshal([]byte(body), &events))

				require.Len(t, events, 2)
				assert.Equal(t, int64(1), events[0].ID)
				assert.Equal(t, "Talk", events[0].Name)
				assert.Equal(t, "Campus Auditorium", events[0].Location)
				assert.Equal(t, int64(2), events[1].ID)
				assert.Equal(t, models.VisibilityPrivate, events[1].Visibility)
			},
		},
		{
			name:  "Empty result is an empty array",
			query: "?visibility=university-only",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("Events", mock.Anything, models.EventFilter{Visibility: models.VisibilityUniversityOnly}).
					Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:  "Range and visibility",
			query: "?start_time=2025-01-01T00:00:00Z&end_time=2025-12-31T23:59:59Z&visibility=public",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("Events", mock.Anything, models.EventFilter{
					Start:      &start,
					End:        &end,
					Visibility: models.VisibilityPublic,
				}).Return(testEvents[:1], nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var events []models.Event
				require.NoError(t, json.Unmarshal([]byte(body), &events))
				require.Len(t, events, 1)
				assert.Equal(t, "Talk", events[0].Name)
			},
		},
		{
			name:           "Only start time",
			query:          "?start_time=2025-01-01T00:00:00Z",
			mockSetup:      func(m *mocks.EventsGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field end_time is required when start_time is given"}`,
		},
		{
			name:           "Malformed time",
			query:          "?start_time=yesterday&end_time=2025-12-31T23:59:59Z",
			mockSetup:      func(m *mocks.EventsGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field start_time must be an RFC3339 timestamp"}`,
		},
		{
			name:           "Unknown visibility",
			query:          "?visibility=everyone",
			mockSetup:      func(m *mocks.EventsGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field visibility must be one of: public private university-only"}`,
		},
		{
			name:  "Internal server error",
			query: "",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("Events", mock.Anything, models.EventFilter{}).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get events"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewEventsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/events"+tc.query, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
