package getCalendar

import (
	"campusEvents/internal/http-server/handlers/calendar/getCalendar/mocks"
	"campusEvents/internal/lib/logger/handlers/slogdiscard"
	"campusEvents/internal/models"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetCalendarHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	publicOnly := models.EventFilter{Visibility: models.VisibilityPublic}

	publicEvents := []models.Event{
		{
			ID:         1,
			Name:       "Talk",
			Date:       time.Date(2025, 4, 1, 14, 0, 0, 0, time.UTC),
			Visibility: models.VisibilityPublic,
			Location:   "Campus Auditorium",
		},
		{
			ID:         3,
			Name:       "Spring Music Festival",
			Date:       time.Date(2025, 4, 15, 18, 30, 0, 0, time.UTC),
			Visibility: models.VisibilityPublic,
		},
	}

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.EventsGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, rr *httptest.ResponseRecorder)
	}{
		{
			name: "Public events only",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("Events", mock.Anything, publicOnly).Return(publicEvents, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.Equal(t, "text/calendar; charset=utf-8", rr.Header().Get("Content-Type"))

				body := rr.Body.String()
				assert.True(t, strings.HasPrefix(body, "BEGIN:VCALENDAR"))
				assert.Equal(t, len(publicEvents), strings.Count(body, "BEGIN:VEVENT"))
				assert.Contains(t, body, "SUMMARY:Talk")
				assert.Contains(t, body, "SUMMARY:Spring Music Festival")
			},
		},
		{
			name: "No events",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("Events", mock.Anything, publicOnly).Return([]models.Event{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, rr *httptest.ResponseRecorder) {
				body := rr.Body.String()
				assert.Contains(t, body, "BEGIN:VCALENDAR")
				assert.Contains(t, body, "END:VCALENDAR")
				assert.NotContains(t, body, "BEGIN:VEVENT")
			},
		},
		{
			name: "Internal server error",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("Events", mock.Anything, publicOnly).Return(nil, errors.New("database error"))
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

			req, err := http.NewRequest("GET", "/calendar.ics", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr)
			}
		})
	}
}
