package query

import (
	"testing"
	"time"

	"campusEvents/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)

	testCases := []struct {
		name      string
		params    Params
		want      models.EventFilter
		wantField string
	}{
		{
			name:   "No parameters match everything",
			params: Params{},
			want:   models.EventFilter{},
		},
		{
			name:   "Time range",
			params: Params{StartTime: "2025-01-01T00:00:00Z", EndTime: "2025-12-31T23:59:59Z"},
			want:   models.EventFilter{Start: &start, End: &end},
		},
		{
			name:   "Zone-less timestamps are UTC",
			params: Params{StartTime: "2025-01-01T00:00:00", EndTime: "2025-12-31T23:59:59"},
			want:   models.EventFilter{Start: &start, End: &end},
		},
		{
			name:   "Offsets are normalised to UTC",
			params: Params{StartTime: "2025-01-01T02:00:00+02:00", EndTime: "2025-12-31T23:59:59Z"},
			want:   models.EventFilter{Start: &start, End: &end},
		},
		{
			name:   "Unencoded plus of an offset",
			params: Params{StartTime: "2025-01-01T02:00:00 02:00", EndTime: "2025-12-31T23:59:59Z"},
			want:   models.EventFilter{Start: &start, End: &end},
		},
		{
			name:      "Space elsewhere is still malformed",
			params:    Params{StartTime: "2025-01-01 02:00:00", EndTime: "2025-12-31T23:59:59Z"},
			wantField: "start_time",
		},
		{
			name:   "Visibility only",
			params: Params{Visibility: "public"},
			want:   models.EventFilter{Visibility: models.VisibilityPublic},
		},
		{
			name: "Range and visibility",
			params: Params{
				StartTime:  "2025-01-01T00:00:00Z",
				EndTime:    "2025-12-31T23:59:59Z",
				Visibility: "university-only",
			},
			want: models.EventFilter{Start: &start, End: &end, Visibility: models.VisibilityUniversityOnly},
		},
		{
			name:      "Only start",
			params:    Params{StartTime: "2025-01-01T00:00:00Z"},
			wantField: "end_time",
		},
		{
			name:      "Only end",
			params:    Params{EndTime: "2025-12-31T23:59:59Z"},
			wantField: "start_time",
		},
		{
			name:      "Inverted range",
			params:    Params{StartTime: "2025-12-31T23:59:59Z", EndTime: "2025-01-01T00:00:00Z"},
			wantField: "start_time",
		},
		{
			name:      "Malformed start",
			params:    Params{StartTime: "yesterday", EndTime: "2025-12-31T23:59:59Z"},
			wantField: "start_time",
		},
		{
			name:      "Malformed end",
			params:    Params{StartTime: "2025-01-01T00:00:00Z", EndTime: "31/12/2025"},
			wantField: "end_time",
		},
		{
			name:      "Unknown visibility",
			params:    Params{Visibility: "faculty"},
			wantField: "visibility",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Build(tc.params)
			if tc.wantField != "" {
				var vErr *models.ValidationError
				require.ErrorAs(t, err, &vErr)
				require.Len(t, vErr.Fields, 1)
				assert.Equal(t, tc.wantField, vErr.Fields[0].Field)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBuild_DateOnly(t *testing.T) {
	t.Parallel()

	got, err := Build(Params{StartTime: "2025-04-01", EndTime: "2025-04-30"})
	require.NoError(t, err)

	require.NotNil(t, got.Start)
	require.NotNil(t, got.End)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), *got.Start)
	assert.Equal(t, time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC), *got.End)
}
