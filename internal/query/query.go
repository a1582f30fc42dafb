// Package query turns raw listing parameters into an event filter.
package query

import (
	"strings"
	"time"

	"campusEvents/internal/models"
)

// Params are the raw query-string values of an event listing.
type Params struct {
	StartTime  string
	EndTime    string
	Visibility string
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Build validates p and returns the conjunctive filter it describes.
// A time range needs both bounds; giving only one of them is an error.
func Build(p Params) (models.EventFilter, error) {
	var filter models.EventFilter

	startRaw := strings.TrimSpace(p.StartTime)
	endRaw := strings.TrimSpace(p.EndTime)

	switch {
	case startRaw == "" && endRaw == "":
	case startRaw == "":
		return models.EventFilter{}, models.NewValidationError("start_time", "is required when end_time is given")
	case endRaw == "":
		return models.EventFilter{}, models.NewValidationError("end_time", "is required when start_time is given")
	default:
		start, err := parseTime(startRaw)
		if err != nil {
			return models.EventFilter{}, models.NewValidationError("start_time", "must be an RFC3339 timestamp")
		}

		end, err := parseTime(endRaw)
		if err != nil {
			return models.EventFilter{}, models.NewValidationError("end_time", "must be an RFC3339 timestamp")
		}

		if start.After(end) {
			return models.EventFilter{}, models.NewValidationError("start_time", "must not be after end_time")
		}

		filter.Start = &start
		filter.End = &end
	}

	if v := strings.TrimSpace(p.Visibility); v != "" {
		visibility := models.Visibility(v)
		if !visibility.Valid() {
			return models.EventFilter{}, models.NewValidationError("visibility", "must be one of: public private university-only")
		}

		filter.Visibility = visibility
	}

	return filter, nil
}

// parseTime accepts RFC3339 and, for convenience, zone-less timestamps and
// plain dates, which are read as UTC. A space in place of the "+" of a
// positive offset is accepted, since an unencoded "+" decodes to a space in a
// query string.
func parseTime(s string) (time.Time, error) {
	t, err := parseLayouts(s)
	if err != nil && strings.Count(s, " ") == 1 {
		if t, plusErr := parseLayouts(strings.Replace(s, " ", "+", 1)); plusErr == nil {
			return t, nil
		}
	}
	return t, err
}

func parseLayouts(s string) (time.Time, error) {
	var err error
	for _, layout := range timeLayouts {
		var t time.Time
		t, err = time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}
