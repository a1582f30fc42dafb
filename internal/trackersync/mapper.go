package trackersync

import (
	"time"
	"unicode/utf8"

	"campusEvents/internal/models"
	"campusEvents/internal/tracker/jira"
)

const untitledIssue = "Untitled issue"

// Mapping names the Jira fields events are read from.
type Mapping struct {
	DateField         string
	LocationField     string
	DefaultVisibility models.Visibility
}

// mapIssue converts an issue into event fields. Missing or unusable remote
// values are replaced by defaults, the substituted field names are returned.
func mapIssue(issue jira.Issue, m Mapping, link string, now time.Time) (models.EventFields, []string) {
	var defaulted []string

	name := issue.Summary()
	if name == "" {
		switch {
		case issue.Key != "":
			name = issue.Key
		case issue.ID != "":
			name = "Issue " + issue.ID
		default:
			name = untitledIssue
		}
		defaulted = append(defaulted, "name")
	}

	var (
		date time.Time
		ok   bool
	)
	if m.DateField != "" {
		date, ok = issue.TimeField(m.DateField)
	}
	if !ok {
		date = now.UTC()
		defaulted = append(defaulted, "date")
	}

	var location string
	if m.LocationField != "" {
		location, _ = issue.TextField(m.LocationField)
	}

	visibility := m.DefaultVisibility
	if !visibility.Valid() {
		visibility = models.VisibilityPublic
	}

	if utf8.RuneCountInString(link) > models.MaxLinkLength {
		link = ""
		defaulted = append(defaulted, "link")
	}

	return models.EventFields{
		Name:        truncate(name, models.MaxNameLength),
		Date:        date,
		Description: truncate(issue.Description(), models.MaxDescriptionLength),
		Visibility:  visibility,
		Location:    truncate(location, models.MaxLocationLength),
		Link:        link,
	}, defaulted
}

func truncate(s string, maxRunes int) string {
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	return string([]rune(s)[:maxRunes])
}
