// Package calendar renders events as an iCalendar feed.
package calendar

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"campusEvents/internal/models"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

const (
	ProductID = "-//Campus Events//EN"
	// EventDuration is the fixed length given to every feed entry, events
	// carry only a start time.
	EventDuration = time.Hour
)

const emptyCalendar = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:" + ProductID + "\r\n" +
	"END:VCALENDAR\r\n"

// uidNamespace seeds the per-event UIDs so that a calendar client sees the
// same UID for an event across refreshes.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("campus-events:calendar"))

// Build encodes events as a VCALENDAR with one VEVENT per event.
// now is used as the DTSTAMP of every entry.
func Build(events []models.Event, now time.Time) (string, error) {
	const op = "calendar.Build"

	// the encoder refuses a calendar without components
	if len(events) == 0 {
		return emptyCalendar, nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)

	for _, e := range events {
		cal.Children = append(cal.Children, toVEvent(e, now))
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return "", fmt.Errorf("%s: failed to encode calendar: %w", op, err)
	}

	return buf.String(), nil
}

func EventUID(id int64) string {
	return uuid.NewSHA1(uidNamespace, []byte(strconv.FormatInt(id, 10))).String()
}

func toVEvent(e models.Event, now time.Time) *ical.Component {
	start := e.Date.UTC()

	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, EventUID(e.ID))
	ve.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	ve.Props.SetText(ical.PropSummary, e.Name)
	ve.Props.SetDateTime(ical.PropDateTimeStart, start)
	ve.Props.SetDateTime(ical.PropDateTimeEnd, start.Add(EventDuration))

	if e.Description != "" {
		ve.Props.SetText(ical.PropDescription, e.Description)
	}
	if e.Location != "" {
		ve.Props.SetText(ical.PropLocation, e.Location)
	}
	if e.Link != "" {
		link := ical.NewProp(ical.PropURL)
		link.Value = e.Link
		ve.Props.Set(link)
	}

	ve.Props.SetText(ical.PropStatus, "CONFIRMED")

	return ve
}
