package getCalendar

import (
	"campusEvents/internal/calendar"
	"campusEvents/internal/lib/api/response"
	"campusEvents/internal/lib/logger/sl"
	"campusEvents/internal/models"
	"context"
	"github.com/go-chi/render"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const contentType = "text/calendar; charset=utf-8"

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	Events(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
}

// New handles GET /calendar.ics. Only public events are published.
func New(log *slog.Logger, eventsGetter EventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calendar.getCalendar.New"

		log := log.With(slog.String("op", op))

		events, err := eventsGetter.Events(r.Context(), models.EventFilter{Visibility: models.VisibilityPublic})
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		feed, err := calendar.Build(events, time.Now())
		if err != nil {
			log.Error("failed to build calendar", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to build calendar"))
			return
		}

		log.Info("calendar built", slog.Int("count", len(events)))

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", `inline; filename="calendar.ics"`)
		w.WriteHeader(http.StatusOK)
		if _, err = io.WriteString(w, feed); err != nil {
			log.Error("failed to write calendar", sl.Err(err))
		}
	}
}
