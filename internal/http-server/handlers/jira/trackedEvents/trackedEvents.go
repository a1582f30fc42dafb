package trackedEvents

import (
	"campusEvents/internal/lib/api/response"
	"campusEvents/internal/lib/logger/sl"
	"campusEvents/internal/models"
	"context"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	Events(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
}

// New handles GET /jira/events, the events that were imported from Jira.
func New(log *slog.Logger, eventsGetter EventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.jira.trackedEvents.New"

		log := log.With(slog.String("op", op))

		events, err := eventsGetter.Events(r.Context(), models.EventFilter{TrackedOnly: true})
		if err != nil {
			log.Error("failed to get tracked events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		if events == nil {
			events = []models.Event{}
		}

		log.Info("tracked events retrieved", slog.Int("count", len(events)))

		render.JSON(w, r, events)
	}
}
