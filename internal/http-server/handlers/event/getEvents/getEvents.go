package getEvents

import (
	"campusEvents/internal/lib/api/response"
	"campusEvents/internal/lib/logger/sl"
	"campusEvents/internal/models"
	"campusEvents/internal/query"
	"context"
	"errors"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	Events(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
}

// New handles GET /events. The listing is a bare JSON array ordered by date.
func New(log *slog.Logger, eventsGetter EventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEvents.New"

		log := log.With(slog.String("op", op))

		q := r.URL.Query()
		filter, err := query.Build(query.Params{
			StartTime:  q.Get("start_time"),
			EndTime:    q.Get("end_time"),
			Visibility: q.Get("visibility"),
		})
		if err != nil {
			log.Error("invalid query parameters", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		events, err := eventsGetter.Events(r.Context(), filter)
		if err != nil {
			var vErr *models.ValidationError
			if errors.As(err, &vErr) {
				log.Error("filter rejected by storage", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(vErr.Error()))
				return
			}

			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		if events == nil {
			events = []models.Event{}
		}

		log.Info("events retrieved successfully", slog.Int("count", len(events)))

		render.JSON(w, r, events)
	}
}
