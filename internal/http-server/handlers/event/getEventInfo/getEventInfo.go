package getEventInfo

import (
	"campusEvents/internal/lib/api/response"
	"campusEvents/internal/lib/logger/sl"
	"campusEvents/internal/models"
	"campusEvents/internal/storage"
	"context"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"strconv"
)

type EventInfoResponse struct {
	response.Response
	Event *models.Event `json:"event,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	Event(ctx context.Context, id int64) (models.Event, error)
}

func New(log *slog.Logger, info EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventInfo.New"

		log := log.With(slog.String("op", op))

		eventIDStr := chi.URLParam(r, "id")
		if eventIDStr == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		eventID, err := strconv.ParseInt(eventIDStr, 10, 64)
		if err != nil || eventID < 1 {
			log.Error("invalid event id format", slog.String("id", eventIDStr))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int64("event_id", eventID))

		event, err := info.Event(r.Context(), eventID)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get event information", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event information"))
			return
		}

		log.Info("event info successfully received")

		responseOK(w, r, &event)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event *models.Event) {
	render.JSON(w, r, EventInfoResponse{
		Response: response.OK(),
		Event:    event,
	})
}
