package createEvent

import (
	"campusEvents/internal/lib/api/response"
	"campusEvents/internal/lib/logger/sl"
	"campusEvents/internal/models"
	"context"
	"errors"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
	"time"
)

const msgCreated = "Event created successfully"

type EventRequest struct {
	Name        string    `json:"name" validate:"required,max=200"`
	Date        time.Time `json:"date" validate:"required"`
	Description string    `json:"description,omitempty" validate:"max=5000"`
	Visibility  string    `json:"visibility" validate:"required,oneof=public private university-only"`
	Location    string    `json:"location,omitempty" validate:"max=255"`
	Link        string    `json:"link,omitempty" validate:"omitempty,http_url,max=2048"`
}

type EventResponse struct {
	response.Response
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, fields models.EventFields) (int64, error)
}

// New handles POST /events. With rejectPastDates set, events dated before
// the time of the request are refused.
func New(log *slog.Logger, event EventCreator, rejectPastDates bool) http.HandlerFunc {
	validate := validator.New()

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log := log.With(
			slog.String("op", op),
		)

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validate.Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		fields := models.EventFields{
			Name:        req.Name,
			Date:        req.Date.UTC(),
			Description: req.Description,
			Visibility:  models.Visibility(req.Visibility),
			Location:    req.Location,
			Link:        req.Link,
		}

		if rejectPastDates {
			if err = fields.ValidateNotPast(time.Now()); err != nil {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))

				return
			}
		}

		eventID, err := event.CreateEvent(r.Context(), fields)
		if err != nil {
			var vErr *models.ValidationError
			if errors.As(err, &vErr) {
				log.Error("event rejected by storage", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(vErr.Error()))

				return
			}

			log.Error("failed to add event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add event"))

			return
		}

		log.Info("event added", slog.Int64("id", eventID))

		responseOK(w, r, eventID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, eventID int64) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		ID:       eventID,
		Message:  msgCreated,
	})
}
