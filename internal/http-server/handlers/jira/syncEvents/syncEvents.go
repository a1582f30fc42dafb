package syncEvents

import (
	"campusEvents/internal/lib/api/response"
	"campusEvents/internal/lib/logger/sl"
	"campusEvents/internal/tracker/jira"
	"campusEvents/internal/trackersync"
	"context"
	"errors"
	"fmt"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type SyncResponse struct {
	response.Response
	Message      string               `json:"message,omitempty"`
	RemoteStatus int                  `json:"remote_status,omitempty"`
	Summary      *trackersync.Summary `json:"summary,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsSyncer
type EventsSyncer interface {
	Run(ctx context.Context) (trackersync.Summary, error)
}

// New handles POST /jira/sync. Tracker failures answer 502, store failures 500
// together with the counts of what was synced before them.
func New(log *slog.Logger, syncer EventsSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.jira.syncEvents.New"

		log := log.With(slog.String("op", op))

		summary, err := syncer.Run(r.Context())
		if err != nil {
			var iErr *jira.IntegrationError
			if errors.As(err, &iErr) {
				log.Error("tracker request failed", sl.Err(err))
				render.Status(r, http.StatusBadGateway)
				render.JSON(w, r, SyncResponse{
					Response:     response.Error(iErr.Describe()),
					RemoteStatus: iErr.StatusCode,
				})
				return
			}

			log.Error("failed to sync events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, SyncResponse{
				Response: response.Error("failed to sync events"),
				Summary:  &summary,
			})
			return
		}

		log.Info("events synced", slog.Int("synced", summary.Synced()))

		render.JSON(w, r, SyncResponse{
			Response: response.OK(),
			Message:  fmt.Sprintf("Synced %d events from Jira", summary.Synced()),
			Summary:  &summary,
		})
	}
}
