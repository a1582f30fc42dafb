package fetchProject

import (
	"campusEvents/internal/lib/api/response"
	"campusEvents/internal/lib/logger/sl"
	"campusEvents/internal/tracker/jira"
	"context"
	"encoding/json"
	"errors"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type ErrorResponse struct {
	response.Response
	RemoteStatus int `json:"remote_status,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProjectFetcher
type ProjectFetcher interface {
	Project(ctx context.Context) (json.RawMessage, error)
}

// New handles GET /jira/fetch by passing the configured project through as
// Jira returned it.
func New(log *slog.Logger, fetcher ProjectFetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.jira.fetchProject.New"

		log := log.With(slog.String("op", op))

		project, err := fetcher.Project(r.Context())
		if err != nil {
			var iErr *jira.IntegrationError
			if errors.As(err, &iErr) {
				log.Error("failed to fetch jira project", sl.Err(err))
				render.Status(r, http.StatusBadGateway)
				render.JSON(w, r, ErrorResponse{
					Response:     response.Error(iErr.Describe()),
					RemoteStatus: iErr.StatusCode,
				})
				return
			}

			log.Error("failed to fetch jira project", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to fetch jira project"))
			return
		}

		log.Info("jira project fetched")

		render.JSON(w, r, project)
	}
}
