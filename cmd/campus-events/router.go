package main

import (
	"campusEvents/internal/http-server/handlers/calendar/getCalendar"
	"campusEvents/internal/http-server/handlers/event/createEvent"
	"campusEvents/internal/http-server/handlers/event/getEventInfo"
	"campusEvents/internal/http-server/handlers/event/getEvents"
	"campusEvents/internal/http-server/handlers/jira/fetchProject"
	"campusEvents/internal/http-server/handlers/jira/syncEvents"
	"campusEvents/internal/http-server/handlers/jira/testConnection"
	"campusEvents/internal/http-server/handlers/jira/trackedEvents"
	"campusEvents/internal/http-server/middleware/mwlogger"
	"campusEvents/internal/http-server/middleware/mwmetrics"
	"campusEvents/internal/lib/metrics"
	"campusEvents/internal/models"
	"context"
	"encoding/json"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"
	"net/http"
)

type eventStorage interface {
	CreateEvent(ctx context.Context, fields models.EventFields) (int64, error)
	Events(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
	Event(ctx context.Context, id int64) (models.Event, error)
}

type jiraTracker interface {
	Myself(ctx context.Context) (json.RawMessage, error)
	Project(ctx context.Context) (json.RawMessage, error)
}

type routerDeps struct {
	storage         eventStorage
	metrics         *metrics.Metrics
	gatherer        prometheus.Gatherer
	rejectPastDates bool

	// /jira is mounted only when both are set.
	tracker jiraTracker
	syncer  syncEvents.EventsSyncer
}

// newRouter mounts every route. Route patterns carry their file extension,
// so no middleware may rewrite the request path.
func newRouter(log *slog.Logger, deps routerDeps) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(mwmetrics.New(deps.metrics))
	router.Use(middleware.Recoverer)

	router.Post("/events", createEvent.New(log, deps.storage, deps.rejectPastDates))
	router.Get("/events", getEvents.New(log, deps.storage))
	router.Get("/events/{id}", getEventInfo.New(log, deps.storage))
	router.Get("/calendar.ics", getCalendar.New(log, deps.storage))
	router.Handle("/metrics", promhttp.HandlerFor(deps.gatherer, promhttp.HandlerOpts{}))

	if deps.tracker != nil && deps.syncer != nil {
		router.Route("/jira", func(r chi.Router) {
			r.Post("/sync", syncEvents.New(log, deps.syncer))
			r.Get("/test", testConnection.New(log, deps.tracker))
			r.Get("/fetch", fetchProject.New(log, deps.tracker))
			r.Get("/events", trackedEvents.New(log, deps.storage))
		})
	}

	return router
}
