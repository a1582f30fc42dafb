package testConnection

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

const msgConnected = "Connection successful!"

type ConnectionResponse struct {
	response.Response
	Message      string          `json:"message,omitempty"`
	RemoteStatus int             `json:"remote_status,omitempty"`
	UserInfo     json.RawMessage `json:"jira_user_info,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ConnectionTester
type ConnectionTester interface {
	Myself(ctx context.Context) (json.RawMessage, error)
}

func New(log *slog.Logger, tester ConnectionTester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.jira.testConnection.New"

		log := log.With(slog.String("op", op))

		userInfo, err := tester.Myself(r.Context())
		if err != nil {
			var iErr *jira.IntegrationError
			if errors.As(err, &iErr) {
				log.Error("jira connection failed", sl.Err(err))
				render.Status(r, http.StatusBadGateway)
				render.JSON(w, r, ConnectionResponse{
					Response:     response.Error(iErr.Describe()),
					RemoteStatus: iErr.StatusCode,
				})
				return
			}

			log.Error("failed to test jira connection", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to test jira connection"))
			return
		}

		log.Info("jira connection ok")

		render.JSON(w, r, ConnectionResponse{
			Response: response.OK(),
			Message:  msgConnected,
			UserInfo: userInfo,
		})
	}
}
