package jira

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegrationError(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		err          *IntegrationError
		wantError    string
		wantDescribe string
	}{
		{
			name:         "Remote status",
			err:          &IntegrationError{Op: "tracker.jira.Myself", StatusCode: http.StatusUnauthorized, Body: "Unauthorized"},
			wantError:    "tracker.jira.Myself: unexpected status 401: Unauthorized",
			wantDescribe: "jira responded with status 401: Unauthorized",
		},
		{
			name:         "Remote status without body",
			err:          &IntegrationError{Op: "tracker.jira.Project", StatusCode: http.StatusNotFound},
			wantError:    "tracker.jira.Project: unexpected status 404: ",
			wantDescribe: "jira responded with status 404",
		},
		{
			name:         "Transport failure",
			err:          &IntegrationError{Op: "tracker.jira.SearchIssues", Err: errors.New("dial tcp: connection refused")},
			wantError:    "tracker.jira.SearchIssues: dial tcp: connection refused",
			wantDescribe: "jira is unreachable",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.wantError, tc.err.Error())
			assert.Equal(t, tc.wantDescribe, tc.err.Describe())

			wrapped := fmt.Errorf("trackersync.Run: %w", tc.err)
			assert.True(t, IsIntegrationError(wrapped))
		})
	}

	assert.False(t, IsIntegrationError(errors.New("plain")))
}
