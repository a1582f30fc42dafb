package jira

import (
	"errors"
	"fmt"
)

// IntegrationError reports a Jira call that failed in transport or answered
// with a non-success status.
type IntegrationError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *IntegrationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Op, e.StatusCode, e.Body)
}

func (e *IntegrationError) Unwrap() error {
	return e.Err
}

func IsIntegrationError(err error) bool {
	var iErr *IntegrationError
	return errors.As(err, &iErr)
}

// Describe renders the failure for API clients, without the operation name.
func (e *IntegrationError) Describe() string {
	switch {
	case e.Err != nil:
		return "jira is unreachable"
	case e.Body == "":
		return fmt.Sprintf("jira responded with status %d", e.StatusCode)
	default:
		return fmt.Sprintf("jira responded with status %d: %s", e.StatusCode, e.Body)
	}
}
