package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPageSize = 20
	DefaultTimeout  = 10 * time.Second

	// maxErrorBody bounds how much of a failed response is kept in an error.
	maxErrorBody = 2048
)

type Config struct {
	BaseURL    string
	UserEmail  string
	APIToken   string
	ProjectKey string
	PageSize   int
	Timeout    time.Duration
}

// basicAuthTransport signs every request with the email and API token pair
// Jira Cloud expects.
type basicAuthTransport struct {
	email     string
	token     string
	transport http.RoundTripper
}

func (t *basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.SetBasicAuth(t.email, t.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "campus-events/1.0")
	return t.transport.RoundTrip(req)
}

type Client struct {
	baseURL    string
	projectKey string
	pageSize   int
	httpClient *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	const op = "tracker.jira.NewClient"

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%s: base url must be an absolute http(s) URL, got %q", op, cfg.BaseURL)
	}
	if cfg.ProjectKey == "" {
		return nil, fmt.Errorf("%s: project key is required", op)
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		projectKey: cfg.ProjectKey,
		pageSize:   pageSize,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &basicAuthTransport{
				email:     cfg.UserEmail,
				token:     cfg.APIToken,
				transport: http.DefaultTransport,
			},
		},
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// IssueURL is the browser link of the issue with the given key.
func (c *Client) IssueURL(key string) string {
	return c.baseURL + "/browse/" + url.PathEscape(key)
}

// Myself returns the profile of the authenticated user. It doubles as the
// connectivity check.
func (c *Client) Myself(ctx context.Context) (json.RawMessage, error) {
	const op = "tracker.jira.Myself"

	var raw json.RawMessage
	if err := c.get(ctx, op, "/rest/api/3/myself", nil, &raw); err != nil {
		return nil, err
	}

	return raw, nil
}

// Project returns the raw description of the configured project.
func (c *Client) Project(ctx context.Context) (json.RawMessage, error) {
	const op = "tracker.jira.Project"

	var raw json.RawMessage
	if err := c.get(ctx, op, "/rest/api/3/project/"+url.PathEscape(c.projectKey), nil, &raw); err != nil {
		return nil, err
	}

	return raw, nil
}

// SearchIssues returns the newest issues of the configured project, one page
// of at most PageSize.
func (c *Client) SearchIssues(ctx context.Context) ([]Issue, error) {
	const op = "tracker.jira.SearchIssues"

	params := url.Values{}
	params.Set("jql", fmt.Sprintf(`project="%s" ORDER BY created DESC`, c.projectKey))
	params.Set("maxResults", strconv.Itoa(c.pageSize))

	var resp searchResponse
	if err := c.get(ctx, op, "/rest/api/3/search", params, &resp); err != nil {
		return nil, err
	}

	if resp.Issues == nil {
		return []Issue{}, nil
	}

	return resp.Issues, nil
}

func (c *Client) get(ctx context.Context, op, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &IntegrationError{Op: op, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &IntegrationError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &IntegrationError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &IntegrationError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to decode response: %w", err),
		}
	}

	return nil
}
