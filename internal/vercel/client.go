package vercel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alvesdmateus/deploywatch/pkg/models"
)

const defaultBaseURL = "https://api.vercel.com"

// Client provides typed, read-only access to the Vercel deployments API
type Client struct {
	baseURL    string
	token      string
	teamID     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option customises client construction
type Option func(*Client)

// WithBaseURL overrides the API base URL (used for tests and proxies)
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if strings.TrimSpace(base) != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithHTTPClient overrides the default HTTP client
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithTimeout sets the per-request timeout on the underlying HTTP client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// New creates a Vercel API client. The team ID is optional; when set it
// scopes every request to that team.
func New(token, teamID string, logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		token:      token,
		teamID:     teamID,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger.With().Str("component", "vercel-client").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LatestDeployment returns the most recent deployment, optionally filtered
// by project name. An empty result maps to NotFoundError.
func (c *Client) LatestDeployment(ctx context.Context, project string) (models.Deployment, error) {
	query := url.Values{}
	query.Set("limit", "1")
	if project != "" {
		query.Set("projectId", project)
	}
	if c.teamID != "" {
		query.Set("teamId", c.teamID)
	}

	var payload struct {
		Deployments []deploymentPayload `json:"deployments"`
	}
	if err := c.get(ctx, "/v6/deployments", query, &payload); err != nil {
		var notFound NotFoundError
		if errors.As(err, &notFound) {
			notFound.Project = project
			return models.Deployment{}, notFound
		}
		return models.Deployment{}, err
	}

	if len(payload.Deployments) == 0 {
		return models.Deployment{}, NotFoundError{Project: project}
	}
	return payload.Deployments[0].toModel(), nil
}

// GetDeployment fetches full details of a single deployment by ID
func (c *Client) GetDeployment(ctx context.Context, deploymentID string) (models.Deployment, error) {
	query := url.Values{}
	if c.teamID != "" {
		query.Set("teamId", c.teamID)
	}

	var payload deploymentPayload
	path := "/v13/deployments/" + url.PathEscape(deploymentID)
	if err := c.get(ctx, path, query, &payload); err != nil {
		// A vanished deployment mid-poll is an API failure, not a
		// not-found result: the resolve step owns that wording.
		var notFound NotFoundError
		if errors.As(err, &notFound) {
			return models.Deployment{}, APIError{
				Status: http.StatusNotFound,
				Cause:  fmt.Errorf("deployment %s not found", deploymentID),
			}
		}
		return models.Deployment{}, err
	}
	return payload.toModel(), nil
}

// get performs an authenticated GET request and decodes the JSON response
// into v. Status codes are mapped onto the package error taxonomy; a failed
// call is fatal for the caller, there is no retry here.
func (c *Client) get(ctx context.Context, path string, query url.Values, v any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return APIError{Cause: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug().
		Str("path", path).
		Msg("Sending API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return APIError{Cause: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return AuthError{}
	case resp.StatusCode == http.StatusNotFound:
		return NotFoundError{}
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return APIError{
			Status: resp.StatusCode,
			Cause:  errors.New(extractError(resp.Body)),
		}
	}

	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return APIError{Cause: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// extractError pulls a human-readable message out of an API error body
func extractError(body io.Reader) string {
	data, err := io.ReadAll(body)
	if err != nil || len(data) == 0 {
		return "no response body"
	}
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil || payload.Error.Message == "" {
		return strings.TrimSpace(string(data))
	}
	return payload.Error.Message
}

// deploymentPayload mirrors the deployment object shape shared by the
// v6 list endpoint (which uses `uid`) and the v13 details endpoint
// (which uses `id`).
type deploymentPayload struct {
	UID          string `json:"uid"`
	ID           string `json:"id"`
	State        string `json:"state"`
	URL          string `json:"url"`
	Name         string `json:"name"`
	ErrorMessage string `json:"errorMessage"`
	Meta         struct {
		GithubCommitMessage string `json:"githubCommitMessage"`
		GithubCommitSha     string `json:"githubCommitSha"`
	} `json:"meta"`
}

func (p deploymentPayload) toModel() models.Deployment {
	id := p.UID
	if id == "" {
		id = p.ID
	}
	return models.Deployment{
		ID:            id,
		State:         models.ParseState(p.State),
		URL:           p.URL,
		ProjectName:   p.Name,
		CommitMessage: p.Meta.GithubCommitMessage,
		CommitSha:     p.Meta.GithubCommitSha,
		ErrorMessage:  p.ErrorMessage,
	}
}
