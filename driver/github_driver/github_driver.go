// Package github_driver talks to the GitHub REST API.
package github_driver

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

	"unrot/domain"
)

// PullRequestPayload mirrors the fields of the pulls listing response that we consume.
type PullRequestPayload struct {
	ID        int64        `json:"id"`
	Number    int          `json:"number"`
	Title     string       `json:"title"`
	User      *UserPayload `json:"user"`
	Body      *string      `json:"body"`
	State     string       `json:"state"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	HTMLURL   string       `json:"html_url"`
}

type UserPayload struct {
	Login string `json:"login"`
}

type GitHubDriver struct {
	client    *http.Client
	apiURL    string
	token     string
	userAgent string
}

func NewGitHubDriver(apiURL, token string, timeout time.Duration, userAgent string) *GitHubDriver {
	return &GitHubDriver{
		client:    &http.Client{Timeout: timeout},
		apiURL:    strings.TrimRight(apiURL, "/"),
		token:     token,
		userAgent: userAgent,
	}
}

// BaseURL is used by callers that pace requests per API host.
func (d *GitHubDriver) BaseURL() string {
	return d.apiURL
}

// ListPullRequests lists pull requests of owner/repo in every state, most recently updated first.
func (d *GitHubDriver) ListPullRequests(ctx context.Context, owner, repo string, perPage int) ([]PullRequestPayload, error) {
	query := url.Values{}
	query.Set("state", "all")
	query.Set("sort", "updated")
	query.Set("direction", "desc")
	query.Set("per_page", strconv.Itoa(perPage))

	target := fmt.Sprintf("%s/repos/%s/%s/pulls?%s",
		d.apiURL, url.PathEscape(owner), url.PathEscape(repo), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build pulls request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if d.userAgent != "" {
		req.Header.Set("User-Agent", d.userAgent)
	}
	if d.token != "" {
		req.Header.Set("Authorization", "Bearer "+d.token)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pull requests: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, &domain.ExternalHTTPError{StatusCode: resp.StatusCode, URL: target}
	}

	var payload []PullRequestPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode pull requests: %w", err)
	}

	return payload, nil
}
