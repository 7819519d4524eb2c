package release

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/codingconcepts/grabkernel/models"
)

// maxErrorBody bounds how much of a failed response is kept for the error.
const maxErrorBody = 64 << 10

// Client fetches release metadata from the GitHub REST API.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
}

// New creates a release client. Requests are unauthenticated.
func New(c *http.Client, baseURL, userAgent string) *Client {
	return &Client{
		http:      c,
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
	}
}

// LatestURL returns the "latest release" endpoint for owner/repo.
func (c *Client) LatestURL(owner, repo string) string {
	return fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.baseURL, owner, repo)
}

// LatestRelease fetches the latest published release of owner/repo. A non-2xx
// response is returned as a *models.StatusError.
func (c *Client) LatestRelease(ctx context.Context, owner, repo string) (models.GitRelease, error) {
	url := c.LatestURL(owner, repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.GitRelease{}, fmt.Errorf("creating release request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	slog.Debug("fetching release metadata", "url", url)
	resp, err := c.http.Do(req)
	if err != nil {
		return models.GitRelease{}, fmt.Errorf("fetching release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return models.GitRelease{}, models.NewStatusError(url, resp, body)
	}

	var release models.GitRelease
	if err = json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return models.GitRelease{}, fmt.Errorf("reading release: %w", err)
	}
	release.Normalize()

	slog.Debug("fetched release metadata", "tag", release.TagName, "assets", len(release.Assets))
	return release, nil
}
