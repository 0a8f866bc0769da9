// Package tracker talks to the issue tracker: listing repositories to
// build the name-to-id index, and submitting aggregated time logs.
package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/scalableminds/toggl-export/internal/export"
)

// Client is an authenticated issue tracker API client.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
}

// NewClient creates a tracker client. Submissions are paced at one
// request per second so sequential exports stay polite to the service.
func NewClient(baseURL, token string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("X-Auth-Token", token).
		SetTimeout(30 * time.Second)

	return &Client{
		http:    c,
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// repository is one record of the repository listing.
type repository struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListRepositories fetches all repositories and returns the
// name-to-id index the parser resolves entries against.
func (c *Client) ListRepositories(ctx context.Context) (export.RepositoryIndex, error) {
	var repos []repository
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&repos).
		Get("/api/repositories")
	if err != nil {
		return nil, fmt.Errorf("repository listing request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("repository listing failed: %s; body: %s", resp.Status(), resp.String())
	}

	index := make(export.RepositoryIndex, len(repos))
	for _, r := range repos {
		index[r.Name] = r.ID
	}
	return index, nil
}

// timeLog is the submission payload for one aggregated entry.
type timeLog struct {
	Comment       string `json:"comment"`
	DurationMs    int64  `json:"durationMs"`
	DurationLabel string `json:"durationLabel"`
	Date          string `json:"date"`
}

// LogTime submits one aggregated entry against its issue. The call is
// not idempotent: submitting the same entry twice creates two logs at
// the tracker.
func (c *Client) LogTime(ctx context.Context, entry export.AggregatedEntry) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(timeLog{
			Comment:       entry.Comment,
			DurationMs:    entry.DurationMs,
			DurationLabel: entry.DurationLabel,
			Date:          entry.Day.Format("2006-01-02"),
		}).
		Post(fmt.Sprintf("/api/repositories/%s/issues/%s/timelogs", entry.RepositoryID, entry.IssueNumber))
	if err != nil {
		return fmt.Errorf("time log request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("time log for %s#%s failed: %s; body: %s",
			entry.Repository, entry.IssueNumber, resp.Status(), resp.String())
	}
	return nil
}
