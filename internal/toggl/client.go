// Package toggl fetches time entries from the Toggl detailed report API.
package toggl

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/scalableminds/toggl-export/internal/export"
)

// userAgent identifies this tool to the Toggl reports API, which
// requires the parameter on every request.
const userAgent = "toggl-export"

// Client talks to the Toggl detailed report API for one workspace.
type Client struct {
	http        *resty.Client
	workspaceID int64
}

// NewClient creates a Toggl client. Toggl authenticates API tokens via
// basic auth with the token as username and the literal string
// "api_token" as password.
func NewClient(baseURL, apiToken string, workspaceID int64) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetBasicAuth(apiToken, "api_token").
		SetTimeout(30 * time.Second)

	return &Client{http: c, workspaceID: workspaceID}
}

// reportEntry is one record of the detailed report. Durations arrive in
// milliseconds.
type reportEntry struct {
	Client      string    `json:"client"`
	Project     string    `json:"project"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	Duration    int64     `json:"dur"`
}

// detailsPage is one page of the detailed report response.
type detailsPage struct {
	TotalCount int           `json:"total_count"`
	PerPage    int           `json:"per_page"`
	Data       []reportEntry `json:"data"`
}

// FetchEntries returns all time entries between from and to (inclusive,
// date granularity). The report API paginates; pages are fetched one at
// a time until an empty page signals the end.
func (c *Client) FetchEntries(ctx context.Context, from, to time.Time) ([]export.RawEntry, error) {
	var entries []export.RawEntry

	for page := 1; ; page++ {
		var result detailsPage
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"workspace_id": strconv.FormatInt(c.workspaceID, 10),
				"since":        from.Format("2006-01-02"),
				"until":        to.Format("2006-01-02"),
				"user_agent":   userAgent,
				"page":         strconv.Itoa(page),
			}).
			SetResult(&result).
			Get("/reports/api/v2/details")
		if err != nil {
			return nil, fmt.Errorf("toggl report request: %w", err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("toggl report request failed: %s; body: %s", resp.Status(), resp.String())
		}

		if len(result.Data) == 0 {
			break
		}

		for _, r := range result.Data {
			entries = append(entries, export.RawEntry{
				Client:      r.Client,
				Project:     r.Project,
				Description: r.Description,
				Start:       r.Start,
				DurationMs:  r.Duration,
			})
		}
	}

	return entries, nil
}
