package api

import (
	"context"
	"net/http"
	"net/url"
)

// DashboardStats fetches the pre-aggregated admin dashboard numbers.
func (c *Client) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var resp struct {
		Response
		Stats DashboardStats `json:"stats"`
	}
	if err := c.do(ctx, http.MethodGet, "/analytics/dashboard", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Stats, nil
}

// Demographics fetches the platform-wide user demographics.
func (c *Client) Demographics(ctx context.Context) (*Demographics, error) {
	var resp struct {
		Response
		Demographics Demographics `json:"demographics"`
	}
	if err := c.do(ctx, http.MethodGet, "/analytics/demographics", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Demographics, nil
}

// AttendeeInsights fetches attendee distributions, platform-wide when
// eventID is empty or scoped to one event otherwise.
func (c *Client) AttendeeInsights(ctx context.Context, eventID string) (*AttendeeInsights, error) {
	query := url.Values{}
	if eventID != "" {
		query.Set("eventId", eventID)
	}
	var resp struct {
		Response
		Insights AttendeeInsights `json:"insights"`
	}
	if err := c.do(ctx, http.MethodGet, "/analytics/attendee-insights", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Insights, nil
}
