package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Events retrieves a page of the event listing. The returned total is
// the backend's page count for the given filter.
func (c *Client) Events(ctx context.Context, params ListEventsParams) ([]Event, int, error) {
	query := url.Values{}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Status != "" {
		query.Set("status", params.Status)
	}
	var resp struct {
		Response
		Events     []Event `json:"events"`
		TotalPages int     `json:"totalPages"`
	}
	if err := c.do(ctx, http.MethodGet, "/events", query, nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Events, resp.TotalPages, nil
}

// Event fetches a single event's availability snapshot.
func (c *Client) Event(ctx context.Context, id string) (*Event, error) {
	var resp struct {
		Response
		Event Event `json:"event"`
	}
	if err := c.do(ctx, http.MethodGet, "/events/"+url.PathEscape(id), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Event, nil
}

// UserEvents lists the events created by the current (admin) user.
func (c *Client) UserEvents(ctx context.Context, params ListEventsParams) ([]Event, int, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	var resp struct {
		Response
		Events     []Event `json:"events"`
		TotalPages int     `json:"totalPages"`
	}
	if err := c.do(ctx, http.MethodGet, "/events/user/events", query, nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Events, resp.TotalPages, nil
}

// CreateEvent creates an event (admin only).
func (c *Client) CreateEvent(ctx context.Context, input EventInput) (*Event, error) {
	var resp struct {
		Response
		Event Event `json:"event"`
	}
	if err := c.do(ctx, http.MethodPost, "/events", nil, input, &resp); err != nil {
		return nil, err
	}
	return &resp.Event, nil
}

// UpdateEvent replaces an event's details (admin only).
func (c *Client) UpdateEvent(ctx context.Context, id string, input EventInput) (*Event, error) {
	var resp struct {
		Response
		Event Event `json:"event"`
	}
	if err := c.do(ctx, http.MethodPut, "/events/"+url.PathEscape(id), nil, input, &resp); err != nil {
		return nil, err
	}
	return &resp.Event, nil
}

// DeleteEvent removes an event (admin only).
func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	var resp Response
	return c.do(ctx, http.MethodDelete, "/events/"+url.PathEscape(id), nil, nil, &resp)
}
