package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/eventx-studio/eventx-cli/session"
	"github.com/eventx-studio/eventx-cli/users"
)

// Client talks to the EventX REST backend. Authentication rides on the
// backend's session cookie, kept in the client's cookie jar, so one
// Client instance plays the role a browser tab does for the web front
// end. Client performs no business logic of its own: availability,
// seat enforcement and aggregation are all owned by the backend.
type Client struct {
	baseURL string
	http    *http.Client
	jar     *cookiejar.Jar
}

// Option defines a function type to modify the Client instance.
type Option func(*Client)

// WithTimeout overrides the default per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// New returns a Client for the backend at baseURL (including the /api
// prefix).
func New(baseURL string, options ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("[api.New] baseURL is required")
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "[api.New] cookie jar")
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: 15 * time.Second},
		jar:     jar,
	}
	for _, option := range options {
		option(c)
	}
	return c, nil
}

// do performs one exchange against the backend: marshals body when
// present, decodes into out, and converts success:false (or an
// undecodable non-2xx reply) into an *APIError. Transport failures
// come back wrapped so callers can tell the two taxonomies apart.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out envelope) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "[Client.do] encode request body")
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return errors.Wrap(err, "[Client.do] build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "[Client.do] %s %s", method, path)
	}
	defer resp.Body.Close()

	log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("api call")

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return errors.Wrapf(err, "[Client.do] decode %s %s response", method, path)
	}
	if ok, message := out.status(); !ok {
		return &APIError{Status: resp.StatusCode, Message: message}
	}
	return nil
}

// Login exchanges credentials for the user identity. The backend sets
// its auth cookie on this response; the cookie stays in the jar for
// every later call.
func (c *Client) Login(ctx context.Context, email, password string) (users.User, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		Response
		User users.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &resp); err != nil {
		return users.User{}, err
	}
	return resp.User, nil
}

// Register creates a new account. The caller logs in separately
// afterwards, matching the backend's flow.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	var resp Response
	return c.do(ctx, http.MethodPost, "/auth/register", nil, body, &resp)
}

// Logout invalidates the backend session. Callers clear local state
// regardless of the outcome; see session.Store.Logout.
func (c *Client) Logout(ctx context.Context) error {
	var resp Response
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, &resp)
}

// Profile fetches the current user's identity, used for the optional
// verification of a restored session.
func (c *Client) Profile(ctx context.Context) (users.User, error) {
	var resp struct {
		Response
		User users.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, nil, &resp); err != nil {
		return users.User{}, err
	}
	return resp.User, nil
}

// UpdateProfile pushes the analytics attributes collected during
// booking to the backend.
func (c *Client) UpdateProfile(ctx context.Context, profile users.Profile) error {
	var resp Response
	return c.do(ctx, http.MethodPut, "/auth/update-profile", nil, profile, &resp)
}

// SessionExpiry reads the expiry of the auth cookie currently held in
// the jar, zero when absent or unreadable.
func (c *Client) SessionExpiry() time.Time {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return time.Time{}
	}
	return session.CookieExpiry(c.jar.Cookies(u))
}

var _ session.RemoteLogout = (*Client)(nil)
