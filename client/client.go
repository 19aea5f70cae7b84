// Package client is the typed data-access layer presentation code uses to
// talk to a wallverse server. It hides URL building, JSON encoding, the
// admin bearer token and status-code handling behind plain Go calls.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/boopul22/wallpaer-site-blog/model"
)

// Client calls the wallverse JSON API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. The default has no
// timeout; callers that want one set it here or through the context.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a Client for the server at baseURL. A nil session gets an
// in-memory one.
func New(baseURL string, session *Session, opts ...Option) *Client {
	if session == nil {
		session = NewSession(nil)
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		session:    session,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the client's session.
func (c *Client) Session() *Session {
	return c.session
}

type call struct {
	op     string // "fetch wallpapers"
	method string
	path   string
	query  url.Values
	body   any
	admin  bool
}

// do performs one request and decodes a 2xx JSON body into out.
func (c *Client) do(ctx context.Context, r call, out any) error {
	fail := func(status int, reason string, err error) *Error {
		return &Error{
			Op:      r.op,
			Status:  status,
			Message: "Failed to " + r.op,
			Reason:  reason,
			Err:     err,
		}
	}

	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return fail(0, "", fmt.Errorf("marshal request: %w", err))
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return fail(0, "", fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.admin {
		if tok := c.session.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(0, "", fmt.Errorf("send request: %w", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(resp.StatusCode, "", fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var er model.ErrorResponse
		if json.Unmarshal(respBody, &er) != nil || er.Error == "" {
			er.Error = http.StatusText(resp.StatusCode)
		}
		return fail(resp.StatusCode, er.Error, nil)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fail(resp.StatusCode, "", fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func categoryQuery(category string) url.Values {
	if category == "" || category == model.AllCategories {
		return nil
	}
	return url.Values{"category": {category}}
}

// Wallpapers lists wallpapers newest first. An empty category or "All"
// returns every wallpaper.
func (c *Client) Wallpapers(ctx context.Context, category string) ([]model.Wallpaper, error) {
	var out []model.Wallpaper
	err := c.do(ctx, call{
		op:     "fetch wallpapers",
		method: http.MethodGet,
		path:   "/api/wallpapers",
		query:  categoryQuery(category),
	}, &out)
	return out, err
}

// WallpaperBySlug returns the wallpaper with slug, or nil if there is none.
func (c *Client) WallpaperBySlug(ctx context.Context, slug string) (*model.Wallpaper, error) {
	var out model.Wallpaper
	err := c.do(ctx, call{
		op:     "fetch wallpaper",
		method: http.MethodGet,
		path:   "/api/wallpapers/" + url.PathEscape(slug),
	}, &out)
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// BlogPosts lists blog posts newest first.
func (c *Client) BlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	var out []model.BlogPost
	err := c.do(ctx, call{
		op:     "fetch blog posts",
		method: http.MethodGet,
		path:   "/api/blog-posts",
	}, &out)
	return out, err
}

// BlogPostBySlug returns the post with slug, or nil if there is none.
func (c *Client) BlogPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	var out model.BlogPost
	err := c.do(ctx, call{
		op:     "fetch blog post",
		method: http.MethodGet,
		path:   "/api/blog-posts/" + url.PathEscape(slug),
	}, &out)
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges the admin password for a token and stores it in the
// session. On failure the session is left as it was.
func (c *Client) Login(ctx context.Context, password string) error {
	var out model.LoginResponse
	err := c.do(ctx, call{
		op:     "log in",
		method: http.MethodPost,
		path:   "/api/admin/login",
		body:   model.LoginRequest{Password: password},
	}, &out)
	if err != nil {
		if e, ok := err.(*Error); ok && e.Status == http.StatusUnauthorized {
			e.Message, e.Reason = "Invalid password", ""
		}
		return err
	}
	if out.Token == "" {
		return &Error{Op: "log in", Status: http.StatusOK, Message: "Failed to log in", Reason: "empty token"}
	}
	return c.session.set(out.Token)
}

// Logout forgets the held token.
func (c *Client) Logout() error {
	return c.session.clear()
}

// IsLoggedIn reports whether the session holds a token.
func (c *Client) IsLoggedIn() bool {
	return c.session.IsLoggedIn()
}
