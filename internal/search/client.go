package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// TotalCountHeader carries the number of matches on HEAD /api/users.
const TotalCountHeader = "X-Total-Count"

// Client searches users over HTTP.
type Client struct {
	client  *http.Client
	baseURL string
	logger  zerolog.Logger
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.client = hc
	}
}

// WithClientLogger sets the client logger
func WithClientLogger(logger zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the users API served at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		client:  &http.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search fetches page (1-based) of users matching term. The page and the
// total are requested in parallel. On failure it returns an empty page
// together with the error.
func (c *Client) Search(ctx context.Context, term string, page, pageSize int) (Page, error) {
	empty := Page{Data: []Item{}}
	if page < 1 {
		return empty, ErrInvalidPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	start := (page - 1) * pageSize

	query := url.Values{}
	query.Set("_start", strconv.Itoa(start))
	query.Set("_limit", strconv.Itoa(pageSize))
	countQuery := url.Values{}
	if term != "" {
		query.Set("name_like", term)
		countQuery.Set("name_like", term)
	}

	var (
		items []Item
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = c.fetchPage(gctx, query)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = c.fetchTotal(gctx, countQuery)
		return err
	})
	if err := g.Wait(); err != nil {
		c.logger.Error().Err(err).Str("term", term).Int("page", page).Msg("user search failed")
		return empty, err
	}

	if items == nil {
		items = []Item{}
	}
	return Page{
		Data:    items,
		HasMore: start+pageSize < total,
		Total:   total,
	}, nil
}

func (c *Client) fetchPage(ctx context.Context, query url.Values) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/users?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch users: status %d", resp.StatusCode)
	}

	var items []Item
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return items, nil
}

func (c *Client) fetchTotal(ctx context.Context, query url.Values) (int, error) {
	target := c.baseURL + "/api/users"
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("failed to count users: status %d", resp.StatusCode)
	}

	raw := resp.Header.Get(TotalCountHeader)
	if raw == "" {
		return 0, nil
	}
	total, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s header %q: %w", TotalCountHeader, raw, err)
	}
	return total, nil
}

// GetByID fetches a single user. A missing user is reported as nil with no
// error.
func (c *Client) GetByID(ctx context.Context, id string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/users/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("failed to fetch user %s: status %d", id, resp.StatusCode)
	}

	var u User
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("failed to decode user %s: %w", id, err)
	}
	return &u, nil
}
