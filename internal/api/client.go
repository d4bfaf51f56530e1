// Package api fetches recipes from the remote recipe API.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	cberrors "github.com/dbmrq/cookbook/internal/errors"
	"github.com/dbmrq/cookbook/internal/logging"
	"github.com/dbmrq/cookbook/internal/recipe"
)

// DefaultBaseURL is the public recipe collection endpoint.
const DefaultBaseURL = "https://dummyjson.com/recipes"

// DefaultTTL is how long a successful response is served from cache.
const DefaultTTL = 5 * time.Minute

// DefaultTimeout bounds a single request.
const DefaultTimeout = 10 * time.Second

// envelope is the response body shape.
type envelope struct {
	Recipes []recipe.Recipe `json:"recipes"`
}

type cacheEntry struct {
	recipes   []recipe.Recipe
	fetchedAt time.Time
}

// Client fetches recipe lists and caches successful responses per sort order.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	TTL        time.Duration
	UserAgent  string
	// Now returns the current time. Tests replace it to move past the TTL.
	Now func() time.Time

	logger *logging.Logger
	group  singleflight.Group

	mu    sync.Mutex
	cache map[recipe.SortOrder]cacheEntry
}

// NewClient creates a client with default settings.
func NewClient() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		TTL:        DefaultTTL,
		UserAgent:  "cookbook",
		Now:        time.Now,
		logger:     logging.Global(),
		cache:      make(map[recipe.SortOrder]cacheEntry),
	}
}

// SetLogger sets the logger for request diagnostics.
func (c *Client) SetLogger(l *logging.Logger) {
	if l != nil {
		c.logger = l
	}
}

// URL returns the request URL for the given order.
func (c *Client) URL(order recipe.SortOrder) string {
	if order == recipe.SortNone {
		return c.BaseURL
	}
	q := url.Values{}
	q.Set("sortBy", "name")
	q.Set("order", string(order))
	return c.BaseURL + "?" + q.Encode()
}

// List returns all recipes, sorted by name when order is set.
// Fresh cached results are returned without a network call.
func (c *Client) List(ctx context.Context, order recipe.SortOrder) ([]recipe.Recipe, error) {
	if _, err := recipe.ParseSortOrder(string(order)); err != nil {
		return nil, cberrors.InvalidInput("order", err.Error())
	}

	if cached, ok := c.cached(order); ok {
		c.log().Debug("recipe cache hit", "order", order.Label(), "count", len(cached))
		return recipe.CloneAll(cached), nil
	}

	v, err, shared := c.group.Do(string(order), func() (interface{}, error) {
		return c.fetch(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.log().Debug("recipe request shared", "order", order.Label())
	}
	return recipe.CloneAll(v.([]recipe.Recipe)), nil
}

// Invalidate drops every cached response.
func (c *Client) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[recipe.SortOrder]cacheEntry)
}

func (c *Client) cached(order recipe.SortOrder) ([]recipe.Recipe, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.cache[order]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.fetchedAt) >= c.TTL {
		delete(c.cache, order)
		return nil, false
	}
	return entry.recipes, true
}

func (c *Client) fetch(ctx context.Context, order recipe.SortOrder) ([]recipe.Recipe, error) {
	u := c.URL(order)
	start := c.now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, cberrors.FetchFailed(u, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		c.log().Warn("recipe request failed", "url", u, "error", err)
		return nil, cberrors.FetchFailed(u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log().Warn("recipe request returned bad status", "url", u, "status", resp.StatusCode)
		return nil, cberrors.BadStatus(u, resp.StatusCode)
	}

	var body envelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.log().Warn("recipe response could not be decoded", "url", u, "error", err)
		return nil, cberrors.DecodeFailed(u, err)
	}
	if body.Recipes == nil {
		body.Recipes = []recipe.Recipe{}
	}

	c.mu.Lock()
	if c.cache == nil {
		c.cache = make(map[recipe.SortOrder]cacheEntry)
	}
	c.cache[order] = cacheEntry{recipes: body.Recipes, fetchedAt: c.now()}
	c.mu.Unlock()

	c.log().Info("fetched recipes",
		"order", order.Label(),
		"count", len(body.Recipes),
		"duration", c.now().Sub(start).String(),
	)
	return body.Recipes, nil
}

func (c *Client) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient == nil {
		return http.DefaultClient
	}
	return c.HTTPClient
}

func (c *Client) log() *logging.Logger {
	if c.logger == nil {
		return logging.Global()
	}
	return c.logger
}
