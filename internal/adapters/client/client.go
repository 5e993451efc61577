// Package client is the consuming side of the bitlog API
// Reads go through an injectable URL-keyed cache and degrade to empty
// views on transport failure so callers can always render something
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"bitlog/internal/core/wordtok"
	perr "bitlog/internal/platform/errors"
	"bitlog/internal/platform/logger"
	entries "bitlog/internal/services/entries/domain"
	journal "bitlog/internal/services/journal/domain"
)

const (
	defaultTimeout = 10 * time.Second
	defaultUA      = "bitlog-client"
	maxSubmitWords = 10
)

// Options configures the Client
type Options struct {
	// BaseURL points at the API root, e.g. http://localhost:4000/api/v1
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Cache is the read-through seam, nil disables caching
	Cache Cache
}

// Client is a minimal bitlog API client
type Client struct {
	http  *http.Client
	opts  Options
	cache Cache
	log   logger.Logger
	now   func() time.Time
}

// New creates a Client with sane defaults
func New(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	cache := o.Cache
	if cache == nil {
		cache = nopCache{}
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		cache: cache,
		log:   *logger.Named("client"),
		now:   time.Now,
	}
}

// Invalidate drops every cached read
func (c *Client) Invalidate() { c.cache.Clear() }

// envelope mirrors the server response wrapper
type envelope struct {
	StatusCode int             `json:"status_code"`
	Code       int             `json:"code,omitempty"`
	Error      string          `json:"error,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
}

// FetchCalendar returns a user's raw timestamped entries, oldest first
// Transport failure yields an empty set, not an error
func (c *Client) FetchCalendar(ctx context.Context, name string) (entries.CalendarEntries, error) {
	var out entries.CalendarEntries
	c.getInto(ctx, "/calendar/"+url.PathEscape(name), &out)
	return out, nil
}

// FetchUserHistory returns a user's ascending history
func (c *Client) FetchUserHistory(ctx context.Context, name string) (entries.UserEntries, error) {
	var out entries.UserEntries
	c.getInto(ctx, "/user/"+url.PathEscape(name), &out)
	return out, nil
}

// FetchAllRecent returns the shared feed, newest first
// limit zero keeps the server default
func (c *Client) FetchAllRecent(ctx context.Context, limit int) (entries.RecentFeed, error) {
	path := "/all_recent"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var out entries.RecentFeed
	c.getInto(ctx, path, &out)
	return out, nil
}

// FetchUsers returns known user names
func (c *Client) FetchUsers(ctx context.Context) (entries.Users, error) {
	var out entries.Users
	c.getInto(ctx, "/users", &out)
	return out, nil
}

// FetchTimeline returns a user's aggregated timeline, newest day first
func (c *Client) FetchTimeline(ctx context.Context, name string) (journal.Timeline, error) {
	var out journal.Timeline
	c.getInto(ctx, "/journal/"+url.PathEscape(name)+"/timeline", &out)
	return out, nil
}

// FetchHeatmap returns a user's shaded grid
func (c *Client) FetchHeatmap(ctx context.Context, name string) (journal.Heatmap, error) {
	var out journal.Heatmap
	c.getInto(ctx, "/journal/"+url.PathEscape(name)+"/heatmap", &out)
	return out, nil
}

// FetchGlobalHeatmap returns the contributor-shaded grid
func (c *Client) FetchGlobalHeatmap(ctx context.Context) (journal.Heatmap, error) {
	var out journal.Heatmap
	c.getInto(ctx, "/journal/heatmap", &out)
	return out, nil
}

// FetchStreaks returns current runs, longest first
func (c *Client) FetchStreaks(ctx context.Context) (journal.Streaks, error) {
	var out journal.Streaks
	c.getInto(ctx, "/journal/streaks", &out)
	return out, nil
}

// Submit posts an entry after an advisory word guard and invalidates
// the read cache on success. The server remains authoritative
func (c *Client) Submit(ctx context.Context, in entries.SubmitInput) (entries.SubmitResult, error) {
	var out entries.SubmitResult
	n := wordtok.Count(in.Text)
	if n == 0 {
		return out, perr.Validationf("entry text required")
	}
	if n > maxSubmitWords {
		return out, perr.Validationf("max %d words", maxSubmitWords)
	}

	body, err := json.Marshal(in)
	if err != nil {
		return out, perr.Wrapf(err, perr.ErrorCodeUnknown, "client marshal failed")
	}
	env, err := c.do(ctx, http.MethodPost, "/entry", body)
	if err != nil {
		return out, err
	}
	if env.Error != "" {
		return out, perr.Newf(perr.ErrorCode(env.Code), "%s", env.Error)
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, perr.Wrapf(err, perr.ErrorCodeUnknown, "client decode failed")
	}
	c.cache.Clear()
	return out, nil
}

// getInto fills v from cache or a GET, leaving v zero on any failure
func (c *Client) getInto(ctx context.Context, path string, v any) {
	if raw, ok := c.cache.Get(path); ok {
		if json.Unmarshal(raw, v) == nil {
			return
		}
		// stale or corrupt payload, fall through to a fresh fetch
	}
	env, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("fetch failed, serving empty view")
		return
	}
	if env.Error != "" {
		c.log.Warn().Str("path", path).Str("error", env.Error).Msg("api error, serving empty view")
		return
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("decode failed, serving empty view")
		return
	}
	c.cache.Put(path, env.Data)
}

// do issues one request and decodes the envelope
func (c *Client) do(ctx context.Context, method, path string, body []byte) (envelope, error) {
	var env envelope
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.opts.BaseURL+path, rd)
	if err != nil {
		return env, perr.Wrapf(err, perr.ErrorCodeUnknown, "client new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := c.now()
	resp, err := c.http.Do(req)
	if err != nil {
		return env, perr.Wrapf(err, perr.ErrorCodeUnavailable, "client do failed")
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", c.now().Sub(start)).
		Msg("bitlog http response")

	if err := json.NewDecoder(io.LimitReader(resp.Body, 4<<20)).Decode(&env); err != nil {
		return env, perr.Wrapf(err, perr.ErrorCodeUnknown, "client envelope decode failed")
	}
	return env, nil
}

