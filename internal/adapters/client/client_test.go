package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	perr "bitlog/internal/platform/errors"
	entries "bitlog/internal/services/entries/domain"
)

func wrap(t *testing.T, data any) []byte {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	env, err := json.Marshal(map[string]any{
		"status_code": 200,
		"status":      "OK",
		"data":        json.RawMessage(raw),
	})
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	return env
}

func TestFetch_ReadThroughCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(wrap(t, entries.Users{Users: []string{"ana", "bo"}}))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, Cache: NewMemCache()})

	for range 3 {
		got, err := c.FetchUsers(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Users) != 2 {
			t.Fatalf("expected 2 users, got %+v", got.Users)
		}
	}
	if n := hits.Load(); n != 1 {
		t.Fatalf("expected a single upstream hit, got %d", n)
	}
}

func TestSubmit_InvalidatesCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost {
			_, _ = w.Write(wrap(t, entries.SubmitResult{OK: true, TS: 1760755200}))
			return
		}
		hits.Add(1)
		_, _ = w.Write(wrap(t, entries.Users{Users: []string{"ana"}}))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, Cache: NewMemCache()})

	if _, err := c.FetchUsers(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.FetchUsers(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := hits.Load(); n != 1 {
		t.Fatalf("expected cached second read, got %d hits", n)
	}

	res, err := c.Submit(context.Background(), entries.SubmitInput{
		Name: "ana", Text: "shipped it",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.OK {
		t.Fatalf("expected ok result, got %+v", res)
	}

	if _, err := c.FetchUsers(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := hits.Load(); n != 2 {
		t.Fatalf("expected refetch after submit, got %d hits", n)
	}
}

func TestFetch_DegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // transport now refuses connections

	c := New(Options{BaseURL: srv.URL})

	got, err := c.FetchTimeline(context.Background(), "ana")
	if err != nil {
		t.Fatalf("reads must not surface transport errors: %v", err)
	}
	if len(got.Days) != 0 {
		t.Fatalf("expected empty timeline, got %+v", got.Days)
	}

	feed, err := c.FetchAllRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("reads must not surface transport errors: %v", err)
	}
	if len(feed.Entries) != 0 {
		t.Fatalf("expected empty feed, got %+v", feed.Entries)
	}
}

func TestSubmit_WordGuard(t *testing.T) {
	c := New(Options{BaseURL: "http://127.0.0.1:1"})

	_, err := c.Submit(context.Background(), entries.SubmitInput{Name: "ana", Text: "   "})
	if err == nil || err.Error() != "entry text required" {
		t.Fatalf("expected entry text required, got %v", err)
	}

	long := strings.Repeat("word ", 11)
	_, err = c.Submit(context.Background(), entries.SubmitInput{Name: "ana", Text: long})
	if err == nil || err.Error() != "max 10 words" {
		t.Fatalf("expected max 10 words, got %v", err)
	}
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("word guard must be a validation error, got %v", err)
	}
}

func TestSubmit_SurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status_code": 403,
			"status":      "Forbidden",
			"code":        int(perr.ErrorCodeForbidden),
			"error":       "invalid credentials",
		})
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL})

	_, err := c.Submit(context.Background(), entries.SubmitInput{
		Name: "ana", Password: "wrong", Text: "hello there",
	})
	if err == nil || err.Error() != "invalid credentials" {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if !perr.IsCode(err, perr.ErrorCodeForbidden) {
		t.Fatalf("expected forbidden code, got %v", err)
	}
}

func TestMemCache_TTL(t *testing.T) {
	c := NewMemCache(WithTTL(time.Minute))
	c.Put("k", []byte("v"))
	if _, ok := c.Get("k"); !ok {
		t.Fatal("fresh entry should hit")
	}
	// advance the clock past the ttl
	c.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	if _, ok := c.Get("k"); ok {
		t.Fatal("stale entry should miss")
	}
}
