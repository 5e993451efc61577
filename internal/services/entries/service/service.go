// Package service contains entry submission and read workflows
package service

import (
	"context"
	"html"
	"strings"
	"time"

	"github.com/google/uuid"

	"bitlog/internal/core/censor"
	"bitlog/internal/core/instant"
	"bitlog/internal/core/wordtok"
	"bitlog/internal/modkit/repokit"
	perr "bitlog/internal/platform/errors"
	"bitlog/internal/services/entries/domain"
	"bitlog/internal/services/entries/repo"
)

// MaxWords is the advisory entry length limit, authoritative here too
const MaxWords = 10

// maxRecentLimit bounds how much a caller can pull in one feed page
const maxRecentLimit = 5000

// Service defines the entries service contract
type Service interface {
	domain.ServicePort
}

// Config tunes the service
type Config struct {
	// RecentLimit caps the shared feed when the caller does not ask
	RecentLimit int
	// CensorTerms are masked in names and texts on write and on read
	CensorTerms []string
}

// Svc implements the entries service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	cfg    Config
	cens   *censor.Censor

	// now is a seam for tests
	now func() time.Time
}

// New constructs an entries service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], cfg Config) *Svc {
	if db == nil {
		panic("entries.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("entries.Service requires a non nil Repo binder")
	}
	if cfg.RecentLimit <= 0 {
		cfg.RecentLimit = 200
	}
	return &Svc{
		Repo:   repokit.MustBind(binder, db),
		binder: binder,
		db:     db,
		cfg:    cfg,
		cens:   censor.New(cfg.CensorTerms),
		now:    time.Now,
	}
}

// Submit validates, censors, and stores one entry
// reports overwritten when the user already holds an entry on that UTC day
func (s *Svc) Submit(ctx context.Context, in domain.SubmitInput) (domain.SubmitResult, error) {
	name := strings.TrimSpace(s.cens.Mask(in.Name))
	text := strings.TrimSpace(s.cens.Mask(in.Text))

	if name == "" {
		return domain.SubmitResult{}, perr.Validationf("name required")
	}
	if text == "" {
		return domain.SubmitResult{}, perr.Validationf("entry text required")
	}
	if wordtok.Count(text) > MaxWords {
		return domain.SubmitResult{}, perr.Validationf("max 10 words")
	}

	ts, err := s.resolveTS(in.TS)
	if err != nil {
		return domain.SubmitResult{}, err
	}

	var overwritten bool
	err = repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)

		user, err := r.GetUser(ctx, name)
		if err != nil {
			return err
		}
		if user == nil {
			if err := r.CreateUser(ctx, name, in.Password); err != nil {
				return err
			}
		} else if user.Password != in.Password {
			return perr.Forbiddenf("invalid credentials")
		}

		start, end := utcDayBounds(ts)
		overwritten, err = r.ExistsInRange(ctx, name, start, end)
		if err != nil {
			return err
		}

		return r.Insert(ctx, uuid.NewString(), name, ts, text)
	})
	if err != nil {
		return domain.SubmitResult{}, err
	}

	return domain.SubmitResult{OK: true, Overwritten: overwritten, TS: ts}, nil
}

// UserHistory returns the user's entries ascending by ts
func (s *Svc) UserHistory(ctx context.Context, name string) (domain.UserEntries, error) {
	rows, err := s.Repo.ListByUser(ctx, name)
	if err != nil {
		return domain.UserEntries{}, err
	}
	return domain.UserEntries{Name: name, Entries: s.present(rows)}, nil
}

// Calendar returns raw timestamped entries for client-side bucketing
func (s *Svc) Calendar(ctx context.Context, name string) (domain.CalendarEntries, error) {
	rows, err := s.Repo.ListByUser(ctx, name)
	if err != nil {
		return domain.CalendarEntries{}, err
	}
	return domain.CalendarEntries{Entries: s.present(rows)}, nil
}

// Recent returns the shared feed, newest first, ties broken by user descending
func (s *Svc) Recent(ctx context.Context, limit int) (domain.RecentFeed, error) {
	if limit <= 0 {
		limit = s.cfg.RecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	rows, err := s.Repo.ListRecent(ctx, limit)
	if err != nil {
		return domain.RecentFeed{}, err
	}
	out := make([]domain.RecentEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.RecentEntry{
			User: s.cens.Mask(r.User),
			TS:   r.TS,
			Text: s.cens.Mask(html.EscapeString(r.Text)),
		})
	}
	return domain.RecentFeed{Entries: out}, nil
}

// ListUsers returns all known names sorted case-insensitively
func (s *Svc) ListUsers(ctx context.Context) (domain.Users, error) {
	names, err := s.Repo.ListUsers(ctx)
	if err != nil {
		return domain.Users{}, err
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, s.cens.Mask(n))
	}
	return domain.Users{Users: out}, nil
}

// present escapes and censors stored texts for safe embedding
func (s *Svc) present(rows []repo.Row) []domain.Entry {
	out := make([]domain.Entry, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Entry{
			TS:   r.TS,
			Text: s.cens.Mask(html.EscapeString(r.Text)),
		})
	}
	return out
}

func (s *Svc) resolveTS(v any) (int64, error) {
	if v == nil {
		return s.now().UTC().Unix(), nil
	}
	if str, ok := v.(string); ok && strings.TrimSpace(str) == "" {
		return s.now().UTC().Unix(), nil
	}
	t, err := instant.Parse(v)
	if err != nil {
		return 0, perr.Validationf("invalid ts (expected epoch seconds or ISO-8601)")
	}
	return t.Unix(), nil
}

// utcDayBounds brackets the UTC calendar day of ts, end inclusive
func utcDayBounds(ts int64) (int64, int64) {
	t := time.Unix(ts, 0).UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start.Unix(), start.Add(24*time.Hour - time.Second).Unix()
}
