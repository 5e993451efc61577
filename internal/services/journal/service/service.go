// Package service derives journal views from raw entries
// Every view recomputes its aggregation from scratch per call: the
// pipeline is pure, only the fetch touches storage.
package service

import (
	"context"
	"time"

	"bitlog/internal/core/bucket"
	"bitlog/internal/core/calgrid"
	"bitlog/internal/core/journalday"
	"bitlog/internal/core/score"
	"bitlog/internal/core/streak"
	"bitlog/internal/core/wordtok"
	"bitlog/internal/modkit/repokit"
	"bitlog/internal/services/journal/domain"
	"bitlog/internal/services/journal/repo"
)

// Service defines the journal service contract
type Service interface {
	domain.ServicePort
}

// Config tunes the aggregation pipeline
type Config struct {
	// OffsetHours is the cutoff: instants before local midnight plus
	// offset still belong to the previous journal day
	OffsetHours int
	// Weeks is the visible heatmap window
	Weeks int
	// FetchLimit bounds the global aggregation fetch
	FetchLimit int
	// Location anchors local day reads, nil means UTC
	Location *time.Location
}

// Svc implements the journal service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	cfg    Config

	// now is a seam for tests
	now func() time.Time
}

// New constructs a journal service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], cfg Config) *Svc {
	if db == nil {
		panic("journal.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("journal.Service requires a non nil Repo binder")
	}
	if cfg.OffsetHours < 0 {
		cfg.OffsetHours = 0
	}
	if cfg.Weeks <= 0 {
		cfg.Weeks = calgrid.DefaultWeeks
	}
	if cfg.FetchLimit <= 0 {
		cfg.FetchLimit = 5000
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, cfg: cfg, now: time.Now}
}

// Timeline returns the user's winning entry per journal day, newest first
func (s *Svc) Timeline(ctx context.Context, name string) (domain.Timeline, error) {
	rows, err := s.Repo.ListUser(ctx, name)
	if err != nil {
		return domain.Timeline{}, err
	}
	winners := bucket.Sorted(s.aggregate(rows))
	days := make([]domain.TimelineDay, 0, len(winners))
	for i := len(winners) - 1; i >= 0; i-- {
		w := winners[i]
		days = append(days, domain.TimelineDay{
			Day:   w.Day.String(),
			TS:    w.TS.Unix(),
			Text:  w.Text,
			Words: wordtok.Count(w.Text),
			Score: score.Entry(w.Text),
		})
	}
	return domain.Timeline{Name: name, Today: s.today().String(), Days: days}, nil
}

// UserHeatmap shades the window by each day's text score
func (s *Svc) UserHeatmap(ctx context.Context, name string) (domain.Heatmap, error) {
	rows, err := s.Repo.ListUser(ctx, name)
	if err != nil {
		return domain.Heatmap{}, err
	}
	byDay := make(map[journalday.Day]bucket.Bucket)
	for k, b := range s.aggregate(rows) {
		byDay[k.Day] = b
	}
	hm := s.shade(func(d journalday.Day) (int, int) {
		b, ok := byDay[d]
		if !ok {
			return 0, 0
		}
		return score.Entry(b.Text), 0
	})
	hm.Name = name
	return hm, nil
}

// GlobalHeatmap shades the window by distinct contributor count
func (s *Svc) GlobalHeatmap(ctx context.Context) (domain.Heatmap, error) {
	rows, err := s.Repo.ListAll(ctx, s.cfg.FetchLimit)
	if err != nil {
		return domain.Heatmap{}, err
	}
	counts := bucket.ContributorCounts(s.aggregate(rows))
	return s.shade(func(d journalday.Day) (int, int) {
		n := counts[d]
		return score.ContributorShade(n), n
	}), nil
}

// CurrentStreaks returns every positive run, longest first
func (s *Svc) CurrentStreaks(ctx context.Context) (domain.Streaks, error) {
	rows, err := s.Repo.ListAll(ctx, s.cfg.FetchLimit)
	if err != nil {
		return domain.Streaks{}, err
	}
	today := s.today()
	runs := streak.Compute(bucket.DaySets(s.aggregate(rows)), today)
	out := make([]domain.UserStreak, 0, len(runs))
	for _, r := range runs {
		out = append(out, domain.UserStreak{User: r.User, Length: r.Length})
	}
	return domain.Streaks{Today: today.String(), Streaks: out}, nil
}

func (s *Svc) aggregate(rows []repo.Row) map[bucket.Key]bucket.Bucket {
	raws := make([]bucket.Raw, 0, len(rows))
	for _, r := range rows {
		raws = append(raws, bucket.Raw{User: r.User, Text: r.Text, TS: r.TS})
	}
	return bucket.Aggregate(raws, s.cfg.OffsetHours, s.cfg.Location)
}

func (s *Svc) today() journalday.Day {
	return journalday.KeyOf(s.now(), s.cfg.OffsetHours, s.cfg.Location)
}

// shade lays out the window and applies a per-day shading rule
// cellOf returns the cell's shade and raw tally for a day
func (s *Svc) shade(cellOf func(journalday.Day) (int, int)) domain.Heatmap {
	grid := calgrid.Build(s.now(), s.cfg.Weeks, s.cfg.OffsetHours, s.cfg.Location)
	cols := make([]domain.HeatColumn, 0, len(grid.Columns))
	for _, col := range grid.Columns {
		hc := domain.HeatColumn{
			Index:       col.Index,
			Label:       col.Label,
			SpacerAfter: col.SpacerAfter,
			Cells:       make([]domain.HeatCell, 0, len(col.Cells)),
		}
		for _, c := range col.Cells {
			sc, n := cellOf(c.Day)
			hc.Cells = append(hc.Cells, domain.HeatCell{
				Date:  c.Day.String(),
				Row:   c.Row,
				Score: sc,
				Count: n,
			})
		}
		cols = append(cols, hc)
	}
	return domain.Heatmap{Today: grid.Today.String(), Columns: cols}
}
