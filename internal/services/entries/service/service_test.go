package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"bitlog/internal/modkit/repokit"
	perr "bitlog/internal/platform/errors"
	"bitlog/internal/platform/store"
	"bitlog/internal/services/entries/domain"
	"bitlog/internal/services/entries/repo"
)

// nopDB satisfies TxRunner for construction, tests bind a fake repo instead
type nopDB struct{}

func (nopDB) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (nopDB) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, nil }
func (nopDB) QueryRow(context.Context, string, ...any) store.Row             { return nil }
func (nopDB) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error {
	return fn(nopDB{})
}

// fakeRepo is an in-memory Repo
type fakeRepo struct {
	users   map[string]string
	entries []repo.Row
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[string]string{}}
}

func (f *fakeRepo) GetUser(_ context.Context, name string) (*repo.User, error) {
	pwd, ok := f.users[name]
	if !ok {
		return nil, nil
	}
	return &repo.User{Name: name, Password: pwd}, nil
}

func (f *fakeRepo) CreateUser(_ context.Context, name, password string) error {
	if _, ok := f.users[name]; !ok {
		f.users[name] = password
	}
	return nil
}

func (f *fakeRepo) Insert(_ context.Context, id, user string, ts int64, text string) error {
	f.entries = append(f.entries, repo.Row{ID: id, User: user, TS: ts, Text: text})
	return nil
}

func (f *fakeRepo) ExistsInRange(_ context.Context, user string, tsStart, tsEnd int64) (bool, error) {
	for _, e := range f.entries {
		if e.User == user && e.TS >= tsStart && e.TS <= tsEnd {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) ListByUser(_ context.Context, user string) ([]repo.Row, error) {
	var out []repo.Row
	for _, e := range f.entries {
		if e.User == user {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListRecent(_ context.Context, limit int) ([]repo.Row, error) {
	out := append([]repo.Row(nil), f.entries...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRepo) ListUsers(_ context.Context) ([]string, error) {
	var out []string
	for name := range f.users {
		out = append(out, name)
	}
	return out, nil
}

func newSvc(t *testing.T, cfg Config) (*Svc, *fakeRepo) {
	t.Helper()
	fake := newFakeRepo()
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return fake })
	s := New(nopDB{}, binder, cfg)
	s.now = func() time.Time { return time.Date(2024, 3, 6, 15, 0, 0, 0, time.UTC) }
	return s, fake
}

func TestSubmit_StoresEntry(t *testing.T) {
	s, fake := newSvc(t, Config{})
	got, err := s.Submit(context.Background(), domain.SubmitInput{
		Name: "ana", Password: "pw", Text: "went for a run",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.OK || got.Overwritten {
		t.Fatalf("unexpected result: %+v", got)
	}
	if got.TS != s.now().Unix() {
		t.Fatalf("expected server-side now ts, got %d", got.TS)
	}
	if len(fake.entries) != 1 || fake.entries[0].Text != "went for a run" {
		t.Fatalf("entry not stored: %+v", fake.entries)
	}
	if fake.users["ana"] != "pw" {
		t.Fatal("user not created with password")
	}
}

func TestSubmit_WordGuard(t *testing.T) {
	s, _ := newSvc(t, Config{})

	_, err := s.Submit(context.Background(), domain.SubmitInput{Name: "ana", Text: "   "})
	if err == nil || !strings.Contains(err.Error(), "entry text required") {
		t.Fatalf("expected entry text required, got %v", err)
	}

	long := strings.Repeat("word ", 11)
	_, err = s.Submit(context.Background(), domain.SubmitInput{Name: "ana", Text: long})
	if err == nil || !strings.Contains(err.Error(), "max 10 words") {
		t.Fatalf("expected max 10 words, got %v", err)
	}

	// exactly ten words passes
	ok := strings.TrimSpace(strings.Repeat("word ", 10))
	if _, err := s.Submit(context.Background(), domain.SubmitInput{Name: "ana", Text: ok}); err != nil {
		t.Fatalf("ten words should pass: %v", err)
	}
}

func TestSubmit_PasswordChecked(t *testing.T) {
	s, _ := newSvc(t, Config{})
	if _, err := s.Submit(context.Background(), domain.SubmitInput{
		Name: "ana", Password: "right", Text: "first",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := s.Submit(context.Background(), domain.SubmitInput{
		Name: "ana", Password: "wrong", Text: "second", TS: float64(1800000000),
	})
	if !perr.IsCode(err, perr.ErrorCodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestSubmit_OverwrittenFlag(t *testing.T) {
	s, _ := newSvc(t, Config{})
	base := time.Date(2024, 3, 6, 8, 0, 0, 0, time.UTC).Unix()

	first, err := s.Submit(context.Background(), domain.SubmitInput{
		Name: "ana", Text: "morning", TS: float64(base),
	})
	if err != nil || first.Overwritten {
		t.Fatalf("first write must not be overwritten: %+v err=%v", first, err)
	}

	second, err := s.Submit(context.Background(), domain.SubmitInput{
		Name: "ana", Text: "evening", TS: float64(base + 8*3600),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.Overwritten {
		t.Fatal("same-day resubmit should report overwritten")
	}

	nextDay, err := s.Submit(context.Background(), domain.SubmitInput{
		Name: "ana", Text: "tomorrow", TS: float64(base + 24*3600),
	})
	if err != nil || nextDay.Overwritten {
		t.Fatalf("next-day write must not be overwritten: %+v err=%v", nextDay, err)
	}
}

func TestSubmit_TSShapes(t *testing.T) {
	s, fake := newSvc(t, Config{})
	cases := []struct {
		ts   any
		want int64
	}{
		{float64(1700000000), 1700000000},
		{"1700000000", 1700000000},
		{"2023-11-14T22:13:20Z", 1700000000},
		{"", s.now().Unix()},
		{nil, s.now().Unix()},
	}
	for i, tc := range cases {
		got, err := s.Submit(context.Background(), domain.SubmitInput{
			Name: "u", Text: "x", TS: tc.ts,
		})
		if err != nil {
			t.Fatalf("case %d: unexpected error: %v", i, err)
		}
		if got.TS != tc.want {
			t.Fatalf("case %d: expected ts %d, got %d", i, tc.want, got.TS)
		}
	}
	if len(fake.entries) != len(cases) {
		t.Fatalf("expected %d stored entries, got %d", len(cases), len(fake.entries))
	}

	_, err := s.Submit(context.Background(), domain.SubmitInput{
		Name: "u", Text: "x", TS: "garbage",
	})
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("expected validation error for bad ts, got %v", err)
	}
}

func TestSubmit_CensorsNameAndText(t *testing.T) {
	s, fake := newSvc(t, Config{CensorTerms: []string{"dang"}})
	got, err := s.Submit(context.Background(), domain.SubmitInput{
		Name: "dang", Text: "dang hard day",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.OK {
		t.Fatalf("unexpected result: %+v", got)
	}
	if fake.entries[0].User != "****" || fake.entries[0].Text != "**** hard day" {
		t.Fatalf("expected censored storage, got %+v", fake.entries[0])
	}
}

func TestUserHistory_EscapesAndCensors(t *testing.T) {
	s, fake := newSvc(t, Config{CensorTerms: []string{"dang"}})
	fake.entries = append(fake.entries, repo.Row{User: "ana", TS: 100, Text: "<b>dang</b>"})

	got, err := s.UserHistory(context.Background(), "ana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got.Entries))
	}
	text := got.Entries[0].Text
	if strings.Contains(text, "<b>") {
		t.Fatalf("markup not escaped: %q", text)
	}
	if strings.Contains(text, "dang") {
		t.Fatalf("term not censored: %q", text)
	}
}

func TestRecent_DefaultLimit(t *testing.T) {
	s, fake := newSvc(t, Config{RecentLimit: 2})
	for i := int64(0); i < 5; i++ {
		fake.entries = append(fake.entries, repo.Row{User: "u", TS: i, Text: "x"})
	}
	got, err := s.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Entries) != 2 {
		t.Fatalf("expected configured limit 2, got %d", len(got.Entries))
	}
}
