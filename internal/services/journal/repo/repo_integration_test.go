//go:build integration_pg
// +build integration_pg

package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"bitlog/internal/platform/store"
)

const schema = `
create table if not exists users (
	name     text primary key,
	password text not null default ''
);
create table if not exists entries (
	id        uuid primary key,
	user_name text not null references users(name),
	ts        bigint not null,
	body      text not null
);
create index if not exists entries_user_ts on entries (user_name, ts);
`

func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mapped.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

func TestRepo_Integration_TiedTimestampOrder(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st, err := store.Open(ctx, store.Config{
		AppName: "bitlog-journal-repo-integration",
		PG:      store.PGConfig{Enabled: true, URL: dsn, MaxConns: 2},
	})
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	defer func() { _ = st.Close(context.Background()) }()

	if _, err := st.PG.Exec(ctx, schema); err != nil {
		t.Fatalf("schema create failed: %v", err)
	}

	for _, name := range []string{"ana", "bo"} {
		if _, err := st.PG.Exec(ctx, `insert into users (name) values ($1)`, name); err != nil {
			t.Fatalf("seed user failed: %v", err)
		}
	}

	// three entries share one second on the clock, inserted out of id order
	// so physical row order cannot accidentally match the expectation
	base := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC).Unix()
	seed := []struct {
		id, user string
		ts       int64
		body     string
	}{
		{"5a0f8e8e-0000-4000-8000-000000000002", "ana", base, "two"},
		{"5a0f8e8e-0000-4000-8000-000000000003", "ana", base, "three"},
		{"5a0f8e8e-0000-4000-8000-000000000001", "ana", base, "one"},
		{"5a0f8e8e-0000-4000-8000-000000000004", "bo", base + 3600, "later"},
	}
	for _, e := range seed {
		if _, err := st.PG.Exec(ctx,
			`insert into entries (id, user_name, ts, body) values ($1, $2, $3, $4)`,
			e.id, e.user, e.ts, e.body,
		); err != nil {
			t.Fatalf("seed entry failed: %v", err)
		}
	}

	r := NewPG().Bind(st.PG)

	// equal-ts rows come back in id order, every call
	for range 3 {
		rows, err := r.ListUser(ctx, "ana")
		if err != nil {
			t.Fatalf("ListUser failed: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(rows))
		}
		for i, want := range []string{"one", "two", "three"} {
			if rows[i].Text != want {
				t.Fatalf("row %d: expected %q, got %q", i, want, rows[i].Text)
			}
		}
	}

	for range 3 {
		rows, err := r.ListAll(ctx, 10)
		if err != nil {
			t.Fatalf("ListAll failed: %v", err)
		}
		if len(rows) != 4 {
			t.Fatalf("expected 4 rows, got %d", len(rows))
		}
		if rows[0].User != "bo" {
			t.Fatalf("newest row first, got %q", rows[0].User)
		}
		for i, want := range []string{"one", "two", "three"} {
			if rows[i+1].Text != want {
				t.Fatalf("tied row %d: expected %q, got %q", i, want, rows[i+1].Text)
			}
		}
	}
}
