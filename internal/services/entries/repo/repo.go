// Package repo provides postgres access for entries
package repo

import (
	"context"
	"strings"

	perr "bitlog/internal/platform/errors"

	"bitlog/internal/modkit/repokit"
)

// User is an account row
type User struct {
	Name     string
	Password string
}

// Row is a stored entry row
type Row struct {
	ID   string
	User string
	TS   int64
	Text string
}

// Repo is the minimal persistence surface for entries
type Repo interface {
	GetUser(ctx context.Context, name string) (*User, error)
	CreateUser(ctx context.Context, name, password string) error
	Insert(ctx context.Context, id, user string, ts int64, text string) error
	ExistsInRange(ctx context.Context, user string, tsStart, tsEnd int64) (bool, error)
	ListByUser(ctx context.Context, user string) ([]Row, error)
	ListRecent(ctx context.Context, limit int) ([]Row, error)
	ListUsers(ctx context.Context) ([]string, error)
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) GetUser(ctx context.Context, name string) (*User, error) {
	const sql = `
select name, password
from users
where name = $1
`
	var u User
	err := r.q.QueryRow(ctx, sql, name).Scan(&u.Name, &u.Password)
	if err != nil {
		if strings.Contains(err.Error(), "no rows") {
			return nil, nil
		}
		return nil, perr.FromPg(err, "get user")
	}
	return &u, nil
}

func (r *queries) CreateUser(ctx context.Context, name, password string) error {
	const sql = `
insert into users (name, password)
values ($1, $2)
on conflict (name) do nothing
`
	if _, err := r.q.Exec(ctx, sql, name, password); err != nil {
		return perr.FromPg(err, "create user")
	}
	return nil
}

func (r *queries) Insert(ctx context.Context, id, user string, ts int64, text string) error {
	const sql = `
insert into entries (id, user_name, ts, body)
values ($1, $2, $3, $4)
`
	if _, err := r.q.Exec(ctx, sql, id, user, ts, text); err != nil {
		return perr.FromPg(err, "insert entry")
	}
	return nil
}

func (r *queries) ExistsInRange(ctx context.Context, user string, tsStart, tsEnd int64) (bool, error) {
	const sql = `
select exists (
	select 1 from entries
	where user_name = $1 and ts between $2 and $3
)
`
	var found bool
	if err := r.q.QueryRow(ctx, sql, user, tsStart, tsEnd).Scan(&found); err != nil {
		return false, perr.FromPg(err, "entry range probe")
	}
	return found, nil
}

func (r *queries) ListByUser(ctx context.Context, user string) ([]Row, error) {
	const sql = `
select id, user_name, ts, body
from entries
where user_name = $1
order by ts asc, id
`
	rows, err := r.q.Query(ctx, sql, user)
	if err != nil {
		return nil, perr.FromPg(err, "list entries by user")
	}
	defer rows.Close()
	return scanRows(rows)
}

func (r *queries) ListRecent(ctx context.Context, limit int) ([]Row, error) {
	const sql = `
select id, user_name, ts, body
from entries
order by ts desc, user_name desc
limit $1
`
	rows, err := r.q.Query(ctx, sql, limit)
	if err != nil {
		return nil, perr.FromPg(err, "list recent entries")
	}
	defer rows.Close()
	return scanRows(rows)
}

func (r *queries) ListUsers(ctx context.Context) ([]string, error) {
	const sql = `
select name
from users
order by lower(name) asc, name asc
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPg(err, "list users")
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, perr.FromPg(err, "scan user")
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

func scanRows(rows repokit.Rows) ([]Row, error) {
	var out []Row
	for rows.Next() {
		var rr Row
		if err := rows.Scan(&rr.ID, &rr.User, &rr.TS, &rr.Text); err != nil {
			return nil, perr.FromPg(err, "scan entry")
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
