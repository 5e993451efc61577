// Package repo provides postgres access for journal aggregation
package repo

import (
	"context"

	perr "bitlog/internal/platform/errors"

	"bitlog/internal/modkit/repokit"
)

// Row is the raw material the aggregation pipeline consumes
type Row struct {
	User string
	TS   int64
	Text string
}

// Repo is the minimal read surface for journal views
type Repo interface {
	ListUser(ctx context.Context, user string) ([]Row, error)
	ListAll(ctx context.Context, limit int) ([]Row, error)
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

func (r *queries) ListUser(ctx context.Context, user string) ([]Row, error) {
	const sql = `
select user_name, ts, body
from entries
where user_name = $1
order by ts asc, id
`
	rows, err := r.q.Query(ctx, sql, user)
	if err != nil {
		return nil, perr.FromPg(err, "list user entries")
	}
	defer rows.Close()
	return scanRows(rows)
}

func (r *queries) ListAll(ctx context.Context, limit int) ([]Row, error) {
	const sql = `
select user_name, ts, body
from entries
order by ts desc, id
limit $1
`
	rows, err := r.q.Query(ctx, sql, limit)
	if err != nil {
		return nil, perr.FromPg(err, "list all entries")
	}
	defer rows.Close()
	return scanRows(rows)
}

func scanRows(rows repokit.Rows) ([]Row, error) {
	var out []Row
	for rows.Next() {
		var rr Row
		if err := rows.Scan(&rr.User, &rr.TS, &rr.Text); err != nil {
			return nil, perr.FromPg(err, "scan entry")
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
