// Package module wires journal views into the API using modkit
package module

import (
	"net/http"
	"time"

	modkit "bitlog/internal/modkit"
	"bitlog/internal/modkit/httpkit"
	str "bitlog/internal/platform/strings"
	journalhttp "bitlog/internal/services/journal/http"
	journalrepo "bitlog/internal/services/journal/repo"
	journalsvc "bitlog/internal/services/journal/service"
)

// Module implements the journal module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc journalsvc.Service
}

// New constructs the journal module
func New(deps modkit.Deps, opt Options, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("journal"),
		modkit.WithPrefix("/journal"),
	}, opts...)...)

	loc := time.UTC
	if opt.TZ != "" {
		if l, err := time.LoadLocation(opt.TZ); err == nil {
			loc = l
		} else {
			deps.Log.Warn().Str("tz", opt.TZ).Msg("unknown timezone, falling back to UTC")
		}
	}

	repo := journalrepo.NewPG()
	svc := journalsvc.New(deps.PG, repo, journalsvc.Config{
		OffsetHours: opt.OffsetHours,
		Weeks:       opt.Weeks,
		FetchLimit:  opt.FetchLimit,
		Location:    loc,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Service: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		journalhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, str.MustPrefix(m.prefix), m.mws, func(rr httpkit.Router) {
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
