// Package module wires entries into the API using modkit
package module

import (
	"net/http"

	modkit "bitlog/internal/modkit"
	"bitlog/internal/modkit/httpkit"
	"bitlog/internal/platform/net/middleware"
	str "bitlog/internal/platform/strings"
	entrieshttp "bitlog/internal/services/entries/http"
	entriesrepo "bitlog/internal/services/entries/repo"
	entriessvc "bitlog/internal/services/entries/service"
)

// Module implements the entries module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc entriessvc.Service
}

// New constructs the entries module
// entries endpoints live at the API root so the prefix stays empty
func New(deps modkit.Deps, opt Options, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("entries"),
		modkit.WithMiddlewares(middleware.AllowContentType("application/json")),
	}, opts...)...)

	repo := entriesrepo.NewPG()
	svc := entriessvc.New(deps.PG, repo, entriessvc.Config{
		RecentLimit: opt.RecentLimit,
		CensorTerms: opt.CensorTerms,
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
		entrieshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	mount := func(rr httpkit.Router) {
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	}
	if m.prefix == "" {
		r.Group(func(rr httpkit.Router) {
			if len(m.mws) > 0 {
				rr.Use(m.mws...)
			}
			mount(rr)
		})
		return
	}
	httpkit.MountUnder(r, m.prefix, m.mws, mount)
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
