// Package api provides the HTTP API for the application
package api

import (
	stdhttp "net/http"

	"bitlog/internal/core/version"
	"bitlog/internal/platform/config"
	"bitlog/internal/platform/logger"
	phttp "bitlog/internal/platform/net/http"
	"bitlog/internal/platform/store"

	"bitlog/internal/modkit"
	"bitlog/internal/modkit/httpkit"
	"bitlog/internal/modkit/module"
	"bitlog/internal/modkit/swaggerkit"

	metamod "bitlog/internal/services/api/meta/module"
	entriesmod "bitlog/internal/services/entries/module"
	journalmod "bitlog/internal/services/journal/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []module.Module{
		metamod.New(deps),
		entriesmod.New(deps, entriesmod.FromConfig(deps.Cfg)),
		journalmod.New(deps, journalmod.FromConfig(deps.Cfg)),
	}

	// bare liveness and build info at the root for probes and curl
	httpkit.Get(r, "/health", func(_ *stdhttp.Request) (any, error) {
		return map[string]bool{"ok": true}, nil
	})
	httpkit.Get(r, "/version", func(_ *stdhttp.Request) (any, error) {
		return version.Info(), nil
	})

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// record the module in the mount inventory, meta reports it
			module.Register(m.Name(), m.Ports())

			// mount module routes under its prefix
			m.MountRoutes(api)
		}
	})
}
