// Package http provides http transport for journal views
package http

import (
	stdhttp "net/http"

	"bitlog/internal/modkit/httpkit"
	_ "bitlog/internal/services/journal/domain" // referenced by swagger annotations
	svc "bitlog/internal/services/journal/service"
)

// Register mounts journal endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// a user's winning entry per day, newest first
	httpkit.Get(r, "/{name}/timeline", h.timeline)

	// a user's scored activity grid
	httpkit.Get(r, "/{name}/heatmap", h.userHeatmap)

	// contributor-shaded activity grid across all users
	httpkit.Get(r, "/heatmap", h.globalHeatmap)

	// current consecutive-day runs, longest first
	httpkit.Get(r, "/streaks", h.streaks)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /journal/{name}/timeline Journal journalTimeline
// @Summary A user's winning entry per journal day
// @Tags Journal
// @Produce json
// @Success 200 {object} domain.Timeline "ok"
// @Router /journal/{name}/timeline [get]
func (h *handlers) timeline(r *stdhttp.Request) (any, error) {
	return h.svc.Timeline(r.Context(), httpkit.Param(r, "name"))
}

// swagger:route GET /journal/{name}/heatmap Journal journalUserHeatmap
// @Summary A user's scored heatmap grid
// @Tags Journal
// @Produce json
// @Success 200 {object} domain.Heatmap "ok"
// @Router /journal/{name}/heatmap [get]
func (h *handlers) userHeatmap(r *stdhttp.Request) (any, error) {
	return h.svc.UserHeatmap(r.Context(), httpkit.Param(r, "name"))
}

// swagger:route GET /journal/heatmap Journal journalGlobalHeatmap
// @Summary Contributor-shaded heatmap grid
// @Tags Journal
// @Produce json
// @Success 200 {object} domain.Heatmap "ok"
// @Router /journal/heatmap [get]
func (h *handlers) globalHeatmap(r *stdhttp.Request) (any, error) {
	return h.svc.GlobalHeatmap(r.Context())
}

// swagger:route GET /journal/streaks Journal journalStreaks
// @Summary Current streaks, longest first
// @Tags Journal
// @Produce json
// @Success 200 {object} domain.Streaks "ok"
// @Router /journal/streaks [get]
func (h *handlers) streaks(r *stdhttp.Request) (any, error) {
	return h.svc.CurrentStreaks(r.Context())
}
