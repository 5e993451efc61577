// Package http provides http transport for entries
package http

import (
	stdhttp "net/http"
	"strconv"

	"bitlog/internal/modkit/httpkit"
	"bitlog/internal/services/entries/domain"
	svc "bitlog/internal/services/entries/service"
)

// Register mounts entries endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// create or update today's entry
	httpkit.PostJSON[domain.SubmitInput](r, "/entry", h.submit)

	// a user's ascending history
	httpkit.Get(r, "/user/{name}", h.userHistory)

	// raw timestamped entries for client-side bucketing
	httpkit.Get(r, "/calendar/{name}", h.calendar)

	// known users, sorted case-insensitively
	httpkit.Get(r, "/users", h.users)

	// shared feed, newest first
	httpkit.Get(r, "/all_recent", h.recent)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /entry Entries entriesSubmit
// @Summary Create or update the day's entry
// @Tags Entries
// @Accept json
// @Produce json
// @Param payload body domain.SubmitInput true "Entry"
// @Success 200 {object} domain.SubmitResult "ok"
// @Router /entry [post]
func (h *handlers) submit(r *stdhttp.Request, in domain.SubmitInput) (any, error) {
	return h.svc.Submit(r.Context(), in)
}

// swagger:route GET /user/{name} Entries entriesUserHistory
// @Summary A user's entries ascending by ts
// @Tags Entries
// @Produce json
// @Success 200 {object} domain.UserEntries "ok"
// @Router /user/{name} [get]
func (h *handlers) userHistory(r *stdhttp.Request) (any, error) {
	return h.svc.UserHistory(r.Context(), httpkit.Param(r, "name"))
}

// swagger:route GET /calendar/{name} Entries entriesCalendar
// @Summary Raw entries for calendar bucketing
// @Tags Entries
// @Produce json
// @Success 200 {object} domain.CalendarEntries "ok"
// @Router /calendar/{name} [get]
func (h *handlers) calendar(r *stdhttp.Request) (any, error) {
	return h.svc.Calendar(r.Context(), httpkit.Param(r, "name"))
}

// swagger:route GET /users Entries entriesUsers
// @Summary Known user names
// @Tags Entries
// @Produce json
// @Success 200 {object} domain.Users "ok"
// @Router /users [get]
func (h *handlers) users(r *stdhttp.Request) (any, error) {
	return h.svc.ListUsers(r.Context())
}

// swagger:route GET /all_recent Entries entriesRecent
// @Summary Recent entries across all users
// @Tags Entries
// @Produce json
// @Param limit query int false "max entries"
// @Success 200 {object} domain.RecentFeed "ok"
// @Router /all_recent [get]
func (h *handlers) recent(r *stdhttp.Request) (any, error) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	return h.svc.Recent(r.Context(), limit)
}
