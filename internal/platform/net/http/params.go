package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
)

// Param returns the named route parameter for the request
// empty when the pattern did not bind it
func Param(r *stdhttp.Request, name string) string {
	return chi.URLParam(r, name)
}
