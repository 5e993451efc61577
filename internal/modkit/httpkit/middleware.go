package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"bitlog/internal/platform/net/middleware"
)

// CommonStack returns a baseline per module middleware slice
// compose with your own middleware as needed in main
func CommonStack() []func(http.Handler) http.Handler {
	// tracing, recovery, and cache headers come from the shared baseline
	mw := middleware.Defaults()

	return append(mw,
		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: 500 * time.Millisecond}),

		// cross-origin (tweak config in main if needed)
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.RedirectSlashes(),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	)
}
