package http

import "net/http"

// NewRouter registers every endpoint behind the rate limiter.
func NewRouter(
	limiter *RateLimiter,
	projection *ProjectionHandler,
	comparison *ComparisonHandler,
) *http.ServeMux {
	mux := http.NewServeMux()

	routes := map[string]http.HandlerFunc{
		"/help/projection":       projection.Project,
		"/help/projection/table": projection.Table,
		"/help/compare":          comparison.Compare,
		"/help/defaults":         projection.Defaults,
	}
	for path, handler := range routes {
		mux.Handle(path, RateLimitMiddleware(limiter, handler))
	}

	return mux
}
