// Package api exposes the snapshot store and comparison engine over HTTP.
//
// Routes:
//
//	GET /api/health                  liveness probe
//	GET /api/airports                registered airports and chart numbers
//	GET /api/cycle                   current and previous AIRAC cycle
//	GET /api/snapshot/{code}/{cycle} stored extraction snapshot
//	GET /api/compare/{code}          comparison between two cycles
//
// The compare route takes optional old and new query parameters; they
// default to the previous and current cycle. Responses use the same JSON
// shapes the snapshot store and comparison summary define.
package api
