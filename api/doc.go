// Package api is the JSON boundary of the solver: wire types, the Solve
// function that turns a Request into a Response, and an http.Handler that
// serves it.
//
// Routes:
//
//	POST /api/solve   Request → Response
//	POST /api/chart   Request (jacobi or gauss-seidel) → PNG convergence chart
//	                  (?kind=errors for the max-error plot, ?format=html for
//	                  an interactive page)
//	GET  /healthz     liveness
//
// Input errors (shape, tridiagonal, symmetry, definiteness, singular LU,
// unknown method, malformed JSON) map to 400; anything else to 500. Error
// bodies are {"error": "..."}. A failed solve never yields a partial result.
//
// Each request is tagged with an ID (X-Request-ID, generated when absent) that
// is echoed back, logged, and set on the request's OpenTelemetry span.
package api
