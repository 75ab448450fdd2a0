// Package server implements the HTTP surface of the quote engine: a
// stateless JSON API with token-bucket rate limiting (golang.org/x/time/rate),
// request ID tracking, Prometheus instrumentation, panic recovery, graceful
// shutdown, and health/readiness probes.
//
// Basic startup with custom routes:
//
//	s := server.New(
//	    server.WithName("fairfixd"),
//	    server.WithVersion(version),
//	    server.WithHandler(routes),
//	)
//	if err := s.Run(ctx); err != nil {
//	    // ...
//	}
//
// Error responses follow a consistent JSON structure with a code, message,
// request ID, timestamp, and retryable flag. See pkg/errors for the codes.
package server
