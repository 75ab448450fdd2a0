// Package api provides the HTTP API layer for the FairFix quote engine.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring it with the quote, recommendation, forecast, service-catalog, and
// tier handlers backed by the embedded reference data.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/fairfix/quote-engine/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Configuring structured logging with application name and version
//   - Loading the reference tables (embedded CSVs, optionally layered with an
//     external data directory)
//   - Setting up route handlers (e.g., /v1/quote)
//   - Delegating server lifecycle management to pkg/server
//
// The pkg/server package handles:
//   - HTTP server setup and graceful shutdown
//   - Middleware (rate limiting, logging, metrics, panic recovery)
//   - Health and readiness endpoints
//   - Prometheus metrics
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET /v1/quote           - Repair cost estimate for a vehicle and service
//   - GET /v1/recommendations - Maintenance services due at the current mileage
//   - GET /v1/forecast        - Next maintenance service and its cost outlook
//   - GET /v1/services        - Catalog of known service names
//   - GET /v1/tier            - Resolved vehicle tier for a make/model
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Query Parameters (GET /v1/quote)
//
//   - make: Vehicle make (e.g., toyota)
//   - model: Vehicle model (e.g., camry)
//   - year: Model year (e.g., 2019)
//   - service: Service name or alias; "brakes" maps to the combined
//     front + rear brake pad estimate
//   - mileage: Optional; when present, recommended services are included
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - FAIRFIX_DATA_DIR: Directory of CSV files layered over the embedded
//     reference tables
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/fairfix/quote-engine/pkg/api.version=1.0.0'"
package api
