package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/fairfix/quote-engine/pkg/estimator"
	"github.com/fairfix/quote-engine/pkg/logging"
	"github.com/fairfix/quote-engine/pkg/quote"
	"github.com/fairfix/quote-engine/pkg/refdata"
	"github.com/fairfix/quote-engine/pkg/server"
)

const (
	name           = "fairfixd"
	versionDefault = "dev"

	// envDataDir points at a directory of CSV files layered over the
	// embedded reference tables.
	envDataDir = "FAIRFIX_DATA_DIR"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/fairfix/quote-engine/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, loads the reference tables, sets up routes, and
// handles graceful shutdown. Returns an error if the reference data fails to
// load or the server encounters a fatal error.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	tables, err := loadTables()
	if err != nil {
		slog.Error("failed to load reference data", "error", err)
		return err
	}

	est := estimator.New(tables)
	h := quote.NewHandlers(est)

	r := map[string]http.HandlerFunc{
		"/v1/quote":           h.HandleQuote,
		"/v1/recommendations": h.HandleRecommendations,
		"/v1/forecast":        h.HandleForecast,
		"/v1/services":        h.HandleServices,
		"/v1/tier":            h.HandleTier,
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(r),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// loadTables builds the data provider and loads the reference tables.
// Reference data problems are fatal: the estimator cannot run on partial
// tables.
func loadTables() (*refdata.Tables, error) {
	embedded := refdata.NewEmbeddedDataProvider()

	var provider refdata.DataProvider = embedded
	if dir := os.Getenv(envDataDir); dir != "" {
		layered, err := refdata.NewLayeredDataProvider(embedded, dir)
		if err != nil {
			return nil, err
		}
		provider = layered
		slog.Info("layering external reference data", "dir", dir)
	}

	tables, err := refdata.Load(provider)
	if err != nil {
		return nil, err
	}

	slog.Info("reference data loaded", "services", len(tables.Services()))
	return tables, nil
}
