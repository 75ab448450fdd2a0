/*
Copyright © 2025 FairFix Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"github.com/fairfix/quote-engine/pkg/api"

	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:     "serve",
	GroupID: "functional",
	Short:   "Run the quote engine HTTP API server",
	Long: `Run the quote engine HTTP API server.

The server exposes the quote, recommendation, forecast, service-catalog, and
tier endpoints under /v1, plus /health, /ready, and /metrics. It is
configured via environment variables (PORT, LOG_LEVEL, RATE_LIMIT,
FAIRFIX_DATA_DIR) and shuts down gracefully on SIGINT/SIGTERM.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return api.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
