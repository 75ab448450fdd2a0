/*
Copyright © 2025 FairFix Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the fairfix command line interface.
//
// The CLI wraps the estimation core with Cobra commands (quote, recommend,
// forecast, services, tier, serve). Configuration is resolved from flags,
// a YAML config file ($HOME/.fairfix.yaml or --config), and FAIRFIX_*
// environment variables via Viper. Query commands render their results
// through the serializers Writer in JSON, YAML, or table format.
package cli
