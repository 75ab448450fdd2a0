/*
Copyright © 2025 FairFix Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Flags for the forecast query parameters
	fcMake    string
	fcModel   string
	fcYear    int
	fcMileage int
)

// forecastCmd represents the forecast command
var forecastCmd = &cobra.Command{
	Use:     "forecast",
	Aliases: []string{"fc"},
	GroupID: "functional",
	Short:   "Show the next maintenance service and its cost outlook",
	Long: `Show the next maintenance service for a vehicle at the current mileage:
which service comes up next, at what mileage it is due, whether the vehicle
is overdue, and the dealer and independent cost bands for that service when
known.

The forecast can be output in JSON, YAML, or table format.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		w, err := outputWriter()
		if err != nil {
			return err
		}

		est, err := newEstimator()
		if err != nil {
			return err
		}

		forecast, err := est.Forecast(fcMake, fcModel, fcYear, fcMileage)
		if err != nil {
			return fmt.Errorf("error building forecast: %w", err)
		}

		return w.Serialize(forecast)
	},
}

func init() {
	rootCmd.AddCommand(forecastCmd)

	forecastCmd.Flags().StringVarP(&fcMake, "make", "", "", "Vehicle make (e.g., toyota)")
	forecastCmd.Flags().StringVarP(&fcModel, "model", "", "", "Vehicle model (e.g., camry)")
	forecastCmd.Flags().IntVarP(&fcYear, "year", "", 0, "Model year (e.g., 2019)")
	forecastCmd.Flags().IntVarP(&fcMileage, "mileage", "", 0, "Current mileage (e.g., 42000)")

	_ = forecastCmd.MarkFlagRequired("make")
	_ = forecastCmd.MarkFlagRequired("model")
	_ = forecastCmd.MarkFlagRequired("year")
	_ = forecastCmd.MarkFlagRequired("mileage")

	forecastCmd.Flags().StringVarP(&output, "output", "", "", "output file path (default: stdout)")
	forecastCmd.Flags().StringVarP(&format, "format", "", "json", "output format (json, yaml, table)")
}
