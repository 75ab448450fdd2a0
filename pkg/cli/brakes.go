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
	// Flags for the brakes query parameters
	brMake  string
	brModel string
	brYear  int
)

// brakesCmd represents the brakes command
var brakesCmd = &cobra.Command{
	Use:     "brakes",
	GroupID: "functional",
	Short:   "Estimate a full front + rear brake pad replacement",
	Long: `Estimate the cost of replacing both front and rear brake pads in one
visit. Labor hours and cost bands cover the combined job; equivalent to
"quote --service brakes".`,
	RunE: func(_ *cobra.Command, _ []string) error {
		w, err := outputWriter()
		if err != nil {
			return err
		}

		est, err := newEstimator()
		if err != nil {
			return err
		}

		res, err := est.EstimateBrakesFull(brMake, brModel, brYear)
		if err != nil {
			return fmt.Errorf("error building estimate: %w", err)
		}

		return w.Serialize(res)
	},
}

func init() {
	rootCmd.AddCommand(brakesCmd)

	brakesCmd.Flags().StringVarP(&brMake, "make", "", "", "Vehicle make (e.g., toyota)")
	brakesCmd.Flags().StringVarP(&brModel, "model", "", "", "Vehicle model (e.g., camry)")
	brakesCmd.Flags().IntVarP(&brYear, "year", "", 0, "Model year (e.g., 2019)")

	_ = brakesCmd.MarkFlagRequired("make")
	_ = brakesCmd.MarkFlagRequired("model")
	_ = brakesCmd.MarkFlagRequired("year")

	brakesCmd.Flags().StringVarP(&output, "output", "", "", "output file path (default: stdout)")
	brakesCmd.Flags().StringVarP(&format, "format", "", "json", "output format (json, yaml, table)")
}
