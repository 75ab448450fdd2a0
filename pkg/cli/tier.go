/*
Copyright © 2025 FairFix Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"github.com/spf13/cobra"
)

var (
	// Flags for the tier query parameters
	tierMake  string
	tierModel string
)

// tierCmd represents the tier command
var tierCmd = &cobra.Command{
	Use:     "tier",
	GroupID: "functional",
	Short:   "Resolve the pricing tier for a vehicle",
	Long: `Resolve the pricing tier (economy, mid, luxury) for a make and model.

Unknown models fall back to the make-level tier; unknown makes resolve to
"mid".`,
	RunE: func(_ *cobra.Command, _ []string) error {
		w, err := outputWriter()
		if err != nil {
			return err
		}

		est, err := newEstimator()
		if err != nil {
			return err
		}

		return w.Serialize(struct {
			Make  string `json:"make" yaml:"make"`
			Model string `json:"model" yaml:"model"`
			Tier  string `json:"tier" yaml:"tier"`
		}{
			Make:  tierMake,
			Model: tierModel,
			Tier:  est.ResolveTier(tierMake, tierModel),
		})
	},
}

func init() {
	rootCmd.AddCommand(tierCmd)

	tierCmd.Flags().StringVarP(&tierMake, "make", "", "", "Vehicle make (e.g., toyota)")
	tierCmd.Flags().StringVarP(&tierModel, "model", "", "", "Vehicle model (e.g., camry)")

	_ = tierCmd.MarkFlagRequired("make")
	_ = tierCmd.MarkFlagRequired("model")

	tierCmd.Flags().StringVarP(&output, "output", "", "", "output file path (default: stdout)")
	tierCmd.Flags().StringVarP(&format, "format", "", "json", "output format (json, yaml, table)")
}
