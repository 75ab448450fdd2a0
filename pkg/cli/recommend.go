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
	// Flags for the recommend query parameters
	recMake    string
	recModel   string
	recMileage int
)

// recommendCmd represents the recommend command
var recommendCmd = &cobra.Command{
	Use:     "recommend",
	Aliases: []string{"rec"},
	GroupID: "functional",
	Short:   "List the maintenance services due at the current mileage",
	Long: `List the maintenance services for a vehicle together with their mileage
intervals and whether each one is due at the current mileage.

Model-specific schedules take precedence; the vehicle tier schedule fills the
gaps. The list can be output in JSON, YAML, or table format.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		w, err := outputWriter()
		if err != nil {
			return err
		}

		est, err := newEstimator()
		if err != nil {
			return err
		}

		services := est.Recommend(recMake, recModel, recMileage)
		if len(services) == 0 {
			return fmt.Errorf("no maintenance schedule known for %s %s", recMake, recModel)
		}

		return w.Serialize(services)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringVarP(&recMake, "make", "", "", "Vehicle make (e.g., toyota)")
	recommendCmd.Flags().StringVarP(&recModel, "model", "", "", "Vehicle model (e.g., camry)")
	recommendCmd.Flags().IntVarP(&recMileage, "mileage", "", 0, "Current mileage (e.g., 42000)")

	_ = recommendCmd.MarkFlagRequired("make")
	_ = recommendCmd.MarkFlagRequired("model")
	_ = recommendCmd.MarkFlagRequired("mileage")

	recommendCmd.Flags().StringVarP(&output, "output", "", "", "output file path (default: stdout)")
	recommendCmd.Flags().StringVarP(&format, "format", "", "json", "output format (json, yaml, table)")
}
