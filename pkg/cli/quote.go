/*
Copyright © 2025 FairFix Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"

	"github.com/fairfix/quote-engine/pkg/estimator"

	"github.com/spf13/cobra"
)

var (
	// Flags for the quote query parameters
	quoteMake    string
	quoteModel   string
	quoteYear    int
	quoteService string
	quoteMileage int
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:     "quote",
	Aliases: []string{"q"},
	GroupID: "functional",
	Short:   "Estimate the cost of a repair or maintenance service",
	Long: `Estimate the cost of a repair or maintenance service for a vehicle.

The estimate covers both dealer and independent shops, each with a 95%
confidence interval for labor, parts, and total cost, plus the savings band
of choosing an independent shop. The service name accepts common aliases;
"brakes" expands to the combined front + rear brake pad replacement.

When --mileage is provided, the maintenance services due at that mileage are
included in the output.

The estimate can be output in JSON, YAML, or table format.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w, err := outputWriter()
		if err != nil {
			return err
		}

		est, err := newEstimator()
		if err != nil {
			return err
		}

		var res *estimator.EstimateResult
		if estimator.IsBrakesAlias(quoteService) {
			res, err = est.EstimateBrakesFull(quoteMake, quoteModel, quoteYear)
		} else {
			res, err = est.Estimate(quoteMake, quoteModel, quoteYear, estimator.CanonicalService(quoteService))
		}
		if err != nil {
			return fmt.Errorf("error building estimate: %w", err)
		}

		if cmd.Flags().Changed("mileage") {
			return w.Serialize(struct {
				*estimator.EstimateResult
				RecommendedServices []estimator.RecommendedService `json:"recommendedServices" yaml:"recommendedServices"`
			}{
				EstimateResult:      res,
				RecommendedServices: est.Recommend(quoteMake, quoteModel, quoteMileage),
			})
		}

		return w.Serialize(res)
	},
}

func init() {
	rootCmd.AddCommand(quoteCmd)

	quoteCmd.Flags().StringVarP(&quoteMake, "make", "", "", "Vehicle make (e.g., toyota)")
	quoteCmd.Flags().StringVarP(&quoteModel, "model", "", "", "Vehicle model (e.g., camry)")
	quoteCmd.Flags().IntVarP(&quoteYear, "year", "", 0, "Model year (e.g., 2019)")
	quoteCmd.Flags().StringVarP(&quoteService, "service", "", "", "Service name or alias (e.g., \"Oil Change\", brakes)")
	quoteCmd.Flags().IntVarP(&quoteMileage, "mileage", "", 0, "Current mileage; includes due services in the output")

	_ = quoteCmd.MarkFlagRequired("make")
	_ = quoteCmd.MarkFlagRequired("model")
	_ = quoteCmd.MarkFlagRequired("year")
	_ = quoteCmd.MarkFlagRequired("service")

	quoteCmd.Flags().StringVarP(&output, "output", "", "", "output file path (default: stdout)")
	quoteCmd.Flags().StringVarP(&format, "format", "", "json", "output format (json, yaml, table)")
}
