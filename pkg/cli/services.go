/*
Copyright © 2025 FairFix Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"github.com/spf13/cobra"
)

// servicesCmd represents the services command
var servicesCmd = &cobra.Command{
	Use:     "services",
	Aliases: []string{"svc"},
	GroupID: "functional",
	Short:   "List the known repair and maintenance services",
	Long: `List the repair and maintenance services the estimator knows labor
standards for, sorted by name.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		w, err := outputWriter()
		if err != nil {
			return err
		}

		est, err := newEstimator()
		if err != nil {
			return err
		}

		return w.Serialize(est.Services())
	},
}

func init() {
	rootCmd.AddCommand(servicesCmd)

	servicesCmd.Flags().StringVarP(&output, "output", "", "", "output file path (default: stdout)")
	servicesCmd.Flags().StringVarP(&format, "format", "", "json", "output format (json, yaml, table)")
}
