/*
Copyright © 2025 FairFix Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"

	"github.com/fairfix/quote-engine/pkg/estimator"
	"github.com/fairfix/quote-engine/pkg/refdata"
	"github.com/fairfix/quote-engine/pkg/serializers"
)

// newEstimator loads the reference tables and builds an estimator.
// When --data-dir is set, CSV files in that directory override the embedded
// tables file by file.
func newEstimator() (*estimator.Estimator, error) {
	embedded := refdata.NewEmbeddedDataProvider()

	var provider refdata.DataProvider = embedded
	if dataDir != "" {
		layered, err := refdata.NewLayeredDataProvider(embedded, dataDir)
		if err != nil {
			return nil, fmt.Errorf("error opening data directory: %w", err)
		}
		provider = layered
	}

	tables, err := refdata.Load(provider)
	if err != nil {
		return nil, fmt.Errorf("error loading reference data: %w", err)
	}

	return estimator.New(tables), nil
}

// outputWriter resolves the --format and --output flags into a Writer.
func outputWriter() (*serializers.Writer, error) {
	outFormat := serializers.Format(format)
	if outFormat.IsUnknown() {
		return nil, fmt.Errorf("unknown output format: %q", outFormat)
	}
	return serializers.NewFileWriterOrStdout(outFormat, output), nil
}
