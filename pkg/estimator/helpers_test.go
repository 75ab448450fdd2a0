package estimator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fairfix/quote-engine/pkg/refdata"
)

// overrideProvider layers in-memory table content over the embedded set.
type overrideProvider struct {
	embedded *refdata.EmbeddedDataProvider
	files    map[string]string
}

func (p *overrideProvider) ReadFile(name string) ([]byte, error) {
	if data, ok := p.files[name]; ok {
		return []byte(data), nil
	}
	return p.embedded.ReadFile(name)
}

func (p *overrideProvider) Source(name string) string { return "test" }

// loadTablesWithoutSchedules loads the embedded tables with both maintenance
// interval tables emptied out.
func loadTablesWithoutSchedules(t *testing.T) *refdata.Tables {
	t.Helper()

	p := &overrideProvider{
		embedded: refdata.NewEmbeddedDataProvider(),
		files: map[string]string{
			refdata.FileIntervals:     "make,model,service_name,mileage_interval\n",
			refdata.FileTierIntervals: "vehicle_tier,service_name,mileage_interval\n",
		},
	}

	tables, err := refdata.Load(p)
	require.NoError(t, err)
	return tables
}
