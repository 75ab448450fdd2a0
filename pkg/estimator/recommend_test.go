package estimator_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairfix/quote-engine/pkg/estimator"
)

func findService(t *testing.T, recs []estimator.RecommendedService, name string) estimator.RecommendedService {
	t.Helper()
	for _, r := range recs {
		if r.ServiceName == name {
			return r
		}
	}
	t.Fatalf("service %q not in recommendations", name)
	return estimator.RecommendedService{}
}

func TestRecommend_ModelEntriesWinOverTier(t *testing.T) {
	e := newTestEstimator(t)

	recs := e.Recommend("toyota", "camry", 0)
	require.NotEmpty(t, recs)

	// Camry has a model-specific 10000-mile oil change; the mid-tier
	// fallback says 7500. The model entry must win.
	oil := findService(t, recs, "Oil Change")
	assert.Equal(t, 10000, oil.MileageInterval)

	// Services absent from the model table come from the tier fallback.
	trans := findService(t, recs, "Transmission Fluid Change")
	assert.Equal(t, 60000, trans.MileageInterval)
}

func TestRecommend_SortedByServiceName(t *testing.T) {
	e := newTestEstimator(t)

	recs := e.Recommend("honda", "civic", 20000)
	require.NotEmpty(t, recs)

	names := make([]string, len(recs))
	for i, r := range recs {
		names[i] = r.ServiceName
	}
	assert.True(t, sort.StringsAreSorted(names), "recommendations not sorted: %v", names)
}

func TestRecommend_DueNowBoundary(t *testing.T) {
	e := newTestEstimator(t)

	// Camry oil change interval is exactly 10000 miles.
	recs := e.Recommend("toyota", "camry", 10000)
	oil := findService(t, recs, "Oil Change")
	assert.True(t, oil.DueNow, "mileage equal to interval must be due now")

	recs = e.Recommend("toyota", "camry", 9999)
	oil = findService(t, recs, "Oil Change")
	assert.False(t, oil.DueNow)
}

func TestRecommend_TierFallbackOnlyVehicle(t *testing.T) {
	e := newTestEstimator(t)

	// No model or make entry: default mid tier schedule applies.
	recs := e.Recommend("delorean", "dmc-12", 8000)
	require.NotEmpty(t, recs)

	oil := findService(t, recs, "Oil Change")
	assert.Equal(t, 7500, oil.MileageInterval)
	assert.True(t, oil.DueNow)
}

func TestRecommend_Deterministic(t *testing.T) {
	e := newTestEstimator(t)

	first := e.Recommend("bmw", "3 series", 25000)
	second := e.Recommend("bmw", "3 series", 25000)
	assert.Equal(t, first, second)
}
