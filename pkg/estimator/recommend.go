package estimator

import "sort"

// Recommend returns the maintenance services applicable to a vehicle,
// evaluated against its current mileage. Make/model-specific intervals take
// precedence; the tier-fallback table fills in services the vehicle has no
// specific entry for. Results are sorted by service name and a service is
// DueNow once mileage meets or exceeds its interval.
func (e *Estimator) Recommend(makeName, modelName string, mileage int) []RecommendedService {
	tier := e.ResolveTier(makeName, modelName)

	intervals := e.tables.Intervals(makeName, modelName)
	if intervals == nil {
		intervals = make(map[string]int)
	}
	for svc, miles := range e.tables.TierIntervals(tier) {
		if _, ok := intervals[svc]; !ok {
			intervals[svc] = miles
		}
	}

	results := make([]RecommendedService, 0, len(intervals))
	for svc, interval := range intervals {
		results = append(results, RecommendedService{
			ServiceName:     svc,
			MileageInterval: interval,
			DueNow:          mileage >= interval,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].ServiceName < results[j].ServiceName
	})

	recommendationsTotal.Inc()
	return results
}
