package estimator

import qerrors "github.com/fairfix/quote-engine/pkg/errors"

// Forecast status values.
const (
	StatusGood    = "Good"
	StatusOverdue = "Overdue"
)

// overdueGraceMiles is how far past an interval a vehicle may run before the
// forecast flips to Overdue.
const overdueGraceMiles = 500

// Forecast picks the vehicle's next maintenance item: the smallest interval
// strictly greater than the current mileage, or the largest interval when
// everything is already due. Returns NOT_FOUND when no schedule exists for
// the vehicle. When the estimator prices the chosen service, the dealer and
// indy total cost bands are attached.
func (e *Estimator) Forecast(makeName, modelName string, year, mileage int) (*Forecast, error) {
	recs := e.Recommend(makeName, modelName, mileage)
	if len(recs) == 0 {
		return nil, qerrors.NewWithContext(qerrors.ErrCodeNotFound,
			"no maintenance schedule for vehicle",
			map[string]any{"make": makeName, "model": modelName})
	}

	var next *RecommendedService
	for i := range recs {
		r := &recs[i]
		if r.MileageInterval > mileage {
			if next == nil || r.MileageInterval < next.MileageInterval {
				next = r
			}
		}
	}
	if next == nil {
		// Everything due: report against the largest interval.
		for i := range recs {
			r := &recs[i]
			if next == nil || r.MileageInterval > next.MileageInterval {
				next = r
			}
		}
	}

	status := StatusGood
	if mileage > next.MileageInterval+overdueGraceMiles {
		status = StatusOverdue
	}

	milesUntil := next.MileageInterval - mileage
	if milesUntil < 0 {
		milesUntil = 0
	}

	f := &Forecast{
		Make:        makeName,
		Model:       modelName,
		Year:        year,
		Mileage:     mileage,
		Status:      status,
		NextService: next.ServiceName,
		DueAtMiles:  next.MileageInterval,
		MilesUntil:  milesUntil,
	}

	// Cost bands are best effort: a scheduled service without a labor
	// standard simply yields a forecast without pricing.
	if est, err := e.Estimate(makeName, modelName, year, next.ServiceName); err == nil {
		dealer := est.Dealer.Total
		indy := est.Indy.Total
		f.DealerTotal = &dealer
		f.IndyTotal = &indy
	}

	return f, nil
}
