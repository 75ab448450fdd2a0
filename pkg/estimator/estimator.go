package estimator

import (
	"math"
	"strings"
	"time"

	qerrors "github.com/fairfix/quote-engine/pkg/errors"
	"github.com/fairfix/quote-engine/pkg/refdata"
)

const (
	// zScore95 is the z-score for a 95% confidence interval under a
	// normality assumption.
	zScore95 = 1.96

	// DefaultTier is assumed when a vehicle matches neither a (make, model)
	// nor a make-level tier entry.
	DefaultTier = "mid"

	// Services used by the combined brake estimate.
	ServiceBrakesFront    = "Brake Pad Replacement (Front)"
	ServiceBrakesRear     = "Brake Pad Replacement (Rear)"
	ServiceBrakesCombined = "Brake Pads (Front + Rear)"

	// indyAgeDiscountYears is the vehicle age at which independent shops
	// discount their labor rate, and indyAgeDiscount the multiplier applied.
	indyAgeDiscountYears = 10
	indyAgeDiscount      = 0.9
)

// Labor rate fallback when a (shop, tier) pair is missing from the tables.
var defaultLaborRate = refdata.Stat{Mean: 100.0, Std: 10.0}

// Clock supplies the current calendar year for the age-discount rule.
// Injected so estimates are deterministic under test.
type Clock interface {
	CurrentYear() int
}

// systemClock reads the wall clock.
type systemClock struct{}

func (systemClock) CurrentYear() int { return time.Now().Year() }

// FixedClock is a Clock pinned to a single year.
type FixedClock int

// CurrentYear returns the pinned year.
func (c FixedClock) CurrentYear() int { return int(c) }

// Estimator computes repair cost estimates and maintenance recommendations
// from loaded reference tables.
type Estimator struct {
	tables *refdata.Tables
	clock  Clock
}

// Option is a functional option for configuring the Estimator.
type Option func(*Estimator)

// WithClock overrides the wall clock used for the indy age discount.
func WithClock(c Clock) Option {
	return func(e *Estimator) {
		e.clock = c
	}
}

// New creates an Estimator over the given tables.
func New(tables *refdata.Tables, opts ...Option) *Estimator {
	e := &Estimator{
		tables: tables,
		clock:  systemClock{},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Services returns the sorted list of service names the estimator knows.
func (e *Estimator) Services() []string {
	return e.tables.Services()
}

// ResolveTier resolves a vehicle to its pricing tier. Precedence: exact
// (make, model) match, then make-level fallback, then DefaultTier.
func (e *Estimator) ResolveTier(makeName, modelName string) string {
	if tier, ok := e.tables.VehicleTier(makeName, modelName); ok {
		return tier
	}
	if tier, ok := e.tables.MakeTier(makeName); ok {
		return tier
	}
	return DefaultTier
}

// Estimate produces the dealer and indy cost estimate for one service.
// Returns a NOT_FOUND error when the service has no labor standard.
func (e *Estimator) Estimate(makeName, modelName string, year int, service string) (*EstimateResult, error) {
	hours, ok := e.tables.LaborHours(service)
	if !ok {
		estimatesTotal.WithLabelValues("not_found").Inc()
		return nil, qerrors.NewWithContext(qerrors.ErrCodeNotFound,
			"unknown service: "+service,
			map[string]any{"service": service})
	}

	tier := e.ResolveTier(makeName, modelName)

	dealerRate := e.laborRate(refdata.ShopDealer, tier)
	indyRate := e.applyAgeDiscount(e.laborRate(refdata.ShopIndy, tier), year)

	parts, ok := e.tables.PartsEstimate(service, tier)
	if !ok {
		parts = refdata.Stat{}
	}

	dealer := buildCostEstimate(refdata.ShopDealer, tier, service, hours, dealerRate, parts)
	indy := buildCostEstimate(refdata.ShopIndy, tier, service, hours, indyRate, parts)

	estimatesTotal.WithLabelValues("success").Inc()

	return &EstimateResult{
		Make:              makeName,
		Model:             modelName,
		Year:              year,
		Service:           service,
		VehicleTier:       tier,
		LaborHours:        hours,
		Dealer:            dealer,
		Indy:              indy,
		IndySavingsCILow:  savings(dealer.Total.CILow, indy.Total.CIHigh),
		IndySavingsCIHigh: savings(dealer.Total.CIHigh, indy.Total.CILow),
	}, nil
}

// EstimateBrakesFull combines front and rear brake pad replacement into a
// single estimate. Hours and component means add; standard deviations combine
// as independent variances. The combined total CI is recomputed from the
// combined mean/std, while the rate CI carries the front estimate's bounds
// and the labor/parts CIs are the sums of the per-axle bounds. That asymmetry
// matches the published contract for combined estimates and is preserved
// deliberately.
func (e *Estimator) EstimateBrakesFull(makeName, modelName string, year int) (*EstimateResult, error) {
	front, err := e.Estimate(makeName, modelName, year, ServiceBrakesFront)
	if err != nil {
		return nil, err
	}
	rear, err := e.Estimate(makeName, modelName, year, ServiceBrakesRear)
	if err != nil {
		return nil, err
	}

	tier := front.VehicleTier
	hours := front.LaborHours + rear.LaborHours

	dealer := combineCostEstimates(&front.Dealer, &rear.Dealer, tier, hours)
	indy := combineCostEstimates(&front.Indy, &rear.Indy, tier, hours)

	return &EstimateResult{
		Make:              makeName,
		Model:             modelName,
		Year:              year,
		Service:           ServiceBrakesCombined,
		VehicleTier:       tier,
		LaborHours:        hours,
		Dealer:            dealer,
		Indy:              indy,
		IndySavingsCILow:  savings(dealer.Total.CILow, indy.Total.CIHigh),
		IndySavingsCIHigh: savings(dealer.Total.CIHigh, indy.Total.CILow),
	}, nil
}

func (e *Estimator) laborRate(shop refdata.ShopType, tier string) refdata.Stat {
	if rate, ok := e.tables.LaborRate(shop, tier); ok {
		return rate
	}
	return defaultLaborRate
}

// applyAgeDiscount discounts the indy labor rate for vehicles at least
// indyAgeDiscountYears old.
func (e *Estimator) applyAgeDiscount(rate refdata.Stat, year int) refdata.Stat {
	if e.clock.CurrentYear()-year >= indyAgeDiscountYears {
		rate.Mean *= indyAgeDiscount
		rate.Std *= indyAgeDiscount
	}
	return rate
}

// newBand computes the 95% CI band for a mean/std pair, flooring the lower
// bound at zero.
func newBand(mean, std float64) Band {
	low := mean - zScore95*std
	if low < 0 {
		low = 0
	}
	return Band{
		Mean:   mean,
		Std:    std,
		CILow:  low,
		CIHigh: mean + zScore95*std,
	}
}

// buildCostEstimate derives labor cost, parts, and total bands for one shop
// context. Hours scale the rate distribution linearly; labor and parts are
// assumed independent when combining into the total.
func buildCostEstimate(shop refdata.ShopType, tier, service string, hours float64, rate, parts refdata.Stat) CostEstimate {
	laborMean := hours * rate.Mean
	laborStd := hours * rate.Std
	totalMean := laborMean + parts.Mean
	totalStd := math.Sqrt(laborStd*laborStd + parts.Std*parts.Std)

	return CostEstimate{
		ShopType:    shop,
		VehicleTier: tier,
		Service:     service,
		LaborHours:  hours,
		LaborRate:   newBand(rate.Mean, rate.Std),
		LaborCost:   newBand(laborMean, laborStd),
		Parts:       newBand(parts.Mean, parts.Std),
		Total:       newBand(totalMean, totalStd),
	}
}

// combineCostEstimates merges two independent per-axle estimates for the same
// shop context. See EstimateBrakesFull for the CI-bound conventions.
func combineCostEstimates(front, rear *CostEstimate, tier string, hours float64) CostEstimate {
	laborMean := front.LaborCost.Mean + rear.LaborCost.Mean
	laborStd := math.Sqrt(front.LaborCost.Std*front.LaborCost.Std + rear.LaborCost.Std*rear.LaborCost.Std)
	partsMean := front.Parts.Mean + rear.Parts.Mean
	partsStd := math.Sqrt(front.Parts.Std*front.Parts.Std + rear.Parts.Std*rear.Parts.Std)
	totalMean := front.Total.Mean + rear.Total.Mean
	totalStd := math.Sqrt(front.Total.Std*front.Total.Std + rear.Total.Std*rear.Total.Std)

	return CostEstimate{
		ShopType:    front.ShopType,
		VehicleTier: tier,
		Service:     ServiceBrakesCombined,
		LaborHours:  hours,
		LaborRate:   front.LaborRate,
		LaborCost: Band{
			Mean:   laborMean,
			Std:    laborStd,
			CILow:  front.LaborCost.CILow + rear.LaborCost.CILow,
			CIHigh: front.LaborCost.CIHigh + rear.LaborCost.CIHigh,
		},
		Parts: Band{
			Mean:   partsMean,
			Std:    partsStd,
			CILow:  front.Parts.CILow + rear.Parts.CILow,
			CIHigh: front.Parts.CIHigh + rear.Parts.CIHigh,
		},
		Total: newBand(totalMean, totalStd),
	}
}

// savings floors a CI-bound difference at zero.
func savings(dealerBound, indyBound float64) float64 {
	return math.Max(0, dealerBound-indyBound)
}

// IsBrakesAlias reports whether a user-supplied service name is shorthand for
// the combined front+rear brake estimate.
func IsBrakesAlias(service string) bool {
	switch strings.ToLower(strings.TrimSpace(service)) {
	case "brakes", "brake pads", "brake pads full", "brake pad replacement":
		return true
	default:
		return false
	}
}

// CanonicalService maps common shorthand to canonical service names. Unknown
// input is returned trimmed, letting the estimator report NOT_FOUND.
func CanonicalService(service string) string {
	aliases := map[string]string{
		"oil change":          "Oil Change",
		"battery replacement": "Battery Replacement",
		"tire rotation":       "Tire Rotation",
		"spark plug service":  "Spark Plug Replacement (4-cyl)",
		"wheel alignment":     "Wheel Alignment",
		"ac recharge":         "AC Recharge",
	}
	if canonical, ok := aliases[strings.ToLower(strings.TrimSpace(service))]; ok {
		return canonical
	}
	return strings.TrimSpace(service)
}
