package estimator

import "github.com/fairfix/quote-engine/pkg/refdata"

// Band is a normally distributed cost component with its 95% confidence
// interval. CILow is floored at zero.
type Band struct {
	Mean   float64 `json:"mean" yaml:"mean"`
	Std    float64 `json:"std" yaml:"std"`
	CILow  float64 `json:"ciLow" yaml:"ciLow"`
	CIHigh float64 `json:"ciHigh" yaml:"ciHigh"`
}

// CostEstimate is a single shop-context estimate (dealer or indy).
type CostEstimate struct {
	ShopType    refdata.ShopType `json:"shopType" yaml:"shopType"`
	VehicleTier string           `json:"vehicleTier" yaml:"vehicleTier"`
	Service     string           `json:"service" yaml:"service"`
	LaborHours  float64          `json:"laborHours" yaml:"laborHours"`
	LaborRate   Band             `json:"laborRate" yaml:"laborRate"`
	LaborCost   Band             `json:"laborCost" yaml:"laborCost"`
	Parts       Band             `json:"parts" yaml:"parts"`
	Total       Band             `json:"total" yaml:"total"`
}

// EstimateResult is the full dealer-vs-indy estimate for one service on one
// vehicle.
type EstimateResult struct {
	Make        string       `json:"make" yaml:"make"`
	Model       string       `json:"model" yaml:"model"`
	Year        int          `json:"year" yaml:"year"`
	Service     string       `json:"service" yaml:"service"`
	VehicleTier string       `json:"vehicleTier" yaml:"vehicleTier"`
	LaborHours  float64      `json:"laborHours" yaml:"laborHours"`
	Dealer      CostEstimate `json:"dealer" yaml:"dealer"`
	Indy        CostEstimate `json:"indy" yaml:"indy"`

	// Conservative non-overlapping savings band: how much cheaper the indy
	// shop could plausibly be, comparing worst cases across the two CIs.
	IndySavingsCILow  float64 `json:"indySavingsCiLow" yaml:"indySavingsCiLow"`
	IndySavingsCIHigh float64 `json:"indySavingsCiHigh" yaml:"indySavingsCiHigh"`
}

// RecommendedService is one maintenance item evaluated against the vehicle's
// current mileage.
type RecommendedService struct {
	ServiceName     string `json:"serviceName" yaml:"serviceName"`
	MileageInterval int    `json:"mileageInterval" yaml:"mileageInterval"`
	DueNow          bool   `json:"dueNow" yaml:"dueNow"`
}

// Forecast summarizes the next maintenance item due for a vehicle.
type Forecast struct {
	Make         string `json:"make" yaml:"make"`
	Model        string `json:"model" yaml:"model"`
	Year         int    `json:"year" yaml:"year"`
	Mileage      int    `json:"mileage" yaml:"mileage"`
	Status       string `json:"status" yaml:"status"`
	NextService  string `json:"nextService" yaml:"nextService"`
	DueAtMiles   int    `json:"dueAtMiles" yaml:"dueAtMiles"`
	MilesUntil   int    `json:"milesUntil" yaml:"milesUntil"`
	DealerTotal *Band  `json:"dealerTotal,omitempty" yaml:"dealerTotal,omitempty"`
	IndyTotal   *Band  `json:"indyTotal,omitempty" yaml:"indyTotal,omitempty"`
}
