package quote

import "github.com/fairfix/quote-engine/pkg/estimator"

// Vehicle identifies the vehicle a response is about, with display-cased
// make and model.
type Vehicle struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year,omitempty"`
}

// QuoteResponse is the /v1/quote payload.
type QuoteResponse struct {
	*estimator.EstimateResult

	// RecommendedServices is included when the request carries a mileage.
	RecommendedServices []estimator.RecommendedService `json:"recommendedServices,omitempty"`
}

// RecommendationsResponse is the /v1/recommendations payload.
type RecommendationsResponse struct {
	Vehicle  Vehicle                        `json:"vehicle"`
	Mileage  int                            `json:"mileage"`
	Services []estimator.RecommendedService `json:"services"`
}

// ServicesResponse is the /v1/services payload.
type ServicesResponse struct {
	Services []string `json:"services"`
}

// TierResponse is the /v1/tier payload.
type TierResponse struct {
	Vehicle Vehicle `json:"vehicle"`
	Tier    string  `json:"tier"`
}

// ErrorBody is the minimal error payload for handler-level failures.
type ErrorBody struct {
	Error string `json:"error"`
}
