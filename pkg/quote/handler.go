package quote

import (
	"log/slog"
	"net/http"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	qerrors "github.com/fairfix/quote-engine/pkg/errors"
	"github.com/fairfix/quote-engine/pkg/estimator"
	"github.com/fairfix/quote-engine/pkg/serializers"
)

// Handlers serves the quote API endpoints.
type Handlers struct {
	est   *estimator.Estimator
	title cases.Caser
}

// NewHandlers creates the HTTP handlers backed by the given estimator.
func NewHandlers(est *estimator.Estimator) *Handlers {
	return &Handlers{
		est:   est,
		title: cases.Title(language.English),
	}
}

// HandleQuote handles GET /v1/quote. Brakes shorthand maps to the combined
// front+rear estimate; an optional mileage adds maintenance recommendations
// to the response.
func (h *Handlers) HandleQuote(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	vq, err := parseVehicleQuery(r, true, true, false)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	var res *estimator.EstimateResult
	if estimator.IsBrakesAlias(vq.Service) {
		res, err = h.est.EstimateBrakesFull(vq.Make, vq.Model, vq.Year)
	} else {
		res, err = h.est.Estimate(vq.Make, vq.Model, vq.Year, estimator.CanonicalService(vq.Service))
	}
	if err != nil {
		h.writeEstimateError(w, r, err)
		return
	}

	res.Make = h.title.String(res.Make)
	res.Model = h.title.String(res.Model)

	resp := QuoteResponse{EstimateResult: res}
	if vq.hasMileage {
		resp.RecommendedServices = h.est.Recommend(vq.Make, vq.Model, vq.Mileage)
	}

	serializers.RespondJSON(w, http.StatusOK, resp)
}

// HandleRecommendations handles GET /v1/recommendations.
func (h *Handlers) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	vq, err := parseVehicleQuery(r, false, false, true)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	services := h.est.Recommend(vq.Make, vq.Model, vq.Mileage)

	serializers.RespondJSON(w, http.StatusOK, RecommendationsResponse{
		Vehicle:  h.vehicle(vq),
		Mileage:  vq.Mileage,
		Services: services,
	})
}

// HandleForecast handles GET /v1/forecast.
func (h *Handlers) HandleForecast(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	vq, err := parseVehicleQuery(r, true, false, true)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	forecast, err := h.est.Forecast(vq.Make, vq.Model, vq.Year, vq.Mileage)
	if err != nil {
		h.writeEstimateError(w, r, err)
		return
	}

	forecast.Make = h.title.String(forecast.Make)
	forecast.Model = h.title.String(forecast.Model)

	serializers.RespondJSON(w, http.StatusOK, forecast)
}

// HandleServices handles GET /v1/services.
func (h *Handlers) HandleServices(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	serializers.RespondJSON(w, http.StatusOK, ServicesResponse{Services: h.est.Services()})
}

// HandleTier handles GET /v1/tier.
func (h *Handlers) HandleTier(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	vq, err := parseVehicleQuery(r, false, false, false)
	if err != nil {
		writeBadRequest(w, err)
		return
	}

	serializers.RespondJSON(w, http.StatusOK, TierResponse{
		Vehicle: h.vehicle(vq),
		Tier:    h.est.ResolveTier(vq.Make, vq.Model),
	})
}

func (h *Handlers) vehicle(vq *vehicleQuery) Vehicle {
	return Vehicle{
		Make:  h.title.String(vq.Make),
		Model: h.title.String(vq.Model),
		Year:  vq.Year,
	}
}

// writeEstimateError maps core errors onto HTTP statuses: NOT_FOUND is a
// normal outcome (404), anything else is a server fault.
func (h *Handlers) writeEstimateError(w http.ResponseWriter, r *http.Request, err error) {
	if qerrors.IsNotFound(err) {
		serializers.RespondJSON(w, http.StatusNotFound, ErrorBody{Error: err.Error()})
		return
	}
	slog.Error("estimate failed", "error", err, "path", r.URL.Path)
	serializers.RespondJSON(w, http.StatusInternalServerError, ErrorBody{Error: "internal error"})
}

func writeBadRequest(w http.ResponseWriter, err error) {
	serializers.RespondJSON(w, http.StatusBadRequest, ErrorBody{Error: err.Error()})
}

func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		slog.Debug("method not allowed", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}
