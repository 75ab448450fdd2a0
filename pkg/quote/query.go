package quote

import (
	"net/http"
	"strconv"
	"strings"

	qerrors "github.com/fairfix/quote-engine/pkg/errors"
)

// vehicleQuery carries the parsed common request parameters.
type vehicleQuery struct {
	Make    string
	Model   string
	Year    int
	Service string
	Mileage int

	hasMileage bool
}

// parseVehicleQuery extracts make/model plus whichever of year, service, and
// mileage the handler requires.
func parseVehicleQuery(r *http.Request, needYear, needService, needMileage bool) (*vehicleQuery, error) {
	q := r.URL.Query()

	vq := &vehicleQuery{
		Make:    strings.TrimSpace(q.Get("make")),
		Model:   strings.TrimSpace(q.Get("model")),
		Service: strings.TrimSpace(q.Get("service")),
	}

	if vq.Make == "" || vq.Model == "" {
		return nil, qerrors.New(qerrors.ErrCodeInvalidRequest, "make and model are required")
	}

	if yearStr := q.Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil || year < 1900 {
			return nil, qerrors.New(qerrors.ErrCodeInvalidRequest, "year must be an integer >= 1900")
		}
		vq.Year = year
	} else if needYear {
		return nil, qerrors.New(qerrors.ErrCodeInvalidRequest, "year is required")
	}

	if needService && vq.Service == "" {
		return nil, qerrors.New(qerrors.ErrCodeInvalidRequest, "service is required")
	}

	if mileageStr := q.Get("mileage"); mileageStr != "" {
		mileage, err := strconv.Atoi(mileageStr)
		if err != nil || mileage < 0 {
			return nil, qerrors.New(qerrors.ErrCodeInvalidRequest, "mileage must be a non-negative integer")
		}
		vq.Mileage = mileage
		vq.hasMileage = true
	} else if needMileage {
		return nil, qerrors.New(qerrors.ErrCodeInvalidRequest, "mileage is required")
	}

	return vq, nil
}
