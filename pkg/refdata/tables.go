// Copyright (c) 2025, FairFix Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package refdata

import (
	"sort"
	"strings"
)

// ShopType identifies a repair shop pricing context.
type ShopType string

const (
	// ShopDealer is franchise dealer pricing.
	ShopDealer ShopType = "dealer"
	// ShopIndy is independent shop pricing.
	ShopIndy ShopType = "indy"
)

// Stat is a (mean, standard deviation) pair for a normally distributed cost
// component.
type Stat struct {
	Mean float64
	Std  float64
}

type rateKey struct {
	Shop ShopType
	Tier string
}

type partsKey struct {
	Service string
	Tier    string
}

type vehicleKey struct {
	Make  string
	Model string
}

// Tables holds all loaded reference data. Immutable after Load; safe for
// concurrent readers.
type Tables struct {
	laborStandards map[string]float64
	laborRates     map[rateKey]Stat
	partsEstimates map[partsKey]Stat
	vehicleTiers   map[vehicleKey]string
	makeTiers      map[string]string
	intervals      map[vehicleKey]map[string]int
	tierIntervals  map[string]map[string]int
}

// LaborHours returns the book labor hours for a service.
func (t *Tables) LaborHours(service string) (float64, bool) {
	h, ok := t.laborStandards[service]
	return h, ok
}

// LaborRate returns the hourly rate distribution for a shop type and tier.
func (t *Tables) LaborRate(shop ShopType, tier string) (Stat, bool) {
	s, ok := t.laborRates[rateKey{Shop: shop, Tier: tier}]
	return s, ok
}

// PartsEstimate returns the parts cost distribution for a service and tier.
func (t *Tables) PartsEstimate(service, tier string) (Stat, bool) {
	s, ok := t.partsEstimates[partsKey{Service: service, Tier: tier}]
	return s, ok
}

// VehicleTier returns the tier assigned to an exact (make, model) pair.
// Keys are matched lowercase/trimmed.
func (t *Tables) VehicleTier(makeName, modelName string) (string, bool) {
	tier, ok := t.vehicleTiers[vehicleKey{Make: normalize(makeName), Model: normalize(modelName)}]
	return tier, ok
}

// MakeTier returns the make-level fallback tier (the tier of the first model
// listed for the make).
func (t *Tables) MakeTier(makeName string) (string, bool) {
	tier, ok := t.makeTiers[normalize(makeName)]
	return tier, ok
}

// Intervals returns a copy of the make/model-specific maintenance interval
// map (service name to miles), or nil when the vehicle has no entry.
func (t *Tables) Intervals(makeName, modelName string) map[string]int {
	m, ok := t.intervals[vehicleKey{Make: normalize(makeName), Model: normalize(modelName)}]
	if !ok {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// TierIntervals returns a copy of the tier-fallback maintenance interval map,
// or nil when the tier has no entry.
func (t *Tables) TierIntervals(tier string) map[string]int {
	m, ok := t.tierIntervals[tier]
	if !ok {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Services returns the sorted list of service names with labor standards.
func (t *Tables) Services() []string {
	out := make([]string, 0, len(t.laborStandards))
	for name := range t.laborStandards {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
