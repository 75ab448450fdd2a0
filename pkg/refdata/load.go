package refdata

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	qerrors "github.com/fairfix/quote-engine/pkg/errors"
)

// Table file names resolved through a DataProvider.
const (
	FileLaborRates     = "labor_rates.csv"
	FilePartsEstimates = "parts_estimates.csv"
	FileVehicleTiers   = "vehicle_tiers.csv"
	FileIntervals      = "maintenance_intervals.csv"
	FileTierIntervals  = "maintenance_intervals_tier.csv"
)

// Load parses all reference tables from the provider. A missing file or
// missing required column fails the whole load (the estimator cannot run on
// partial tables). Rows with unparseable numeric fields are skipped with a
// warning.
func Load(p DataProvider) (*Tables, error) {
	t := &Tables{
		laborStandards: laborStandards,
		laborRates:     make(map[rateKey]Stat),
		partsEstimates: make(map[partsKey]Stat),
		vehicleTiers:   make(map[vehicleKey]string),
		makeTiers:      make(map[string]string),
		intervals:      make(map[vehicleKey]map[string]int),
		tierIntervals:  make(map[string]map[string]int),
	}

	loaders := []struct {
		file string
		fn   func(*Tables, []map[string]string) error
	}{
		{FileLaborRates, loadLaborRates},
		{FilePartsEstimates, loadPartsEstimates},
		{FileVehicleTiers, loadVehicleTiers},
		{FileIntervals, loadIntervals},
		{FileTierIntervals, loadTierIntervals},
	}

	for _, l := range loaders {
		rows, err := readTable(p, l.file)
		if err != nil {
			return nil, err
		}
		if err := l.fn(t, rows); err != nil {
			return nil, err
		}
		slog.Debug("loaded reference table",
			"file", l.file,
			"rows", len(rows),
			"source", p.Source(l.file),
		)
	}

	return t, nil
}

// readTable reads a CSV file into one map per row keyed by header name.
func readTable(p DataProvider, file string) ([]map[string]string, error) {
	raw, err := p.ReadFile(file)
	if err != nil {
		return nil, qerrors.Wrap(qerrors.ErrCodeInvalidData,
			"reading reference table "+file, err)
	}

	r := csv.NewReader(bytes.NewReader(raw))
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, qerrors.Wrap(qerrors.ErrCodeInvalidData,
			"parsing reference table "+file, err)
	}
	if len(records) == 0 {
		return nil, qerrors.New(qerrors.ErrCodeInvalidData,
			"reference table is empty: "+file)
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[strings.TrimSpace(col)] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// requireColumns verifies every named column appears in the first row.
func requireColumns(file string, rows []map[string]string, cols ...string) error {
	if len(rows) == 0 {
		return nil
	}
	for _, col := range cols {
		if _, ok := rows[0][col]; !ok {
			return qerrors.NewWithContext(qerrors.ErrCodeInvalidData,
				fmt.Sprintf("reference table %s is missing required column %q", file, col),
				map[string]any{"file": file, "column": col})
		}
	}
	return nil
}

func loadLaborRates(t *Tables, rows []map[string]string) error {
	if err := requireColumns(FileLaborRates, rows, "shop_type", "vehicle_tier", "rate_mean", "rate_std"); err != nil {
		return err
	}
	for _, row := range rows {
		mean, err1 := strconv.ParseFloat(strings.TrimSpace(row["rate_mean"]), 64)
		std, err2 := strconv.ParseFloat(strings.TrimSpace(row["rate_std"]), 64)
		if err1 != nil || err2 != nil {
			slog.Warn("skipping labor rate row with unparseable value",
				"shop_type", row["shop_type"], "vehicle_tier", row["vehicle_tier"])
			continue
		}
		key := rateKey{
			Shop: ShopType(strings.TrimSpace(row["shop_type"])),
			Tier: strings.TrimSpace(row["vehicle_tier"]),
		}
		t.laborRates[key] = Stat{Mean: mean, Std: std}
	}
	return nil
}

func loadPartsEstimates(t *Tables, rows []map[string]string) error {
	if err := requireColumns(FilePartsEstimates, rows, "service_name", "vehicle_tier", "parts_mean", "parts_std"); err != nil {
		return err
	}
	for _, row := range rows {
		mean, err1 := strconv.ParseFloat(strings.TrimSpace(row["parts_mean"]), 64)
		std, err2 := strconv.ParseFloat(strings.TrimSpace(row["parts_std"]), 64)
		if err1 != nil || err2 != nil {
			slog.Warn("skipping parts estimate row with unparseable value",
				"service_name", row["service_name"], "vehicle_tier", row["vehicle_tier"])
			continue
		}
		key := partsKey{
			Service: strings.TrimSpace(row["service_name"]),
			Tier:    strings.TrimSpace(row["vehicle_tier"]),
		}
		t.partsEstimates[key] = Stat{Mean: mean, Std: std}
	}
	return nil
}

func loadVehicleTiers(t *Tables, rows []map[string]string) error {
	if err := requireColumns(FileVehicleTiers, rows, "make", "model", "tier"); err != nil {
		return err
	}
	for _, row := range rows {
		mk := normalize(row["make"])
		md := normalize(row["model"])
		tier := strings.TrimSpace(row["tier"])
		if mk == "" || md == "" || tier == "" {
			slog.Warn("skipping vehicle tier row with empty field", "make", row["make"], "model", row["model"])
			continue
		}
		t.vehicleTiers[vehicleKey{Make: mk, Model: md}] = tier
		// First listed model seeds the make-level fallback.
		if _, ok := t.makeTiers[mk]; !ok {
			t.makeTiers[mk] = tier
		}
	}
	return nil
}

func loadIntervals(t *Tables, rows []map[string]string) error {
	if err := requireColumns(FileIntervals, rows, "make", "model", "service_name", "mileage_interval"); err != nil {
		return err
	}
	for _, row := range rows {
		miles, err := strconv.Atoi(strings.TrimSpace(row["mileage_interval"]))
		if err != nil {
			slog.Warn("skipping maintenance interval row with unparseable mileage",
				"make", row["make"], "model", row["model"], "service_name", row["service_name"])
			continue
		}
		key := vehicleKey{Make: normalize(row["make"]), Model: normalize(row["model"])}
		if t.intervals[key] == nil {
			t.intervals[key] = make(map[string]int)
		}
		t.intervals[key][strings.TrimSpace(row["service_name"])] = miles
	}
	return nil
}

func loadTierIntervals(t *Tables, rows []map[string]string) error {
	if err := requireColumns(FileTierIntervals, rows, "vehicle_tier", "service_name", "mileage_interval"); err != nil {
		return err
	}
	for _, row := range rows {
		miles, err := strconv.Atoi(strings.TrimSpace(row["mileage_interval"]))
		if err != nil {
			slog.Warn("skipping tier interval row with unparseable mileage",
				"vehicle_tier", row["vehicle_tier"], "service_name", row["service_name"])
			continue
		}
		tier := strings.TrimSpace(row["vehicle_tier"])
		if t.tierIntervals[tier] == nil {
			t.tierIntervals[tier] = make(map[string]int)
		}
		t.tierIntervals[tier][strings.TrimSpace(row["service_name"])] = miles
	}
	return nil
}
