// Package refdata loads the reference tables that drive cost estimation and
// maintenance recommendations: labor-hour standards, labor rates by shop type
// and vehicle tier, parts costs by service and tier, vehicle tier assignments,
// and mileage-based maintenance intervals.
//
// The tables ship embedded in the binary. An external directory can override
// any individual table file (external wins per file), which keeps pricing
// refreshes from requiring a rebuild.
//
// All tables are loaded once at startup and are read-only afterwards, so a
// *Tables value is safe for concurrent use.
package refdata
