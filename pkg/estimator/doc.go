// Package estimator implements the cost-estimation core: a pure computation
// over the reference tables in pkg/refdata.
//
// Cost components (labor rate, labor cost, parts, total) are modeled as
// independent normally distributed variables. Labor cost scales the rate
// distribution linearly by book hours; totals add means and combine standard
// deviations as sqrt of summed variances. Displayed price ranges are 95%
// confidence intervals, mean +/- 1.96 std, floored at zero.
//
// The estimator holds no mutable state after construction and is safe for
// concurrent use. The current year used by the indy age discount is injected
// through the Clock interface so results are reproducible in tests.
package estimator
