package domain

import "errors"

// ErrNoMonthlyData is returned when a pipeline run produced zero monthly
// aggregates. Trend direction has no sensible default over an empty year, so
// the run fails loudly instead of guessing.
var ErrNoMonthlyData = errors.New("no monthly data produced")
