package pricing

import (
	"sort"

	"github.com/aristath/cardpricer/pkg/stats"
)

// iqrMultiplier is the Tukey fence multiplier. Fixed at 1.5 for
// compatibility with historical outputs.
const iqrMultiplier = 1.5

// PriceSummary aggregates the kept price sample.
type PriceSummary struct {
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
}

// Summarize removes statistical outliers with Tukey's IQR fence and returns
// the mean (rounded to cents), count and low/high of the surviving prices.
// Quartiles are index-based (prices[floor(0.25n)]), not interpolated; this
// deviates from textbook quartiles on purpose and must not be "fixed", since
// interpolation would silently change outputs. Returns nil when nothing
// survives; callers reject an empty input before this stage.
func Summarize(prices []float64) *PriceSummary {
	if len(prices) == 0 {
		return nil
	}

	sorted := make([]float64, len(prices))
	copy(sorted, prices)
	sort.Float64s(sorted)

	n := len(sorted)
	q1 := sorted[(n-1)/4]
	q3 := sorted[(n-1)*3/4]

	iqr := q3 - q1
	lowerBound := q1 - iqrMultiplier*iqr
	upperBound := q3 + iqrMultiplier*iqr

	kept := make([]float64, 0, n)
	for _, p := range sorted {
		if p >= lowerBound && p <= upperBound {
			kept = append(kept, p)
		}
	}

	if len(kept) == 0 {
		return nil
	}

	return &PriceSummary{
		Mean:  stats.Round2(stats.Mean(kept)),
		Count: len(kept),
		Low:   kept[0],
		High:  kept[len(kept)-1],
	}
}
