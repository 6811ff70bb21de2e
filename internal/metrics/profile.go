package metrics

import (
	"github.com/montanaflynn/stats"

	"retailedge/domain/retail"
)

// ProfileSeries computes descriptive statistics for one numeric series.
// An empty series profiles to all zeros.
func ProfileSeries(data []float64) retail.SeriesProfile {
	if len(data) == 0 {
		return retail.SeriesProfile{}
	}
	mean, _ := stats.Mean(data)
	median, _ := stats.Median(data)
	stdDev, _ := stats.StandardDeviation(data)
	min, _ := stats.Min(data)
	max, _ := stats.Max(data)
	return retail.SeriesProfile{
		Mean:   mean,
		Median: median,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
	}
}

// ProfileRows builds the diagnostics profiles over the sales and margin
// series of the derived rows.
func ProfileRows(rows []retail.DerivedRow) (sales retail.SeriesProfile, margin retail.SeriesProfile) {
	salesSeries := make([]float64, len(rows))
	marginSeries := make([]float64, len(rows))
	for i, row := range rows {
		salesSeries[i] = row.SalesValue
		marginSeries[i] = row.GMPercent
	}
	return ProfileSeries(salesSeries), ProfileSeries(marginSeries)
}
