package metrics

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"retailedge/domain/retail"
)

// ABCPolicy holds the cumulative-share thresholds for ABC classification.
// 70/90 is the house policy; some legacy reports used 80/95, so the split
// is configuration rather than a literal in the algorithm.
type ABCPolicy struct {
	ClassAThreshold float64
	ClassBThreshold float64
}

// DefaultABCPolicy returns the standard 70/90 Pareto split.
func DefaultABCPolicy() ABCPolicy {
	return ABCPolicy{ClassAThreshold: 70, ClassBThreshold: 90}
}

// Calculator derives per-row and per-table metrics from normalized rows.
type Calculator struct {
	policy ABCPolicy
}

// NewCalculator creates a calculator with the given ABC policy.
func NewCalculator(policy ABCPolicy) *Calculator {
	return &Calculator{policy: policy}
}

// GrossMarginPercent computes margin against net (tax-exclusive) revenue.
// A non-positive price yields 0 rather than a division blow-up; rows with
// no usable price data still participate in every table statistic.
func GrossMarginPercent(retailPriceExc, costPrice float64) float64 {
	if retailPriceExc <= 0 {
		return 0
	}
	return (retailPriceExc - costPrice) / retailPriceExc * 100
}

// ComputeRows attaches the gross margin percentage and ABC class to every
// normalized row, preserving input row order. Recommendation and elasticity
// are filled in later by the classifier.
func (c *Calculator) ComputeRows(rows []retail.NormalizedRow) []retail.DerivedRow {
	derived := make([]retail.DerivedRow, len(rows))
	for i, row := range rows {
		derived[i] = retail.DerivedRow{
			NormalizedRow: row,
			GMPercent:     GrossMarginPercent(row.RetailPriceExc, row.CostPrice),
		}
	}

	classes := c.classifyABC(rows)
	for i := range derived {
		derived[i].ABC = classes[i]
	}
	return derived
}

// classifyABC assigns Pareto tiers by cumulative share of sales: rows are
// ranked by descending sales value, and a row is A while the running share
// stays within the A threshold, B within the B threshold, C beyond. With
// zero total sales there is no meaningful split and every row is C.
func (c *Calculator) classifyABC(rows []retail.NormalizedRow) []retail.ABCClass {
	classes := make([]retail.ABCClass, len(rows))
	totalSales := c.TotalSales(rows)
	if totalSales <= 0 {
		for i := range classes {
			classes[i] = retail.ClassC
		}
		return classes
	}

	order := make([]int, len(rows))
	for i := range order {
		order[i] = i
	}
	// Stable sort keeps equal-sales rows in table order, so classification
	// never depends on unspecified ordering.
	sort.SliceStable(order, func(a, b int) bool {
		return rows[order[a]].SalesValue > rows[order[b]].SalesValue
	})

	cumulative := 0.0
	for _, idx := range order {
		cumulative += rows[idx].SalesValue
		share := cumulative / totalSales * 100
		switch {
		case share <= c.policy.ClassAThreshold:
			classes[idx] = retail.ClassA
		case share <= c.policy.ClassBThreshold:
			classes[idx] = retail.ClassB
		default:
			classes[idx] = retail.ClassC
		}
	}
	return classes
}

// TotalSales sums the sales value across all rows.
func (c *Calculator) TotalSales(rows []retail.NormalizedRow) float64 {
	values := make([]float64, len(rows))
	for i, row := range rows {
		values[i] = row.SalesValue
	}
	return floats.Sum(values)
}

// TotalUnits sums the unit volume across all rows.
func (c *Calculator) TotalUnits(rows []retail.NormalizedRow) float64 {
	values := make([]float64, len(rows))
	for i, row := range rows {
		values[i] = row.UnitVolume
	}
	return floats.Sum(values)
}

// AggregateCategories groups rows by category and sums sales and units.
// The category margin is sales-weighted: sum(margin_value) / sum(sales),
// never an arithmetic mean of row percentages, which would over-weight
// low-revenue rows. Output is ordered by descending sales, name ascending
// on ties, so repeated runs produce identical results.
func (c *Calculator) AggregateCategories(rows []retail.NormalizedRow, totalSales float64) []retail.CategorySummary {
	type bucket struct {
		sales       float64
		units       float64
		marginValue float64
	}
	buckets := make(map[string]*bucket)
	for _, row := range rows {
		b, ok := buckets[row.Category]
		if !ok {
			b = &bucket{}
			buckets[row.Category] = b
		}
		b.sales += row.SalesValue
		b.units += row.UnitVolume
		b.marginValue += row.MarginValue()
	}

	summaries := make([]retail.CategorySummary, 0, len(buckets))
	for category, b := range buckets {
		summary := retail.CategorySummary{
			Category: category,
			Sales:    b.sales,
			Units:    b.units,
		}
		if b.sales > 0 {
			summary.AvgMargin = b.marginValue / b.sales * 100
		}
		if totalSales > 0 {
			summary.SalesShare = b.sales / totalSales * 100
		}
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(a, b int) bool {
		if summaries[a].Sales != summaries[b].Sales {
			return summaries[a].Sales > summaries[b].Sales
		}
		return summaries[a].Category < summaries[b].Category
	})
	return summaries
}
