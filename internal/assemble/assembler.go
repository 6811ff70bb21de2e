package assemble

import (
	"math"

	"retailedge/domain/retail"
)

// ResultPayload is the canonical output contract consumed by the dashboard.
// The key set is stable regardless of which source columns were present:
// missing data yields default values, never an absent key.
type ResultPayload struct {
	Status        string            `json:"status"`
	TotalSales    float64           `json:"total_sales"`
	TotalUnits    int64             `json:"total_units"`
	CategoryMacro []CategoryPayload `json:"category_macro"`
	RawData       []RowPayload      `json:"raw_data"`
	Diagnostics   DiagnosticsPayload `json:"diagnostics"`
}

// CategoryPayload is one category roll-up in the output contract.
type CategoryPayload struct {
	Category   string  `json:"category"`
	Sales      int64   `json:"sales"`
	Units      int64   `json:"units"`
	AvgMargin  float64 `json:"avg_margin"`
	SalesShare float64 `json:"sales_share"`
}

// RowPayload is one analyzed product row in the output contract.
type RowPayload struct {
	SKUID          string  `json:"sku_id"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
	Brand          string  `json:"brand"`
	Units          int64   `json:"units"`
	Sales          float64 `json:"sales"`
	GMPercent      float64 `json:"gm_percent"`
	ABCClass       string  `json:"abc_class"`
	Recommendation string  `json:"recommendation"`
	Elasticity     float64 `json:"elasticity"`
}

// DiagnosticsPayload surfaces non-fatal data-quality findings.
type DiagnosticsPayload struct {
	UnresolvedRoles []string             `json:"unresolved_roles"`
	SalesProfile    retail.SeriesProfile `json:"sales_profile"`
	MarginProfile   retail.SeriesProfile `json:"margin_profile"`
}

// ErrorPayload is the error envelope returned when the pipeline could not
// run at all (fetch, decode or structural failure).
type ErrorPayload struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Assemble shapes a computed analysis into the canonical contract. Money
// is rounded to 2 decimals and percentages to 1 decimal here and only
// here; upstream computation stays unrounded so rounding error never
// compounds across dependent calculations.
func Assemble(analysis *retail.Analysis) *ResultPayload {
	payload := &ResultPayload{
		Status:        "success",
		TotalSales:    round2(analysis.TotalSales),
		TotalUnits:    roundInt(analysis.TotalUnits),
		CategoryMacro: make([]CategoryPayload, 0, len(analysis.Categories)),
		RawData:       make([]RowPayload, 0, len(analysis.Rows)),
		Diagnostics: DiagnosticsPayload{
			UnresolvedRoles: make([]string, 0, len(analysis.Diag.UnresolvedRoles)),
			SalesProfile:    roundProfile(analysis.Diag.SalesProfile),
			MarginProfile:   roundProfile(analysis.Diag.MarginProfile),
		},
	}

	for _, role := range analysis.Diag.UnresolvedRoles {
		payload.Diagnostics.UnresolvedRoles = append(payload.Diagnostics.UnresolvedRoles, string(role))
	}

	for _, cat := range analysis.Categories {
		payload.CategoryMacro = append(payload.CategoryMacro, CategoryPayload{
			Category:   cat.Category,
			Sales:      roundInt(cat.Sales),
			Units:      roundInt(cat.Units),
			AvgMargin:  round1(cat.AvgMargin),
			SalesShare: round1(cat.SalesShare),
		})
	}

	for _, row := range analysis.Rows {
		payload.RawData = append(payload.RawData, RowPayload{
			SKUID:          row.SKU,
			Description:    row.Description,
			Category:       row.Category,
			Brand:          row.Brand,
			Units:          roundInt(row.UnitVolume),
			Sales:          round2(row.SalesValue),
			GMPercent:      round1(row.GMPercent),
			ABCClass:       string(row.ABC),
			Recommendation: row.Recommendation,
			Elasticity:     row.Elasticity,
		})
	}

	return payload
}

// AssembleError wraps a pipeline failure into the error envelope.
func AssembleError(err error) *ErrorPayload {
	return &ErrorPayload{
		Status:  "error",
		Message: err.Error(),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func roundInt(v float64) int64 {
	return int64(math.Round(v))
}

func roundProfile(p retail.SeriesProfile) retail.SeriesProfile {
	return retail.SeriesProfile{
		Mean:   round2(p.Mean),
		Median: round2(p.Median),
		StdDev: round2(p.StdDev),
		Min:    round2(p.Min),
		Max:    round2(p.Max),
	}
}
