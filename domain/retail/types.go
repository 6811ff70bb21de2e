package retail

// Role identifies a canonical semantic field the resolver tries to locate
// in an arbitrary spreadsheet schema.
type Role string

const (
	RoleIdentifier      Role = "identifier"
	RoleDescription     Role = "description"
	RoleBrand           Role = "brand"
	RoleCategory        Role = "category"
	RoleSalesValue      Role = "sales_value"
	RoleUnitVolume      Role = "unit_volume"
	RoleRetailPriceExc  Role = "retail_price_ex_vat"
	RoleRetailPriceInc  Role = "retail_price_inc_vat"
	RoleCostPrice       Role = "cost_price"
)

// AllRoles lists every canonical role in resolution priority order.
var AllRoles = []Role{
	RoleIdentifier,
	RoleDescription,
	RoleBrand,
	RoleCategory,
	RoleSalesValue,
	RoleUnitVolume,
	RoleRetailPriceExc,
	RoleRetailPriceInc,
	RoleCostPrice,
}

// ColumnRoleMap maps each canonical role to the source column chosen for it.
// A role that could not be matched is simply absent; that is an ordinary
// outcome, not an error.
type ColumnRoleMap map[Role]string

// Column returns the column resolved for a role and whether one was found.
func (m ColumnRoleMap) Column(role Role) (string, bool) {
	col, ok := m[role]
	return col, ok
}

// Resolved reports whether a role was matched to a column.
func (m ColumnRoleMap) Resolved(role Role) bool {
	_, ok := m[role]
	return ok
}

// Gaps returns the roles that were left unresolved, in priority order.
func (m ColumnRoleMap) Gaps() []Role {
	var gaps []Role
	for _, role := range AllRoles {
		if !m.Resolved(role) {
			gaps = append(gaps, role)
		}
	}
	return gaps
}

// Sentinel defaults for text fields with no resolved source column.
const (
	DefaultCategory = "General"
	DefaultText     = "N/A"
)

// NormalizedRow is a source row coerced onto the canonical fields. Numeric
// fields default to 0, text fields to their sentinel; no row is ever dropped
// during normalization.
type NormalizedRow struct {
	SKU         string
	Description string
	Category    string
	Brand       string

	SalesValue     float64
	UnitVolume     float64
	RetailPriceExc float64
	CostPrice      float64
}

// MarginValue returns the absolute gross margin per unit in money terms,
// used for sales-weighted category margins.
func (r NormalizedRow) MarginValue() float64 {
	if r.RetailPriceExc <= 0 {
		return 0
	}
	return (r.RetailPriceExc - r.CostPrice) / r.RetailPriceExc * r.SalesValue
}

// ABCClass is the Pareto revenue tier of a row.
type ABCClass string

const (
	ClassA ABCClass = "A"
	ClassB ABCClass = "B"
	ClassC ABCClass = "C"
)

// DerivedRow is a NormalizedRow plus every computed metric and rule-derived
// classification attached by the pipeline.
type DerivedRow struct {
	NormalizedRow

	GMPercent      float64
	ABC            ABCClass
	Recommendation string
	Elasticity     float64
}

// CategorySummary aggregates one distinct category value.
type CategorySummary struct {
	Category string
	Sales    float64
	Units    float64

	// AvgMargin is the sales-weighted margin percentage:
	// sum(margin_value) / sum(sales) * 100.
	AvgMargin float64

	// SalesShare is this category's share of total sales, in percent.
	SalesShare float64
}

// SeriesProfile holds descriptive statistics over a numeric series,
// reported in the result diagnostics.
type SeriesProfile struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Diagnostics surfaces non-fatal data-quality findings alongside a result.
type Diagnostics struct {
	UnresolvedRoles []Role        `json:"unresolved_roles,omitempty"`
	SalesProfile    SeriesProfile `json:"sales_profile"`
	MarginProfile   SeriesProfile `json:"margin_profile"`
}

// Analysis is the full computed output of the pipeline before the assembler
// shapes it into the external JSON contract.
type Analysis struct {
	TotalSales float64
	TotalUnits float64
	Rows       []DerivedRow
	Categories []CategorySummary
	Diag       Diagnostics
}
