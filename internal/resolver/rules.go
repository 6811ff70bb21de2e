package resolver

import "retailedge/domain/retail"

// Fallback describes the positional default applied when no column matches
// a structurally mandatory role.
type Fallback int

const (
	FallbackNone Fallback = iota
	FallbackFirstColumn
	FallbackSecondColumn
)

// RoleRule declares how one canonical role is located in an arbitrary
// schema: ordered keyword groups (primary names first, then synonyms, then
// localized synonyms), exclusion keywords that veto a candidate outright,
// and an optional positional fallback.
//
// Keywords are written in normalized form (lowercase, no whitespace or
// punctuation) since both sides are normalized before matching.
type RoleRule struct {
	Role     retail.Role
	Groups   [][]string
	Exclude  []string
	Fallback Fallback
}

// DefaultRules is the schema knowledge table consolidated from the column
// vocabularies seen across retailer exports (English and Greek headers).
// Changing the recognized schema is an edit here, not a new code path.
var DefaultRules = []RoleRule{
	{
		Role: retail.RoleIdentifier,
		Groups: [][]string{
			{"skuid", "sku", "itemcode", "productcode", "barcode", "ean", "plu"},
			{"code", "itemid", "productid", "κωδικος"},
		},
		Fallback: FallbackFirstColumn,
	},
	{
		Role: retail.RoleDescription,
		Groups: [][]string{
			{"productdescription", "itemdescription", "description", "productname", "itemname"},
			{"name", "περιγραφη", "ονομασια"},
		},
		Exclude:  []string{"brand", "category", "supplier"},
		Fallback: FallbackSecondColumn,
	},
	{
		Role: retail.RoleBrand,
		Groups: [][]string{
			{"brand", "μαρκα"},
			{"supplier", "vendor", "manufacturer", "προμηθευτης"},
		},
	},
	{
		Role: retail.RoleCategory,
		Groups: [][]string{
			{"category", "segment", "department", "κατηγορια"},
			{"productgroup", "merchandisegroup", "family", "group"},
		},
		Exclude: []string{"sub"},
	},
	{
		Role: retail.RoleSalesValue,
		Groups: [][]string{
			{"valuesales", "salesvalue", "salesamount", "turnover", "revenue", "τζιρος"},
			{"sales", "value", "πωλησεις", "αξια"},
		},
		// Turnover must never be conflated with a unit price or a volume
		// column that happens to mention sales.
		Exclude: []string{"price", "unit", "qty", "volume", "margin", "τιμη"},
	},
	{
		Role: retail.RoleUnitVolume,
		Groups: [][]string{
			{"unitssold", "unitsales", "volumesales", "salesvolume", "quantitysold", "τεμαχια"},
			{"units", "quantity", "qty", "volume", "pieces", "ποσοτητα"},
		},
		Exclude: []string{"price", "value", "cost", "τιμη"},
	},
	{
		Role: retail.RoleRetailPriceExc,
		Groups: [][]string{
			{"salespricewithoutvat", "pricewithoutvat", "priceexvat", "priceexclvat", "netsellingprice", "τιμηχωριςφπα"},
			{"netprice", "sellingprice", "retailprice", "unitprice"},
		},
		Exclude: []string{"withvat", "incvat", "inclvat", "cost", "buy", "purchase", "μεφπα"},
	},
	{
		Role: retail.RoleRetailPriceInc,
		Groups: [][]string{
			{"salespricewithvat", "pricewithvat", "priceincvat", "priceinclvat", "grossprice", "rrp", "τιμημεφπα"},
		},
		Exclude: []string{"without", "exvat", "excl", "cost", "buy", "purchase", "χωρις"},
	},
	{
		Role: retail.RoleCostPrice,
		Groups: [][]string{
			{"costprice", "netcost", "buyprice", "buyingprice", "purchaseprice", "unitcost", "κοστος"},
			{"cost"},
		},
		Exclude: []string{"total"},
	},
}
