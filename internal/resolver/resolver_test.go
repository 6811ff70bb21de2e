package resolver

import (
	"testing"

	"retailedge/domain/retail"
)

// TestResolve_SalesRoleRejectsPriceColumns verifies the turnover column is
// never conflated with a unit price column.
func TestResolve_SalesRoleRejectsPriceColumns(t *testing.T) {
	headers := []string{"Value Sales", "Sales_Price_Without_VAT", "Net_Price", "Segment", "Brand"}

	mapping := Resolve(headers, DefaultRules)

	col, ok := mapping.Column(retail.RoleSalesValue)
	if !ok {
		t.Fatal("sales_value should resolve")
	}
	if col != "Value Sales" {
		t.Errorf("sales_value resolved to %q, want \"Value Sales\"", col)
	}
}

func TestResolve_TypicalRetailExport(t *testing.T) {
	headers := []string{
		"SKU", "Product Description", "Category", "Brand",
		"Value Sales", "Units Sold", "Price Without VAT", "Cost Price",
	}

	mapping := Resolve(headers, DefaultRules)

	expected := map[retail.Role]string{
		retail.RoleIdentifier:     "SKU",
		retail.RoleDescription:    "Product Description",
		retail.RoleCategory:       "Category",
		retail.RoleBrand:          "Brand",
		retail.RoleSalesValue:     "Value Sales",
		retail.RoleUnitVolume:     "Units Sold",
		retail.RoleRetailPriceExc: "Price Without VAT",
		retail.RoleCostPrice:      "Cost Price",
	}
	for role, want := range expected {
		got, ok := mapping.Column(role)
		if !ok {
			t.Errorf("role %s unresolved, want %q", role, want)
			continue
		}
		if got != want {
			t.Errorf("role %s resolved to %q, want %q", role, got, want)
		}
	}
	if mapping.Resolved(retail.RoleRetailPriceInc) {
		t.Error("retail_price_inc_vat should stay unresolved for this schema")
	}
}

// TestResolve_ExactBeatsSubstring verifies a longer, exact keyword match
// outranks a shorter substring match in a later group.
func TestResolve_ExactBeatsSubstring(t *testing.T) {
	headers := []string{"Net_Price", "Sales_Price_Without_VAT"}

	mapping := Resolve(headers, DefaultRules)

	col, ok := mapping.Column(retail.RoleRetailPriceExc)
	if !ok {
		t.Fatal("retail_price_ex_vat should resolve")
	}
	if col != "Sales_Price_Without_VAT" {
		t.Errorf("resolved %q, want the explicit ex-VAT column", col)
	}
}

func TestResolve_PositionalFallbacks(t *testing.T) {
	headers := []string{"Colonne Un", "Colonne Deux"}

	mapping := Resolve(headers, DefaultRules)

	if col, _ := mapping.Column(retail.RoleIdentifier); col != "Colonne Un" {
		t.Errorf("identifier fallback = %q, want first column", col)
	}
	if col, _ := mapping.Column(retail.RoleDescription); col != "Colonne Deux" {
		t.Errorf("description fallback = %q, want second column", col)
	}
	// Non-mandatory roles stay unresolved rather than guessing.
	if mapping.Resolved(retail.RoleSalesValue) {
		t.Error("sales_value should not fall back positionally")
	}
	if mapping.Resolved(retail.RoleCostPrice) {
		t.Error("cost_price should not fall back positionally")
	}
}

func TestResolve_GreekHeaders(t *testing.T) {
	headers := []string{"Κωδικός", "Περιγραφή", "Κατηγορία", "Πωλήσεις", "Τεμάχια", "Κόστος"}

	mapping := Resolve(headers, DefaultRules)

	cases := map[retail.Role]string{
		retail.RoleIdentifier:  "Κωδικός",
		retail.RoleDescription: "Περιγραφή",
		retail.RoleCategory:    "Κατηγορία",
		retail.RoleSalesValue:  "Πωλήσεις",
		retail.RoleUnitVolume:  "Τεμάχια",
		retail.RoleCostPrice:   "Κόστος",
	}
	for role, want := range cases {
		if got, _ := mapping.Column(role); got != want {
			t.Errorf("role %s resolved to %q, want %q", role, got, want)
		}
	}
}

func TestResolve_Deterministic(t *testing.T) {
	headers := []string{"Sales", "Sales Value", "Turnover", "Category", "Segment"}

	first := Resolve(headers, DefaultRules)
	for i := 0; i < 10; i++ {
		again := Resolve(headers, DefaultRules)
		for _, role := range retail.AllRoles {
			a, aok := first.Column(role)
			b, bok := again.Column(role)
			if aok != bok || a != b {
				t.Fatalf("resolution of %s not deterministic: %q vs %q", role, a, b)
			}
		}
	}
}

func TestResolve_EmptyHeaderList(t *testing.T) {
	mapping := Resolve(nil, DefaultRules)
	for _, role := range retail.AllRoles {
		if mapping.Resolved(role) {
			t.Errorf("role %s resolved against empty header list", role)
		}
	}
}

func TestNormalizeHeader(t *testing.T) {
	cases := map[string]string{
		"Value Sales":    "valuesales",
		" VALUE-SALES ":  "valuesales",
		"value_sales":    "valuesales",
		"Τζίρος (€)":     "τζιρος",
		"Units  Sold":    "unitssold",
		"":               "",
		"  __--  ":       "",
	}
	for input, want := range cases {
		if got := NormalizeHeader(input); got != want {
			t.Errorf("NormalizeHeader(%q) = %q, want %q", input, got, want)
		}
	}
}
