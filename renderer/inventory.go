package renderer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/digitalstock"
)

// Inventory renders the full product list as a markdown table, sorted by
// name for display. The underlying store keeps its own insertion order.
func Inventory(products []digitalstock.Product, totalStock int) string {
	if len(products) == 0 {
		return "# Inventory\n\nNo products registered.\n"
	}

	sorted := slices.Clone(products)
	slices.SortStableFunc(sorted, func(a, b digitalstock.Product) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})

	t := newTable("Code", "Name", "Quantity", "Unit Price")
	for _, p := range sorted {
		t.row(p.Code, p.Name, itoa(p.Quantity), p.UnitPrice.String())
	}
	return fmt.Sprintf("# Inventory\n\n%s\nTotal units in stock: %d\n", t, totalStock)
}

// Product renders a single product lookup result.
func Product(p digitalstock.Product) string {
	t := newTable("Code", "Name", "Quantity", "Unit Price")
	t.row(p.Code, p.Name, itoa(p.Quantity), p.UnitPrice.String())
	return fmt.Sprintf("# Product %s\n\n%s", p.Code, t)
}

// LowStock renders the reorder report: products below the threshold,
// ascending by quantity.
func LowStock(products []digitalstock.Product, threshold int) string {
	if len(products) == 0 {
		return fmt.Sprintf("# Low Stock\n\nNo products below %d units.\n", threshold)
	}
	t := newTable("Code", "Name", "Quantity")
	for _, p := range products {
		t.row(p.Code, p.Name, itoa(p.Quantity))
	}
	return fmt.Sprintf("# Low Stock (below %d units)\n\n%s", threshold, t)
}
