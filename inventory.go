package digitalstock

import (
	"cmp"
	"iter"
	"slices"
)

// Inventory is the in-memory collection of products. Insertion order is
// preserved; sorting is a presentation concern. The inventory owns its
// products: mutating operations work on the stored value, never on a copy
// that could diverge.
type Inventory struct {
	products []Product
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{products: make([]Product, 0)}
}

func (inv *Inventory) Len() int { return len(inv.products) }

// Products returns an iterator that yields each product in insertion order.
func (inv *Inventory) Products() iter.Seq2[int, Product] {
	return func(yield func(int, Product) bool) {
		for i, p := range inv.products {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Find returns a pointer to the product with the given code, or nil if
// unknown. The match is case-insensitive; codes are unique so at most one
// product can match.
func (inv *Inventory) Find(code string) *Product {
	key := NormalizeCode(code)
	for i := range inv.products {
		if NormalizeCode(inv.products[i].Code) == key {
			return &inv.products[i]
		}
	}
	return nil
}

// Add appends a product to the inventory. It fails with a DuplicateCodeError
// if a product with the same normalized code already exists.
func (inv *Inventory) Add(p Product) error {
	if inv.Find(p.Code) != nil {
		return &DuplicateCodeError{Code: p.Code}
	}
	inv.products = append(inv.products, p)
	return nil
}

// Remove deletes the product with the given code and returns it for caller
// reporting. It fails with a NotFoundError if the code is unknown.
func (inv *Inventory) Remove(code string) (Product, error) {
	key := NormalizeCode(code)
	for i := range inv.products {
		if NormalizeCode(inv.products[i].Code) == key {
			removed := inv.products[i]
			inv.products = append(inv.products[:i], inv.products[i+1:]...)
			return removed, nil
		}
	}
	return Product{}, &NotFoundError{Code: code}
}

// AdjustQuantity changes the stock of a product by delta, which may be
// negative. It fails with a NotFoundError if the code is unknown and with an
// InsufficientStockError if the resulting quantity would go below zero; on
// failure the stock is left unchanged.
func (inv *Inventory) AdjustQuantity(code string, delta int) error {
	p := inv.Find(code)
	if p == nil {
		return &NotFoundError{Code: code}
	}
	if p.Quantity+delta < 0 {
		return &InsufficientStockError{Code: p.Code, Available: p.Quantity, Requested: -delta}
	}
	p.Quantity += delta
	return nil
}

// LowStock returns the products whose quantity is strictly below the
// threshold, ordered by ascending quantity. The sort is stable, so products
// with equal quantities keep their insertion order.
func (inv *Inventory) LowStock(threshold int) []Product {
	var low []Product
	for _, p := range inv.products {
		if p.Quantity < threshold {
			low = append(low, p)
		}
	}
	slices.SortStableFunc(low, func(a, b Product) int { return cmp.Compare(a.Quantity, b.Quantity) })
	return low
}

// TotalStock returns the sum of all product quantities.
func (inv *Inventory) TotalStock() int {
	total := 0
	for _, p := range inv.products {
		total += p.Quantity
	}
	return total
}
