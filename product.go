package digitalstock

// Product is a stocked item. Its code is the case-insensitive unique key
// within an inventory; the unit price is the last purchase price and is used
// for display only (sales are priced at sale time).
type Product struct {
	Code      string
	Name      string
	Quantity  int
	UnitPrice Money
}

// NewProduct builds a validated product. The code must be non-empty and use
// only letters, digits and hyphens, the name must be non-empty, the quantity
// must not be negative and the unit price must be positive.
func NewProduct(code, name string, quantity int, unitPrice Money) (Product, error) {
	if err := validateCode(code); err != nil {
		return Product{}, err
	}
	if err := validateName(name); err != nil {
		return Product{}, err
	}
	if quantity < 0 {
		return Product{}, &ValidationError{Field: "quantity", Reason: "must not be negative"}
	}
	if !unitPrice.IsPositive() {
		return Product{}, &ValidationError{Field: "unit price", Reason: "must be positive"}
	}
	return Product{Code: code, Name: name, Quantity: quantity, UnitPrice: unitPrice}, nil
}

func (p Product) Equal(o Product) bool {
	return p.Code == o.Code && p.Name == o.Name && p.Quantity == o.Quantity && p.UnitPrice.Equal(o.UnitPrice)
}

// MarshalJSON implements the json.Marshaler interface for Product with a
// canonical field order.
func (p Product) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("code", p.Code)
	w.Append("name", p.Name)
	w.Append("quantity", p.Quantity)
	w.Append("unit_price", p.UnitPrice.value)
	w.Optional("currency", p.UnitPrice.cur)
	return w.MarshalJSON()
}
