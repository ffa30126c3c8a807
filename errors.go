package digitalstock

import "fmt"

// The error kinds below are the full failure vocabulary of the inventory
// operations. They carry enough context for a caller to render a precise
// message and to decide how to recover; match them with errors.As.

// ValidationError reports a malformed input: an empty or invalid code or
// name, or a non-positive quantity or price.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DuplicateCodeError reports an attempt to add a product whose code is
// already taken, under case-insensitive comparison.
type DuplicateCodeError struct {
	Code string
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("product code %q already exists", e.Code)
}

// NotFoundError reports an operation on a product code unknown to the
// inventory.
type NotFoundError struct {
	Code string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product %q not found", e.Code)
}

// InsufficientStockError reports a sale exceeding the current stock. It
// carries the available quantity for display.
type InsufficientStockError struct {
	Code      string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("cannot sell %d of %q, only %d in stock", e.Requested, e.Code, e.Available)
}
