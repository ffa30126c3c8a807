package digitalstock

import (
	"fmt"
	"log"
	"slices"
)

// AccountingSystem combines the inventory and the ledger with their resource
// locations. It is the single entry point for the business operations:
// purchase, sell, remove, low-stock query and balance. Each session owns one
// instance; there is no process-wide state.
//
// Every mutating operation applies the change in memory, persists the
// affected resources, and rolls the in-memory change back if any write fails,
// so callers never observe state that disk does not hold.
type AccountingSystem struct {
	Inventory *Inventory
	Ledger    *Ledger

	inventoryFile string
	ledgerFile    string
	currency      string
}

// NewAccountingSystem loads both resources and returns a ready system. The
// currency is used for all amounts recorded during the session.
func NewAccountingSystem(inventoryFile, ledgerFile, currency string) (*AccountingSystem, error) {
	if err := ValidateCurrency(currency); err != nil {
		return nil, err
	}
	inv, err := LoadInventory(inventoryFile)
	if err != nil {
		return nil, err
	}
	ledger, err := LoadLedger(ledgerFile)
	if err != nil {
		return nil, err
	}
	return &AccountingSystem{
		Inventory:     inv,
		Ledger:        ledger,
		inventoryFile: inventoryFile,
		ledgerFile:    ledgerFile,
		currency:      currency,
	}, nil
}

// M returns a Money value in the session currency.
func (s *AccountingSystem) M(value float64) Money {
	return M(value, s.currency)
}

// Purchase registers a new product entering stock. The code must be unused;
// the purchase amount, quantity times unit price, is recorded in the ledger.
func (s *AccountingSystem) Purchase(code, name string, quantity int, unitPrice Money) (TransactionRecord, error) {
	if quantity <= 0 {
		return TransactionRecord{}, &ValidationError{Field: "quantity", Reason: "must be positive"}
	}
	product, err := NewProduct(code, name, quantity, unitPrice)
	if err != nil {
		return TransactionRecord{}, err
	}

	undo := s.snapshot()
	if err := s.Inventory.Add(product); err != nil {
		return TransactionRecord{}, err
	}
	rec := NewPurchase(product.Code, product.Name, quantity, unitPrice.MulInt(quantity))
	s.Ledger.Append(rec)

	if err := s.persist(); err != nil {
		s.abort(undo)
		return TransactionRecord{}, fmt.Errorf("purchase not saved: %w", err)
	}
	return rec, nil
}

// Sell registers a sale of an existing product at the given sale unit price,
// which is independent of the historical purchase price. The stock is
// decremented and the sale amount recorded in the ledger.
func (s *AccountingSystem) Sell(code string, quantity int, unitPrice Money) (TransactionRecord, error) {
	if quantity <= 0 {
		return TransactionRecord{}, &ValidationError{Field: "quantity", Reason: "must be positive"}
	}
	if !unitPrice.IsPositive() {
		return TransactionRecord{}, &ValidationError{Field: "unit price", Reason: "must be positive"}
	}

	undo := s.snapshot()
	if err := s.Inventory.AdjustQuantity(code, -quantity); err != nil {
		return TransactionRecord{}, err
	}
	product := s.Inventory.Find(code) // non-nil, AdjustQuantity succeeded
	rec := NewSale(product.Code, product.Name, quantity, unitPrice.MulInt(quantity))
	s.Ledger.Append(rec)

	if err := s.persist(); err != nil {
		s.abort(undo)
		return TransactionRecord{}, fmt.Errorf("sale not saved: %w", err)
	}
	return rec, nil
}

// Remove deletes a product from the inventory and returns it. Removal is not
// a financial transaction: no ledger record is appended and the product's
// history stays in the ledger.
func (s *AccountingSystem) Remove(code string) (Product, error) {
	undo := s.snapshot()
	removed, err := s.Inventory.Remove(code)
	if err != nil {
		return Product{}, err
	}
	if err := SaveInventory(s.inventoryFile, s.Inventory); err != nil {
		undo()
		return Product{}, fmt.Errorf("removal not saved: %w", err)
	}
	return removed, nil
}

// LowStock returns the products below the reorder threshold, ascending by
// quantity.
func (s *AccountingSystem) LowStock(threshold int) []Product {
	return s.Inventory.LowStock(threshold)
}

// Balance replays the ledger and returns the totals in the session currency.
// A ledger recorded under another currency is reported as an error; amounts
// are never converted.
func (s *AccountingSystem) Balance() (Balance, error) {
	b, err := s.Ledger.Balance()
	if err != nil {
		return Balance{}, err
	}
	for _, m := range []Money{b.Purchases, b.Sales} {
		if c := m.Currency(); c != "" && c != s.currency {
			return Balance{}, fmt.Errorf("ledger records are in %s but the session currency is %s", c, s.currency)
		}
	}
	b.Purchases = M(0, s.currency).Add(b.Purchases)
	b.Sales = M(0, s.currency).Add(b.Sales)
	return b, nil
}

// snapshot captures the in-memory state of both collections and returns a
// function restoring it. Collections are small (tens to low hundreds of
// entries), a full copy is cheaper than tracking individual mutations.
func (s *AccountingSystem) snapshot() func() {
	products := slices.Clone(s.Inventory.products)
	records := len(s.Ledger.records)
	return func() {
		s.Inventory.products = products
		s.Ledger.records = s.Ledger.records[:records]
	}
}

// abort restores the in-memory snapshot and realigns the inventory file with
// it, covering the case where the inventory write succeeded but the ledger
// write failed. Each individual write is atomic, so at worst the inventory
// file briefly holds the aborted state.
func (s *AccountingSystem) abort(undo func()) {
	undo()
	if err := SaveInventory(s.inventoryFile, s.Inventory); err != nil {
		log.Printf("warning: could not restore inventory file %q after failed save: %v", s.inventoryFile, err)
	}
}

// persist rewrites both resources.
func (s *AccountingSystem) persist() error {
	if err := SaveInventory(s.inventoryFile, s.Inventory); err != nil {
		return err
	}
	return SaveLedger(s.ledgerFile, s.Ledger)
}
