package digitalstock

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind is a typed string identifying the two transaction kinds.
type Kind string

const (
	Purchase Kind = "purchase"
	Sale     Kind = "sale"
)

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Purchase:
		return Purchase, nil
	case Sale:
		return Sale, nil
	default:
		return "", fmt.Errorf("unknown transaction kind: %q", s)
	}
}

// TransactionRecord is one immutable entry of the ledger: the audit trail of
// a single purchase or sale. The name is a snapshot of the product name at
// transaction time, so the record stays meaningful after the product is
// removed from the inventory.
type TransactionRecord struct {
	Kind      Kind
	ID        string // stable identifier assigned at creation
	Code      string
	Name      string
	Quantity  int
	Amount    Money // quantity times the unit price at transaction time
	Timestamp time.Time
}

func newRecord(kind Kind, code, name string, quantity int, amount Money) TransactionRecord {
	return TransactionRecord{
		Kind:      kind,
		ID:        uuid.NewString(),
		Code:      code,
		Name:      name,
		Quantity:  quantity,
		Amount:    amount,
		Timestamp: time.Now().UTC(),
	}
}

// NewPurchase creates a purchase record dated now.
func NewPurchase(code, name string, quantity int, amount Money) TransactionRecord {
	return newRecord(Purchase, code, name, quantity, amount)
}

// NewSale creates a sale record dated now.
func NewSale(code, name string, quantity int, amount Money) TransactionRecord {
	return newRecord(Sale, code, name, quantity, amount)
}

func (t TransactionRecord) Equal(o TransactionRecord) bool {
	return t.Kind == o.Kind && t.ID == o.ID && t.Code == o.Code && t.Name == o.Name &&
		t.Quantity == o.Quantity && t.Amount.Equal(o.Amount) && t.Timestamp.Equal(o.Timestamp)
}

// MarshalJSON implements the json.Marshaler interface for TransactionRecord
// with a canonical field order.
func (t TransactionRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", t.Kind)
	w.Append("id", t.ID)
	w.Append("code", t.Code)
	w.Append("name", t.Name)
	w.Append("quantity", t.Quantity)
	w.EmbedFrom(t.Amount)
	w.Append("timestamp", t.Timestamp)
	return w.MarshalJSON()
}
