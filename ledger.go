package digitalstock

import (
	"fmt"
	"iter"
)

// Ledger is the append-only sequence of transaction records, chronological by
// insertion. Records are never edited, reordered or removed once appended;
// the ledger is the sole source for balance computation and survives product
// deletion.
type Ledger struct {
	records []TransactionRecord
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{records: make([]TransactionRecord, 0)}
}

func (l *Ledger) Len() int { return len(l.records) }

// Append adds records to the ledger, preserving insertion order.
func (l *Ledger) Append(recs ...TransactionRecord) {
	l.records = append(l.records, recs...)
}

// Records returns an iterator that yields each record in insertion order.
func (l *Ledger) Records() iter.Seq2[int, TransactionRecord] {
	return func(yield func(int, TransactionRecord) bool) {
		for i, rec := range l.records {
			if !yield(i, rec) {
				return
			}
		}
	}
}

// Balance holds the totals obtained by replaying the ledger.
type Balance struct {
	Purchases Money // sum of all purchase amounts
	Sales     Money // sum of all sale amounts
}

// Net returns total sales minus total purchases.
func (b Balance) Net() Money { return b.Sales.Sub(b.Purchases) }

// Balance replays the entire ledger and sums amounts by kind. It is a full
// recomputation on every call; ledgers are small and calls are human-paced.
// Amounts in different currencies cannot be summed, so a ledger that mixes
// currencies is reported as an error.
func (l *Ledger) Balance() (Balance, error) {
	var b Balance
	currency := ""
	for _, rec := range l.records {
		if c := rec.Amount.Currency(); c != "" {
			if currency == "" {
				currency = c
			} else if currency != c {
				return Balance{}, fmt.Errorf("ledger mixes currencies %s and %s", currency, c)
			}
		}
		switch rec.Kind {
		case Purchase:
			b.Purchases = b.Purchases.Add(rec.Amount)
		case Sale:
			b.Sales = b.Sales.Add(rec.Amount)
		}
	}
	return b, nil
}
