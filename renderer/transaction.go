package renderer

import (
	"fmt"

	"github.com/etnz/digitalstock"
)

// Transaction renders a transaction record to a one-line string.
func Transaction(rec digitalstock.TransactionRecord) string {
	switch rec.Kind {
	case digitalstock.Purchase:
		return fmt.Sprintf("Purchased %d of %s (%s) for %s", rec.Quantity, rec.Name, rec.Code, rec.Amount)
	case digitalstock.Sale:
		return fmt.Sprintf("Sold %d of %s (%s) for %s", rec.Quantity, rec.Name, rec.Code, rec.Amount)
	default:
		return string(rec.Kind)
	}
}

// Transactions renders the ledger records as a markdown table in
// chronological order.
func Transactions(records []digitalstock.TransactionRecord) string {
	if len(records) == 0 {
		return "# Transactions\n\nThe ledger is empty.\n"
	}
	t := newTable("Date", "Kind", "Code", "Name", "Quantity", "Amount")
	for _, rec := range records {
		t.row(
			rec.Timestamp.Format("2006-01-02 15:04"),
			string(rec.Kind),
			rec.Code,
			rec.Name,
			itoa(rec.Quantity),
			rec.Amount.String(),
		)
	}
	return fmt.Sprintf("# Transactions\n\n%s", t)
}
