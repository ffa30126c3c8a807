package renderer

import (
	"fmt"

	"github.com/etnz/digitalstock"
)

// Balance renders the ledger totals and the net balance.
func Balance(b digitalstock.Balance) string {
	t := newTable("Total", "Amount")
	t.row("Purchases", b.Purchases.String())
	t.row("Sales", b.Sales.String())
	t.row("**Net**", "**"+b.Net().String()+"**")
	return fmt.Sprintf("# Balance\n\n%s", t)
}
