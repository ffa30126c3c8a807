// Package digitalstock implements the inventory and ledger layer of a small,
// single-user stock tracking tool.
//
// The package owns two persisted resources: the inventory (the products
// currently in stock) and the ledger (the append-only history of purchases
// and sales). Balances are never stored; they are recomputed by replaying the
// ledger. All mutating operations persist their resource before reporting
// success, so the in-memory state never diverges from disk.
package digitalstock
