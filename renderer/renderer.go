// Package renderer turns inventory and ledger data into markdown reports.
// Rendering to the terminal (styling, word wrap) is the caller's concern.
package renderer

import (
	"fmt"
	"strings"
)

// table builds a markdown table with a fixed header.
type table struct {
	b    strings.Builder
	cols int
}

func newTable(headers ...string) *table {
	t := &table{cols: len(headers)}
	t.row(headers...)
	seps := make([]string, len(headers))
	for i := range seps {
		seps[i] = "---"
	}
	t.row(seps...)
	return t
}

func (t *table) row(cells ...string) {
	t.b.WriteString("| ")
	t.b.WriteString(strings.Join(cells, " | "))
	t.b.WriteString(" |\n")
}

func (t *table) String() string { return t.b.String() }

func itoa(n int) string { return fmt.Sprintf("%d", n) }
