// Package natsort orders label names in natural (human) order for the
// debug `basic labels --natural` listing, as a separate convenience from
// SymbolTable.List's mandated lexicographic order.
package natsort

import (
	"sort"

	"github.com/maruel/natural"
)

// Sort returns a copy of names ordered naturally (e.g. "var2" before
// "var10"), leaving the input slice untouched.
func Sort(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.Slice(out, func(i, j int) bool {
		return natural.Less(out[i], out[j])
	})
	return out
}
