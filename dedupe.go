package sdnaddr

import (
	"cmp"
	"iter"
	"slices"
)

// Dedupe collapses repeated addresses and sorts the result ascending by
// address (ordinal comparison). When the same address shows up under more
// than one party, the name of the first occurrence in document order is the
// one kept; later occurrences are dropped even if their name differs. The
// returned slice is never nil and the operation is idempotent.
func Dedupe(records iter.Seq[AddressRecord]) []AddressRecord {
	seen := make(map[string]struct{})
	out := []AddressRecord{}

	for rec := range records {
		if _, ok := seen[rec.Address]; ok {
			continue
		}
		seen[rec.Address] = struct{}{}
		out = append(out, rec)
	}

	slices.SortFunc(out, func(a, b AddressRecord) int {
		return cmp.Compare(a.Address, b.Address)
	})

	return out
}
