package sdnaddr_test

import (
	"slices"
	"testing"

	"github.com/0xsequence/sdnaddr"
	"github.com/stretchr/testify/require"
)

func TestDedupeFirstWriteWins(t *testing.T) {
	records := []sdnaddr.AddressRecord{
		{Address: "1A2b3C", Name: "First Entity"},
		{Address: "1A2b3C", Name: "Second Entity"},
		{Address: "0xabc", Name: "Third Entity"},
	}

	got := sdnaddr.Dedupe(slices.Values(records))
	want := []sdnaddr.AddressRecord{
		{Address: "0xabc", Name: "Third Entity"},
		{Address: "1A2b3C", Name: "First Entity"},
	}
	require.Equal(t, want, got)
}

func TestDedupeSortsAscending(t *testing.T) {
	records := []sdnaddr.AddressRecord{
		{Address: "charlie"},
		{Address: "alpha"},
		{Address: "Bravo"},
		{Address: "alpha2"},
	}

	got := sdnaddr.Dedupe(slices.Values(records))

	addrs := make([]string, len(got))
	for i, rec := range got {
		addrs[i] = rec.Address
	}
	// ordinal comparison: uppercase sorts before lowercase
	require.Equal(t, []string{"Bravo", "alpha", "alpha2", "charlie"}, addrs)
}

func TestDedupeIdempotent(t *testing.T) {
	doc := loadFixture(t)

	id, err := doc.FeatureTypeID("XBT")
	require.NoError(t, err)

	once := sdnaddr.Dedupe(doc.SanctionedAddresses(id))
	twice := sdnaddr.Dedupe(slices.Values(once))
	require.Equal(t, once, twice)
}

func TestDedupeEmpty(t *testing.T) {
	got := sdnaddr.Dedupe(slices.Values([]sdnaddr.AddressRecord{}))
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestDedupeFixture(t *testing.T) {
	doc := loadFixture(t)

	id, err := doc.FeatureTypeID("XBT")
	require.NoError(t, err)

	got := sdnaddr.Dedupe(doc.SanctionedAddresses(id))
	want := []sdnaddr.AddressRecord{
		{Address: "12QtD5BFwRsdNsAZY76UVE1xyCGNTojH9h", Name: "Unknown"},
		{Address: "1BoatSLRHtKNngkdXEeobR76b53LETtpyT", Name: "Ivan Petrov;Vanya"},
		{Address: "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy", Name: "Ivan Petrov;Vanya"},
	}
	require.Equal(t, want, got)

	// strictly ascending, no duplicates
	for i := 1; i < len(got); i++ {
		require.Less(t, got[i-1].Address, got[i].Address)
	}
}
