package sdnaddr

import (
	"iter"
	"strings"
)

// UnknownName is recorded when a sanctioned party has no documented name.
const UnknownName = "Unknown"

// AddressRecord is one digital currency address together with the name(s) of
// the party it belongs to. Address is kept exactly as published; Name is a
// ";"-joined list of the party's unique alias names, or UnknownName.
type AddressRecord struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// SanctionedAddresses yields every address tagged with featureTypeID, in
// document order: party by party, then feature by feature, then version by
// version. A feature may carry several version values and every one of them
// is yielded as its own record. The sequence is a single pass over the
// document; duplicates across parties are not collapsed here, see Dedupe.
func (d *Document) SanctionedAddresses(featureTypeID string) iter.Seq[AddressRecord] {
	return func(yield func(AddressRecord) bool) {
		parties := d.root.child(d.ns, "DistinctParties")
		if parties == nil {
			return
		}

		for _, party := range parties.children {
			if !party.isNamed(d.ns, "DistinctParty") {
				continue
			}

			var features []*element
			party.walk(func(el *element) {
				if id, ok := el.attr("FeatureTypeID"); ok && id == featureTypeID {
					features = append(features, el)
				}
			})
			if len(features) == 0 {
				continue
			}

			// name assembly happens once per party, not per address
			name := d.partyName(party)

			for _, feature := range features {
				stop := false
				feature.walk(func(el *element) {
					if stop || !el.isNamed(d.ns, "VersionDetail") {
						return
					}
					if strings.TrimSpace(el.text) == "" {
						return
					}
					if !yield(AddressRecord{Address: el.text, Name: name}) {
						stop = true
					}
				})
				if stop {
					return
				}
			}
		}
	}
}

// partyName assembles the display name of a DistinctParty. Each alias under
// the party's identity contributes its name parts joined by a single space;
// the unique alias names are then joined by ";" preserving first-seen order.
func (d *Document) partyName(party *element) string {
	var names []string
	seen := map[string]struct{}{}

	party.walk(func(profile *element) {
		if !profile.isNamed(d.ns, "Profile") {
			return
		}
		for _, identity := range profile.children {
			if !identity.isNamed(d.ns, "Identity") {
				continue
			}
			for _, alias := range identity.children {
				if !alias.isNamed(d.ns, "Alias") {
					continue
				}
				name := d.aliasName(alias)
				if name == "" {
					continue
				}
				if _, ok := seen[name]; ok {
					continue
				}
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	})

	if len(names) == 0 {
		return UnknownName
	}
	return strings.Join(names, ";")
}

func (d *Document) aliasName(alias *element) string {
	var parts []string

	alias.walk(func(dn *element) {
		if !dn.isNamed(d.ns, "DocumentedName") {
			return
		}
		for _, dnp := range dn.children {
			if !dnp.isNamed(d.ns, "DocumentedNamePart") {
				continue
			}
			for _, v := range dnp.children {
				if v.isNamed(d.ns, "NamePartValue") && v.text != "" {
					parts = append(parts, v.text)
				}
			}
		}
	})

	return strings.Join(parts, " ")
}
