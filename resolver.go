package sdnaddr

import (
	"errors"
	"fmt"
)

const featureTypePrefix = "Digital Currency Address - "

// ErrFeatureTypeNotFound is returned when the document has no feature type
// entry for a requested asset. It is a per-asset condition; callers
// processing several assets should warn and move on.
var ErrFeatureTypeNotFound = errors.New("feature type not found")

// FeatureTypeText returns the reference-table display text for an asset,
// e.g. "Digital Currency Address - XBT".
func FeatureTypeText(asset string) string {
	return featureTypePrefix + asset
}

// FeatureTypeID resolves an asset symbol to the ID the document uses to tag
// address features of that type. The ID is scoped to this document; it is
// not stable across SDN list revisions.
func (d *Document) FeatureTypeID(asset string) (string, error) {
	want := FeatureTypeText(asset)

	if refs := d.root.child(d.ns, "ReferenceValueSets"); refs != nil {
		if values := refs.child(d.ns, "FeatureTypeValues"); values != nil {
			for _, ft := range values.children {
				if ft.name.Space != d.ns || ft.text != want {
					continue
				}
				if id, ok := ft.attr("ID"); ok {
					return id, nil
				}
			}
		}
	}

	return "", fmt.Errorf("sdnaddr: no feature type named %q: %w", want, ErrFeatureTypeNotFound)
}
