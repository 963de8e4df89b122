package sdnaddr

import "errors"

// Screener answers sanctioned-address lookups against the lists harvested
// from a loaded document. Lookups are exact string matches on the published
// address value; no normalization is applied.
type Screener struct {
	sanctioned map[string]struct{}
}

// NewScreener builds a Screener covering the given assets, or every asset in
// PossibleAssets when none are given. Assets the document has no feature
// type for are skipped, mirroring the per-asset behavior of the extractor.
func NewScreener(doc *Document, assets ...string) (*Screener, error) {
	if doc == nil {
		return nil, errors.New("sdnaddr: nil document")
	}
	if len(assets) == 0 {
		assets = PossibleAssets
	}

	s := &Screener{
		sanctioned: make(map[string]struct{}),
	}

	for _, asset := range assets {
		id, err := doc.FeatureTypeID(asset)
		if err != nil {
			if errors.Is(err, ErrFeatureTypeNotFound) {
				continue
			}
			return nil, err
		}
		for rec := range doc.SanctionedAddresses(id) {
			s.sanctioned[rec.Address] = struct{}{}
		}
	}

	return s, nil
}

func (s *Screener) IsSanctioned(address string) bool {
	_, ok := s.sanctioned[address]
	return ok
}

// Len reports how many unique addresses the screener holds.
func (s *Screener) Len() int {
	return len(s.sanctioned)
}
