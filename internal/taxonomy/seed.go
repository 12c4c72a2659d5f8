package taxonomy

import "skillmap/internal/store"

// ToEntries flattens idx into one active store entry per category, domain
// axis first, then role, then industry. Feeding the result back through
// FromEntries reproduces idx.
func ToEntries(idx Indexes) []store.TaxonomyEntry {
	var out []store.TaxonomyEntry
	for _, axis := range Axes {
		idx.Axis(axis).Each(func(c Category) {
			e := store.TaxonomyEntry{
				Keywords: store.JoinKeywords(c.Keywords.Keywords()),
				Active:   true,
			}
			switch axis {
			case AxisDomain:
				e.Domain = c.Name
			case AxisRole:
				e.Role = c.Name
			case AxisIndustry:
				e.Industry = c.Name
			}
			out = append(out, e)
		})
	}
	return out
}
