// Package taxonomy holds the keyword indexes used to classify free text into
// domain, role-category and industry labels, and the loader that builds them
// from an ordered chain of sources.
package taxonomy

import "strings"

// Axis names one of the three classification axes.
type Axis string

const (
	AxisDomain   Axis = "domain"
	AxisRole     Axis = "role"
	AxisIndustry Axis = "industry"
)

// Axes lists every axis in a fixed order.
var Axes = []Axis{AxisDomain, AxisRole, AxisIndustry}

// Tier identifies which source produced a set of indexes.
type Tier int

const (
	TierNone Tier = iota
	TierStore
	TierResource
	TierBuiltin
)

func (t Tier) String() string {
	switch t {
	case TierStore:
		return "store"
	case TierResource:
		return "resource"
	case TierBuiltin:
		return "builtin"
	default:
		return "none"
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
