package knowledge

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// IsRoleKnown reports whether a role pack roleID exists and belongs to domainID.
func (b *Base) IsRoleKnown(domainID, roleID string) bool {
	if b == nil {
		return false
	}
	p, ok := b.roles[roleID]
	return ok && p.DomainID == domainID
}

// KnownRolesForDomain returns the ids of every role pack in domainID, in
// document order.
func (b *Base) KnownRolesForDomain(domainID string) []string {
	if b == nil {
		return nil
	}
	var out []string
	for _, id := range b.roleOrder {
		if b.roles[id].DomainID == domainID {
			out = append(out, id)
		}
	}
	return out
}

// AllowedTools returns the domain's popular tools, or nil without a pack.
func (b *Base) AllowedTools(domainID string) []string {
	if b == nil {
		return nil
	}
	p, ok := b.domains[domainID]
	if !ok {
		return nil
	}
	return dedupeFold(p.PopularTools)
}

// AllowedSkills returns the role's skill-graph nodes followed by the domain's
// core, supporting and differentiation skills. Either pack may be missing;
// with both missing the result is nil. Duplicates are dropped
// case-insensitively, keeping the first spelling.
func (b *Base) AllowedSkills(domainID, roleID string) []string {
	if b == nil {
		return nil
	}
	var all []string
	if r, ok := b.roles[roleID]; ok {
		all = append(all, r.SkillGraphNodes...)
	}
	if d, ok := b.domains[domainID]; ok {
		all = append(all, d.SkillTaxonomy.All()...)
	}
	return dedupeFold(all)
}

// IsSkillKnown reports whether skill equals or contains, case-insensitively,
// any allowed skill of the domain/role pair.
func (b *Base) IsSkillKnown(domainID, roleID, skill string) bool {
	return matchesAny(skill, b.AllowedSkills(domainID, roleID))
}

// IsToolKnown reports whether tool equals or contains, case-insensitively,
// any allowed tool of the domain.
func (b *Base) IsToolKnown(domainID, tool string) bool {
	return matchesAny(tool, b.AllowedTools(domainID))
}

// matchesAny is true when the folded query contains any folded entry.
// Equality is the degenerate case of containment. Blank queries and blank
// entries never match.
func matchesAny(query string, allowed []string) bool {
	q := fold(query)
	if q == "" {
		return false
	}
	for _, a := range allowed {
		e := fold(a)
		if e != "" && strings.Contains(q, e) {
			return true
		}
	}
	return false
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
}

func dedupeFold(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		k := fold(s)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, strings.TrimSpace(s))
	}
	return out
}
