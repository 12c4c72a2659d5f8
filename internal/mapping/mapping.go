// Package mapping converts detected display labels into the canonical ids the
// knowledge base uses.
package mapping

import (
	"strings"
)

// domainTable lists domain display names and their pack ids in display order.
var domainTable = []struct{ name, packID string }{
	{"IT", "information_technology"},
	{"Healthcare", "healthcare"},
	{"Finance", "finance"},
	{"Marketing", "marketing"},
	{"Design", "design"},
	{"Education", "education"},
	{"Engineering", "engineering"},
	{"Business", "business"},
	{"Hospitality", "hospitality"},
	{"Logistics", "logistics"},
}

var (
	domainPackIDs = make(map[string]string, len(domainTable))
	foldedPackIDs = make(map[string]string, len(domainTable))
)

func init() {
	for _, d := range domainTable {
		domainPackIDs[d.name] = d.packID
		foldedPackIDs[strings.ToLower(d.name)] = d.packID
	}
}

// DomainPackID returns the pack id for a domain display name, or "" when the
// name is not known. Surrounding whitespace and letter case are ignored.
func DomainPackID(displayName string) string {
	if id, ok := domainPackIDs[displayName]; ok {
		return id
	}
	return foldedPackIDs[strings.ToLower(strings.TrimSpace(displayName))]
}

// KnownDomains returns the display names DomainPackID understands, in a
// stable order.
func KnownDomains() []string {
	out := make([]string, len(domainTable))
	for i, d := range domainTable {
		out[i] = d.name
	}
	return out
}

// NormalizeRoleID slugifies a role category name: lowercase, every run of
// characters outside [a-z0-9] becomes one underscore, and leading or trailing
// underscores are trimmed. "Product Manager (PM)" becomes "product_manager_pm".
func NormalizeRoleID(roleCategory string) string {
	lower := strings.ToLower(roleCategory)
	var sb strings.Builder
	sb.Grow(len(lower))
	pendingSep := false
	for i := 0; i < len(lower); i++ {
		ch := lower[i]
		if ('a' <= ch && ch <= 'z') || ('0' <= ch && ch <= '9') {
			if pendingSep && sb.Len() > 0 {
				sb.WriteByte('_')
			}
			pendingSep = false
			sb.WriteByte(ch)
			continue
		}
		pendingSep = true
	}
	return sb.String()
}
