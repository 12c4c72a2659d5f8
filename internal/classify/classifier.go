// Package classify picks the best-matching domain, role-category and
// industry label for free text by keyword scoring against taxonomy indexes.
package classify

import (
	"strings"

	"skillmap/internal/logging"
	"skillmap/internal/taxonomy"
)

// Unknown is returned when no category scores above zero.
const Unknown = ""

// Match is one scored category.
type Match struct {
	Category string
	Score    int
	Matched  []string // keywords that hit, in keyword-set order
}

// Classifier scores text against a fixed set of indexes.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	indexes taxonomy.Indexes
}

// New returns a Classifier over idx.
func New(idx taxonomy.Indexes) *Classifier {
	return &Classifier{indexes: idx}
}

// Indexes returns the indexes the classifier scores against.
func (c *Classifier) Indexes() taxonomy.Indexes {
	return c.indexes
}

// DetectDomain returns the best domain for text plus optional hints.
func (c *Classifier) DetectDomain(text, industryHint, roleHint string) string {
	return c.best(taxonomy.AxisDomain, Reference(text, industryHint, roleHint))
}

// DetectRoleCategory returns the best role category for text.
func (c *Classifier) DetectRoleCategory(text string) string {
	return c.best(taxonomy.AxisRole, Reference(text))
}

// DetectIndustry returns providedIndustry verbatim when it is non-blank and
// otherwise the best-scoring industry for text.
func (c *Classifier) DetectIndustry(text, providedIndustry string) string {
	if strings.TrimSpace(providedIndustry) != "" {
		return providedIndustry
	}
	return c.best(taxonomy.AxisIndustry, Reference(text))
}

// Rank returns every category on axis with a positive score, in index order.
func (c *Classifier) Rank(axis taxonomy.Axis, fields ...string) []Match {
	ref := Reference(fields...)
	var out []Match
	c.indexes.Axis(axis).Each(func(cat taxonomy.Category) {
		if hits := matched(ref, cat.Keywords); len(hits) > 0 {
			out = append(out, Match{Category: cat.Name, Score: len(hits), Matched: hits})
		}
	})
	return out
}

// best walks the index in order and keeps the first category to reach the
// highest score. A later category must score strictly higher to take over.
func (c *Classifier) best(axis taxonomy.Axis, ref string) string {
	if ref == "" {
		return Unknown
	}
	leader, top := Unknown, 0
	c.indexes.Axis(axis).Each(func(cat taxonomy.Category) {
		if s := Score(ref, cat.Keywords); s > top {
			leader, top = cat.Name, s
		}
	})
	logging.ClassifyDebug("%s: %q (score=%d)", axis, leader, top)
	return leader
}

// Reference joins the non-blank fields with a space and normalizes the result
// the same way keywords are normalized.
func Reference(fields ...string) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			parts = append(parts, f)
		}
	}
	return taxonomy.Normalize(strings.Join(parts, " "))
}

// Score counts the distinct keywords of set occurring as substrings of ref.
// ref must already be normalized (see Reference).
func Score(ref string, set taxonomy.KeywordSet) int {
	n := 0
	set.Each(func(k string) {
		if strings.Contains(ref, k) {
			n++
		}
	})
	return n
}

func matched(ref string, set taxonomy.KeywordSet) []string {
	if ref == "" {
		return nil
	}
	var hits []string
	set.Each(func(k string) {
		if strings.Contains(ref, k) {
			hits = append(hits, k)
		}
	})
	return hits
}
