package taxonomy

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases, trims and NFC-normalizes s. Input text and keywords go
// through the same function, so precomposed and decomposed Vietnamese
// diacritics compare equal.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
}

// KeywordSet is an ordered, deduplicated set of normalized keywords.
// The zero value is an empty set.
type KeywordSet struct {
	keywords []string
}

// NewKeywordSet normalizes raw keywords, drops blanks and duplicates, and
// keeps first-appearance order.
func NewKeywordSet(raw ...string) KeywordSet {
	return KeywordSet{}.with(raw...)
}

// with returns a new set holding s's keywords followed by any new ones in raw.
func (s KeywordSet) with(raw ...string) KeywordSet {
	out := make([]string, len(s.keywords), len(s.keywords)+len(raw))
	copy(out, s.keywords)
	seen := make(map[string]struct{}, cap(out))
	for _, k := range out {
		seen[k] = struct{}{}
	}
	for _, r := range raw {
		k := Normalize(r)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return KeywordSet{keywords: out}
}

// Len returns the number of keywords.
func (s KeywordSet) Len() int { return len(s.keywords) }

// Empty reports whether the set has no keywords.
func (s KeywordSet) Empty() bool { return len(s.keywords) == 0 }

// Keywords returns a copy of the keywords in order.
func (s KeywordSet) Keywords() []string {
	out := make([]string, len(s.keywords))
	copy(out, s.keywords)
	return out
}

// Contains reports whether the normalized form of k is in the set.
func (s KeywordSet) Contains(k string) bool {
	k = Normalize(k)
	for _, existing := range s.keywords {
		if existing == k {
			return true
		}
	}
	return false
}

// Each calls fn for every keyword in order without copying.
func (s KeywordSet) Each(fn func(keyword string)) {
	for _, k := range s.keywords {
		fn(k)
	}
}
