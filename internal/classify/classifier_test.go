package classify

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillmap/internal/store"
	"skillmap/internal/taxonomy"
)

func TestEndToEndAgainstBuiltins(t *testing.T) {
	c := New(taxonomy.Defaults())
	text := "muốn học Spring Boot và trở thành backend developer"

	assert.Equal(t, "IT", c.DetectDomain(text, "", ""))
	assert.Equal(t, "Backend Developer", c.DetectRoleCategory(text))
	assert.Equal(t, Unknown, c.DetectIndustry(text, ""))
}

func TestScore_DistinctKeywordsOnly(t *testing.T) {
	set := taxonomy.NewKeywordSet("java", "spring", "kotlin")

	assert.Equal(t, 1, Score(Reference("java java java"), set))
	assert.Equal(t, 2, Score(Reference("Java and Spring"), set))
	assert.Equal(t, 0, Score(Reference(""), set))
}

func TestScore_VerbatimKeywordScoresAtLeastOne(t *testing.T) {
	for _, cat := range taxonomy.Defaults().Role.Categories() {
		for _, kw := range cat.Keywords.Keywords() {
			text := fmt.Sprintf("I would like to work with %s someday", kw)
			assert.GreaterOrEqual(t, Score(Reference(text), cat.Keywords), 1, "%s/%s", cat.Name, kw)
		}
	}
}

func TestTieGoesToEarlierCategory(t *testing.T) {
	idx := taxonomy.Indexes{Domain: taxonomy.NewBuilder().
		Add("First", "shared", "only-first").
		Add("Second", "shared", "only-second").
		Build()}
	c := New(idx)

	assert.Equal(t, "First", c.DetectDomain("shared", "", ""))
	assert.Equal(t, "Second", c.DetectDomain("shared only-second", "", ""))

	// Reversed declaration order flips the tie.
	idx = taxonomy.Indexes{Domain: taxonomy.NewBuilder().
		Add("Second", "shared").
		Add("First", "shared").
		Build()}
	assert.Equal(t, "Second", New(idx).DetectDomain("shared", "", ""))
}

func TestDeterministic(t *testing.T) {
	c := New(taxonomy.Defaults())
	text := "react developer muốn học docker"
	want := c.DetectRoleCategory(text)
	for i := 0; i < 200; i++ {
		require.Equal(t, want, c.DetectRoleCategory(text))
	}
}

func TestHintsContributeToDomain(t *testing.T) {
	c := New(taxonomy.Defaults())

	assert.Equal(t, Unknown, c.DetectDomain("tôi muốn đổi nghề", "", ""))
	assert.Equal(t, "Healthcare", c.DetectDomain("tôi muốn đổi nghề", "Hospital", ""))
	assert.Equal(t, "Finance", c.DetectDomain("tôi muốn đổi nghề", "", "Accountant at a bank, accounting"))
}

func TestBlankInputIsUnknown(t *testing.T) {
	c := New(taxonomy.Defaults())

	assert.Equal(t, Unknown, c.DetectDomain("", "", ""))
	assert.Equal(t, Unknown, c.DetectDomain("   ", " ", "\t"))
	assert.Equal(t, Unknown, c.DetectRoleCategory(""))
	assert.Equal(t, Unknown, c.DetectIndustry("", ""))
}

func TestDetectIndustry(t *testing.T) {
	idx := taxonomy.FromEntries([]store.TaxonomyEntry{
		{Domain: "IT", Industry: "Fintech", Keywords: "payments,wallet"},
		{Domain: "IT", Industry: "E-commerce", Keywords: "shop,marketplace"},
	})
	c := New(idx)

	assert.Equal(t, "Fintech", c.DetectIndustry("build a mobile wallet for payments", ""))
	assert.Equal(t, "E-commerce", c.DetectIndustry("marketplace search", ""))
	assert.Equal(t, "Gaming", c.DetectIndustry("build a mobile wallet for payments", "Gaming"))
	assert.Equal(t, Unknown, c.DetectIndustry("nothing relevant", ""))

	// Built-ins carry no industries.
	assert.Equal(t, Unknown, New(taxonomy.Defaults()).DetectIndustry("fintech payments", ""))
}

func TestStoreDerivedIndexesOnly(t *testing.T) {
	// "java" would be IT under the built-ins; the store says otherwise.
	idx := taxonomy.FromEntries([]store.TaxonomyEntry{
		{Domain: "Coffee", Keywords: "java, espresso"},
	})
	assert.Equal(t, "Coffee", New(idx).DetectDomain("java developer", "", ""))
}

func TestRank(t *testing.T) {
	c := New(taxonomy.Defaults())

	matches := c.Rank(taxonomy.AxisRole, "backend developer learning docker and kubernetes")
	require.NotEmpty(t, matches)

	byName := map[string]Match{}
	for _, m := range matches {
		byName[m.Category] = m
	}
	assert.Equal(t, []string{"backend"}, byName["Backend Developer"].Matched)
	assert.Equal(t, 2, byName["DevOps Engineer"].Score)
	assert.Equal(t, "DevOps Engineer", c.DetectRoleCategory("backend developer learning docker and kubernetes"))
}

func TestConcurrentReads(t *testing.T) {
	c := New(taxonomy.Defaults())
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := c.DetectDomain("backend developer", "", ""); got != "IT" {
					t.Errorf("DetectDomain = %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
