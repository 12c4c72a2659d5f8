package taxonomy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestNewKeywordSet_NormalizesAndDedupes(t *testing.T) {
	set := NewKeywordSet("  Java ", "java", "", "   ", "Spring Boot", "JAVA", "spring boot")

	if diff := cmp.Diff([]string{"java", "spring boot"}, set.Keywords()); diff != "" {
		t.Errorf("keywords mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, set.Contains("SPRING BOOT"))
	assert.False(t, set.Contains("spring"))
}

func TestNormalize_ComposesDiacritics(t *testing.T) {
	decomposed := "la\u0323\u0302p tri\u0300nh"
	assert.Equal(t, "lập trình", Normalize(decomposed))
	assert.Equal(t, "lập trình", Normalize("  LẬP TRÌNH "))
}

func TestKeywordSet_KeywordsReturnsCopy(t *testing.T) {
	set := NewKeywordSet("a", "b")
	kws := set.Keywords()
	kws[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, set.Keywords())
}

func TestBuilder_PreservesFirstAppearanceOrder(t *testing.T) {
	idx := NewBuilder().
		Add("Zeta", "z").
		Add("Alpha", "a").
		Add("Zeta", "zz", "z").
		Add("Mid", "m").
		Build()

	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, idx.Names())

	zeta, ok := idx.Lookup("Zeta")
	assert.True(t, ok)
	assert.Equal(t, []string{"z", "zz"}, zeta.Keywords())
}

func TestBuilder_DropsEmptyCategoriesAndBlankNames(t *testing.T) {
	idx := NewBuilder().
		Add("Empty", "  ", "").
		Add("", "orphan").
		Add("   ", "orphan").
		Add("Kept", "k").
		Build()

	assert.Equal(t, []string{"Kept"}, idx.Names())
	_, ok := idx.Lookup("Empty")
	assert.False(t, ok)
}

func TestBuilder_BuildIsSnapshot(t *testing.T) {
	b := NewBuilder().Add("A", "a")
	first := b.Build()
	b.Add("A", "more").Add("B", "b")

	set, _ := first.Lookup("A")
	assert.Equal(t, []string{"a"}, set.Keywords())
	assert.Equal(t, 1, first.Len())
}

func TestIndexes_Axis(t *testing.T) {
	x := Indexes{
		Domain:   NewBuilder().Add("D", "d").Build(),
		Role:     NewBuilder().Add("R", "r").Build(),
		Industry: NewBuilder().Add("I", "i").Build(),
	}
	assert.Equal(t, []string{"D"}, x.Axis(AxisDomain).Names())
	assert.Equal(t, []string{"R"}, x.Axis(AxisRole).Names())
	assert.Equal(t, []string{"I"}, x.Axis(AxisIndustry).Names())
	assert.True(t, x.Axis(Axis("other")).Empty())
	assert.False(t, x.Empty())
	assert.True(t, Indexes{}.Empty())
}

func TestDefaults_DeclarationOrder(t *testing.T) {
	d := Defaults()

	var wantDomains []string
	for _, def := range DefaultDomainData {
		wantDomains = append(wantDomains, def.Name)
	}
	assert.Equal(t, wantDomains, d.Domain.Names())
	assert.Equal(t, "Backend Developer", d.Role.Names()[0])
	assert.True(t, d.Industry.Empty())

	d.Domain.Each(func(c Category) {
		assert.False(t, c.Keywords.Empty(), c.Name)
	})
}
