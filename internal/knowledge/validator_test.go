package knowledge

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fixture(t *testing.T) *Base {
	t.Helper()
	return LoadFile(filepath.Join("testdata", "packs.md"))
}

func TestKnownRolesForDomain(t *testing.T) {
	base := fixture(t)

	assert.Equal(t, []string{"backend_developer"}, base.KnownRolesForDomain("information_technology"))
	assert.Equal(t, []string{"ui_ux_designer"}, base.KnownRolesForDomain("design"))
	assert.Empty(t, base.KnownRolesForDomain("healthcare"))
}

func TestAllowedTools(t *testing.T) {
	base := fixture(t)

	assert.Equal(t, []string{"IntelliJ IDEA", "Docker", "Git", "Postman"}, base.AllowedTools("information_technology"))
	assert.Empty(t, base.AllowedTools("healthcare"))
}

func TestAllowedSkills_UnionAndDedupe(t *testing.T) {
	base := fixture(t)

	got := base.AllowedSkills("information_technology", "backend_developer")
	want := []string{
		"Spring Boot", "REST API design", "java", // role nodes
		"SQL", "Data Structures", // core ("Java" folded into "java")
		"Linux", "Git", // supporting
		"System Design", "Kubernetes", // differentiation
	}
	assert.Equal(t, want, got)
}

func TestAllowedSkills_PartialPacks(t *testing.T) {
	base := fixture(t)

	assert.Equal(t, []string{"Figma", "User Research"}, base.AllowedSkills("healthcare", "ui_ux_designer"))
	assert.Equal(t, []string{"Visual Design", "Motion"}, base.AllowedSkills("design", "missing_role"))
	assert.Empty(t, base.AllowedSkills("nope", "nope"))
}

func TestIsSkillKnown(t *testing.T) {
	base := Parse(strings.NewReader(doc(
		`{"domainId": "it", "skillTaxonomy": {"coreSkills": ["sql"], "supportingSkills": [""]}}`,
	)))

	assert.True(t, base.IsSkillKnown("it", "any", "SQL queries"))
	assert.True(t, base.IsSkillKnown("it", "any", "sql"))
	assert.True(t, base.IsSkillKnown("it", "any", "Advanced NoSQL"))
	assert.False(t, base.IsSkillKnown("it", "any", "sq"))
	assert.False(t, base.IsSkillKnown("it", "any", "   "))
	assert.False(t, base.IsSkillKnown("finance", "any", "SQL queries"))
}

func TestIsToolKnown(t *testing.T) {
	base := fixture(t)

	assert.True(t, base.IsToolKnown("information_technology", "docker compose"))
	assert.True(t, base.IsToolKnown("information_technology", "GIT"))
	assert.False(t, base.IsToolKnown("information_technology", "Jira"))
	assert.False(t, base.IsToolKnown("design", "docker"))
}

func TestNilBaseIsEmpty(t *testing.T) {
	var base *Base
	assert.False(t, base.IsRoleKnown("it", "dev"))
	assert.Nil(t, base.KnownRolesForDomain("it"))
	assert.Nil(t, base.AllowedTools("it"))
	assert.Nil(t, base.AllowedSkills("it", "dev"))
	assert.False(t, base.IsSkillKnown("it", "dev", "go"))
	assert.False(t, base.IsToolKnown("it", "go"))
}
