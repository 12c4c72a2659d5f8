package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skillmap/internal/taxonomy"
)

func TestDomainPackID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"exact", "IT", "information_technology"},
		{"case folded", "healthcare", "healthcare"},
		{"padded", "  Finance ", "finance"},
		{"unknown", "Astronomy", ""},
		{"empty", "", ""},
		{"pack id is not a display name", "information_technology", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DomainPackID(tt.in))
		})
	}
}

func TestEveryBuiltinDomainHasPackID(t *testing.T) {
	for _, name := range taxonomy.Defaults().Domain.Names() {
		assert.NotEmpty(t, DomainPackID(name), name)
	}
}

func TestKnownDomains(t *testing.T) {
	names := KnownDomains()
	assert.Equal(t, "IT", names[0])
	assert.Len(t, names, len(domainPackIDs))
	assert.Equal(t, names, KnownDomains(), "order must be stable across calls")
	for _, name := range names {
		assert.NotEmpty(t, DomainPackID(name), name)
	}
}

func TestNormalizeRoleID(t *testing.T) {
	tests := map[string]string{
		"Product Manager (PM)":   "product_manager_pm",
		"Backend Developer":      "backend_developer",
		"UI/UX Designer":         "ui_ux_designer",
		"  --DevOps  Engineer--": "devops_engineer",
		"C++ / C# Dev":           "c_c_dev",
		"already_snake_case":     "already_snake_case",
		"Kỹ sư phần mềm":         "k_s_ph_n_m_m",
		"":                       "",
		"!!!":                    "",
		"Level 2 Support":        "level_2_support",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeRoleID(in), in)
	}
}

func TestNormalizeRoleID_Idempotent(t *testing.T) {
	for _, in := range []string{"Product Manager (PM)", "UI/UX Designer", "__x__y__"} {
		once := NormalizeRoleID(in)
		assert.Equal(t, once, NormalizeRoleID(once))
	}
}
