package engine

import (
	"strings"

	"skillmap/internal/mapping"
	"skillmap/internal/metrics"
	"skillmap/internal/taxonomy"
)

// The query surface. Every method reads the snapshot current at the time of
// the call, performs no I/O and never fails: absence is "" or an empty slice.

func (e *Engine) DetectDomain(text, industryHint, roleHint string) string {
	label := e.Current().Classifier.DetectDomain(text, industryHint, roleHint)
	e.observe(taxonomy.AxisDomain, label, false)
	return label
}

func (e *Engine) DetectRoleCategory(text string) string {
	label := e.Current().Classifier.DetectRoleCategory(text)
	e.observe(taxonomy.AxisRole, label, false)
	return label
}

func (e *Engine) DetectIndustry(text, providedIndustry string) string {
	label := e.Current().Classifier.DetectIndustry(text, providedIndustry)
	e.observe(taxonomy.AxisIndustry, label, strings.TrimSpace(providedIndustry) != "")
	return label
}

// MapToDomainPackID maps a domain display name to its pack id.
func (e *Engine) MapToDomainPackID(domain string) string {
	return mapping.DomainPackID(domain)
}

// NormalizeToRoleID slugifies a role category into a role pack id.
func (e *Engine) NormalizeToRoleID(roleCategory string) string {
	return mapping.NormalizeRoleID(roleCategory)
}

func (e *Engine) IsRoleKnown(domainID, roleID string) bool {
	return e.Current().Knowledge.IsRoleKnown(domainID, roleID)
}

func (e *Engine) GetKnownRolesForDomain(domainID string) []string {
	return e.Current().Knowledge.KnownRolesForDomain(domainID)
}

func (e *Engine) GetAllowedTools(domainID string) []string {
	return e.Current().Knowledge.AllowedTools(domainID)
}

func (e *Engine) GetAllowedSkills(domainID, roleID string) []string {
	return e.Current().Knowledge.AllowedSkills(domainID, roleID)
}

func (e *Engine) IsSkillKnown(domainID, roleID, skill string) bool {
	return e.Current().Knowledge.IsSkillKnown(domainID, roleID, skill)
}

func (e *Engine) IsToolKnown(domainID, tool string) bool {
	return e.Current().Knowledge.IsToolKnown(domainID, tool)
}

// Resolve runs the whole pipeline for one request against one snapshot.
func (e *Engine) Resolve(req Request) Resolution {
	res := e.Current().Resolve(req)
	e.observe(taxonomy.AxisDomain, res.Domain, false)
	e.observe(taxonomy.AxisRole, res.RoleCategory, false)
	e.observe(taxonomy.AxisIndustry, res.Industry, strings.TrimSpace(req.IndustryHint) != "")
	return res
}

func (e *Engine) observe(axis taxonomy.Axis, label string, provided bool) {
	outcome := metrics.OutcomeUnknown
	switch {
	case provided:
		outcome = metrics.OutcomeProvided
	case label != "":
		outcome = metrics.OutcomeMatched
	}
	e.metrics.ObserveDetection(string(axis), outcome)
}
