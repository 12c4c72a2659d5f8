package engine

import (
	"time"

	"skillmap/internal/classify"
	"skillmap/internal/knowledge"
	"skillmap/internal/mapping"
	"skillmap/internal/taxonomy"
)

// Snapshot is one immutable build of keyword indexes and knowledge packs.
// A published Snapshot is never modified; reload publishes a new one.
type Snapshot struct {
	ID         string
	LoadedAt   time.Time
	Tier       taxonomy.Tier
	Backfilled []taxonomy.Axis
	Classifier *classify.Classifier
	Knowledge  *knowledge.Base
}

// emptySnapshot is what an Engine serves before Initialize.
func emptySnapshot() *Snapshot {
	return &Snapshot{
		Tier:       taxonomy.TierNone,
		Classifier: classify.New(taxonomy.Indexes{}),
		Knowledge:  knowledge.Empty(),
	}
}

// Request is the input to Resolve.
type Request struct {
	Text         string
	IndustryHint string // taken verbatim as the industry when non-blank
	RoleHint     string
}

// Resolution is everything the query surface can say about one Request,
// computed against a single snapshot.
type Resolution struct {
	SnapshotID    string   `json:"snapshot_id"`
	Domain        string   `json:"domain"`
	RoleCategory  string   `json:"role_category"`
	Industry      string   `json:"industry"`
	DomainPackID  string   `json:"domain_pack_id"`
	RoleID        string   `json:"role_id"`
	RoleKnown     bool     `json:"role_known"`
	AllowedTools  []string `json:"allowed_tools"`
	AllowedSkills []string `json:"allowed_skills"`
}

// Resolve classifies req and looks up the matching packs.
// Role detection reads the text together with the role hint.
func (s *Snapshot) Resolve(req Request) Resolution {
	domain := s.Classifier.DetectDomain(req.Text, req.IndustryHint, req.RoleHint)
	role := s.Classifier.DetectRoleCategory(classify.Reference(req.Text, req.RoleHint))
	industry := s.Classifier.DetectIndustry(req.Text, req.IndustryHint)

	packID := mapping.DomainPackID(domain)
	roleID := mapping.NormalizeRoleID(role)

	return Resolution{
		SnapshotID:    s.ID,
		Domain:        domain,
		RoleCategory:  role,
		Industry:      industry,
		DomainPackID:  packID,
		RoleID:        roleID,
		RoleKnown:     s.Knowledge.IsRoleKnown(packID, roleID),
		AllowedTools:  s.Knowledge.AllowedTools(packID),
		AllowedSkills: s.Knowledge.AllowedSkills(packID, roleID),
	}
}
