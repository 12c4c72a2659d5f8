package knowledge

import (
	"encoding/json"
	"strings"
)

// SkillTaxonomy groups a domain's skills by tier.
type SkillTaxonomy struct {
	CoreSkills            []string
	SupportingSkills      []string
	DifferentiationSkills []string
}

// All returns core, supporting and differentiation skills in that order.
func (s SkillTaxonomy) All() []string {
	out := make([]string, 0, len(s.CoreSkills)+len(s.SupportingSkills)+len(s.DifferentiationSkills))
	out = append(out, s.CoreSkills...)
	out = append(out, s.SupportingSkills...)
	out = append(out, s.DifferentiationSkills...)
	return out
}

// DomainPack describes the tools and skills of one domain.
type DomainPack struct {
	DomainID      string
	PopularTools  []string
	SkillTaxonomy SkillTaxonomy
}

// RolePack describes the skill graph of one role inside a domain.
type RolePack struct {
	RoleID          string
	DomainID        string
	SkillGraphNodes []string
}

// Pack is either a DomainPack or a RolePack.
type Pack interface {
	packID() string
}

func (p DomainPack) packID() string { return p.DomainID }
func (p RolePack) packID() string   { return p.RoleID }

// Wire shapes of the two block kinds.

type domainPackJSON struct {
	DomainID     string `json:"domainId"`
	LocalContext struct {
		PopularTools []string `json:"popularTools"`
	} `json:"localContext"`
	SkillTaxonomy struct {
		CoreSkills            []string `json:"coreSkills"`
		SupportingSkills      []string `json:"supportingSkills"`
		DifferentiationSkills []string `json:"differentiationSkills"`
	} `json:"skillTaxonomy"`
}

type rolePackJSON struct {
	RoleID               string `json:"roleId"`
	DomainID             string `json:"domainId"`
	SkillDependencyGraph struct {
		Nodes []graphNode `json:"nodes"`
	} `json:"skillDependencyGraph"`
}

// graphNode accepts either a bare string or an object naming the skill.
// Any other shape decodes to "" and is dropped by decodePack.
type graphNode string

func (n *graphNode) UnmarshalJSON(data []byte) error {
	*n = ""
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = graphNode(s)
		return nil
	}
	var obj struct {
		Name  string `json:"name"`
		Skill string `json:"skill"`
		ID    string `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}
	switch {
	case obj.Name != "":
		*n = graphNode(obj.Name)
	case obj.Skill != "":
		*n = graphNode(obj.Skill)
	default:
		*n = graphNode(obj.ID)
	}
	return nil
}

// packTag carries only the discriminating fields of a block.
type packTag struct {
	RoleID   string `json:"roleId"`
	DomainID string `json:"domainId"`
}

// decodePack classifies a JSON block. A non-empty roleId makes it a RolePack;
// otherwise a non-empty domainId makes it a DomainPack; otherwise it is
// discarded and (nil, nil) is returned. Malformed JSON returns an error.
func decodePack(raw []byte) (Pack, error) {
	var tag packTag
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, err
	}

	switch {
	case strings.TrimSpace(tag.RoleID) != "":
		var wire rolePackJSON
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, err
		}
		nodes := make([]string, 0, len(wire.SkillDependencyGraph.Nodes))
		for _, n := range wire.SkillDependencyGraph.Nodes {
			if s := strings.TrimSpace(string(n)); s != "" {
				nodes = append(nodes, s)
			}
		}
		return RolePack{
			RoleID:          strings.TrimSpace(wire.RoleID),
			DomainID:        strings.TrimSpace(wire.DomainID),
			SkillGraphNodes: nodes,
		}, nil

	case strings.TrimSpace(tag.DomainID) != "":
		var wire domainPackJSON
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, err
		}
		return DomainPack{
			DomainID:     strings.TrimSpace(wire.DomainID),
			PopularTools: wire.LocalContext.PopularTools,
			SkillTaxonomy: SkillTaxonomy{
				CoreSkills:            wire.SkillTaxonomy.CoreSkills,
				SupportingSkills:      wire.SkillTaxonomy.SupportingSkills,
				DifferentiationSkills: wire.SkillTaxonomy.DifferentiationSkills,
			},
		}, nil

	default:
		return nil, nil
	}
}
