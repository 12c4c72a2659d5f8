package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"skillmap/internal/knowledge"
)

var packsRaw bool

// packsCmd lists the knowledge base
var packsCmd = &cobra.Command{
	Use:   "packs [domain-id]",
	Short: "List domain and role packs from the knowledge base",
	Long: `Renders the loaded knowledge base as markdown. With a domain id only that
domain and its roles are shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPacks,
}

func init() {
	packsCmd.Flags().BoolVar(&packsRaw, "raw", false, "Print markdown without terminal rendering")
}

func runPacks(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Store.GetQueryTimeout()*2)
	defer cancel()

	rt, err := boot(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	kb := rt.engine.Current().Knowledge
	var only string
	if len(args) == 1 {
		only = args[0]
	}
	md := packsMarkdown(kb, only)

	if packsRaw {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render packs: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

// packsMarkdown writes one section per domain pack, followed by role packs
// whose domain has no pack of its own.
func packsMarkdown(kb *knowledge.Base, only string) string {
	var sb strings.Builder
	sb.WriteString("# Knowledge base\n\n")
	if kb.Source() == "" {
		sb.WriteString("_No knowledge document loaded._\n")
		return sb.String()
	}
	stats := kb.Stats()
	fmt.Fprintf(&sb, "Source `%s`: %d blocks, %d malformed, %d discarded, %d overridden.\n\n",
		kb.Source(), stats.Blocks, stats.Malformed, stats.Discarded, stats.Overrides)

	covered := make(map[string]bool)
	for _, id := range kb.DomainIDs() {
		if only != "" && id != only {
			continue
		}
		covered[id] = true
		d, _ := kb.Domain(id)
		fmt.Fprintf(&sb, "## %s\n\n", id)
		writeList(&sb, "Tools", d.PopularTools)
		writeList(&sb, "Core skills", d.SkillTaxonomy.CoreSkills)
		writeList(&sb, "Supporting skills", d.SkillTaxonomy.SupportingSkills)
		writeList(&sb, "Differentiation skills", d.SkillTaxonomy.DifferentiationSkills)
		for _, roleID := range kb.KnownRolesForDomain(id) {
			writeRole(&sb, kb, roleID)
		}
	}

	var orphans []string
	for _, roleID := range kb.RoleIDs() {
		r, _ := kb.Role(roleID)
		if covered[r.DomainID] || (only != "" && r.DomainID != only) {
			continue
		}
		orphans = append(orphans, roleID)
	}
	if len(orphans) > 0 {
		sb.WriteString("## Roles without a domain pack\n\n")
		for _, roleID := range orphans {
			writeRole(&sb, kb, roleID)
		}
	}
	return sb.String()
}

func writeRole(sb *strings.Builder, kb *knowledge.Base, roleID string) {
	r, _ := kb.Role(roleID)
	fmt.Fprintf(sb, "### %s (%s)\n\n", roleID, r.DomainID)
	writeList(sb, "Skill graph", r.SkillGraphNodes)
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "**%s**\n\n", label)
	for _, item := range items {
		fmt.Fprintf(sb, "- %s\n", item)
	}
	sb.WriteString("\n")
}
