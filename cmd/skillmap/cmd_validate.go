package main

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	validateDomain string
	validateRole   string
	validateSkills []string
	validateTools  []string
)

// validateCmd checks skills and tools against the knowledge base
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check skills and tools against the knowledge base",
	Long: `Reports whether a role exists for a domain pack and whether each skill or
tool is allowed. Ids are pack ids, not display names.

Example:
  skillmap validate --domain information_technology --role backend_developer \
    --skill "Spring Boot" --tool docker`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateDomain, "domain", "", "Domain pack id (required)")
	validateCmd.Flags().StringVar(&validateRole, "role", "", "Role pack id")
	validateCmd.Flags().StringArrayVar(&validateSkills, "skill", nil, "Skill to check (repeatable)")
	validateCmd.Flags().StringArrayVar(&validateTools, "tool", nil, "Tool to check (repeatable)")
	_ = validateCmd.MarkFlagRequired("domain")
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Store.GetQueryTimeout()*2)
	defer cancel()

	rt, err := boot(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	e := rt.engine
	out := cmd.OutOrStdout()
	printTitle(out, "Validation: "+validateDomain)

	if validateRole != "" {
		printVerdict(out, "role "+validateRole, e.IsRoleKnown(validateDomain, validateRole))
	} else {
		printList(out, "Known roles", e.GetKnownRolesForDomain(validateDomain))
	}
	for _, skill := range validateSkills {
		printVerdict(out, "skill "+skill, e.IsSkillKnown(validateDomain, validateRole, skill))
	}
	for _, tool := range validateTools {
		printVerdict(out, "tool "+tool, e.IsToolKnown(validateDomain, tool))
	}
	return nil
}
