package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"skillmap/internal/engine"
	"skillmap/internal/taxonomy"
)

var (
	industryHint string
	roleHint     string
	explain      bool
	jsonOutput   bool
)

// resolveCmd runs one text through the whole pipeline
var resolveCmd = &cobra.Command{
	Use:   "resolve [text]",
	Short: "Detect domain, role and industry for a piece of text",
	Long: `Classifies the text, maps the result to pack ids and lists the tools and
skills the knowledge base allows for it.

Example:
  skillmap resolve "muốn học Spring Boot và trở thành backend developer"
  skillmap resolve --industry Fintech --explain "data analyst with sql"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&industryHint, "industry", "", "Industry supplied by the caller (used verbatim)")
	resolveCmd.Flags().StringVar(&roleHint, "role-hint", "", "Role hint added to the text")
	resolveCmd.Flags().BoolVar(&explain, "explain", false, "Show every scoring category and the keywords that hit")
	resolveCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the resolution as JSON")
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Store.GetQueryTimeout()*2)
	defer cancel()

	rt, err := boot(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	req := engine.Request{
		Text:         joinArgs(args),
		IndustryHint: industryHint,
		RoleHint:     roleHint,
	}
	res := rt.engine.Resolve(req)

	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	snap := rt.engine.Current()
	printTitle(out, "Resolution")
	printField(out, "Domain", res.Domain)
	printField(out, "Role", res.RoleCategory)
	printField(out, "Industry", res.Industry)
	printField(out, "Domain pack", res.DomainPackID)
	printField(out, "Role pack", res.RoleID)
	printVerdict(out, "Role in KB", res.RoleKnown)
	printList(out, "Tools", res.AllowedTools)
	printList(out, "Skills", res.AllowedSkills)
	fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("snapshot %s, keywords from %s", snap.ID, snap.Tier)))

	if explain {
		fmt.Fprintln(out)
		printTitle(out, "Scores")
		fields := map[taxonomy.Axis][]string{
			taxonomy.AxisDomain:   {req.Text, req.IndustryHint, req.RoleHint},
			taxonomy.AxisRole:     {req.Text, req.RoleHint},
			taxonomy.AxisIndustry: {req.Text},
		}
		for _, axis := range taxonomy.Axes {
			matches := snap.Classifier.Rank(axis, fields[axis]...)
			if len(matches) == 0 {
				printField(out, string(axis), "")
				continue
			}
			parts := make([]string, 0, len(matches))
			for _, m := range matches {
				parts = append(parts, m.Category+"="+strconv.Itoa(m.Score)+" ["+strings.Join(m.Matched, ", ")+"]")
			}
			printField(out, string(axis), strings.Join(parts, "; "))
		}
	}
	return nil
}
