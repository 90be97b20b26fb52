package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ignatzorin/projecthub-backend/internal/discovery"
	"github.com/ignatzorin/projecthub-backend/internal/models"
)

type searchOptions struct {
	query    string
	search   string
	status   string
	category string
	skills   []string
	asJSON   bool
}

func newSearchCmd(root *rootOptions) *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Filter the project catalog",
		Long: `Filter the project catalog and print the matching projects with the share link.

--query takes an existing link or query string as the starting point; the other flags
are applied on top of it in order: text, status, category, then each --skill toggle.`,
		Example: `  projectctl search --status open --skill React
  projectctl search --query "/projects?category=Finance" --search redesign`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := root.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			engine := discovery.NewEngine(catalog, discovery.ParseValues(opts.query), nil)
			flags := cmd.Flags()
			if flags.Changed("search") {
				engine.SetText(opts.search)
			}
			if flags.Changed("status") {
				engine.SetStatus(opts.status)
			}
			if flags.Changed("category") {
				engine.SetCategory(opts.category)
			}
			for _, skill := range opts.skills {
				engine.ToggleSkill(skill)
			}

			snap := engine.Snapshot()
			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, snap, root.locationPath)
			}
			printResults(out, snap, root.locationPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.query, "query", "", "initial link or query string")
	cmd.Flags().StringVar(&opts.search, "search", "", "free-text query")
	cmd.Flags().StringVar(&opts.status, "status", discovery.SelectorAll, "status selector: all, open, in-progress, completed")
	cmd.Flags().StringVar(&opts.category, "category", discovery.SelectorAll, "category selector")
	cmd.Flags().StringArrayVar(&opts.skills, "skill", nil, "toggle a required skill (repeatable)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the result as JSON")
	return cmd
}

func printResults(out io.Writer, snap discovery.Snapshot, path string) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	if len(snap.Results) == 0 {
		yellow.Fprintln(out, "No projects match the current filters.")
	}
	for _, p := range snap.Results {
		bold.Fprintf(out, "%-4s %s\n", p.ID, p.Title)
		fmt.Fprintf(out, "     %s | %s | %s\n", p.Company.Name, statusLabel(p.Status), strings.Join(p.Skills, ", "))
	}

	fmt.Fprintln(out)
	green.Fprintf(out, "Found %d project(s)\n", len(snap.Results))
	fmt.Fprintf(out, "Share: %s\n", discovery.Location(path, snap.State))
}

func statusLabel(status models.ProjectStatus) string {
	switch status {
	case models.ProjectStatusOpen:
		return color.GreenString(string(status))
	case models.ProjectStatusInProgress:
		return color.YellowString(string(status))
	default:
		return color.CyanString(string(status))
	}
}

type searchOutput struct {
	Filters  discovery.FilterState `json:"filters"`
	Query    string                `json:"query"`
	Location string                `json:"location"`
	Total    int                   `json:"total"`
	Projects []models.Project      `json:"projects"`
}

func writeJSON(out io.Writer, snap discovery.Snapshot, path string) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(searchOutput{
		Filters:  snap.State,
		Query:    discovery.EncodeQuery(snap.State),
		Location: discovery.Location(path, snap.State),
		Total:    len(snap.Results),
		Projects: snap.Results,
	})
}
