package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ignatzorin/projecthub-backend/internal/discovery"
)

func newDecodeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <link-or-query>",
		Short: "Decode a share link into filters",
		Long: `Decode a share link or query string into the filter state the engine would use,
and print the canonical query for it.`,
		Example: `  projectctl decode "/projects?status=open&skills=React,,Python"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := root.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			state := discovery.NewEngine(catalog, discovery.ParseValues(args[0]), nil).State()
			out := cmd.OutOrStdout()
			label := color.New(color.FgCyan)

			skills := "(none)"
			if len(state.Skills) > 0 {
				skills = strings.Join(state.Skills, ", ")
			}

			label.Fprint(out, "search:   ")
			fmt.Fprintf(out, "%q\n", state.Search)
			label.Fprint(out, "status:   ")
			fmt.Fprintln(out, state.Status)
			label.Fprint(out, "category: ")
			fmt.Fprintln(out, state.Category)
			label.Fprint(out, "skills:   ")
			fmt.Fprintln(out, skills)
			label.Fprint(out, "query:    ")
			fmt.Fprintln(out, discovery.EncodeQuery(state))
			label.Fprint(out, "link:     ")
			fmt.Fprintln(out, discovery.Location(root.locationPath, state))
			return nil
		},
	}
}
