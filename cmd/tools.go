package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ryan-rushton/nova/internal/icons"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:     "tools",
		Aliases: []string{"ls"},
		Short:   "List the tools in the directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSuite()
			if err != nil {
				return err
			}
			defer s.close()

			name := color.New(color.FgCyan, color.Bold).SprintFunc()
			route := color.New(color.FgMagenta).SprintFunc()
			dim := color.New(color.Faint).SprintFunc()

			out := cmd.OutOrStdout()
			for _, t := range s.reg.All() {
				g := icons.Resolve(t.Icon)
				fmt.Fprintf(out, "%s %s  %s\n", g.Symbol, name(t.Name), route(t.Route))
				fmt.Fprintf(out, "    %s\n", t.Description)
				if t.URL != "" {
					fmt.Fprintf(out, "    %s\n", dim(t.URL))
				}
			}
			return nil
		},
	})
}
