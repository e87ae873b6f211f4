package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ryan-rushton/nova/internal/app"
	"github.com/ryan-rushton/nova/internal/theme"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Validate the config and tool registry",
		Long:  "Loads the config and registry and checks every route has a page; exits 1 on error",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			ok := color.New(color.FgGreen).SprintFunc()
			warn := color.New(color.FgYellow).SprintFunc()
			bad := color.New(color.FgRed, color.Bold).SprintFunc()

			s, err := loadSuite()
			if err != nil {
				fmt.Fprintf(out, "%s %v\n", bad("✗"), err)
				return err
			}
			defer s.close()
			fmt.Fprintf(out, "%s config (theme %s)\n", ok("✓"), s.theme)

			for _, w := range s.reg.Warnings() {
				fmt.Fprintf(out, "%s %s\n", warn("!"), w)
			}

			th := theme.New(s.theme)
			th.Mount()
			defer th.Close()

			pages, err := app.Pages(s.reg, th)
			if err == nil {
				err = s.reg.CheckPages(pages.Has)
			}
			if err != nil {
				fmt.Fprintf(out, "%s %v\n", bad("✗"), err)
				return err
			}

			fmt.Fprintf(out, "%s registry: %d tools, %d pages\n", ok("✓"), s.reg.Len(), len(pages.Routes()))
			return nil
		},
	})
}
