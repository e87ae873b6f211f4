package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ryan-rushton/nova/internal/app"
	"github.com/ryan-rushton/nova/internal/logging"
	"github.com/ryan-rushton/nova/internal/messages"
	"github.com/ryan-rushton/nova/internal/nav"
	"github.com/ryan-rushton/nova/internal/theme"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "open <route>",
		Short: "Open one page without the shell",
		Long:  "Runs a single page full screen; esc or q quits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSuite()
			if err != nil {
				return err
			}
			defer s.close()

			th := theme.New(s.theme)
			th.Mount()
			defer th.Close()

			pages, err := app.Pages(s.reg, th)
			if err != nil {
				return err
			}
			route := nav.Normalize(args[0])
			page, ok := pages.Resolve(route)
			if !ok {
				return fmt.Errorf("no page at %s", route)
			}

			s.log.Info().Add(logging.Route(route)).Msg("standalone page")
			_, err = tea.NewProgram(messages.Standalone(page), tea.WithAltScreen()).Run()
			return err
		},
	})
}
