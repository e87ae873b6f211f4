package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ryan-rushton/nova/internal/app"
	"github.com/ryan-rushton/nova/internal/config"
	"github.com/ryan-rushton/nova/internal/logging"
	"github.com/ryan-rushton/nova/internal/messages"
	"github.com/ryan-rushton/nova/internal/registry"
	"github.com/ryan-rushton/nova/internal/theme"
	"github.com/ryan-rushton/nova/internal/updater"
)

var (
	version = updater.DevVersion

	configPath string
	themeFlag  string
	routeFlag  string
)

var rootCmd = &cobra.Command{
	Use:           "nova",
	Short:         "Crypto-AI Suite in the terminal",
	Long:          "nova - a directory and shell for the Crypto-AI Suite tools",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSuite()
		if err != nil {
			return err
		}
		defer s.close()

		opts := app.Options{
			Registry: s.reg,
			Theme:    s.theme,
			Route:    routeFlag,
			Log:      s.log,
		}
		if version != updater.DevVersion {
			opts.CheckUpdate = checkUpdate(version)
		}

		m, err := app.New(opts)
		if err != nil {
			return err
		}

		final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		if shell, ok := final.(app.Model); ok {
			shell.Close()
		} else {
			m.Close()
		}
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/nova/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "theme to start with: light, dark or system")
	rootCmd.Flags().StringVarP(&routeFlag, "route", "r", "", "route to open first")
}

// SetVersion sets the version string shown by --version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// suite is everything a command needs from config: the validated registry,
// the starting theme and an open logger.
type suite struct {
	cfg   *config.Config
	reg   *registry.Registry
	theme theme.Theme
	log   *logging.Logger
	close func()
}

func loadSuite() (*suite, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	th := cfg.ThemeValue()
	if themeFlag != "" {
		if th, err = theme.Parse(themeFlag); err != nil {
			return nil, fmt.Errorf("--theme: %w", err)
		}
	}

	reg, err := loadRegistry(cfg)
	if err != nil {
		return nil, err
	}

	log, closeLog, err := logging.Open(logging.Config{Level: cfg.Logging.Level, File: cfg.Logging.File})
	if err != nil {
		return nil, err
	}
	for _, w := range reg.Warnings() {
		log.Warn().Add(logging.Str("warning", w)).Msg("registry")
	}

	return &suite{
		cfg:   cfg,
		reg:   reg,
		theme: th,
		log:   log,
		close: func() { _ = closeLog() },
	}, nil
}

func loadRegistry(cfg *config.Config) (*registry.Registry, error) {
	var (
		reg *registry.Registry
		err error
	)
	if cfg.RegistryFile != "" {
		reg, err = registry.Load(cfg.RegistryFile)
	} else {
		reg, err = registry.Default()
	}
	if err != nil {
		return nil, err
	}
	if cfg.BaseURL != "" {
		reg = reg.WithBaseURL(cfg.BaseURL)
	}
	return reg, nil
}

// checkUpdate asks GitHub for the latest release and reports it to the shell
// when it is newer than current. Failures are silent.
func checkUpdate(current string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		latest, err := updater.New().LatestRelease(ctx)
		if err != nil || !updater.IsNewer(current, latest) {
			return nil
		}
		return messages.UpdateAvailableMsg{Tag: latest}
	}
}
