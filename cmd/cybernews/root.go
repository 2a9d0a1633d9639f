package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/infblueocean/cybernews/internal/config"
	"github.com/infblueocean/cybernews/internal/loader"
	"github.com/infblueocean/cybernews/internal/logging"
	"github.com/infblueocean/cybernews/internal/ui"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath  string
	logDir      string
	logLevel    string
	delay       time.Duration
	noAltScreen bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "cybernews",
		Short: "Cyber News Network - a neon news feed for your terminal",
		Long: `Cyber News Network shows a small simulated news feed: an expert article,
a live event, an interactive poll and a community submission.

Keys: tab/shift+tab switch sections, 1-3 vote in the poll, n opens the
submission form, q quits.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", config.ConfigPath(), "path to config.yaml")
	f.StringVar(&opts.logDir, "log-dir", "", "directory for log files (overrides config)")
	f.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	f.DurationVar(&opts.delay, "delay", 0, "simulated load delay (overrides config)")
	f.BoolVar(&opts.noAltScreen, "no-alt-screen", false, "render inline instead of using the alternate screen")

	return cmd
}

// resolveConfig loads the file and applies flag overrides.
func resolveConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	if opts.logDir != "" {
		cfg.Logging.Dir = opts.logDir
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if cmd.Flags().Changed("delay") {
		cfg.UI.LoadDelay = opts.delay
	}
	if opts.noAltScreen {
		cfg.UI.AltScreen = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	if err := logging.Init(cfg.Logging.Dir, cfg.Logging.Level); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logging.Close()

	l := loader.New(cfg.UI.LoadDelay)
	defer l.Cancel()

	app := ui.NewApp(ui.Config{
		Loader:          l,
		Theme:           cfg.Theme,
		GlitchIntensity: cfg.UI.GlitchIntensity,
	})

	var progOpts []tea.ProgramOption
	if cfg.UI.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	logging.Info("starting UI", "delay", cfg.UI.LoadDelay, "config", opts.configPath)
	if _, err := tea.NewProgram(app, progOpts...).Run(); err != nil {
		logging.Error("application error", "error", err)
		return fmt.Errorf("run program: %w", err)
	}
	logging.Info("exiting normally")
	return nil
}
