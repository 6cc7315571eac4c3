package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kyaoi/folio/internal/app"
	"github.com/kyaoi/folio/internal/config"
	"github.com/kyaoi/folio/internal/logging"
)

type rootOptions struct {
	configPath string
	theme      string
	tab        string
	tech       string
	noAnimate  bool
	noMouse    bool
	noWatch    bool
	logFile    string
	logLevel   string
}

// newRootCmd builds the root command; start receives the resolved config.
func newRootCmd(start func(*config.Config) error) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "folio [content.md]",
		Short: "Browse a developer portfolio in the terminal",
		Long: `folio renders a portfolio (hero, skills, projects, certifications and a
contact card) as a full-screen terminal page. Content comes from a Markdown
file with YAML front matter, or from the built-in portfolio when none is given.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts, args)
			if err != nil {
				return err
			}
			return start(cfg)
		},
	}
	cmd.SetVersionTemplate(versionTemplate())

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", defaultConfigPath(), "Path to the YAML config file")
	flags.StringVar(&opts.theme, "theme", "", "Initial theme (dark or light)")
	flags.StringVar(&opts.tab, "tab", "", "Initial tab (skills, projects, certifications, connect)")
	flags.StringVar(&opts.tech, "tech", "", "Only show projects using this tech tag")
	flags.BoolVar(&opts.noAnimate, "no-animate", false, "Move the tab indicator without animation")
	flags.BoolVar(&opts.noMouse, "no-mouse", false, "Disable mouse support")
	flags.BoolVar(&opts.noWatch, "no-watch", false, "Do not reload the content file when it changes")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	return cmd
}

// resolveConfig layers explicitly set flags and the positional content path
// over the loaded config.
func resolveConfig(cmd *cobra.Command, opts *rootOptions, args []string) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = opts.theme
	}
	if flags.Changed("tab") {
		cfg.Tab = opts.tab
	}
	if flags.Changed("tech") {
		cfg.Tech = opts.tech
	}
	if opts.noAnimate {
		cfg.Animate = false
	}
	if opts.noMouse {
		cfg.Mouse = false
	}
	if opts.noWatch {
		cfg.Watch = false
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if len(args) == 1 {
		cfg.Content = filepath.Clean(args[0])
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config) error {
	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Info("starting folio", "version", version, "theme", cfg.Theme, "tab", cfg.Tab)
	if err := app.Run(cfg, logger); err != nil {
		logger.Error("folio exited with error", "err", err)
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "folio", "config.yaml")
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("folio %s\n  commit: %s\n", version, commit)
	}
	return fmt.Sprintf("folio %s\n", version)
}
