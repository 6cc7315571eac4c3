package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kyaoi/folio/internal/config"
	"github.com/kyaoi/folio/internal/content"
	"github.com/kyaoi/folio/internal/ui"
)

// LoadInitialState reads the configured content and prepares the UI state.
// Without a content path the built-in portfolio is used and nothing is
// watched.
func LoadInitialState(cfg *config.Config, logger *slog.Logger) (ui.State, error) {
	state := ui.State{
		InitialTab: cfg.InitialTab(),
		Dark:       cfg.Dark(),
		Animate:    cfg.Animate,
		Mouse:      cfg.Mouse,
		Watch:      cfg.Watch,
		Logger:     logger,
	}

	if cfg.Content == "" {
		state.Portfolio = content.Default()
	} else {
		info, err := os.Stat(cfg.Content)
		if err != nil {
			return ui.State{}, err
		}
		if info.IsDir() {
			return ui.State{}, fmt.Errorf("%s is a directory, expected a Markdown file", cfg.Content)
		}
		absTarget, err := filepath.Abs(cfg.Content)
		if err != nil {
			return ui.State{}, err
		}
		portfolio, err := content.Load(absTarget)
		if err != nil {
			return ui.State{}, err
		}
		state.Portfolio = portfolio
		state.ContentPath = absTarget
	}

	if cfg.Tech != "" {
		if err := checkTechFilter(state.Portfolio, cfg.Tech); err != nil {
			return ui.State{}, err
		}
		state.TechFilter = cfg.Tech
	}

	if logger != nil {
		logger.Info("portfolio loaded",
			"name", state.Portfolio.Name,
			"content", displayPath(state.ContentPath),
			"tab", state.InitialTab.String(),
			"tech", state.TechFilter)
	}
	return state, nil
}

func displayPath(abs string) string {
	if abs == "" {
		return "(built-in)"
	}
	if wd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(wd, abs); err == nil {
			return filepath.ToSlash(rel)
		}
	}
	return abs
}
