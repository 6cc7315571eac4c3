package ui

import (
	"log/slog"

	"github.com/kyaoi/folio/internal/content"
	"github.com/kyaoi/folio/internal/nav"
)

// State contains the data required to bootstrap the Bubble Tea model.
type State struct {
	Portfolio   *content.Portfolio
	ContentPath string
	TechFilter  string
	InitialTab  nav.Section
	Dark        bool
	Animate     bool
	Mouse       bool
	Watch       bool
	Logger      *slog.Logger
}
