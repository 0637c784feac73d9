// Package app assembles the application: the view/nav registration surface,
// the background scanner, and the Bubble Tea program around the controller.
package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ethanuppal/kegtui/internal/external"
	"github.com/ethanuppal/kegtui/internal/nav"
	"github.com/ethanuppal/kegtui/internal/scanner"
	"github.com/ethanuppal/kegtui/internal/snapshot"
	"github.com/ethanuppal/kegtui/internal/ui"
	"github.com/ethanuppal/kegtui/internal/ui/views"
)

// Config is everything Run needs, resolved by the config package.
type Config struct {
	KegSearchPaths     []string
	EngineSearchPaths  []string
	WrapperSearchPaths []string
	DefaultKegDir      string
	Editor             string
	Explorer           string
	RefreshInterval    time.Duration
	TickInterval       time.Duration
}

// Run builds the registry, starts the scanner, and drives the program until
// quit or a fatal error.
func Run(cfg Config) error {
	registry, root, err := buildRegistry()
	if err != nil {
		return err
	}

	st := &nav.State{
		KegSearchPaths: cfg.KegSearchPaths,
		DefaultKegDir:  cfg.DefaultKegDir,
		Editor:         cfg.Editor,
		Explorer:       cfg.Explorer,
	}

	cell := snapshot.NewCell()
	scan := scanner.New(cell, scanner.Config{
		KegSearchPaths:     cfg.KegSearchPaths,
		EngineSearchPaths:  cfg.EngineSearchPaths,
		WrapperSearchPaths: cfg.WrapperSearchPaths,
		Interval:           cfg.RefreshInterval,
	})
	defer scan.Stop()

	model := ui.NewModel(registry, root, cell, st, cfg.TickInterval)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("event loop: %w", err)
	}
	return model.Err()
}

// buildRegistry declares every view and nav. The whole surface is fixed
// here, before the event loop starts; nothing registers later.
func buildRegistry() (*nav.Registry, nav.NavID, error) {
	registry := nav.NewRegistry()

	kegsView := &views.Kegs{}
	kegsID := registry.RegisterView("kegs", kegsView)
	enginesID := registry.RegisterView("engines", &views.Engines{})
	detailID := registry.RegisterView("keg-detail", &views.Detail{})
	creditsID := registry.RegisterView("credits", &views.Credits{})

	kegNav, err := registry.RegisterNav("keg", []nav.MenuItem{
		nav.NewMenuItem("Back", nav.Navigate{Action: nav.PopNav()}),
		nav.NewMenuItem("Details", nav.Load{View: detailID}),
		nav.NewMenuItem("Launch", nav.Invoke{Fn: external.Launch}).Default(),
		nav.NewMenuItem("Open C Drive", nav.Invoke{Fn: external.OpenCDrive}),
		nav.NewMenuItem("Edit Config", nav.Invoke{Fn: external.EditConfig}),
		nav.NewMenuItem("Winetricks", nav.Invoke{Fn: external.Winetricks}),
		nav.NewMenuItem("Kill Processes", nav.Invoke{Fn: external.KillProcesses}),
	})
	if err != nil {
		return nil, 0, err
	}
	kegsView.KegNav = kegNav

	root, err := registry.RegisterNav("main", []nav.MenuItem{
		nav.NewMenuItem("Kegs", nav.Load{View: kegsID}),
		nav.NewMenuItem("Engines", nav.Load{View: enginesID}),
		nav.NewMenuItem("Create Keg", nav.Invoke{Fn: external.CreateKeg}),
		nav.NewMenuItem("Clear Caches", nav.Invoke{Fn: external.ClearCaches}),
		nav.NewMenuItem("Setup Wizard", nav.Invoke{Fn: external.SetupWizard}),
		nav.NewMenuItem("Credits", nav.Load{View: creditsID}),
	})
	if err != nil {
		return nil, 0, err
	}
	return registry, root, nil
}
