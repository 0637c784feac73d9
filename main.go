package main

import (
	"fmt"
	"os"

	"github.com/ethanuppal/kegtui/internal/app"
	"github.com/ethanuppal/kegtui/internal/config"
	"github.com/ethanuppal/kegtui/internal/logging"
	"github.com/ethanuppal/kegtui/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	events.App.Start(startupTracePayload(cfg))

	err := app.Run(cfg.App)
	events.App.Exit()
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  cfg.Flags,
		"config": cfg.App,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	payload["tty"] = probeTTYs()
	return payload
}

type ttyProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
}

// probeTTYs inspects the standard descriptors for terminal support and
// dimensions. The renderer needs a real terminal on stdout; recording what
// was actually attached makes "blank screen" reports diagnosable.
func probeTTYs() []ttyProbe {
	files := []*os.File{os.Stdin, os.Stdout, os.Stderr}
	names := []string{"stdin", "stdout", "stderr"}
	probes := make([]ttyProbe, 0, len(files))
	for i, f := range files {
		probe := ttyProbe{Name: names[i]}
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			probe.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				probe.Width = width
				probe.Height = height
			}
		}
		probes = append(probes, probe)
	}
	return probes
}
