// Package external implements the collaborator actions that run outside the
// managed terminal: launching kegs, opening folders, editing configuration,
// and the creator/maintenance flows. Each action has the collaborator
// signature and is invoked by the controller with the terminal restored to
// cooperative mode, so it is free to read stdin and write the screen.
package external

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ethanuppal/kegtui/internal/keg"
	"github.com/ethanuppal/kegtui/internal/nav"
	"github.com/ethanuppal/kegtui/internal/snapshot"
)

// ErrNoKegSelected is returned when a per-keg action runs without a
// hydrated selection. The keg nav is only reachable after hydration, so
// hitting this means a wiring bug, not a user mistake.
var ErrNoKegSelected = errors.New("no keg selected")

// Launch starts the selected keg's launcher and holds the screen until the
// user returns.
func Launch(st *nav.State, snap *snapshot.Snapshot) error {
	current, err := selected(st)
	if err != nil {
		return err
	}
	fmt.Printf("Launching %s...\n", current.Name)
	if err := run(current.Launcher); err != nil {
		return fmt.Errorf("launch %s: %w", current.Name, err)
	}
	pause()
	return nil
}

// OpenCDrive opens the selected keg's virtual C drive with the configured
// explorer command.
func OpenCDrive(st *nav.State, snap *snapshot.Snapshot) error {
	current, err := selected(st)
	if err != nil {
		return err
	}
	if err := run(st.Explorer, current.CDrive); err != nil {
		return fmt.Errorf("open C drive of %s: %w", current.Name, err)
	}
	return nil
}

// KillProcesses asks the keg's wineserver to tear down every Windows
// process running in its prefix.
func KillProcesses(st *nav.State, snap *snapshot.Snapshot) error {
	current, err := selected(st)
	if err != nil {
		return err
	}
	wineserver := filepath.Join(current.WinePrefix, "wineserver")
	if err := run(wineserver, "-k"); err != nil {
		return fmt.Errorf("kill processes of %s: %w", current.Name, err)
	}
	fmt.Printf("Stopped all processes in %s.\n", current.Name)
	pause()
	return nil
}

func selected(st *nav.State) (*keg.Detail, error) {
	if st.Current == nil {
		return nil, ErrNoKegSelected
	}
	return st.Current, nil
}

// run executes a command wired to the real terminal.
func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// capture runs a command and returns its stdout. Stderr stays wired to the
// terminal so progress output remains visible.
func capture(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Stderr = os.Stderr
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// pause waits for Enter so command output stays readable before the
// alternate screen comes back.
func pause() {
	fmt.Print("\nPress Enter to return. ")
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}

// confirm asks a yes/no question, defaulting to no.
func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
