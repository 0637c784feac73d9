package ui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ethanuppal/kegtui/internal/logging/events"
	"github.com/ethanuppal/kegtui/internal/nav"
	"github.com/ethanuppal/kegtui/internal/snapshot"
)

// runExternal hands the terminal back to the collaborator for its whole
// run. tea.Exec leaves the alternate screen, blocks the loop while the
// collaborator owns the terminal, then restores the screen and repaints.
func (m *Model) runExternal(fn nav.External) tea.Cmd {
	return tea.Exec(m.externalCommand(fn), func(err error) tea.Msg {
		return externalDoneMsg{err: err}
	})
}

// externalCommand binds the collaborator to the controller state and the
// latest published snapshot. The blocking cell read is fine here: the loop
// is about to block on the collaborator anyway, and the render cache may be
// a tick stale.
func (m *Model) externalCommand(fn nav.External) *externalCommand {
	return &externalCommand{fn: fn, st: m.st, snap: m.cell.Load()}
}

type externalDoneMsg struct {
	err error
}

func (m *Model) handleExternalDoneMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(externalDoneMsg)
	if !ok {
		return nil
	}
	if done.err != nil {
		events.Action.Error(done.err)
		return m.fatal(done.err)
	}
	return nil
}

// externalCommand adapts a collaborator function to tea.ExecCommand.
type externalCommand struct {
	fn   nav.External
	st   *nav.State
	snap *snapshot.Snapshot

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (c *externalCommand) Run() error {
	return c.fn(c.st, c.snap)
}

func (c *externalCommand) SetStdin(r io.Reader)  { c.stdin = r }
func (c *externalCommand) SetStdout(w io.Writer) { c.stdout = w }
func (c *externalCommand) SetStderr(w io.Writer) { c.stderr = w }
