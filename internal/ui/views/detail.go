package views

import (
	"strings"

	"github.com/ethanuppal/kegtui/internal/format/table"
	"github.com/ethanuppal/kegtui/internal/nav"
	"github.com/ethanuppal/kegtui/internal/snapshot"
	"github.com/muesli/reflow/truncate"
)

// Detail renders the selected keg's paths and settings. It is a read-only
// sheet: editing happens through the Edit Config collaborator.
type Detail struct {
	nav.Base
}

func (v *Detail) Content(st *nav.State, snap *snapshot.Snapshot, area nav.Area, focused bool) (string, error) {
	d := st.Current
	if d == nil {
		return styles.ContentBody.Render("No keg selected."), nil
	}
	rows := [][]string{
		{"Name", d.Name},
		{"Location", d.EnclosingDir},
		{"Config", d.ConfigFile},
		{"C drive", d.CDrive},
		{"Logs", d.LogDir},
		{"", ""},
		{"Program", d.Settings.ProgramPath},
		{"Flags", d.Settings.ProgramFlags},
		{"WINEDEBUG", d.Settings.WineDebug},
		{"DXVK", onOff(d.Settings.DXVK)},
		{"D3DMetal", onOff(d.Settings.D3DMetal)},
		{"Metal HUD", onOff(d.Settings.MetalHUD)},
		{"Esync", onOff(d.Settings.Esync)},
		{"Msync", onOff(d.Settings.Msync)},
		{"Debug mode", onOff(d.Settings.DebugMode)},
		{"start.exe", onOff(d.Settings.UseStartExe)},
	}
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, styles.ContentAccent.Render(d.Name), "")
	for _, line := range table.Format(rows) {
		lines = append(lines, truncate.StringWithTail(line, uint(area.Width), "…"))
	}
	return strings.Join(window(lines, 0, area.Height), "\n"), nil
}

func onOff(flag int) string {
	if flag != 0 {
		return "on"
	}
	return "off"
}
