package views

import (
	"path/filepath"
	"strings"

	"github.com/ethanuppal/kegtui/internal/keg"
	"github.com/ethanuppal/kegtui/internal/nav"
	"github.com/ethanuppal/kegtui/internal/snapshot"
	"github.com/muesli/reflow/truncate"
)

// Engines lists downloaded engine archives and wrapper templates. The pane
// scrolls; nothing on it is activatable.
type Engines struct {
	nav.Base
}

func (v *Engines) Content(st *nav.State, snap *snapshot.Snapshot, area nav.Area, focused bool) (string, error) {
	lines := []string{styles.ContentAccent.Render("Engines:")}
	if len(snap.Engines) == 0 {
		lines = append(lines, itemPrefix+"none downloaded")
	}
	for _, e := range snap.Engines {
		name := strings.TrimSuffix(filepath.Base(e.Path), keg.EngineSuffix)
		lines = append(lines, itemPrefix+name)
	}
	lines = append(lines, "", styles.ContentAccent.Render("Wrappers:"))
	if len(snap.Wrappers) == 0 {
		lines = append(lines, itemPrefix+"none downloaded")
	}
	for _, w := range snap.Wrappers {
		lines = append(lines, itemPrefix+filepath.Base(w.Path))
	}
	for i, line := range lines {
		lines[i] = truncate.StringWithTail(line, uint(area.Width), "…")
	}
	return strings.Join(window(lines, st.Cursor, area.Height), "\n"), nil
}

func (v *Engines) Interactivity(*nav.State, *snapshot.Snapshot) nav.Interactivity {
	return nav.Scrollable()
}
