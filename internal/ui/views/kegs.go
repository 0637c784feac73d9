// Package views contains the content panes the controller can load: the
// keg list, the keg detail sheet, the engine/wrapper inventory, and the
// credits page.
package views

import (
	"fmt"
	"strings"

	"github.com/ethanuppal/kegtui/internal/keg"
	"github.com/ethanuppal/kegtui/internal/nav"
	"github.com/ethanuppal/kegtui/internal/snapshot"
	"github.com/muesli/reflow/truncate"
)

// Kegs lists the discovered keg bundles. Activating an entry hydrates its
// detail record and pushes the per-keg nav.
type Kegs struct {
	// KegNav is the nav pushed when an entry is activated. Bound at
	// registration time.
	KegNav nav.NavID
}

func (v *Kegs) Content(st *nav.State, snap *snapshot.Snapshot, area nav.Area, focused bool) (string, error) {
	if len(snap.Kegs) == 0 {
		msg := fmt.Sprintf("No kegs found in %s.", humanList(st.KegSearchPaths))
		return styles.ContentBody.Render(msg), nil
	}
	lines := make([]string, 0, len(snap.Kegs))
	for i, k := range snap.Kegs {
		line := itemPrefix + k.Name
		if i == st.Cursor {
			style := styles.SelectedUnfocused
			if focused {
				style = styles.SelectedFocused
			}
			lines = append(lines, style.Render(truncate.StringWithTail(selectedPrefix+k.Name, uint(area.Width), "…")))
			continue
		}
		lines = append(lines, styles.Item.Render(truncate.StringWithTail(line, uint(area.Width), "…")))
	}
	return strings.Join(window(lines, windowStart(st.Cursor, len(lines), area.Height), area.Height), "\n"), nil
}

func (v *Kegs) Interactivity(st *nav.State, snap *snapshot.Snapshot) nav.Interactivity {
	if len(snap.Kegs) == 0 {
		return nav.None()
	}
	return nav.Clickable(len(snap.Kegs))
}

func (v *Kegs) Click(st *nav.State, snap *snapshot.Snapshot, index int) (*nav.NavAction, error) {
	if index < 0 || index >= len(snap.Kegs) {
		return nil, nil
	}
	detail, err := keg.Hydrate(snap.Kegs[index])
	if err != nil {
		return nil, err
	}
	st.Current = detail
	action := nav.PushNav(v.KegNav)
	return &action, nil
}
