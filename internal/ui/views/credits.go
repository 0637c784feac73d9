package views

import (
	"strings"

	"github.com/ethanuppal/kegtui/internal/nav"
	"github.com/ethanuppal/kegtui/internal/snapshot"
	"github.com/muesli/reflow/wordwrap"
)

const creditsText = `kegtui is a terminal front end for browsing and managing
Kegworks kegs: self-contained wrappers that run Windows programs on macOS.

Built on the work of the Kegworks project and the Wine developers, without
whom none of these kegs would pour.

Keys: arrows or hjkl move, enter activates, esc returns to the menu,
? shows the keybind reference, q quits.`

// Credits is a scrollable static text pane.
type Credits struct {
	nav.Base
}

func (v *Credits) Content(st *nav.State, snap *snapshot.Snapshot, area nav.Area, focused bool) (string, error) {
	wrapped := wordwrap.String(creditsText, area.Width)
	lines := strings.Split(wrapped, "\n")
	return styles.ContentBody.Render(strings.Join(window(lines, st.Cursor, area.Height), "\n")), nil
}

func (v *Credits) Interactivity(*nav.State, *snapshot.Snapshot) nav.Interactivity {
	return nav.Scrollable()
}
