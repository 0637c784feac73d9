package views

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethanuppal/kegtui/internal/keg"
	"github.com/ethanuppal/kegtui/internal/nav"
	"github.com/ethanuppal/kegtui/internal/snapshot"
)

func TestKegsEmptySnapshotNamesSearchPaths(t *testing.T) {
	v := &Kegs{}
	st := &nav.State{KegSearchPaths: []string{"~/Applications/kegtui", "~/Applications"}}
	snap := snapshot.Empty()

	if got := v.Interactivity(st, snap); got.Kind != nav.InteractivityNone {
		t.Fatalf("empty keg list interactivity = %v, want none", got.Kind)
	}
	content, err := v.Content(st, snap, nav.Area{Width: 120, Height: 10}, true)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(content, "~/Applications/kegtui or ~/Applications") {
		t.Fatalf("empty message does not name search paths: %q", content)
	}
}

func TestKegsClickableCountTracksSnapshot(t *testing.T) {
	v := &Kegs{}
	snap := &snapshot.Snapshot{Kegs: []keg.Keg{
		keg.FromPath("/kegs/Alpha.app"),
		keg.FromPath("/kegs/Beta.app"),
		keg.FromPath("/kegs/Gamma.app"),
	}}
	got := v.Interactivity(&nav.State{}, snap)
	if got.Kind != nav.InteractivityClickable || got.Count != 3 {
		t.Fatalf("interactivity = %+v, want clickable with 3 targets", got)
	}
}

func TestKegsClickHydratesAndPushes(t *testing.T) {
	bundle := filepath.Join(t.TempDir(), "Game.app")
	if err := os.MkdirAll(filepath.Join(bundle, "Contents"), 0o755); err != nil {
		t.Fatal(err)
	}
	config := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Program Name and Path</key>
	<string>/Program Files/game.exe</string>
	<key>DXVK</key>
	<integer>1</integer>
</dict>
</plist>
`
	if err := os.WriteFile(filepath.Join(bundle, "Contents", "Info.plist"), []byte(config), 0o644); err != nil {
		t.Fatal(err)
	}

	v := &Kegs{KegNav: nav.NavID(7)}
	st := &nav.State{}
	snap := &snapshot.Snapshot{Kegs: []keg.Keg{keg.FromPath(bundle)}}

	action, err := v.Click(st, snap, 0)
	if err != nil {
		t.Fatal(err)
	}
	if action == nil || action.Kind != nav.NavPush || action.Target != nav.NavID(7) {
		t.Fatalf("click action = %+v, want push of the keg nav", action)
	}
	if st.Current == nil || st.Current.Settings.ProgramPath != "/Program Files/game.exe" {
		t.Fatalf("click did not hydrate the selected keg: %+v", st.Current)
	}
	if st.Current.Settings.DXVK != 1 {
		t.Fatalf("DXVK = %d, want 1", st.Current.Settings.DXVK)
	}
}

func TestKegsClickMissingConfigPropagates(t *testing.T) {
	v := &Kegs{}
	snap := &snapshot.Snapshot{Kegs: []keg.Keg{keg.FromPath("/nonexistent/Game.app")}}
	if _, err := v.Click(&nav.State{}, snap, 0); err == nil {
		t.Fatal("expected hydration failure for a missing config file")
	}
}

func TestKegsClickOutOfRangeIsNoop(t *testing.T) {
	v := &Kegs{}
	snap := &snapshot.Snapshot{Kegs: []keg.Keg{keg.FromPath("/kegs/Alpha.app")}}
	action, err := v.Click(&nav.State{}, snap, 5)
	if err != nil || action != nil {
		t.Fatalf("out-of-range click = (%+v, %v), want no-op", action, err)
	}
}

func TestDetailWithoutSelection(t *testing.T) {
	v := &Detail{}
	content, err := v.Content(&nav.State{}, snapshot.Empty(), nav.Area{Width: 80, Height: 20}, false)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(content, "No keg selected") {
		t.Fatalf("unexpected content: %q", content)
	}
}

func TestEnginesScrollsPastTop(t *testing.T) {
	v := &Engines{}
	snap := &snapshot.Snapshot{
		Engines: []keg.Engine{
			{Path: "/engines/WS12WineCX64Bit23.7.1.tar.7z"},
			{Path: "/engines/WS12WineCX64Bit24.0.5.tar.7z"},
		},
	}
	st := &nav.State{Cursor: 1}
	content, err := v.Content(st, snap, nav.Area{Width: 80, Height: 3}, true)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(content, "Engines:") {
		t.Fatalf("scrolled content still shows the first line: %q", content)
	}
	if !strings.Contains(content, "WS12WineCX64Bit23.7.1") {
		t.Fatalf("engine name missing or not trimmed: %q", content)
	}
	if got := v.Interactivity(st, snap); got.Kind != nav.InteractivityScrollable {
		t.Fatalf("interactivity = %v, want scrollable", got.Kind)
	}
}

func TestWindowClampsOffset(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e"}
	got := window(lines, 100, 2)
	if len(got) != 2 || got[0] != "d" || got[1] != "e" {
		t.Fatalf("window past the end = %v, want final page", got)
	}
	if got := window(lines, 0, 10); len(got) != 5 {
		t.Fatalf("oversized window = %v, want all lines", got)
	}
}

func TestHumanList(t *testing.T) {
	cases := []struct {
		in   []string
		want string
	}{
		{nil, "the configured search paths"},
		{[]string{"a"}, "a"},
		{[]string{"a", "b"}, "a or b"},
		{[]string{"a", "b", "c"}, "a, b, or c"},
	}
	for _, tc := range cases {
		if got := humanList(tc.in); got != tc.want {
			t.Errorf("humanList(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
