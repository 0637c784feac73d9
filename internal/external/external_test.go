package external

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethanuppal/kegtui/internal/keg"
	"github.com/ethanuppal/kegtui/internal/nav"
	"github.com/ethanuppal/kegtui/internal/snapshot"
	"howett.net/plist"
)

// The editor "true" leaves the temp file untouched, which lets these tests
// drive the editor round-trips without a terminal.

func TestEditInFileReturnsSavedContent(t *testing.T) {
	got, err := editInFile("true", "kegtui-test-*.toml", []byte("name = \"x\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "name = \"x\"\n" {
		t.Fatalf("edited content = %q", got)
	}
}

func TestEditInFileFailingEditor(t *testing.T) {
	if _, err := editInFile("false", "kegtui-test-*.toml", nil); err == nil {
		t.Fatal("expected an error from a failing editor")
	}
}

func TestEditConfigPreservesUnmanagedKeys(t *testing.T) {
	bundle := filepath.Join(t.TempDir(), "Game.app")
	if err := os.MkdirAll(filepath.Join(bundle, "Contents"), 0o755); err != nil {
		t.Fatal(err)
	}
	config := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleName</key>
	<string>Game</string>
	<key>Program Name and Path</key>
	<string>/Program Files/game.exe</string>
	<key>DXVK</key>
	<integer>1</integer>
</dict>
</plist>
`
	configPath := filepath.Join(bundle, "Contents", "Info.plist")
	if err := os.WriteFile(configPath, []byte(config), 0o644); err != nil {
		t.Fatal(err)
	}
	detail, err := keg.Hydrate(keg.FromPath(bundle))
	if err != nil {
		t.Fatal(err)
	}

	st := &nav.State{Current: detail, Editor: "true"}
	if err := EditConfig(st, snapshot.Empty()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatal(err)
	}
	raw := make(map[string]interface{})
	if _, err := plist.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if raw["CFBundleName"] != "Game" {
		t.Fatalf("CFBundleName lost on rewrite: %v", raw["CFBundleName"])
	}
	if raw["Program Name and Path"] != "/Program Files/game.exe" {
		t.Fatalf("program path changed: %v", raw["Program Name and Path"])
	}
}

func TestEditConfigWithoutSelection(t *testing.T) {
	if err := EditConfig(&nav.State{}, snapshot.Empty()); err != ErrNoKegSelected {
		t.Fatalf("err = %v, want ErrNoKegSelected", err)
	}
}

func TestCreateKegRequiresDownloads(t *testing.T) {
	err := CreateKeg(&nav.State{}, snapshot.Empty())
	if err == nil || !strings.Contains(err.Error(), "no engines") {
		t.Fatalf("err = %v, want missing-engines error", err)
	}
	err = CreateKeg(&nav.State{}, &snapshot.Snapshot{Engines: []keg.Engine{{Path: "/e.tar.7z"}}})
	if err == nil || !strings.Contains(err.Error(), "no wrapper") {
		t.Fatalf("err = %v, want missing-wrappers error", err)
	}
}

func TestCreateKegCancelledWithoutName(t *testing.T) {
	dir := t.TempDir()
	engine := filepath.Join(dir, "engine.tar.7z")
	wrapper := filepath.Join(dir, "Template.app")
	if err := os.WriteFile(engine, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(wrapper, 0o755); err != nil {
		t.Fatal(err)
	}
	snap := &snapshot.Snapshot{
		Engines:  []keg.Engine{{Path: engine}},
		Wrappers: []keg.Wrapper{{Path: wrapper}},
	}
	st := &nav.State{Editor: "true", DefaultKegDir: dir}
	err := CreateKeg(st, snap)
	if err == nil || !strings.Contains(err.Error(), "cancelled") {
		t.Fatalf("err = %v, want cancellation for the empty name", err)
	}
}

func TestClearCachesRemovesWinetricksLogs(t *testing.T) {
	bundle := filepath.Join(t.TempDir(), "Game.app")
	k := keg.FromPath(bundle)
	if err := os.MkdirAll(filepath.Dir(k.WinetricksLog), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(k.WinetricksLog, []byte("log"), 0o644); err != nil {
		t.Fatal(err)
	}
	snap := &snapshot.Snapshot{Kegs: []keg.Keg{k}}
	if err := ClearCaches(&nav.State{}, snap); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(k.WinetricksLog); !os.IsNotExist(err) {
		t.Fatalf("winetricks log still present: %v", err)
	}
	// Missing logs on a second pass are fine.
	if err := ClearCaches(&nav.State{}, snap); err != nil {
		t.Fatal(err)
	}
}
