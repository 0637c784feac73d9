package scanner

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethanuppal/kegtui/internal/snapshot"
)

func makeKegBundle(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	marker := filepath.Join(path, "Contents", "KegworksConfig.app")
	if err := os.MkdirAll(marker, 0o755); err != nil {
		t.Fatalf("failed to create keg bundle: %v", err)
	}
	return path
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

func TestScanClassifiesEntries(t *testing.T) {
	kegDir := t.TempDir()
	engineDir := t.TempDir()
	wrapperDir := t.TempDir()

	makeKegBundle(t, kegDir, "Game.app")
	// A bare directory without the marker sub-path is not a keg.
	if err := os.MkdirAll(filepath.Join(kegDir, "NotAKeg.app"), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	touch(t, filepath.Join(engineDir, "WS12WineCX.tar.7z"))
	touch(t, filepath.Join(engineDir, "readme.txt"))
	if err := os.MkdirAll(filepath.Join(wrapperDir, "Template.app"), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	s := &Scanner{cfg: Config{
		KegSearchPaths:     []string{kegDir, filepath.Join(kegDir, "does-not-exist")},
		EngineSearchPaths:  []string{engineDir},
		WrapperSearchPaths: []string{wrapperDir},
	}}
	snap := s.Scan()

	if len(snap.Kegs) != 1 || snap.Kegs[0].Name != "Game.app" {
		t.Fatalf("expected one keg Game.app, got %#v", snap.Kegs)
	}
	if len(snap.Engines) != 1 || filepath.Base(snap.Engines[0].Path) != "WS12WineCX.tar.7z" {
		t.Fatalf("expected one engine, got %#v", snap.Engines)
	}
	if len(snap.Wrappers) != 1 || filepath.Base(snap.Wrappers[0].Path) != "Template.app" {
		t.Fatalf("expected one wrapper, got %#v", snap.Wrappers)
	}
}

func TestExpandHome(t *testing.T) {
	cases := []struct{ in, want string }{
		{"~/Applications", filepath.Join("/home/u", "Applications")},
		{"~", "/home/u"},
		{"/opt/kegs", "/opt/kegs"},
	}
	for _, tc := range cases {
		if got := ExpandHome(tc.in, "/home/u"); got != tc.want {
			t.Fatalf("ExpandHome(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStopLeavesLastSnapshotObservable(t *testing.T) {
	kegDir := t.TempDir()
	makeKegBundle(t, kegDir, "Game.app")

	cell := snapshot.NewCell()
	s := New(cell, Config{
		KegSearchPaths: []string{kegDir},
		Interval:       10 * time.Millisecond,
		Home:           kegDir,
	})

	deadline := time.After(5 * time.Second)
	for {
		snap, ok := cell.TryLoad()
		if ok && len(snap.Kegs) == 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("scanner never published a snapshot")
		case <-time.After(5 * time.Millisecond):
		}
	}

	s.Stop()
	s.Wait()
	// Stopping twice is harmless.
	s.Stop()

	snap, ok := cell.TryLoad()
	if !ok {
		t.Fatalf("expected snapshot to stay readable after stop")
	}
	if len(snap.Kegs) != 1 {
		t.Fatalf("expected last snapshot to survive stop, got %#v", snap.Kegs)
	}
}
