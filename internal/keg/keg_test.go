package keg

import (
	"path/filepath"
	"testing"
)

func TestFromPathDerivesBundleLayout(t *testing.T) {
	k := FromPath("/Users/someone/Applications/Game.app")
	if k.Name != "Game.app" {
		t.Fatalf("expected name Game.app, got %s", k.Name)
	}
	if k.EnclosingDir != "/Users/someone/Applications" {
		t.Fatalf("unexpected enclosing dir %s", k.EnclosingDir)
	}
	if k.ConfigFile != filepath.Join("/Users/someone/Applications/Game.app", "Contents", "Info.plist") {
		t.Fatalf("unexpected config file %s", k.ConfigFile)
	}
	if filepath.Base(k.Launcher) != "wineskinLauncher" {
		t.Fatalf("unexpected launcher %s", k.Launcher)
	}
	if filepath.Base(k.CDrive) != "drive_c" {
		t.Fatalf("unexpected c drive %s", k.CDrive)
	}
}

func TestHydrateMissingConfigFails(t *testing.T) {
	k := FromPath(filepath.Join(t.TempDir(), "Missing.app"))
	if _, err := Hydrate(k); err == nil {
		t.Fatalf("expected error hydrating keg without Info.plist")
	}
}
