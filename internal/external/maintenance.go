package external

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethanuppal/kegtui/internal/nav"
	"github.com/ethanuppal/kegtui/internal/snapshot"
)

// setupCommand bootstraps the Kegworks toolchain through Homebrew.
const setupCommand = "brew install --no-quarantine Kegworks-App/kegworks/kegworks"

// SetupWizard shows the bootstrap command and runs it if the user agrees.
func SetupWizard(st *nav.State, snap *snapshot.Snapshot) error {
	fmt.Println("Setup installs the Kegworks toolchain:")
	fmt.Println("  " + setupCommand)
	if !confirm("Run it now?") {
		fmt.Println("Setup skipped.")
		pause()
		return nil
	}
	if err := run("sh", "-c", setupCommand); err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	pause()
	return nil
}

// ClearCaches removes the winetricks logs of every discovered keg, the
// cached winetricks script and catalog, and the creator's scratch
// directory. Files that are already gone are not errors.
func ClearCaches(st *nav.State, snap *snapshot.Snapshot) error {
	removed := 0
	targets := []string{winetricksScriptPath(), winetricksCatalogPath()}
	for _, k := range snap.Kegs {
		targets = append(targets, k.WinetricksLog)
	}
	for _, target := range targets {
		err := os.Remove(target)
		if err == nil {
			removed++
			continue
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("remove %s: %w", target, err)
		}
	}
	if dir, err := os.UserCacheDir(); err == nil {
		scratch := filepath.Join(dir, "kegtui")
		if err := os.RemoveAll(scratch); err != nil {
			return fmt.Errorf("remove %s: %w", scratch, err)
		}
	}
	fmt.Printf("Cleared %d cache file(s).\n", removed)
	pause()
	return nil
}
