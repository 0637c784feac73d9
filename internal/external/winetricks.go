package external

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethanuppal/kegtui/internal/nav"
	"github.com/ethanuppal/kegtui/internal/snapshot"
	"github.com/pelletier/go-toml/v2"
)

const winetricksURL = "https://raw.githubusercontent.com/ethanuppal/winetricks/refs/heads/master/src/winetricks"

// Cached between runs so the verb catalog is only built once; ClearCaches
// removes both.
func winetricksScriptPath() string {
	return filepath.Join(os.TempDir(), "kegtui-winetricks.sh")
}

func winetricksCatalogPath() string {
	return filepath.Join(os.TempDir(), "kegtui-winetricks-catalog.toml")
}

// Winetricks installs winetricks verbs into the selected keg's prefix. The
// user picks verbs by uncommenting lines of a TOML catalog in their editor;
// the launcher then runs the selection against the prefix.
func Winetricks(st *nav.State, snap *snapshot.Snapshot) error {
	current, err := selected(st)
	if err != nil {
		return err
	}

	script := winetricksScriptPath()
	if _, err := os.Stat(script); err != nil {
		fmt.Println("Fetching the latest winetricks...")
		if err := run("curl", winetricksURL, "-o", script); err != nil {
			return fmt.Errorf("fetch winetricks: %w", err)
		}
	}
	if err := installScript(script, filepath.Join(current.WinePrefix, "winetricks")); err != nil {
		return err
	}

	catalog, err := loadCatalog(script)
	if err != nil {
		return err
	}
	edited, err := editInFile(st.Editor, "kegtui-winetricks-*.toml", catalog)
	if err != nil {
		return err
	}
	verbs, err := parseVerbSelection(edited)
	if err != nil {
		return err
	}
	if len(verbs) == 0 {
		fmt.Println("No winetricks selected.")
		pause()
		return nil
	}

	if _, err := os.Stat(current.WinetricksLog); err != nil {
		if err := os.WriteFile(current.WinetricksLog, nil, 0o644); err != nil {
			return fmt.Errorf("create winetricks log: %w", err)
		}
	}
	args := append([]string{"WSS-winetricks"}, verbs...)
	if err := run(current.Launcher, args...); err != nil {
		return fmt.Errorf("winetricks on %s: %w", current.Name, err)
	}
	pause()
	return nil
}

// installScript copies the fetched script into the prefix as an executable.
func installScript(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read winetricks script: %w", err)
	}
	if err := os.WriteFile(dst, data, 0o777); err != nil {
		return fmt.Errorf("install winetricks into prefix: %w", err)
	}
	return nil
}

// loadCatalog returns the commented TOML catalog of available verbs, built
// from the script's own listings and cached across runs.
func loadCatalog(script string) ([]byte, error) {
	if cached, err := os.ReadFile(winetricksCatalogPath()); err == nil {
		return cached, nil
	}
	var sections []catalogSection
	for _, category := range []string{"apps", "dlls", "fonts", "settings"} {
		fmt.Printf("Loading winetricks %s...\n", category)
		out, err := listCategory(script, category)
		if err != nil {
			return nil, fmt.Errorf("list winetricks %s: %w", category, err)
		}
		sections = append(sections, catalogSection{
			Category: strings.TrimSuffix(category, "s"),
			Verbs:    parseVerbList(out),
		})
	}
	catalog := []byte(buildCatalog(sections))
	if err := os.WriteFile(winetricksCatalogPath(), catalog, 0o644); err != nil {
		return nil, fmt.Errorf("cache winetricks catalog: %w", err)
	}
	return catalog, nil
}

func listCategory(script, category string) (string, error) {
	out, err := capture("/bin/sh", script, category, "list")
	if err != nil {
		return "", err
	}
	return out, nil
}

// verbEntry is one installable verb with its one-line description.
type verbEntry struct {
	Name        string
	Description string
}

type catalogSection struct {
	Category string
	Verbs    []verbEntry
}

// parseVerbList splits "name  description" listing lines. Names that are
// not bare TOML keys get quoted so the catalog stays parseable.
func parseVerbList(output string) []verbEntry {
	var verbs []verbEntry
	for _, line := range strings.Split(output, "\n") {
		name, description, ok := strings.Cut(strings.TrimSpace(line), " ")
		if !ok || name == "" {
			continue
		}
		if !isBareTOMLKey(name) {
			name = `"` + name + `"`
		}
		verbs = append(verbs, verbEntry{Name: name, Description: strings.TrimSpace(description)})
	}
	return verbs
}

func isBareTOMLKey(s string) bool {
	for _, r := range s {
		switch {
		case r == '_' || r == '-':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// buildCatalog renders every verb as a commented assignment; the user
// uncomments the ones to install.
func buildCatalog(sections []catalogSection) string {
	var b strings.Builder
	b.WriteString("# Uncomment each winetrick to install.\n")
	b.WriteString("# Save and quit your editor to apply the selection.\n\n")
	for _, section := range sections {
		for _, verb := range section.Verbs {
			fmt.Fprintf(&b, "# %s.%s = %q\n", section.Category, verb.Name, verb.Description)
		}
	}
	return b.String()
}

// parseVerbSelection collects the verb names the user uncommented,
// whichever category tables they appear under.
func parseVerbSelection(edited []byte) ([]string, error) {
	selection := make(map[string]map[string]string)
	if err := toml.Unmarshal(edited, &selection); err != nil {
		return nil, fmt.Errorf("parse winetricks selection: %w", err)
	}
	var verbs []string
	for _, table := range selection {
		for verb := range table {
			verbs = append(verbs, verb)
		}
	}
	return verbs, nil
}
