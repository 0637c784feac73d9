package external

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethanuppal/kegtui/internal/keg"
	"github.com/ethanuppal/kegtui/internal/nav"
	"github.com/ethanuppal/kegtui/internal/snapshot"
	"github.com/pelletier/go-toml/v2"
)

const editHeader = `# Settings for %s.
# Save and quit to apply; the numeric flags are 0 (off) or 1 (on).

`

// EditConfig round-trips the selected keg's settings through the user's
// editor as TOML and writes the result back into the bundle's plist.
func EditConfig(st *nav.State, snap *snapshot.Snapshot) error {
	current, err := selected(st)
	if err != nil {
		return err
	}
	body, err := toml.Marshal(current.Settings)
	if err != nil {
		return fmt.Errorf("encode settings of %s: %w", current.Name, err)
	}
	edited, err := editInFile(st.Editor, "kegtui-settings-*.toml",
		append(fmt.Appendf(nil, editHeader, current.Name), body...))
	if err != nil {
		return err
	}
	var settings keg.Settings
	if err := toml.Unmarshal(edited, &settings); err != nil {
		return fmt.Errorf("parse edited settings: %w", err)
	}
	if err := current.ApplySettings(settings); err != nil {
		return err
	}
	fmt.Printf("Updated %s.\n", current.Name)
	return nil
}

// editInFile writes content to a temp file, opens it in the editor, and
// returns the saved bytes. The temp file is removed on return.
func editInFile(editor, pattern string, content []byte) ([]byte, error) {
	if editor == "" {
		editor = "vi"
	}
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return nil, fmt.Errorf("create edit file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)
	if _, err := f.Write(content); err != nil {
		f.Close()
		return nil, fmt.Errorf("write edit file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("write edit file: %w", err)
	}
	if err := run(editor, path); err != nil {
		return nil, fmt.Errorf("%s %s: %w", editor, filepath.Base(path), err)
	}
	edited, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}
	return edited, nil
}
