package external

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethanuppal/kegtui/internal/keg"
	"github.com/ethanuppal/kegtui/internal/nav"
	"github.com/ethanuppal/kegtui/internal/scanner"
	"github.com/ethanuppal/kegtui/internal/snapshot"
	"github.com/pelletier/go-toml/v2"
)

// creationForm is the editor-driven creation request. The user fills it in
// as TOML; the defaults preselect the first discovered engine and wrapper.
type creationForm struct {
	Name    string `toml:"name"`
	Engine  string `toml:"engine"`
	Wrapper string `toml:"wrapper"`
}

// CreateKeg builds a new keg: the user picks a name, engine, and wrapper in
// their editor, then the wrapper template is copied into place and the
// engine archive unpacked into it.
func CreateKeg(st *nav.State, snap *snapshot.Snapshot) error {
	if len(snap.Engines) == 0 {
		return errors.New("no engines downloaded; run the setup wizard first")
	}
	if len(snap.Wrappers) == 0 {
		return errors.New("no wrapper templates downloaded; run the setup wizard first")
	}

	form, err := fillCreationForm(st, snap)
	if err != nil {
		return err
	}

	home, _ := os.UserHomeDir()
	destDir := scanner.ExpandHome(st.DefaultKegDir, home)
	dest := filepath.Join(destDir, form.Name+keg.WrapperSuffix)
	if _, err := os.Stat(dest); err == nil {
		return fmt.Errorf("keg already exists at %s", dest)
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("create keg directory %s: %w", destDir, err)
	}

	fmt.Printf("Copying wrapper into %s...\n", dest)
	if err := run("cp", "-R", form.Wrapper, dest); err != nil {
		return fmt.Errorf("copy wrapper template: %w", err)
	}
	engineDir := filepath.Join(dest, "Contents", "SharedSupport")
	if err := os.MkdirAll(engineDir, 0o755); err != nil {
		return fmt.Errorf("create engine directory: %w", err)
	}
	fmt.Printf("Unpacking %s...\n", filepath.Base(form.Engine))
	if err := run("tar", "-xf", form.Engine, "-C", engineDir); err != nil {
		return fmt.Errorf("unpack engine: %w", err)
	}

	fmt.Printf("Created %s. It will appear in the keg list on the next scan.\n", form.Name)
	pause()
	return nil
}

// fillCreationForm round-trips the creation request through the editor and
// validates the result.
func fillCreationForm(st *nav.State, snap *snapshot.Snapshot) (*creationForm, error) {
	var header strings.Builder
	header.WriteString("# New keg. Fill in a name and pick an engine and wrapper.\n#\n")
	header.WriteString("# Available engines:\n")
	for _, e := range snap.Engines {
		fmt.Fprintf(&header, "#   %s\n", e.Path)
	}
	header.WriteString("# Available wrappers:\n")
	for _, w := range snap.Wrappers {
		fmt.Fprintf(&header, "#   %s\n", w.Path)
	}
	header.WriteString("\n")

	defaults := creationForm{
		Engine:  snap.Engines[0].Path,
		Wrapper: snap.Wrappers[0].Path,
	}
	body, err := toml.Marshal(defaults)
	if err != nil {
		return nil, fmt.Errorf("encode creation form: %w", err)
	}
	edited, err := editInFile(st.Editor, "kegtui-create-*.toml", append([]byte(header.String()), body...))
	if err != nil {
		return nil, err
	}

	var form creationForm
	if err := toml.Unmarshal(edited, &form); err != nil {
		return nil, fmt.Errorf("parse creation form: %w", err)
	}
	form.Name = strings.TrimSuffix(strings.TrimSpace(form.Name), keg.WrapperSuffix)
	if form.Name == "" {
		return nil, errors.New("creation cancelled: no keg name given")
	}
	if _, err := os.Stat(form.Engine); err != nil {
		return nil, fmt.Errorf("engine %s: %w", form.Engine, err)
	}
	if _, err := os.Stat(form.Wrapper); err != nil {
		return nil, fmt.Errorf("wrapper %s: %w", form.Wrapper, err)
	}
	return &form, nil
}
