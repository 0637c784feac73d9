package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const configFileName = "kegtui.toml"

// File is the on-disk TOML configuration: where to look for kegs, engines,
// and wrapper templates, and which commands open files and folders.
type File struct {
	KegSearchPaths     []string `toml:"keg-search-paths"`
	EngineSearchPaths  []string `toml:"engine-search-paths"`
	WrapperSearchPaths []string `toml:"wrapper-search-paths"`
	Editor             string   `toml:"editor"`
	Explorer           string   `toml:"explorer"`
}

// DefaultKegDir is where newly created kegs are placed.
const DefaultKegDir = "~/Applications/kegtui"

// DefaultFile returns the built-in search locations and tools.
func DefaultFile() File {
	return File{
		KegSearchPaths: []string{
			"/Applications",
			"~/Applications",
			"~/Applications/Kegworks",
			"~/Applications/Sikarugir",
			DefaultKegDir,
		},
		EngineSearchPaths: []string{
			"~/Library/Application Support/Kegworks/Engines",
			"~/Library/Application Support/Sikarugir/Engines",
		},
		WrapperSearchPaths: []string{
			"~/Library/Application Support/Kegworks/Wrapper",
			"~/Library/Application Support/Sikarugir/Wrapper",
		},
		Editor:   envOr("EDITOR", "vim"),
		Explorer: envOr("EXPLORER", "open"),
	}
}

// FilePath returns the config file location under the user config dir.
func FilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, configFileName)
}

// LoadFile reads the TOML config at path. A missing file yields the
// defaults; a malformed file is an error, since silently ignoring the
// user's search paths would make kegs vanish without explanation.
func LoadFile(path string) (File, error) {
	cfg := DefaultFile()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return File{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return File{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Editor == "" {
		cfg.Editor = envOr("EDITOR", "vim")
	}
	if cfg.Explorer == "" {
		cfg.Explorer = envOr("EXPLORER", "open")
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
