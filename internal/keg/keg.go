// Package keg models the on-disk artefacts the application browses: keg
// bundles (wrapped Windows programs), engine archives, and wrapper templates.
package keg

import "path/filepath"

// MarkerSubPath identifies a directory as a keg bundle. The background
// scanner checks for this sub-path before listing a directory as a keg.
const MarkerSubPath = "Contents/KegworksConfig.app"

// EngineSuffix marks a file as a packed engine archive.
const EngineSuffix = ".tar.7z"

// WrapperSuffix marks a directory as a wrapper template bundle.
const WrapperSuffix = ".app"

// Keg is a discovered keg bundle. Every field is derived from the bundle
// path at scan time; nothing is read from disk until Hydrate is called.
type Keg struct {
	Name          string
	EnclosingDir  string
	ConfigFile    string
	Launcher      string
	CDrive        string
	LogDir        string
	WinetricksLog string
	WinePrefix    string
}

// FromPath derives a Keg record from the bundle directory path.
func FromPath(path string) Keg {
	return Keg{
		Name:          filepath.Base(path),
		EnclosingDir:  filepath.Dir(path),
		ConfigFile:    filepath.Join(path, "Contents", "Info.plist"),
		Launcher:      filepath.Join(path, "Contents", "MacOS", "wineskinLauncher"),
		CDrive:        filepath.Join(path, "Contents", "SharedSupport", "prefix", "drive_c"),
		LogDir:        filepath.Join(path, "Contents", "Logs"),
		WinetricksLog: filepath.Join(path, "Contents", "SharedSupport", "Logs", "Winetricks.log"),
		WinePrefix:    filepath.Join(path, "Contents", "SharedSupport", "wine", "bin"),
	}
}

// Engine is a packed wine engine archive available to the keg creator.
type Engine struct {
	Path string
}

// Wrapper is a template bundle the keg creator copies to start a new keg.
type Wrapper struct {
	Path string
}
