package keg

import (
	"fmt"
	"os"

	"howett.net/plist"
)

// Settings is the user-editable subset of a keg's Info.plist. The plist
// stores booleans as 0/1 integers, so those fields are declared as int and
// exposed to the editor as TOML verbatim.
type Settings struct {
	ProgramPath  string `plist:"Program Name and Path" toml:"program-path"`
	ProgramFlags string `plist:"Program Flags" toml:"program-flags"`
	WineDebug    string `plist:"WINEDEBUG" toml:"wine-debug"`
	DXVK         int    `plist:"DXVK" toml:"dxvk"`
	D3DMetal     int    `plist:"D3DMETAL" toml:"d3d-metal"`
	MetalHUD     int    `plist:"METAL_HUD" toml:"metal-hud"`
	Esync        int    `plist:"WINEESYNC" toml:"esync"`
	Msync        int    `plist:"WINEMSYNC" toml:"msync"`
	DebugMode    int    `plist:"Debug Mode" toml:"debug-mode"`
	UseStartExe  int    `plist:"use start.exe" toml:"use-start-exe"`
}

// Detail is a fully hydrated keg: the scan-time record plus the settings
// decoded from the bundle's Info.plist.
type Detail struct {
	Keg
	Settings Settings

	// raw holds every Info.plist key so ApplySettings can write the file
	// back without dropping fields the Settings subset does not cover.
	raw map[string]interface{}
}

// Hydrate reads the keg's Info.plist and returns the detail record. Called
// when a keg list entry is activated; failures propagate to the caller
// instead of being swallowed mid-frame.
func Hydrate(k Keg) (*Detail, error) {
	data, err := os.ReadFile(k.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("read keg config %s: %w", k.ConfigFile, err)
	}
	raw := make(map[string]interface{})
	if _, err := plist.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode keg config %s: %w", k.ConfigFile, err)
	}
	var settings Settings
	if _, err := plist.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("decode keg settings %s: %w", k.ConfigFile, err)
	}
	return &Detail{Keg: k, Settings: settings, raw: raw}, nil
}

// ApplySettings merges the given settings into the keg's Info.plist and
// rewrites it as XML.
func (d *Detail) ApplySettings(s Settings) error {
	d.Settings = s
	if d.raw == nil {
		d.raw = make(map[string]interface{})
	}
	d.raw["Program Name and Path"] = s.ProgramPath
	d.raw["Program Flags"] = s.ProgramFlags
	d.raw["WINEDEBUG"] = s.WineDebug
	d.raw["DXVK"] = s.DXVK
	d.raw["D3DMETAL"] = s.D3DMetal
	d.raw["METAL_HUD"] = s.MetalHUD
	d.raw["WINEESYNC"] = s.Esync
	d.raw["WINEMSYNC"] = s.Msync
	d.raw["Debug Mode"] = s.DebugMode
	d.raw["use start.exe"] = s.UseStartExe

	data, err := plist.MarshalIndent(d.raw, plist.XMLFormat, "\t")
	if err != nil {
		return fmt.Errorf("encode keg config: %w", err)
	}
	if err := os.WriteFile(d.ConfigFile, data, 0o644); err != nil {
		return fmt.Errorf("write keg config %s: %w", d.ConfigFile, err)
	}
	return nil
}
