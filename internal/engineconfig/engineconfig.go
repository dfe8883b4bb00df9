package engineconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.json"

// EnginePrefs holds sandbox-only preferences (debug overlays, draw toggles,
// window size, scene to load). Persisted across runs.
type EnginePrefs struct {
	ShowFPS        bool   `json:"show_fps"`
	ShowDebug      bool   `json:"show_debug"`
	DrawAABBs      bool   `json:"draw_aabbs"`
	DrawVelocities bool   `json:"draw_velocities"`
	DrawContacts   bool   `json:"draw_contacts"`
	WindowWidth    int32  `json:"window_width,omitempty"`
	WindowHeight   int32  `json:"window_height,omitempty"`
	ScenePath      string `json:"scene_path,omitempty"`
}

// Default returns default sandbox preferences (overlays off, contact
// drawing on, 1280x720 window, the bundled demo scene).
func Default() EnginePrefs {
	return EnginePrefs{
		ShowFPS:        false,
		ShowDebug:      false,
		DrawAABBs:      false,
		DrawVelocities: false,
		DrawContacts:   true,
		WindowWidth:    1280,
		WindowHeight:   720,
		ScenePath:      "scenes/demo.yaml",
	}
}

// Load reads preferences from config/engine.json. If the file is missing or invalid,
// returns Default() and does not create a file.
func Load() (EnginePrefs, error) {
	data, err := os.ReadFile(EngineConfigPath)
	if err != nil {
		return Default(), nil
	}
	var p EnginePrefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to config/engine.json, creating the config directory if needed.
func Save(p EnginePrefs) error {
	dir := filepath.Dir(EngineConfigPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(EngineConfigPath, data, 0644)
}
