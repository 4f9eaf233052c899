package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/AnubhabL4002/Ignatius-GameDev-scripts/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MouseSensitivity float64 `json:"mouseSensitivity"`
	InvertY          bool    `json:"invertY"`
	Fullscreen       bool    `json:"fullscreen"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "ignatius",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. A nil result with nil error
// means no settings were saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettings pushes saved settings into the live config.
func ApplySavedSettings(s *SavedSettings) {
	if s == nil {
		return
	}
	if s.MouseSensitivity > 0 {
		cfg.Camera.MouseSensitivity = s.MouseSensitivity
	}
	cfg.Camera.InvertY = s.InvertY
	ebiten.SetFullscreen(s.Fullscreen)
}

// CurrentSettings snapshots the live config for saving.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		MouseSensitivity: cfg.Camera.MouseSensitivity,
		InvertY:          cfg.Camera.InvertY,
		Fullscreen:       ebiten.IsFullscreen(),
	}
}
