package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig mirrors the tunables that may be overridden from a YAML
// file. Pointer fields distinguish "absent" from an explicit zero.
type FileConfig struct {
	Window struct {
		Width  *int `yaml:"width"`
		Height *int `yaml:"height"`
	} `yaml:"window"`
	Player struct {
		MoveSpeed *float64 `yaml:"moveSpeed"`
		JumpForce *float64 `yaml:"jumpForce"`
		Gravity   *float64 `yaml:"gravity"`
	} `yaml:"player"`
	Camera struct {
		MouseSensitivity *float64 `yaml:"mouseSensitivity"`
		MinDistance      *float64 `yaml:"minDistance"`
		MaxDistance      *float64 `yaml:"maxDistance"`
		Height           *float64 `yaml:"height"`
		MinVerticalAngle *float64 `yaml:"minVerticalAngle"`
		MaxVerticalAngle *float64 `yaml:"maxVerticalAngle"`
	} `yaml:"camera"`
}

// Load applies overrides from the YAML file at path onto the global
// config. A missing file is not an error; the defaults stand.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}
	fc.apply()
	return nil
}

func (fc *FileConfig) apply() {
	setInt(&C.Width, fc.Window.Width)
	setInt(&C.Height, fc.Window.Height)

	setFloat(&Player.MoveSpeed, fc.Player.MoveSpeed)
	setFloat(&Player.JumpForce, fc.Player.JumpForce)
	setFloat(&Player.Gravity, fc.Player.Gravity)

	setFloat(&Camera.MouseSensitivity, fc.Camera.MouseSensitivity)
	setFloat(&Camera.MinDistance, fc.Camera.MinDistance)
	setFloat(&Camera.MaxDistance, fc.Camera.MaxDistance)
	setFloat(&Camera.Height, fc.Camera.Height)
	setFloat(&Camera.MinVerticalAngle, fc.Camera.MinVerticalAngle)
	setFloat(&Camera.MaxVerticalAngle, fc.Camera.MaxVerticalAngle)
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
