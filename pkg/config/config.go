// Package config loads viewer settings from YAML. Every field is optional;
// anything a file leaves out keeps the value from Default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the complete viewer configuration
type Config struct {
	Window   Window   `yaml:"window"`
	Camera   Camera   `yaml:"camera"`
	Controls Controls `yaml:"controls"`
	Scene    Scene    `yaml:"scene"`
}

// Window holds the initial window settings
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// Camera holds the projection and starting pose. Angles are in radians,
// FOV is the vertical field of view in degrees.
type Camera struct {
	FOV      float64    `yaml:"fov"`
	Near     float64    `yaml:"near"`
	Far      float64    `yaml:"far"`
	Position [3]float64 `yaml:"position,flow"`
	Yaw      float64    `yaml:"yaw"`
	Pitch    float64    `yaml:"pitch"`
}

// Controls holds movement and look tuning
type Controls struct {
	// MoveSpeed is the distance travelled per frame
	MoveSpeed float64 `yaml:"move_speed"`
	// LookSensitivity is radians of rotation per pixel of drag
	LookSensitivity float64 `yaml:"look_sensitivity"`
}

// Scene describes the static world
type Scene struct {
	Background  Color            `yaml:"background"`
	Ground      Ground           `yaml:"ground"`
	Obstacles   []Obstacle       `yaml:"obstacles"`
	Ambient     Light            `yaml:"ambient"`
	Directional DirectionalLight `yaml:"directional"`
}

// Ground is a flat square centred on the origin
type Ground struct {
	Size  float64 `yaml:"size"`
	Color Color   `yaml:"color"`
}

// Obstacle is an axis-aligned box
type Obstacle struct {
	Name     string     `yaml:"name"`
	Size     [3]float64 `yaml:"size,flow"`
	Position [3]float64 `yaml:"position,flow"`
	Color    Color      `yaml:"color"`
}

// Light is a uniform light source
type Light struct {
	Color     Color   `yaml:"color"`
	Intensity float64 `yaml:"intensity"`
}

// DirectionalLight shines from Position toward the origin
type DirectionalLight struct {
	Color     Color      `yaml:"color"`
	Intensity float64    `yaml:"intensity"`
	Position  [3]float64 `yaml:"position,flow"`
}

// Default returns the built-in configuration: a 50x50 grey floor, a red
// 2x2x2 block beside the start point and an eye-level camera.
func Default() *Config {
	return &Config{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "Walkabout",
			VSync:  true,
		},
		Camera: Camera{
			FOV:      75,
			Near:     0.1,
			Far:      1000,
			Position: [3]float64{0, 1.7, 5},
		},
		Controls: Controls{
			MoveSpeed:       0.1,
			LookSensitivity: 0.005,
		},
		Scene: Scene{
			Background: 0x000000,
			Ground: Ground{
				Size:  50,
				Color: 0x888888,
			},
			Obstacles: []Obstacle{{
				Name:     "block",
				Size:     [3]float64{2, 2, 2},
				Position: [3]float64{5, 1, 0},
				Color:    0xff0000,
			}},
			Ambient: Light{
				Color:     0xffffff,
				Intensity: 0.5,
			},
			Directional: DirectionalLight{
				Color:     0xffffff,
				Intensity: 0.5,
				Position:  [3]float64{0, 10, 5},
			},
		},
	}
}

// Load reads and validates the YAML file at path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Validate checks every field for values the viewer cannot use
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}

	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("%w: camera fov must be in (0, 180), got %g", ErrInvalid, c.Camera.FOV)
	}
	if c.Camera.Near <= 0 {
		return fmt.Errorf("%w: camera near plane must be positive, got %g", ErrInvalid, c.Camera.Near)
	}
	if c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("%w: camera far plane %g must be beyond near plane %g", ErrInvalid, c.Camera.Far, c.Camera.Near)
	}
	if math.Abs(c.Camera.Pitch) > math.Pi/2 {
		return fmt.Errorf("%w: camera pitch must be within ±π/2, got %g", ErrInvalid, c.Camera.Pitch)
	}

	if c.Controls.MoveSpeed <= 0 {
		return fmt.Errorf("%w: move_speed must be positive, got %g", ErrInvalid, c.Controls.MoveSpeed)
	}
	if c.Controls.LookSensitivity <= 0 {
		return fmt.Errorf("%w: look_sensitivity must be positive, got %g", ErrInvalid, c.Controls.LookSensitivity)
	}

	if c.Scene.Ground.Size <= 0 {
		return fmt.Errorf("%w: ground size must be positive, got %g", ErrInvalid, c.Scene.Ground.Size)
	}
	for i, o := range c.Scene.Obstacles {
		if o.Size[0] <= 0 || o.Size[1] <= 0 || o.Size[2] <= 0 {
			return fmt.Errorf("%w: obstacle %d (%q) size must be positive, got %v", ErrInvalid, i, o.Name, o.Size)
		}
	}
	if c.Scene.Ambient.Intensity < 0 || c.Scene.Directional.Intensity < 0 {
		return fmt.Errorf("%w: light intensity must not be negative", ErrInvalid)
	}
	if c.Scene.Directional.Position == [3]float64{} {
		return fmt.Errorf("%w: directional light position must not be the origin", ErrInvalid)
	}

	return nil
}
