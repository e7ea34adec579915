package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"showroom/internal/interaction"
)

// DefaultPath is the config file, relative to the process working directory.
const DefaultPath = "config/showroom.yaml"

// Environment variables that override the file. SHOWROOM_CONFIG picks the file itself.
const (
	EnvConfig  = "SHOWROOM_CONFIG"
	EnvVariant = "SHOWROOM_VARIANT"
)

// Variants.
const (
	VariantRoom    = "room"
	VariantGallery = "gallery"
)

// Input devices.
const (
	DeviceMouse = "mouse"
	DeviceTouch = "touch"
)

// Config is the whole showroom configuration. Keys missing from the file keep their Default values.
type Config struct {
	Variant   string          `yaml:"variant"`
	Window    WindowConfig    `yaml:"window"`
	Input     InputConfig     `yaml:"input"`
	Smoothing SmoothingConfig `yaml:"smoothing"`
	Lighting  LightingConfig  `yaml:"lighting"`
	Zoom      ZoomConfig      `yaml:"zoom"`
	UI        UIConfig        `yaml:"ui"`
	Log       LogConfig       `yaml:"log"`
}

type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int32  `yaml:"width"`
	Height     int32  `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	TargetFPS  int32  `yaml:"target_fps"`
	MSAA       bool   `yaml:"msaa"`
}

// InputConfig selects which device drives the drag and how many radians each pixel is worth.
type InputConfig struct {
	Device           string  `yaml:"device"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	TouchSensitivity float32 `yaml:"touch_sensitivity"`
}

// SmoothingConfig holds per-frame damping factors. ReferenceFPS is the frame rate they are tuned for;
// zero or a negative value disables elapsed-time normalization.
type SmoothingConfig struct {
	Rotation     float32 `yaml:"rotation"`
	Light        float32 `yaml:"light"`
	ReferenceFPS float32 `yaml:"reference_fps"`
}

type LightingConfig struct {
	OpenIntensity        float32 `yaml:"open_intensity"`
	ClosedIntensity      float32 `yaml:"closed_intensity"`
	SecondaryFraction    float32 `yaml:"secondary_fraction"`
	DirectionalIntensity float32 `yaml:"directional_intensity"`
}

// ZoomConfig is the wheel zoom of the gallery camera along Z.
type ZoomConfig struct {
	Min   float32 `yaml:"min"`
	Max   float32 `yaml:"max"`
	Speed float32 `yaml:"speed"`
	Start float32 `yaml:"start"`
}

type UIConfig struct {
	Stylesheet string     `yaml:"stylesheet,omitempty"` // empty = built-in stylesheet
	Watch      bool       `yaml:"watch"`                // reload the stylesheet when it changes on disk
	ShowFPS    bool       `yaml:"show_fps"`
	ShowMem    bool       `yaml:"show_memalloc"`
	ShowState  bool       `yaml:"show_state"` // eased yaw and light readout
	Categories []Category `yaml:"categories"`
}

// Category is one menu item. ID is passed, opaque, to the product hook.
type Category struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

type LogConfig struct {
	Path string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Variant: VariantRoom,
		Window: WindowConfig{
			Title:     "Showroom",
			Width:     1280,
			Height:    720,
			TargetFPS: 60,
			MSAA:      true,
		},
		Input: InputConfig{
			Device:           DeviceMouse,
			MouseSensitivity: 0.003,
			TouchSensitivity: 0.002,
		},
		Smoothing: SmoothingConfig{
			Rotation:     0.03,
			Light:        0.08,
			ReferenceFPS: 60,
		},
		Lighting: LightingConfig{
			OpenIntensity:        1.0,
			ClosedIntensity:      0.3,
			SecondaryFraction:    0.6,
			DirectionalIntensity: 1.2,
		},
		Zoom: ZoomConfig{Min: 3, Max: 20, Speed: 0.5, Start: 10},
		UI: UIConfig{
			Categories: []Category{
				{ID: "furniture", Label: "Furniture"},
				{ID: "lighting", Label: "Lighting"},
				{ID: "decor", Label: "Decor"},
				{ID: "textiles", Label: "Textiles"},
			},
		},
		Log: LogConfig{Path: "logs/showroom.txt"},
	}
}

// Path returns the config file to read: SHOWROOM_CONFIG if set, else DefaultPath.
func Path() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads the YAML file at path over Default. A missing file is not an error; a malformed or
// invalid one is. SHOWROOM_VARIANT, when set, overrides the variant.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return c, fmt.Errorf("config: %w", err)
	default:
		// Decoding over the defaults keeps every key the file leaves out.
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Default(), fmt.Errorf("config %s: %w", path, err)
		}
	}
	if v := os.Getenv(EnvVariant); v != "" {
		c.Variant = v
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Variant {
	case VariantRoom, VariantGallery:
	default:
		return fmt.Errorf("unknown variant %q (use %s or %s)", c.Variant, VariantRoom, VariantGallery)
	}
	switch c.Input.Device {
	case DeviceMouse, DeviceTouch:
	default:
		return fmt.Errorf("unknown input device %q (use %s or %s)", c.Input.Device, DeviceMouse, DeviceTouch)
	}
	if c.Smoothing.Rotation <= 0 || c.Smoothing.Rotation >= 1 || c.Smoothing.Light <= 0 || c.Smoothing.Light >= 1 {
		return fmt.Errorf("smoothing factors must be in (0, 1)")
	}
	if c.Zoom.Min > c.Zoom.Max {
		return fmt.Errorf("zoom min %.2f is greater than max %.2f", c.Zoom.Min, c.Zoom.Max)
	}
	for i, cat := range c.UI.Categories {
		if cat.ID == "" {
			return fmt.Errorf("category %d has no id", i+1)
		}
	}
	return nil
}

// Clone returns a deep copy, so slices such as the categories are not shared with c.
func (c Config) Clone() Config {
	var out Config
	if err := copier.CopyWithOption(&out, &c, copier.Option{DeepCopy: true}); err != nil {
		return c
	}
	return out
}

// Tuning converts the config into interaction tuning.
func (c Config) Tuning() interaction.Tuning {
	fps := c.Smoothing.ReferenceFPS
	if fps < 0 {
		fps = 0
	}
	return interaction.Tuning{
		MouseSensitivity: c.Input.MouseSensitivity,
		TouchSensitivity: c.Input.TouchSensitivity,
		RotationDamping:  c.Smoothing.Rotation,
		LightDamping:     c.Smoothing.Light,
		ReferenceFPS:     fps,
		OpenIntensity:    c.Lighting.OpenIntensity,
		ClosedIntensity:  c.Lighting.ClosedIntensity,
		SecondaryFactor:  c.Lighting.SecondaryFraction,
		Zoom:             c.Variant == VariantGallery,
		ZoomMin:          c.Zoom.Min,
		ZoomMax:          c.Zoom.Max,
		ZoomSpeed:        c.Zoom.Speed,
		ZoomStart:        c.Zoom.Start,
	}
}

// Save writes c as YAML to path, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
