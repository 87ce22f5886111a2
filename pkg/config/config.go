// Package config holds the viewer settings and loads them from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/taigrr/glyph/pkg/math3d"
	"github.com/taigrr/glyph/pkg/models"
	"gopkg.in/yaml.v3"
)

// Config is the complete set of viewer options. Width and Height are in
// terminal cells; the rendered frame is twice as wide and four times as
// tall.
type Config struct {
	Static bool `yaml:"static"`
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`

	BackfaceCulling bool   `yaml:"backface_culling"`
	Shading         string `yaml:"shading"`

	CameraSpeed         float32 `yaml:"camera_speed"` // pan, units per second
	CameraRotationSpeed float32 `yaml:"camera_rotation_speed"` // degrees per second
	CameraZoomSpeed     float32 `yaml:"camera_zoom_speed"`
	CameraPos           Point   `yaml:"camera_pos"`
	CameraTarget        Point   `yaml:"camera_target"`

	LightAmbient   float32 `yaml:"light_ambient"`
	LightDiffuse   float32 `yaml:"light_diffuse"`
	LightSpecular  float32 `yaml:"light_specular"`
	LightShininess uint32  `yaml:"light_shininess"`

	FOV  float32 `yaml:"fov"` // degrees
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`

	MaxFPS  int  `yaml:"max_fps"`
	ShowFPS bool `yaml:"show_fps"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Width:               80,
		Height:              24,
		BackfaceCulling:     true,
		Shading:             "smooth",
		CameraSpeed:         2,
		CameraRotationSpeed: 90,
		CameraZoomSpeed:     2,
		CameraPos:           Point{0, 0, 2},
		LightAmbient:        0.05,
		LightDiffuse:        0.7,
		LightSpecular:       0.25,
		LightShininess:      8,
		FOV:                 60,
		Near:                0.1,
		Far:                 5,
		MaxFPS:              60,
	}
}

// Load reads a YAML file and applies it over the defaults. Keys missing
// from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("resolution must be positive, got %dx%d", c.Width, c.Height))
	}
	if _, err := models.ParseShading(c.Shading); err != nil {
		errs = append(errs, err)
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		errs = append(errs, fmt.Errorf("fov must be in (0, 180) degrees, got %v", c.FOV))
	}
	if c.Near <= 0 {
		errs = append(errs, fmt.Errorf("near plane must be positive, got %v", c.Near))
	}
	if c.Near >= c.Far {
		errs = append(errs, fmt.Errorf("near plane %v must be closer than far plane %v", c.Near, c.Far))
	}
	for _, k := range []struct {
		name string
		v    float32
	}{
		{"light_ambient", c.LightAmbient},
		{"light_diffuse", c.LightDiffuse},
		{"light_specular", c.LightSpecular},
	} {
		if k.v < 0 || k.v > 1 {
			errs = append(errs, fmt.Errorf("%s must be in [0, 1], got %v", k.name, k.v))
		}
	}
	for _, k := range []struct {
		name string
		v    float32
	}{
		{"camera_speed", c.CameraSpeed},
		{"camera_rotation_speed", c.CameraRotationSpeed},
		{"camera_zoom_speed", c.CameraZoomSpeed},
	} {
		if k.v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", k.name, k.v))
		}
	}
	if c.MaxFPS <= 0 {
		errs = append(errs, fmt.Errorf("max_fps must be positive, got %d", c.MaxFPS))
	}
	if c.CameraPos.Vec3().Distance(c.CameraTarget.Vec3()) == 0 {
		errs = append(errs, errors.New("camera position and target coincide"))
	}
	return errors.Join(errs...)
}

// Point is a position written as "x,y,z" or as a three-element list.
type Point math3d.Vec3

// Vec3 returns p as a vector.
func (p Point) Vec3() math3d.Vec3 { return math3d.Vec3(p) }

func (p Point) String() string {
	return fmt.Sprintf("%g,%g,%g", p.X, p.Y, p.Z)
}

// UnmarshalYAML implements yaml.Unmarshaler for Point.
func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var xs []float32
		if err := value.Decode(&xs); err != nil {
			return err
		}
		if len(xs) != 3 {
			return fmt.Errorf("line %d: point needs 3 components, got %d", value.Line, len(xs))
		}
		*p = Point{xs[0], xs[1], xs[2]}
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := ParseVec3(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*p = Point(v)
	return nil
}

// ParseVec3 parses "x,y,z". Whitespace around components is ignored.
func ParseVec3(s string) (math3d.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return math3d.Vec3{}, fmt.Errorf("invalid vector %q: want x,y,z", s)
	}
	var xs [3]float32
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("invalid vector %q: %w", s, err)
		}
		xs[i] = float32(f)
	}
	return math3d.V3(xs[0], xs[1], xs[2]), nil
}
