package raytracer

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type XYZ struct {
	X Real `json:"x"`
	Y Real `json:"y"`
	Z Real `json:"z"`
}

// ShearCfg mirrors Shear with JSON keys.
type ShearCfg struct {
	XY Real `json:"xy"`
	XZ Real `json:"xz"`
	YX Real `json:"yx"`
	YZ Real `json:"yz"`
	ZX Real `json:"zx"`
	ZY Real `json:"zy"`
}

// TransformCfg is one step of a sphere's placement. Steps apply in list order.
//
//	{"type": "scale", "x": 1, "y": 0.5, "z": 1}
//	{"type": "rotate", "axis": "z", "deg": 30}
//	{"type": "shear", "shear": {"xy": 1}}
//	{"type": "translate", "x": 1}
type TransformCfg struct {
	Type  string   `json:"type"`
	X     Real     `json:"x,omitempty"`
	Y     Real     `json:"y,omitempty"`
	Z     Real     `json:"z,omitempty"`
	Axis  string   `json:"axis,omitempty"`
	Deg   Real     `json:"deg,omitempty"` // rotation in degrees for JSON (friendlier than radians)
	Shear ShearCfg `json:"shear"`
}

type SphereCfg struct {
	Colour     Colour         `json:"colour"`
	Transforms []TransformCfg `json:"transforms,omitempty"`
}

type Config struct {
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Eye        *XYZ        `json:"eye,omitempty"`
	WallZ      Real        `json:"wallZ,omitempty"`
	WallSize   Real        `json:"wallSize,omitempty"`
	Background Colour      `json:"background"`
	Out        string      `json:"out,omitempty"`
	Scale      int         `json:"scale,omitempty"`
	Caption    string      `json:"caption,omitempty"`
	Gamma      Real        `json:"gamma,omitempty"`
	Spheres    []SphereCfg `json:"spheres"`
}

// queue appends the step to b.
func (tc TransformCfg) queue(b *TransformBuilder) error {
	switch strings.ToLower(tc.Type) {
	case "translate", "translation":
		b.Translate(tc.X, tc.Y, tc.Z)
	case "scale", "scaling":
		if tc.X == 0 || tc.Y == 0 || tc.Z == 0 {
			return fmt.Errorf("scale must be non-zero on all axes, got (%g, %g, %g): %w", tc.X, tc.Y, tc.Z, ErrBadConfig)
		}
		b.Scale(tc.X, tc.Y, tc.Z)
	case "rotate", "rotation":
		axis, err := ParseAxis(tc.Axis)
		if err != nil {
			return err
		}
		b.Rotate(axis, Radians(tc.Deg))
	case "shear", "shearing":
		s := tc.Shear
		b.Shear(Shear{XY: s.XY, XZ: s.XZ, YX: s.YX, YZ: s.YZ, ZX: s.ZX, ZY: s.ZY})
	default:
		return fmt.Errorf("transform type %q: %w", tc.Type, ErrBadConfig)
	}
	return nil
}

// Build validates and constructs the sphere. No transforms leaves it at the
// origin with radius 1.
func (sc SphereCfg) Build() (*Sphere, error) {
	s := NewSphere()
	if len(sc.Transforms) == 0 {
		return s, nil
	}
	b := NewTransformBuilder()
	for _, tc := range sc.Transforms {
		if err := tc.queue(b); err != nil {
			return nil, err
		}
	}
	m, err := b.Build()
	if err != nil {
		return nil, err
	}
	if _, err := m.Inverse(); err != nil {
		return nil, fmt.Errorf("sphere transform: %w: %w", ErrBadConfig, err)
	}
	if err := s.SetTransform(m); err != nil {
		return nil, err
	}
	return s, nil
}

// Scene builds the scene the config describes.
func (cfg *Config) Scene(name string) (*Scene, error) {
	sc := NewScene(name, cfg.Width, cfg.Height)
	sc.Eye = Point(cfg.Eye.X, cfg.Eye.Y, cfg.Eye.Z)
	sc.WallZ = cfg.WallZ
	sc.WallSize = cfg.WallSize
	sc.Background = cfg.Background
	for i, scfg := range cfg.Spheres {
		s, err := scfg.Build()
		if err != nil {
			return nil, fmt.Errorf("spheres[%d]: %w", i, err)
		}
		sc.Add(s, scfg.Colour)
	}
	return sc, nil
}

// Output returns the config's output settings.
func (cfg *Config) Output() OutputOptions {
	return OutputOptions{Gamma: cfg.Gamma, Scale: cfg.Scale, Caption: cfg.Caption}
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseConfig(data, path)
}

func parseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrBadConfig, err)
	}
	// Defaults / validation
	if cfg.Width <= 0 {
		cfg.Width = CanvasW
	}
	if cfg.Height <= 0 {
		cfg.Height = CanvasH
	}
	if cfg.Eye == nil {
		cfg.Eye = &XYZ{Z: EyeZ}
	}
	if cfg.WallZ == 0 {
		cfg.WallZ = WallZ
	}
	if cfg.WallSize <= 0 {
		cfg.WallSize = WallSize
	}
	if cfg.Out == "" {
		cfg.Out = DefaultOut
	}
	if cfg.Scale <= 0 {
		cfg.Scale = DefaultScale
	}
	if cfg.Gamma <= 0 {
		cfg.Gamma = 1
	}
	for _, v := range []Real{cfg.Eye.X, cfg.Eye.Y, cfg.Eye.Z, cfg.WallZ, cfg.WallSize} {
		if !isFinite(v) {
			return nil, fmt.Errorf("%s: non-finite eye or wall value: %w", path, ErrBadConfig)
		}
	}
	if cfg.WallZ <= cfg.Eye.Z {
		return nil, fmt.Errorf("%s: wall z=%g must be in front of the eye z=%g: %w", path, cfg.WallZ, cfg.Eye.Z, ErrBadConfig)
	}
	if len(cfg.Spheres) == 0 {
		return nil, fmt.Errorf("%s: config has no spheres: %w", path, ErrBadConfig)
	}
	DebugLog("Loaded config from %s: size=(%d, %d), spheres=%d, wall z=%f size=%f", path, cfg.Width, cfg.Height, len(cfg.Spheres), cfg.WallZ, cfg.WallSize)
	return &cfg, nil
}
