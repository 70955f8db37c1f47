package raytracer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// Scenario renders one or more frames; the last frame is the finished picture.
type Scenario interface {
	Name() string
	Description() string
	Render(ctx context.Context) ([]*Canvas, error)
}

// outputter is implemented by scenarios whose input file carries output settings.
type outputter interface {
	Output() (base string, opt OutputOptions)
}

// Scenarios returns every built-in scenario. input is the config or script
// path used by the file-driven ones.
func Scenarios(input string) []Scenario {
	return []Scenario{
		projectile{},
		clock{},
		spherePlot{},
		&configScene{path: input},
		&scriptScene{path: input},
	}
}

func lookupScenario(name, input string) (Scenario, error) {
	for _, s := range Scenarios(input) {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownScenario)
}

// plot sets a pixel, silently dropping points that fall off the canvas.
func plot(c *Canvas, x, y Real, col Colour) error {
	err := c.SetPixel(int(math.Round(x)), int(math.Round(y)), col)
	if errors.Is(err, ErrOutOfRange) {
		return nil
	}
	return err
}

type projectile struct{}

func (projectile) Name() string { return "projectile" }
func (projectile) Description() string {
	return "trajectory of a projectile under gravity and wind, 900x550"
}

func (projectile) Render(ctx context.Context) ([]*Canvas, error) {
	c, err := NewCanvas(900, 550)
	if err != nil {
		return nil, err
	}
	pos := Point(0, 1, 0)
	vel, err := Vector(1, 1.8, 0).Normalize()
	if err != nil {
		return nil, err
	}
	vel = vel.Mul(11.25)
	gravity, wind := Vector(0, -0.1, 0), Vector(-0.01, 0, 0)

	ticks := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if pos, err = pos.Add(vel); err != nil {
			return nil, err
		}
		if vel, err = vel.Add(gravity); err != nil {
			return nil, err
		}
		if vel, err = vel.Add(wind); err != nil {
			return nil, err
		}
		ticks++
		if pos.Y < 0 {
			break
		}
		if err := plot(c, pos.X, Real(c.Height())-pos.Y, Red); err != nil {
			return nil, err
		}
	}
	DebugLog("Projectile landed after %d ticks at x=%f", ticks, pos.X)
	return []*Canvas{c}, nil
}

type clock struct{}

func (clock) Name() string { return "clock" }
func (clock) Description() string {
	return "twelve hour marks rotated about y by pi/6, 500x500, one frame per hour"
}

func (clock) Render(ctx context.Context) ([]*Canvas, error) {
	c, err := NewCanvas(CanvasW, CanvasH)
	if err != nil {
		return nil, err
	}
	mid := Real(c.Width()) / 2
	radius := Real(3) / 8 * Real(c.Width())
	hourRotation := RotationY(math.Pi / 6)

	frames := make([]*Canvas, 0, 12)
	hour := Point(0, 0, 1)
	for i := 0; i < 12; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := plot(c, hour.X*radius+mid, hour.Z*radius+mid, Red); err != nil {
			return nil, err
		}
		frames = append(frames, c.Clone())
		if hour, err = hourRotation.MulTuple(hour); err != nil {
			return nil, err
		}
	}
	return frames, nil
}

type spherePlot struct{}

func (spherePlot) Name() string { return "sphere" }
func (spherePlot) Description() string {
	return "silhouette of the unit sphere seen from (0,0,-3) on a wall at z=10, 500x500"
}

func (spherePlot) Render(ctx context.Context) ([]*Canvas, error) {
	sc := NewScene("sphere", CanvasW, CanvasH)
	sc.Add(NewSphere(), Colour{B: 1})
	c, err := sc.Render(ctx)
	if err != nil {
		return nil, err
	}
	return []*Canvas{c}, nil
}

type configScene struct {
	path string
	cfg  *Config
}

func (*configScene) Name() string { return "scene" }
func (*configScene) Description() string {
	return "spheres described by a JSON config file"
}

func (s *configScene) Render(ctx context.Context) ([]*Canvas, error) {
	if s.path == "" {
		return nil, fmt.Errorf("scene: missing config path: %w", ErrBadConfig)
	}
	cfg, err := loadConfig(s.path)
	if err != nil {
		return nil, err
	}
	s.cfg = cfg
	sc, err := cfg.Scene(s.Name())
	if err != nil {
		return nil, err
	}
	c, err := sc.Render(ctx)
	if err != nil {
		return nil, err
	}
	return []*Canvas{c}, nil
}

func (s *configScene) Output() (string, OutputOptions) {
	if s.cfg == nil {
		return "", OutputOptions{}
	}
	return s.cfg.Out, s.cfg.Output()
}

type scriptScene struct {
	path string
}

func (*scriptScene) Name() string { return "script" }
func (*scriptScene) Description() string {
	return "spheres described by a JavaScript file"
}

func (s *scriptScene) Render(ctx context.Context) ([]*Canvas, error) {
	if s.path == "" {
		return nil, fmt.Errorf("script: missing script path: %w", ErrScript)
	}
	src, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	sc, err := NewScriptEngine(strings.TrimSuffix(filepath.Base(s.path), filepath.Ext(s.path))).Run(ctx, string(src))
	if err != nil {
		return nil, err
	}
	c, err := sc.Render(ctx)
	if err != nil {
		return nil, err
	}
	return []*Canvas{c}, nil
}
