package raytracer

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `{
  "width": 40,
  "height": 20,
  "caption": "two spheres",
  "spheres": [
    {"colour": {"r": 1, "g": 0, "b": 0}},
    {
      "colour": {"r": 0, "g": 0, "b": 1},
      "transforms": [
        {"type": "scale", "x": 0.5, "y": 0.5, "z": 0.5},
        {"type": "rotate", "axis": "z", "deg": 90},
        {"type": "translate", "x": 2}
      ]
    }
  ]
}`

func TestLoadConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 20, cfg.Height)
	assert.Equal(t, XYZ{Z: EyeZ}, *cfg.Eye)
	assert.Equal(t, Real(WallZ), cfg.WallZ)
	assert.Equal(t, Real(WallSize), cfg.WallSize)
	assert.Equal(t, DefaultOut, cfg.Out)
	assert.Equal(t, DefaultScale, cfg.Scale)
	assert.Equal(t, 1.0, cfg.Gamma)
	require.Len(t, cfg.Spheres, 2)
	assert.Equal(t, Colour{B: 1}, cfg.Spheres[1].Colour)

	out := cfg.Output()
	assert.Equal(t, "two spheres", out.Caption)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseConfigErrors(t *testing.T) {
	tests := map[string]string{
		"invalid json":    `{"width": `,
		"no spheres":      `{"width": 10}`,
		"wall behind eye": `{"eye": {"z": 20}, "spheres": [{}]}`,
		"bad transform":   `{"spheres": [{"transforms": [{"type": "twist"}]}]}`,
		"bad axis":        `{"spheres": [{"transforms": [{"type": "rotate", "axis": "w"}]}]}`,
		"zero scale":      `{"spheres": [{"transforms": [{"type": "scale", "x": 1, "y": 0, "z": 1}]}]}`,
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := parseConfig([]byte(src), name)
			if err == nil {
				_, err = cfg.Scene("test")
			}
			require.ErrorIs(t, err, ErrBadConfig)
		})
	}
}

func TestSphereCfgBuildOrder(t *testing.T) {
	cfg, err := parseConfig([]byte(testConfig), "inline")
	require.NoError(t, err)

	plain, err := cfg.Spheres[0].Build()
	require.NoError(t, err)
	assert.True(t, plain.Transform.Equal(Identity(4)))

	s, err := cfg.Spheres[1].Build()
	require.NoError(t, err)
	want, err := NewTransformBuilder().
		Scale(0.5, 0.5, 0.5).
		Rotate(AxisZ, math.Pi/2).
		Translate(2, 0, 0).
		Build()
	require.NoError(t, err)
	assert.True(t, s.Transform.Equal(want), s.Transform.String())

	// (1,0,0) -> scale (0.5,0,0) -> rotate z (0,0.5,0) -> translate (2,0.5,0)
	p, err := s.Transform.MulTuple(Point(1, 0, 0))
	require.NoError(t, err)
	assert.True(t, p.Equal(Point(2, 0.5, 0)), p.String())
}

func TestConfigScene(t *testing.T) {
	cfg, err := parseConfig([]byte(testConfig), "inline")
	require.NoError(t, err)
	sc, err := cfg.Scene("scene")
	require.NoError(t, err)
	assert.Equal(t, 40, sc.Width)
	assert.Equal(t, 20, sc.Height)
	assert.True(t, sc.Eye.Equal(Point(0, 0, EyeZ)))
	require.Len(t, sc.Objects, 2)
	assert.Equal(t, Red, sc.Objects[0].Colour)
}
