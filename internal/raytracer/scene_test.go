package raytracer

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneRender(t *testing.T) {
	sc := NewScene("tiny", 21, 21)
	sc.Background = White
	sc.Add(NewSphere(), Red)

	c, err := sc.Render(context.Background())
	require.NoError(t, err)
	centre, _ := c.Pixel(10, 10)
	assert.Equal(t, Red, centre)
	corner, _ := c.Pixel(0, 0)
	assert.Equal(t, White, corner)
}

func TestSceneRenderNearestWins(t *testing.T) {
	sc := NewScene("two", 11, 11)
	far := NewSphere()
	require.NoError(t, far.SetTransform(Translation(0, 0, 3)))
	sc.Add(far, Red)
	sc.Add(NewSphere(), Colour{G: 1})

	c, err := sc.Render(context.Background())
	require.NoError(t, err)
	centre, _ := c.Pixel(5, 5)
	assert.Equal(t, Colour{G: 1}, centre)
}

func TestSceneRenderEyeInside(t *testing.T) {
	// from inside the sphere only the exit point counts as a hit
	sc := NewScene("inside", 3, 3)
	sc.Eye = Point(0, 0, 0)
	sc.Add(NewSphere(), Red)
	c, err := sc.Render(context.Background())
	require.NoError(t, err)
	p, _ := c.Pixel(1, 1)
	assert.Equal(t, Red, p)
}

func TestSceneRenderErrors(t *testing.T) {
	sc := NewScene("bad", 0, 5)
	_, err := sc.Render(context.Background())
	require.ErrorIs(t, err, ErrBadShape)

	sc = NewScene("bad-eye", 5, 5)
	sc.Eye = Vector(0, 0, -3)
	_, err = sc.Render(context.Background())
	require.ErrorIs(t, err, ErrInvalidKind)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewScene("cancelled", 5, 5).Render(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRayLogStats(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	RayLogging = true
	t.Cleanup(func() {
		RayLogging = false
		SetLogger(nil)
		resetRayLog()
	})

	resetRayLog()
	sc := NewScene("logged", 40, 30)
	sc.Add(NewSphere(), Red)
	_, err := sc.Render(context.Background())
	require.NoError(t, err)

	hits, misses := RayCounts("logged")
	assert.Equal(t, 40*30, hits+misses)
	assert.Positive(t, hits)
	assert.Positive(t, misses)

	raysStats()
	out := buf.String()
	assert.Contains(t, out, "ray stats")
	assert.Contains(t, out, "name=logged")
	assert.Contains(t, out, "Rendering logged")
}

func TestRayLogGrouping(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	RayLogging = true
	t.Cleanup(func() {
		RayLogging = false
		SetLogger(nil)
		resetRayLog()
	})

	resetRayLog()
	r := mustRay(t, Point(0, 0, 0), Vector(0, 0, 1))
	for i := 0; i < 1234; i++ {
		logRay("many", RayMiss, r, 0)
	}
	raysStats()
	assert.Contains(t, buf.String(), "misses=1,234")
	assert.Equal(t, "miss", RayMiss.String())
}

func TestLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	// default logger is silent
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	DebugLog("value=%d", 42)
	assert.Contains(t, buf.String(), "value=42")

	buf.Reset()
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	DebugLog("hidden")
	assert.Empty(t, buf.String())
}

func TestScenarioList(t *testing.T) {
	var buf bytes.Buffer
	written, err := Run(context.Background(), Options{List: &buf})
	require.NoError(t, err)
	assert.Empty(t, written)
	for _, name := range []string{"projectile", "clock", "sphere", "scene", "script"} {
		assert.Contains(t, buf.String(), name)
	}
}

func TestRunUnknownScenario(t *testing.T) {
	_, err := Run(context.Background(), Options{Name: "teapot"})
	require.ErrorIs(t, err, ErrUnknownScenario)
}

func TestProjectileScenario(t *testing.T) {
	frames, err := projectile{}.Render(context.Background())
	require.NoError(t, err)
	require.Len(t, frames, 1)
	c := frames[0]
	assert.Equal(t, 900, c.Width())
	assert.Equal(t, 550, c.Height())

	plotted := 0
	for _, p := range c.pix {
		if p == Red {
			plotted++
		}
	}
	assert.Greater(t, plotted, 100)
}

func TestClockScenario(t *testing.T) {
	frames, err := clock{}.Render(context.Background())
	require.NoError(t, err)
	require.Len(t, frames, 12)

	// twelve o'clock: (0,0,1) scaled by 3/8*500 around the centre
	p, err := frames[0].Pixel(250, 438)
	require.NoError(t, err)
	assert.Equal(t, Red, p)

	count := func(c *Canvas) int {
		n := 0
		for _, p := range c.pix {
			if p == Red {
				n++
			}
		}
		return n
	}
	assert.Equal(t, 1, count(frames[0]))
	assert.Equal(t, 12, count(frames[11]))
}

func TestRunWritesFormats(t *testing.T) {
	dir := t.TempDir()
	written, err := Run(context.Background(), Options{
		Name:    "clock",
		OutDir:  dir,
		Formats: []string{"ppm", ".GIF", " png ", "pngs"},
	})
	require.NoError(t, err)
	require.Len(t, written, 4)
	for _, f := range []string{"clock.ppm", "clock.gif", "clock.png", "clock_00.png", "clock_11.png"} {
		_, err := os.Stat(filepath.Join(dir, f))
		require.NoError(t, err, f)
	}
}

func TestRunRawAddsToDefaultFormat(t *testing.T) {
	dir := t.TempDir()
	written, err := Run(context.Background(), Options{Name: "sphere", OutDir: dir, Raw: true})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "sphere.ppm"), filepath.Join(dir, "sphere.raw")}, written)
	for _, f := range written {
		_, err := os.Stat(f)
		require.NoError(t, err, f)
	}

	written, err = Run(context.Background(), Options{Name: "sphere", OutDir: dir, Formats: []string{"raw"}, Raw: true})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "sphere.raw")}, written)
}

func TestRunSceneConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := strings.Replace(testConfig, `"width": 40`, `"width": 40, "out": "custom.bmp"`, 1)
	path := filepath.Join(dir, "scene.json")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	written, err := Run(context.Background(), Options{Name: "scene", Input: path, OutDir: dir})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "custom.bmp")}, written)

	written, err = Run(context.Background(), Options{Name: "scene", Input: path, OutDir: dir, Raw: true})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "custom.bmp"), filepath.Join(dir, "custom.raw")}, written)

	_, err = Run(context.Background(), Options{Name: "scene", OutDir: dir})
	require.ErrorIs(t, err, ErrBadConfig)
}

func TestRunScriptScenario(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "balls.js")
	require.NoError(t, os.WriteFile(path, []byte(`canvas(16, 16); sphere([1, 1, 0]);`), 0o644))

	written, err := Run(context.Background(), Options{Name: "script", Input: path, OutDir: dir, Formats: []string{"ppm"}})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "script.ppm")}, written)

	_, err = Run(context.Background(), Options{Name: "script", OutDir: dir})
	require.ErrorIs(t, err, ErrScript)

	_, err = Run(context.Background(), Options{Name: "script", Input: filepath.Join(dir, "missing.js"), OutDir: dir})
	require.True(t, errors.Is(err, os.ErrNotExist))
}
