package raytracer

import (
	"context"
	"fmt"
)

// SceneObject is a world object drawn in a flat colour.
type SceneObject struct {
	Shape  Object
	Colour Colour
}

// Scene is a pinhole eye looking down +z at a square wall. Every canvas
// pixel maps to one point on the wall; a pixel takes the colour of the
// nearest object hit by the ray from the eye through that point.
type Scene struct {
	Name       string
	Width      int
	Height     int
	Eye        Tuple
	WallZ      Real
	WallSize   Real
	Background Colour
	Objects    []SceneObject
}

// NewScene returns a scene with the default eye and wall.
func NewScene(name string, width, height int) *Scene {
	return &Scene{
		Name:     name,
		Width:    width,
		Height:   height,
		Eye:      Point(0, 0, EyeZ),
		WallZ:    WallZ,
		WallSize: WallSize,
	}
}

func (s *Scene) Add(shape Object, col Colour) {
	s.Objects = append(s.Objects, SceneObject{Shape: shape, Colour: col})
}

// rayAt returns the ray from the eye through the wall point of pixel (x, y).
// The longer canvas side spans WallSize; y grows downwards.
func (s *Scene) rayAt(x, y int) (Ray, error) {
	pixelSize := s.WallSize / Real(max(s.Width, s.Height))
	halfW := pixelSize * Real(s.Width) / 2
	halfH := pixelSize * Real(s.Height) / 2
	wx := -halfW + pixelSize*(Real(x)+0.5)
	wy := halfH - pixelSize*(Real(y)+0.5)

	target := Point(wx, wy, s.WallZ)
	d, err := target.Sub(s.Eye)
	if err != nil {
		return Ray{}, err
	}
	d, err = d.Normalize()
	if err != nil {
		return Ray{}, err
	}
	return NewRay(s.Eye, d)
}

// Render casts one ray per pixel. ctx is checked once per row.
func (s *Scene) Render(ctx context.Context) (*Canvas, error) {
	if !s.Eye.IsPoint() {
		return nil, opErrorf("Scene.Render", fmt.Errorf("eye is a %s: %w", s.Eye.Kind, ErrInvalidKind))
	}
	c, err := NewCanvas(s.Width, s.Height)
	if err != nil {
		return nil, opErrorf("Scene.Render", err)
	}
	c.Fill(s.Background)

	colours := make(map[uint64]Colour, len(s.Objects))
	shapes := make([]Object, len(s.Objects))
	for i, o := range s.Objects {
		colours[o.Shape.ID()] = o.Colour
		shapes[i] = o.Shape
	}
	DebugLog("Rendering %s: %dx%d, %d object(s)", s.Name, s.Width, s.Height, len(shapes))

	for y := 0; y < s.Height; y++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for x := 0; x < s.Width; x++ {
			r, err := s.rayAt(x, y)
			if err != nil {
				return nil, opErrorf("Scene.Render", err)
			}
			xs, err := IntersectAll(r, shapes...)
			if err != nil {
				return nil, opErrorf("Scene.Render", err)
			}
			hit, ok := Hit(xs)
			if !ok {
				logRay(s.Name, RayMiss, r, 0)
				continue
			}
			DebugLogOnce("First hit: %s at t=%f, pixel (%d, %d)", hit.Object, hit.T, x, y)
			logRay(s.Name, RayHit, r, hit.T)
			c.pix[y*c.w+x] = colours[hit.Object.ID()]
		}
	}
	return c, nil
}
