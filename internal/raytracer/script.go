package raytracer

import (
	"context"
	"errors"
	"fmt"

	"github.com/dop251/goja"
)

// ScriptEngine builds scenes from JavaScript. A script describes one scene
// through these globals:
//
//	canvas(w, h)
//	eye(x, y, z)
//	wall(z, size)
//	background([r, g, b])
//	translation(x, y, z), scaling(x, y, z)
//	rotationX(rad), rotationY(rad), rotationZ(rad), radians(deg)
//	shearing(xy, xz, yx, yz, zx, zy)
//	sphere([r, g, b], m1, m2, ...)  // m1 acts first
type ScriptEngine struct {
	vm    *goja.Runtime
	scene *Scene
}

func NewScriptEngine(name string) *ScriptEngine {
	e := &ScriptEngine{vm: goja.New(), scene: NewScene(name, CanvasW, CanvasH)}
	e.register()
	return e
}

// throw raises err as a JavaScript exception.
func (e *ScriptEngine) throw(err error) {
	panic(e.vm.NewGoError(err))
}

func (e *ScriptEngine) floats(call goja.FunctionCall, n int) []Real {
	if len(call.Arguments) < n {
		e.throw(fmt.Errorf("expected %d arguments, got %d", n, len(call.Arguments)))
	}
	out := make([]Real, n)
	for i := range out {
		out[i] = call.Argument(i).ToFloat()
	}
	return out
}

func (e *ScriptEngine) colour(v goja.Value) Colour {
	if goja.IsUndefined(v) || goja.IsNull(v) {
		e.throw(errors.New("colour must be an [r, g, b] array"))
	}
	o := v.ToObject(e.vm)
	return Colour{
		R: o.Get("0").ToFloat(),
		G: o.Get("1").ToFloat(),
		B: o.Get("2").ToFloat(),
	}
}

func (e *ScriptEngine) matrix(v goja.Value) *Matrix {
	m, ok := v.Export().(*Matrix)
	if !ok || m == nil {
		e.throw(fmt.Errorf("%s is not a transform", v.String()))
	}
	return m
}

func (e *ScriptEngine) set(name string, fn func(goja.FunctionCall) goja.Value) {
	if err := e.vm.Set(name, fn); err != nil {
		panic(err)
	}
}

func (e *ScriptEngine) register() {
	e.set("canvas", func(call goja.FunctionCall) goja.Value {
		a := e.floats(call, 2)
		e.scene.Width, e.scene.Height = int(a[0]), int(a[1])
		return goja.Undefined()
	})
	e.set("eye", func(call goja.FunctionCall) goja.Value {
		a := e.floats(call, 3)
		e.scene.Eye = Point(a[0], a[1], a[2])
		return goja.Undefined()
	})
	e.set("wall", func(call goja.FunctionCall) goja.Value {
		a := e.floats(call, 2)
		e.scene.WallZ, e.scene.WallSize = a[0], a[1]
		return goja.Undefined()
	})
	e.set("background", func(call goja.FunctionCall) goja.Value {
		e.scene.Background = e.colour(call.Argument(0))
		return goja.Undefined()
	})
	e.set("radians", func(call goja.FunctionCall) goja.Value {
		return e.vm.ToValue(Radians(e.floats(call, 1)[0]))
	})
	e.set("translation", func(call goja.FunctionCall) goja.Value {
		a := e.floats(call, 3)
		return e.vm.ToValue(Translation(a[0], a[1], a[2]))
	})
	e.set("scaling", func(call goja.FunctionCall) goja.Value {
		a := e.floats(call, 3)
		return e.vm.ToValue(Scaling(a[0], a[1], a[2]))
	})
	for name, axis := range map[string]Axis{"rotationX": AxisX, "rotationY": AxisY, "rotationZ": AxisZ} {
		e.set(name, func(call goja.FunctionCall) goja.Value {
			return e.vm.ToValue(Rotation(axis, e.floats(call, 1)[0]))
		})
	}
	e.set("shearing", func(call goja.FunctionCall) goja.Value {
		a := e.floats(call, 6)
		return e.vm.ToValue(Shearing(Shear{XY: a[0], XZ: a[1], YX: a[2], YZ: a[3], ZX: a[4], ZY: a[5]}))
	})
	e.set("sphere", func(call goja.FunctionCall) goja.Value {
		col := e.colour(call.Argument(0))
		s := NewSphere()
		if len(call.Arguments) > 1 {
			b := NewTransformBuilder()
			for _, v := range call.Arguments[1:] {
				b.Add(e.matrix(v))
			}
			m, err := b.Build()
			if err != nil {
				e.throw(err)
			}
			if _, err := m.Inverse(); err != nil {
				e.throw(err)
			}
			s.Transform = m
		}
		e.scene.Add(s, col)
		return e.vm.ToValue(len(e.scene.Objects))
	})
}

// Run executes src and returns the scene it built. Cancelling ctx
// interrupts the script and Run returns the context's error.
func (e *ScriptEngine) Run(ctx context.Context, src string) (*Scene, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan struct{})
	defer close(done)
	defer e.vm.ClearInterrupt()

	go func() {
		select {
		case <-ctx.Done():
			e.vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	if _, err := e.vm.RunString(src); err != nil {
		var interrupted *goja.InterruptedError
		if errors.As(err, &interrupted) {
			if cause := interrupted.Unwrap(); cause != nil {
				return nil, cause
			}
			return nil, context.Canceled
		}
		return nil, fmt.Errorf("%w: %v", ErrScript, err)
	}
	if len(e.scene.Objects) == 0 {
		return nil, fmt.Errorf("%w: script added no spheres", ErrScript)
	}
	DebugLog("Script built scene %s: %dx%d, %d sphere(s)", e.scene.Name, e.scene.Width, e.scene.Height, len(e.scene.Objects))
	return e.scene, nil
}

// RunScript builds a scene named "script" from src on a fresh engine.
func RunScript(ctx context.Context, src string) (*Scene, error) {
	return NewScriptEngine("script").Run(ctx, src)
}
