package tether

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FrameTween animates up to 3 float64 values applied to a Frame each update.
// Create one via the convenience constructors (TweenFramePosition,
// TweenFrameScale, TweenFrameRotation) and call Update(dt) each tick, before
// the tether resolution pass so resolved targets see this tick's frame.
//
// There is no global animation manager — hosts call Update themselves.
type FrameTween struct {
	tweens [3]*gween.Tween
	count  int
	target *Frame
	apply  func(f *Frame, v [3]float64)
	Done   bool
}

// Update advances all tweens by dt seconds and applies the values to the
// target frame through its setters (which mark the frame dirty).
func (g *FrameTween) Update(dt float32) {
	if g.Done {
		return
	}
	var vals [3]float64
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	g.apply(g.target, vals)
}

// TweenFramePosition creates a FrameTween that animates the frame's local
// position to the given point over the specified duration using the easing
// function.
func TweenFramePosition(f *Frame, to mgl64.Vec3, duration float32, fn ease.TweenFunc) *FrameTween {
	from := f.Position()
	g := &FrameTween{count: 3, target: f}
	for i := 0; i < 3; i++ {
		g.tweens[i] = gween.New(float32(from[i]), float32(to[i]), duration, fn)
	}
	g.apply = func(f *Frame, v [3]float64) {
		f.SetPosition(mgl64.Vec3{v[0], v[1], v[2]})
	}
	return g
}

// TweenFrameScale creates a FrameTween that animates the frame's local scale
// to the given value over the specified duration using the easing function.
func TweenFrameScale(f *Frame, to mgl64.Vec3, duration float32, fn ease.TweenFunc) *FrameTween {
	from := f.Scale()
	g := &FrameTween{count: 3, target: f}
	for i := 0; i < 3; i++ {
		g.tweens[i] = gween.New(float32(from[i]), float32(to[i]), duration, fn)
	}
	g.apply = func(f *Frame, v [3]float64) {
		f.SetScale(mgl64.Vec3{v[0], v[1], v[2]})
	}
	return g
}

// TweenFrameRotation creates a FrameTween that animates the frame's rotation
// about the given axis from fromAngle to toAngle radians over the specified
// duration. The rotation is rebuilt from the tweened angle each update,
// replacing the frame's current rotation.
func TweenFrameRotation(f *Frame, axis mgl64.Vec3, fromAngle, toAngle float64, duration float32, fn ease.TweenFunc) *FrameTween {
	g := &FrameTween{count: 1, target: f}
	g.tweens[0] = gween.New(float32(fromAngle), float32(toAngle), duration, fn)
	g.apply = func(f *Frame, v [3]float64) {
		f.SetRotation(mgl64.QuatRotate(v[0], axis))
	}
	return g
}
