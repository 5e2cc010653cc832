package tether

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestStageTickResolvesThenUpdatesEngine(t *testing.T) {
	stage := NewStage()

	anchor := NewFrame("anchor")
	stage.Root().AddChild(anchor)

	seg := NewStretchSegment(SegmentConfig{
		Start: mgl64.Vec3{0, 0, 0},
		End:   mgl64.Vec3{10, 0, 0},
	})
	tr := New(seg)
	tr.BindAnchor(0, BoundTo(anchor, OffsetLocal, mgl64.Vec3{}, 0))
	stage.Add(tr)
	stage.Start()

	// Frame mutation happens before Tick; the same tick's endpoints already
	// reflect it because resolution runs before the engine update.
	anchor.SetPosition(mgl64.Vec3{0, 5, 0})
	stage.Tick()

	p0, p1 := seg.Endpoints()
	assertVec3(t, "endpoint 0", p0, mgl64.Vec3{0, 5, 0})
	assertVec3(t, "endpoint 1", p1, mgl64.Vec3{10, 0, 0})
}

func TestStageStartAfterAddStartsTether(t *testing.T) {
	stage := NewStage()
	seg := NewStretchSegment(SegmentConfig{End: mgl64.Vec3{0, 0, 2}})
	tr := New(seg)

	anchor := NewFrame("anchor")
	anchor.SetPosition(mgl64.Vec3{0, 0, 2.1})
	stage.Root().AddChild(anchor)
	// Bound before Start: the correspondence pass must run on Start.
	tr.BindAnchor(0, BoundTo(anchor, OffsetLocal, mgl64.Vec3{}, 0))

	stage.Add(tr)
	stage.Start()

	// Endpoint 1 (0,0,2) is closer to the anchor than endpoint 0: swapped.
	assertVec3(t, "bound target", tr.ResolveWorldTarget(0), mgl64.Vec3{0, 0, 2})
}

func TestStageAddAfterStartStartsImmediately(t *testing.T) {
	stage := NewStage()
	stage.Start()

	seg := NewStretchSegment(SegmentConfig{
		Start: mgl64.Vec3{1, 0, 0},
		End:   mgl64.Vec3{2, 0, 0},
	})
	tr := New(seg)
	stage.Add(tr)

	// Fallbacks were captured by the immediate Start.
	assertVec3(t, "fallback 0", tr.ResolveWorldTarget(0), mgl64.Vec3{1, 0, 0})

	stage.Tick()
	p0, _ := seg.Endpoints()
	assertVec3(t, "endpoint 0", p0, mgl64.Vec3{1, 0, 0})
}

func TestStageParentedAnchorFollowsParentMotion(t *testing.T) {
	stage := NewStage()

	arm := NewFrame("arm")
	stage.Root().AddChild(arm)
	hook := NewFrame("hook")
	hook.SetPosition(mgl64.Vec3{0, -1, 0})
	arm.AddChild(hook)

	seg := NewStretchSegment(SegmentConfig{
		Start: mgl64.Vec3{0, -1, 0},
		End:   mgl64.Vec3{0, -5, 0},
	})
	tr := New(seg)
	tr.BindAnchor(0, BoundTo(hook, OffsetLocal, mgl64.Vec3{}, 0))
	stage.Add(tr)
	stage.Start()

	arm.SetPosition(mgl64.Vec3{3, 0, 0})
	stage.Tick()

	p0, _ := seg.Endpoints()
	assertVec3(t, "endpoint follows parented anchor", p0, mgl64.Vec3{3, -1, 0})
}
