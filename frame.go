package tether

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Frame is a live 3D reference frame: position, rotation, and non-uniform
// scale, optionally parented to another Frame. Frames form a tree; a child's
// world transform is its parent's world transform composed with its local TRS.
//
// World matrices are cached and recomputed lazily: setters mark the frame and
// its descendants dirty, and the next world-space query walks up to the
// nearest clean ancestor. Frames are not safe for concurrent use.
type Frame struct {
	Name string

	Parent   *Frame
	children []*Frame

	// Local transform.
	position mgl64.Vec3
	rotation mgl64.Quat
	scale    mgl64.Vec3

	// Computed world-space matrices, valid while worldDirty is false.
	world        mgl64.Mat4
	worldInverse mgl64.Mat4
	worldDirty   bool
}

// NewFrame creates a detached identity frame: position at the origin, no
// rotation, scale (1, 1, 1).
func NewFrame(name string) *Frame {
	return &Frame{
		Name:       name,
		rotation:   mgl64.QuatIdent(),
		scale:      mgl64.Vec3{1, 1, 1},
		worldDirty: true,
	}
}

// --- Local transform properties ---

// Position returns the frame's local position.
func (f *Frame) Position() mgl64.Vec3 {
	return f.position
}

// SetPosition sets the frame's local position and marks its subtree dirty.
func (f *Frame) SetPosition(p mgl64.Vec3) {
	f.position = p
	markSubtreeDirty(f)
}

// Rotation returns the frame's local rotation.
func (f *Frame) Rotation() mgl64.Quat {
	return f.rotation
}

// SetRotation sets the frame's local rotation and marks its subtree dirty.
func (f *Frame) SetRotation(q mgl64.Quat) {
	f.rotation = q
	markSubtreeDirty(f)
}

// Scale returns the frame's local scale.
func (f *Frame) Scale() mgl64.Vec3 {
	return f.scale
}

// SetScale sets the frame's local (possibly non-uniform) scale and marks its
// subtree dirty.
func (f *Frame) SetScale(s mgl64.Vec3) {
	f.scale = s
	markSubtreeDirty(f)
}

// Translate moves the frame's local position by delta.
func (f *Frame) Translate(delta mgl64.Vec3) {
	f.position = f.position.Add(delta)
	markSubtreeDirty(f)
}

// MarkDirty marks the frame's subtree for world-matrix recomputation on the
// next world-space query. The setters mark dirty themselves; hosts only need
// this when they cache Frame pointers across structural changes they made
// elsewhere.
func (f *Frame) MarkDirty() {
	markSubtreeDirty(f)
}

// --- World-space queries ---

// localMatrix composes the local TRS matrix: Translate * Rotate * Scale.
func (f *Frame) localMatrix() mgl64.Mat4 {
	m := mgl64.Translate3D(f.position.X(), f.position.Y(), f.position.Z())
	m = m.Mul4(f.rotation.Mat4())
	return m.Mul4(mgl64.Scale3D(f.scale.X(), f.scale.Y(), f.scale.Z()))
}

// worldMatrix returns the frame's cached world matrix, recomputing it (and any
// dirty ancestors) first.
func (f *Frame) worldMatrix() mgl64.Mat4 {
	if f.worldDirty {
		local := f.localMatrix()
		if f.Parent != nil {
			f.world = f.Parent.worldMatrix().Mul4(local)
		} else {
			f.world = local
		}
		f.worldInverse = f.world.Inv()
		f.worldDirty = false
	}
	return f.world
}

// worldInverseMatrix returns the cached inverse world matrix.
func (f *Frame) worldInverseMatrix() mgl64.Mat4 {
	f.worldMatrix()
	return f.worldInverse
}

// WorldPosition returns the frame's origin in world space.
func (f *Frame) WorldPosition() mgl64.Vec3 {
	m := f.worldMatrix()
	return mgl64.Vec3{m[12], m[13], m[14]}
}

// TransformPoint maps a point from the frame's local space to world space,
// honoring position, rotation, and scale.
func (f *Frame) TransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return f.worldMatrix().Mul4x1(p.Vec4(1)).Vec3()
}

// InverseTransformPoint maps a world-space point into the frame's local space.
func (f *Frame) InverseTransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return f.worldInverseMatrix().Mul4x1(p.Vec4(1)).Vec3()
}

// DistanceToWorldPoint returns the distance from the frame's world origin to
// the given world-space point.
func (f *Frame) DistanceToWorldPoint(p mgl64.Vec3) float64 {
	return p.Sub(f.WorldPosition()).Len()
}

// --- Tree manipulation ---

// AddChild parents child under this frame. If child already has a parent, it
// is removed from that parent first. Panics if child is nil or child is an
// ancestor of this frame (cycle).
func (f *Frame) AddChild(child *Frame) {
	if child == nil {
		panic("tether: cannot add nil child frame")
	}
	if isAncestor(child, f) {
		panic("tether: adding child frame would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = f
	f.children = append(f.children, child)
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this frame.
// Panics if child.Parent != f.
func (f *Frame) RemoveChild(child *Frame) {
	if child.Parent != f {
		panic("tether: child frame's parent is not this frame")
	}
	f.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this frame from its parent.
// No-op if the frame has no parent.
func (f *Frame) RemoveFromParent() {
	if f.Parent == nil {
		return
	}
	f.Parent.RemoveChild(f)
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (f *Frame) Children() []*Frame {
	return f.children
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of frame.
func isAncestor(candidate, frame *Frame) bool {
	for p := frame; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from f.children without clearing
// child.Parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (f *Frame) removeChildByPtr(child *Frame) {
	for i, c := range f.children {
		if c == child {
			copy(f.children[i:], f.children[i+1:])
			f.children[len(f.children)-1] = nil
			f.children = f.children[:len(f.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets worldDirty on frame and all its descendants.
func markSubtreeDirty(frame *Frame) {
	frame.worldDirty = true
	for _, child := range frame.children {
		markSubtreeDirty(child)
	}
}
