package tether

import (
	"github.com/go-gl/mathgl/mgl64"
)

// OffsetMode selects how a segment end's offset is stored relative to its
// anchor frame.
type OffsetMode uint8

const (
	// OffsetLocal stores the offset in the anchor frame's local space. The
	// resolved point follows the frame through translation, rotation, and
	// scale.
	OffsetLocal OffsetMode = iota
	// OffsetWorld stores the offset as a world-space delta from the frame's
	// origin. Moving the frame translates the resolved point by the same
	// delta; rotation and scale of the frame do not re-project the offset.
	// Cheaper than OffsetLocal and order-dependent.
	OffsetWorld
)

// anchorKind discriminates the AnchorSource variant.
type anchorKind uint8

const (
	anchorUnbound anchorKind = iota
	anchorBound
)

// AnchorSource is what a segment end is tethered to: either nothing (the end
// holds its last known world point), or a live Frame with an offset and a
// default margin.
//
// Both offset modes keep their stored vectors at all times; exactly one mode
// is active and applied during resolution. Switching modes activates the
// other stored vector as-is — callers that want the switch to preserve the
// current world point should re-derive afterward (Tether.RefreshOffsets or
// Tether.DeriveOffsetFromWorldPoint).
type AnchorSource struct {
	kind  anchorKind
	frame *Frame
	mode  OffsetMode

	localOffset mgl64.Vec3
	worldOffset mgl64.Vec3

	margin float64
}

// Unbound returns the unbound anchor variant.
func Unbound() AnchorSource {
	return AnchorSource{kind: anchorUnbound}
}

// BoundTo returns an anchor bound to frame with the given active mode,
// offset for that mode, and default margin.
func BoundTo(frame *Frame, mode OffsetMode, offset mgl64.Vec3, margin float64) AnchorSource {
	a := AnchorSource{
		kind:   anchorBound,
		frame:  frame,
		mode:   mode,
		margin: margin,
	}
	switch mode {
	case OffsetWorld:
		a.worldOffset = offset
	default:
		a.localOffset = offset
	}
	return a
}

// Bound reports whether the anchor references a live frame.
func (a AnchorSource) Bound() bool {
	return a.kind == anchorBound
}

// Frame returns the anchored frame, or nil for the unbound variant.
func (a AnchorSource) Frame() *Frame {
	if a.kind != anchorBound {
		return nil
	}
	return a.frame
}

// Mode returns the active offset mode.
func (a AnchorSource) Mode() OffsetMode {
	return a.mode
}

// SetMode switches the active offset mode. The stored vector for the newly
// active mode is applied as-is on the next resolution; the previously active
// vector is retained.
func (a *AnchorSource) SetMode(mode OffsetMode) {
	a.mode = mode
}

// Offset returns the stored offset vector for the active mode.
func (a AnchorSource) Offset() mgl64.Vec3 {
	if a.mode == OffsetWorld {
		return a.worldOffset
	}
	return a.localOffset
}

// SetOffsets stores both mode's offset vectors at once. Only the active
// mode's vector is applied during resolution.
func (a *AnchorSource) SetOffsets(local, world mgl64.Vec3) {
	a.localOffset = local
	a.worldOffset = world
}

// DefaultMargin returns the margin a segment end adopts when it binds to
// this anchor.
func (a AnchorSource) DefaultMargin() float64 {
	return a.margin
}

// DistanceToWorldPoint returns the distance from the anchor frame's world
// origin to p. Returns 0 for the unbound variant.
func (a AnchorSource) DistanceToWorldPoint(p mgl64.Vec3) float64 {
	if a.kind != anchorBound {
		return 0
	}
	return a.frame.DistanceToWorldPoint(p)
}
