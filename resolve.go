package tether

import (
	"github.com/go-gl/mathgl/mgl64"
)

// resolveWorldTarget converts an anchor's stored offset and live frame into
// the world point its segment end should occupy. Unbound anchors resolve to
// the sticky fallback. Pure; called once per end per tick.
//
// Local mode: frame.TransformPoint(-localOffset) — the offset is stored as
// the inverse-transformed negated target, so pushing the negation back
// through the frame's forward transform reproduces the target.
// World mode: frame origin + worldOffset.
func resolveWorldTarget(a AnchorSource, fallback mgl64.Vec3) mgl64.Vec3 {
	if !a.Bound() {
		return fallback
	}
	if a.mode == OffsetWorld {
		return a.frame.WorldPosition().Add(a.worldOffset)
	}
	return a.frame.TransformPoint(a.localOffset.Mul(-1))
}

// deriveOffset computes and stores the offset that makes worldPoint the
// anchor's resolved target, for the active mode only. The inactive mode's
// stored vector is left untouched so a later mode switch can still reach it.
// No-op for unbound anchors.
func (a *AnchorSource) deriveOffset(worldPoint mgl64.Vec3) {
	if !a.Bound() {
		return
	}
	if a.mode == OffsetWorld {
		a.worldOffset = worldPoint.Sub(a.frame.WorldPosition())
		return
	}
	a.localOffset = a.frame.InverseTransformPoint(worldPoint).Mul(-1)
}
