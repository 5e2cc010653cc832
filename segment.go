package tether

import (
	"github.com/go-gl/mathgl/mgl64"
)

// SegmentEngine is the rendering-side collaborator that owns the two world
// endpoints of the stretched segment. A Tether pushes a desired target point
// and margin per end each tick; the engine decides how to turn the two
// points into an actual shape.
//
// End indices are 0 and 1. Implementations must treat any other index as a
// no-op.
type SegmentEngine interface {
	// Endpoints returns the current world positions of the two segment ends.
	Endpoints() (mgl64.Vec3, mgl64.Vec3)
	// SetTargetPoint sets the world point end should stretch toward.
	// Consumed by the engine's next Update.
	SetTargetPoint(end int, p mgl64.Vec3)
	// SetMargin sets the distance end is pulled back from its raw target.
	SetMargin(end int, m float64)
	// SwapEndpoints exchanges the stored endpoint values between indices.
	SwapEndpoints()
	// SetFixedWorldPoint forces an endpoint to a world position immediately,
	// irrespective of tethering.
	SetFixedWorldPoint(end int, p mgl64.Vec3)
}

// SegmentConfig configures a StretchSegment.
type SegmentConfig struct {
	// Initial endpoint positions.
	Start, End mgl64.Vec3

	// Per-end pull-back distance from the raw target point.
	Margins [2]float64

	// Rendered thickness hint for consumers. Not used by the geometry.
	Width float64
}

// StretchSegment is the reference SegmentEngine: it stores two endpoints,
// applies per-end margins along the segment axis on Update, and exposes the
// derived center, axis, and length for renderers to build a transform from.
type StretchSegment struct {
	endpoints [2]mgl64.Vec3
	targets   [2]mgl64.Vec3
	margins   [2]float64
	width     float64

	// Derived by Update.
	center mgl64.Vec3
	axis   mgl64.Vec3
	length float64
}

// NewStretchSegment creates a segment spanning cfg.Start to cfg.End.
func NewStretchSegment(cfg SegmentConfig) *StretchSegment {
	s := &StretchSegment{
		endpoints: [2]mgl64.Vec3{cfg.Start, cfg.End},
		targets:   [2]mgl64.Vec3{cfg.Start, cfg.End},
		margins:   cfg.Margins,
		width:     cfg.Width,
	}
	s.recompute()
	return s
}

// Endpoints returns the current world positions of the two ends.
func (s *StretchSegment) Endpoints() (mgl64.Vec3, mgl64.Vec3) {
	return s.endpoints[0], s.endpoints[1]
}

// Endpoint returns one end's current world position. Returns the zero vector
// for an invalid index.
func (s *StretchSegment) Endpoint(end int) mgl64.Vec3 {
	if !validEnd(end, "StretchSegment.Endpoint") {
		return mgl64.Vec3{}
	}
	return s.endpoints[end]
}

// SetTargetPoint sets the world point end stretches toward on the next
// Update. No-op for an invalid index.
func (s *StretchSegment) SetTargetPoint(end int, p mgl64.Vec3) {
	if !validEnd(end, "StretchSegment.SetTargetPoint") {
		return
	}
	s.targets[end] = p
}

// SetMargin sets end's pull-back distance. No-op for an invalid index.
func (s *StretchSegment) SetMargin(end int, m float64) {
	if !validEnd(end, "StretchSegment.SetMargin") {
		return
	}
	s.margins[end] = m
}

// Margin returns end's pull-back distance. Returns 0 for an invalid index.
func (s *StretchSegment) Margin(end int) float64 {
	if !validEnd(end, "StretchSegment.Margin") {
		return 0
	}
	return s.margins[end]
}

// SwapEndpoints exchanges the stored endpoint and target values between
// indices 0 and 1.
func (s *StretchSegment) SwapEndpoints() {
	s.endpoints[0], s.endpoints[1] = s.endpoints[1], s.endpoints[0]
	s.targets[0], s.targets[1] = s.targets[1], s.targets[0]
	s.recompute()
}

// SetFixedWorldPoint forces an endpoint (and its pending target) to p
// immediately. No-op for an invalid index.
func (s *StretchSegment) SetFixedWorldPoint(end int, p mgl64.Vec3) {
	if !validEnd(end, "StretchSegment.SetFixedWorldPoint") {
		return
	}
	s.endpoints[end] = p
	s.targets[end] = p
	s.recompute()
}

// Update moves the endpoints to the current targets with margins applied and
// recomputes the derived transform values. Each end is pulled back from its
// raw target toward the opposite target by its margin; when the two targets
// coincide the margins are skipped (no axis to pull along).
func (s *StretchSegment) Update() {
	dir := s.targets[1].Sub(s.targets[0])
	span := dir.Len()
	if span <= epsilon {
		s.endpoints = s.targets
		s.recompute()
		return
	}
	unit := dir.Mul(1 / span)
	s.endpoints[0] = s.targets[0].Add(unit.Mul(s.margins[0]))
	s.endpoints[1] = s.targets[1].Sub(unit.Mul(s.margins[1]))
	s.recompute()
}

// recompute refreshes center, axis, and length from the endpoints.
func (s *StretchSegment) recompute() {
	d := s.endpoints[1].Sub(s.endpoints[0])
	s.length = d.Len()
	s.center = s.endpoints[0].Add(d.Mul(0.5))
	if s.length > epsilon {
		s.axis = d.Mul(1 / s.length)
	} else {
		s.axis = mgl64.Vec3{}
	}
}

// Center returns the midpoint between the two endpoints.
func (s *StretchSegment) Center() mgl64.Vec3 {
	return s.center
}

// Axis returns the unit vector from end 0 to end 1, or the zero vector for a
// degenerate (zero-length) segment.
func (s *StretchSegment) Axis() mgl64.Vec3 {
	return s.axis
}

// Length returns the distance between the two endpoints.
func (s *StretchSegment) Length() float64 {
	return s.length
}

// Width returns the configured thickness hint.
func (s *StretchSegment) Width() float64 {
	return s.width
}

// Orientation returns a rotation carrying the +Y axis onto the segment axis,
// for renderers that model the stretched shape as a unit-height body scaled
// to Length. Returns the identity for a degenerate segment.
func (s *StretchSegment) Orientation() mgl64.Quat {
	if s.length <= epsilon {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatBetweenVectors(mgl64.Vec3{0, 1, 0}, s.axis)
}

// epsilon guards divisions by near-zero segment spans.
const epsilon = 1e-12
