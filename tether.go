package tether

import (
	"github.com/go-gl/mathgl/mgl64"
)

// NumEnds is the number of segment ends. Ends are indexed 0 and 1; every
// operation taking an end index treats anything else as a silent no-op
// (a warning is printed in debug mode, see SetDebugMode).
const NumEnds = 2

// Tether keeps the two ends of a stretched segment attached to zero, one, or
// two anchor frames. It owns the per-end anchor bookkeeping and pushes a
// resolved world target point and margin into its SegmentEngine each tick;
// the engine does the actual shape work.
//
// A Tether assumes a single logical thread of control: binding operations
// must not run concurrently with Tick on the same instance.
type Tether struct {
	engine SegmentEngine

	anchors   [2]AnchorSource
	margins   [2]float64
	fallbacks [2]mgl64.Vec3 // sticky last-resolved world point per end

	started bool
}

// New creates a Tether driving the given engine. Both ends start unbound
// with the engine's current endpoints as their sticky fallbacks.
func New(engine SegmentEngine) *Tether {
	t := &Tether{engine: engine}
	t.fallbacks[0], t.fallbacks[1] = engine.Endpoints()
	return t
}

// Engine returns the driven SegmentEngine.
func (t *Tether) Engine() SegmentEngine {
	return t.engine
}

// Start captures the engine's current endpoints as fallbacks and runs the
// bind-time correspondence pass for any anchors assigned before startup.
// Hosts call Start once, before the first Tick.
func (t *Tether) Start() {
	if t.started {
		return
	}
	t.started = true
	t.fallbacks[0], t.fallbacks[1] = t.engine.Endpoints()
	t.RefreshOffsets()
}

// Tick resolves both ends' world target points from their anchors' current
// frames and pushes targets and margins into the engine. Per-end work is
// O(1): correspondence was settled at bind time, so each end only re-projects
// its stored offset through the anchor's live frame.
func (t *Tether) Tick() {
	for end := 0; end < NumEnds; end++ {
		p := resolveWorldTarget(t.anchors[end], t.fallbacks[end])
		t.fallbacks[end] = p
		t.engine.SetTargetPoint(end, p)
		t.engine.SetMargin(end, t.margins[end])
	}
}

// ResolveWorldTarget returns the world point end should occupy right now:
// the anchor's stored offset pushed through its current frame, or the sticky
// fallback when the end is unbound. Returns the zero vector for an invalid
// index.
func (t *Tether) ResolveWorldTarget(end int) mgl64.Vec3 {
	if !validEnd(end, "Tether.ResolveWorldTarget") {
		return mgl64.Vec3{}
	}
	return resolveWorldTarget(t.anchors[end], t.fallbacks[end])
}

// DeriveOffsetFromWorldPoint recomputes end's stored offset so that its
// anchor resolves to worldPoint, using the end's currently active offset
// mode. The inactive mode's stored vector is untouched. No-op for an invalid
// index or an unbound end.
func (t *Tether) DeriveOffsetFromWorldPoint(end int, worldPoint mgl64.Vec3) {
	if !validEnd(end, "Tether.DeriveOffsetFromWorldPoint") {
		return
	}
	t.anchors[end].deriveOffset(worldPoint)
}

// Anchor returns a copy of end's anchor state. Returns the unbound variant
// for an invalid index.
func (t *Tether) Anchor(end int) AnchorSource {
	if !validEnd(end, "Tether.Anchor") {
		return Unbound()
	}
	return t.anchors[end]
}

// Margin returns end's current margin. Returns 0 for an invalid index.
func (t *Tether) Margin(end int) float64 {
	if !validEnd(end, "Tether.Margin") {
		return 0
	}
	return t.margins[end]
}

// SetMargin overrides end's margin. No-op for an invalid index.
func (t *Tether) SetMargin(end int, m float64) {
	if !validEnd(end, "Tether.SetMargin") {
		return
	}
	t.margins[end] = m
}

// SetOffsetMode switches end's active offset mode without re-deriving. The
// stored vector for the new mode applies as-is on the next resolution;
// callers that want the switch to preserve the current world point should
// follow with DeriveOffsetFromWorldPoint or RefreshOffsets. No-op for an
// invalid index or an unbound end.
func (t *Tether) SetOffsetMode(end int, mode OffsetMode) {
	if !validEnd(end, "Tether.SetOffsetMode") {
		return
	}
	if !t.anchors[end].Bound() {
		return
	}
	t.anchors[end].SetMode(mode)
}

// TetherEndToFrame binds end to frame with a caller-supplied offset and
// mode, bypassing derivation: the caller asserts the offset is already
// correct. The end keeps its current margin. No-op for an invalid index.
func (t *Tether) TetherEndToFrame(end int, frame *Frame, offset mgl64.Vec3, mode OffsetMode) {
	if !validEnd(end, "Tether.TetherEndToFrame") {
		return
	}
	t.anchors[end] = BoundTo(frame, mode, offset, t.margins[end])
}

// TetherEndToFrameAuto binds end to frame in local mode and derives the
// offset from the end's current engine endpoint — a single-end refresh that
// does not run the two-end correspondence heuristic. No-op for an invalid
// index.
func (t *Tether) TetherEndToFrameAuto(end int, frame *Frame) {
	if !validEnd(end, "Tether.TetherEndToFrameAuto") {
		return
	}
	t.anchors[end] = BoundTo(frame, OffsetLocal, mgl64.Vec3{}, t.margins[end])
	p0, p1 := t.engine.Endpoints()
	if end == 0 {
		t.anchors[end].deriveOffset(p0)
	} else {
		t.anchors[end].deriveOffset(p1)
	}
}

// BindAnchor binds end to a fully specified AnchorSource and adopts the
// anchor's default margin. No-op for an invalid index.
func (t *Tether) BindAnchor(end int, a AnchorSource) {
	if !validEnd(end, "Tether.BindAnchor") {
		return
	}
	t.anchors[end] = a
	if a.Bound() {
		t.margins[end] = a.DefaultMargin()
	}
}

// Untether clears the given ends' anchors; with no arguments both ends are
// cleared. Each cleared end's sticky fallback is set to its current resolved
// world point, so the end stays where it is even if the detached frame moves
// afterward. Invalid indices are skipped.
func (t *Tether) Untether(ends ...int) {
	if len(ends) == 0 {
		ends = []int{0, 1}
	}
	for _, end := range ends {
		if !validEnd(end, "Tether.Untether") {
			continue
		}
		t.fallbacks[end] = resolveWorldTarget(t.anchors[end], t.fallbacks[end])
		t.anchors[end] = Unbound()
	}
}

// TetherEndToWorldPoint forces end to an explicit world point. The end is
// untethered first — explicit points and live-frame tracking are mutually
// exclusive per end — and the point becomes both the engine endpoint and the
// sticky fallback. No-op for an invalid index.
func (t *Tether) TetherEndToWorldPoint(end int, p mgl64.Vec3) {
	if !validEnd(end, "Tether.TetherEndToWorldPoint") {
		return
	}
	t.anchors[end] = Unbound()
	t.fallbacks[end] = p
	t.engine.SetFixedWorldPoint(end, p)
}

// SwapEnds exchanges the two ends' anchors (offsets ride along inside the
// AnchorSource), margins, and sticky fallbacks. The engine's already-resolved
// endpoint values are deliberately left untouched, so the segment keeps its
// in-flight visual position across the swap; the pair of resolved target
// points is unchanged, only their indices trade places.
func (t *Tether) SwapEnds() {
	t.anchors[0], t.anchors[1] = t.anchors[1], t.anchors[0]
	t.margins[0], t.margins[1] = t.margins[1], t.margins[0]
	t.fallbacks[0], t.fallbacks[1] = t.fallbacks[1], t.fallbacks[0]
}
