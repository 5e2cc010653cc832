package tether

// RefreshOffsets runs the bind-time correspondence pass: it decides which
// engine endpoint pairs with which bound anchor, swaps the endpoints when
// the naive index pairing is geometrically wrong, and re-derives each bound
// end's offset from its (possibly swapped) endpoint. Ends then adopt their
// anchor's default margin; unbound ends keep their margin and sticky
// fallback untouched.
//
// Hosts call this once per (re)binding event, not per tick.
func (t *Tether) RefreshOffsets() {
	p0, p1 := t.engine.Endpoints()
	b0 := t.anchors[0].Bound()
	b1 := t.anchors[1].Bound()

	switch {
	case !b0 && !b1:
		return

	case b0 && b1:
		// Pair each endpoint with its nearer anchor by checking endpoint 0
		// only: if it is strictly closer to anchor 1 than to anchor 0, the
		// points are crossed — swap them. The symmetric condition on
		// endpoint 1 is assumed consistent and not re-checked.
		d0 := t.anchors[0].DistanceToWorldPoint(p0)
		d1 := t.anchors[1].DistanceToWorldPoint(p0)
		if d0 == d1 {
			debugWarnDegenerate("Tether.RefreshOffsets")
		}
		if d1 < d0 {
			t.swapEndpoints()
			p0, p1 = p1, p0
		}

	default:
		// One anchor. The naive assumption is that the bound end's current
		// point tracks the anchor. If the unbound end's point is strictly
		// closer to the anchor, that assumption is wrong — swap the
		// endpoints (the anchor keeps its end index) so the closer point is
		// the tracked one. Equal distances keep the original assignment.
		bound := 0
		if b1 {
			bound = 1
		}
		boundPt, otherPt := p0, p1
		if bound == 1 {
			boundPt, otherPt = p1, p0
		}
		dBound := t.anchors[bound].DistanceToWorldPoint(boundPt)
		dOther := t.anchors[bound].DistanceToWorldPoint(otherPt)
		if dBound == dOther {
			debugWarnDegenerate("Tether.RefreshOffsets")
		}
		if dOther < dBound {
			t.swapEndpoints()
			p0, p1 = p1, p0
		}
	}

	if b0 {
		t.anchors[0].deriveOffset(p0)
		t.margins[0] = t.anchors[0].DefaultMargin()
	}
	if b1 {
		t.anchors[1].deriveOffset(p1)
		t.margins[1] = t.anchors[1].DefaultMargin()
	}
}

// swapEndpoints exchanges the engine's endpoint values and the tether's
// sticky fallbacks together. The fallbacks must ride along: an unbound end's
// next resolution reads its fallback, which has to name the post-swap point,
// not the point the bound end now tracks.
func (t *Tether) swapEndpoints() {
	t.engine.SwapEndpoints()
	t.fallbacks[0], t.fallbacks[1] = t.fallbacks[1], t.fallbacks[0]
}
