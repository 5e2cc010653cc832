// Package tether keeps the two ends of a stretchy segment attached to
// moving 3D anchor frames without popping.
//
// A segment — a rope, spring, beam, or any shape stretched between two
// points — must span between points near two independently moving,
// rotating, and scaling frames. Tether establishes the correspondence
// between segment ends and anchors at bind time, stores the relationship as
// a persistent offset (frame-local or world-space), and reconstructs each
// end's world target point from the anchor's live frame every tick.
// Bindings can be created, swapped, removed, or partially specified at
// runtime without disturbing the segment's in-flight position.
//
// # Quick start
//
// Create a segment engine, wrap it in a [Tether], bind anchors, and tick:
//
//	seg := tether.NewStretchSegment(tether.SegmentConfig{
//		Start: mgl64.Vec3{0, 0, 0},
//		End:   mgl64.Vec3{0, 5, 0},
//	})
//	t := tether.New(seg)
//
//	hook := tether.NewFrame("hook")
//	t.BindAnchor(0, tether.BoundTo(hook, tether.OffsetLocal, mgl64.Vec3{}, 0.1))
//	t.Start()
//
//	// each tick, after moving frames:
//	t.Tick()
//	seg.Update()
//
// Or let a [Stage] drive the order for you:
//
//	stage := tether.NewStage()
//	stage.Root().AddChild(hook)
//	stage.Add(t)
//	stage.Start()
//	// each tick:
//	stage.Tick()
//
// # Anchors and offsets
//
// An [AnchorSource] is either unbound (the end holds its last known world
// point) or bound to a [Frame] with an offset and a default margin. Offsets
// come in two modes: [OffsetLocal] re-projects the stored vector through the
// frame's full transform each tick, so the tracked point follows rotation
// and scale; [OffsetWorld] adds a fixed world-space delta to the frame's
// origin, which is cheaper and ignores rotation.
//
// [Tether.RefreshOffsets] runs the bind-time correspondence heuristic: each
// endpoint is paired with its nearer anchor, swapping the endpoints when the
// naive index pairing is crossed. After that, per-tick work is O(1) per end.
//
// # Collaborators
//
// The shape work lives behind the [SegmentEngine] interface;
// [StretchSegment] is the bundled reference implementation, applying per-end
// margins and exposing center, axis, and length for renderers. Anchor frames
// are plain [Frame] values — a position/rotation/scale transform with an
// optional parent hierarchy — owned and mutated by the host.
//
// Tether is single-threaded by design: one logical thread of control per
// segment instance, no locks, no blocking operations.
package tether
