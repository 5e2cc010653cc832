package tether

// updatableEngine is satisfied by engines that do per-tick shape work after
// targets are pushed (StretchSegment does).
type updatableEngine interface {
	Update()
}

// Stage is a minimal host for tethers: it owns a root frame and drives
// registered tethers in a fixed per-tick order. Hosts with their own update
// loop can skip Stage and call Tether.Start and Tether.Tick directly in the
// same order.
//
// Tick order per tether: every end's target is resolved from a consistent
// snapshot of the anchor frames, then the engine consumes the targets.
// Anchor-frame mutation must happen before Tick, never during it. A Stage
// assumes a single logical thread of control.
type Stage struct {
	root    *Frame
	tethers []*Tether
	engines []updatableEngine
	started bool
}

// NewStage creates a stage with a pre-created root frame.
func NewStage() *Stage {
	return &Stage{root: NewFrame("root")}
}

// Root returns the stage's root frame. Anchor frames parented under it share
// one world-transform tree.
func (s *Stage) Root() *Frame {
	return s.root
}

// Add registers a tether with the stage. If the tether's engine does its own
// per-tick update, the stage runs it after resolution. If the stage has
// already started, the tether is started immediately.
func (s *Stage) Add(t *Tether) {
	s.tethers = append(s.tethers, t)
	if u, ok := t.Engine().(updatableEngine); ok {
		s.engines = append(s.engines, u)
	}
	if s.started {
		t.Start()
	}
}

// Start starts every registered tether in registration order. Call once,
// after initial anchors are assigned and before the first Tick.
func (s *Stage) Start() {
	if s.started {
		return
	}
	s.started = true
	for _, t := range s.tethers {
		t.Start()
	}
}

// Tick resolves every tether's targets, then updates every engine. All
// resolution completes before any engine consumes its targets, so engines
// never observe a half-resolved tick.
func (s *Stage) Tick() {
	for _, t := range s.tethers {
		t.Tick()
	}
	for _, e := range s.engines {
		e.Update()
	}
}
