package paintcore

import "time"

// UndoState is one entry in an UndoStack's history: a description, a
// monotonic sequence number, a wall-clock timestamp (seconds since
// epoch), and a deep-copied per-layer pixel snapshot. A snapshot carries
// no layer metadata (name, opacity, blend mode) — undo restores pixel
// state only.
type UndoState struct {
	Description string
	Sequence    uint64
	Timestamp   int64
	Snapshots   []*TileGrid
}

// UndoStack is a bounded, branch-truncating history of per-layer pixel
// snapshots, kept as two stacks: past holds checkpoints behind the live
// canvas, future holds checkpoints ahead of it.
//
// Push records a checkpoint at stroke begin and discards any future
// branch (a new action invalidates whatever was undone). Undo and Redo
// both take the live grids as an argument: each pops a checkpoint off
// one stack, pushes the caller's current live state onto the other so
// the trip can be reversed, and returns the popped checkpoint. Neither
// call drains the stack it pops from — repeated calls walk further
// through history.
//
// This is a plain bounded slice pair, not an access-time LRU cache: the
// eviction policy here is strict push order, which a recency-based cache
// would misrepresent.
type UndoStack struct {
	past         []UndoState
	future       []UndoState
	maxStates    int
	nextSequence uint64
	clock        func() int64
}

// UndoStackOption configures an UndoStack at construction time.
type UndoStackOption func(*UndoStack)

// WithMaxStates sets the undo stack's history ceiling. Non-positive
// values are ignored (the default of 50 is kept).
func WithMaxStates(n int) UndoStackOption {
	return func(s *UndoStack) {
		if n > 0 {
			s.maxStates = n
		}
	}
}

// WithClock overrides the stack's time source, used to stamp UndoState
// timestamps. Intended for deterministic tests.
func WithClock(clock func() int64) UndoStackOption {
	return func(s *UndoStack) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewUndoStack constructs an empty UndoStack with a default history
// ceiling of 50 states.
func NewUndoStack(opts ...UndoStackOption) *UndoStack {
	s := &UndoStack{
		maxStates: 50,
		clock:     func() int64 { return time.Now().Unix() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Push deep-copies every grid in layers into a new UndoState with the
// given description, discarding any future (redo) branch and evicting
// the oldest past states if the ceiling is exceeded.
func (s *UndoStack) Push(description string, layers []*TileGrid) {
	s.future = nil

	s.nextSequence++
	s.past = append(s.past, UndoState{
		Description: description,
		Sequence:    s.nextSequence,
		Timestamp:   s.clock(),
		Snapshots:   cloneSnapshots(layers),
	})

	if len(s.past) > s.maxStates {
		evict := len(s.past) - s.maxStates
		Logger().Warn("undo history evicted", "count", evict, "max_states", s.maxStates)
		s.past = s.past[evict:]
	}
}

// CanUndo reports whether Undo would return a state.
func (s *UndoStack) CanUndo() bool {
	return len(s.past) > 0
}

// CanRedo reports whether Redo would return a state.
func (s *UndoStack) CanRedo() bool {
	return len(s.future) > 0
}

// Undo pops the most recent past checkpoint, pushes current onto the
// future branch so a later Redo can return to it, and returns deep
// copies of the popped checkpoint's snapshots. If !CanUndo, returns nil
// without touching current.
func (s *UndoStack) Undo(current []*TileGrid) []*TileGrid {
	if !s.CanUndo() {
		return nil
	}
	n := len(s.past)
	top := s.past[n-1]
	s.past = s.past[:n-1]
	s.future = append(s.future, UndoState{
		Description: top.Description,
		Sequence:    top.Sequence,
		Timestamp:   top.Timestamp,
		Snapshots:   cloneSnapshots(current),
	})
	return cloneSnapshots(top.Snapshots)
}

// Redo pops the most recent future checkpoint, pushes current back onto
// the past branch so a later Undo can return to it, and returns deep
// copies of the popped checkpoint's snapshots. If !CanRedo, returns nil
// without touching current.
func (s *UndoStack) Redo(current []*TileGrid) []*TileGrid {
	if !s.CanRedo() {
		return nil
	}
	n := len(s.future)
	top := s.future[n-1]
	s.future = s.future[:n-1]
	s.past = append(s.past, UndoState{
		Description: top.Description,
		Sequence:    top.Sequence,
		Timestamp:   top.Timestamp,
		Snapshots:   cloneSnapshots(current),
	})
	return cloneSnapshots(top.Snapshots)
}

func cloneSnapshots(snaps []*TileGrid) []*TileGrid {
	out := make([]*TileGrid, len(snaps))
	for i, g := range snaps {
		out[i] = g.Clone()
	}
	return out
}

// StateCount returns the total number of states currently tracked,
// across both the past and future branches.
func (s *UndoStack) StateCount() int {
	return len(s.past) + len(s.future)
}

// CurrentIndex returns the number of checkpoints behind the live
// canvas (the size of the past branch).
func (s *UndoStack) CurrentIndex() int {
	return len(s.past)
}

// UndoDescription returns the description of the state Undo would
// restore, or "" if CanUndo is false.
func (s *UndoStack) UndoDescription() string {
	if !s.CanUndo() {
		return ""
	}
	return s.past[len(s.past)-1].Description
}

// RedoDescription returns the description of the state Redo would
// restore, or "" if CanRedo is false.
func (s *UndoStack) RedoDescription() string {
	if !s.CanRedo() {
		return ""
	}
	return s.future[len(s.future)-1].Description
}

// Clear empties both branches of the history.
func (s *UndoStack) Clear() {
	s.past = nil
	s.future = nil
}

// SetMaxStates updates the history ceiling. Per the documented behavior,
// this does not immediately trim any existing states past the new
// ceiling — eviction only happens on the next Push.
func (s *UndoStack) SetMaxStates(n int) {
	if n > 0 {
		s.maxStates = n
	}
}
