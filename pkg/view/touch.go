package view

import (
	"github.com/abhishek776655/Orbital-Mind/pkg/physics"
)

// Touch is one active contact in a per-frame touch snapshot.
type Touch struct {
	ID  int64
	Pos physics.Vec2
}

// TouchTracker folds per-frame touch snapshots into pointer gestures: two
// contacts drive a pinch, one pans or creates, none ends whatever was in
// flight. The frame loop hands it the full contact list every tick; it owns
// the bookkeeping of which contact is the active single pointer.
type TouchTracker struct {
	ptr        *Pointer
	active     bool
	activeID   int64
	last       physics.Vec2
	pinching   bool
	suppressed bool
}

func NewTouchTracker(p *Pointer) *TouchTracker {
	return &TouchTracker{ptr: p}
}

// Frame processes one snapshot of the active contacts.
func (t *TouchTracker) Frame(touches []Touch, bodies []*physics.Body) {
	if len(touches) >= 2 {
		t.ptr.Pinch(touches[0].Pos, touches[1].Pos)
		t.pinching = true
		t.active = false
		return
	}

	if t.pinching {
		t.ptr.PinchEnd()
		t.pinching = false
		t.active = false
		// A finger that stayed down after the pinch never produced a real
		// pointer-down; synthesizing one would restart a pan from a stale
		// anchor or, in create mode, drag out an unwanted body. Ignore it
		// until every contact lifts.
		t.suppressed = len(touches) > 0
		return
	}

	switch len(touches) {
	case 1:
		if t.suppressed {
			return
		}
		c := touches[0]
		if !t.active {
			t.active = true
			t.activeID = c.ID
			t.ptr.Down(c.Pos)
		} else if c.ID == t.activeID {
			t.ptr.Move(c.Pos)
		} else {
			// stream swapped fingers without a release; cancel silently
			t.ptr.Leave()
			t.activeID = c.ID
			t.ptr.Down(c.Pos)
		}
		t.last = c.Pos
	case 0:
		t.suppressed = false
		if t.active {
			t.active = false
			t.ptr.Up(t.last, bodies)
		}
	}
}
