package view

import (
	"math"

	"github.com/abhishek776655/Orbital-Mind/pkg/physics"
)

// Mode selects what a single-pointer gesture does.
type Mode int

const (
	ModeView   Mode = iota // pan / click-select
	ModeCreate             // drag out a new body
)

type gestureState int

const (
	stateIdle gestureState = iota
	statePanning
	stateCreating
	statePinching
)

const (
	// dragThreshold separates a click from a drag, in screen pixels per axis.
	dragThreshold = 5.0

	// createVelScale converts the drag vector into the new body's velocity.
	createVelScale = 0.05

	// minHitRadius is the selection radius floor in screen pixels, applied
	// in world space as minHitRadius/zoom.
	minHitRadius = 15.0
)

// Pointer is the gesture state machine. It mutates the camera directly and
// reports discrete results through the callbacks; all methods run
// synchronously on the frame goroutine.
type Pointer struct {
	Cam  *Camera
	Mode Mode

	// OnSelect fires on a click in view mode: the topmost hit body's ID, or
	// ok=false for a click on empty space (clears selection).
	OnSelect func(id uint64, ok bool)
	// OnCreate fires when a create gesture ends, with the new body's world
	// position and velocity.
	OnCreate func(pos, vel physics.Vec2)

	state      gestureState
	downScreen physics.Vec2
	lastScreen physics.Vec2
	dragged    bool

	createStart physics.Vec2 // world space
	createEnd   physics.Vec2

	pinchDist float64
	pinchMid  physics.Vec2
}

func NewPointer(cam *Camera) *Pointer {
	return &Pointer{Cam: cam}
}

// Down begins a single-pointer gesture. Ignored while pinching; the pinch
// handler owns the pointers until it ends.
func (p *Pointer) Down(s physics.Vec2) {
	if p.state == statePinching {
		return
	}
	p.downScreen = s
	p.lastScreen = s
	p.dragged = false
	switch p.Mode {
	case ModeCreate:
		p.state = stateCreating
		p.createStart = p.Cam.ScreenToWorld(s)
		p.createEnd = p.createStart
	default:
		p.state = statePanning
	}
}

// Move updates an in-flight gesture with a new pointer position.
func (p *Pointer) Move(s physics.Vec2) {
	switch p.state {
	case statePanning:
		p.Cam.Pan(s.Sub(p.lastScreen))
		p.lastScreen = s
		if math.Abs(s.X-p.downScreen.X) > dragThreshold ||
			math.Abs(s.Y-p.downScreen.Y) > dragThreshold {
			p.dragged = true
		}
	case stateCreating:
		p.createEnd = p.Cam.ScreenToWorld(s)
	}
}

// Up ends a single-pointer gesture. A pan that never crossed the drag
// threshold is a click and hit-tests bodies; a create gesture emits the new
// body, with a plain tap producing zero velocity.
func (p *Pointer) Up(s physics.Vec2, bodies []*physics.Body) {
	switch p.state {
	case statePanning:
		if !p.dragged {
			p.selectAt(s, bodies)
		}
	case stateCreating:
		end := p.Cam.ScreenToWorld(s)
		if p.OnCreate != nil {
			p.OnCreate(p.createStart, end.Sub(p.createStart).Mul(createVelScale))
		}
	}
	p.state = stateIdle
}

// Leave cancels any in-flight single-pointer gesture without emitting
// anything (pointer left the surface, or the event stream was cut off).
func (p *Pointer) Leave() {
	if p.state == statePanning || p.state == stateCreating {
		p.state = stateIdle
	}
}

// selectAt picks the topmost body near the click, iterating in reverse so
// later-created (drawn-on-top) bodies win.
func (p *Pointer) selectAt(s physics.Vec2, bodies []*physics.Body) {
	if p.OnSelect == nil {
		return
	}
	w := p.Cam.ScreenToWorld(s)
	for i := len(bodies) - 1; i >= 0; i-- {
		b := bodies[i]
		hit := math.Max(b.Radius*1.5, minHitRadius/p.Cam.Zoom)
		if b.Pos.Dist(w) <= hit {
			p.OnSelect(b.ID, true)
			return
		}
	}
	p.OnSelect(0, false)
}

// Pinch processes a two-finger update. The first call of a gesture only
// records the contact geometry and cancels whatever single-pointer gesture
// was in flight; later calls pan by the midpoint delta and zoom by the
// incremental distance ratio, anchored at the current midpoint so pan and
// zoom stay correct together on every tick.
func (p *Pointer) Pinch(a, b physics.Vec2) {
	dist := a.Dist(b)
	mid := a.Add(b).Mul(0.5)

	if p.state != statePinching {
		p.state = statePinching
		p.pinchDist = dist
		p.pinchMid = mid
		return
	}

	p.Cam.Pan(mid.Sub(p.pinchMid))
	if p.pinchDist > 0 {
		p.Cam.ZoomAt(dist/p.pinchDist, mid)
	}
	p.pinchDist = dist
	p.pinchMid = mid
}

// PinchEnd leaves the pinch state. Single-pointer tracking is reset so a
// finger that stays down does not cause a position jump or a spurious body
// creation.
func (p *Pointer) PinchEnd() {
	if p.state == statePinching {
		p.state = stateIdle
	}
	p.dragged = false
}

// CreatingGhost reports whether a create gesture is in flight, with its
// current world-space endpoints for ghost rendering.
func (p *Pointer) CreatingGhost() (start, end physics.Vec2, active bool) {
	if p.state != stateCreating {
		return physics.Vec2{}, physics.Vec2{}, false
	}
	return p.createStart, p.createEnd, true
}

// Panning reports whether a pan gesture is in flight.
func (p *Pointer) Panning() bool { return p.state == statePanning }

// Pinching reports whether a two-finger gesture is in flight.
func (p *Pointer) Pinching() bool { return p.state == statePinching }
