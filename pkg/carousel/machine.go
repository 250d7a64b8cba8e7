package carousel

import (
	"fmt"
	"time"
)

// Default transition parameters: a 350ms
// cross-fade with a 60px horizontal slide.
const (
	DefaultDuration = 350 * time.Millisecond
	DefaultDistance = 60.0
)

// Phase is the rendering phase of a carousel.
type Phase int

// Phases.
const (
	Idle Phase = iota
	Transitioning
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Transitioning:
		return "transitioning"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Stage is the animation stage of one mounted item.
type Stage int

// Stages.
const (
	Centered Stage = iota
	Entering
	Exiting
)

// String implements fmt.Stringer.
func (s Stage) String() string {
	switch s {
	case Centered:
		return "centered"
	case Entering:
		return "entering"
	case Exiting:
		return "exiting"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Layer is one mounted item within a frame. Offset is the horizontal
// displacement in the renderer's unit and Opacity runs from 0 to 1; both are
// linear in the frame's progress.
type Layer struct {
	Index   int
	Stage   Stage
	Offset  float64
	Opacity float64
}

// Frame is a snapshot of the rendering state at one instant.
//
// An idle frame has exactly one Centered layer. A transitioning frame has an
// Exiting layer for From followed by an Entering layer for To.
type Frame struct {
	// Seq counts transitions begun so far; renderers key layers on it.
	Seq       uint64
	Phase     Phase
	From      int
	To        int
	Direction Direction
	Progress  float64
	Remaining time.Duration
	Layers    []Layer
}

// Machine tracks Idle and Transitioning for a single carousel.
//
// Begin always wins: a request that arrives while a transition is in flight
// restarts the clock toward the new target, and the item that was entering
// becomes the one that exits. Intermediate targets are never replayed.
type Machine struct {
	duration time.Duration
	distance float64

	active  int
	from    int
	dir     Direction
	started time.Time
	moving  bool
	seq     uint64
}

// NewMachine returns a machine in Idle(0).
func NewMachine(duration time.Duration, distance float64) *Machine {
	if duration < 0 {
		duration = 0
	}
	return &Machine{
		duration: duration,
		distance: distance,
		dir:      Forward,
	}
}

// Duration returns the length of one transition.
func (m *Machine) Duration() time.Duration {
	return m.duration
}

// Begin starts a transition toward to, observed at instant at.
func (m *Machine) Begin(to int, dir Direction, at time.Time) {
	m.from = m.active
	m.active = to
	m.dir = DirectionOf(int(dir))
	m.started = at
	m.moving = true
	m.seq++
}

// Distance returns the slide distance used for layer offsets.
func (m *Machine) Distance() float64 {
	return m.distance
}

// Phase reports the phase at instant at.
func (m *Machine) Phase(at time.Time) Phase {
	if m.inFlight(at) {
		return Transitioning
	}
	return Idle
}

// Deadline returns when the current transition completes. It is the zero
// time when no transition has ever started.
func (m *Machine) Deadline() time.Time {
	if m.started.IsZero() {
		return time.Time{}
	}
	return m.started.Add(m.duration)
}

// Frame computes the frame at instant at.
func (m *Machine) Frame(at time.Time) Frame {
	if !m.inFlight(at) {
		return Frame{
			Seq:       m.seq,
			Phase:     Idle,
			From:      m.active,
			To:        m.active,
			Direction: m.dir,
			Progress:  1,
			Layers: []Layer{
				{Index: m.active, Stage: Centered, Offset: 0, Opacity: 1},
			},
		}
	}

	elapsed := at.Sub(m.started)
	if elapsed < 0 {
		elapsed = 0
	}
	p := float64(elapsed) / float64(m.duration)
	d := float64(m.dir.Int())

	return Frame{
		Seq:       m.seq,
		Phase:     Transitioning,
		From:      m.from,
		To:        m.active,
		Direction: m.dir,
		Progress:  p,
		Remaining: m.duration - elapsed,
		Layers: []Layer{
			{Index: m.from, Stage: Exiting, Offset: -d * m.distance * p, Opacity: 1 - p},
			{Index: m.active, Stage: Entering, Offset: d * m.distance * (1 - p), Opacity: p},
		},
	}
}

func (m *Machine) inFlight(at time.Time) bool {
	if !m.moving || m.duration == 0 {
		return false
	}
	return at.Sub(m.started) < m.duration
}
