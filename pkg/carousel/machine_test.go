package carousel

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func TestMachine_StartsIdleOnFirstItem(t *testing.T) {
	m := NewMachine(DefaultDuration, DefaultDistance)

	f := m.Frame(t0)
	want := Frame{
		Phase:     Idle,
		From:      0,
		To:        0,
		Direction: Forward,
		Progress:  1,
		Layers:    []Layer{{Index: 0, Stage: Centered, Offset: 0, Opacity: 1}},
	}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Errorf("initial frame mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, m.Deadline().IsZero())
}

func TestMachine_ForwardTransition(t *testing.T) {
	m := NewMachine(350*time.Millisecond, 60)
	m.Begin(1, Forward, t0)

	start := m.Frame(t0)
	require.Equal(t, Transitioning, start.Phase)
	require.Len(t, start.Layers, 2)
	assert.Equal(t, Layer{Index: 0, Stage: Exiting, Offset: 0, Opacity: 1}, start.Layers[0])
	assert.Equal(t, Layer{Index: 1, Stage: Entering, Offset: 60, Opacity: 0}, start.Layers[1])
	assert.Equal(t, 350*time.Millisecond, start.Remaining)

	mid := m.Frame(t0.Add(175 * time.Millisecond))
	require.Equal(t, Transitioning, mid.Phase)
	assert.InDelta(t, 0.5, mid.Progress, 1e-9)
	assert.InDelta(t, -30, mid.Layers[0].Offset, 1e-9, "outgoing item slides left")
	assert.InDelta(t, 30, mid.Layers[1].Offset, 1e-9, "incoming item arrives from the right")
	assert.InDelta(t, 0.5, mid.Layers[0].Opacity, 1e-9)
	assert.InDelta(t, 0.5, mid.Layers[1].Opacity, 1e-9)

	done := m.Frame(t0.Add(350 * time.Millisecond))
	assert.Equal(t, Idle, done.Phase)
	assert.Equal(t, []Layer{{Index: 1, Stage: Centered, Offset: 0, Opacity: 1}}, done.Layers)
	assert.Equal(t, t0.Add(350*time.Millisecond), m.Deadline())
}

func TestMachine_BackwardTransitionMirrorsOffsets(t *testing.T) {
	m := NewMachine(200*time.Millisecond, 60)
	m.Begin(3, Backward, t0)

	f := m.Frame(t0)
	require.Len(t, f.Layers, 2)
	assert.Equal(t, 3, f.To)
	assert.Equal(t, 0, f.From)
	assert.Equal(t, -60.0, f.Layers[1].Offset, "incoming item arrives from the left")

	f = m.Frame(t0.Add(100 * time.Millisecond))
	assert.InDelta(t, 30, f.Layers[0].Offset, 1e-9, "outgoing item slides right")
}

func TestMachine_AtMostOneCenteredLayer(t *testing.T) {
	m := NewMachine(100*time.Millisecond, 60)
	m.Begin(2, Forward, t0)

	for ms := 0; ms <= 150; ms += 10 {
		f := m.Frame(t0.Add(time.Duration(ms) * time.Millisecond))
		centered := 0
		for _, l := range f.Layers {
			if l.Stage == Centered {
				centered++
			}
		}
		assert.LessOrEqual(t, centered, 1, "at %dms", ms)
		assert.LessOrEqual(t, len(f.Layers), 2, "at %dms", ms)
	}
}

func TestMachine_RetargetLatestWins(t *testing.T) {
	m := NewMachine(350*time.Millisecond, 60)
	m.Begin(1, Forward, t0)
	m.Begin(2, Forward, t0.Add(100*time.Millisecond))

	f := m.Frame(t0.Add(100 * time.Millisecond))
	assert.Equal(t, Transitioning, f.Phase)
	assert.Equal(t, 1, f.From, "the item that was entering now exits")
	assert.Equal(t, 2, f.To)
	assert.InDelta(t, 0, f.Progress, 1e-9, "clock restarts on retarget")
	assert.Equal(t, uint64(2), f.Seq, "each begin is a new transition")

	f = m.Frame(t0.Add(449 * time.Millisecond))
	assert.Equal(t, Transitioning, f.Phase)

	f = m.Frame(t0.Add(450 * time.Millisecond))
	assert.Equal(t, Idle, f.Phase)
	assert.Equal(t, 2, f.To)
}

func TestMachine_ZeroDurationIsAlwaysIdle(t *testing.T) {
	m := NewMachine(0, 60)
	m.Begin(3, Backward, t0)

	f := m.Frame(t0)
	assert.Equal(t, Idle, f.Phase)
	assert.Equal(t, 3, f.To)
	assert.Equal(t, Backward, f.Direction)
}

func TestPhaseAndStageStrings(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "transitioning", Transitioning.String())
	assert.Equal(t, "entering", Entering.String())
	assert.Equal(t, "exiting", Exiting.String())
	assert.Equal(t, "centered", Centered.String())
}
