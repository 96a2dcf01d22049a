package alert

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestController(out Output) *Controller {
	c := NewController(out, zap.NewNop().Sugar())
	c.poll = 2 * time.Millisecond
	return c
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, d time.Duration, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestController_EdgeTriggering(t *testing.T) {
	// A long clip keeps each worker at exactly one play, so plays counts
	// alarm starts.
	out := NewMockOutput(time.Hour)
	c := newTestController(out)
	defer c.Release()

	signals := []bool{false, false, true, true, false}

	previous := false
	for _, current := range signals {
		c.OnSignal(previous, current)
		previous = current
		time.Sleep(20 * time.Millisecond)
	}

	waitFor(t, time.Second, func() bool { return out.Plays() == 1 },
		"expected exactly one alarm start")
	if out.Plays() != 1 {
		t.Errorf("plays = %d, want 1", out.Plays())
	}
	if out.Stops() != 1 {
		t.Errorf("stops = %d, want 1", out.Stops())
	}
	if c.Active() {
		t.Error("controller still active after falling edge")
	}
}

func TestController_StartAlarmIdempotent(t *testing.T) {
	out := NewMockOutput(time.Hour)
	c := newTestController(out)
	defer c.Release()

	c.StartAlarm()
	c.StartAlarm()

	waitFor(t, time.Second, func() bool { return out.Plays() >= 1 },
		"worker never played")

	// A second worker would have produced a second immediate play.
	time.Sleep(50 * time.Millisecond)
	if got := out.Plays(); got != 1 {
		t.Errorf("plays = %d, want 1 (single worker)", got)
	}
	if !c.Active() {
		t.Error("controller should be active")
	}
}

func TestController_StopAlarmIdempotent(t *testing.T) {
	out := NewMockOutput(time.Hour)
	c := newTestController(out)
	defer c.Release()

	t.Run("never started", func(t *testing.T) {
		c.StopAlarm()
		c.StopAlarm()
		if c.Active() {
			t.Error("controller active without a start")
		}
		if out.Stops() != 0 {
			t.Errorf("stops = %d, want 0", out.Stops())
		}
	})

	t.Run("after start", func(t *testing.T) {
		c.StartAlarm()
		c.StopAlarm()
		c.StopAlarm()
		if c.Active() {
			t.Error("controller still active after stop")
		}
		if out.Stops() != 1 {
			t.Errorf("stops = %d, want 1", out.Stops())
		}
	})
}

func TestController_StopIsPrompt(t *testing.T) {
	out := NewMockOutput(time.Hour)
	c := newTestController(out)
	defer c.Release()

	c.StartAlarm()
	waitFor(t, time.Second, func() bool { return out.Plays() == 1 },
		"worker never played")

	c.StopAlarm()

	// The worker polls every few milliseconds; no further plays may land.
	time.Sleep(50 * time.Millisecond)
	if got := out.Plays(); got != 1 {
		t.Errorf("plays = %d after stop, want 1", got)
	}
	if out.Stops() != 1 {
		t.Errorf("stops = %d, want 1", out.Stops())
	}
}

func TestController_WorkerLoopsClip(t *testing.T) {
	out := NewMockOutput(10 * time.Millisecond)
	c := newTestController(out)
	defer c.Release()

	c.StartAlarm()
	waitFor(t, time.Second, func() bool { return out.Plays() >= 3 },
		"clip did not repeat")
	c.StopAlarm()
}

func TestController_Release(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		out := NewMockOutput(time.Hour)
		c := newTestController(out)

		c.StartAlarm()
		c.Release()
		c.Release()

		if out.Closes() != 1 {
			t.Errorf("closes = %d, want 1", out.Closes())
		}
		if c.Active() {
			t.Error("controller active after release")
		}
	})

	t.Run("without any start", func(t *testing.T) {
		out := NewMockOutput(time.Hour)
		c := newTestController(out)

		c.Release()

		if out.Closes() != 1 {
			t.Errorf("closes = %d, want 1", out.Closes())
		}
	})

	t.Run("blocks further starts", func(t *testing.T) {
		out := NewMockOutput(time.Hour)
		c := newTestController(out)

		c.Release()
		c.StartAlarm()

		time.Sleep(20 * time.Millisecond)
		if out.Plays() != 0 {
			t.Errorf("plays = %d after release, want 0", out.Plays())
		}
		if c.Active() {
			t.Error("controller active after release")
		}
	})
}

func TestController_PlaybackErrorDegradesSilently(t *testing.T) {
	out := NewMockOutput(5 * time.Millisecond)
	out.SetError(errors.New("device gone"))
	c := newTestController(out)
	defer c.Release()

	c.StartAlarm()

	// The loop keeps running despite errors; the alarm stays logically on.
	waitFor(t, time.Second, func() bool { return out.Plays() >= 2 },
		"worker stopped after playback error")
	if !c.Active() {
		t.Error("controller dropped active state on playback error")
	}

	c.StopAlarm()
	if c.Active() {
		t.Error("controller still active after stop")
	}
}

func TestNewController_NilOutput(t *testing.T) {
	c := NewController(nil, zap.NewNop().Sugar())
	c.StartAlarm()
	c.Release()
}
