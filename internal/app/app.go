// Package app wires capture, detection, the SOS timer and the alarm into
// the per-frame monitoring pipeline.
package app

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nivrith/abhaya/internal/alert"
	"github.com/nivrith/abhaya/internal/capture"
	"github.com/nivrith/abhaya/internal/detector"
	"github.com/nivrith/abhaya/internal/gesture"
	"github.com/nivrith/abhaya/internal/render"
)

// Pipeline timing defaults.
const (
	// DefaultIdleFPS is the frame rate while the scene is still.
	DefaultIdleFPS = 5
	// DefaultActiveFPS is the frame rate once motion is seen.
	DefaultActiveFPS = 30
	// DefaultIdleTimeout is how long without motion before dropping back
	// to the idle rate.
	DefaultIdleTimeout = 2 * time.Second
)

// Config holds pipeline settings.
type Config struct {
	CameraID        int
	FrameWidth      int
	FrameHeight     int
	IdleFPS         int
	ActiveFPS       int
	IdleTimeout     time.Duration
	MotionThreshold float64
	HoldThreshold   time.Duration
}

// App owns the frame loop and the lifecycle of every collaborator. One
// goroutine runs the loop; the only other concurrency in the process is
// the alarm playback worker behind the alert controller.
type App struct {
	config Config
	log    *zap.SugaredLogger

	camera   capture.Camera
	motion   *capture.MotionDetector
	detector detector.Detector
	alerts   *alert.Controller
	renderer render.Renderer
	timer    *gesture.SosTimer

	mu      sync.RWMutex
	enabled bool
	onSos   func(active bool)

	// Frame-loop state, touched only by the loop goroutine.
	prevSos    bool
	activeMode bool
	lastMotion time.Time

	closeOnce sync.Once
}

// New builds the pipeline. The audio output is injected so the caller can
// substitute a silent one when the device is unavailable.
func New(config Config, out alert.Output, log *zap.SugaredLogger) *App {
	if config.IdleFPS <= 0 {
		config.IdleFPS = DefaultIdleFPS
	}
	if config.ActiveFPS <= 0 {
		config.ActiveFPS = DefaultActiveFPS
	}
	if config.IdleTimeout <= 0 {
		config.IdleTimeout = DefaultIdleTimeout
	}
	if config.MotionThreshold <= 0 {
		config.MotionThreshold = 1.0 // 1% pixel change
	}

	a := &App{
		config:   config,
		log:      log,
		camera:   capture.NewCamera(config.CameraID, config.FrameWidth, config.FrameHeight),
		motion:   capture.NewMotionDetector(config.MotionThreshold),
		alerts:   alert.NewController(out, log),
		renderer: render.NopRenderer{},
		timer:    gesture.NewSosTimer(config.HoldThreshold),
		enabled:  true,
	}

	// The landmark service is an external collaborator; without it the
	// monitor still runs, it just never sees a hand.
	if lm, err := detector.NewLandmarkDetector(detector.DefaultConfig()); err == nil {
		a.detector = lm
		log.Info("using hand landmark service")
	} else {
		log.Warnw("hand landmark service unavailable, using mock detector", "error", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetCamera replaces the capture source. Call before Run.
func (a *App) SetCamera(c capture.Camera) {
	a.camera = c
}

// SetDetector replaces the pose-model collaborator. Call before Run.
func (a *App) SetDetector(d detector.Detector) {
	a.detector = d
}

// SetRenderer replaces the render collaborator. Call before Run.
func (a *App) SetRenderer(r render.Renderer) {
	if r == nil {
		r = render.NopRenderer{}
	}
	a.renderer = r
}

// SetEnabled pauses or resumes monitoring. While paused, frames are fed
// through the pipeline as NONE so a live alarm clears and a half-held palm
// does not survive the pause.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled reports whether monitoring is active.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// OnSosChange registers a callback fired on every SOS signal transition.
// The callback runs on the frame loop goroutine and must not block.
func (a *App) OnSosChange(fn func(active bool)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onSos = fn
}

func (a *App) notifySos(active bool) {
	a.mu.RLock()
	fn := a.onSos
	a.mu.RUnlock()

	if active {
		a.log.Info("sos signal raised")
	} else {
		a.log.Info("sos signal cleared")
	}

	if fn != nil {
		fn(active)
	}
}

// Shutdown runs the teardown chain: alarm first, then the pose model, the
// camera and finally the render surface. Each release is best-effort; a
// failure in one never skips the rest. Safe to call more than once.
func (a *App) Shutdown() {
	a.closeOnce.Do(func() {
		a.alerts.Release()

		if a.detector != nil {
			if err := a.detector.Close(); err != nil {
				a.log.Warnw("closing detector", "error", err)
			}
		}

		a.motion.Close()

		if err := a.camera.Close(); err != nil {
			a.log.Warnw("closing camera", "error", err)
		}

		if err := a.renderer.Close(); err != nil {
			a.log.Warnw("closing render surface", "error", err)
		}

		a.log.Info("monitoring stopped")
	})
}
