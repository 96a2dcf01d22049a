package app

import (
	"context"
	"fmt"
	"time"

	"gocv.io/x/gocv"

	"github.com/nivrith/abhaya/internal/detector"
	"github.com/nivrith/abhaya/internal/gesture"
	"github.com/nivrith/abhaya/internal/render"
)

// Run opens the camera and drives the frame loop until the context is
// cancelled, the user quits via the render surface, or the frame source
// fails. It always tears everything down before returning.
func (a *App) Run(ctx context.Context) (err error) {
	defer a.Shutdown()

	defer func() {
		if r := recover(); r != nil {
			a.log.Errorw("frame loop panicked", "panic", r)
			err = fmt.Errorf("frame loop panicked: %v", r)
		}
	}()

	if err := a.camera.Open(); err != nil {
		return fmt.Errorf("opening camera: %w", err)
	}

	a.camera.SetFPS(a.config.IdleFPS)
	a.log.Infow("monitoring started",
		"idle_fps", a.config.IdleFPS,
		"active_fps", a.config.ActiveFPS,
		"hold_threshold", a.timer.Threshold())

	fps := a.camera.FPS()
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !a.step(time.Now()) {
				return nil
			}

			if cur := a.camera.FPS(); cur != fps && cur > 0 {
				fps = cur
				ticker.Reset(time.Second / time.Duration(fps))
			}
		}
	}
}

// step processes one frame at the given instant and reports whether the
// loop should continue.
func (a *App) step(now time.Time) bool {
	frame, err := a.camera.ReadFrame()
	if err != nil {
		a.log.Errorw("frame read failed, stopping", "error", err)
		return false
	}
	defer frame.Close()

	// Mirror so the preview behaves like a mirror; the thumb heuristic in
	// the classifier assumes this orientation.
	gocv.Flip(*frame, frame, 1)

	a.updateMode(frame, now)

	g := gesture.GestureNone
	var hands []detector.HandLandmarks
	if a.IsEnabled() {
		hands, err = a.detector.Detect(frame)
		switch {
		case err != nil:
			// Detection failure counts as no hand; the timer resets.
			a.log.Warnw("hand detection failed", "error", err)
		case len(hands) > 0:
			g = gesture.Classify(&hands[0])
		}
	}

	sos := a.timer.Update(g, now)
	a.alerts.OnSignal(a.prevSos, sos)
	if sos != a.prevSos {
		a.notifySos(sos)
	}
	a.prevSos = sos

	held, holding := a.timer.Held(now)

	quit, err := a.renderer.Render(frame, render.Status{
		Gesture:   g,
		Held:      held,
		Holding:   holding,
		Threshold: a.timer.Threshold(),
		Sos:       sos,
		Hands:     hands,
	})
	if err != nil {
		a.log.Warnw("render failed", "error", err)
	}
	if quit {
		a.log.Info("quit requested")
		return false
	}

	return true
}

// updateMode switches the capture rate between idle and active based on
// scene motion.
func (a *App) updateMode(frame *gocv.Mat, now time.Time) {
	moving, changePercent := a.motion.Detect(frame)

	if moving {
		a.lastMotion = now
		if !a.activeMode {
			a.activeMode = true
			a.camera.SetFPS(a.config.ActiveFPS)
			a.log.Debugw("motion detected, raising frame rate",
				"change_percent", changePercent, "fps", a.config.ActiveFPS)
		}
		return
	}

	if a.activeMode && now.Sub(a.lastMotion) >= a.config.IdleTimeout {
		a.activeMode = false
		a.camera.SetFPS(a.config.IdleFPS)
		a.log.Debugw("scene still, lowering frame rate", "fps", a.config.IdleFPS)
	}
}
