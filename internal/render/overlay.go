// Package render draws the status overlay and hosts the preview window.
package render

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"gocv.io/x/gocv"

	"github.com/nivrith/abhaya/internal/detector"
	"github.com/nivrith/abhaya/internal/gesture"
)

// Status is the per-frame state painted over the preview. It flows one way:
// the renderer never feeds anything back into the pipeline.
type Status struct {
	Gesture   gesture.Gesture
	Held      time.Duration
	Holding   bool
	Threshold time.Duration
	Sos       bool
	Hands     []detector.HandLandmarks
}

// Renderer is the presentation collaborator.
type Renderer interface {
	// Render presents one frame. quit reports that the user asked to exit.
	Render(frame *gocv.Mat, st Status) (quit bool, err error)

	// Close releases the render surface. Safe to call more than once.
	Close() error
}

var (
	textColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	holdColor     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	landmarkColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	sosColor      = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// Overlay paints the gesture label, the palm-hold progress, landmark dots
// and, while the SOS signal is up, a red wash with a centered banner.
func Overlay(frame *gocv.Mat, st Status) {
	if frame == nil || frame.Empty() {
		return
	}

	cols, rows := frame.Cols(), frame.Rows()

	for i := range st.Hands {
		for _, p := range st.Hands[i].Points {
			pt := image.Pt(int(p.X*float64(cols)), int(p.Y*float64(rows)))
			gocv.Circle(frame, pt, 3, landmarkColor, 2)
		}
	}

	gocv.PutText(frame, "Gesture: "+string(st.Gesture), image.Pt(10, 30),
		gocv.FontHersheySimplex, 1, textColor, 2)

	if st.Holding {
		label := fmt.Sprintf("Palm held: %.1fs / %.1fs",
			st.Held.Seconds(), st.Threshold.Seconds())
		gocv.PutText(frame, label, image.Pt(10, 70),
			gocv.FontHersheySimplex, 0.7, holdColor, 2)
	}

	if st.Sos {
		wash := gocv.NewMatWithSizeFromScalar(
			gocv.NewScalar(0, 0, 255, 0), rows, cols, frame.Type())
		gocv.AddWeighted(wash, 0.3, *frame, 0.7, 0, frame)
		wash.Close()

		const banner = "SOS ALERT"
		size := gocv.GetTextSize(banner, gocv.FontHersheySimplex, 2, 5)
		org := image.Pt((cols-size.X)/2, (rows+size.Y)/2)
		gocv.PutText(frame, banner, org, gocv.FontHersheySimplex, 2, sosColor, 5)
	}
}

// Keys that end the session.
const (
	keyQuit   = 'q'
	keyEscape = 27
)

// WindowRenderer shows frames in a GoCV window.
type WindowRenderer struct {
	win *gocv.Window
}

// NewWindow creates a preview window with the given title.
func NewWindow(title string) *WindowRenderer {
	return &WindowRenderer{win: gocv.NewWindow(title)}
}

// Render paints the overlay, shows the frame and polls the keyboard.
func (w *WindowRenderer) Render(frame *gocv.Mat, st Status) (bool, error) {
	if w.win == nil {
		return true, nil
	}

	Overlay(frame, st)
	w.win.IMShow(*frame)

	key := w.win.WaitKey(1)
	if key == keyQuit || key == keyEscape {
		return true, nil
	}

	return false, nil
}

// Close destroys the window. Safe to call more than once.
func (w *WindowRenderer) Close() error {
	if w.win == nil {
		return nil
	}
	err := w.win.Close()
	w.win = nil
	return err
}

// NopRenderer discards frames; used for headless runs and in tests.
type NopRenderer struct{}

// Render does nothing and never requests quit.
func (NopRenderer) Render(*gocv.Mat, Status) (bool, error) { return false, nil }

// Close does nothing.
func (NopRenderer) Close() error { return nil }
