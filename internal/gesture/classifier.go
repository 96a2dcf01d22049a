// Package gesture classifies hand poses and tracks the SOS hold timer.
package gesture

import (
	"github.com/nivrith/abhaya/internal/detector"
)

// Gesture is the per-frame pose classification. It carries no cross-frame
// memory; the hold timer lives in SosTimer.
type Gesture string

const (
	// GestureNone covers absent hands and every ambiguous pose.
	GestureNone Gesture = "NONE"
	// GestureFist is a hand with at least four fingers curled.
	GestureFist Gesture = "FIST"
	// GesturePalm is a hand with at least four fingers extended.
	GesturePalm Gesture = "PALM"
)

// Tip and PIP landmark indices per finger, thumb first.
var (
	fingerTips = [5]int{
		detector.ThumbTip,
		detector.IndexTip,
		detector.MiddleTip,
		detector.RingTip,
		detector.PinkyTip,
	}
	fingerPIPs = [5]int{
		detector.ThumbIP,
		detector.IndexPIP,
		detector.MiddlePIP,
		detector.RingPIP,
		detector.PinkyPIP,
	}
)

// Classify maps one set of hand landmarks to a gesture. It is a pure
// function: no state is retained between calls and equal input always
// yields equal output. A nil hand classifies as NONE.
//
// Each finger is tested tip against PIP joint. The four long fingers use
// the y axis (image coordinates, smaller y is higher): tip above the joint
// counts as extended, below as closed. The thumb is the one finger that
// folds sideways, so it uses the x axis instead. The pipeline mirrors the
// feed before detection, and the thumb convention assumes that mirrored
// view with a right hand: tip.x greater than joint.x is extended, smaller
// is closed. A left hand's thumb tends to land in the neither bucket, which
// only ever biases the result toward NONE.
//
// A finger exactly on its comparison axis counts as neither extended nor
// closed. PALM needs at least four extended fingers, FIST at least four
// closed; anything else, including every ambiguous pose, is NONE.
func Classify(hand *detector.HandLandmarks) Gesture {
	if hand == nil {
		return GestureNone
	}

	extended, closed := 0, 0

	thumbTip := hand.Points[fingerTips[0]]
	thumbJoint := hand.Points[fingerPIPs[0]]
	switch {
	case thumbTip.X > thumbJoint.X:
		extended++
	case thumbTip.X < thumbJoint.X:
		closed++
	}

	for i := 1; i < 5; i++ {
		tip := hand.Points[fingerTips[i]]
		joint := hand.Points[fingerPIPs[i]]
		switch {
		case tip.Y < joint.Y:
			extended++
		case tip.Y > joint.Y:
			closed++
		}
	}

	switch {
	case extended >= 4:
		return GesturePalm
	case closed >= 4:
		return GestureFist
	default:
		return GestureNone
	}
}
