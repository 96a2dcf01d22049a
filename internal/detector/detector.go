package detector

import "gocv.io/x/gocv"

// Detector is the pose-model collaborator. Implementations analyze a single
// decoded frame at a time and signal absence with an empty result.
type Detector interface {
	// Detect returns landmarks for each hand found in the frame, or an
	// empty slice when no hand is present.
	Detect(frame *gocv.Mat) ([]HandLandmarks, error)

	// Close releases model resources. Safe to call more than once.
	Close() error
}

// Config holds pose model tuning.
type Config struct {
	// MaxHands is the maximum number of hands to track.
	MaxHands int

	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64
}

// DefaultConfig tracks a single hand, matching the monitor's one-hand
// policy.
func DefaultConfig() Config {
	return Config{
		MaxHands:        1,
		MinConfidence:   0.7,
		MinTrackingConf: 0.5,
	}
}
