package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Finger identifies one of the ten physical digits, or one of the two derived
// hand aggregates used by finger usage statistics.
type Finger uint8

const (
	// LeftPinky is the left little finger.
	LeftPinky Finger = iota
	// LeftRing is the left ring finger.
	LeftRing
	// LeftMiddle is the left middle finger.
	LeftMiddle
	// LeftIndex is the left index finger.
	LeftIndex
	// LeftThumb is the left thumb.
	LeftThumb
	// RightThumb is the right thumb.
	RightThumb
	// RightIndex is the right index finger.
	RightIndex
	// RightMiddle is the right middle finger.
	RightMiddle
	// RightRing is the right ring finger.
	RightRing
	// RightPinky is the right little finger.
	RightPinky
	// LeftHand aggregates fingers LeftPinky through LeftThumb.
	LeftHand
	// RightHand aggregates fingers RightThumb through RightPinky.
	RightHand
)

const (
	// PhysicalFingers is the number of physical digits.
	PhysicalFingers = 10
	// FingerBuckets is the number of finger usage buckets, aggregates included.
	FingerBuckets = 12
)

var fingerNames = [FingerBuckets]string{
	"LP", "LR", "LM", "LI", "LT", "RT", "RI", "RM", "RR", "RP", "LH", "RH",
}

// String returns the two-letter abbreviation of the finger.
func (f Finger) String() string {
	if int(f) < len(fingerNames) {
		return fingerNames[f]
	}
	return "??"
}

// IsPhysical reports whether f is a real digit rather than a hand aggregate.
func (f Finger) IsPhysical() bool {
	return f < PhysicalFingers
}

// IsLeft reports whether the physical finger belongs to the left hand.
func (f Finger) IsLeft() bool {
	return f <= LeftThumb
}

// IsThumb reports whether f is one of the thumbs.
func (f Finger) IsThumb() bool {
	return f == LeftThumb || f == RightThumb
}

// IsExtreme reports whether f sits at the edge of a hand's finger ordering,
// i.e. it is a pinky or an index finger.
func (f Finger) IsExtreme() bool {
	switch f {
	case LeftPinky, LeftIndex, RightIndex, RightPinky:
		return true
	default:
		return false
	}
}

// Inward returns the position of f on its hand counted from the outer edge:
// pinky is 0 and thumb is 4. Higher values are closer to the keyboard centre.
func (f Finger) Inward() int {
	if f.IsLeft() {
		return int(f)
	}
	return int(RightPinky - f)
}

// ParseFinger resolves a two-letter finger abbreviation to a physical Finger.
func ParseFinger(name string) (Finger, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i := range PhysicalFingers {
		if fingerNames[i] == upper {
			return Finger(i), nil
		}
	}
	return 0, zerr.With(ErrUnknownFinger, "finger", name)
}

// Position is the physical location of a key and the finger that presses it.
type Position struct {
	Row    uint8
	Col    uint8
	Finger Finger
}
