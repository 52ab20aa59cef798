package common

import "math"

// TickRate is the fixed simulation rate in ticks per second.
const TickRate = 60

// TileSize is the width of one world unit in screen pixels.
const TileSize = 32

// MoveTowards moves current toward target by at most maxDelta without
// overshooting.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	return current + math.Copysign(maxDelta, target-current)
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Quantize maps an analog axis onto {-1,0,1} using a dead zone.
func Quantize(v, deadZone float64) float64 {
	if math.Abs(v) < deadZone {
		return 0
	}
	return Sign(v)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
