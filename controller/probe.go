package controller

import "github.com/jakecoffman/cp"

// Prober answers geometric queries against a named obstacle layer. A miss
// reports hit=false; the distance is then ignored.
type Prober interface {
	Raycast(origin, dir cp.Vector, maxDist float64, layer string) (dist float64, hit bool)
	Boxcast(origin, size, dir cp.Vector, maxDist float64, layer string) (dist float64, hit bool)
}

// ProbeResult holds the distances measured this tick. Missing hits read as
// NoHitDistance.
type ProbeResult struct {
	Ground    float64
	Ceiling   float64
	LeftWall  float64
	RightWall float64
	// Headroom is a long-range upward cast used only to clamp motion.
	Headroom float64
}

var (
	dirUp    = cp.Vector{X: 0, Y: 1}
	dirDown  = cp.Vector{X: 0, Y: -1}
	dirLeft  = cp.Vector{X: -1, Y: 0}
	dirRight = cp.Vector{X: 1, Y: 0}
)

func rayDistance(dist float64, hit bool) float64 {
	if !hit {
		return NoHitDistance
	}
	return dist
}

// probe casts the four controller queries around a box collider centred on
// pos.
func probe(p Prober, pos cp.Vector, width, height, offset float64) ProbeResult {
	if p == nil {
		return ProbeResult{
			Ground:    NoHitDistance,
			Ceiling:   NoHitDistance,
			LeftWall:  NoHitDistance,
			RightWall: NoHitDistance,
			Headroom:  NoHitDistance,
		}
	}

	halfW, halfH := width/2, height/2
	topCenter := cp.Vector{X: pos.X, Y: pos.Y + halfH}
	leftCenter := cp.Vector{X: pos.X - halfW, Y: pos.Y}
	rightCenter := cp.Vector{X: pos.X + halfW, Y: pos.Y}

	var r ProbeResult
	r.Ground, r.Headroom = verticalClearance(p, pos, width, height, offset)
	r.Ceiling = rayDistance(p.Boxcast(topCenter, cp.Vector{X: width, Y: offset}, dirUp, offset, WallsLayer))
	r.LeftWall = rayDistance(p.Raycast(leftCenter, dirLeft, wallCastRange, WallsLayer))
	r.RightWall = rayDistance(p.Raycast(rightCenter, dirRight, wallCastRange, WallsLayer))
	return r
}

// verticalClearance casts the thin ground and headroom boxes under and over a
// collider centred on pos.
func verticalClearance(p Prober, pos cp.Vector, width, height, offset float64) (ground, headroom float64) {
	if p == nil {
		return NoHitDistance, NoHitDistance
	}
	halfH := height / 2
	cast := cp.Vector{X: width, Y: offset}
	ground = rayDistance(p.Boxcast(cp.Vector{X: pos.X, Y: pos.Y - halfH}, cast, dirDown, groundCastRange, WallsLayer))
	headroom = rayDistance(p.Boxcast(cp.Vector{X: pos.X, Y: pos.Y + halfH}, cast, dirUp, groundCastRange, WallsLayer))
	return ground, headroom
}

// sideClearance sweeps the whole collider sideways and returns how far it
// can travel along dir, up to maxDist. The swept box overhangs the collider
// by offset/2 above and below so corners level with the feet still block.
func sideClearance(p Prober, pos cp.Vector, width, height, offset float64, dir cp.Vector, maxDist float64) float64 {
	if p == nil || maxDist <= 0 {
		return maxDist
	}
	d, hit := p.Boxcast(pos, cp.Vector{X: width, Y: height + offset}, dir, maxDist, WallsLayer)
	if !hit {
		return maxDist
	}
	return max(d, 0)
}
