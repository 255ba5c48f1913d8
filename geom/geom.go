// Package geom holds the 2D helpers the decision core is built on. Points and
// polylines are orb types so lane paths can be handed straight to orb/planar.
package geom

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// PredictionFactor scales velocity*ticks when extrapolating a unit. The arena
// integrates motion in half-steps, so a unit covers half of speed*ticks in the
// horizon the projectile needs to arrive.
const PredictionFactor = 0.5

// Distance is the Euclidean distance between a and b.
func Distance(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}

// ProjectOntoSegment returns the point of segment [v,w] closest to p.
// A zero-length segment degenerates to v.
func ProjectOntoSegment(p, v, w orb.Point) orb.Point {
	l2 := planar.DistanceSquared(v, w)
	if l2 == 0 {
		return v
	}
	t := ((p[0]-v[0])*(w[0]-v[0]) + (p[1]-v[1])*(w[1]-v[1])) / l2
	t = math.Max(0, math.Min(1, t))
	return orb.Point{v[0] + t*(w[0]-v[0]), v[1] + t*(w[1]-v[1])}
}

// DistanceToSegment is the distance from p to its projection on [v,w].
func DistanceToSegment(p, v, w orb.Point) float64 {
	return Distance(p, ProjectOntoSegment(p, v, w))
}

// SectorOverlap reports whether the closed angular intervals [min1,max1] and
// [min2,max2] intersect.
func SectorOverlap(min1, max1, min2, max2 float64) bool {
	return min1 <= max2 && min2 <= max1
}

// Predict extrapolates p along velocity v for the given number of ticks.
func Predict(p, v orb.Point, ticks float64) orb.Point {
	k := ticks * PredictionFactor
	return orb.Point{p[0] + v[0]*k, p[1] + v[1]*k}
}

// NormalizeAngle maps a into (-pi, pi].
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Offset moves p by dist along the absolute angle.
func Offset(p orb.Point, angle, dist float64) orb.Point {
	return orb.Point{p[0] + math.Cos(angle)*dist, p[1] + math.Sin(angle)*dist}
}

// Inside reports whether p lies in the square [margin, size-margin] on both axes.
func Inside(p orb.Point, size, margin float64) bool {
	b := orb.Bound{Min: orb.Point{margin, margin}, Max: orb.Point{size - margin, size - margin}}
	return b.Contains(p)
}

// PathProjection describes where a point falls on a polyline.
type PathProjection struct {
	Segment  int       // index of the segment start
	Point    orb.Point // closest point on the path
	Distance float64   // distance from the query point to Point
	Along    float64   // path length from the first vertex to Point
}

// ProjectOntoPath finds the closest segment of path to p. A path with a single
// vertex projects everything onto that vertex.
func ProjectOntoPath(path orb.LineString, p orb.Point) PathProjection {
	best := PathProjection{Distance: math.Inf(1)}
	if len(path) == 0 {
		return best
	}
	if len(path) == 1 {
		return PathProjection{Point: path[0], Distance: Distance(p, path[0])}
	}
	walked := 0.0
	for i := 0; i < len(path)-1; i++ {
		proj := ProjectOntoSegment(p, path[i], path[i+1])
		d := Distance(p, proj)
		if d < best.Distance {
			best = PathProjection{
				Segment:  i,
				Point:    proj,
				Distance: d,
				Along:    walked + Distance(path[i], proj),
			}
		}
		walked += Distance(path[i], path[i+1])
	}
	return best
}

// PathLength is the total length of the polyline.
func PathLength(path orb.LineString) float64 {
	return planar.Length(path)
}
