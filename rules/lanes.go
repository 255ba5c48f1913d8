package rules

import (
	"math"
	"math/rand"

	"github.com/paulmach/orb"

	"github.com/nstehr/vimy/wizard-core/geom"
	"github.com/nstehr/vimy/wizard-core/model"
)

// LanePaths holds the waypoint polyline of each lane, indexed by LaneType.
// Built once at game start and only read afterwards.
type LanePaths [3]orb.LineString

// BuildLanePaths lays the three lanes out for a square map of side size.
// The middle lane has two possible second waypoints; rng picks one.
func BuildLanePaths(size float64, rng *rand.Rand) LanePaths {
	branch := []orb.Point{{600, size - 200}, {200, size - 600}}
	var p LanePaths
	p[model.LaneMiddle] = orb.LineString{
		{100, size - 100},
		branch[rng.Intn(len(branch))],
		{800, size - 800},
		{size - 600, 600},
	}
	p[model.LaneTop] = orb.LineString{
		{100, size - 100},
		{100, size - 400},
		{200, size - 800},
		{200, size * 0.75},
		{200, size * 0.5},
		{200, size * 0.25},
		{200, 200},
		{size * 0.25, 200},
		{size * 0.5, 200},
		{size * 0.75, 200},
		{size - 200, 200},
	}
	p[model.LaneBottom] = orb.LineString{
		{100, size - 100},
		{400, size - 100},
		{800, size - 200},
		{size * 0.25, size - 200},
		{size * 0.5, size - 200},
		{size * 0.75, size - 200},
		{size - 200, size - 200},
		{size - 200, size * 0.75},
		{size - 200, size * 0.5},
		{size - 200, size * 0.25},
		{size - 200, 200},
	}
	return p
}

// Path returns the polyline for lane, nil for LaneNone.
func (p *LanePaths) Path(lane model.LaneType) orb.LineString {
	if lane < 0 || int(lane) >= len(p) {
		return nil
	}
	return p[lane]
}

// DistanceToLane is the distance from pt to the nearest segment of lane.
func (p *LanePaths) DistanceToLane(lane model.LaneType, pt orb.Point) float64 {
	return geom.ProjectOntoPath(p.Path(lane), pt).Distance
}

// LaneOf assigns u to the lane whose path passes closest. Faction bases and
// units further than width from every lane belong to no lane.
func (p *LanePaths) LaneOf(u *model.Unit, width float64) model.LaneType {
	if u.IsFactionBase() {
		return model.LaneNone
	}
	best, bestDist := model.LaneNone, math.Inf(1)
	for _, lane := range model.Lanes {
		if d := p.DistanceToLane(lane, u.Point()); d < bestDist {
			best, bestDist = lane, d
		}
	}
	if bestDist > width {
		return model.LaneNone
	}
	return best
}

// DistanceAlongLane is how far pt has progressed along lane, measured as path
// length from the lane start to pt's projection.
func (p *LanePaths) DistanceAlongLane(lane model.LaneType, pt orb.Point) float64 {
	return geom.ProjectOntoPath(p.Path(lane), pt).Along
}

// NextWaypoint picks the waypoint to walk to from pos: the successor of a
// waypoint we are standing on, else the first waypoint closer to the lane end
// than we are.
func NextWaypoint(path orb.LineString, pos orb.Point, radius float64) orb.Point {
	if len(path) == 0 {
		return pos
	}
	last := path[len(path)-1]
	toLast := geom.Distance(last, pos)
	for i := 0; i < len(path)-1; i++ {
		wp := path[i]
		if geom.Distance(wp, pos) <= radius {
			return path[i+1]
		}
		if geom.Distance(last, wp) < toLast {
			return wp
		}
	}
	return last
}

// PreviousWaypoint mirrors NextWaypoint walking towards the lane start.
func PreviousWaypoint(path orb.LineString, pos orb.Point, radius float64) orb.Point {
	if len(path) == 0 {
		return pos
	}
	first := path[0]
	toFirst := geom.Distance(first, pos)
	for i := len(path) - 1; i > 0; i-- {
		wp := path[i]
		if geom.Distance(wp, pos) <= radius {
			return path[i-1]
		}
		if geom.Distance(first, wp) < toFirst {
			return wp
		}
	}
	return first
}
