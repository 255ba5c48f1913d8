package rules

import (
	"log/slog"
	"math"

	"github.com/paulmach/orb"

	"github.com/nstehr/vimy/wizard-core/geom"
	"github.com/nstehr/vimy/wizard-core/model"
)

// blocker returns the nearest solid unit our body would touch moving from
// `from` to `to`, or nil if the path is clear.
func (e TickEnv) blocker(from, to orb.Point) *model.Unit {
	var best *model.Unit
	bestDist := math.Inf(1)
	for _, u := range e.World.Solid() {
		if u.ID == e.Self.ID {
			continue
		}
		if geom.DistanceToSegment(u.Point(), from, to) >= u.Radius+e.Self.Radius {
			continue
		}
		if d := geom.Distance(from, u.Point()); d < bestDist {
			best, bestDist = u, d
		}
	}
	return best
}

// stepClear reports whether a short move to p stays on the map and hits nothing.
func (e TickEnv) stepClear(p orb.Point) bool {
	if !geom.Inside(p, e.Game.MapSize, e.Self.Radius) {
		return false
	}
	return e.blocker(e.Self.Point(), p) == nil
}

func (e TickEnv) retreatPoint() orb.Point {
	return geom.Offset(e.Self.Point(), e.Self.Angle+math.Pi, e.Tuning.RetreatStep)
}

// canRetreat needs our body fully on the map and a clear step behind us.
func (e TickEnv) canRetreat() bool {
	if !geom.Inside(e.Self.Point(), e.Game.MapSize, e.Self.Radius) {
		return false
	}
	return e.stepClear(e.retreatPoint())
}

// retreat backs away from the front: walk backwards with our back to the
// previous waypoint. Returns false, touching nothing, when we already overlap
// the map edge or the step behind us leaves the map or bumps into a unit.
func (e TickEnv) retreat() bool {
	if !e.canRetreat() {
		return false
	}
	prev := e.PreviousWaypoint()
	e.Move.Speed = -e.Game.WizardBackwardSpeed
	e.Move.Turn = geom.NormalizeAngle(e.Self.AngleTo(prev) + math.Pi)
	e.tick.retreating = true
	return true
}

// obstacleOnLine finds the nearest removable unit within cast range that sits
// on the straight line to target.
func (e TickEnv) obstacleOnLine(target orb.Point) *model.Unit {
	var best *model.Unit
	bestDist := math.Inf(1)
	for _, u := range e.World.Solid() {
		if u.ID == e.Self.ID {
			continue
		}
		d := e.Self.DistanceToUnit(u)
		if d-u.Radius > e.castRange() || d >= bestDist {
			continue
		}
		if geom.DistanceToSegment(u.Point(), e.Self.Point(), target) >= u.Radius+e.Self.Radius {
			continue
		}
		if e.removable(u) {
			best, bestDist = u, d
		}
	}
	return best
}

// goToWaypoint walks toward target. A unit in the forward probe stops us;
// trees and enemies in the probe or on the line get shot instead, and allies
// are side-stepped.
func (e TickEnv) goToWaypoint(target orb.Point) {
	self := e.Self
	angle := self.AngleTo(target)
	e.Move.Turn = angle
	e.Move.StrafeSpeed = 0

	if target != e.State.LastWaypoint {
		slog.Debug("heading to waypoint", "x", target[0], "y", target[1], "lane", e.State.Lane)
		e.State.LastWaypoint = target
	}

	probeEnd := geom.Offset(self.Point(), self.Angle, e.Tuning.ProbeDistance)
	block := e.blocker(self.Point(), probeEnd)

	obstacle := block
	if obstacle != nil && !e.removable(obstacle) {
		obstacle = nil
	}
	if obstacle == nil {
		obstacle = e.obstacleOnLine(target)
	}
	if obstacle != nil {
		if obstacle.ID != e.State.LastObstacleID {
			slog.Debug("attacking obstacle", "id", obstacle.ID, "kind", obstacle.Kind)
			e.State.LastObstacleID = obstacle.ID
		}
		e.setupAttack(obstacle)
	}

	if block != nil && !e.removable(block) {
		// Positive strafe moves toward heading+pi/2; slip to the side away from the blocker.
		if self.AngleToUnit(block) > 0 {
			e.Move.StrafeSpeed = -e.Game.WizardStrafeSpeed
		} else {
			e.Move.StrafeSpeed = e.Game.WizardStrafeSpeed
		}
	}

	if block == nil && !e.tick.noAdvance && !e.tick.retreating && math.Abs(angle) < e.Game.StaffSector/4 {
		e.Move.Speed = e.Game.WizardForwardSpeed
	}
}

// moveToward sets speed and strafe so we drift toward p whatever way we face,
// leaving the turn free for aiming.
func (e TickEnv) moveToward(p orb.Point) {
	rel := e.Self.AngleTo(p)
	fwd := math.Cos(rel)
	if fwd >= 0 {
		e.Move.Speed = fwd * e.Game.WizardForwardSpeed
	} else {
		e.Move.Speed = fwd * e.Game.WizardBackwardSpeed
	}
	e.Move.StrafeSpeed = math.Sin(rel) * e.Game.WizardStrafeSpeed
}

// updateStrafe keeps the sideways oscillation going. Runs last a random
// number of ticks; the direction also flips whenever one strafe step would
// leave the map or hit a unit.
func (e TickEnv) updateStrafe() {
	s := e.State
	if s.strafeTicks <= 0 {
		span := e.Tuning.StrafeMaxTicks - e.Tuning.StrafeMinTicks
		s.strafeTicks = e.Tuning.StrafeMinTicks + s.rng.Intn(span+1)
		s.strafeFactor = e.Tuning.StrafeMinFactor + s.rng.Float64()*(1-e.Tuning.StrafeMinFactor)
		s.strafeDir = -s.strafeDir
	}
	s.strafeTicks--

	step := func(dir float64) orb.Point {
		return geom.Offset(e.Self.Point(), e.Self.Angle+dir*math.Pi/2, e.Game.WizardStrafeSpeed)
	}
	if !e.stepClear(step(s.strafeDir)) {
		s.strafeDir = -s.strafeDir
		if !e.stepClear(step(s.strafeDir)) {
			e.Move.StrafeSpeed = 0
			return
		}
	}
	e.Move.StrafeSpeed = s.strafeDir * s.strafeFactor * e.Game.WizardStrafeSpeed
}

// bonusSpots are where bonuses appear on a map of side size.
func bonusSpots(size float64) []orb.Point {
	return []orb.Point{{size * 0.3, size * 0.3}, {size * 0.7, size * 0.7}}
}

// BonusTarget returns a bonus worth walking to: the nearest visible one, or
// the nearest spawn spot when a spawn is imminent and the spot is close.
func (e TickEnv) BonusTarget() *orb.Point {
	if e.tick.bonusDone {
		return e.tick.bonus
	}
	e.tick.bonusDone = true
	e.tick.bonus = e.findBonus()
	return e.tick.bonus
}

func (e TickEnv) HasBonusTarget() bool { return e.BonusTarget() != nil }

func (e TickEnv) findBonus() *orb.Point {
	var best *orb.Point
	bestDist := math.Inf(1)
	for i := range e.World.Bonuses {
		b := e.World.Bonuses[i].Point()
		if d := e.Self.DistanceTo(b); d <= e.visionRange() && d < bestDist {
			best, bestDist = &b, d
		}
	}
	if best != nil {
		return best
	}

	interval := e.Game.BonusAppearanceIntervalTicks
	tick := e.World.TickIndex
	if interval <= 0 {
		return nil
	}
	next := (tick/interval + 1) * interval
	if e.Game.TickCount > 0 && next >= e.Game.TickCount {
		return nil
	}
	if next-tick > e.Tuning.BonusWindowTicks {
		return nil
	}
	for _, spot := range bonusSpots(e.Game.MapSize) {
		if d := e.Self.DistanceTo(spot); d <= e.Tuning.BonusDivertRange && d < bestDist {
			best, bestDist = &spot, d
		}
	}
	return best
}
