package rules

import (
	"math"

	"github.com/nstehr/vimy/wizard-core/model"
)

// attackCooldown is how long u must wait before it can strike again.
func attackCooldown(u *model.Unit) int {
	if u.Kind == model.KindWizard {
		next := min(u.CooldownFor(model.ActionStaff), u.CooldownFor(model.ActionMagicMissile))
		return max(u.RemainingActionCooldownTicks, next)
	}
	return u.RemainingActionCooldownTicks
}

// threatens reports whether u can hit the wizard now or within the grace window.
func (e TickEnv) threatens(u *model.Unit) bool {
	if e.Self.DistanceToUnit(u) > e.AttackRange(u)+e.Self.Radius {
		return false
	}
	return attackCooldown(u) <= e.Tuning.AttackerGraceTicks
}

// ClosestAttacker returns the enemy about to hit us. Orc woodcutters are
// checked first since they close distance fastest; otherwise the nearest
// threatening enemy wins.
func (e TickEnv) ClosestAttacker() *model.Unit {
	if e.tick.attackerDone {
		return e.tick.attacker
	}
	e.tick.attackerDone = true

	var best *model.Unit
	bestDist := math.Inf(1)
	consider := func(u *model.Unit) {
		if !e.threatens(u) {
			return
		}
		if d := e.Self.DistanceToUnit(u); d < bestDist {
			best, bestDist = u, d
		}
	}

	for _, u := range e.Enemies() {
		if u.Kind == model.KindMinion && u.MinionType == model.MinionOrcWoodcutter {
			consider(u)
		}
	}
	if best == nil {
		for _, u := range e.Enemies() {
			consider(u)
		}
	}
	e.tick.attacker = best
	return best
}

// RetreatWorthy reports whether the closest attacker justifies backing off:
// it must not be nearly dead, and must be a wizard, a tower, or close.
func (e TickEnv) RetreatWorthy() bool {
	a := e.ClosestAttacker()
	if a == nil || a.Life <= e.Tuning.ExecuteLife {
		return false
	}
	switch a.Kind {
	case model.KindWizard, model.KindBuilding:
		return true
	}
	return e.Self.DistanceToUnit(a) <= e.Tuning.ThreatRetreatRange
}

func (e TickEnv) frostReady() bool {
	return e.State.Caps.FrostBolt && e.Self.CooldownFor(model.ActionFrostBolt) == 0
}

func freezable(u *model.Unit) bool {
	return (u.Kind == model.KindWizard || u.Kind == model.KindMinion) && !u.HasStatus(model.StatusFrozen)
}

func boolKey(b bool) float64 {
	if b {
		return 0
	}
	return 1
}

// targetKey orders targets; lower keys are preferred and are compared
// lexicographically.
func (e TickEnv) targetKey(u *model.Unit) [8]float64 {
	var k [8]float64
	if e.frostReady() {
		k[0] = boolKey(freezable(u))
	}
	if dmg := e.Game.MagicMissileDirectDamage; dmg > 0 {
		casts := (u.Life + dmg - 1) / dmg
		k[1] = boolKey(casts <= e.Tuning.KillCasts)
	} else {
		k[1] = 1
	}
	k[2] = -float64(targetPriority(u))

	angle := math.Abs(e.Self.AngleToUnit(u))
	k[3] = boolKey(angle <= e.Game.StaffSector/2)
	k[4] = float64(u.Life)
	if e.Game.WizardMaxTurnAngle > 0 {
		k[5] = math.Ceil(angle / e.Game.WizardMaxTurnAngle)
	}
	k[6] = e.Self.DistanceToUnit(u) - 0.6*u.Radius
	k[7] = float64(u.ID)
	return k
}

// SelectTarget picks the better of two targets. The ladder, in order:
// freezable while frost is ready, killable within KillCasts missiles, kind
// priority, already inside the cast sector, lower life, fewer ticks to turn,
// closer edge, lower id. Every step is strict, so argument order never
// changes the result.
func (e TickEnv) SelectTarget(a, b *model.Unit) *model.Unit {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	ka, kb := e.targetKey(a), e.targetKey(b)
	for i := range ka {
		if ka[i] < kb[i] {
			return a
		}
		if kb[i] < ka[i] {
			return b
		}
	}
	return a
}

// NearestTarget is the unit to attack this tick. An attacker about to hit us
// always wins; otherwise the best enemy within cast range.
func (e TickEnv) NearestTarget() *model.Unit {
	if e.tick.targetDone {
		return e.tick.target
	}
	e.tick.targetDone = true

	if a := e.ClosestAttacker(); a != nil {
		e.tick.target = a
		return a
	}
	var best *model.Unit
	for _, u := range e.Enemies() {
		if e.Self.DistanceToUnit(u)-u.Radius > e.castRange() {
			continue
		}
		best = e.SelectTarget(best, u)
	}
	e.tick.target = best
	return best
}

// Vanguard is the ally furthest along our lane, or our faction base when no
// ally is on the lane. Nil only if the base is not in the snapshot.
func (e TickEnv) Vanguard() *model.Unit {
	if e.tick.vanguardDone {
		return e.tick.vanguard
	}
	e.tick.vanguardDone = true

	var best *model.Unit
	bestProgress := math.Inf(-1)
	for _, u := range e.Allies() {
		if e.LaneOf(u) != e.State.Lane {
			continue
		}
		if p := e.State.Paths.DistanceAlongLane(e.State.Lane, u.Point()); p > bestProgress {
			best, bestProgress = u, p
		}
	}
	if best == nil {
		for i := range e.World.Buildings {
			b := &e.World.Buildings[i]
			if b.IsFactionBase() && b.Faction == e.Self.Faction {
				best = b
				break
			}
		}
	}
	e.tick.vanguard = best
	return best
}

// VanguardProgress is the vanguard's distance along our lane, 0 without one.
func (e TickEnv) VanguardProgress() float64 {
	v := e.Vanguard()
	if v == nil {
		return 0
	}
	return e.State.Paths.DistanceAlongLane(e.State.Lane, v.Point())
}

// AheadOfVanguard reports whether we are within slack of the vanguard or
// past it, where we should stop pushing.
func (e TickEnv) AheadOfVanguard(slack float64) bool {
	return e.Progress() > e.VanguardProgress()-slack
}

// StrayingWizard returns the nearest enemy wizard in vision that has slipped
// behind our vanguard on our lane. Any straying minion or building means a
// real push rather than a lone wizard, and cancels the chase.
func (e TickEnv) StrayingWizard() *model.Unit {
	front := e.VanguardProgress()
	var best *model.Unit
	bestDist := math.Inf(1)
	for _, u := range e.Enemies() {
		d := e.Self.DistanceToUnit(u)
		if d > e.visionRange() || e.LaneOf(u) != e.State.Lane {
			continue
		}
		if e.State.Paths.DistanceAlongLane(e.State.Lane, u.Point()) >= front {
			continue
		}
		if u.Kind != model.KindWizard {
			return nil
		}
		if d < bestDist {
			best, bestDist = u, d
		}
	}
	return best
}

// wizardThreat is the nearest enemy wizard inside our cast range.
func (e TickEnv) wizardThreat() *model.Unit {
	var best *model.Unit
	bestDist := math.Inf(1)
	for _, u := range e.Enemies() {
		if u.Kind != model.KindWizard {
			continue
		}
		if d := e.Self.DistanceToUnit(u); d-u.Radius <= e.castRange() && d < bestDist {
			best, bestDist = u, d
		}
	}
	return best
}
