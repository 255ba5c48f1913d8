package rules

import (
	"math"

	"github.com/nstehr/vimy/wizard-core/geom"
	"github.com/nstehr/vimy/wizard-core/model"
)

// setupAttack turns toward target and, cooldowns permitting, sets at most one
// offensive action: staff when in reach, otherwise the first projectile whose
// predicted target body overlaps the cast sector. The cast angle is clamped
// into the sector so an edge-on shot still clips the body.
func (e TickEnv) setupAttack(target *model.Unit) {
	self := e.Self
	angle := self.AngleToUnit(target)
	e.Move.Turn = angle

	if self.RemainingActionCooldownTicks > 0 || e.Move.Action != model.ActionNone {
		return
	}

	half := e.Game.StaffSector / 2
	dist := self.DistanceToUnit(target)
	if dist <= e.Game.StaffRange+target.Radius && math.Abs(angle) < half && self.CooldownFor(model.ActionStaff) == 0 {
		e.Move.Action = model.ActionStaff
		return
	}
	if dist-target.Radius > e.castRange() {
		return
	}

	for _, action := range e.rangedOptions(target, dist) {
		if self.CooldownFor(action) > 0 {
			continue
		}
		radius, speed := e.Game.ProjectileFor(action)
		if speed <= 0 {
			continue
		}
		aim := target.PredictPosition(dist / speed)
		aimAngle := self.AngleTo(aim)
		aimDist := geom.Distance(self.Point(), aim)
		spread := math.Asin(math.Min(1, target.Radius/aimDist))
		if !geom.SectorOverlap(aimAngle-spread, aimAngle+spread, -half, half) {
			continue
		}
		e.Move.Action = action
		e.Move.CastAngle = math.Max(-half, math.Min(half, aimAngle))
		e.Move.MinCastDistance = aimDist - target.Radius + radius
		return
	}
}

// rangedOptions lists the projectiles worth trying against target, in order.
func (e TickEnv) rangedOptions(target *model.Unit, dist float64) []model.ActionType {
	opts := []model.ActionType{model.ActionMagicMissile}
	if e.State.Caps.FrostBolt && freezable(target) {
		opts = append(opts, model.ActionFrostBolt)
	}
	if e.State.Caps.Fireball && dist > e.Game.FireballExplosionMinDamageRange+e.Self.Radius {
		opts = append(opts, model.ActionFireball)
	}
	return opts
}

// castOnSelf uses a self-targeted status spell when it is unlocked, ready, not
// already active, and no other action was chosen this tick.
func (e TickEnv) castOnSelf(action model.ActionType, unlocked bool, status model.StatusType) bool {
	self := e.Self
	if !unlocked || e.Move.Action != model.ActionNone || self.RemainingActionCooldownTicks > 0 {
		return false
	}
	if self.CooldownFor(action) > 0 || self.HasStatus(status) {
		return false
	}
	e.Move.Action = action
	e.Move.StatusTargetID = -1
	return true
}

// refreshCapabilities reads the unlocked spells off the learned skills.
func (e TickEnv) refreshCapabilities() {
	e.State.Caps = Capabilities{
		FrostBolt: e.Self.HasSkill(model.SkillFrostBolt),
		Fireball:  e.Self.HasSkill(model.SkillFireball),
		Haste:     e.Self.HasSkill(model.SkillHaste),
		Shield:    e.Self.HasSkill(model.SkillShield),
	}
}

// nextSkillIndex is the position in the skill order of the first skill not
// yet learned.
func (e TickEnv) nextSkillIndex() int {
	for i, s := range e.State.SkillOrder {
		if !e.Self.HasSkill(s) {
			return i
		}
	}
	return len(e.State.SkillOrder)
}

// SkillPending reports whether a level is unspent and the order has more to learn.
func (e TickEnv) SkillPending() bool {
	return len(e.Self.Skills) < e.Self.Level && e.nextSkillIndex() < len(e.State.SkillOrder)
}
