package rules

import (
	"github.com/nstehr/vimy/wizard-core/model"
)

// IsHostile decides whether u is an enemy of the wizard. Neutrals become
// hostile for good the first time they are seen hurt or mid-attack; that
// observation is recorded in State, so this is not side-effect free.
func (e TickEnv) IsHostile(u *model.Unit) bool {
	switch u.Faction {
	case e.Self.Faction, model.FactionOther:
		return false
	case model.FactionNeutral:
		if e.State.Angered(u.ID) {
			return true
		}
		if u.Kind == model.KindMinion && (u.Life < u.MaxLife || u.RemainingActionCooldownTicks > 0) {
			e.State.anger(u.ID)
			return true
		}
		return false
	}
	return true
}

// AttackRange is how far u can hit from its center. Minion ranges carry the
// configured safety margins.
func (e TickEnv) AttackRange(u *model.Unit) float64 {
	switch u.Kind {
	case model.KindWizard:
		if u.CastRange > 0 {
			return u.CastRange
		}
		return e.Game.WizardCastRange
	case model.KindBuilding:
		return u.AttackRange
	case model.KindMinion:
		switch u.MinionType {
		case model.MinionOrcWoodcutter:
			return e.Game.OrcWoodcutterAttackRange + e.Tuning.OrcRangeMargin
		case model.MinionFetishBlowdart:
			return e.Game.FetishBlowdartAttackRange + e.Tuning.FetishRangeMargin
		}
	}
	return 0
}

func (e TickEnv) classify() {
	if e.tick.classified {
		return
	}
	e.tick.classified = true
	for _, u := range e.World.Living() {
		if u.ID == e.Self.ID {
			continue
		}
		if u.Faction == e.Self.Faction {
			e.tick.allies = append(e.tick.allies, u)
		} else if e.IsHostile(u) {
			e.tick.enemies = append(e.tick.enemies, u)
		}
	}
}

// Enemies returns every visible hostile wizard, minion and building.
func (e TickEnv) Enemies() []*model.Unit {
	e.classify()
	return e.tick.enemies
}

// Allies returns every visible friendly unit except the wizard itself.
func (e TickEnv) Allies() []*model.Unit {
	e.classify()
	return e.tick.allies
}

// LaneOf projects u onto the lane paths.
func (e TickEnv) LaneOf(u *model.Unit) model.LaneType {
	return e.State.Paths.LaneOf(u, e.Tuning.LaneWidth)
}

// removable reports whether u is an obstacle we may shoot our way through.
func (e TickEnv) removable(u *model.Unit) bool {
	return u.Kind == model.KindTree || e.IsHostile(u)
}

// targetPriority ranks kinds for target selection; higher is preferred.
func targetPriority(u *model.Unit) int {
	switch u.Kind {
	case model.KindBuilding:
		return 4
	case model.KindMinion:
		if u.MinionType == model.MinionFetishBlowdart {
			return 3
		}
		return 2
	case model.KindWizard:
		return 1
	}
	return 0
}
