package rules

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/nstehr/vimy/wizard-core/geom"
	"github.com/nstehr/vimy/wizard-core/model"
)

// ActionLearnSkill requests the next skill in the configured order.
func ActionLearnSkill(env TickEnv) bool {
	i := env.nextSkillIndex()
	skill := env.State.SkillOrder[i]
	env.Move.SkillToLearn = skill
	if env.State.SkillsLearned != i {
		slog.Info("learning skill", "skill", skill.String(), "level", env.Self.Level, "index", i)
		env.State.SkillsLearned = i
	}
	return false
}

// ActionBroadcastLanes sends every teammate its lane, once, in id order.
func ActionBroadcastLanes(env TickEnv) bool {
	var mates []*model.Unit
	for i := range env.World.Wizards {
		w := &env.World.Wizards[i]
		if w.Faction == env.Self.Faction && w.ID != env.Self.ID {
			mates = append(mates, w)
		}
	}
	slices.SortFunc(mates, func(a, b *model.Unit) int { return cmp.Compare(a.ID, b.ID) })

	msgs := make([]model.Message, 0, len(mates))
	for _, m := range mates {
		msgs = append(msgs, model.Message{Lane: env.State.laneFor(m.ID), SkillToLearn: model.SkillNone})
	}
	env.Move.Messages = msgs
	env.State.LanesBroadcast = true
	slog.Info("lane assignments broadcast", "teammates", len(msgs))
	return false
}

// ActionLowHealthRetreat shoots whatever is in reach, then backs off. When
// the way back is blocked it only forbids walking forward and lets the rest
// of the cascade decide.
func ActionLowHealthRetreat(env TickEnv) bool {
	if !env.canRetreat() {
		env.tick.noAdvance = true
		return false
	}
	if t := env.NearestTarget(); t != nil {
		env.setupAttack(t)
	}
	env.castOnSelf(model.ActionHaste, env.State.Caps.Haste, model.StatusHastened)
	return env.retreat()
}

// ActionCollectBonus heads for a bonus. An enemy wizard in range is fought on
// the way, strafing so the turn can track it.
func ActionCollectBonus(env TickEnv) bool {
	p := *env.BonusTarget()
	if w := env.wizardThreat(); w != nil {
		env.setupAttack(w)
		env.moveToward(p)
		return true
	}
	if env.Self.DistanceTo(p) <= env.Self.Radius {
		// Standing on the spawn spot; wait for it.
		env.Move.StrafeSpeed = 0
		return true
	}
	env.goToWaypoint(p)
	return true
}

// ActionRejoinLane walks back to the vanguard after wandering off our lane.
func ActionRejoinLane(env TickEnv) bool {
	if v := env.Vanguard(); v != nil {
		env.goToWaypoint(v.Point())
	} else {
		env.goToWaypoint(env.PreviousWaypoint())
	}
	return true
}

func ActionChaseStrayingWizard(env TickEnv) bool {
	w := env.StrayingWizard()
	slog.Debug("chasing straying wizard", "id", w.ID, "distance", env.Self.DistanceToUnit(w))
	env.goToWaypoint(w.Point())
	env.setupAttack(w)
	return true
}

// ActionHoldBehindVanguard stops the advance near the front and steps back
// when we have run past it; a successful step back ends the tick.
func ActionHoldBehindVanguard(env TickEnv) bool {
	env.tick.noAdvance = true
	if env.Progress()-env.VanguardProgress() > env.Tuning.VanguardSlack {
		return env.retreat()
	}
	return false
}

// ActionThreatRetreat backs off from an attacker, firing first (or raising a
// shield). If there is no room behind us we hold ground instead.
func ActionThreatRetreat(env TickEnv) bool {
	if !env.canRetreat() {
		env.tick.noAdvance = true
		return false
	}
	if t := env.NearestTarget(); t != nil {
		env.setupAttack(t)
	}
	env.castOnSelf(model.ActionShield, env.State.Caps.Shield, model.StatusShielded)
	return env.retreat()
}

// ActionEngage shoots the preferred target without moving.
func ActionEngage(env TickEnv) bool {
	env.setupAttack(env.NearestTarget())
	return true
}

func ActionAdvance(env TickEnv) bool {
	env.goToWaypoint(env.NextWaypoint())
	return true
}

// adoptLaneMessages takes the lane from the latest message the master sent.
func adoptLaneMessages(env TickEnv) {
	msgs := env.Self.Messages
	if len(msgs) == 0 {
		return
	}
	lane := msgs[len(msgs)-1].Lane
	if lane == env.State.Lane || !slices.Contains(model.Lanes, lane) {
		return
	}
	slog.Info("lane reassigned by master", "from", env.State.Lane, "to", lane)
	env.State.Lane = lane
}

// logTickDiagnostics answers "what is the wizard thinking?" every 100 ticks.
func logTickDiagnostics(env TickEnv) {
	tick := env.World.TickIndex
	if tick-env.State.lastDiag < 100 && tick >= env.State.lastDiag {
		return
	}
	env.State.lastDiag = tick

	var target int64 = -1
	if t := env.NearestTarget(); t != nil {
		target = t.ID
	}
	slog.Info("wizard diagnostics",
		"tick", tick,
		"lane", env.State.Lane,
		"life", env.Self.Life,
		"progress", int(env.Progress()),
		"vanguard", int(env.VanguardProgress()),
		"enemies", len(env.Enemies()),
		"target", target,
		"nextWaypoint", geom.Distance(env.Self.Point(), env.NextWaypoint()),
	)
}
