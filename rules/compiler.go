package rules

import (
	"fmt"

	"github.com/nstehr/vimy/wizard-core/config"
)

// CompileCascade generates the decision cascade from the tuning values.
// Conditions are built via fmt.Sprintf with float literals so tuned values
// always type-check against the float64 helpers.
func CompileCascade(t config.Tuning) []*Rule {
	t.Validate()
	var rules []*Rule

	// --- Bookkeeping (never end the tick) ---

	rules = append(rules, &Rule{
		Name:         "learn-skill",
		Priority:     1100,
		Category:     "progression",
		Exclusive:    true,
		ConditionSrc: `SkillsEnabled() && SkillPending()`,
		Action:       ActionLearnSkill,
	})

	rules = append(rules, &Rule{
		Name:         "broadcast-lanes",
		Priority:     1050,
		Category:     "comms",
		Exclusive:    true,
		ConditionSrc: `IsMaster() && !LanesBroadcast()`,
		Action:       ActionBroadcastLanes,
	})

	// --- Survival ---

	rules = append(rules, &Rule{
		Name:         "low-health-retreat",
		Priority:     1000,
		Category:     "survival",
		Exclusive:    true,
		ConditionSrc: fmt.Sprintf(`LifeRatio() < %.3f`, t.LowLifeRatio),
		Action:       ActionLowHealthRetreat,
	})

	// --- Objectives ---

	rules = append(rules, &Rule{
		Name:         "collect-bonus",
		Priority:     900,
		Category:     "objective",
		Exclusive:    false,
		ConditionSrc: fmt.Sprintf(`!Retreating() && LifeRatio() >= %.3f && HasBonusTarget()`, t.LowLifeRatio),
		Action:       ActionCollectBonus,
	})

	// --- Lane discipline ---

	rules = append(rules, &Rule{
		Name:         "rejoin-lane",
		Priority:     800,
		Category:     "lane",
		Exclusive:    false,
		ConditionSrc: `!OnLane()`,
		Action:       ActionRejoinLane,
	})

	rules = append(rules, &Rule{
		Name:         "chase-straying-wizard",
		Priority:     750,
		Category:     "lane",
		Exclusive:    false,
		ConditionSrc: `!Retreating() && StrayingWizard() != nil`,
		Action:       ActionChaseStrayingWizard,
	})

	rules = append(rules, &Rule{
		Name:         "hold-behind-vanguard",
		Priority:     700,
		Category:     "lane",
		Exclusive:    true,
		ConditionSrc: fmt.Sprintf(`AheadOfVanguard(%.1f)`, t.VanguardSlack),
		Action:       ActionHoldBehindVanguard,
	})

	// --- Threat reaction (skipped when low health already fell through) ---

	rules = append(rules, &Rule{
		Name:         "threat-retreat",
		Priority:     600,
		Category:     "survival",
		Exclusive:    true,
		ConditionSrc: `!Retreating() && ClosestAttacker() != nil && RetreatWorthy()`,
		Action:       ActionThreatRetreat,
	})

	// --- Combat and movement ---

	rules = append(rules, &Rule{
		Name:         "engage",
		Priority:     500,
		Category:     "combat",
		Exclusive:    true,
		ConditionSrc: `NearestTarget() != nil`,
		Action:       ActionEngage,
	})

	rules = append(rules, &Rule{
		Name:         "advance",
		Priority:     100,
		Category:     "movement",
		Exclusive:    true,
		ConditionSrc: `true`,
		Action:       ActionAdvance,
	})

	return rules
}
