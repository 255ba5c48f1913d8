package model

import "math"

// Game carries the arena constants. They are fixed for the whole game.
type Game struct {
	RandomSeed         int64   `json:"randomSeed"`
	TickCount          int     `json:"tickCount"`
	MapSize            float64 `json:"mapSize"`
	SkillsEnabled      bool    `json:"skillsEnabled"`
	RawMessagesEnabled bool    `json:"rawMessagesEnabled"`

	WizardRadius        float64 `json:"wizardRadius"`
	WizardCastRange     float64 `json:"wizardCastRange"`
	WizardVisionRange   float64 `json:"wizardVisionRange"`
	WizardForwardSpeed  float64 `json:"wizardForwardSpeed"`
	WizardBackwardSpeed float64 `json:"wizardBackwardSpeed"`
	WizardStrafeSpeed   float64 `json:"wizardStrafeSpeed"`
	WizardMaxTurnAngle  float64 `json:"wizardMaxTurnAngle"`

	StaffSector float64 `json:"staffSector"`
	StaffRange  float64 `json:"staffRange"`
	StaffDamage int     `json:"staffDamage"`

	MagicMissileRadius              float64 `json:"magicMissileRadius"`
	MagicMissileSpeed               float64 `json:"magicMissileSpeed"`
	MagicMissileDirectDamage        int     `json:"magicMissileDirectDamage"`
	FrostBoltRadius                 float64 `json:"frostBoltRadius"`
	FrostBoltSpeed                  float64 `json:"frostBoltSpeed"`
	FrostBoltDirectDamage           int     `json:"frostBoltDirectDamage"`
	FireballRadius                  float64 `json:"fireballRadius"`
	FireballSpeed                   float64 `json:"fireballSpeed"`
	FireballExplosionMinDamageRange float64 `json:"fireballExplosionMinDamageRange"`

	OrcWoodcutterAttackRange  float64 `json:"orcWoodcutterAttackRange"`
	FetishBlowdartAttackRange float64 `json:"fetishBlowdartAttackRange"`

	BonusRadius                  float64 `json:"bonusRadius"`
	BonusAppearanceIntervalTicks int     `json:"bonusAppearanceIntervalTicks"`
}

// DefaultGame returns the arena's stock constants. Harnesses normally send
// their own copy in the hello message.
func DefaultGame() Game {
	return Game{
		TickCount:     20000,
		MapSize:       4000,
		SkillsEnabled: true,

		WizardRadius:        35,
		WizardCastRange:     500,
		WizardVisionRange:   600,
		WizardForwardSpeed:  4,
		WizardBackwardSpeed: 3,
		WizardStrafeSpeed:   3,
		WizardMaxTurnAngle:  math.Pi / 30,

		StaffSector: math.Pi / 6,
		StaffRange:  70,
		StaffDamage: 12,

		MagicMissileRadius:              10,
		MagicMissileSpeed:               40,
		MagicMissileDirectDamage:        12,
		FrostBoltRadius:                 15,
		FrostBoltSpeed:                  35,
		FrostBoltDirectDamage:           24,
		FireballRadius:                  20,
		FireballSpeed:                   30,
		FireballExplosionMinDamageRange: 100,

		OrcWoodcutterAttackRange:  50,
		FetishBlowdartAttackRange: 300,

		BonusRadius:                  20,
		BonusAppearanceIntervalTicks: 2500,
	}
}

// ProjectileFor returns radius and speed of the projectile an action fires.
func (g *Game) ProjectileFor(a ActionType) (radius, speed float64) {
	switch a {
	case ActionFrostBolt:
		return g.FrostBoltRadius, g.FrostBoltSpeed
	case ActionFireball:
		return g.FireballRadius, g.FireballSpeed
	default:
		return g.MagicMissileRadius, g.MagicMissileSpeed
	}
}
