package model

import (
	"math"
	"slices"

	"github.com/paulmach/orb"

	"github.com/nstehr/vimy/wizard-core/geom"
)

type Status struct {
	Type                   StatusType `json:"type"`
	RemainingDurationTicks int        `json:"remainingDurationTicks"`
}

type Message struct {
	Lane         LaneType  `json:"lane"`
	SkillToLearn SkillType `json:"skillToLearn"`
	RawMessage   []byte    `json:"rawMessage,omitempty"`
}

// Unit is every circular thing in the arena, tagged by Kind. Fields that only
// make sense for one kind are zero for the others.
type Unit struct {
	ID      int64   `json:"id"`
	Kind    Kind    `json:"kind"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	SpeedX  float64 `json:"speedX"`
	SpeedY  float64 `json:"speedY"`
	Angle   float64 `json:"angle"`
	Radius  float64 `json:"radius"`
	Faction Faction `json:"faction"`
	Life    int     `json:"life"`
	MaxLife int     `json:"maxLife"`

	Statuses                     []Status `json:"statuses,omitempty"`
	RemainingActionCooldownTicks int      `json:"remainingActionCooldownTicks"`
	VisionRange                  float64  `json:"visionRange"`

	// Wizard
	OwnerPlayerID                  int64       `json:"ownerPlayerId,omitempty"`
	Me                             bool        `json:"me,omitempty"`
	Master                         bool        `json:"master,omitempty"`
	CastRange                      float64     `json:"castRange,omitempty"`
	XP                             int         `json:"xp,omitempty"`
	Level                          int         `json:"level,omitempty"`
	Skills                         []SkillType `json:"skills,omitempty"`
	RemainingCooldownTicksByAction []int       `json:"remainingCooldownTicksByAction,omitempty"`
	Messages                       []Message   `json:"messages,omitempty"`

	// Minion
	MinionType    MinionType `json:"minionType,omitempty"`
	Damage        int        `json:"damage,omitempty"`
	CooldownTicks int        `json:"cooldownTicks,omitempty"`

	// Building
	BuildingType BuildingType `json:"buildingType,omitempty"`
	AttackRange  float64      `json:"attackRange,omitempty"`

	// Bonus
	BonusType BonusType `json:"bonusType,omitempty"`

	// Projectile
	ProjectileType ProjectileType `json:"projectileType,omitempty"`
	OwnerUnitID    int64          `json:"ownerUnitId,omitempty"`
}

func (u *Unit) Point() orb.Point { return orb.Point{u.X, u.Y} }

func (u *Unit) Velocity() orb.Point { return orb.Point{u.SpeedX, u.SpeedY} }

func (u *Unit) DistanceTo(p orb.Point) float64 { return geom.Distance(u.Point(), p) }

func (u *Unit) DistanceToUnit(o *Unit) float64 { return geom.Distance(u.Point(), o.Point()) }

// AngleTo is the turn needed to face p, relative to the unit's heading.
func (u *Unit) AngleTo(p orb.Point) float64 {
	abs := math.Atan2(p[1]-u.Y, p[0]-u.X)
	return geom.NormalizeAngle(abs - u.Angle)
}

func (u *Unit) AngleToUnit(o *Unit) float64 { return u.AngleTo(o.Point()) }

// PredictPosition extrapolates the unit ticks ahead at its current velocity.
func (u *Unit) PredictPosition(ticks float64) orb.Point {
	return geom.Predict(u.Point(), u.Velocity(), ticks)
}

func (u *Unit) HasStatus(s StatusType) bool {
	return slices.ContainsFunc(u.Statuses, func(st Status) bool { return st.Type == s })
}

func (u *Unit) HasSkill(s SkillType) bool { return slices.Contains(u.Skills, s) }

// CooldownFor returns the wizard's remaining cooldown for a specific action.
// Units without a per-action table report the shared action cooldown.
func (u *Unit) CooldownFor(a ActionType) int {
	if int(a) < len(u.RemainingCooldownTicksByAction) {
		return u.RemainingCooldownTicksByAction[a]
	}
	return u.RemainingActionCooldownTicks
}

func (u *Unit) IsFactionBase() bool {
	return u.Kind == KindBuilding && u.BuildingType == BuildingFactionBase
}

// LifeRatio is life/maxLife, 1 for units without a max.
func (u *Unit) LifeRatio() float64 {
	if u.MaxLife <= 0 {
		return 1
	}
	return float64(u.Life) / float64(u.MaxLife)
}
