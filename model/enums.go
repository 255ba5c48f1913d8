package model

// Numbering of every enum here must stay in sync with the arena harness.

type Faction int

const (
	FactionAcademy Faction = iota
	FactionRenegades
	FactionNeutral
	FactionOther // trees and other scenery
)

// Kind tags which variant a Unit is. Dispatch on it with a switch, never on
// which list the unit happened to come from.
type Kind int

const (
	KindWizard Kind = iota
	KindMinion
	KindBuilding
	KindTree
	KindBonus
	KindProjectile
)

func (k Kind) String() string {
	switch k {
	case KindWizard:
		return "wizard"
	case KindMinion:
		return "minion"
	case KindBuilding:
		return "building"
	case KindTree:
		return "tree"
	case KindBonus:
		return "bonus"
	case KindProjectile:
		return "projectile"
	}
	return "unknown"
}

type MinionType int

const (
	MinionOrcWoodcutter  MinionType = iota // melee
	MinionFetishBlowdart                   // ranged
)

type BuildingType int

const (
	BuildingGuardianTower BuildingType = iota
	BuildingFactionBase
)

type BonusType int

const (
	BonusEmpower BonusType = iota
	BonusHaste
	BonusShield
)

type ProjectileType int

const (
	ProjectileMagicMissile ProjectileType = iota
	ProjectileFrostBolt
	ProjectileFireball
	ProjectileDart
)

type StatusType int

const (
	StatusBurning StatusType = iota
	StatusEmpowered
	StatusFrozen
	StatusHastened
	StatusShielded
)

type ActionType int

const (
	ActionNone ActionType = iota
	ActionStaff
	ActionMagicMissile
	ActionFrostBolt
	ActionFireball
	ActionHaste
	ActionShield
)

func (a ActionType) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionStaff:
		return "staff"
	case ActionMagicMissile:
		return "magic_missile"
	case ActionFrostBolt:
		return "frost_bolt"
	case ActionFireball:
		return "fireball"
	case ActionHaste:
		return "haste"
	case ActionShield:
		return "shield"
	}
	return "unknown"
}

// LaneType identifies one of the three lane polylines. LaneNone marks a unit
// that is off every lane.
type LaneType int

const (
	LaneNone   LaneType = -1
	LaneTop    LaneType = 0
	LaneMiddle LaneType = 1
	LaneBottom LaneType = 2
)

// Lanes lists the real lanes in index order.
var Lanes = []LaneType{LaneTop, LaneMiddle, LaneBottom}

func (l LaneType) String() string {
	switch l {
	case LaneTop:
		return "top"
	case LaneMiddle:
		return "middle"
	case LaneBottom:
		return "bottom"
	}
	return "none"
}

// ParseLane accepts the names produced by LaneType.String.
func ParseLane(s string) (LaneType, bool) {
	for _, l := range Lanes {
		if l.String() == s {
			return l, true
		}
	}
	return LaneNone, false
}
