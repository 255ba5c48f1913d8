package model

type SkillType int

const SkillNone SkillType = -1

// Skill tree, five branches of five. Each branch must be learned in order.
const (
	SkillRangeBonusPassive1 SkillType = iota
	SkillRangeBonusAura1
	SkillRangeBonusPassive2
	SkillRangeBonusAura2
	SkillAdvancedMagicMissile
	SkillMagicalDamageBonusPassive1
	SkillMagicalDamageBonusAura1
	SkillMagicalDamageBonusPassive2
	SkillMagicalDamageBonusAura2
	SkillFrostBolt
	SkillStaffDamageBonusPassive1
	SkillStaffDamageBonusAura1
	SkillStaffDamageBonusPassive2
	SkillStaffDamageBonusAura2
	SkillFireball
	SkillMovementBonusFactorPassive1
	SkillMovementBonusFactorAura1
	SkillMovementBonusFactorPassive2
	SkillMovementBonusFactorAura2
	SkillHaste
	SkillMagicalDamageAbsorptionPassive1
	SkillMagicalDamageAbsorptionAura1
	SkillMagicalDamageAbsorptionPassive2
	SkillMagicalDamageAbsorptionAura2
	SkillShield
)

var skillNames = map[SkillType]string{
	SkillRangeBonusPassive1:              "range_bonus_passive_1",
	SkillRangeBonusAura1:                 "range_bonus_aura_1",
	SkillRangeBonusPassive2:              "range_bonus_passive_2",
	SkillRangeBonusAura2:                 "range_bonus_aura_2",
	SkillAdvancedMagicMissile:            "advanced_magic_missile",
	SkillMagicalDamageBonusPassive1:      "magical_damage_bonus_passive_1",
	SkillMagicalDamageBonusAura1:         "magical_damage_bonus_aura_1",
	SkillMagicalDamageBonusPassive2:      "magical_damage_bonus_passive_2",
	SkillMagicalDamageBonusAura2:         "magical_damage_bonus_aura_2",
	SkillFrostBolt:                       "frost_bolt",
	SkillStaffDamageBonusPassive1:        "staff_damage_bonus_passive_1",
	SkillStaffDamageBonusAura1:           "staff_damage_bonus_aura_1",
	SkillStaffDamageBonusPassive2:        "staff_damage_bonus_passive_2",
	SkillStaffDamageBonusAura2:           "staff_damage_bonus_aura_2",
	SkillFireball:                        "fireball",
	SkillMovementBonusFactorPassive1:     "movement_bonus_factor_passive_1",
	SkillMovementBonusFactorAura1:        "movement_bonus_factor_aura_1",
	SkillMovementBonusFactorPassive2:     "movement_bonus_factor_passive_2",
	SkillMovementBonusFactorAura2:        "movement_bonus_factor_aura_2",
	SkillHaste:                           "haste",
	SkillMagicalDamageAbsorptionPassive1: "magical_damage_absorption_passive_1",
	SkillMagicalDamageAbsorptionAura1:    "magical_damage_absorption_aura_1",
	SkillMagicalDamageAbsorptionPassive2: "magical_damage_absorption_passive_2",
	SkillMagicalDamageAbsorptionAura2:    "magical_damage_absorption_aura_2",
	SkillShield:                          "shield",
}

func (s SkillType) String() string {
	if n, ok := skillNames[s]; ok {
		return n
	}
	return "none"
}

// ParseSkill looks a skill up by its snake_case name.
func ParseSkill(name string) (SkillType, bool) {
	for s, n := range skillNames {
		if n == name {
			return s, true
		}
	}
	return SkillNone, false
}
