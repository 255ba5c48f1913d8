// Package config loads the wizard's tuning file. Everything has a default, so
// running without a file is the normal case.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nstehr/vimy/wizard-core/model"
)

type Config struct {
	Tuning     Tuning             `yaml:"tuning"`
	SkillOrder []string           `yaml:"skill_order"`
	Lanes      map[string][]int64 `yaml:"lanes"`

	skills []model.SkillType
	laneOf map[int64]model.LaneType
}

// defaultSkillOrder walks each branch to its spell: frost first since target
// selection leans on it, then range, fireball, haste and shield.
var defaultSkillOrder = []model.SkillType{
	model.SkillMagicalDamageBonusPassive1,
	model.SkillMagicalDamageBonusAura1,
	model.SkillMagicalDamageBonusPassive2,
	model.SkillMagicalDamageBonusAura2,
	model.SkillFrostBolt,
	model.SkillRangeBonusPassive1,
	model.SkillRangeBonusAura1,
	model.SkillRangeBonusPassive2,
	model.SkillRangeBonusAura2,
	model.SkillAdvancedMagicMissile,
	model.SkillStaffDamageBonusPassive1,
	model.SkillStaffDamageBonusAura1,
	model.SkillStaffDamageBonusPassive2,
	model.SkillStaffDamageBonusAura2,
	model.SkillFireball,
	model.SkillMovementBonusFactorPassive1,
	model.SkillMovementBonusFactorAura1,
	model.SkillMovementBonusFactorPassive2,
	model.SkillMovementBonusFactorAura2,
	model.SkillHaste,
	model.SkillMagicalDamageAbsorptionPassive1,
	model.SkillMagicalDamageAbsorptionAura1,
	model.SkillMagicalDamageAbsorptionPassive2,
	model.SkillMagicalDamageAbsorptionAura2,
	model.SkillShield,
}

// Default returns the built-in configuration.
func Default() Config {
	c := Config{
		Tuning: DefaultTuning(),
		Lanes: map[string][]int64{
			"top":    {1, 2, 6, 7},
			"middle": {3, 8},
			"bottom": {4, 5, 9, 10},
		},
	}
	for _, s := range defaultSkillOrder {
		c.SkillOrder = append(c.SkillOrder, s.String())
	}
	if err := c.resolve(); err != nil {
		panic(fmt.Sprintf("default config invalid: %v", err))
	}
	return c
}

// Load reads a YAML file over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	// A lanes table in the file replaces the default one rather than merging
	// into it, otherwise an id could end up on two lanes.
	c.Lanes = nil
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if c.Lanes == nil {
		c.Lanes = Default().Lanes
	}
	if err := c.resolve(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// resolve validates tuning and turns the named skill order and lane table
// into typed lookups.
func (c *Config) resolve() error {
	c.Tuning.Validate()

	c.skills = c.skills[:0]
	for _, name := range c.SkillOrder {
		s, ok := model.ParseSkill(name)
		if !ok {
			return fmt.Errorf("unknown skill %q", name)
		}
		c.skills = append(c.skills, s)
	}

	c.laneOf = make(map[int64]model.LaneType)
	for name, ids := range c.Lanes {
		lane, ok := model.ParseLane(name)
		if !ok {
			return fmt.Errorf("unknown lane %q", name)
		}
		for _, id := range ids {
			c.laneOf[id] = lane
		}
	}
	return nil
}

// Skills is the priority-ordered skill list.
func (c Config) Skills() []model.SkillType {
	return c.skills
}

// LaneFor looks up a wizard's lane. Ids missing from the table go bottom.
func (c Config) LaneFor(id int64) model.LaneType {
	if lane, ok := c.laneOf[id]; ok {
		return lane
	}
	return model.LaneBottom
}
