package config

// Tuning holds the thresholds the decision cascade is built from. Validate
// clamps each one so a bad config file degrades behavior instead of breaking it.
type Tuning struct {
	LowLifeRatio       float64 `yaml:"low_life_ratio"`
	WaypointRadius     float64 `yaml:"waypoint_radius"`
	LaneWidth          float64 `yaml:"lane_width"`
	VanguardSlack      float64 `yaml:"vanguard_slack"`
	AttackerGraceTicks int     `yaml:"attacker_grace_ticks"`
	KillCasts          int     `yaml:"kill_casts"`
	OrcRangeMargin     float64 `yaml:"orc_range_margin"`
	FetishRangeMargin  float64 `yaml:"fetish_range_margin"`
	ExecuteLife        int     `yaml:"execute_life"`
	ThreatRetreatRange float64 `yaml:"threat_retreat_range"`
	RetreatStep        float64 `yaml:"retreat_step"`
	ProbeDistance      float64 `yaml:"probe_distance"`
	StrafeMinTicks     int     `yaml:"strafe_min_ticks"`
	StrafeMaxTicks     int     `yaml:"strafe_max_ticks"`
	StrafeMinFactor    float64 `yaml:"strafe_min_factor"`
	BonusDivertRange   float64 `yaml:"bonus_divert_range"`
	BonusWindowTicks   int     `yaml:"bonus_window_ticks"`
}

// DefaultTuning returns the values the cascade was tuned with.
func DefaultTuning() Tuning {
	return Tuning{
		LowLifeRatio:       0.25,
		WaypointRadius:     100,
		LaneWidth:          400,
		VanguardSlack:      50,
		AttackerGraceTicks: 8,
		KillCasts:          3,
		OrcRangeMargin:     20, // orcs lunge; treat them as longer-reaching than they are
		FetishRangeMargin:  0,
		ExecuteLife:        12,
		ThreatRetreatRange: 200,
		RetreatStep:        20,
		ProbeDistance:      50,
		StrafeMinTicks:     20,
		StrafeMaxTicks:     60,
		StrafeMinFactor:    0.5,
		BonusDivertRange:   800,
		BonusWindowTicks:   300,
	}
}

// Validate clamps all values to their valid ranges.
func (t *Tuning) Validate() {
	t.LowLifeRatio = clamp(t.LowLifeRatio, 0.05, 0.9)
	t.WaypointRadius = clamp(t.WaypointRadius, 10, 400)
	t.LaneWidth = clamp(t.LaneWidth, 100, 1000)
	t.VanguardSlack = clamp(t.VanguardSlack, 0, 300)
	t.AttackerGraceTicks = clampInt(t.AttackerGraceTicks, 0, 10)
	t.KillCasts = clampInt(t.KillCasts, 1, 10)
	t.OrcRangeMargin = clamp(t.OrcRangeMargin, 0, 100)
	t.FetishRangeMargin = clamp(t.FetishRangeMargin, 0, 100)
	t.ExecuteLife = clampInt(t.ExecuteLife, 0, 100)
	t.ThreatRetreatRange = clamp(t.ThreatRetreatRange, 0, 600)
	t.RetreatStep = clamp(t.RetreatStep, 1, 100)
	t.ProbeDistance = clamp(t.ProbeDistance, 5, 200)
	t.StrafeMinTicks = clampInt(t.StrafeMinTicks, 1, 200)
	t.StrafeMaxTicks = clampInt(t.StrafeMaxTicks, t.StrafeMinTicks, 400)
	t.StrafeMinFactor = clamp(t.StrafeMinFactor, 0, 1)
	t.BonusDivertRange = clamp(t.BonusDivertRange, 0, 2000)
	t.BonusWindowTicks = clampInt(t.BonusWindowTicks, 0, 1000)
}

// clampInt restricts v to [min, max].
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// clamp restricts v to [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
