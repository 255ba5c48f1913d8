package model

// Command is the single output of a tick. A fresh one is built every tick so
// nothing leaks from the previous decision.
type Command struct {
	Turn            float64    `json:"turn"`
	Speed           float64    `json:"speed"`
	StrafeSpeed     float64    `json:"strafeSpeed"`
	Action          ActionType `json:"action"`
	CastAngle       float64    `json:"castAngle"`
	MinCastDistance float64    `json:"minCastDistance"`
	StatusTargetID  int64      `json:"statusTargetId"`
	SkillToLearn    SkillType  `json:"skillToLearn"`
	Messages        []Message  `json:"messages,omitempty"`
}

func NewCommand() Command {
	return Command{StatusTargetID: -1, SkillToLearn: SkillNone}
}
