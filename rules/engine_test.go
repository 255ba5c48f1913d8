package rules

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/nstehr/vimy/wizard-core/config"
	"github.com/nstehr/vimy/wizard-core/model"
)

func newTestEngine(t *testing.T, self model.Unit) *Engine {
	t.Helper()
	cfg := config.Default()
	engine, err := NewEngine(CompileCascade(cfg.Tuning), &cfg)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	engine.Start(&self, testGame())
	return engine
}

func evaluate(t *testing.T, engine *Engine, world *model.World, selfID int64) model.Command {
	t.Helper()
	move, err := engine.Evaluate(findWizard(world, selfID), world, testGame())
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	return move
}

func TestNewEngineRejectsBadCondition(t *testing.T) {
	cfg := config.Default()
	rules := []*Rule{{Name: "broken", ConditionSrc: "LifeRatio() <", Action: ActionAdvance}}
	_, err := NewEngine(rules, &cfg)
	if err == nil || !strings.Contains(err.Error(), `"broken"`) {
		t.Errorf("expected compile error naming the rule, got %v", err)
	}
}

func TestNewEngineRejectsNonBoolCondition(t *testing.T) {
	cfg := config.Default()
	rules := []*Rule{{Name: "numeric", ConditionSrc: "LifeRatio()", Action: ActionAdvance}}
	if _, err := NewEngine(rules, &cfg); err == nil {
		t.Error("expected error for non-bool condition")
	}
}

func TestEvaluateBeforeStart(t *testing.T) {
	cfg := config.Default()
	engine, err := NewEngine(CompileCascade(cfg.Tuning), &cfg)
	if err != nil {
		t.Fatal(err)
	}
	self := testSelf()
	world := baseWorld(self)
	move, err := engine.Evaluate(&world.Wizards[0], world, testGame())
	if !errors.Is(err, ErrNotStarted) {
		t.Fatalf("err = %v, want ErrNotStarted", err)
	}
	if move.Action != model.ActionNone || move.SkillToLearn != model.SkillNone {
		t.Errorf("expected an empty command, got %+v", move)
	}
}

func TestStartAssignsLane(t *testing.T) {
	tests := []struct {
		id   int64
		want model.LaneType
	}{
		{1, model.LaneTop},
		{3, model.LaneMiddle},
		{4, model.LaneBottom},
		{42, model.LaneBottom},
	}
	for _, tt := range tests {
		self := testSelf()
		self.ID = tt.id
		engine := newTestEngine(t, self)
		if engine.State.Lane != tt.want {
			t.Errorf("wizard %d: lane %s, want %s", tt.id, engine.State.Lane, tt.want)
		}
	}
}

// Low on life with an enemy in front: shoot, then back away.
func TestLowHealthAttacksThenRetreats(t *testing.T) {
	self := testSelf()
	self.Life = 20
	world := baseWorld(self, enemyWizard(20, 200, 1700))
	engine := newTestEngine(t, self)

	move := evaluate(t, engine, world, 1)
	if move.Action == model.ActionNone {
		t.Error("expected an attack before retreating")
	}
	if move.Speed >= 0 {
		t.Errorf("Speed = %v, want backward", move.Speed)
	}
}

func TestLowHealthBlockedFallsThrough(t *testing.T) {
	self := testSelf()
	self.Life = 20
	world := baseWorld(self,
		enemyWizard(20, 200, 1700),
		minion(10, model.FactionAcademy, model.MinionOrcWoodcutter, 200, 2050),
	)
	engine := newTestEngine(t, self)

	move := evaluate(t, engine, world, 1)
	if move.Speed > 0 {
		t.Errorf("Speed = %v, forward movement must stay suppressed", move.Speed)
	}
	if move.Action != model.ActionMagicMissile {
		t.Errorf("Action = %s, want the engage rule to shoot", move.Action)
	}
}

func TestLowHealthBlockedIgnoresBonus(t *testing.T) {
	self := testSelf()
	self.Life = 20
	bonus := model.Unit{ID: 70, Kind: model.KindBonus, X: 300, Y: 1800, Radius: 20, Faction: model.FactionNeutral}
	world := baseWorld(self,
		minion(30, model.FactionRenegades, model.MinionFetishBlowdart, 200, 1750),
		minion(10, model.FactionAcademy, model.MinionOrcWoodcutter, 200, 2050),
		bonus,
	)
	engine := newTestEngine(t, self)

	move := evaluate(t, engine, world, 1)
	if move.Action != model.ActionMagicMissile {
		t.Errorf("Action = %s, want to shoot the fetish", move.Action)
	}
	if move.Turn != 0 {
		t.Errorf("Turn = %v, want to keep facing the fetish", move.Turn)
	}
	if move.Speed > 0 {
		t.Errorf("Speed = %v, forward movement must stay suppressed", move.Speed)
	}
}

func TestAdvanceBehindVanguard(t *testing.T) {
	self := testSelf()
	world := baseWorld(self, minion(10, model.FactionAcademy, model.MinionOrcWoodcutter, 200, 1000))
	engine := newTestEngine(t, self)

	move := evaluate(t, engine, world, 1)
	if move.Speed != testGame().WizardForwardSpeed {
		t.Errorf("Speed = %v, want forward", move.Speed)
	}
	if move.Turn != 0 {
		t.Errorf("Turn = %v, want 0 toward the next waypoint", move.Turn)
	}
}

func TestHoldWhenPastVanguard(t *testing.T) {
	self := testSelf()
	world := baseWorld(self, factionBase(100, model.FactionAcademy, 400, 3600))
	engine := newTestEngine(t, self)

	move := evaluate(t, engine, world, 1)
	if move.Speed >= 0 {
		t.Errorf("Speed = %v, want a step back toward the vanguard", move.Speed)
	}
}

func TestRejoinLane(t *testing.T) {
	self := testSelf()
	self.X, self.Y = 1000, 1000
	self.Angle = 0
	world := baseWorld(self, factionBase(100, model.FactionAcademy, 400, 3600))
	engine := newTestEngine(t, self)

	move := evaluate(t, engine, world, 1)
	// Base is down and to the left; we face +x.
	if move.Turn <= 0 {
		t.Errorf("Turn = %v, want a turn toward the base", move.Turn)
	}
}

func TestMasterBroadcastsLanesOnce(t *testing.T) {
	self := testSelf()
	self.Master = true
	mates := []model.Unit{}
	for id := int64(5); id >= 2; id-- {
		w := testSelf()
		w.ID, w.Me, w.X = id, false, 3000
		mates = append(mates, w)
	}
	world := baseWorld(self, mates...)
	engine := newTestEngine(t, self)

	move := evaluate(t, engine, world, 1)
	want := []model.LaneType{model.LaneTop, model.LaneMiddle, model.LaneBottom, model.LaneBottom}
	if len(move.Messages) != len(want) {
		t.Fatalf("got %d messages, want %d", len(move.Messages), len(want))
	}
	for i, lane := range want {
		if move.Messages[i].Lane != lane {
			t.Errorf("message %d lane %s, want %s", i, move.Messages[i].Lane, lane)
		}
		if move.Messages[i].SkillToLearn != model.SkillNone {
			t.Errorf("message %d carries a skill", i)
		}
	}

	move = evaluate(t, engine, world, 1)
	if len(move.Messages) != 0 {
		t.Errorf("lanes broadcast again: %v", move.Messages)
	}
}

func TestAdoptsLaneFromMessage(t *testing.T) {
	self := testSelf()
	self.ID = 4
	engine := newTestEngine(t, self)
	if engine.State.Lane != model.LaneBottom {
		t.Fatalf("lane %s before message", engine.State.Lane)
	}

	self.Messages = []model.Message{{Lane: model.LaneMiddle, SkillToLearn: model.SkillNone}}
	evaluate(t, engine, baseWorld(self), 4)
	if engine.State.Lane != model.LaneMiddle {
		t.Errorf("lane %s, want middle", engine.State.Lane)
	}

	self.Messages = []model.Message{{Lane: model.LaneType(7)}}
	evaluate(t, engine, baseWorld(self), 4)
	if engine.State.Lane != model.LaneMiddle {
		t.Errorf("invalid lane adopted: %s", engine.State.Lane)
	}
}

func TestLearnsSkillOnLevelUp(t *testing.T) {
	self := testSelf()
	self.Level = 1
	world := baseWorld(self)
	engine := newTestEngine(t, self)

	move := evaluate(t, engine, world, 1)
	if want := engine.State.SkillOrder[0]; move.SkillToLearn != want {
		t.Errorf("SkillToLearn = %s, want %s", move.SkillToLearn, want)
	}

	game := testGame()
	game.SkillsEnabled = false
	move, err := engine.Evaluate(findWizard(world, 1), world, game)
	if err != nil {
		t.Fatal(err)
	}
	if move.SkillToLearn != model.SkillNone {
		t.Errorf("skill learned with skills disabled: %s", move.SkillToLearn)
	}
}

func TestThreatRetreatRaisesShield(t *testing.T) {
	self := testSelf()
	self.Skills = []model.SkillType{model.SkillShield}
	self.Level = 1
	self.RemainingCooldownTicksByAction = []int{0, 30, 30, 0, 0, 0, 0}
	// The vanguard is just behind the attacker, so it is not straying.
	world := baseWorld(self,
		enemyWizard(20, 200, 1700),
		minion(10, model.FactionAcademy, model.MinionOrcWoodcutter, 200, 1750),
	)
	engine := newTestEngine(t, self)

	move := evaluate(t, engine, world, 1)
	if move.Speed >= 0 {
		t.Errorf("Speed = %v, want retreat from the wizard", move.Speed)
	}
	if move.Action != model.ActionShield || move.StatusTargetID != -1 {
		t.Errorf("Action = %s target %d, want shield on self", move.Action, move.StatusTargetID)
	}
}

func TestChasesStrayingWizard(t *testing.T) {
	self := testSelf()
	world := baseWorld(self,
		enemyWizard(20, 200, 1700),
		minion(10, model.FactionAcademy, model.MinionOrcWoodcutter, 200, 1000),
	)
	engine := newTestEngine(t, self)

	move := evaluate(t, engine, world, 1)
	if move.Speed <= 0 {
		t.Errorf("Speed = %v, want to close in", move.Speed)
	}
	if move.Action != model.ActionMagicMissile {
		t.Errorf("Action = %s, want magic missile", move.Action)
	}
}

func TestRespawnResetClearsObstacle(t *testing.T) {
	engine := newTestEngine(t, testSelf())
	engine.State.LastObstacleID = 30
	engine.ResetLife()
	if engine.State.LastObstacleID != -1 {
		t.Errorf("LastObstacleID = %d after reset", engine.State.LastObstacleID)
	}
}

func TestCollectBonusFightsWizardOnTheWay(t *testing.T) {
	bonus := model.Unit{ID: 70, Kind: model.KindBonus, X: 300, Y: 1800, Radius: 20, Faction: model.FactionNeutral}
	world := baseWorld(testSelf(), enemyWizard(20, 200, 1700), bonus)
	engine := newTestEngine(t, testSelf())

	move := evaluate(t, engine, world, 1)
	if move.Action != model.ActionMagicMissile || move.Turn != 0 {
		t.Errorf("Action = %s turn %v, want a missile at the wizard", move.Action, move.Turn)
	}
	// The bonus is 0.4636 rad to the right of our heading.
	rel := math.Atan2(100, 200)
	if want := math.Cos(rel) * 4; math.Abs(move.Speed-want) > 1e-9 {
		t.Errorf("Speed = %v, want %v", move.Speed, want)
	}
	if want := math.Sin(rel) * 3; math.Abs(move.StrafeSpeed-want) > 1e-9 {
		t.Errorf("StrafeSpeed = %v, want %v", move.StrafeSpeed, want)
	}
}

func TestCollectBonusWaitsOnSpawnSpot(t *testing.T) {
	self := testSelf()
	self.X, self.Y = 1210, 1200
	world := baseWorld(self)
	world.TickIndex = 2300
	engine := newTestEngine(t, self)

	move := evaluate(t, engine, world, 1)
	if move.Speed != 0 || move.StrafeSpeed != 0 {
		t.Errorf("Speed = %v strafe %v, want to stand on the spot", move.Speed, move.StrafeSpeed)
	}
	if move.Action != model.ActionNone {
		t.Errorf("Action = %s, want none", move.Action)
	}
}
