package rules

import (
	"math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/nstehr/vimy/wizard-core/model"
)

func TestRetreatAtMapEdge(t *testing.T) {
	tests := []struct {
		name  string
		x, y  float64
		angle float64
	}{
		{"left edge", 34, 2000, 0},
		{"left edge backing inward", 34, 2000, math.Pi},
		{"top edge backing inward", 2000, 34, -math.Pi / 2},
		{"bottom edge", 2000, 3966, -math.Pi / 2},
		{"right edge", 3966, 2000, math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			self := testSelf()
			self.X, self.Y, self.Angle = tt.x, tt.y, tt.angle
			env := newTestEnv(t, baseWorld(self), 1)
			if env.retreat() {
				t.Fatal("retreat() = true, want false")
			}
			if env.Move.Speed != 0 || env.Move.Turn != 0 || env.Retreating() {
				t.Errorf("failed retreat touched the command: %+v", *env.Move)
			}
		})
	}
}

func TestRetreat(t *testing.T) {
	env := newTestEnv(t, baseWorld(testSelf()), 1)
	if !env.retreat() {
		t.Fatal("retreat() = false on an open lane")
	}
	if env.Move.Speed != -env.Game.WizardBackwardSpeed {
		t.Errorf("Speed = %v, want %v", env.Move.Speed, -env.Game.WizardBackwardSpeed)
	}
	// Back already faces the previous waypoint straight behind us.
	if math.Abs(env.Move.Turn) > 1e-9 {
		t.Errorf("Turn = %v, want 0", env.Move.Turn)
	}
	if !env.Retreating() {
		t.Error("Retreating() = false after retreat")
	}
}

func TestRetreatBlockedByUnit(t *testing.T) {
	world := baseWorld(testSelf(), minion(10, model.FactionAcademy, model.MinionOrcWoodcutter, 200, 2050))
	env := newTestEnv(t, world, 1)
	if env.retreat() {
		t.Error("retreat() = true with an ally right behind")
	}
}

func TestGoToWaypoint(t *testing.T) {
	t.Run("clear path", func(t *testing.T) {
		env := newTestEnv(t, baseWorld(testSelf()), 1)
		env.Move.StrafeSpeed = 2
		env.goToWaypoint(orb.Point{200, 1000})
		if env.Move.Speed != env.Game.WizardForwardSpeed {
			t.Errorf("Speed = %v, want forward", env.Move.Speed)
		}
		if env.Move.StrafeSpeed != 0 || env.Move.Turn != 0 {
			t.Errorf("expected straight walk, got %+v", *env.Move)
		}
		if env.State.LastWaypoint != (orb.Point{200, 1000}) {
			t.Errorf("LastWaypoint = %v", env.State.LastWaypoint)
		}
	})
	t.Run("tree in probe", func(t *testing.T) {
		env := newTestEnv(t, baseWorld(testSelf(), tree(30, 200, 1940, 20)), 1)
		env.goToWaypoint(orb.Point{200, 1000})
		if env.Move.Speed != 0 {
			t.Errorf("Speed = %v, want 0", env.Move.Speed)
		}
		if env.Move.Action != model.ActionStaff {
			t.Errorf("Action = %s, want staff", env.Move.Action)
		}
		if env.State.LastObstacleID != 30 {
			t.Errorf("LastObstacleID = %d, want 30", env.State.LastObstacleID)
		}
	})
	t.Run("enemy on the line", func(t *testing.T) {
		world := baseWorld(testSelf(), minion(10, model.FactionRenegades, model.MinionOrcWoodcutter, 200, 1700))
		env := newTestEnv(t, world, 1)
		env.goToWaypoint(orb.Point{200, 1000})
		if env.Move.Action != model.ActionMagicMissile {
			t.Errorf("Action = %s, want magic missile", env.Move.Action)
		}
		if env.Move.Speed != env.Game.WizardForwardSpeed {
			t.Errorf("Speed = %v, want forward", env.Move.Speed)
		}
	})
	t.Run("ally in probe", func(t *testing.T) {
		world := baseWorld(testSelf(), minion(10, model.FactionAcademy, model.MinionOrcWoodcutter, 200, 1950))
		env := newTestEnv(t, world, 1)
		env.goToWaypoint(orb.Point{200, 1000})
		if env.Move.Speed != 0 {
			t.Errorf("Speed = %v, want 0", env.Move.Speed)
		}
		if env.Move.StrafeSpeed == 0 {
			t.Error("expected a side-step around the ally")
		}
		if env.Move.Action != model.ActionNone {
			t.Errorf("Action = %s, allies are not shot", env.Move.Action)
		}
	})
	t.Run("needs to turn", func(t *testing.T) {
		env := newTestEnv(t, baseWorld(testSelf()), 1)
		env.goToWaypoint(orb.Point{1000, 2000})
		if env.Move.Speed != 0 {
			t.Errorf("Speed = %v, want 0 while turning", env.Move.Speed)
		}
		if math.Abs(env.Move.Turn-math.Pi/2) > 1e-9 {
			t.Errorf("Turn = %v, want pi/2", env.Move.Turn)
		}
	})
	t.Run("advance suppressed", func(t *testing.T) {
		env := newTestEnv(t, baseWorld(testSelf()), 1)
		env.tick.noAdvance = true
		env.goToWaypoint(orb.Point{200, 1000})
		if env.Move.Speed != 0 {
			t.Errorf("Speed = %v, want 0", env.Move.Speed)
		}
	})
}

func TestMoveTowardBehind(t *testing.T) {
	env := newTestEnv(t, baseWorld(testSelf()), 1)
	env.moveToward(orb.Point{200, 2500})
	if math.Abs(env.Move.Speed+env.Game.WizardBackwardSpeed) > 1e-9 {
		t.Errorf("Speed = %v, want full backward", env.Move.Speed)
	}
	if math.Abs(env.Move.StrafeSpeed) > 1e-9 {
		t.Errorf("StrafeSpeed = %v, want 0", env.Move.StrafeSpeed)
	}
}

func TestUpdateStrafeAvoidsWall(t *testing.T) {
	self := testSelf()
	self.X = 36
	env := newTestEnv(t, baseWorld(self), 1)
	for i := 0; i < 5; i++ {
		env.updateStrafe()
		if env.Move.StrafeSpeed <= 0 {
			t.Fatalf("tick %d: StrafeSpeed = %v, want away from the wall", i, env.Move.StrafeSpeed)
		}
		env = nextTick(env)
	}
}

func TestUpdateStrafeBoxedIn(t *testing.T) {
	world := baseWorld(testSelf(),
		minion(10, model.FactionAcademy, model.MinionOrcWoodcutter, 250, 2000),
		minion(11, model.FactionAcademy, model.MinionOrcWoodcutter, 150, 2000),
	)
	env := newTestEnv(t, world, 1)
	env.updateStrafe()
	if env.Move.StrafeSpeed != 0 {
		t.Errorf("StrafeSpeed = %v, want 0 between two allies", env.Move.StrafeSpeed)
	}
}

func TestUpdateStrafeRunLength(t *testing.T) {
	env := newTestEnv(t, baseWorld(testSelf()), 1)
	env.updateStrafe()
	ticks := env.State.strafeTicks + 1
	if ticks < env.Tuning.StrafeMinTicks || ticks > env.Tuning.StrafeMaxTicks {
		t.Errorf("run length %d outside [%d, %d]", ticks, env.Tuning.StrafeMinTicks, env.Tuning.StrafeMaxTicks)
	}
	max := env.Game.WizardStrafeSpeed
	if s := math.Abs(env.Move.StrafeSpeed); s < env.Tuning.StrafeMinFactor*max || s > max {
		t.Errorf("strafe magnitude %v outside [%v, %v]", s, env.Tuning.StrafeMinFactor*max, max)
	}
}

func TestBonusTarget(t *testing.T) {
	bonus := model.Unit{ID: 70, Kind: model.KindBonus, X: 300, Y: 1800, Radius: 20, Faction: model.FactionNeutral}

	tests := []struct {
		name  string
		x, y  float64
		tick  int
		bonus bool
		want  *orb.Point
	}{
		{"visible bonus", 200, 2000, 500, true, &orb.Point{300, 1800}},
		{"spawn imminent", 1000, 1000, 2300, false, &orb.Point{1200, 1200}},
		{"spawn far off", 1000, 1000, 1000, false, nil},
		{"spot too far", 200, 3800, 2300, false, nil},
		{"game ends first", 1000, 1000, 19800, false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			self := testSelf()
			self.X, self.Y = tt.x, tt.y
			var world *model.World
			if tt.bonus {
				world = baseWorld(self, bonus)
			} else {
				world = baseWorld(self)
			}
			world.TickIndex = tt.tick
			env := newTestEnv(t, world, 1)
			got := env.BonusTarget()
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("BonusTarget() = %v, want nil", *got)
			case tt.want != nil && got == nil:
				t.Errorf("BonusTarget() = nil, want %v", *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Errorf("BonusTarget() = %v, want %v", *got, *tt.want)
			}
		})
	}
}
