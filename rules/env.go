package rules

import (
	"github.com/paulmach/orb"

	"github.com/nstehr/vimy/wizard-core/config"
	"github.com/nstehr/vimy/wizard-core/model"
)

// TickEnv wraps one tick's snapshot and exposes helper methods callable from
// expr conditions. The exported fields are read-only views for the tick; the
// command under construction is the only thing rules write to besides State.
type TickEnv struct {
	Self   *model.Unit
	World  *model.World
	Game   *model.Game
	Move   *model.Command
	State  *State
	Tuning *config.Tuning

	tick *tickCache
}

// tickCache memoizes per-tick lookups and carries flags between rules.
type tickCache struct {
	classified bool
	enemies    []*model.Unit
	allies     []*model.Unit

	attackerDone bool
	attacker     *model.Unit
	targetDone   bool
	target       *model.Unit
	vanguardDone bool
	vanguard     *model.Unit
	bonusDone    bool
	bonus        *orb.Point

	noAdvance  bool // a rule decided we must not walk forward this tick
	retreating bool // retreat() set speed and turn this tick
}

func newTickEnv(self *model.Unit, world *model.World, game *model.Game, move *model.Command, state *State, tuning *config.Tuning) TickEnv {
	return TickEnv{
		Self:   self,
		World:  world,
		Game:   game,
		Move:   move,
		State:  state,
		Tuning: tuning,
		tick:   &tickCache{},
	}
}

// LifeRatio is life over max life, in [0, 1].
func (e TickEnv) LifeRatio() float64 { return e.Self.LifeRatio() }

// IsMaster reports whether we assign lanes for the team.
func (e TickEnv) IsMaster() bool { return e.Self.Master }

func (e TickEnv) LanesBroadcast() bool { return e.State.LanesBroadcast }

func (e TickEnv) SkillsEnabled() bool { return e.Game.SkillsEnabled }

// Retreating is true once a rule has backed us off this tick.
func (e TickEnv) Retreating() bool { return e.tick.retreating }

// Tick is the world tick index.
func (e TickEnv) Tick() int { return e.World.TickIndex }

// OnLane reports whether the wizard is within lane width of its own lane.
// lane_of is not used here: every lane starts at the base, so near home it
// would flap between lanes.
func (e TickEnv) OnLane() bool {
	return e.State.Paths.DistanceToLane(e.State.Lane, e.Self.Point()) <= e.Tuning.LaneWidth
}

// Progress is the wizard's distance along its own lane.
func (e TickEnv) Progress() float64 {
	return e.State.Paths.DistanceAlongLane(e.State.Lane, e.Self.Point())
}

// NextWaypoint is the next point ahead on our lane, toward the enemy base.
func (e TickEnv) NextWaypoint() orb.Point {
	return NextWaypoint(e.State.Paths.Path(e.State.Lane), e.Self.Point(), e.Tuning.WaypointRadius)
}

// PreviousWaypoint is the point behind us on our lane.
func (e TickEnv) PreviousWaypoint() orb.Point {
	return PreviousWaypoint(e.State.Paths.Path(e.State.Lane), e.Self.Point(), e.Tuning.WaypointRadius)
}

func (e TickEnv) castRange() float64 {
	if e.Self.CastRange > 0 {
		return e.Self.CastRange
	}
	return e.Game.WizardCastRange
}

func (e TickEnv) visionRange() float64 {
	if e.Self.VisionRange > 0 {
		return e.Self.VisionRange
	}
	return e.Game.WizardVisionRange
}
