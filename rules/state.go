package rules

import (
	"math/rand"

	"github.com/paulmach/orb"

	"github.com/nstehr/vimy/wizard-core/model"
)

// Capabilities are spells unlocked by learned skills.
type Capabilities struct {
	FrostBolt bool
	Fireball  bool
	Haste     bool
	Shield    bool
}

// State is everything the wizard carries from one tick to the next. It is
// created with the engine, initialized once at game start, and only ever
// mutated from inside Evaluate.
type State struct {
	Lane  model.LaneType
	Paths LanePaths
	Caps  Capabilities

	SkillOrder     []model.SkillType
	SkillsLearned  int // index in SkillOrder last requested; -1 before the first
	LastObstacleID int64
	LastWaypoint   orb.Point
	LanesBroadcast bool

	laneFor  func(id int64) model.LaneType
	angered  map[int64]bool // neutral ids that have fought; never shrinks
	rng      *rand.Rand
	started  bool
	lastDiag int

	strafeTicks  int
	strafeDir    float64
	strafeFactor float64
}

// NewState returns an unstarted state; laneFor assigns lanes by wizard id.
func NewState(skillOrder []model.SkillType, laneFor func(id int64) model.LaneType) *State {
	return &State{
		Lane:           model.LaneNone,
		SkillOrder:     skillOrder,
		SkillsLearned:  -1,
		LastObstacleID: -1,
		laneFor:        laneFor,
		angered:        make(map[int64]bool),
		strafeDir:      1,
	}
}

// start seeds the random stream and fixes lane and paths for the game.
func (s *State) start(self *model.Unit, game *model.Game) {
	s.rng = newRand(game.RandomSeed)
	s.Paths = BuildLanePaths(game.MapSize, s.rng)
	s.Lane = s.laneFor(self.ID)
	s.started = true
}

// resetTransient forgets per-life state after a respawn.
func (s *State) resetTransient() {
	s.strafeTicks = 0
	s.strafeDir = 1
	s.LastObstacleID = -1
	s.LastWaypoint = orb.Point{}
}

// Angered reports whether the neutral unit id has ever fought.
func (s *State) Angered(id int64) bool { return s.angered[id] }

func (s *State) anger(id int64) { s.angered[id] = true }

// newRand returns a seeded source; seed 0 maps to 1 so an unset seed is
// still deterministic.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}
