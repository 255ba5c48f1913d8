package rules

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/nstehr/vimy/wizard-core/config"
	"github.com/nstehr/vimy/wizard-core/geom"
	"github.com/nstehr/vimy/wizard-core/model"
)

var ErrNotStarted = errors.New("engine not started")

// Engine runs the compiled cascade against one tick's snapshot.
// Rules fire in priority order; an exclusive rule blocks lower-priority rules
// in its category, and any action that reports the tick handled ends it.
type Engine struct {
	mu     sync.Mutex
	rules  []*Rule
	State  *State
	Tuning config.Tuning
}

// NewEngine compiles all rule conditions into expr bytecode and sorts by priority.
func NewEngine(rules []*Rule, cfg *config.Config) (*Engine, error) {
	compiled, err := compileRules(rules)
	if err != nil {
		return nil, err
	}
	return &Engine{
		rules:  compiled,
		State:  NewState(cfg.Skills(), cfg.LaneFor),
		Tuning: cfg.Tuning,
	}, nil
}

// Start fixes the lane paths and the wizard's lane for this game.
func (e *Engine) Start(self *model.Unit, game *model.Game) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.State.start(self, game)
	slog.Info("engine started",
		"wizard", self.ID,
		"lane", e.State.Lane,
		"laneLength", int(geom.PathLength(e.State.Paths.Path(e.State.Lane))),
		"master", self.Master,
		"seed", game.RandomSeed,
		"rules", len(e.rules),
	)
}

// Started reports whether Start has been called.
func (e *Engine) Started() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.State.started
}

// Evaluate builds this tick's command.
func (e *Engine) Evaluate(self *model.Unit, world *model.World, game *model.Game) (model.Command, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	move := model.NewCommand()
	if !e.State.started {
		return move, ErrNotStarted
	}
	env := newTickEnv(self, world, game, &move, e.State, &e.Tuning)

	env.refreshCapabilities()
	adoptLaneMessages(env)
	env.updateStrafe()
	logTickDiagnostics(env)

	fired := make(map[string]bool) // category → exclusive rule already fired
	for _, r := range e.rules {
		if fired[r.Category] {
			continue
		}

		result, err := vm.Run(r.program, env)
		if err != nil {
			slog.Warn("rule condition error", "rule", r.Name, "error", err)
			continue
		}
		match, ok := result.(bool)
		if !ok || !match {
			continue
		}

		slog.Debug("rule fired", "rule", r.Name, "priority", r.Priority, "category", r.Category, "tick", world.TickIndex)
		done := r.Action(env)
		if r.Exclusive {
			fired[r.Category] = true
		}
		if done {
			break
		}
	}
	return move, nil
}

// Rules returns the compiled cascade in evaluation order.
func (e *Engine) Rules() []*Rule {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rules
}

// ResetLife is called after a respawn.
func (e *Engine) ResetLife() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.State.resetTransient()
}

func compileRules(rules []*Rule) ([]*Rule, error) {
	for _, r := range rules {
		prog, err := expr.Compile(r.ConditionSrc, expr.Env(TickEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.Name, err)
		}
		r.program = prog
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
	return rules, nil
}
