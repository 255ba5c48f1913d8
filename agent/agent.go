package agent

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nstehr/vimy/wizard-core/config"
	"github.com/nstehr/vimy/wizard-core/ipc"
	"github.com/nstehr/vimy/wizard-core/model"
	"github.com/nstehr/vimy/wizard-core/rules"
)

var (
	ErrNotStarted     = errors.New("agent: game not started")
	ErrAlreadyStarted = errors.New("agent: game already started")
)

// Agent owns the decision-making for a single wizard. The harness calls
// OnGameStart exactly once, then Move once per tick.
type Agent struct {
	Engine *rules.Engine
	Wizard int64

	cfg  config.Config
	game model.Game
	prev *selfSnapshot
}

func New(cfg config.Config) (*Agent, error) {
	engine, err := rules.NewEngine(rules.CompileCascade(cfg.Tuning), &cfg)
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}
	for _, r := range engine.Rules() {
		slog.Debug("rule loaded", "rule", r.Name, "priority", r.Priority, "category", r.Category, "condition", r.ConditionSrc)
	}
	return &Agent{Engine: engine, Wizard: -1, cfg: cfg}, nil
}

// OnGameStart fixes the game constants, the lane paths and our lane. A game
// without a map size falls back to the stock constants.
func (a *Agent) OnGameStart(self *model.Unit, game model.Game) error {
	if a.Engine.Started() {
		return ErrAlreadyStarted
	}
	if game.MapSize <= 0 {
		slog.Warn("hello carried no game constants, using defaults", "wizard", self.ID)
		game = model.DefaultGame()
	}
	a.game = game
	a.Wizard = self.ID
	a.Engine.Start(self, &a.game)
	return nil
}

// Move decides this tick's command for self.
func (a *Agent) Move(self *model.Unit, world *model.World) (model.Command, error) {
	if !a.Engine.Started() {
		return model.NewCommand(), ErrNotStarted
	}
	world.Normalize()
	self.Kind = model.KindWizard

	move, err := a.Engine.Evaluate(self, world, &a.game)
	if err != nil {
		return move, err
	}

	cur := takeSnapshot(self, a.Engine.State.Lane)
	events := detectEvents(cur, world.TickIndex, a.cfg.Tuning.LowLifeRatio, a.prev)
	for _, e := range events {
		slog.Info("game event", "wizard", self.ID, "kind", e.Kind, "tick", e.Tick, "detail", e.Detail)
		if e.Kind == EventRespawned {
			a.Engine.ResetLife()
		}
	}
	a.prev = &cur
	return move, nil
}

// HandleHello starts the game from the harness handshake.
func (a *Agent) HandleHello(env ipc.Envelope) (*ipc.Envelope, error) {
	var hello ipc.HelloMessage
	if err := json.Unmarshal(env.Data, &hello); err != nil {
		return nil, fmt.Errorf("unmarshal hello: %w", err)
	}

	status := "ok"
	if err := a.OnGameStart(&hello.Self, hello.Game); err != nil {
		// A repeated hello is answered but changes nothing.
		slog.Warn("hello ignored", "wizard", hello.Self.ID, "error", err)
		status = "already_started"
	} else {
		slog.Info("wizard identified",
			"wizard", hello.Self.ID,
			"faction", hello.Self.Faction,
			"master", hello.Self.Master,
			"mapSize", hello.Game.MapSize,
			"skills", hello.Game.SkillsEnabled,
		)
	}

	ack, err := ipc.NewEnvelope(ipc.TypeAck, ipc.AckMessage{Status: status})
	if err != nil {
		return nil, err
	}
	return &ack, nil
}

// HandleTick answers every tick with a move, a no-op one if the tick
// arrives before the handshake.
func (a *Agent) HandleTick(env ipc.Envelope) (*ipc.Envelope, error) {
	var tick ipc.TickMessage
	if err := json.Unmarshal(env.Data, &tick); err != nil {
		return nil, fmt.Errorf("unmarshal tick: %w", err)
	}

	move, err := a.Move(&tick.Self, &tick.World)
	if err != nil {
		slog.Warn("tick without decision", "wizard", tick.Self.ID, "tick", tick.World.TickIndex, "error", err)
	}

	reply, err := ipc.NewEnvelope(ipc.TypeMove, move)
	if err != nil {
		return nil, err
	}
	return &reply, nil
}
