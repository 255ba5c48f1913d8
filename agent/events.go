package agent

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/nstehr/vimy/wizard-core/geom"
	"github.com/nstehr/vimy/wizard-core/model"
)

// EventKind identifies a change in the wizard's own situation worth logging.
type EventKind string

const (
	EventLevelUp        EventKind = "level_up"
	EventRespawned      EventKind = "respawned"
	EventLowHealth      EventKind = "low_health"
	EventLaneReassigned EventKind = "lane_reassigned"
)

// Event is detected by diffing consecutive snapshots of ourselves.
type Event struct {
	Kind   EventKind
	Tick   int
	Detail string
}

// respawnJump is further than a wizard can walk in one tick, even hastened.
const respawnJump = 200

// selfSnapshot captures the diffable fields of one tick.
type selfSnapshot struct {
	level   int
	life    int
	maxLife int
	pos     orb.Point
	lane    model.LaneType
}

func takeSnapshot(self *model.Unit, lane model.LaneType) selfSnapshot {
	return selfSnapshot{
		level:   self.Level,
		life:    self.Life,
		maxLife: self.MaxLife,
		pos:     self.Point(),
		lane:    lane,
	}
}

func (s selfSnapshot) lifeRatio() float64 {
	if s.maxLife <= 0 {
		return 1
	}
	return float64(s.life) / float64(s.maxLife)
}

// detectEvents compares cur against the previous tick. Returns nil on the
// first tick.
func detectEvents(cur selfSnapshot, tick int, lowLife float64, prev *selfSnapshot) []Event {
	if prev == nil {
		return nil
	}
	var events []Event

	if cur.level > prev.level {
		events = append(events, Event{
			Kind:   EventLevelUp,
			Tick:   tick,
			Detail: fmt.Sprintf("level %d -> %d", prev.level, cur.level),
		})
	}

	// Respawning teleports us home at full life.
	if geom.Distance(prev.pos, cur.pos) > respawnJump && cur.life == cur.maxLife {
		events = append(events, Event{
			Kind:   EventRespawned,
			Tick:   tick,
			Detail: fmt.Sprintf("back at (%.0f, %.0f)", cur.pos[0], cur.pos[1]),
		})
	}

	if prev.lifeRatio() >= lowLife && cur.lifeRatio() < lowLife {
		events = append(events, Event{
			Kind:   EventLowHealth,
			Tick:   tick,
			Detail: fmt.Sprintf("life %d/%d", cur.life, cur.maxLife),
		})
	}

	if cur.lane != prev.lane {
		events = append(events, Event{
			Kind:   EventLaneReassigned,
			Tick:   tick,
			Detail: fmt.Sprintf("%s -> %s", prev.lane, cur.lane),
		})
	}

	return events
}
