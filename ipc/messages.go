package ipc

import "github.com/nstehr/vimy/wizard-core/model"

// These constants must stay in sync with the harness message types.
const (
	TypeHello = "hello"
	TypeAck   = "ack"
	TypeTick  = "tick"
	TypeMove  = "move"
)

// HelloMessage opens a game: who we are and the arena constants.
type HelloMessage struct {
	Self model.Unit `json:"self"`
	Game model.Game `json:"game"`
}

// TickMessage is one decision request. The reply is a TypeMove envelope
// carrying a model.Command.
type TickMessage struct {
	Self  model.Unit  `json:"self"`
	World model.World `json:"world"`
}

type AckMessage struct {
	Status string `json:"status"`
}
