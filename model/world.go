package model

// World is the per-tick snapshot of everything the wizard can see. The lists
// are owned by the harness; the core never mutates units.
type World struct {
	TickIndex   int     `json:"tickIndex"`
	TickCount   int     `json:"tickCount"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Wizards     []Unit  `json:"wizards"`
	Minions     []Unit  `json:"minions"`
	Buildings   []Unit  `json:"buildings"`
	Trees       []Unit  `json:"trees"`
	Bonuses     []Unit  `json:"bonuses"`
	Projectiles []Unit  `json:"projectiles"`
}

// Normalize stamps Kind on every unit from the list it arrived in.
func (w *World) Normalize() {
	stamp := func(units []Unit, k Kind) {
		for i := range units {
			units[i].Kind = k
		}
	}
	stamp(w.Wizards, KindWizard)
	stamp(w.Minions, KindMinion)
	stamp(w.Buildings, KindBuilding)
	stamp(w.Trees, KindTree)
	stamp(w.Bonuses, KindBonus)
	stamp(w.Projectiles, KindProjectile)
}

// Living returns wizards, minions and buildings: everything with life that can fight.
func (w *World) Living() []*Unit {
	out := make([]*Unit, 0, len(w.Wizards)+len(w.Minions)+len(w.Buildings))
	for _, list := range [][]Unit{w.Wizards, w.Minions, w.Buildings} {
		for i := range list {
			out = append(out, &list[i])
		}
	}
	return out
}

// Solid returns every unit that blocks movement.
func (w *World) Solid() []*Unit {
	out := w.Living()
	for i := range w.Trees {
		out = append(out, &w.Trees[i])
	}
	return out
}
