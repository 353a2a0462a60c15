package model

// Creep is a lane minion. A creep with HP 0 is dead and is removed at the end of the tick.
type Creep struct {
	Team  Team  `json:"team"`
	HP    int32 `json:"hp"`
	MaxHP int32 `json:"max_hp"`
}

// Alive reports whether the creep still has hp.
func (c Creep) Alive() bool { return c.HP > 0 }

// Tower is the defensive structure of a zone.
type Tower struct {
	Team  Team  `json:"team"`
	HP    int32 `json:"hp"`
	MaxHP int32 `json:"max_hp"`
	// Base marks the tower whose destruction ends the match.
	Base bool `json:"base,omitempty"`
}

// Destroyed reports whether the tower has fallen.
func (t Tower) Destroyed() bool { return t.HP <= 0 }

// ZoneState is the mutable content of a zone.
type ZoneState struct {
	ID     ZoneID  `json:"id"`
	Creeps []Creep `json:"creeps,omitempty"`
	Tower  *Tower  `json:"tower,omitempty"`
}

// Clone returns a deep copy of the zone.
func (z *ZoneState) Clone() *ZoneState {
	if z == nil {
		return nil
	}
	out := &ZoneState{ID: z.ID}
	if len(z.Creeps) > 0 {
		out.Creeps = make([]Creep, len(z.Creeps))
		copy(out.Creeps, z.Creeps)
	}
	if z.Tower != nil {
		t := *z.Tower
		out.Tower = &t
	}
	return out
}
