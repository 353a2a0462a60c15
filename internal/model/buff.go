package model

// BuffContext carries the typed context a buff was applied with.
// The zero value means "no context".
type BuffContext struct {
	// Zone is set for zone-bound effects (area reveal, positional counters).
	Zone ZoneID `json:"zone,omitempty"`
}

// Buff is a timed status entry on a hero.
//
// Stacks has no fixed unit: damage-over-time buffs store per-tick damage,
// damage_reduction/empower/slow store a percentage, shield stores the absorb
// pool and tracking buffs store a counter. The consumer decides.
//
// Buffs stack by (ID, Owner, Context): re-applying the same key replaces
// Stacks and keeps the longer of the two remaining durations.
type Buff struct {
	ID             BuffID      `json:"id"`
	Stacks         int32       `json:"stacks"`
	TicksRemaining int32       `json:"ticks_remaining"`
	Owner          ActorID     `json:"owner,omitempty"`
	Context        BuffContext `json:"context,omitzero"`
}

// SameKey reports whether b and other share the stacking key.
func (b Buff) SameKey(other Buff) bool {
	return b.ID == other.ID && b.Owner == other.Owner && b.Context == other.Context
}
