package skill

import (
	"github.com/udisondev/skirmish/internal/game/buff"
	"github.com/udisondev/skirmish/internal/game/combat"
	"github.com/udisondev/skirmish/internal/model"
)

// ApplyDamageOverTime subtracts the stacks of every burn/poison/bleed buff
// from the hp of every living hero, once, and returns the new snapshot.
// Shields and damage reduction do not apply. s is not modified.
func ApplyDamageOverTime(s *model.MatchState) *model.MatchState {
	out := s.Clone()
	for _, id := range out.ActorIDs() {
		a := out.Actors[id]
		if !a.Alive {
			continue
		}
		for _, b := range a.Buffs {
			if buff.IsDamageOverTime(b.ID) {
				combat.ApplyDamage(a, b.Stacks)
			}
		}
	}
	return out
}

// DecayBuffs ticks every buff of every living hero and drops expired
// entries, returning the new snapshot. s is not modified.
func DecayBuffs(s *model.MatchState) *model.MatchState {
	out := s.Clone()
	for _, id := range out.ActorIDs() {
		a := out.Actors[id]
		if !a.Alive {
			continue
		}
		buff.Tick(a)
	}
	return out
}
