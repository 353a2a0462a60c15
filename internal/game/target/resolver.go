// Package target maps TargetRef values onto the entities of a snapshot.
// Resolution never mutates state and never fails: absence is reported with
// ok == false and it is up to the caller to turn it into an error.
package target

import (
	"strings"

	"github.com/udisondev/skirmish/internal/model"
)

// Actor resolves a self or hero reference.
//
// Hero references are matched by actor id first, then by display name, then
// by kit id (names compare case-insensitively). Ties are broken by actor id
// order so the result is deterministic. A kit id fielded by both teams
// resolves to the caster's enemy first.
func Actor(s *model.MatchState, caster model.ActorID, ref model.TargetRef) (*model.ActorState, bool) {
	switch ref.Kind {
	case model.TargetSelf:
		a := s.Actor(caster)
		return a, a != nil
	case model.TargetHero:
		return heroByName(s, caster, ref.Name)
	default:
		return nil, false
	}
}

func heroByName(s *model.MatchState, caster model.ActorID, name string) (*model.ActorState, bool) {
	if name == "" {
		return nil, false
	}
	if a := s.Actor(model.ActorID(name)); a != nil {
		return a, true
	}

	ids := s.ActorIDs()
	for _, id := range ids {
		if a := s.Actors[id]; strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	var ally *model.ActorState
	me := s.Actor(caster)
	for _, id := range ids {
		a := s.Actors[id]
		if a.Kit == "" || !strings.EqualFold(string(a.Kit), name) {
			continue
		}
		if me == nil || a.Team != me.Team {
			return a, true
		}
		if ally == nil {
			ally = a
		}
	}
	return ally, ally != nil
}

// Creep resolves a creep reference to the creep and its zone.
// Dead creeps still resolve; liveness is the caller's check.
func Creep(s *model.MatchState, ref model.TargetRef) (*model.Creep, *model.ZoneState, bool) {
	if ref.Kind != model.TargetCreep {
		return nil, nil, false
	}
	z := s.Zone(ref.Zone)
	if z == nil || ref.Index < 0 || ref.Index >= len(z.Creeps) {
		return nil, nil, false
	}
	return &z.Creeps[ref.Index], z, true
}

// Tower resolves a tower reference to the tower and its zone.
func Tower(s *model.MatchState, ref model.TargetRef) (*model.Tower, *model.ZoneState, bool) {
	if ref.Kind != model.TargetTower {
		return nil, nil, false
	}
	z := s.Zone(ref.Zone)
	if z == nil || z.Tower == nil {
		return nil, nil, false
	}
	return z.Tower, z, true
}

// Zone resolves a zone reference.
//
// A hero reference whose name is a zone id is accepted as well: older
// clients aim zone abilities with the hero-by-name form.
func Zone(s *model.MatchState, ref model.TargetRef) (*model.ZoneState, bool) {
	var id model.ZoneID
	switch ref.Kind {
	case model.TargetZone:
		id = ref.Zone
	case model.TargetHero:
		id = model.ZoneID(ref.Name)
	default:
		return nil, false
	}
	z := s.Zone(id)
	return z, z != nil
}
