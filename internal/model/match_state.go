package model

import (
	"maps"
	"slices"
)

// TeamState aggregates per-team tallies.
type TeamState struct {
	Team       Team  `json:"team"`
	Kills      int32 `json:"kills"`
	TowersLost int32 `json:"towers_lost"`
}

// MatchState is one immutable snapshot of a match.
//
// Core operations never modify a snapshot they received: they Clone it,
// work on the copy and return the copy.
type MatchState struct {
	Tick   int64     `json:"tick"`
	Phase  Phase     `json:"phase"`
	Blue   TeamState `json:"blue"`
	Red    TeamState `json:"red"`
	Winner Team      `json:"winner,omitempty"`

	Actors map[ActorID]*ActorState `json:"actors"`
	Zones  map[ZoneID]*ZoneState   `json:"zones"`

	// Events produced so far this tick, append-only.
	Events []Event `json:"events,omitempty"`
}

// NewMatchState creates an empty in-progress snapshot.
func NewMatchState() *MatchState {
	return &MatchState{
		Phase:  PhaseInProgress,
		Blue:   TeamState{Team: TeamBlue},
		Red:    TeamState{Team: TeamRed},
		Actors: make(map[ActorID]*ActorState),
		Zones:  make(map[ZoneID]*ZoneState),
	}
}

// Clone returns a deep copy. Events are copied by value; their payloads are never mutated.
func (s *MatchState) Clone() *MatchState {
	if s == nil {
		return nil
	}
	out := *s
	out.Actors = make(map[ActorID]*ActorState, len(s.Actors))
	for id, a := range s.Actors {
		out.Actors[id] = a.Clone()
	}
	out.Zones = make(map[ZoneID]*ZoneState, len(s.Zones))
	for id, z := range s.Zones {
		out.Zones[id] = z.Clone()
	}
	if len(s.Events) > 0 {
		out.Events = slices.Clone(s.Events)
	} else {
		out.Events = nil
	}
	return &out
}

// Actor returns the actor with the given id or nil.
func (s *MatchState) Actor(id ActorID) *ActorState {
	return s.Actors[id]
}

// Zone returns the zone with the given id or nil.
func (s *MatchState) Zone(id ZoneID) *ZoneState {
	return s.Zones[id]
}

// TeamState returns the aggregate for team, or nil for TeamNone.
func (s *MatchState) TeamState(t Team) *TeamState {
	switch t {
	case TeamBlue:
		return &s.Blue
	case TeamRed:
		return &s.Red
	default:
		return nil
	}
}

// ActorIDs returns actor ids in sorted order. Iteration over the Actors map
// is random, every all-actor pass goes through this to stay deterministic.
func (s *MatchState) ActorIDs() []ActorID {
	return slices.Sorted(maps.Keys(s.Actors))
}

// ZoneIDs returns zone ids in sorted order.
func (s *MatchState) ZoneIDs() []ZoneID {
	return slices.Sorted(maps.Keys(s.Zones))
}

// AddActor inserts or replaces an actor.
func (s *MatchState) AddActor(a *ActorState) {
	s.Actors[a.ID] = a
}

// AddZone inserts or replaces a zone.
func (s *MatchState) AddZone(z *ZoneState) {
	s.Zones[z.ID] = z
}

// Emit appends events to the pending event list.
func (s *MatchState) Emit(events ...Event) {
	s.Events = append(s.Events, events...)
}
