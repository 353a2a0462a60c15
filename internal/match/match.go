// Package match runs the outer tick loop around the ability resolver:
// action submission, end-of-tick sequencing, respawns and victory.
package match

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/buff"
	"github.com/udisondev/skirmish/internal/game/combat"
	"github.com/udisondev/skirmish/internal/game/skill"
	"github.com/udisondev/skirmish/internal/model"
)

// DefaultMaxTicks bounds a match when Options.MaxTicks is not set.
const DefaultMaxTicks = 600

// ErrMatchEnded is returned for actions and ticks submitted after the match is over.
var ErrMatchEnded = errors.New("match has ended")

// JournalWriter receives the events of every closed tick.
// *journal.Writer implements it.
type JournalWriter interface {
	Write(tick int64, events []model.Event) error
}

// Options tunes a match. Zero values pick defaults.
type Options struct {
	MaxTicks int64
	Journal  JournalWriter
	// Topology validates walking. Defaults to the resolver's topology.
	Topology skill.Topology
	// Bases maps a team to its respawn zone. Defaults to data.SpawnZone.
	Bases map[model.Team]model.ZoneID
}

// Match owns one evolving snapshot. It is not safe for concurrent use;
// the scheduler gives every match its own goroutine.
type Match struct {
	id       string
	state    *model.MatchState
	resolver *skill.Resolver
	topo     skill.Topology
	bases    map[model.Team]model.ZoneID
	maxTicks int64
	journal  JournalWriter

	done     bool
	rejected int32
}

// New wraps state in a match. state is owned by the match from now on.
func New(id string, state *model.MatchState, resolver *skill.Resolver, opts Options) *Match {
	m := &Match{
		id:       id,
		state:    state,
		resolver: resolver,
		topo:     opts.Topology,
		bases:    opts.Bases,
		maxTicks: opts.MaxTicks,
		journal:  opts.Journal,
	}
	if m.topo == nil {
		m.topo = resolver.Env().Topology
	}
	if m.bases == nil {
		m.bases = map[model.Team]model.ZoneID{
			model.TeamBlue: data.SpawnZone(model.TeamBlue),
			model.TeamRed:  data.SpawnZone(model.TeamRed),
		}
	}
	if m.maxTicks <= 0 {
		m.maxTicks = DefaultMaxTicks
	}
	if state.Phase == model.PhaseLobby {
		state.Phase = model.PhaseInProgress
	}
	return m
}

// ID returns the match identifier.
func (m *Match) ID() string { return m.id }

// State returns the current snapshot. Callers must not modify it.
func (m *Match) State() *model.MatchState { return m.state }

// Tick returns the tick currently accepting actions.
func (m *Match) Tick() int64 { return m.state.Tick }

// Done reports whether the match is over.
func (m *Match) Done() bool { return m.done }

// Rejected returns how many submitted actions failed hard.
func (m *Match) Rejected() int32 { return m.rejected }

// Apply performs one action in the current tick and returns the events it
// produced. A hard failure leaves the snapshot untouched.
func (m *Match) Apply(a Action) ([]model.Event, error) {
	if m.done || m.state.Phase == model.PhaseEnded {
		return nil, ErrMatchEnded
	}

	var (
		events []model.Event
		err    error
	)
	switch a := a.(type) {
	case CastAction:
		var out skill.Outcome
		out, err = m.resolver.Resolve(m.state, a.Actor, a.Slot, a.Target)
		if err == nil {
			m.state = out.State
			events = out.Events
		}
	case MoveAction:
		events, err = m.move(a)
	default:
		return nil, fmt.Errorf("unsupported action %T", a)
	}

	if err != nil {
		m.rejected++
		slog.Debug("action rejected",
			"match", m.id,
			"tick", m.state.Tick,
			"actor", a.actor(),
			"error", err)
		return nil, err
	}
	return events, nil
}

func (m *Match) move(a MoveAction) ([]model.Event, error) {
	hero := m.state.Actor(a.Actor)
	if hero == nil || !hero.Alive {
		return nil, skill.InvalidTarget(string(a.Actor), "not found or dead")
	}
	for _, cc := range []struct {
		id     model.BuffID
		reason string
	}{
		{buff.Stun, "stunned"},
		{buff.Root, "rooted"},
		{buff.Fear, "feared"},
	} {
		if buff.Has(hero, cc.id) {
			return nil, skill.InvalidTarget(string(a.Actor), cc.reason)
		}
	}

	switch {
	case a.To == "":
		return nil, skill.InvalidTarget("", "zone required")
	case m.state.Zone(a.To) == nil:
		return nil, skill.InvalidTarget(string(a.To), "unknown zone")
	case a.To == hero.Zone:
		return nil, skill.InvalidTarget(string(a.To), "already there")
	case m.topo == nil || !m.topo.IsAdjacent(hero.Zone, a.To):
		return nil, skill.InvalidTarget(string(a.To), "zone not adjacent")
	}

	work := m.state.Clone()
	mover := work.Actor(a.Actor)
	ev := model.Event{Tick: work.Tick, Payload: model.ActorMoved{
		Actor: mover.ID,
		From:  mover.Zone,
		To:    a.To,
		Cause: CauseWalk,
	}}
	mover.Zone = a.To
	work.Emit(ev)
	m.state = work
	return []model.Event{ev}, nil
}

// Advance closes the current tick.
//
// The order is fixed: cooldowns, damage over time, buff decay, deaths
// caused by damage over time, respawns, dead creep removal, TickElapsed,
// passive fan-out over every event of the tick, journal write. Then the
// pending events are cleared and the tick counter moves on. The match is
// done once a base tower has fallen or the tick limit is reached.
func (m *Match) Advance() error {
	if m.done {
		return ErrMatchEnded
	}

	s := m.state.Clone()
	decrementCooldowns(s)

	living := livingHeroes(s)
	s = skill.ApplyDamageOverTime(s)
	s = skill.DecayBuffs(s)
	m.settleDamageOverTimeDeaths(s, living)

	m.respawn(s)
	removeDeadCreeps(s)

	s.Emit(model.Event{Tick: s.Tick, Payload: model.TickElapsed{}})
	s = m.resolver.FanOut(s, s.Events)

	if m.journal != nil {
		if err := m.journal.Write(s.Tick, s.Events); err != nil {
			return fmt.Errorf("journaling tick %d: %w", s.Tick, err)
		}
	}

	slog.Debug("tick closed",
		"match", m.id,
		"tick", s.Tick,
		"events", len(s.Events))

	s.Events = nil
	s.Tick++
	m.state = s

	if s.Phase == model.PhaseEnded || s.Tick >= m.maxTicks {
		s.Phase = model.PhaseEnded
		m.done = true
		slog.Info("match finished",
			"match", m.id,
			"ticks", s.Tick,
			"winner", s.Winner,
			"blueKills", s.Blue.Kills,
			"redKills", s.Red.Kills)
	}
	return nil
}

func decrementCooldowns(s *model.MatchState) {
	for _, id := range s.ActorIDs() {
		a := s.Actors[id]
		for i := range a.Cooldowns {
			if a.Cooldowns[i] > 0 {
				a.Cooldowns[i]--
			}
		}
	}
}

func livingHeroes(s *model.MatchState) map[model.ActorID]bool {
	living := make(map[model.ActorID]bool, len(s.Actors))
	for id, a := range s.Actors {
		if a.Alive {
			living[id] = true
		}
	}
	return living
}

// settleDamageOverTimeDeaths pays out heroes killed by the damage-over-time
// pass. The kill goes to the owner of the first damage-over-time entry on
// the victim when that owner is an enemy hero. Victims keep their buffs
// until they respawn.
func (m *Match) settleDamageOverTimeDeaths(s *model.MatchState, living map[model.ActorID]bool) {
	src := m.resolver.Env().Catalog
	for _, id := range s.ActorIDs() {
		victim := s.Actors[id]
		if victim.Alive || !living[id] {
			continue
		}
		s.Emit(combat.RewardHeroKill(s, src, dotKiller(s, victim), victim))
	}
}

func dotKiller(s *model.MatchState, victim *model.ActorState) model.ActorID {
	for _, b := range victim.Buffs {
		if !buff.IsDamageOverTime(b.ID) {
			continue
		}
		if owner := s.Actor(b.Owner); owner != nil && owner.Team != victim.Team {
			return owner.ID
		}
		return ""
	}
	return ""
}

func (m *Match) respawn(s *model.MatchState) {
	for _, id := range s.ActorIDs() {
		a := s.Actors[id]
		if a.Alive || a.RespawnTick == 0 || s.Tick < a.RespawnTick {
			continue
		}

		a.Buffs = nil
		a.SetHP(a.MaxHP)
		a.SetMana(a.MaxMana)
		a.RespawnTick = 0
		if base := m.bases[a.Team]; base != "" {
			a.Zone = base
		}

		s.Emit(model.Event{Tick: s.Tick, Payload: model.ActorRespawned{Actor: a.ID, Zone: a.Zone}})
		slog.Debug("hero respawned", "match", m.id, "actor", a.ID, "zone", a.Zone)
	}
}

func removeDeadCreeps(s *model.MatchState) {
	for _, id := range s.ZoneIDs() {
		z := s.Zones[id]
		if len(z.Creeps) == 0 {
			continue
		}
		alive := z.Creeps[:0]
		for _, c := range z.Creeps {
			if c.Alive() {
				alive = append(alive, c)
			}
		}
		z.Creeps = alive
	}
}
