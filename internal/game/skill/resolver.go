package skill

import (
	"log/slog"

	"github.com/udisondev/skirmish/internal/game/buff"
	"github.com/udisondev/skirmish/internal/model"
)

// Outcome is a successful resolution: the new snapshot and the events
// the cast produced, in order. The events are also appended to State.Events.
type Outcome struct {
	State  *model.MatchState
	Events []model.Event
}

// Resolver is the generic gate every cast passes before its kit runs.
type Resolver struct {
	registry *Registry
	env      Env
}

// NewResolver creates a resolver over an immutable registry.
func NewResolver(registry *Registry, env Env) *Resolver {
	return &Resolver{registry: registry, env: env}
}

// Env returns the collaborators the resolver hands to kits.
func (r *Resolver) Env() Env { return r.env }

// Registry returns the kit registry.
func (r *Resolver) Registry() *Registry { return r.registry }

// Resolve validates and performs one cast of actorID's slot.
//
// Checks run in a fixed order and the first failure wins: the hero must
// exist with a kit and be alive, must not be stunned or silenced, the slot
// must be learned and off cooldown, and the kit must be registered. Only
// then does the kit function run, on a copy of s. On error s is returned
// to the caller untouched and no outcome is produced.
func (r *Resolver) Resolve(s *model.MatchState, actorID model.ActorID, slot model.Slot, target *model.TargetRef) (Outcome, error) {
	if err := r.validate(s, actorID, slot); err != nil {
		slog.Debug("cast rejected",
			"actor", actorID,
			"slot", slot,
			"error", err)
		return Outcome{}, err
	}

	caster := s.Actor(actorID)
	kit, ok := r.registry.Lookup(caster.Kit)
	if !ok || kit.Ability(slot) == nil {
		err := InvalidTarget(string(actorID), "no resolver registered")
		slog.Debug("cast rejected", "actor", actorID, "kit", caster.Kit, "error", err)
		return Outcome{}, err
	}

	work := s.Clone()
	c := &Cast{
		State:  work,
		Caster: work.Actor(actorID),
		Slot:   slot,
		Level:  AbilityLevel(caster.Level, slot),
		Target: target,
		Env:    r.env,
	}

	events, err := kit.Ability(slot)(c)
	if err != nil {
		slog.Debug("cast rejected by kit",
			"actor", actorID,
			"kit", caster.Kit,
			"slot", slot,
			"error", err)
		return Outcome{}, err
	}

	work.Emit(events...)
	return Outcome{State: work, Events: events}, nil
}

func (r *Resolver) validate(s *model.MatchState, actorID model.ActorID, slot model.Slot) error {
	a := s.Actor(actorID)
	if a == nil || a.Kit == "" || !a.Alive {
		return InvalidTarget(string(actorID), "not found or dead")
	}
	if buff.Has(a, buff.Stun) {
		return InvalidTarget(string(actorID), "stunned")
	}
	if buff.Has(a, buff.Silence) {
		return InvalidTarget(string(actorID), "silenced")
	}
	if AbilityLevel(a.Level, slot) <= 0 {
		return InvalidTarget(slot.String(), "not yet learned")
	}
	if cd := a.Cooldowns[slot]; cd > 0 {
		return &CooldownError{Ability: r.env.AbilityName(a.Kit, slot), Remaining: cd}
	}
	return nil
}
