package kit

import (
	"github.com/udisondev/skirmish/internal/game/buff"
	"github.com/udisondev/skirmish/internal/game/combat"
	"github.com/udisondev/skirmish/internal/game/skill"
	"github.com/udisondev/skirmish/internal/model"
)

// self returns the passive's hero if it is alive.
func self(s *model.MatchState, id model.ActorID) *model.ActorState {
	a := s.Actor(id)
	if a == nil || !a.Alive {
		return nil
	}
	return a
}

// install creates a tracking counter at 0 the first time the hero sees any event.
func install(a *model.ActorState, id model.BuffID) {
	if !buff.Installed(a, id) {
		buff.SetCounter(a, id, 0, buff.Permanent)
	}
}

func isTick(ev model.Event) bool {
	return ev.Type() == model.EventTickElapsed
}

func asCast(ev model.Event) (model.AbilityCast, bool) {
	c, ok := ev.Payload.(model.AbilityCast)
	return c, ok
}

func asKill(ev model.Event) (model.ActorKilled, bool) {
	k, ok := ev.Payload.(model.ActorKilled)
	return k, ok
}

func asRespawn(ev model.Event) (model.ActorRespawned, bool) {
	r, ok := ev.Payload.(model.ActorRespawned)
	return r, ok
}

// enemyCast returns a cast made by a hero of the other team.
func enemyCast(s *model.MatchState, me *model.ActorState, ev model.Event) (model.AbilityCast, *model.ActorState, bool) {
	c, ok := asCast(ev)
	if !ok {
		return model.AbilityCast{}, nil, false
	}
	caster := s.Actor(c.Caster)
	if caster == nil || caster.Team == me.Team {
		return model.AbilityCast{}, nil, false
	}
	return c, caster, true
}

// slowedHeroes lists the distinct heroes a cast hit while they were
// already slowed, in hit order.
func slowedHeroes(c model.AbilityCast) []model.ActorID {
	var out []model.ActorID
	seen := make(map[model.ActorID]bool, len(c.Hits))
	for _, h := range c.Hits {
		if h.Actor == "" || !h.Slowed || seen[h.Actor] {
			continue
		}
		seen[h.Actor] = true
		out = append(out, h.Actor)
	}
	return out
}

// passiveStrike deals passive damage and records a kill if it lands one.
func passiveStrike(env skill.Env, s *model.MatchState, src, t *model.ActorState, raw float64, cat model.DamageCategory) int32 {
	if !t.Alive {
		return 0
	}
	dealt, killed := strike(env, src, t, raw, cat)
	if killed {
		s.Emit(combat.RewardHeroKill(s, env.Catalog, src.ID, t))
	}
	return dealt
}
