package combat

import (
	"log/slog"

	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/model"
)

// Kill rewards.
const (
	HeroKillGold  = 200
	HeroKillExp   = 100
	AssistExp     = 50
	CreepKillGold = 40
	CreepKillExp  = 30
	TowerGold     = 150
)

// RespawnDelay returns how many ticks a hero of the given level stays dead.
func RespawnDelay(level int32) int64 {
	if level < 1 {
		level = 1
	}
	return 5 + int64(level)
}

// GrantExperience adds exp to a hero and applies every level-up it earns.
// Each gained level recomputes MaxHP/MaxMana with StatAtLevel and raises
// current hp/mana by the same delta. Returns the resulting level.
func GrantExperience(a *model.ActorState, tmpl *data.KitTemplate, exp int32) int32 {
	if exp <= 0 {
		return a.Level
	}

	a.Experience += exp

	oldLevel := a.Level
	newLevel := data.GetLevelForExp(a.Experience, oldLevel)
	if newLevel <= oldLevel {
		return oldLevel
	}
	a.Level = newLevel

	if tmpl != nil {
		before := StatsAtLevel(tmpl, oldLevel)
		after := StatsAtLevel(tmpl, newLevel)

		a.MaxHP = after.HP
		a.MaxMana = after.Mana
		if a.Alive {
			a.SetHP(a.HP + after.HP - before.HP)
		}
		a.SetMana(a.Mana + after.Mana - before.Mana)
	}

	slog.Debug("hero leveled up",
		"actor", a.ID,
		"from", oldLevel,
		"to", newLevel,
		"experience", a.Experience)

	return newLevel
}

// RewardHeroKill settles a hero death: victim tallies and respawn timer,
// killer gold/xp/kill, team kill counter and assists for the killer's allies
// standing in the killer's zone. Returns the ActorKilled event.
//
// Killer may be empty or an ally (no rewards are paid then).
func RewardHeroKill(s *model.MatchState, src TemplateSource, killerID model.ActorID, victim *model.ActorState) model.Event {
	victim.Deaths++
	victim.RespawnTick = s.Tick + RespawnDelay(victim.Level)

	ev := model.ActorKilled{Killer: killerID, Victim: victim.ID, Zone: victim.Zone}

	killer := s.Actor(killerID)
	if killer != nil && killer.Team != victim.Team {
		killer.Kills++
		killer.Gold += HeroKillGold
		GrantExperience(killer, templateOf(src, killer), HeroKillExp)
		if ts := s.TeamState(killer.Team); ts != nil {
			ts.Kills++
		}

		for _, id := range s.ActorIDs() {
			ally := s.Actors[id]
			if ally.ID == killer.ID || ally.Team != killer.Team || !ally.Alive || ally.Zone != killer.Zone {
				continue
			}
			ally.Assists++
			GrantExperience(ally, templateOf(src, ally), AssistExp)
			ev.Assists = append(ev.Assists, ally.ID)
		}
	}

	slog.Debug("hero killed",
		"killer", killerID,
		"victim", victim.ID,
		"zone", victim.Zone,
		"respawnTick", victim.RespawnTick)

	return model.Event{Tick: s.Tick, Payload: ev}
}

// RewardCreepKill pays the last-hit bounty for a creep.
func RewardCreepKill(src TemplateSource, killer *model.ActorState) {
	if killer == nil {
		return
	}
	killer.Gold += CreepKillGold
	GrantExperience(killer, templateOf(src, killer), CreepKillExp)
}

// DestroyTower settles a fallen tower: the owner team loses a tower, every
// hero of the attacking team earns TowerGold and a fallen base tower ends
// the match. Returns the TowerDestroyed event.
func DestroyTower(s *model.MatchState, killerID model.ActorID, zone *model.ZoneState) model.Event {
	tower := zone.Tower
	owner := tower.Team

	if ts := s.TeamState(owner); ts != nil {
		ts.TowersLost++
	}
	attackers := owner.Opponent()
	for _, id := range s.ActorIDs() {
		if a := s.Actors[id]; a.Team == attackers {
			a.Gold += TowerGold
		}
	}

	if tower.Base {
		s.Winner = attackers
		s.Phase = model.PhaseEnded
		slog.Info("base tower destroyed", "zone", zone.ID, "winner", attackers)
	}

	return model.Event{Tick: s.Tick, Payload: model.TowerDestroyed{
		Zone: zone.ID,
		Team: owner,
		By:   killerID,
		Base: tower.Base,
	}}
}

func templateOf(src TemplateSource, a *model.ActorState) *data.KitTemplate {
	if src == nil || a == nil || a.Kit == "" {
		return nil
	}
	return src.Template(a.Kit)
}
