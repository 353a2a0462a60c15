package combat

import (
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/model"
)

// TemplateSource looks up static kit data. *data.KitCatalog implements it.
type TemplateSource interface {
	Template(id model.KitID) *data.KitTemplate
}

// StatAtLevel returns base + growth × (level − 1). Levels below 1 count as 1.
func StatAtLevel(base, growth, level int32) int32 {
	if level < 1 {
		level = 1
	}
	return base + growth*(level-1)
}

// StatsAtLevel computes all five stats of a template at level.
func StatsAtLevel(tmpl *data.KitTemplate, level int32) data.Stats {
	if tmpl == nil {
		return data.Stats{}
	}
	return data.Stats{
		HP:      StatAtLevel(tmpl.Base.HP, tmpl.Growth.HP, level),
		Mana:    StatAtLevel(tmpl.Base.Mana, tmpl.Growth.Mana, level),
		Attack:  StatAtLevel(tmpl.Base.Attack, tmpl.Growth.Attack, level),
		Defense: StatAtLevel(tmpl.Base.Defense, tmpl.Growth.Defense, level),
		Resist:  StatAtLevel(tmpl.Base.Resist, tmpl.Growth.Resist, level),
	}
}

// CombatStats returns the current combat stats of a hero.
// Heroes without a kit (or with a kit missing from the catalog) have zero stats.
func CombatStats(src TemplateSource, a *model.ActorState) data.Stats {
	if src == nil || a == nil || a.Kit == "" {
		return data.Stats{}
	}
	return StatsAtLevel(src.Template(a.Kit), a.Level)
}

// DefensesOf returns the mitigation pair of a hero.
func DefensesOf(src TemplateSource, a *model.ActorState) Defenses {
	s := CombatStats(src, a)
	return Defenses{Defense: s.Defense, Resist: s.Resist}
}

// TowerDefenses is the mitigation pair shared by all towers.
func TowerDefenses() Defenses {
	return Defenses{Defense: TowerArmor, Resist: TowerArmor}
}

// NewActor builds a fresh hero at level with full hp and mana from its template.
func NewActor(tmpl *data.KitTemplate, id model.ActorID, name string, team model.Team, zone model.ZoneID, level int32) *model.ActorState {
	if level < 1 {
		level = 1
	}
	a := &model.ActorState{
		ID:         id,
		Name:       name,
		Team:       team,
		Zone:       zone,
		Level:      level,
		Experience: data.GetExpForLevel(level),
	}
	if tmpl != nil {
		s := StatsAtLevel(tmpl, level)
		a.Kit = tmpl.ID
		a.MaxHP, a.HP = s.HP, s.HP
		a.MaxMana, a.Mana = s.Mana, s.Mana
	}
	a.Alive = a.HP > 0
	return a
}
