package kit

import (
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/buff"
	"github.com/udisondev/skirmish/internal/game/combat"
	"github.com/udisondev/skirmish/internal/game/skill"
	"github.com/udisondev/skirmish/internal/model"
)

var (
	fireballDamage  = []int32{80, 120, 160, 200}
	fireballCost    = []int32{50, 60, 70, 80}
	igniteBurn      = []int32{15, 20, 25, 30}
	flameWallDamage = []int32{50, 75, 100, 125}
	flameWallCost   = []int32{70, 80, 90, 100}
	infernoDamage   = []int32{150, 225, 300}
	infernoCost     = []int32{120, 160, 200}
)

const (
	fireballCooldown  = 3
	igniteCost        = 60
	igniteCooldown    = 6
	igniteTicks       = 4
	flameWallCooldown = 8
	infernoCooldown   = 40
	infernoBurn       = 25
	infernoBurnTicks  = 3

	kindlingMana = 40
)

func pyromancer() skill.Kit {
	return skill.Kit{
		ID:        data.KitPyromancer,
		Abilities: [model.SlotCount]skill.AbilityFunc{fireball, ignite, flameWall, inferno},
		Passive:   kindling,
	}
}

func fireball(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	v, err := o.attackable(sameZone, false)
	if err != nil {
		return nil, err
	}
	if err := o.pay(o.tier(fireballCost), fireballCooldown); err != nil {
		return nil, err
	}
	o.hit(v, float64(o.tier(fireballDamage)), model.DamageMagical)
	return o.done(), nil
}

func ignite(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.pay(igniteCost, igniteCooldown); err != nil {
		return nil, err
	}
	o.status(t, buff.Burn, o.tier(igniteBurn), igniteTicks)
	return o.done(), nil
}

// flameWall burns every enemy hero and creep in the caster's zone.
func flameWall(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	z, err := o.zone(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.pay(o.tier(flameWallCost), flameWallCooldown); err != nil {
		return nil, err
	}

	dmg := float64(o.tier(flameWallDamage))
	for _, e := range o.enemiesIn(z.ID) {
		o.hitHero(e, dmg, model.DamageMagical)
	}
	for _, i := range o.enemyCreepsIn(z) {
		o.hitCreep(z, i, dmg, model.DamageMagical)
	}
	return o.done(), nil
}

func inferno(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	z, err := o.zone(nearby)
	if err != nil {
		return nil, err
	}
	if err := o.pay(o.tier(infernoCost), infernoCooldown); err != nil {
		return nil, err
	}
	for _, e := range o.enemiesIn(z.ID) {
		o.hitHero(e, float64(o.tier(infernoDamage)), model.DamageMagical)
		o.status(e, buff.Burn, infernoBurn, infernoBurnTicks)
	}
	return o.done(), nil
}

// kindling refunds mana when an enemy dies while burning from the pyromancer.
func kindling(_ skill.Env, s *model.MatchState, id model.ActorID, ev model.Event) {
	k, ok := asKill(ev)
	if !ok {
		return
	}
	me := self(s, id)
	victim := s.Actor(k.Victim)
	if me == nil || victim == nil || victim.Team == me.Team {
		return
	}
	if _, burning := buff.FindOwned(victim, buff.Burn, id); burning {
		combat.RestoreMana(me, kindlingMana)
	}
}
