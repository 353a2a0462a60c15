package kit

import (
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/buff"
	"github.com/udisondev/skirmish/internal/game/skill"
	"github.com/udisondev/skirmish/internal/model"
)

var (
	maulDamage      = []int32{40, 55, 70, 85}
	primalFuryPower = []int32{30, 45, 60}
)

const (
	maulCost           = 40
	maulCooldown       = 4
	maulHits           = 2
	maulPackBonus      = 15
	howlCost           = 75
	howlCooldown       = 14
	howlTicks          = 2
	pounceCost         = 55
	pounceCooldown     = 10
	pounceDamage       = 50
	pounceRootTicks    = 1
	primalFuryCost     = 120
	primalFuryCooldown = 40
	primalFuryTicks    = 4
	primalFuryHeal     = 20 // percent of max hp

	packHunterCap = 3
)

func beastmaster() skill.Kit {
	return skill.Kit{
		ID:        data.KitBeastmaster,
		Abilities: [model.SlotCount]skill.AbilityFunc{maul, howl, pounce, primalFury},
		Passive:   packHunter,
	}
}

// maul strikes twice; each strike carries the pack bonus, which is then spent.
func maul(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.pay(maulCost, maulCooldown); err != nil {
		return nil, err
	}

	pack := buff.Counter(o.me, buff.Pack)
	for range maulHits {
		o.hitHero(t, float64(o.tier(maulDamage)+pack*maulPackBonus), model.DamagePhysical)
	}
	if pack > 0 {
		buff.SetCounter(o.me, buff.Pack, 0, packHunterCap)
	}
	return o.done(), nil
}

func howl(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	if err := o.pay(howlCost, howlCooldown); err != nil {
		return nil, err
	}
	for _, e := range o.enemiesIn(o.me.Zone) {
		o.status(e, buff.Fear, 1, howlTicks)
	}
	return o.done(), nil
}

// pounce reaches a target up to two zones away along the shortest path.
func pounce(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(withinTwo)
	if err != nil {
		return nil, err
	}
	if err := o.pay(pounceCost, pounceCooldown); err != nil {
		return nil, err
	}
	o.move(o.me, t.Zone)
	o.hitHero(t, pounceDamage, model.DamagePhysical)
	o.status(t, buff.Root, 1, pounceRootTicks)
	return o.done(), nil
}

func primalFury(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	if err := o.pay(primalFuryCost, primalFuryCooldown); err != nil {
		return nil, err
	}
	o.status(o.me, buff.Empower, o.tier(primalFuryPower), primalFuryTicks)
	o.heal(o.me, o.me.MaxHP*primalFuryHeal/100)
	return o.done(), nil
}

// packHunter gains pack when an ally casts in the same zone.
func packHunter(_ skill.Env, s *model.MatchState, id model.ActorID, ev model.Event) {
	me := self(s, id)
	if me == nil {
		return
	}
	install(me, buff.Pack)

	c, ok := asCast(ev)
	if !ok || c.Caster == id || c.Zone != me.Zone {
		return
	}
	if ally := s.Actor(c.Caster); ally != nil && ally.Team == me.Team {
		buff.AddCounter(me, buff.Pack, 1, packHunterCap)
	}
}
