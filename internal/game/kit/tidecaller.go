package kit

import (
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/buff"
	"github.com/udisondev/skirmish/internal/game/skill"
	"github.com/udisondev/skirmish/internal/model"
)

var (
	riptideDamage = []int32{70, 100, 130, 160}
	bubbleShield  = []int32{90, 130, 170, 210}
	tsunamiDamage = []int32{140, 210, 280}
)

const (
	riptideCost      = 45
	riptideCooldown  = 3
	riptideSlow      = 25
	riptideSlowTicks = 2
	undertowCost     = 70
	undertowCooldown = 12
	undertowRoot     = 1
	bubbleCost       = 60
	bubbleCooldown   = 8
	bubbleTicks      = 3
	tsunamiCost      = 170
	tsunamiCooldown  = 45

	tidalWardCap    = 5
	tidalWardShield = 100
	tidalWardTicks  = 3
)

func tidecaller() skill.Kit {
	return skill.Kit{
		ID:        data.KitTidecaller,
		Abilities: [model.SlotCount]skill.AbilityFunc{riptide, undertow, bubble, tsunami},
		Passive:   tidalWard,
	}
}

func riptide(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.pay(riptideCost, riptideCooldown); err != nil {
		return nil, err
	}
	o.hitHero(t, float64(o.tier(riptideDamage)), model.DamageMagical)
	o.status(t, buff.Slow, riptideSlow, riptideSlowTicks)
	return o.done(), nil
}

// undertow drags an enemy from a neighboring zone into the caster's zone.
func undertow(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(adjacent)
	if err != nil {
		return nil, err
	}
	if err := o.pay(undertowCost, undertowCooldown); err != nil {
		return nil, err
	}
	o.move(t, o.me.Zone)
	o.status(t, buff.Root, 1, undertowRoot)
	return o.done(), nil
}

func bubble(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.allyHero()
	if err != nil {
		return nil, err
	}
	if err := o.pay(bubbleCost, bubbleCooldown); err != nil {
		return nil, err
	}
	o.status(t, buff.Shield, o.tier(bubbleShield), bubbleTicks)
	return o.done(), nil
}

func tsunami(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	if err := o.pay(tsunamiCost, tsunamiCooldown); err != nil {
		return nil, err
	}
	for _, e := range o.enemiesIn(o.me.Zone) {
		o.hitHero(e, float64(o.tier(tsunamiDamage)), model.DamageMagical)
		o.status(e, buff.Stun, 1, 1)
	}
	return o.done(), nil
}

// tidalWard counts enemy hits taken; the fifth one raises a shield.
func tidalWard(_ skill.Env, s *model.MatchState, id model.ActorID, ev model.Event) {
	me := self(s, id)
	if me == nil {
		return
	}
	install(me, buff.Tide)

	c, _, ok := enemyCast(s, me, ev)
	if !ok {
		return
	}
	n := c.HitCountOn(id)
	if n == 0 {
		return
	}
	if buff.AddCounter(me, buff.Tide, int32(n), tidalWardCap) >= tidalWardCap {
		buff.Apply(me, model.Buff{ID: buff.Shield, Stacks: tidalWardShield, TicksRemaining: tidalWardTicks, Owner: id})
		buff.SetCounter(me, buff.Tide, 0, tidalWardCap)
	}
}
