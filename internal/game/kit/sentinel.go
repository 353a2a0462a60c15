package kit

import (
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/buff"
	"github.com/udisondev/skirmish/internal/game/skill"
	"github.com/udisondev/skirmish/internal/model"
)

var (
	spearThrowDamage   = []int32{60, 90, 120, 150}
	siegeBreakerDamage = []int32{300, 500, 700}
)

const (
	spearThrowCost         = 35
	spearThrowCooldown     = 3
	watchtowerCost         = 50
	watchtowerCooldown     = 12
	watchtowerTicks        = 4
	lockdownCost           = 90
	lockdownCooldown       = 16
	lockdownTicks          = 2
	siegeBreakerCost       = 150
	siegeBreakerCooldown   = 45
	siegeBreakerHeroDamage = 100
)

func sentinel() skill.Kit {
	return skill.Kit{
		ID:        data.KitSentinel,
		Abilities: [model.SlotCount]skill.AbilityFunc{spearThrow, watchtower, lockdown, siegeBreaker},
		Passive:   vigilance,
	}
}

func spearThrow(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	v, err := o.attackable(sameZone, true)
	if err != nil {
		return nil, err
	}
	if err := o.pay(spearThrowCost, spearThrowCooldown); err != nil {
		return nil, err
	}
	o.hit(v, float64(o.tier(spearThrowDamage)), model.DamagePhysical)
	return o.done(), nil
}

// watchtower reveals every enemy in any zone of the map.
func watchtower(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	z, err := o.zone(anywhere)
	if err != nil {
		return nil, err
	}
	if err := o.pay(watchtowerCost, watchtowerCooldown); err != nil {
		return nil, err
	}
	for _, e := range o.enemiesIn(z.ID) {
		o.statusAt(e, buff.Reveal, 1, watchtowerTicks, model.BuffContext{Zone: z.ID})
	}
	return o.done(), nil
}

func lockdown(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	z, err := o.zone(nearby)
	if err != nil {
		return nil, err
	}
	if err := o.pay(lockdownCost, lockdownCooldown); err != nil {
		return nil, err
	}
	for _, e := range o.enemiesIn(z.ID) {
		o.status(e, buff.Root, 1, lockdownTicks)
	}
	return o.done(), nil
}

// siegeBreaker hits the enemy tower of the caster's zone and every enemy hero defending it.
func siegeBreaker(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	z := o.s.Zone(o.me.Zone)
	if z == nil || z.Tower == nil || z.Tower.Destroyed() || z.Tower.Team == o.me.Team {
		return nil, skill.InvalidTarget("tower in "+string(o.me.Zone), "no enemy tower in zone")
	}
	if err := o.pay(siegeBreakerCost, siegeBreakerCooldown); err != nil {
		return nil, err
	}
	o.hitTower(z, float64(o.tier(siegeBreakerDamage)), model.DamagePure)
	for _, e := range o.enemiesIn(z.ID) {
		o.hitHero(e, siegeBreakerHeroDamage, model.DamagePhysical)
	}
	return o.done(), nil
}

// vigilance reveals enemies sharing the sentinel's zone every tick.
func vigilance(_ skill.Env, s *model.MatchState, id model.ActorID, ev model.Event) {
	if !isTick(ev) {
		return
	}
	me := self(s, id)
	if me == nil {
		return
	}
	for _, e := range heroesIn(s, me.Zone, me.Team.Opponent()) {
		buff.Apply(e, model.Buff{
			ID:             buff.Reveal,
			Stacks:         1,
			TicksRemaining: 1,
			Owner:          id,
			Context:        model.BuffContext{Zone: me.Zone},
		})
	}
}
