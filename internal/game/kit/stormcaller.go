package kit

import (
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/buff"
	"github.com/udisondev/skirmish/internal/game/skill"
	"github.com/udisondev/skirmish/internal/model"
)

var (
	lightningBoltDamage  = []int32{75, 110, 145, 180}
	chainLightningDamage = []int32{60, 85, 110, 135}
	thunderstrikeDamage  = []int32{100, 160, 220}
)

const (
	lightningBoltCost      = 50
	lightningBoltCooldown  = 3
	chainLightningCost     = 75
	chainLightningCooldown = 7
	chainLightningTargets  = 3
	staticFieldCost        = 90
	staticFieldCooldown    = 14
	staticFieldDamage      = 30
	staticFieldTicks       = 1
	thunderstrikeCost      = 180
	thunderstrikeCooldown  = 55

	staticChargeCap = 4
)

func stormcaller() skill.Kit {
	return skill.Kit{
		ID:        data.KitStormcaller,
		Abilities: [model.SlotCount]skill.AbilityFunc{lightningBolt, chainLightning, staticField, thunderstrike},
		Passive:   staticCharge,
	}
}

// lightningBolt discharges a full static charge into a stun.
func lightningBolt(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.pay(lightningBoltCost, lightningBoltCooldown); err != nil {
		return nil, err
	}
	o.hitHero(t, float64(o.tier(lightningBoltDamage)), model.DamageMagical)
	if buff.Counter(o.me, buff.Static) >= staticChargeCap {
		o.status(t, buff.Stun, 1, 1)
		buff.SetCounter(o.me, buff.Static, 0, staticChargeCap)
	}
	return o.done(), nil
}

func chainLightning(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	if err := o.pay(chainLightningCost, chainLightningCooldown); err != nil {
		return nil, err
	}
	enemies := o.enemiesIn(o.me.Zone)
	if len(enemies) > chainLightningTargets {
		enemies = enemies[:chainLightningTargets]
	}
	for _, e := range enemies {
		o.hitHero(e, float64(o.tier(chainLightningDamage)), model.DamageMagical)
	}
	return o.done(), nil
}

func staticField(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	if err := o.pay(staticFieldCost, staticFieldCooldown); err != nil {
		return nil, err
	}
	for _, e := range o.enemiesIn(o.me.Zone) {
		o.status(e, buff.Silence, 1, staticFieldTicks)
		o.hitHero(e, staticFieldDamage, model.DamageMagical)
	}
	return o.done(), nil
}

func thunderstrike(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	if err := o.pay(thunderstrikeCost, thunderstrikeCooldown); err != nil {
		return nil, err
	}
	for _, e := range o.allEnemies() {
		o.hitHero(e, float64(o.tier(thunderstrikeDamage)), model.DamageMagical)
	}
	return o.done(), nil
}

// staticCharge builds one charge per own cast.
func staticCharge(_ skill.Env, s *model.MatchState, id model.ActorID, ev model.Event) {
	me := self(s, id)
	if me == nil {
		return
	}
	install(me, buff.Static)
	if c, ok := asCast(ev); ok && c.Caster == id {
		buff.AddCounter(me, buff.Static, 1, staticChargeCap)
	}
}
