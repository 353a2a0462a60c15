package kit

import (
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/buff"
	"github.com/udisondev/skirmish/internal/game/skill"
	"github.com/udisondev/skirmish/internal/model"
)

var (
	boneSpearDamage   = []int32{65, 95, 125, 155}
	soulHarvestDamage = []int32{30, 45, 60, 75}
)

const (
	boneSpearCost       = 40
	boneSpearCooldown   = 3
	dreadCost           = 60
	dreadCooldown       = 10
	dreadTicks          = 2
	dreadDamage         = 40
	soulHarvestCost     = 80
	soulHarvestCooldown = 10
	reapCost            = 120
	reapCooldown        = 45
	reapBaseThreshold   = 20 // hp percent
	reapMaxThreshold    = 40

	soulCollectorCap = 20
)

func gravekeeper() skill.Kit {
	return skill.Kit{
		ID:        data.KitGravekeeper,
		Abilities: [model.SlotCount]skill.AbilityFunc{boneSpear, dread, soulHarvest, reap},
		Passive:   soulCollector,
	}
}

func boneSpear(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.pay(boneSpearCost, boneSpearCooldown); err != nil {
		return nil, err
	}
	o.hitHero(t, float64(o.tier(boneSpearDamage)), model.DamagePhysical)
	return o.done(), nil
}

func dread(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.pay(dreadCost, dreadCooldown); err != nil {
		return nil, err
	}
	o.status(t, buff.Fear, 1, dreadTicks)
	o.hitHero(t, dreadDamage, model.DamageMagical)
	return o.done(), nil
}

func soulHarvest(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	if err := o.pay(soulHarvestCost, soulHarvestCooldown); err != nil {
		return nil, err
	}
	for _, e := range o.enemiesIn(o.me.Zone) {
		o.hitHero(e, float64(o.tier(soulHarvestDamage)), model.DamagePure)
	}
	return o.done(), nil
}

// reap executes below 20% hp, one more percent per collected soul (up to
// 40%), and spends the souls. Above the threshold it fizzles without cost.
func reap(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.afford(reapCost); err != nil {
		return nil, err
	}
	threshold := min(reapBaseThreshold+buff.Counter(o.me, buff.Souls), reapMaxThreshold)
	if t.HPPercent() >= threshold {
		return o.fail(t.ID, "target above execute threshold"), nil
	}
	if err := o.pay(reapCost, reapCooldown); err != nil {
		return nil, err
	}
	o.execute(t)
	buff.SetCounter(o.me, buff.Souls, 0, soulCollectorCap)
	return o.done(), nil
}

// soulCollector gains a soul for every hero death it witnesses.
func soulCollector(_ skill.Env, s *model.MatchState, id model.ActorID, ev model.Event) {
	me := self(s, id)
	if me == nil {
		return
	}
	install(me, buff.Souls)
	if k, ok := asKill(ev); ok && k.Victim != id {
		buff.AddCounter(me, buff.Souls, 1, soulCollectorCap)
	}
}
