package kit

import (
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/buff"
	"github.com/udisondev/skirmish/internal/game/skill"
	"github.com/udisondev/skirmish/internal/model"
)

var (
	thornLashDamage = []int32{50, 75, 100, 125}
	thornLashBleed  = []int32{10, 14, 18, 22}
	regrowthHeal    = []int32{80, 120, 160, 200}
)

const (
	thornLashCost       = 40
	thornLashCooldown   = 4
	thornLashBleedTicks = 3
	brambleCost         = 60
	brambleCooldown     = 10
	brambleTicks        = 2
	regrowthCost        = 70
	regrowthCooldown    = 10
	regrowthReduction   = 15
	regrowthTicks       = 2
	overgrowthCost      = 160
	overgrowthCooldown  = 50
	overgrowthRootTicks = 2
	overgrowthBleed     = 30
	overgrowthBleedTime = 4

	thornsPercent = 10
)

func thornwarden() skill.Kit {
	return skill.Kit{
		ID:        data.KitThornwarden,
		Abilities: [model.SlotCount]skill.AbilityFunc{thornLash, bramble, regrowth, overgrowth},
		Passive:   thorns,
	}
}

func thornLash(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.pay(thornLashCost, thornLashCooldown); err != nil {
		return nil, err
	}
	o.hitHero(t, float64(o.tier(thornLashDamage)), model.DamagePhysical)
	o.status(t, buff.Bleed, o.tier(thornLashBleed), thornLashBleedTicks)
	return o.done(), nil
}

func bramble(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(nearby)
	if err != nil {
		return nil, err
	}
	if err := o.pay(brambleCost, brambleCooldown); err != nil {
		return nil, err
	}
	o.status(t, buff.Root, 1, brambleTicks)
	return o.done(), nil
}

func regrowth(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.allyHero()
	if err != nil {
		return nil, err
	}
	if err := o.pay(regrowthCost, regrowthCooldown); err != nil {
		return nil, err
	}
	o.heal(t, o.tier(regrowthHeal))
	o.status(t, buff.DamageReduction, regrowthReduction, regrowthTicks)
	return o.done(), nil
}

func overgrowth(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	z, err := o.zone(nearby)
	if err != nil {
		return nil, err
	}
	if err := o.pay(overgrowthCost, overgrowthCooldown); err != nil {
		return nil, err
	}
	for _, e := range o.enemiesIn(z.ID) {
		o.status(e, buff.Root, 1, overgrowthRootTicks)
		o.status(e, buff.Bleed, overgrowthBleed, overgrowthBleedTime)
	}
	return o.done(), nil
}

// thorns reflects a tenth of enemy cast damage back as pure damage.
func thorns(env skill.Env, s *model.MatchState, id model.ActorID, ev model.Event) {
	me := self(s, id)
	if me == nil {
		return
	}
	c, caster, ok := enemyCast(s, me, ev)
	if !ok || !caster.Alive {
		return
	}
	dmg, hit := c.HitOn(id)
	if !hit {
		return
	}
	if reflected := dmg * thornsPercent / 100; reflected > 0 {
		passiveStrike(env, s, me, caster, float64(reflected), model.DamagePure)
	}
}
