package kit

import (
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/buff"
	"github.com/udisondev/skirmish/internal/game/skill"
	"github.com/udisondev/skirmish/internal/model"
)

var mindSpikeDamage = []int32{70, 105, 140, 175}

const (
	mindSpikeCost        = 50
	mindSpikeCooldown    = 3
	confuseCost          = 70
	confuseCooldown      = 12
	confuseTicks         = 2
	massHysteriaCost     = 100
	massHysteriaCooldown = 16
	massHysteriaTicks    = 2
	dominateCost         = 150
	dominateCooldown     = 45
	dominateTauntTicks   = 3
	dominateStunTicks    = 2

	feedbackDamage = 15
)

func mesmer() skill.Kit {
	return skill.Kit{
		ID:        data.KitMesmer,
		Abilities: [model.SlotCount]skill.AbilityFunc{mindSpike, confuse, massHysteria, dominate},
		Passive:   feedback,
	}
}

func mindSpike(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.pay(mindSpikeCost, mindSpikeCooldown); err != nil {
		return nil, err
	}
	o.hitHero(t, float64(o.tier(mindSpikeDamage)), model.DamageMagical)
	return o.done(), nil
}

func confuse(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.pay(confuseCost, confuseCooldown); err != nil {
		return nil, err
	}
	o.status(t, buff.Silence, 1, confuseTicks)
	return o.done(), nil
}

func massHysteria(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	if err := o.pay(massHysteriaCost, massHysteriaCooldown); err != nil {
		return nil, err
	}
	for _, e := range o.enemiesIn(o.me.Zone) {
		o.status(e, buff.Fear, 1, massHysteriaTicks)
	}
	return o.done(), nil
}

func dominate(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.pay(dominateCost, dominateCooldown); err != nil {
		return nil, err
	}
	o.status(t, buff.Taunt, 1, dominateTauntTicks)
	o.status(t, buff.Stun, 1, dominateStunTicks)
	return o.done(), nil
}

// feedback punishes enemies who cast in the mesmer's zone.
func feedback(env skill.Env, s *model.MatchState, id model.ActorID, ev model.Event) {
	me := self(s, id)
	if me == nil {
		return
	}
	c, caster, ok := enemyCast(s, me, ev)
	if !ok || c.Zone != me.Zone || caster.Zone != me.Zone {
		return
	}
	passiveStrike(env, s, me, caster, feedbackDamage, model.DamageMagical)
}
