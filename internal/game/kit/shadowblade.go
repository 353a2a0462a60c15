package kit

import (
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/buff"
	"github.com/udisondev/skirmish/internal/game/skill"
	"github.com/udisondev/skirmish/internal/model"
)

var (
	backstabDamage       = []int32{70, 100, 130, 160}
	shadowStepCost       = []int32{50, 45, 40, 35}
	assassinateThreshold = []int32{25, 30, 35}
)

const (
	backstabCost        = 40
	backstabCooldown    = 3
	backstabBonusBelow  = 50 // hp percent
	shroudCost          = 60
	shroudCooldown      = 12
	shroudTicks         = 3
	shadowStepCooldown  = 8
	assassinateCost     = 150
	assassinateCooldown = 45
)

func shadowblade() skill.Kit {
	return skill.Kit{
		ID:        data.KitShadowblade,
		Abilities: [model.SlotCount]skill.AbilityFunc{backstab, shroud, shadowStep, assassinate},
		Passive:   ambush,
	}
}

// backstab deals 50% more against targets below half hp.
func backstab(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.pay(backstabCost, backstabCooldown); err != nil {
		return nil, err
	}

	dmg := float64(o.tier(backstabDamage))
	if t.HPPercent() < backstabBonusBelow {
		dmg *= 1.5
	}
	o.hitHero(t, dmg, model.DamagePhysical)
	return o.done(), nil
}

func shroud(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	if err := o.pay(shroudCost, shroudCooldown); err != nil {
		return nil, err
	}
	o.status(o.me, buff.Stealth, 1, shroudTicks)
	return o.done(), nil
}

func shadowStep(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	z, err := o.destination(adjacent)
	if err != nil {
		return nil, err
	}
	if err := o.pay(o.tier(shadowStepCost), shadowStepCooldown); err != nil {
		return nil, err
	}
	o.move(o.me, z.ID)
	return o.done(), nil
}

// assassinate kills a target below the threshold outright. Above it the
// cast fizzles without cost.
func assassinate(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.afford(assassinateCost); err != nil {
		return nil, err
	}
	if t.HPPercent() >= o.tier(assassinateThreshold) {
		return o.fail(t.ID, "target above execute threshold"), nil
	}
	if err := o.pay(assassinateCost, assassinateCooldown); err != nil {
		return nil, err
	}
	o.execute(t)
	return o.done(), nil
}

// ambush resets Assassinate whenever the shadowblade lands a kill.
func ambush(_ skill.Env, s *model.MatchState, id model.ActorID, ev model.Event) {
	k, ok := asKill(ev)
	if !ok || k.Killer != id {
		return
	}
	if me := self(s, id); me != nil {
		me.Cooldowns[model.SlotR] = 0
	}
}
