package kit

import (
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/buff"
	"github.com/udisondev/skirmish/internal/game/skill"
	"github.com/udisondev/skirmish/internal/model"
)

var (
	toxicSpitPoison = []int32{12, 18, 24, 30}
	miasmaPoison    = []int32{8, 12, 16, 20}
	pandemicPoison  = []int32{20, 30, 40}
)

const (
	toxicSpitCost     = 45
	toxicSpitCooldown = 4
	toxicSpitDamage   = 30
	toxicSpitTicks    = 5
	miasmaCost        = 70
	miasmaCooldown    = 9
	miasmaTicks       = 4
	witherCost        = 80
	witherCooldown    = 14
	witherTicks       = 2
	pandemicCost      = 180
	pandemicCooldown  = 60
	pandemicTicks     = 6

	putridAuraPoison = 5
	putridAuraTicks  = 2
)

func plaguebringer() skill.Kit {
	return skill.Kit{
		ID:        data.KitPlaguebringer,
		Abilities: [model.SlotCount]skill.AbilityFunc{toxicSpit, miasma, wither, pandemic},
		Passive:   putridAura,
	}
}

func toxicSpit(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.pay(toxicSpitCost, toxicSpitCooldown); err != nil {
		return nil, err
	}
	o.hitHero(t, toxicSpitDamage, model.DamageMagical)
	o.status(t, buff.Poison, o.tier(toxicSpitPoison), toxicSpitTicks)
	return o.done(), nil
}

func miasma(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	if err := o.pay(miasmaCost, miasmaCooldown); err != nil {
		return nil, err
	}
	for _, e := range o.enemiesIn(o.me.Zone) {
		o.status(e, buff.Poison, o.tier(miasmaPoison), miasmaTicks)
	}
	return o.done(), nil
}

func wither(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.pay(witherCost, witherCooldown); err != nil {
		return nil, err
	}
	o.status(t, buff.Silence, 1, witherTicks)
	return o.done(), nil
}

func pandemic(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	if err := o.pay(pandemicCost, pandemicCooldown); err != nil {
		return nil, err
	}
	for _, e := range o.allEnemies() {
		o.status(e, buff.Poison, o.tier(pandemicPoison), pandemicTicks)
	}
	return o.done(), nil
}

// putridAura poisons every enemy sharing the plaguebringer's zone each tick.
// The aura poison is keyed by zone so it never overwrites Toxic Spit or Miasma.
func putridAura(_ skill.Env, s *model.MatchState, id model.ActorID, ev model.Event) {
	if !isTick(ev) {
		return
	}
	me := self(s, id)
	if me == nil {
		return
	}
	for _, e := range heroesIn(s, me.Zone, me.Team.Opponent()) {
		buff.Apply(e, model.Buff{
			ID:             buff.Poison,
			Stacks:         putridAuraPoison,
			TicksRemaining: putridAuraTicks,
			Owner:          id,
			Context:        model.BuffContext{Zone: me.Zone},
		})
	}
}
