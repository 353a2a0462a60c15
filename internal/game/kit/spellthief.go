package kit

import (
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/combat"
	"github.com/udisondev/skirmish/internal/game/skill"
	"github.com/udisondev/skirmish/internal/model"
)

var (
	arcaneBoltDamage = []int32{70, 100, 130, 160}
	siphonDrain      = []int32{40, 60, 80, 100}
)

const (
	arcaneBoltCost     = 45
	arcaneBoltCooldown = 3
	siphonCost         = 20
	siphonCooldown     = 8
	blinkCost          = 60
	blinkCooldown      = 10
	mirrorSwapCost     = 150
	mirrorSwapCooldown = 50

	arcaneEchoMana = 15
)

func spellthief() skill.Kit {
	return skill.Kit{
		ID:        data.KitSpellthief,
		Abilities: [model.SlotCount]skill.AbilityFunc{arcaneBolt, siphon, blink, mirrorSwap},
		Passive:   arcaneEcho,
	}
}

func arcaneBolt(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.pay(arcaneBoltCost, arcaneBoltCooldown); err != nil {
		return nil, err
	}
	o.hitHero(t, float64(o.tier(arcaneBoltDamage)), model.DamageMagical)
	return o.done(), nil
}

// siphon steals mana and deals half of it as magic damage.
func siphon(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.pay(siphonCost, siphonCooldown); err != nil {
		return nil, err
	}

	drained := min(t.Mana, o.tier(siphonDrain))
	t.SetMana(t.Mana - drained)
	combat.RestoreMana(o.me, drained)
	if drained > 0 {
		o.hitHero(t, float64(drained/2), model.DamageMagical)
	}
	return o.done(), nil
}

func blink(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	z, err := o.destination(withinTwo)
	if err != nil {
		return nil, err
	}
	if err := o.pay(blinkCost, blinkCooldown); err != nil {
		return nil, err
	}
	o.move(o.me, z.ID)
	return o.done(), nil
}

// mirrorSwap trades places with any visible enemy hero.
func mirrorSwap(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(anywhere)
	if err != nil {
		return nil, err
	}
	if err := o.pay(mirrorSwapCost, mirrorSwapCooldown); err != nil {
		return nil, err
	}
	mine, theirs := o.me.Zone, t.Zone
	o.move(o.me, theirs)
	o.move(t, mine)
	return o.done(), nil
}

// arcaneEcho restores mana whenever an enemy casts nearby.
func arcaneEcho(_ skill.Env, s *model.MatchState, id model.ActorID, ev model.Event) {
	me := self(s, id)
	if me == nil {
		return
	}
	c, _, ok := enemyCast(s, me, ev)
	if ok && c.Zone == me.Zone {
		combat.RestoreMana(me, arcaneEchoMana)
	}
}
