package kit

import (
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/buff"
	"github.com/udisondev/skirmish/internal/game/skill"
	"github.com/udisondev/skirmish/internal/model"
)

var (
	cleaveDamage   = []int32{50, 75, 100, 125}
	battleCryPower = []int32{10, 15, 20, 25}
	chargeDamage   = []int32{40, 60, 80, 100}
	decimateDamage = []int32{300, 450, 600}
)

const (
	cleaveCost        = 40
	cleaveCooldown    = 4
	battleCryCost     = 70
	battleCryCooldown = 12
	battleCryTicks    = 3
	chargeCost        = 60
	chargeCooldown    = 10
	decimateCost      = 100
	decimateCooldown  = 30
	decimateThreshold = 30 // hp percent

	bloodlustHealPercent = 15
)

func warlord() skill.Kit {
	return skill.Kit{
		ID:        data.KitWarlord,
		Abilities: [model.SlotCount]skill.AbilityFunc{cleave, battleCry, charge, decimate},
		Passive:   bloodlust,
	}
}

func cleave(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	z, err := o.zone(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.pay(cleaveCost, cleaveCooldown); err != nil {
		return nil, err
	}

	dmg := float64(o.tier(cleaveDamage))
	for _, e := range o.enemiesIn(z.ID) {
		o.hitHero(e, dmg, model.DamagePhysical)
	}
	for _, i := range o.enemyCreepsIn(z) {
		o.hitCreep(z, i, dmg, model.DamagePhysical)
	}
	return o.done(), nil
}

func battleCry(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	if err := o.pay(battleCryCost, battleCryCooldown); err != nil {
		return nil, err
	}
	for _, a := range o.alliesIn(o.me.Zone) {
		o.status(a, buff.Empower, o.tier(battleCryPower), battleCryTicks)
	}
	return o.done(), nil
}

// charge jumps onto a target one zone away.
func charge(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(adjacent)
	if err != nil {
		return nil, err
	}
	if err := o.pay(chargeCost, chargeCooldown); err != nil {
		return nil, err
	}
	o.move(o.me, t.Zone)
	o.hitHero(t, float64(o.tier(chargeDamage)), model.DamagePhysical)
	o.status(t, buff.Stun, 1, 1)
	return o.done(), nil
}

func decimate(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.afford(decimateCost); err != nil {
		return nil, err
	}
	if t.HPPercent() >= decimateThreshold {
		return o.fail(t.ID, "target above execute threshold"), nil
	}
	if err := o.pay(decimateCost, decimateCooldown); err != nil {
		return nil, err
	}
	o.hitHero(t, float64(o.tier(decimateDamage)), model.DamagePure)
	return o.done(), nil
}

func bloodlust(_ skill.Env, s *model.MatchState, id model.ActorID, ev model.Event) {
	k, ok := asKill(ev)
	if !ok || k.Killer != id {
		return
	}
	if me := self(s, id); me != nil {
		me.SetHP(me.HP + me.MaxHP*bloodlustHealPercent/100)
	}
}
