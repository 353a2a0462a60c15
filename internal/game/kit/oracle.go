package kit

import (
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/buff"
	"github.com/udisondev/skirmish/internal/game/combat"
	"github.com/udisondev/skirmish/internal/game/skill"
	"github.com/udisondev/skirmish/internal/model"
)

var (
	smiteDamage   = []int32{60, 90, 120, 150}
	mendHeal      = []int32{100, 150, 200, 250}
	mendCost      = []int32{60, 70, 80, 90}
	sanctuaryHeal = []int32{150, 250, 350}
)

const (
	smiteCost          = 40
	smiteCooldown      = 3
	mendCooldown       = 6
	purifyCost         = 70
	purifyCooldown     = 12
	sanctuaryCost      = 200
	sanctuaryCooldown  = 50
	sanctuaryReduction = 25
	sanctuaryTicks     = 3

	serenityPeriod = 5
	serenityMana   = 30
)

func oracle() skill.Kit {
	return skill.Kit{
		ID:        data.KitOracle,
		Abilities: [model.SlotCount]skill.AbilityFunc{smite, mend, purify, sanctuary},
		Passive:   serenity,
	}
}

func smite(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.pay(smiteCost, smiteCooldown); err != nil {
		return nil, err
	}
	o.hitHero(t, float64(o.tier(smiteDamage)), model.DamageMagical)
	return o.done(), nil
}

func mend(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.allyHero()
	if err != nil {
		return nil, err
	}
	if err := o.pay(o.tier(mendCost), mendCooldown); err != nil {
		return nil, err
	}
	o.heal(t, o.tier(mendHeal))
	return o.done(), nil
}

// purify strips crowd control and damage over time from an ally.
func purify(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.allyHero()
	if err != nil {
		return nil, err
	}
	if err := o.pay(purifyCost, purifyCooldown); err != nil {
		return nil, err
	}
	buff.Cleanse(t)
	return o.done(), nil
}

func sanctuary(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	if err := o.pay(sanctuaryCost, sanctuaryCooldown); err != nil {
		return nil, err
	}
	for _, a := range o.alliesIn(o.me.Zone) {
		o.heal(a, o.tier(sanctuaryHeal))
		o.status(a, buff.DamageReduction, sanctuaryReduction, sanctuaryTicks)
	}
	return o.done(), nil
}

// serenity restores mana every fifth tick.
func serenity(_ skill.Env, s *model.MatchState, id model.ActorID, ev model.Event) {
	me := self(s, id)
	if me == nil {
		return
	}
	install(me, buff.Serenity)
	if !isTick(ev) {
		return
	}
	if buff.AddCounter(me, buff.Serenity, 1, serenityPeriod) >= serenityPeriod {
		combat.RestoreMana(me, serenityMana)
		buff.SetCounter(me, buff.Serenity, 0, serenityPeriod)
	}
}
