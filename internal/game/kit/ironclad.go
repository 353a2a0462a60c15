package kit

import (
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/buff"
	"github.com/udisondev/skirmish/internal/game/skill"
	"github.com/udisondev/skirmish/internal/model"
)

var (
	shieldBashDamage = []int32{60, 90, 120, 150}
	shieldBashCost   = []int32{40, 45, 50, 55}
	fortifyReduction = []int32{20, 25, 30, 35}
	tauntingRoarCost = []int32{60, 65, 70, 75}
	unbreakableArmor = []int32{250, 400, 550}
)

const (
	shieldBashCooldown   = 4
	fortifyCost          = 50
	fortifyCooldown      = 8
	fortifyTicks         = 3
	tauntingRoarCooldown = 10
	tauntingRoarTicks    = 2
	unbreakableCost      = 100
	unbreakableCooldown  = 30
	unbreakableTicks     = 4

	// Retaliation: rage gained per 10 damage taken from enemy casts.
	retaliationRageCap = 60
)

func ironclad() skill.Kit {
	return skill.Kit{
		ID:        data.KitIronclad,
		Abilities: [model.SlotCount]skill.AbilityFunc{shieldBash, fortify, tauntingRoar, unbreakable},
		Passive:   retaliation,
	}
}

// shieldBash stuns and spends all stored rage as bonus damage.
func shieldBash(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.pay(o.tier(shieldBashCost), shieldBashCooldown); err != nil {
		return nil, err
	}

	rage := buff.Counter(o.me, buff.Rage)
	o.hitHero(t, float64(o.tier(shieldBashDamage)+rage), model.DamagePhysical)
	buff.SetCounter(o.me, buff.Rage, 0, retaliationRageCap)
	o.status(t, buff.Stun, 1, 1)
	return o.done(), nil
}

func fortify(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	if err := o.pay(fortifyCost, fortifyCooldown); err != nil {
		return nil, err
	}
	o.status(o.me, buff.DamageReduction, o.tier(fortifyReduction), fortifyTicks)
	return o.done(), nil
}

func tauntingRoar(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	enemies, err := o.requireEnemies(o.me.Zone)
	if err != nil {
		return nil, err
	}
	if err := o.pay(o.tier(tauntingRoarCost), tauntingRoarCooldown); err != nil {
		return nil, err
	}
	for _, e := range enemies {
		o.status(e, buff.Taunt, 1, tauntingRoarTicks)
	}
	return o.done(), nil
}

func unbreakable(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	if err := o.pay(unbreakableCost, unbreakableCooldown); err != nil {
		return nil, err
	}
	o.status(o.me, buff.Shield, o.tier(unbreakableArmor), unbreakableTicks)
	return o.done(), nil
}

// retaliation stores a tenth of the damage enemy casts deal to the ironclad as rage.
func retaliation(_ skill.Env, s *model.MatchState, id model.ActorID, ev model.Event) {
	me := self(s, id)
	if me == nil {
		return
	}
	install(me, buff.Rage)

	if r, ok := asRespawn(ev); ok && r.Actor == id {
		buff.SetCounter(me, buff.Rage, 0, retaliationRageCap)
		return
	}
	c, _, ok := enemyCast(s, me, ev)
	if !ok {
		return
	}
	if dmg, hit := c.HitOn(id); hit && dmg >= 10 {
		buff.AddCounter(me, buff.Rage, dmg/10, retaliationRageCap)
	}
}
