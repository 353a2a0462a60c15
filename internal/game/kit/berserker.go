package kit

import (
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/buff"
	"github.com/udisondev/skirmish/internal/game/combat"
	"github.com/udisondev/skirmish/internal/game/skill"
	"github.com/udisondev/skirmish/internal/model"
)

var (
	recklessSwingDamage = []int32{80, 115, 150, 185}
	rampageDamage       = []int32{60, 85, 110}
)

const (
	recklessSwingCost     = 25
	recklessSwingCooldown = 3
	recklessSwingRecoil   = 10 // percent of damage dealt
	frenzyCost            = 30
	frenzyCooldown        = 10
	frenzyTicks           = 4
	frenzyMinPower        = 10
	leapCost              = 50
	leapCooldown          = 9
	leapDamage            = 40
	rampageCost           = 100
	rampageCooldown       = 35
	rampageHits           = 4

	bloodRagePerHit = 5
	bloodRageCap    = 50
)

func berserker() skill.Kit {
	return skill.Kit{
		ID:        data.KitBerserker,
		Abilities: [model.SlotCount]skill.AbilityFunc{recklessSwing, frenzy, leap, rampage},
		Passive:   bloodRage,
	}
}

// recklessSwing costs the berserker a tenth of the damage it deals.
// The recoil never takes the last hit point.
func recklessSwing(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.pay(recklessSwingCost, recklessSwingCooldown); err != nil {
		return nil, err
	}
	dealt := o.hitHero(t, float64(o.tier(recklessSwingDamage)), model.DamagePhysical)
	if recoil := min(dealt*recklessSwingRecoil/100, o.me.HP-1); recoil > 0 {
		combat.ApplyDamage(o.me, recoil)
	}
	return o.done(), nil
}

// frenzy converts stored rage into empower.
func frenzy(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	if err := o.pay(frenzyCost, frenzyCooldown); err != nil {
		return nil, err
	}
	power := max(buff.Counter(o.me, buff.Rage), frenzyMinPower)
	o.status(o.me, buff.Empower, power, frenzyTicks)
	buff.SetCounter(o.me, buff.Rage, 0, bloodRageCap)
	return o.done(), nil
}

func leap(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	z, err := o.destination(adjacent)
	if err != nil {
		return nil, err
	}
	if err := o.pay(leapCost, leapCooldown); err != nil {
		return nil, err
	}
	o.move(o.me, z.ID)
	for _, e := range o.enemiesIn(z.ID) {
		o.hitHero(e, leapDamage, model.DamagePhysical)
	}
	return o.done(), nil
}

func rampage(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.pay(rampageCost, rampageCooldown); err != nil {
		return nil, err
	}
	for range rampageHits {
		o.hitHero(t, float64(o.tier(rampageDamage)), model.DamagePhysical)
	}
	return o.done(), nil
}

// bloodRage stores rage for every enemy hit taken.
func bloodRage(_ skill.Env, s *model.MatchState, id model.ActorID, ev model.Event) {
	me := self(s, id)
	if me == nil {
		return
	}
	install(me, buff.Rage)

	if r, ok := asRespawn(ev); ok && r.Actor == id {
		buff.SetCounter(me, buff.Rage, 0, bloodRageCap)
		return
	}
	c, _, ok := enemyCast(s, me, ev)
	if !ok {
		return
	}
	if n := c.HitCountOn(id); n > 0 {
		buff.AddCounter(me, buff.Rage, int32(n)*bloodRagePerHit, bloodRageCap)
	}
}
