package kit

import (
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/buff"
	"github.com/udisondev/skirmish/internal/game/skill"
	"github.com/udisondev/skirmish/internal/model"
)

var (
	iceShardDamage    = []int32{70, 100, 130, 160}
	frostNovaDamage   = []int32{40, 60, 80, 100}
	glacialArmorValue = []int32{80, 120, 160, 200}
	blizzardDamage    = []int32{120, 180, 240}
)

const (
	iceShardCost         = 45
	iceShardCooldown     = 3
	iceShardSlow         = 30
	iceShardSlowTicks    = 2
	frostNovaCost        = 80
	frostNovaCooldown    = 10
	frostNovaRootTicks   = 2
	glacialArmorCost     = 60
	glacialArmorCooldown = 9
	glacialArmorTicks    = 3
	blizzardCost         = 150
	blizzardCooldown     = 35
	blizzardSlow         = 50
	blizzardSlowTicks    = 3

	frostbiteStacks     = 3
	frostbiteChillTicks = 4
)

func frostwarden() skill.Kit {
	return skill.Kit{
		ID:        data.KitFrostwarden,
		Abilities: [model.SlotCount]skill.AbilityFunc{iceShard, frostNova, glacialArmor, blizzard},
		Passive:   frostbite,
	}
}

func iceShard(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.pay(iceShardCost, iceShardCooldown); err != nil {
		return nil, err
	}
	o.hitHero(t, float64(o.tier(iceShardDamage)), model.DamageMagical)
	o.status(t, buff.Slow, iceShardSlow, iceShardSlowTicks)
	return o.done(), nil
}

func frostNova(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	if err := o.pay(frostNovaCost, frostNovaCooldown); err != nil {
		return nil, err
	}
	for _, e := range o.enemiesIn(o.me.Zone) {
		o.hitHero(e, float64(o.tier(frostNovaDamage)), model.DamageMagical)
		o.status(e, buff.Root, 1, frostNovaRootTicks)
	}
	return o.done(), nil
}

func glacialArmor(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.allyHero()
	if err != nil {
		return nil, err
	}
	if err := o.pay(glacialArmorCost, glacialArmorCooldown); err != nil {
		return nil, err
	}
	o.status(t, buff.Shield, o.tier(glacialArmorValue), glacialArmorTicks)
	return o.done(), nil
}

func blizzard(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	z, err := o.zone(nearby)
	if err != nil {
		return nil, err
	}
	if err := o.pay(blizzardCost, blizzardCooldown); err != nil {
		return nil, err
	}
	for _, e := range o.enemiesIn(z.ID) {
		o.hitHero(e, float64(o.tier(blizzardDamage)), model.DamageMagical)
		o.status(e, buff.Slow, blizzardSlow, blizzardSlowTicks)
	}
	return o.done(), nil
}

// frostbite chills enemies that were already slowed when the frostwarden's
// casts hit them; the third chill stuns and starts over.
func frostbite(_ skill.Env, s *model.MatchState, id model.ActorID, ev model.Event) {
	c, ok := asCast(ev)
	if !ok || c.Caster != id || self(s, id) == nil {
		return
	}
	for _, vid := range slowedHeroes(c) {
		v := s.Actor(vid)
		if v == nil || !v.Alive {
			continue
		}
		chill, _ := buff.FindOwned(v, buff.Chill, id)
		if chill.Stacks+1 >= frostbiteStacks {
			buff.RemoveOwned(v, buff.Chill, id)
			buff.Apply(v, model.Buff{ID: buff.Stun, Stacks: 1, TicksRemaining: 1, Owner: id})
			continue
		}
		buff.Apply(v, model.Buff{ID: buff.Chill, Stacks: chill.Stacks + 1, TicksRemaining: frostbiteChillTicks, Owner: id})
	}
}
