package kit

import (
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/buff"
	"github.com/udisondev/skirmish/internal/game/skill"
	"github.com/udisondev/skirmish/internal/model"
)

var (
	piercingShotDamage = []int32{70, 100, 130, 160}
	volleyDamage       = []int32{25, 35, 45, 55}
	deadeyeDamage      = []int32{250, 375, 500}
)

const (
	piercingShotCost     = 35
	piercingShotCooldown = 2
	focusBonus           = 10
	volleyCost           = 55
	volleyCooldown       = 6
	volleyArrows         = 3
	snareTrapCost        = 50
	snareTrapCooldown    = 10
	snareTrapTicks       = 2
	deadeyeCost          = 150
	deadeyeCooldown      = 40

	steadyAimCap = 5
)

func marksman() skill.Kit {
	return skill.Kit{
		ID:        data.KitMarksman,
		Abilities: [model.SlotCount]skill.AbilityFunc{piercingShot, volley, snareTrap, deadeye},
		Passive:   steadyAim,
	}
}

// piercingShot spends all focus for bonus damage. Hits heroes, creeps and towers.
func piercingShot(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	v, err := o.attackable(sameZone, true)
	if err != nil {
		return nil, err
	}
	if err := o.pay(piercingShotCost, piercingShotCooldown); err != nil {
		return nil, err
	}

	focus := buff.Counter(o.me, buff.Focus)
	o.hit(v, float64(o.tier(piercingShotDamage)+focus*focusBonus), model.DamagePhysical)
	if focus > 0 {
		buff.SetCounter(o.me, buff.Focus, 0, steadyAimCap)
	}
	return o.done(), nil
}

func volley(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.pay(volleyCost, volleyCooldown); err != nil {
		return nil, err
	}
	for range volleyArrows {
		o.hitHero(t, float64(o.tier(volleyDamage)), model.DamagePhysical)
	}
	return o.done(), nil
}

func snareTrap(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(nearby)
	if err != nil {
		return nil, err
	}
	if err := o.pay(snareTrapCost, snareTrapCooldown); err != nil {
		return nil, err
	}
	o.status(t, buff.Root, 1, snareTrapTicks)
	return o.done(), nil
}

// deadeye reaches any visible enemy hero on the map.
func deadeye(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(anywhere)
	if err != nil {
		return nil, err
	}
	if err := o.pay(deadeyeCost, deadeyeCooldown); err != nil {
		return nil, err
	}
	o.hitHero(t, float64(o.tier(deadeyeDamage)), model.DamagePhysical)
	return o.done(), nil
}

// steadyAim gains focus for every tick spent in the same zone.
// The zone is kept in the counter's context; moving resets it.
func steadyAim(_ skill.Env, s *model.MatchState, id model.ActorID, ev model.Event) {
	me := self(s, id)
	if me == nil {
		return
	}

	focus, ok := buff.FindOwned(me, buff.Focus, id)
	if !ok || focus.Context.Zone != me.Zone {
		buff.RemoveOwned(me, buff.Focus, id)
		buff.Apply(me, model.Buff{
			ID:             buff.Focus,
			TicksRemaining: buff.Permanent,
			Owner:          id,
			Context:        model.BuffContext{Zone: me.Zone},
		})
	}
	if isTick(ev) {
		buff.AddCounter(me, buff.Focus, 1, steadyAimCap)
	}
}
