package kit

import (
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/buff"
	"github.com/udisondev/skirmish/internal/game/skill"
	"github.com/udisondev/skirmish/internal/model"
)

var (
	coinTossDamage = []int32{50, 70, 90, 110}
	investGold     = []int32{100, 150, 200, 250}
	jackpotCap     = []int32{300, 450, 600}
)

const (
	coinTossCost     = 30
	coinTossCooldown = 3
	coinTossGoldStep = 50
	coinTossBonusCap = 100
	bribeGold        = 100
	bribeCost        = 40
	bribeCooldown    = 12
	bribeTicks       = 2
	investCooldown   = 15
	investTicks      = 4
	jackpotMinGold   = 200
	jackpotCost      = 100
	jackpotCooldown  = 40

	interestPeriod  = 10
	interestPercent = 2
	interestMin     = 5
)

func goldhand() skill.Kit {
	return skill.Kit{
		ID:        data.KitGoldhand,
		Abilities: [model.SlotCount]skill.AbilityFunc{coinToss, bribe, invest, jackpot},
		Passive:   compoundInterest,
	}
}

// coinToss adds one damage per 50 gold held, up to 100.
func coinToss(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	v, err := o.attackable(sameZone, false)
	if err != nil {
		return nil, err
	}
	if err := o.pay(coinTossCost, coinTossCooldown); err != nil {
		return nil, err
	}
	bonus := min(o.me.Gold/coinTossGoldStep, coinTossBonusCap)
	o.hit(v, float64(o.tier(coinTossDamage)+bonus), model.DamagePhysical)
	return o.done(), nil
}

func bribe(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.affordGold(bribeGold); err != nil {
		return nil, err
	}
	if err := o.pay(bribeCost, bribeCooldown); err != nil {
		return nil, err
	}
	o.me.Gold -= bribeGold
	o.status(t, buff.Fear, 1, bribeTicks)
	return o.done(), nil
}

// invest turns gold into a shield worth twice the amount spent.
func invest(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	spend := o.tier(investGold)
	if err := o.affordGold(spend); err != nil {
		return nil, err
	}
	if err := o.pay(0, investCooldown); err != nil {
		return nil, err
	}
	o.me.Gold -= spend
	o.status(o.me, buff.Shield, 2*spend, investTicks)
	return o.done(), nil
}

// jackpot deals a quarter of held gold as pure damage and spends half of it.
func jackpot(c *skill.Cast) ([]model.Event, error) {
	o := begin(c)
	t, err := o.enemyHero(sameZone)
	if err != nil {
		return nil, err
	}
	if err := o.affordGold(jackpotMinGold); err != nil {
		return nil, err
	}
	if err := o.pay(jackpotCost, jackpotCooldown); err != nil {
		return nil, err
	}
	dmg := min(o.me.Gold/4, o.tier(jackpotCap))
	o.me.Gold -= o.me.Gold / 2
	o.hitHero(t, float64(dmg), model.DamagePure)
	return o.done(), nil
}

// compoundInterest pays 2% of held gold (at least 5) every tenth tick.
func compoundInterest(_ skill.Env, s *model.MatchState, id model.ActorID, ev model.Event) {
	me := self(s, id)
	if me == nil {
		return
	}
	install(me, buff.Interest)
	if !isTick(ev) {
		return
	}
	if buff.AddCounter(me, buff.Interest, 1, interestPeriod) >= interestPeriod {
		me.Gold += max(me.Gold*interestPercent/100, interestMin)
		buff.SetCounter(me, buff.Interest, 0, interestPeriod)
	}
}
