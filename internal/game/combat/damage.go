package combat

import (
	"math"

	"github.com/udisondev/skirmish/internal/model"
)

// TowerArmor is the defense and resist every tower mitigates with.
const TowerArmor = 40

// Physical returns physical damage after armor:
// round(attack × 100 / (100 + max(defense, 0))).
// Negative defense is clamped to 0, so it never amplifies damage.
func Physical(attack float64, defense int32) int32 {
	return mitigate(attack, defense)
}

// Magical returns magical damage after resist:
// round(damage × 100 / (100 + max(resist, 0))).
func Magical(damage float64, resist int32) int32 {
	return mitigate(damage, resist)
}

// Pure returns damage that ignores every defense: round(damage).
func Pure(damage float64) int32 {
	return roundDamage(damage)
}

// Defenses is the pair of mitigation stats of a damage receiver.
type Defenses struct {
	Defense int32
	Resist  int32
}

// Calc routes a raw amount to the formula of its category.
func Calc(raw float64, category model.DamageCategory, def Defenses) int32 {
	switch category {
	case model.DamagePhysical:
		return Physical(raw, def.Defense)
	case model.DamageMagical:
		return Magical(raw, def.Resist)
	default:
		return Pure(raw)
	}
}

// ApplyDamage lowers hp by amount, flooring at 0, and recomputes Alive.
// Negative amounts are ignored.
func ApplyDamage(a *model.ActorState, amount int32) {
	if amount < 0 {
		amount = 0
	}
	hp := a.HP - amount
	if hp < 0 {
		hp = 0
	}
	a.HP = hp
	a.Alive = hp > 0
}

// ApplyHeal raises hp by amount, capped at MaxHP, and recomputes Alive.
// Negative amounts are ignored.
func ApplyHeal(a *model.ActorState, amount int32) {
	if amount < 0 {
		amount = 0
	}
	hp := a.HP + amount
	if hp > a.MaxHP {
		hp = a.MaxHP
	}
	a.HP = hp
	a.Alive = hp > 0
}

// RestoreMana raises mana by amount, capped at MaxMana.
func RestoreMana(a *model.ActorState, amount int32) {
	a.SetMana(a.Mana + amount)
}

func mitigate(raw float64, armor int32) int32 {
	if armor < 0 {
		armor = 0
	}
	return roundDamage(raw * 100 / (100 + float64(armor)))
}

func roundDamage(v float64) int32 {
	if v <= 0 {
		return 0
	}
	if v >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(math.Round(v))
}
