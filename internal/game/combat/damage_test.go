package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/skirmish/internal/model"
)

func TestPhysical_Scenarios(t *testing.T) {
	assert.Equal(t, int32(50), Physical(100, 100))
	assert.Equal(t, int32(25), Physical(100, 300))
}

func TestPhysical_ZeroDefenseIsIdentity(t *testing.T) {
	for _, attack := range []float64{0, 1, 37, 100, 999} {
		assert.Equal(t, int32(attack), Physical(attack, 0), "attack=%v", attack)
	}
}

func TestPhysical_NonIncreasingInDefense(t *testing.T) {
	for _, attack := range []float64{1, 55, 100, 640} {
		prev := Physical(attack, 0)
		for def := int32(1); def <= 500; def += 7 {
			got := Physical(attack, def)
			assert.LessOrEqual(t, got, prev, "attack=%v defense=%d", attack, def)
			prev = got
		}
	}
}

func TestPhysical_NegativeDefenseClamped(t *testing.T) {
	assert.Equal(t, Physical(120, 0), Physical(120, -50))
	assert.Equal(t, Magical(120, 0), Magical(120, -1))
}

func TestMagicalAndPure(t *testing.T) {
	assert.Equal(t, int32(75), Magical(150, 100))
	assert.Equal(t, int32(67), Magical(100, 50)) // 66.67 rounds up
	assert.Equal(t, int32(13), Pure(12.5))
	assert.Equal(t, int32(0), Pure(-4))
}

func TestCalc_RoutesByCategory(t *testing.T) {
	def := Defenses{Defense: 100, Resist: 300}

	assert.Equal(t, int32(50), Calc(100, model.DamagePhysical, def))
	assert.Equal(t, int32(25), Calc(100, model.DamageMagical, def))
	assert.Equal(t, int32(100), Calc(100, model.DamagePure, def))
}

func TestApplyDamage(t *testing.T) {
	t.Run("scenario D: overkill floors at zero", func(t *testing.T) {
		a := &model.ActorState{HP: 50, MaxHP: 500, Alive: true}
		ApplyDamage(a, 100)
		assert.Equal(t, int32(0), a.HP)
		assert.False(t, a.Alive)

		ApplyDamage(a, 100)
		assert.Equal(t, int32(0), a.HP, "hp never goes negative")
		assert.False(t, a.Alive)
	})

	t.Run("alive until exactly zero", func(t *testing.T) {
		a := &model.ActorState{HP: 10, MaxHP: 100, Alive: true}
		ApplyDamage(a, 9)
		assert.Equal(t, int32(1), a.HP)
		assert.True(t, a.Alive)

		ApplyDamage(a, 1)
		assert.Equal(t, int32(0), a.HP)
		assert.False(t, a.Alive)
	})

	t.Run("negative amount ignored", func(t *testing.T) {
		a := &model.ActorState{HP: 10, MaxHP: 100, Alive: true}
		ApplyDamage(a, -20)
		assert.Equal(t, int32(10), a.HP)
	})
}

func TestApplyHeal_CapsAtMax(t *testing.T) {
	a := &model.ActorState{HP: 450, MaxHP: 500, Alive: true}
	ApplyHeal(a, 200)
	assert.Equal(t, int32(500), a.HP)

	ApplyHeal(a, 1)
	assert.Equal(t, int32(500), a.HP)

	b := &model.ActorState{HP: 100, MaxHP: 500, Alive: true}
	ApplyHeal(b, 150)
	assert.Equal(t, int32(250), b.HP)
	assert.True(t, b.Alive)
}

func TestRestoreMana_Clamped(t *testing.T) {
	a := &model.ActorState{Mana: 90, MaxMana: 100}
	RestoreMana(a, 50)
	assert.Equal(t, int32(100), a.Mana)

	RestoreMana(a, -300)
	assert.Equal(t, int32(0), a.Mana)
}
