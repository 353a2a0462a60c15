package skill

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/buff"
	"github.com/udisondev/skirmish/internal/model"
)

const testKit model.KitID = "tester"

// testAbility charges 10 mana, puts the slot on a 3 tick cooldown and emits one cast.
func testAbility(c *Cast) ([]model.Event, error) {
	if c.Caster.Mana < 10 {
		return nil, NotEnoughMana(10, c.Caster.Mana)
	}
	c.Caster.Mana -= 10
	c.Caster.Cooldowns[c.Slot] = 3
	return []model.Event{{Tick: c.State.Tick, Payload: model.AbilityCast{
		Caster: c.Caster.ID, Kit: c.Caster.Kit, Slot: c.Slot, Level: c.Level, ManaSpent: 10,
	}}}, nil
}

// sloppyAbility mutates its working copy and then fails.
func sloppyAbility(c *Cast) ([]model.Event, error) {
	c.Caster.Mana = 0
	c.Caster.Cooldowns[c.Slot] = 99
	return nil, InvalidTarget("nobody", "target required")
}

// softFail reports no effect without charging anything.
func softFail(c *Cast) ([]model.Event, error) {
	return []model.Event{{Tick: c.State.Tick, Payload: model.AbilityFailed{
		Caster: c.Caster.ID, Kit: c.Caster.Kit, Slot: c.Slot, Reason: "target above threshold",
	}}}, nil
}

func newTestResolver(t *testing.T, passive PassiveFunc) *Resolver {
	t.Helper()

	if passive == nil {
		passive = func(Env, *model.MatchState, model.ActorID, model.Event) {}
	}
	reg, err := NewRegistry(Kit{
		ID:        testKit,
		Abilities: [model.SlotCount]AbilityFunc{testAbility, sloppyAbility, testAbility, softFail},
		Passive:   passive,
	})
	require.NoError(t, err)

	catalog, err := data.NewKitCatalog(&data.KitTemplate{
		ID:        testKit,
		Name:      "Tester",
		Abilities: [model.SlotCount]string{"Poke", "Oops", "Prod", "Finisher"},
	})
	require.NoError(t, err)

	return NewResolver(reg, Env{Catalog: catalog})
}

func newTestState(level int32) *model.MatchState {
	s := model.NewMatchState()
	s.Tick = 4
	s.AddActor(&model.ActorState{
		ID: "hero", Name: "Hero", Team: model.TeamBlue, Kit: testKit, Zone: "mid",
		HP: 100, MaxHP: 100, Mana: 50, MaxMana: 50, Level: level, Alive: true,
	})
	return s
}

func TestAbilityLevel(t *testing.T) {
	basic := map[int32]int32{-1: 0, 0: 0, 1: 1, 2: 1, 3: 2, 4: 2, 5: 3, 6: 3, 7: 4, 18: 4, 30: 4}
	for lvl, want := range basic {
		for _, slot := range []model.Slot{model.SlotQ, model.SlotW, model.SlotE} {
			assert.Equal(t, want, AbilityLevel(lvl, slot), "basic slot %s at level %d", slot, lvl)
		}
	}

	ultimate := map[int32]int32{0: 0, 1: 0, 5: 0, 6: 1, 11: 1, 12: 2, 17: 2, 18: 3, 25: 3}
	for lvl, want := range ultimate {
		assert.Equal(t, want, AbilityLevel(lvl, model.SlotR), "ultimate at level %d", lvl)
	}

	assert.Equal(t, int32(0), AbilityLevel(10, model.Slot(7)))
}

func TestScale(t *testing.T) {
	table := []int32{10, 20, 30}

	assert.Equal(t, int32(0), Scale(table, 0))
	assert.Equal(t, int32(0), Scale(table, -2))
	assert.Equal(t, int32(10), Scale(table, 1))
	assert.Equal(t, int32(30), Scale(table, 3))
	assert.Equal(t, int32(30), Scale(table, 4), "past the table reuses the last tier")
	assert.Equal(t, int32(0), Scale(nil, 2))
}

func TestNewRegistry_Validation(t *testing.T) {
	noop := func(Env, *model.MatchState, model.ActorID, model.Event) {}
	full := [model.SlotCount]AbilityFunc{testAbility, testAbility, testAbility, testAbility}

	_, err := NewRegistry(Kit{Abilities: full, Passive: noop})
	assert.Error(t, err)

	_, err = NewRegistry(Kit{ID: "a", Abilities: full, Passive: noop}, Kit{ID: "a", Abilities: full, Passive: noop})
	assert.ErrorContains(t, err, "duplicate")

	_, err = NewRegistry(Kit{ID: "a", Abilities: [model.SlotCount]AbilityFunc{testAbility}, Passive: noop})
	assert.ErrorContains(t, err, "slot W")

	_, err = NewRegistry(Kit{ID: "a", Abilities: full})
	assert.ErrorContains(t, err, "passive")

	reg, err := NewRegistry(Kit{ID: "b", Abilities: full, Passive: noop}, Kit{ID: "a", Abilities: full, Passive: noop})
	require.NoError(t, err)
	assert.Equal(t, []model.KitID{"a", "b"}, reg.IDs())
	assert.Equal(t, 2, reg.Len())

	_, ok := reg.Lookup("zzz")
	assert.False(t, ok)
}

func TestResolve_Success(t *testing.T) {
	r := newTestResolver(t, nil)
	s := newTestState(1)

	out, err := r.Resolve(s, "hero", model.SlotQ, nil)
	require.NoError(t, err)

	require.Len(t, out.Events, 1)
	cast, ok := out.Events[0].Payload.(model.AbilityCast)
	require.True(t, ok)
	assert.Equal(t, int32(1), cast.Level)
	assert.Equal(t, int64(4), out.Events[0].Tick)
	assert.Equal(t, out.Events, out.State.Events)

	assert.Equal(t, int32(40), out.State.Actor("hero").Mana)
	assert.Equal(t, int32(3), out.State.Actor("hero").Cooldowns[model.SlotQ])

	// input snapshot untouched
	assert.Equal(t, int32(50), s.Actor("hero").Mana)
	assert.Equal(t, int32(0), s.Actor("hero").Cooldowns[model.SlotQ])
	assert.Empty(t, s.Events)
}

func TestResolve_UltimateNotLearnedAtLevelOne(t *testing.T) {
	r := newTestResolver(t, nil)
	s := newTestState(1)

	_, err := r.Resolve(s, "hero", model.SlotQ, nil)
	require.NoError(t, err)

	_, err = r.Resolve(s, "hero", model.SlotR, nil)
	var ite *InvalidTargetError
	require.ErrorAs(t, err, &ite)
	assert.Equal(t, "not yet learned", ite.Reason)
}

func TestResolve_StunnedAlwaysFails(t *testing.T) {
	r := newTestResolver(t, nil)
	s := newTestState(18)
	buff.Apply(s.Actor("hero"), model.Buff{ID: buff.Stun, Stacks: 1, TicksRemaining: 2, Owner: "enemy"})
	buff.Apply(s.Actor("hero"), model.Buff{ID: buff.Silence, Stacks: 1, TicksRemaining: 2, Owner: "enemy"})
	s.Actor("hero").Cooldowns[model.SlotE] = 2
	before := s.Clone()

	targets := []*model.TargetRef{nil, {Kind: model.TargetSelf}, {Kind: model.TargetHero, Name: "x"}}
	for _, slot := range model.Slots {
		for _, tgt := range targets {
			_, err := r.Resolve(s, "hero", slot, tgt)
			var ite *InvalidTargetError
			require.ErrorAs(t, err, &ite)
			assert.Equal(t, "stunned", ite.Reason)
		}
	}
	assert.Equal(t, before, s)
}

func TestResolve_ValidationOrder(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(s *model.MatchState)
		actor  model.ActorID
		slot   model.Slot
		reason string
	}{
		{"unknown actor", func(*model.MatchState) {}, "ghost", model.SlotQ, "not found or dead"},
		{"no kit", func(s *model.MatchState) { s.Actor("hero").Kit = "" }, "hero", model.SlotQ, "not found or dead"},
		{"dead", func(s *model.MatchState) { s.Actor("hero").SetHP(0) }, "hero", model.SlotQ, "not found or dead"},
		{"dead and stunned", func(s *model.MatchState) {
			s.Actor("hero").SetHP(0)
			buff.Apply(s.Actor("hero"), model.Buff{ID: buff.Stun, TicksRemaining: 1})
		}, "hero", model.SlotQ, "not found or dead"},
		{"silenced", func(s *model.MatchState) {
			buff.Apply(s.Actor("hero"), model.Buff{ID: buff.Silence, TicksRemaining: 1})
		}, "hero", model.SlotQ, "silenced"},
		{"silenced beats not learned", func(s *model.MatchState) {
			buff.Apply(s.Actor("hero"), model.Buff{ID: buff.Silence, TicksRemaining: 1})
		}, "hero", model.SlotR, "silenced"},
		{"not learned beats cooldown", func(s *model.MatchState) {
			s.Actor("hero").Cooldowns[model.SlotR] = 5
		}, "hero", model.SlotR, "not yet learned"},
		{"unregistered kit", func(s *model.MatchState) { s.Actor("hero").Kit = "unknown" }, "hero", model.SlotQ, "no resolver registered"},
	}

	r := newTestResolver(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(1)
			tt.setup(s)

			_, err := r.Resolve(s, tt.actor, tt.slot, nil)
			var ite *InvalidTargetError
			require.ErrorAs(t, err, &ite)
			assert.Equal(t, tt.reason, ite.Reason)
			assert.True(t, IsAbilityError(err))
		})
	}
}

func TestResolve_Cooldown(t *testing.T) {
	r := newTestResolver(t, nil)
	s := newTestState(1)
	s.Actor("hero").Cooldowns[model.SlotQ] = 2

	_, err := r.Resolve(s, "hero", model.SlotQ, nil)
	var cde *CooldownError
	require.ErrorAs(t, err, &cde)
	assert.Equal(t, "Poke", cde.Ability)
	assert.Equal(t, int32(2), cde.Remaining)
	assert.EqualError(t, err, "Poke is on cooldown (2 ticks remaining)")
}

func TestResolve_KitErrorLeavesStateUntouched(t *testing.T) {
	r := newTestResolver(t, nil)
	s := newTestState(1)
	before := s.Clone()

	for range 2 {
		out, err := r.Resolve(s, "hero", model.SlotW, nil)
		require.Error(t, err)
		assert.Nil(t, out.State)
		assert.Equal(t, before, s)
	}
}

func TestResolve_InsufficientResource(t *testing.T) {
	r := newTestResolver(t, nil)
	s := newTestState(1)
	s.Actor("hero").Mana = 4

	_, err := r.Resolve(s, "hero", model.SlotE, nil)
	var ire *InsufficientResourceError
	require.ErrorAs(t, err, &ire)
	assert.Equal(t, int32(10), ire.Required)
	assert.Equal(t, int32(4), ire.Current)
	assert.Equal(t, int32(4), s.Actor("hero").Mana)
}

func TestResolve_SoftFailureIsSuccess(t *testing.T) {
	r := newTestResolver(t, nil)
	s := newTestState(6)

	out, err := r.Resolve(s, "hero", model.SlotR, nil)
	require.NoError(t, err)
	require.Len(t, out.Events, 1)
	assert.Equal(t, model.EventAbilityFailed, out.Events[0].Type())
	assert.Equal(t, int32(50), out.State.Actor("hero").Mana)
	assert.Equal(t, int32(0), out.State.Actor("hero").Cooldowns[model.SlotR])
}

func TestErrorMessages(t *testing.T) {
	assert.EqualError(t, NotEnoughMana(50, 20), "not enough mana: need 50, have 20")
	assert.EqualError(t, NotEnoughGold(200, 10), "not enough gold: need 200, have 10")
	assert.EqualError(t, InvalidTarget("hero bob", "not in range"), "invalid target hero bob: not in range")
	assert.EqualError(t, InvalidTarget("", "target required"), "invalid target: target required")
	assert.False(t, IsAbilityError(errors.New("plain")))
}
