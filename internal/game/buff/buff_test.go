package buff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/skirmish/internal/model"
)

func newActor() *model.ActorState {
	return &model.ActorState{ID: "a", HP: 100, MaxHP: 100, Alive: true}
}

func TestApply_ReapplicationLaw(t *testing.T) {
	tests := []struct {
		name       string
		t1, t2     int32
		wantTicks  int32
		s1, s2     int32
		wantStacks int32
	}{
		{name: "longer second", t1: 2, t2: 5, wantTicks: 5, s1: 10, s2: 3, wantStacks: 3},
		{name: "shorter second", t1: 6, t2: 1, wantTicks: 6, s1: 10, s2: 30, wantStacks: 30},
		{name: "equal", t1: 4, t2: 4, wantTicks: 4, s1: 1, s2: 1, wantStacks: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newActor()
			Apply(a, model.Buff{ID: Slow, Owner: "x", Stacks: tt.s1, TicksRemaining: tt.t1})
			Apply(a, model.Buff{ID: Slow, Owner: "x", Stacks: tt.s2, TicksRemaining: tt.t2})

			require.Len(t, a.Buffs, 1)
			assert.Equal(t, tt.wantStacks, a.Buffs[0].Stacks)
			assert.Equal(t, tt.wantTicks, a.Buffs[0].TicksRemaining)
		})
	}
}

func TestApply_DifferentSourcesCoexist(t *testing.T) {
	a := newActor()
	Apply(a, model.Buff{ID: Silence, Owner: "x", Stacks: 1, TicksRemaining: 2})
	Apply(a, model.Buff{ID: Silence, Owner: "y", Stacks: 1, TicksRemaining: 5})
	Apply(a, model.Buff{ID: Reveal, Owner: "x", Context: model.BuffContext{Zone: "top"}, TicksRemaining: 3})
	Apply(a, model.Buff{ID: Reveal, Owner: "x", Context: model.BuffContext{Zone: "mid"}, TicksRemaining: 3})

	assert.Len(t, a.Buffs, 4)
}

func TestHasAndStacksOf_FirstMatchOnly(t *testing.T) {
	a := newActor()
	assert.False(t, Has(a, Slow))
	assert.Zero(t, StacksOf(a, Slow))

	Apply(a, model.Buff{ID: Slow, Owner: "x", Stacks: 20, TicksRemaining: 1})
	Apply(a, model.Buff{ID: Slow, Owner: "y", Stacks: 50, TicksRemaining: 4})

	assert.True(t, Has(a, Slow))
	assert.Equal(t, int32(20), StacksOf(a, Slow), "only the first entry is visible")

	Tick(a)
	assert.Equal(t, int32(50), StacksOf(a, Slow), "second entry surfaces after the first expires")
}

func TestTick_DecrementsAndDrops(t *testing.T) {
	a := newActor()
	Apply(a, model.Buff{ID: Stun, Owner: "x", TicksRemaining: 1})
	Apply(a, model.Buff{ID: Root, Owner: "x", TicksRemaining: 3})
	Apply(a, model.Buff{ID: Fear, Owner: "x", TicksRemaining: 0})

	expired := Tick(a)

	assert.Equal(t, 2, expired)
	require.Len(t, a.Buffs, 1)
	assert.Equal(t, Root, a.Buffs[0].ID)
	assert.Equal(t, int32(2), a.Buffs[0].TicksRemaining)
}

func TestRemove_IgnoresSource(t *testing.T) {
	a := newActor()
	Apply(a, model.Buff{ID: Poison, Owner: "x", Stacks: 5, TicksRemaining: 3})
	Apply(a, model.Buff{ID: Poison, Owner: "y", Stacks: 9, TicksRemaining: 3})
	Apply(a, model.Buff{ID: Burn, Owner: "x", Stacks: 4, TicksRemaining: 3})

	Remove(a, Poison)

	require.Len(t, a.Buffs, 1)
	assert.Equal(t, Burn, a.Buffs[0].ID)
}

func TestRemoveOwned(t *testing.T) {
	a := newActor()
	Apply(a, model.Buff{ID: Poison, Owner: "x", TicksRemaining: 3})
	Apply(a, model.Buff{ID: Poison, Owner: "y", TicksRemaining: 3})

	RemoveOwned(a, Poison, "x")

	require.Len(t, a.Buffs, 1)
	assert.Equal(t, model.ActorID("y"), a.Buffs[0].Owner)
}

func TestCounters(t *testing.T) {
	a := newActor()
	assert.False(t, Installed(a, Rage))

	SetCounter(a, Rage, 0, 60)
	assert.True(t, Installed(a, Rage))
	assert.Zero(t, Counter(a, Rage))

	assert.Equal(t, int32(45), AddCounter(a, Rage, 45, 60))
	assert.Equal(t, int32(60), AddCounter(a, Rage, 45, 60), "capped")
	assert.Equal(t, int32(0), AddCounter(a, Rage, -100, 60), "floored")

	// A same-named buff from another owner is not the counter.
	Apply(a, model.Buff{ID: Rage, Owner: "enemy", Stacks: 99, TicksRemaining: 2})
	assert.Zero(t, Counter(a, Rage))

	b, ok := FindOwned(a, Rage, "a")
	require.True(t, ok)
	assert.Equal(t, Permanent, b.TicksRemaining)
}

func TestCleanse(t *testing.T) {
	a := newActor()
	Apply(a, model.Buff{ID: Stun, Owner: "x", TicksRemaining: 2})
	Apply(a, model.Buff{ID: Bleed, Owner: "x", Stacks: 5, TicksRemaining: 2})
	Apply(a, model.Buff{ID: Shield, Owner: "a", Stacks: 100, TicksRemaining: 2})

	removed := Cleanse(a)

	assert.ElementsMatch(t, []model.BuffID{Stun, Bleed}, removed)
	require.Len(t, a.Buffs, 1)
	assert.Equal(t, Shield, a.Buffs[0].ID)
}

func TestIsDamageOverTime(t *testing.T) {
	assert.True(t, IsDamageOverTime(Burn))
	assert.True(t, IsDamageOverTime(Poison))
	assert.True(t, IsDamageOverTime(Bleed))
	assert.False(t, IsDamageOverTime(Shield))
}
