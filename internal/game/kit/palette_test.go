package kit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/buff"
	"github.com/udisondev/skirmish/internal/game/combat"
	"github.com/udisondev/skirmish/internal/game/skill"
	"github.com/udisondev/skirmish/internal/game/skill/mocks"
	"github.com/udisondev/skirmish/internal/model"
)

func TestAllKitsRegistered(t *testing.T) {
	catalog, err := data.LoadKitCatalog()
	require.NoError(t, err)
	reg, err := NewRegistry()
	require.NoError(t, err)

	assert.Equal(t, 18, reg.Len())
	assert.Equal(t, catalog.IDs(), reg.IDs())
}

func TestStrike_EmpowerReductionShield(t *testing.T) {
	f := newFixture(t, nil)
	f.hero("p", data.KitPyromancer, model.TeamBlue, "a", 1)
	f.dummy("d", model.TeamRed, "a")
	buff.Apply(f.actor("p"), model.Buff{ID: buff.Empower, Stacks: 50, TicksRemaining: 3, Owner: "p"})
	buff.Apply(f.actor("d"), model.Buff{ID: buff.DamageReduction, Stacks: 50, TicksRemaining: 3, Owner: "x"})
	buff.Apply(f.actor("d"), model.Buff{ID: buff.Shield, Stacks: 40, TicksRemaining: 3, Owner: "x"})

	// 80 × 1.5 = 120, halved by reduction, 40 absorbed
	c := castOf(t, f.mustCast("p", model.SlotQ, hero("d")))

	assert.Equal(t, int32(980), f.actor("d").HP)
	assert.False(t, buff.Has(f.actor("d"), buff.Shield), "drained shield is removed")
	require.Len(t, c.Hits, 1)
	assert.Equal(t, int32(20), c.Hits[0].Amount)
	assert.Equal(t, model.DamageMagical, c.Hits[0].Category)
}

func TestStrike_ReductionIsCapped(t *testing.T) {
	f := newFixture(t, nil)
	f.hero("p", data.KitPyromancer, model.TeamBlue, "a", 1)
	f.dummy("d", model.TeamRed, "a")
	buff.Apply(f.actor("d"), model.Buff{ID: buff.DamageReduction, Stacks: 150, TicksRemaining: 3})

	f.mustCast("p", model.SlotQ, hero("d"))
	assert.Equal(t, int32(992), f.actor("d").HP)
}

func TestStrike_PureSkipsEmpowerAndReduction(t *testing.T) {
	f := newFixture(t, nil)
	f.hero("g", data.KitGravekeeper, model.TeamBlue, "a", 1)
	f.dummy("d", model.TeamRed, "a")
	buff.Apply(f.actor("g"), model.Buff{ID: buff.Empower, Stacks: 50, TicksRemaining: 3})
	buff.Apply(f.actor("d"), model.Buff{ID: buff.DamageReduction, Stacks: 50, TicksRemaining: 3})

	f.mustCast("g", model.SlotE, nil)
	assert.Equal(t, int32(970), f.actor("d").HP)
}

func TestStrike_ShieldsDrainInOrder(t *testing.T) {
	f := newFixture(t, nil)
	f.hero("p", data.KitPyromancer, model.TeamBlue, "a", 1)
	f.dummy("d", model.TeamRed, "a")
	buff.Apply(f.actor("d"), model.Buff{ID: buff.Shield, Stacks: 10, TicksRemaining: 3, Owner: "x"})
	buff.Apply(f.actor("d"), model.Buff{ID: buff.Shield, Stacks: 100, TicksRemaining: 3, Owner: "y"})

	f.mustCast("p", model.SlotQ, hero("d"))

	d := f.actor("d")
	assert.Equal(t, int32(1000), d.HP)
	assert.Equal(t, []model.Buff{{ID: buff.Shield, Stacks: 30, TicksRemaining: 3, Owner: "y"}}, d.Buffs)
}

func TestStrike_TargetDefenses(t *testing.T) {
	f := newFixture(t, nil)
	f.hero("p", data.KitPyromancer, model.TeamBlue, "a", 1)
	f.hero("i", data.KitIronclad, model.TeamRed, "a", 1)

	// ironclad resist 20: 80 × 100 / 120
	f.mustCast("p", model.SlotQ, hero("i"))
	assert.Equal(t, int32(1000-combat.Magical(80, 20)), f.actor("i").HP)
	assert.Equal(t, int32(933), f.actor("i").HP)
}

func TestKillPaysRewards(t *testing.T) {
	f := newFixture(t, nil)
	f.hero("p", data.KitPyromancer, model.TeamBlue, "a", 1)
	f.dummy("d", model.TeamRed, "a")
	f.actor("d").HP = 50

	events := f.mustCast("p", model.SlotQ, hero("d"))

	require.Len(t, events, 2)
	c := castOf(t, events)
	assert.True(t, c.Hits[0].Killed)
	assert.Equal(t, int32(50), c.Hits[0].Amount, "overkill is not counted")
	assert.Equal(t, model.ActorKilled{Killer: "p", Victim: "d", Zone: "a"}, events[1].Payload)

	p, d := f.actor("p"), f.actor("d")
	assert.Equal(t, int32(combat.HeroKillGold), p.Gold)
	assert.Equal(t, int32(1), p.Kills)
	assert.Equal(t, int32(1), f.s.Blue.Kills)
	assert.False(t, d.Alive)
	assert.Equal(t, int32(1), d.Deaths)
	assert.Equal(t, int64(6), d.RespawnTick)
}

func TestCreepTargets(t *testing.T) {
	f := newFixture(t, nil)
	f.hero("p", data.KitPyromancer, model.TeamBlue, "a", 1)
	f.s.Zone("a").Creeps = []model.Creep{
		{Team: model.TeamRed, HP: 120, MaxHP: 120},
		{Team: model.TeamBlue, HP: 120, MaxHP: 120},
		{Team: model.TeamRed, HP: 50, MaxHP: 120},
	}

	f.mustCast("p", model.SlotQ, ref(model.CreepTarget("a", 0)))
	assert.Equal(t, int32(40), f.s.Zone("a").Creeps[0].HP)
	assert.Equal(t, int32(0), f.actor("p").Gold)

	f.ready("p", model.SlotQ)
	_, err := f.cast("p", model.SlotQ, ref(model.CreepTarget("a", 1)))
	assert.Equal(t, "not an enemy", reasonOf(t, err))

	_, err = f.cast("p", model.SlotQ, ref(model.CreepTarget("a", 9)))
	assert.Equal(t, "not found", reasonOf(t, err))

	c := castOf(t, f.mustCast("p", model.SlotQ, ref(model.CreepTarget("a", 2))))
	assert.True(t, c.Hits[0].Killed)
	assert.Equal(t, int32(combat.CreepKillGold), f.actor("p").Gold)
	assert.Equal(t, int32(combat.CreepKillExp), f.actor("p").Experience)
}

func TestTowerTargets(t *testing.T) {
	f := newFixture(t, nil)
	f.hero("m", data.KitMarksman, model.TeamBlue, "a", 1)
	f.hero("p", data.KitPyromancer, model.TeamBlue, "a", 1)
	f.s.Zone("a").Tower = &model.Tower{Team: model.TeamRed, HP: 100, MaxHP: 1500, Base: true}

	_, err := f.cast("p", model.SlotQ, ref(model.TowerTarget("a")))
	assert.Equal(t, "cannot target towers", reasonOf(t, err))

	// 70 against tower armor 40
	f.mustCast("m", model.SlotQ, ref(model.TowerTarget("a")))
	assert.Equal(t, int32(50), f.s.Zone("a").Tower.HP)

	f.ready("m", model.SlotQ)
	events := f.mustCast("m", model.SlotQ, ref(model.TowerTarget("a")))
	require.Len(t, events, 2)
	assert.Equal(t, model.TowerDestroyed{Zone: "a", Team: model.TeamRed, By: "m", Base: true}, events[1].Payload)
	assert.Equal(t, int32(1), f.s.Red.TowersLost)
	assert.Equal(t, model.TeamBlue, f.s.Winner)
	assert.Equal(t, model.PhaseEnded, f.s.Phase)
	assert.Equal(t, int32(combat.TowerGold), f.actor("p").Gold)

	f.ready("m", model.SlotQ)
	_, err = f.cast("m", model.SlotQ, ref(model.TowerTarget("a")))
	assert.Equal(t, "destroyed", reasonOf(t, err))
}

func TestEnemyHeroValidation(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(f *fixture)
		target *model.TargetRef
		reason string
	}{
		{"no target", func(*fixture) {}, nil, "enemy hero required"},
		{"self", func(*fixture) {}, ref(model.SelfTarget()), "enemy hero required"},
		{"unknown", func(*fixture) {}, hero("nobody"), "not found"},
		{"ally", func(*fixture) {}, hero("ally"), "not an enemy"},
		{"dead", func(f *fixture) { f.actor("d").SetHP(0) }, hero("d"), "dead"},
		{"other zone", func(f *fixture) { f.actor("d").Zone = "b" }, hero("d"), "out of range"},
		{"stealthed", func(f *fixture) {
			buff.Apply(f.actor("d"), model.Buff{ID: buff.Stealth, TicksRemaining: 2})
		}, hero("d"), "not visible"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			f.hero("s", data.KitShadowblade, model.TeamBlue, "a", 1)
			f.dummy("ally", model.TeamBlue, "a")
			f.dummy("d", model.TeamRed, "a")
			tt.setup(f)
			before := f.s.Clone()

			_, err := f.cast("s", model.SlotQ, tt.target)
			assert.Equal(t, tt.reason, reasonOf(t, err))
			assert.Equal(t, before, f.s)
		})
	}
}

func TestRevealedStealthIsTargetable(t *testing.T) {
	f := newFixture(t, nil)
	f.hero("s", data.KitShadowblade, model.TeamBlue, "a", 1)
	f.dummy("d", model.TeamRed, "a")
	buff.Apply(f.actor("d"), model.Buff{ID: buff.Stealth, TicksRemaining: 2})
	buff.Apply(f.actor("d"), model.Buff{ID: buff.Reveal, TicksRemaining: 1})

	f.mustCast("s", model.SlotQ, hero("d"))
	assert.Equal(t, int32(930), f.actor("d").HP)
}

func TestNotEnoughManaLeavesStateUntouched(t *testing.T) {
	f := newFixture(t, nil)
	f.hero("s", data.KitShadowblade, model.TeamBlue, "a", 1)
	f.dummy("d", model.TeamRed, "a")
	f.actor("s").Mana = 10
	before := f.s.Clone()

	for range 2 {
		_, err := f.cast("s", model.SlotQ, hero("d"))
		var ire *skill.InsufficientResourceError
		require.ErrorAs(t, err, &ire)
		assert.Equal(t, int32(40), ire.Required)
		assert.Equal(t, int32(10), ire.Current)
		assert.Equal(t, before, f.s)
	}
}

func TestShadowStep_Topology(t *testing.T) {
	ctrl := gomock.NewController(t)
	topo := mocks.NewMockTopology(ctrl)

	f := newFixture(t, topo)
	f.hero("s", data.KitShadowblade, model.TeamBlue, "a", 1)

	topo.EXPECT().IsAdjacent(model.ZoneID("a"), model.ZoneID("c")).Return(false)
	_, err := f.cast("s", model.SlotE, ref(model.ZoneTarget("c")))
	assert.Equal(t, "zone not adjacent", reasonOf(t, err))

	_, err = f.cast("s", model.SlotE, ref(model.ZoneTarget("a")))
	assert.Equal(t, "already there", reasonOf(t, err))

	_, err = f.cast("s", model.SlotE, ref(model.ZoneTarget("nowhere")))
	assert.Equal(t, "unknown zone", reasonOf(t, err))

	_, err = f.cast("s", model.SlotE, nil)
	assert.Equal(t, "zone required", reasonOf(t, err))

	topo.EXPECT().IsAdjacent(model.ZoneID("a"), model.ZoneID("b")).Return(true)
	events := f.mustCast("s", model.SlotE, ref(model.ZoneTarget("b")))

	require.Len(t, events, 2)
	assert.Equal(t, model.ActorMoved{Actor: "s", From: "a", To: "b", Cause: "Shadow Step"}, events[1].Payload)
	assert.Equal(t, model.ZoneID("b"), f.actor("s").Zone)
	assert.Equal(t, int32(450), f.actor("s").Mana)
	assert.Equal(t, int32(shadowStepCooldown), f.actor("s").Cooldowns[model.SlotE])
}

func TestShadowStep_HeroNameAsZone(t *testing.T) {
	ctrl := gomock.NewController(t)
	topo := mocks.NewMockTopology(ctrl)
	topo.EXPECT().IsAdjacent(model.ZoneID("a"), model.ZoneID("b")).Return(true)

	f := newFixture(t, topo)
	f.hero("s", data.KitShadowblade, model.TeamBlue, "a", 1)

	f.mustCast("s", model.SlotE, hero("b"))
	assert.Equal(t, model.ZoneID("b"), f.actor("s").Zone)
}

func TestUndertow_Topology(t *testing.T) {
	ctrl := gomock.NewController(t)
	topo := mocks.NewMockTopology(ctrl)

	f := newFixture(t, topo)
	f.hero("t", data.KitTidecaller, model.TeamBlue, "a", 1)
	f.dummy("near", model.TeamRed, "b")
	f.dummy("here", model.TeamRed, "a")

	_, err := f.cast("t", model.SlotW, hero("here"))
	assert.Equal(t, "target not in adjacent zone", reasonOf(t, err))

	topo.EXPECT().IsAdjacent(model.ZoneID("a"), model.ZoneID("b")).Return(true)
	events := f.mustCast("t", model.SlotW, hero("near"))

	assert.Equal(t, model.ActorMoved{Actor: "near", From: "b", To: "a", Cause: "Undertow"}, events[1].Payload)
	assert.Equal(t, model.ZoneID("a"), f.actor("near").Zone)
	assert.True(t, buff.Has(f.actor("near"), buff.Root))
}

func TestBlink_ShortestPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	topo := mocks.NewMockTopology(ctrl)

	f := newFixture(t, topo)
	f.hero("x", data.KitSpellthief, model.TeamBlue, "a", 1)

	topo.EXPECT().ShortestPath(model.ZoneID("a"), model.ZoneID("d")).Return([]model.ZoneID{"a", "b", "c", "d"})
	_, err := f.cast("x", model.SlotE, ref(model.ZoneTarget("d")))
	assert.Equal(t, "out of range", reasonOf(t, err))

	topo.EXPECT().ShortestPath(model.ZoneID("a"), model.ZoneID("c")).Return([]model.ZoneID{"a", "b", "c"})
	f.mustCast("x", model.SlotE, ref(model.ZoneTarget("c")))
	assert.Equal(t, model.ZoneID("c"), f.actor("x").Zone)
}

func TestPounce_WithinTwoZones(t *testing.T) {
	f := newFixture(t, nil)
	f.hero("b", data.KitBeastmaster, model.TeamBlue, "a", 1)
	f.dummy("far", model.TeamRed, "d")
	f.dummy("mid", model.TeamRed, "c")

	_, err := f.cast("b", model.SlotE, hero("far"))
	assert.Equal(t, "out of range", reasonOf(t, err))

	f.mustCast("b", model.SlotE, hero("mid"))
	assert.Equal(t, model.ZoneID("c"), f.actor("b").Zone)
	assert.Equal(t, int32(950), f.actor("mid").HP)
	assert.True(t, buff.Has(f.actor("mid"), buff.Root))
}
