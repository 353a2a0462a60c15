package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleState() *MatchState {
	s := NewMatchState()
	s.AddActor(&ActorState{
		ID: "a1", Name: "Alice", Team: TeamBlue, Kit: "pyromancer", Zone: "mid",
		HP: 500, MaxHP: 500, Mana: 300, MaxMana: 300, Level: 3, Alive: true,
		Buffs: []Buff{{ID: "burn", Stacks: 20, TicksRemaining: 3, Owner: "b1"}},
	})
	s.AddActor(&ActorState{ID: "b1", Name: "Bob", Team: TeamRed, Zone: "mid", HP: 400, MaxHP: 400, Alive: true})
	s.AddZone(&ZoneState{
		ID:     "mid",
		Creeps: []Creep{{Team: TeamRed, HP: 120, MaxHP: 120}},
		Tower:  &Tower{Team: TeamRed, HP: 1500, MaxHP: 1500},
	})
	return s
}

func TestMatchStateCloneIsDeep(t *testing.T) {
	s := sampleState()
	s.Emit(Event{Tick: 1, Payload: TickElapsed{}})

	c := s.Clone()
	require.Equal(t, s, c)

	c.Actors["a1"].HP = 1
	c.Actors["a1"].Buffs[0].Stacks = 99
	c.Actors["a1"].Cooldowns[SlotQ] = 3
	c.Zones["mid"].Creeps[0].HP = 0
	c.Zones["mid"].Tower.HP = 0
	c.Events[0].Tick = 42
	c.Blue.Kills = 7
	delete(c.Actors, "b1")

	assert.Equal(t, int32(500), s.Actors["a1"].HP)
	assert.Equal(t, int32(20), s.Actors["a1"].Buffs[0].Stacks)
	assert.Equal(t, int32(0), s.Actors["a1"].Cooldowns[SlotQ])
	assert.Equal(t, int32(120), s.Zones["mid"].Creeps[0].HP)
	assert.Equal(t, int32(1500), s.Zones["mid"].Tower.HP)
	assert.Equal(t, int64(1), s.Events[0].Tick)
	assert.Equal(t, int32(0), s.Blue.Kills)
	assert.Contains(t, s.Actors, ActorID("b1"))
}

func TestMatchStateSortedIDs(t *testing.T) {
	s := sampleState()
	s.AddActor(&ActorState{ID: "a0"})
	s.AddZone(&ZoneState{ID: "base"})

	assert.Equal(t, []ActorID{"a0", "a1", "b1"}, s.ActorIDs())
	assert.Equal(t, []ZoneID{"base", "mid"}, s.ZoneIDs())
}

func TestTeamState(t *testing.T) {
	s := NewMatchState()
	s.TeamState(TeamRed).Kills++

	assert.Equal(t, int32(1), s.Red.Kills)
	assert.Nil(t, s.TeamState(TeamNone))
}

func TestActorSetHP(t *testing.T) {
	a := &ActorState{MaxHP: 100, HP: 50, Alive: true}

	a.SetHP(150)
	assert.Equal(t, int32(100), a.HP)
	assert.True(t, a.Alive)

	a.SetHP(-5)
	assert.Equal(t, int32(0), a.HP)
	assert.False(t, a.Alive)

	a.SetHP(1)
	assert.True(t, a.Alive)
	assert.Equal(t, int32(1), a.HPPercent())
}

func TestActorSetMana(t *testing.T) {
	a := &ActorState{MaxMana: 200}

	a.SetMana(250)
	assert.Equal(t, int32(200), a.Mana)
	a.SetMana(-1)
	assert.Equal(t, int32(0), a.Mana)
}

func TestActorHasItem(t *testing.T) {
	a := &ActorState{}
	a.Items[2] = "boots"

	assert.True(t, a.HasItem("boots"))
	assert.False(t, a.HasItem("sword"))
	assert.False(t, a.HasItem(""), "empty slot is not an item")
}

func TestEventJSONEnvelope(t *testing.T) {
	ev := Event{Tick: 7, Payload: AbilityCast{
		Caster: "a1", Kit: "pyromancer", Slot: SlotR, Ability: "Inferno", Level: 1, Zone: "mid",
		ManaSpent: 120,
		Hits:      []Hit{{Actor: "b1", Target: HeroTarget("b1"), Amount: 150, Category: DamageMagical}},
	}}

	data, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"ability_cast"`)
	assert.Contains(t, string(data), `"slot":"R"`)
	assert.Contains(t, string(data), `"category":"magical"`)

	var got Event
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, ev, got)
}

func TestEventJSONErrors(t *testing.T) {
	_, err := json.Marshal(Event{Tick: 1})
	assert.Error(t, err)

	var e Event
	assert.Error(t, json.Unmarshal([]byte(`{"tick":1,"type":"bogus","payload":{}}`), &e))

	require.NoError(t, json.Unmarshal([]byte(`{"tick":3,"type":"tick_elapsed","payload":{}}`), &e))
	assert.Equal(t, EventTickElapsed, e.Type())
}

func TestAbilityCastHits(t *testing.T) {
	c := AbilityCast{Hits: []Hit{
		{Actor: "b1", Amount: 30},
		{Actor: "b2", Amount: 10},
		{Actor: "b1", Amount: 20},
	}}

	total, ok := c.HitOn("b1")
	assert.True(t, ok)
	assert.Equal(t, int32(50), total)
	assert.Equal(t, 2, c.HitCountOn("b1"))

	_, ok = c.HitOn("zz")
	assert.False(t, ok)
}

func TestSlotText(t *testing.T) {
	for _, s := range Slots {
		text, err := s.MarshalText()
		require.NoError(t, err)

		var got Slot
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, s, got)
	}

	_, err := ParseSlot("q")
	assert.Error(t, err)
	assert.True(t, SlotR.IsUltimate())
	assert.False(t, Slot(9).Valid())
}
