package kit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/game/skill"
	"github.com/udisondev/skirmish/internal/game/zone"
	"github.com/udisondev/skirmish/internal/model"
)

// fixture is a four-zone line a-b-c-d with heroes added per test.
type fixture struct {
	t *testing.T
	r *skill.Resolver
	s *model.MatchState
}

func newFixture(t *testing.T, topo skill.Topology) *fixture {
	t.Helper()

	catalog, err := data.LoadKitCatalog()
	require.NoError(t, err)
	reg, err := NewRegistry()
	require.NoError(t, err)

	if topo == nil {
		topo = zone.NewGraph(
			zone.Edge{A: "a", B: "b"},
			zone.Edge{A: "b", B: "c"},
			zone.Edge{A: "c", B: "d"},
		)
	}

	s := model.NewMatchState()
	for _, id := range []model.ZoneID{"a", "b", "c", "d"} {
		s.AddZone(&model.ZoneState{ID: id})
	}
	return &fixture{
		t: t,
		r: skill.NewResolver(reg, skill.Env{Catalog: catalog, Topology: topo}),
		s: s,
	}
}

// hero adds a kitted hero with 1000 hp and 500 mana.
func (f *fixture) hero(id model.ActorID, kit model.KitID, team model.Team, z model.ZoneID, level int32) {
	f.s.AddActor(&model.ActorState{
		ID: id, Name: string(id), Team: team, Kit: kit, Zone: z,
		HP: 1000, MaxHP: 1000, Mana: 500, MaxMana: 500, Level: level, Alive: true,
	})
}

// dummy adds a kitless hero with no defenses.
func (f *fixture) dummy(id model.ActorID, team model.Team, z model.ZoneID) {
	f.s.AddActor(&model.ActorState{
		ID: id, Name: string(id), Team: team, Zone: z,
		HP: 1000, MaxHP: 1000, Mana: 200, MaxMana: 200, Level: 1, Alive: true,
	})
}

// actor returns the current state of a hero; pointers go stale after every cast.
func (f *fixture) actor(id model.ActorID) *model.ActorState {
	f.t.Helper()
	a := f.s.Actor(id)
	require.NotNil(f.t, a, "actor %s", id)
	return a
}

func (f *fixture) cast(id model.ActorID, slot model.Slot, tgt *model.TargetRef) ([]model.Event, error) {
	out, err := f.r.Resolve(f.s, id, slot, tgt)
	if err != nil {
		return nil, err
	}
	f.s = out.State
	return out.Events, nil
}

func (f *fixture) mustCast(id model.ActorID, slot model.Slot, tgt *model.TargetRef) []model.Event {
	f.t.Helper()
	events, err := f.cast(id, slot, tgt)
	require.NoError(f.t, err)
	require.NotEmpty(f.t, events)
	return events
}

// ready clears the cooldown of a slot.
func (f *fixture) ready(id model.ActorID, slot model.Slot) {
	f.actor(id).Cooldowns[slot] = 0
}

func (f *fixture) settle(events []model.Event) {
	f.s = f.r.FanOut(f.s, events)
}

func (f *fixture) tick() {
	f.settle([]model.Event{{Tick: f.s.Tick, Payload: model.TickElapsed{}}})
}

func ref(r model.TargetRef) *model.TargetRef { return &r }

func hero(name string) *model.TargetRef { return ref(model.HeroTarget(name)) }

func castOf(t *testing.T, events []model.Event) model.AbilityCast {
	t.Helper()
	require.NotEmpty(t, events)
	c, ok := events[0].Payload.(model.AbilityCast)
	require.True(t, ok, "first event is %s", events[0].Type())
	return c
}

func reasonOf(t *testing.T, err error) string {
	t.Helper()
	var ite *skill.InvalidTargetError
	require.ErrorAs(t, err, &ite)
	return ite.Reason
}

func resourceOf(t *testing.T, err error) string {
	t.Helper()
	var ire *skill.InsufficientResourceError
	require.ErrorAs(t, err, &ire)
	return ire.Resource
}
