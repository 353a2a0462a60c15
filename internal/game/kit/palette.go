// Package kit holds the hero kits and the small set of primitives they are
// built from: aimed and area damage in three categories, timed statuses,
// damage over time, tracking counters, hp-threshold executes, forced
// movement and enemy/ally enumeration.
package kit

import (
	"log/slog"
	"slices"

	"github.com/udisondev/skirmish/internal/game/buff"
	"github.com/udisondev/skirmish/internal/game/combat"
	"github.com/udisondev/skirmish/internal/game/skill"
	"github.com/udisondev/skirmish/internal/game/target"
	"github.com/udisondev/skirmish/internal/model"
)

// maxDamageReduction caps the damage_reduction percentage.
const maxDamageReduction = 90

// reach limits where a target may stand relative to the caster.
type reach uint8

const (
	sameZone reach = iota
	// same or adjacent zone
	nearby
	// adjacent zone only
	adjacent
	// at most two steps away by shortest path
	withinTwo
	anywhere
)

// op accumulates the effects of one cast on the working copy.
type op struct {
	c     *skill.Cast
	s     *model.MatchState
	me    *model.ActorState
	cast  model.AbilityCast
	after []model.Event
}

func begin(c *skill.Cast) *op {
	return &op{
		c:  c,
		s:  c.State,
		me: c.Caster,
		cast: model.AbilityCast{
			Caster:  c.Caster.ID,
			Kit:     c.Caster.Kit,
			Slot:    c.Slot,
			Ability: c.Env.AbilityName(c.Caster.Kit, c.Slot),
			Level:   c.Level,
			Zone:    c.Caster.Zone,
			Target:  c.Target,
		},
	}
}

// tier picks the value of table for the cast's ability level.
func (o *op) tier(table []int32) int32 {
	return skill.Scale(table, o.c.Level)
}

// afford checks mana without charging it.
func (o *op) afford(mana int32) error {
	if o.me.Mana < mana {
		return skill.NotEnoughMana(mana, o.me.Mana)
	}
	return nil
}

// affordGold checks gold without spending it.
func (o *op) affordGold(gold int32) error {
	if o.me.Gold < gold {
		return skill.NotEnoughGold(gold, o.me.Gold)
	}
	return nil
}

// pay charges mana and starts the flat cooldown of the slot.
// Must be called after every target check and before any effect.
func (o *op) pay(mana, cooldown int32) error {
	if err := o.afford(mana); err != nil {
		return err
	}
	o.me.SetMana(o.me.Mana - mana)
	o.me.Cooldowns[o.c.Slot] = cooldown
	o.cast.ManaSpent = mana
	return nil
}

// done returns the cast event followed by the consequences it caused.
func (o *op) done() []model.Event {
	slog.Debug("ability resolved",
		"caster", o.me.ID,
		"ability", o.cast.Ability,
		"level", o.cast.Level,
		"hits", len(o.cast.Hits),
		"statuses", len(o.cast.Statuses))

	events := make([]model.Event, 0, 1+len(o.after))
	events = append(events, model.Event{Tick: o.s.Tick, Payload: o.cast})
	return append(events, o.after...)
}

// fail is the soft failure of execute-style abilities: no cost, no cooldown.
func (o *op) fail(victim model.ActorID, reason string) []model.Event {
	slog.Debug("ability had no effect",
		"caster", o.me.ID,
		"ability", o.cast.Ability,
		"target", victim,
		"reason", reason)

	return []model.Event{{Tick: o.s.Tick, Payload: model.AbilityFailed{
		Caster:  o.me.ID,
		Kit:     o.me.Kit,
		Slot:    o.c.Slot,
		Ability: o.cast.Ability,
		Target:  victim,
		Reason:  reason,
	}}}
}

func (o *op) topology() skill.Topology { return o.c.Env.Topology }

func (o *op) inReach(z model.ZoneID, r reach) bool {
	if z == o.me.Zone {
		return r != adjacent
	}
	topo := o.topology()
	switch r {
	case anywhere:
		return true
	case nearby, adjacent:
		return topo != nil && topo.IsAdjacent(o.me.Zone, z)
	case withinTwo:
		if topo == nil {
			return false
		}
		path := topo.ShortestPath(o.me.Zone, z)
		return len(path) > 0 && len(path)-1 <= 2
	default:
		return false
	}
}

func reachReason(r reach) string {
	switch r {
	case adjacent:
		return "target not in adjacent zone"
	default:
		return "out of range"
	}
}

func visible(t *model.ActorState) bool {
	return !buff.Has(t, buff.Stealth) || buff.Has(t, buff.Reveal)
}

// enemyHero resolves the cast target as a living, visible enemy hero within reach.
func (o *op) enemyHero(r reach) (*model.ActorState, error) {
	ref := o.c.Target
	if ref == nil || ref.Kind != model.TargetHero {
		return nil, skill.InvalidTarget(describe(ref), "enemy hero required")
	}
	t, ok := target.Actor(o.s, o.me.ID, *ref)
	if !ok {
		return nil, skill.InvalidTarget(ref.String(), "not found")
	}
	switch {
	case !t.Alive:
		return nil, skill.InvalidTarget(ref.String(), "dead")
	case t.Team == o.me.Team:
		return nil, skill.InvalidTarget(ref.String(), "not an enemy")
	case !o.inReach(t.Zone, r):
		return nil, skill.InvalidTarget(ref.String(), reachReason(r))
	case !visible(t):
		return nil, skill.InvalidTarget(ref.String(), "not visible")
	}
	return t, nil
}

// allyHero resolves the cast target as a living allied hero in the caster's zone.
// No target or a self target means the caster.
func (o *op) allyHero() (*model.ActorState, error) {
	ref := o.c.Target
	if ref == nil || ref.Kind == model.TargetSelf {
		return o.me, nil
	}
	if ref.Kind != model.TargetHero {
		return nil, skill.InvalidTarget(ref.String(), "allied hero required")
	}
	t, ok := target.Actor(o.s, o.me.ID, *ref)
	if !ok {
		return nil, skill.InvalidTarget(ref.String(), "not found")
	}
	switch {
	case !t.Alive:
		return nil, skill.InvalidTarget(ref.String(), "dead")
	case t.Team != o.me.Team:
		return nil, skill.InvalidTarget(ref.String(), "not an ally")
	case t.Zone != o.me.Zone:
		return nil, skill.InvalidTarget(ref.String(), "out of range")
	}
	return t, nil
}

// zone resolves a zone target within reach. Without a target the caster's
// zone is used when the reach allows it.
func (o *op) zone(r reach) (*model.ZoneState, error) {
	ref := o.c.Target
	if ref == nil || ref.Kind == model.TargetSelf {
		if r == adjacent {
			return nil, skill.InvalidTarget(describe(ref), "zone required")
		}
		z := o.s.Zone(o.me.Zone)
		if z == nil {
			return nil, skill.InvalidTarget(string(o.me.Zone), "unknown zone")
		}
		return z, nil
	}
	z, ok := target.Zone(o.s, *ref)
	if !ok {
		return nil, skill.InvalidTarget(ref.String(), "unknown zone")
	}
	if !o.inReach(z.ID, r) {
		if r == adjacent {
			return nil, skill.InvalidTarget(ref.String(), "zone not adjacent")
		}
		return nil, skill.InvalidTarget(ref.String(), "out of range")
	}
	return z, nil
}

// destination resolves the zone of a teleport: explicit, in reach and not the current zone.
func (o *op) destination(r reach) (*model.ZoneState, error) {
	ref := o.c.Target
	if ref == nil || ref.Kind == model.TargetSelf {
		return nil, skill.InvalidTarget(describe(ref), "zone required")
	}
	z, ok := target.Zone(o.s, *ref)
	if !ok {
		return nil, skill.InvalidTarget(ref.String(), "unknown zone")
	}
	if z.ID == o.me.Zone {
		return nil, skill.InvalidTarget(ref.String(), "already there")
	}
	if !o.inReach(z.ID, r) {
		if r == adjacent {
			return nil, skill.InvalidTarget(ref.String(), "zone not adjacent")
		}
		return nil, skill.InvalidTarget(ref.String(), "out of range")
	}
	return z, nil
}

// victim is anything an ability can damage.
type victim struct {
	hero  *model.ActorState
	creep int // index into zone.Creeps when hero and tower are nil
	tower bool
	zone  *model.ZoneState
}

// attackable resolves a hero, creep or (when towers is set) tower target in the caster's zone.
func (o *op) attackable(r reach, towers bool) (victim, error) {
	ref := o.c.Target
	if ref == nil {
		return victim{}, skill.InvalidTarget("none", "target required")
	}
	switch ref.Kind {
	case model.TargetHero:
		t, err := o.enemyHero(r)
		if err != nil {
			return victim{}, err
		}
		return victim{hero: t}, nil
	case model.TargetCreep:
		c, z, ok := target.Creep(o.s, *ref)
		switch {
		case !ok:
			return victim{}, skill.InvalidTarget(ref.String(), "not found")
		case !c.Alive():
			return victim{}, skill.InvalidTarget(ref.String(), "dead")
		case c.Team == o.me.Team:
			return victim{}, skill.InvalidTarget(ref.String(), "not an enemy")
		case !o.inReach(z.ID, r):
			return victim{}, skill.InvalidTarget(ref.String(), reachReason(r))
		}
		return victim{creep: ref.Index, zone: z}, nil
	case model.TargetTower:
		if !towers {
			return victim{}, skill.InvalidTarget(ref.String(), "cannot target towers")
		}
		tw, z, ok := target.Tower(o.s, *ref)
		switch {
		case !ok:
			return victim{}, skill.InvalidTarget(ref.String(), "not found")
		case tw.Destroyed():
			return victim{}, skill.InvalidTarget(ref.String(), "destroyed")
		case tw.Team == o.me.Team:
			return victim{}, skill.InvalidTarget(ref.String(), "not an enemy")
		case !o.inReach(z.ID, r):
			return victim{}, skill.InvalidTarget(ref.String(), reachReason(r))
		}
		return victim{tower: true, zone: z}, nil
	default:
		return victim{}, skill.InvalidTarget(ref.String(), "invalid target kind")
	}
}

// hit damages any victim.
func (o *op) hit(v victim, raw float64, cat model.DamageCategory) int32 {
	switch {
	case v.hero != nil:
		return o.hitHero(v.hero, raw, cat)
	case v.tower:
		return o.hitTower(v.zone, raw, cat)
	default:
		return o.hitCreep(v.zone, v.creep, raw, cat)
	}
}

// hitHero runs the full damage pipeline against a hero and records the hit.
func (o *op) hitHero(t *model.ActorState, raw float64, cat model.DamageCategory) int32 {
	if !t.Alive {
		return 0
	}
	slowed := buff.Has(t, buff.Slow)
	dealt, killed := strike(o.c.Env, o.me, t, raw, cat)
	o.cast.Hits = append(o.cast.Hits, model.Hit{
		Actor:    t.ID,
		Target:   model.HeroTarget(string(t.ID)),
		Amount:   dealt,
		Category: cat,
		Killed:   killed,
		Slowed:   slowed,
	})
	if killed {
		o.after = append(o.after, combat.RewardHeroKill(o.s, o.c.Env.Catalog, o.me.ID, t))
	}
	return dealt
}

// execute sets a hero's hp to zero as pure damage, ignoring shields.
func (o *op) execute(t *model.ActorState) int32 {
	dealt := t.HP
	slowed := buff.Has(t, buff.Slow)
	combat.ApplyDamage(t, dealt)
	o.cast.Hits = append(o.cast.Hits, model.Hit{
		Actor:    t.ID,
		Target:   model.HeroTarget(string(t.ID)),
		Amount:   dealt,
		Category: model.DamagePure,
		Killed:   !t.Alive,
		Slowed:   slowed,
	})
	if !t.Alive {
		o.after = append(o.after, combat.RewardHeroKill(o.s, o.c.Env.Catalog, o.me.ID, t))
	}
	return dealt
}

func (o *op) hitCreep(z *model.ZoneState, idx int, raw float64, cat model.DamageCategory) int32 {
	c := &z.Creeps[idx]
	if !c.Alive() {
		return 0
	}
	dealt := min(combat.Calc(empowered(o.me, raw, cat), cat, combat.Defenses{}), c.HP)
	c.HP -= dealt
	o.cast.Hits = append(o.cast.Hits, model.Hit{
		Target:   model.CreepTarget(z.ID, idx),
		Amount:   dealt,
		Category: cat,
		Killed:   !c.Alive(),
	})
	if !c.Alive() {
		combat.RewardCreepKill(o.c.Env.Catalog, o.me)
	}
	return dealt
}

func (o *op) hitTower(z *model.ZoneState, raw float64, cat model.DamageCategory) int32 {
	tw := z.Tower
	if tw == nil || tw.Destroyed() {
		return 0
	}
	dealt := min(combat.Calc(empowered(o.me, raw, cat), cat, combat.TowerDefenses()), tw.HP)
	tw.HP -= dealt
	o.cast.Hits = append(o.cast.Hits, model.Hit{
		Target:   model.TowerTarget(z.ID),
		Amount:   dealt,
		Category: cat,
		Killed:   tw.Destroyed(),
	})
	if tw.Destroyed() {
		o.after = append(o.after, combat.DestroyTower(o.s, o.me.ID, z))
	}
	return dealt
}

// status places a timed buff owned by the caster on a living hero.
func (o *op) status(t *model.ActorState, id model.BuffID, stacks, ticks int32) {
	o.statusAt(t, id, stacks, ticks, model.BuffContext{})
}

// statusAt is status for zone-bound buffs.
func (o *op) statusAt(t *model.ActorState, id model.BuffID, stacks, ticks int32, ctx model.BuffContext) {
	if !t.Alive {
		return
	}
	buff.Apply(t, model.Buff{ID: id, Stacks: stacks, TicksRemaining: ticks, Owner: o.me.ID, Context: ctx})
	o.cast.Statuses = append(o.cast.Statuses, model.StatusApplied{Actor: t.ID, Buff: id})
}

// heal restores hp and records the amount actually healed.
func (o *op) heal(t *model.ActorState, amount int32) int32 {
	if !t.Alive {
		return 0
	}
	before := t.HP
	combat.ApplyHeal(t, amount)
	healed := t.HP - before
	o.cast.Healed += healed
	return healed
}

// move relocates a hero and records an ActorMoved event.
func (o *op) move(t *model.ActorState, to model.ZoneID) {
	if t.Zone == to {
		return
	}
	from := t.Zone
	t.Zone = to
	o.after = append(o.after, model.Event{Tick: o.s.Tick, Payload: model.ActorMoved{
		Actor: t.ID,
		From:  from,
		To:    to,
		Cause: o.cast.Ability,
	}})
}

// enemiesIn returns living enemy heroes in zone, in id order.
func (o *op) enemiesIn(zone model.ZoneID) []*model.ActorState {
	return heroesIn(o.s, zone, o.me.Team.Opponent())
}

// alliesIn returns living allied heroes in zone (caster included), in id order.
func (o *op) alliesIn(zone model.ZoneID) []*model.ActorState {
	return heroesIn(o.s, zone, o.me.Team)
}

// allEnemies returns every living enemy hero on the map, in id order.
func (o *op) allEnemies() []*model.ActorState {
	var out []*model.ActorState
	for _, id := range o.s.ActorIDs() {
		if a := o.s.Actors[id]; a.Alive && a.Team == o.me.Team.Opponent() {
			out = append(out, a)
		}
	}
	return out
}

// requireEnemies fails when no living enemy hero stands in zone.
func (o *op) requireEnemies(zone model.ZoneID) ([]*model.ActorState, error) {
	enemies := o.enemiesIn(zone)
	if len(enemies) == 0 {
		return nil, skill.InvalidTarget("zone "+string(zone), "no enemies in zone")
	}
	return enemies, nil
}

// enemyCreepsIn returns the indices of living enemy creeps in zone.
func (o *op) enemyCreepsIn(z *model.ZoneState) []int {
	var out []int
	for i, c := range z.Creeps {
		if c.Alive() && c.Team != o.me.Team {
			out = append(out, i)
		}
	}
	return out
}

func heroesIn(s *model.MatchState, zone model.ZoneID, team model.Team) []*model.ActorState {
	var out []*model.ActorState
	for _, id := range s.ActorIDs() {
		if a := s.Actors[id]; a.Alive && a.Team == team && a.Zone == zone {
			out = append(out, a)
		}
	}
	return out
}

// strike runs raw damage from src through empower, mitigation, damage
// reduction and shields before it reaches t's hp.
// Returns hp damage dealt and whether t died from it. Pure damage skips
// empower and damage reduction but is still absorbed by shields.
func strike(env skill.Env, src, t *model.ActorState, raw float64, cat model.DamageCategory) (int32, bool) {
	dmg := combat.Calc(empowered(src, raw, cat), cat, combat.DefensesOf(env.Catalog, t))
	if cat != model.DamagePure {
		if dr := min(buff.StacksOf(t, buff.DamageReduction), maxDamageReduction); dr > 0 {
			dmg = dmg * (100 - dr) / 100
		}
	}
	dmg = absorb(t, dmg)

	dealt := min(dmg, t.HP)
	combat.ApplyDamage(t, dealt)
	return dealt, !t.Alive
}

func empowered(src *model.ActorState, raw float64, cat model.DamageCategory) float64 {
	if src == nil || cat == model.DamagePure {
		return raw
	}
	if pct := buff.StacksOf(src, buff.Empower); pct > 0 {
		return raw * float64(100+pct) / 100
	}
	return raw
}

// absorb drains shield entries in order and returns the damage left over.
func absorb(t *model.ActorState, dmg int32) int32 {
	for i := range t.Buffs {
		if dmg <= 0 {
			break
		}
		b := &t.Buffs[i]
		if b.ID != buff.Shield || b.Stacks <= 0 {
			continue
		}
		used := min(b.Stacks, dmg)
		b.Stacks -= used
		dmg -= used
	}
	t.Buffs = slices.DeleteFunc(t.Buffs, func(b model.Buff) bool {
		return b.ID == buff.Shield && b.Stacks <= 0
	})
	return dmg
}

func describe(ref *model.TargetRef) string {
	if ref == nil {
		return "none"
	}
	return ref.String()
}
