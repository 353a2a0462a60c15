// Package buff implements the stacking and duration rules shared by every
// status effect. All functions operate on a hero that belongs to a snapshot
// the caller owns.
package buff

import (
	"slices"

	"github.com/udisondev/skirmish/internal/model"
)

// Permanent is the duration given to tracking buffs that live until removed.
// Decay still decrements it once per tick; it outlasts any match.
const Permanent int32 = 1 << 30

// Crowd control.
const (
	Stun    model.BuffID = "stun"
	Root    model.BuffID = "root"
	Silence model.BuffID = "silence"
	Slow    model.BuffID = "slow"
	Taunt   model.BuffID = "taunt"
	Fear    model.BuffID = "fear"
)

// Damage over time. Stacks is damage per tick.
const (
	Burn   model.BuffID = "burn"
	Poison model.BuffID = "poison"
	Bleed  model.BuffID = "bleed"
)

// Modifiers and visibility.
const (
	Reveal          model.BuffID = "reveal"
	Stealth         model.BuffID = "stealth"
	Shield          model.BuffID = "shield"           // stacks: absorb pool
	DamageReduction model.BuffID = "damage_reduction" // stacks: percent
	Empower         model.BuffID = "empower"          // stacks: percent
)

// Tracking counters installed by passives.
const (
	Rage     model.BuffID = "rage"
	Chill    model.BuffID = "chill"
	Focus    model.BuffID = "focus"
	Serenity model.BuffID = "serenity"
	Interest model.BuffID = "interest"
	Static   model.BuffID = "static"
	Tide     model.BuffID = "tide"
	Pack     model.BuffID = "pack"
	Souls    model.BuffID = "souls"
)

var damageOverTime = []model.BuffID{Burn, Poison, Bleed}

// crowdControl lists every buff a cleanse removes.
var crowdControl = []model.BuffID{Stun, Root, Silence, Slow, Taunt, Fear}

// IsDamageOverTime reports whether id is ticked by the damage-over-time pass.
func IsDamageOverTime(id model.BuffID) bool {
	return slices.Contains(damageOverTime, id)
}

// CrowdControl returns the identifiers removed by a cleanse.
func CrowdControl() []model.BuffID {
	return slices.Clone(crowdControl)
}

// DamageOverTimeIDs returns the identifiers ticked by the damage-over-time pass.
func DamageOverTimeIDs() []model.BuffID {
	return slices.Clone(damageOverTime)
}

// Apply adds b to the hero or refreshes the entry with the same
// (ID, Owner, Context) key. A refresh replaces Stacks with b.Stacks and keeps
// the longer remaining duration; it never adds durations together.
// Buffs with the same ID and a different key coexist.
func Apply(a *model.ActorState, b model.Buff) {
	for i := range a.Buffs {
		existing := &a.Buffs[i]
		if existing.SameKey(b) {
			existing.Stacks = b.Stacks
			existing.TicksRemaining = max(existing.TicksRemaining, b.TicksRemaining)
			return
		}
	}
	a.Buffs = append(a.Buffs, b)
}

// Tick decrements every buff by one tick and drops those at or below zero.
// Returns how many buffs expired.
func Tick(a *model.ActorState) int {
	n := 0
	expired := 0
	for _, b := range a.Buffs {
		b.TicksRemaining--
		if b.TicksRemaining <= 0 {
			expired++
			continue
		}
		a.Buffs[n] = b
		n++
	}
	clear(a.Buffs[n:])
	a.Buffs = a.Buffs[:n]
	return expired
}

// Remove drops every buff with the identifier, whatever its owner or context.
func Remove(a *model.ActorState, id model.BuffID) {
	a.Buffs = slices.DeleteFunc(a.Buffs, func(b model.Buff) bool { return b.ID == id })
}

// RemoveOwned drops the buffs with the identifier placed by owner.
func RemoveOwned(a *model.ActorState, id model.BuffID, owner model.ActorID) {
	a.Buffs = slices.DeleteFunc(a.Buffs, func(b model.Buff) bool { return b.ID == id && b.Owner == owner })
}

// Has reports whether any buff with the identifier is active.
func Has(a *model.ActorState, id model.BuffID) bool {
	_, ok := Find(a, id)
	return ok
}

// StacksOf returns Stacks of the first buff with the identifier, or 0.
//
// Only the first match is visible: when two owners hold a same-named buff
// the later entry is ignored here even though it persists and expires on
// its own.
func StacksOf(a *model.ActorState, id model.BuffID) int32 {
	b, ok := Find(a, id)
	if !ok {
		return 0
	}
	return b.Stacks
}

// Find returns the first buff with the identifier.
func Find(a *model.ActorState, id model.BuffID) (model.Buff, bool) {
	for _, b := range a.Buffs {
		if b.ID == id {
			return b, true
		}
	}
	return model.Buff{}, false
}

// FindOwned returns the buff with the identifier placed by owner.
func FindOwned(a *model.ActorState, id model.BuffID, owner model.ActorID) (model.Buff, bool) {
	for _, b := range a.Buffs {
		if b.ID == id && b.Owner == owner {
			return b, true
		}
	}
	return model.Buff{}, false
}

// Counter returns the value of a self-owned tracking counter.
func Counter(a *model.ActorState, id model.BuffID) int32 {
	b, ok := FindOwned(a, id, a.ID)
	if !ok {
		return 0
	}
	return b.Stacks
}

// SetCounter stores a self-owned permanent tracking counter, clamped to [0, limit].
func SetCounter(a *model.ActorState, id model.BuffID, value, limit int32) {
	value = min(max(value, 0), limit)
	for i := range a.Buffs {
		if a.Buffs[i].ID == id && a.Buffs[i].Owner == a.ID {
			a.Buffs[i].Stacks = value
			a.Buffs[i].TicksRemaining = Permanent
			return
		}
	}
	a.Buffs = append(a.Buffs, model.Buff{ID: id, Stacks: value, TicksRemaining: Permanent, Owner: a.ID})
}

// AddCounter adds delta to a tracking counter and returns the new value.
func AddCounter(a *model.ActorState, id model.BuffID, delta, limit int32) int32 {
	v := min(max(Counter(a, id)+delta, 0), limit)
	SetCounter(a, id, v, limit)
	return v
}

// Installed reports whether a self-owned tracking counter exists (even at 0).
func Installed(a *model.ActorState, id model.BuffID) bool {
	_, ok := FindOwned(a, id, a.ID)
	return ok
}

// Cleanse removes every crowd-control and damage-over-time buff.
// Returns the identifiers that were present.
func Cleanse(a *model.ActorState) []model.BuffID {
	var removed []model.BuffID
	for _, id := range slices.Concat(crowdControl, damageOverTime) {
		if Has(a, id) {
			removed = append(removed, id)
			Remove(a, id)
		}
	}
	return removed
}
