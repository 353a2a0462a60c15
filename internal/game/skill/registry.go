package skill

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/model"
)

// Topology answers map questions for positional effects.
// *zone.Graph implements it.
//
//go:generate go tool mockgen -destination=./mocks/topology_mock.go -package=mocks . Topology
type Topology interface {
	Adjacent(id model.ZoneID) []model.ZoneID
	IsAdjacent(a, b model.ZoneID) bool
	ShortestPath(a, b model.ZoneID) []model.ZoneID
}

// Catalog is the static kit data consulted during resolution.
// *data.KitCatalog implements it.
type Catalog interface {
	Template(id model.KitID) *data.KitTemplate
	AbilityName(id model.KitID, slot model.Slot) string
}

// Env carries the read-only collaborators of a resolution.
type Env struct {
	Catalog  Catalog
	Topology Topology
}

// AbilityName returns the display name of a kit slot, falling back to the slot letter.
func (e Env) AbilityName(kit model.KitID, slot model.Slot) string {
	if e.Catalog != nil {
		if name := e.Catalog.AbilityName(kit, slot); name != "" {
			return name
		}
	}
	return slot.String()
}

// Cast is the input of a kit ability function.
//
// State is a private working copy: the function may mutate it freely, and
// it is thrown away if the function returns an error.
type Cast struct {
	State  *model.MatchState
	Caster *model.ActorState
	Slot   model.Slot
	Level  int32
	Target *model.TargetRef
	Env    Env
}

// AbilityFunc resolves one slot of a kit. It returns the events the cast
// produced in order, or an AbilityError.
type AbilityFunc func(c *Cast) ([]model.Event, error)

// PassiveFunc reacts to one event on behalf of the hero self.
// It mutates s in place and must leave it unchanged for events it does not care about.
type PassiveFunc func(env Env, s *model.MatchState, self model.ActorID, ev model.Event)

// Kit is one hero archetype: four ability functions and a passive.
type Kit struct {
	ID        model.KitID
	Abilities [model.SlotCount]AbilityFunc
	Passive   PassiveFunc
}

// Ability returns the function bound to slot, or nil.
func (k Kit) Ability(slot model.Slot) AbilityFunc {
	if !slot.Valid() {
		return nil
	}
	return k.Abilities[slot]
}

// Registry maps kit identifiers to kits. It is built once and never mutated.
type Registry struct {
	kits map[model.KitID]Kit
}

// NewRegistry builds a registry. Every kit needs an id, four ability
// functions and a passive; identifiers must be unique.
func NewRegistry(kits ...Kit) (*Registry, error) {
	r := &Registry{kits: make(map[model.KitID]Kit, len(kits))}
	for _, k := range kits {
		if k.ID == "" {
			return nil, errors.New("kit with empty id")
		}
		if _, dup := r.kits[k.ID]; dup {
			return nil, fmt.Errorf("duplicate kit %q", k.ID)
		}
		for _, slot := range model.Slots {
			if k.Abilities[slot] == nil {
				return nil, fmt.Errorf("kit %q: slot %s has no ability", k.ID, slot)
			}
		}
		if k.Passive == nil {
			return nil, fmt.Errorf("kit %q has no passive", k.ID)
		}
		r.kits[k.ID] = k
	}
	return r, nil
}

// Lookup returns the kit registered under id.
func (r *Registry) Lookup(id model.KitID) (Kit, bool) {
	if r == nil {
		return Kit{}, false
	}
	k, ok := r.kits[id]
	return k, ok
}

// IDs returns registered kit identifiers in sorted order.
func (r *Registry) IDs() []model.KitID {
	return slices.Sorted(maps.Keys(r.kits))
}

// Len returns the number of registered kits.
func (r *Registry) Len() int {
	return len(r.kits)
}
