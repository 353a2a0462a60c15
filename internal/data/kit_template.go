package data

import (
	"fmt"
	"maps"
	"slices"

	"github.com/udisondev/skirmish/internal/model"
)

// Stats is the five-stat block used for base values and per-level growth.
type Stats struct {
	HP      int32
	Mana    int32
	Attack  int32
	Defense int32
	Resist  int32
}

// KitTemplate содержит статические данные архетипа героя:
// базовые статы, прирост за уровень и названия способностей.
type KitTemplate struct {
	ID        model.KitID
	Name      string
	Role      string
	Base      Stats
	Growth    Stats
	Abilities [model.SlotCount]string
	Passive   string
}

// AbilityName returns the display name of the ability in slot.
func (t *KitTemplate) AbilityName(slot model.Slot) string {
	if t == nil || !slot.Valid() {
		return slot.String()
	}
	return t.Abilities[slot]
}

// KitCatalog is the read-only lookup of kit templates by id.
// Built once at startup, never mutated afterwards.
type KitCatalog struct {
	kits map[model.KitID]*KitTemplate
}

// NewKitCatalog builds a catalog from templates.
// Returns error on duplicate ids or templates with missing ability names.
func NewKitCatalog(templates ...*KitTemplate) (*KitCatalog, error) {
	kits := make(map[model.KitID]*KitTemplate, len(templates))
	for _, t := range templates {
		if t.ID == "" {
			return nil, fmt.Errorf("kit template %q has empty id", t.Name)
		}
		if _, dup := kits[t.ID]; dup {
			return nil, fmt.Errorf("duplicate kit template %q", t.ID)
		}
		for _, slot := range model.Slots {
			if t.Abilities[slot] == "" {
				return nil, fmt.Errorf("kit %q: slot %s has no ability name", t.ID, slot)
			}
		}
		kits[t.ID] = t
	}
	return &KitCatalog{kits: kits}, nil
}

// LoadKitCatalog строит каталог из Go-литералов (kitDefs).
// Вызывается при старте сервера.
func LoadKitCatalog() (*KitCatalog, error) {
	templates := make([]*KitTemplate, 0, len(kitDefs))
	for i := range kitDefs {
		templates = append(templates, &kitDefs[i])
	}
	c, err := NewKitCatalog(templates...)
	if err != nil {
		return nil, fmt.Errorf("loading kit catalog: %w", err)
	}
	return c, nil
}

// Template returns the template for id or nil.
func (c *KitCatalog) Template(id model.KitID) *KitTemplate {
	if c == nil {
		return nil
	}
	return c.kits[id]
}

// AbilityName returns the display name of a kit's slot, falling back to the slot letter.
func (c *KitCatalog) AbilityName(id model.KitID, slot model.Slot) string {
	return c.Template(id).AbilityName(slot)
}

// IDs returns all kit ids in sorted order.
func (c *KitCatalog) IDs() []model.KitID {
	if c == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(c.kits))
}

// Len returns the number of templates.
func (c *KitCatalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.kits)
}
