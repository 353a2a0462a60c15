package model

import "fmt"

// TargetKind discriminates TargetRef variants.
type TargetKind uint8

const (
	TargetSelf TargetKind = iota
	TargetHero
	TargetCreep
	TargetTower
	TargetZone
)

func (k TargetKind) String() string {
	switch k {
	case TargetSelf:
		return "self"
	case TargetHero:
		return "hero"
	case TargetCreep:
		return "creep"
	case TargetTower:
		return "tower"
	case TargetZone:
		return "zone"
	default:
		return fmt.Sprintf("TargetKind(%d)", uint8(k))
	}
}

// TargetRef is an opaque reference to something an ability is aimed at.
//
// Hero references match by actor id, display name or kit id. Creep
// references carry the zone and the creep index inside it. Tower and zone
// references carry only the zone.
type TargetRef struct {
	Kind  TargetKind `json:"kind"`
	Name  string     `json:"name,omitempty"`
	Zone  ZoneID     `json:"zone,omitempty"`
	Index int        `json:"index,omitempty"`
}

// SelfTarget references the caster.
func SelfTarget() TargetRef { return TargetRef{Kind: TargetSelf} }

// HeroTarget references a hero by id, display name or kit id.
func HeroTarget(name string) TargetRef { return TargetRef{Kind: TargetHero, Name: name} }

// CreepTarget references the index-th creep of a zone.
func CreepTarget(zone ZoneID, index int) TargetRef {
	return TargetRef{Kind: TargetCreep, Zone: zone, Index: index}
}

// TowerTarget references the tower of a zone.
func TowerTarget(zone ZoneID) TargetRef { return TargetRef{Kind: TargetTower, Zone: zone} }

// ZoneTarget references a whole zone.
func ZoneTarget(zone ZoneID) TargetRef { return TargetRef{Kind: TargetZone, Zone: zone} }

// String describes the reference for error messages.
func (t TargetRef) String() string {
	switch t.Kind {
	case TargetSelf:
		return "self"
	case TargetHero:
		return "hero " + t.Name
	case TargetCreep:
		return fmt.Sprintf("creep %d in %s", t.Index, t.Zone)
	case TargetTower:
		return "tower in " + string(t.Zone)
	case TargetZone:
		return "zone " + string(t.Zone)
	default:
		return t.Kind.String()
	}
}
