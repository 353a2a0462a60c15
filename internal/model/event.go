package model

import (
	"encoding/json"
	"fmt"
)

// EventType is the tag of an event payload.
type EventType string

const (
	EventAbilityCast    EventType = "ability_cast"
	EventAbilityFailed  EventType = "ability_failed"
	EventActorKilled    EventType = "actor_killed"
	EventActorMoved     EventType = "actor_moved"
	EventActorRespawned EventType = "actor_respawned"
	EventTickElapsed    EventType = "tick_elapsed"
	EventTowerDestroyed EventType = "tower_destroyed"
)

// DamageCategory selects the mitigation formula.
type DamageCategory uint8

const (
	DamagePhysical DamageCategory = iota
	DamageMagical
	DamagePure
)

func (c DamageCategory) String() string {
	switch c {
	case DamagePhysical:
		return "physical"
	case DamageMagical:
		return "magical"
	case DamagePure:
		return "pure"
	default:
		return fmt.Sprintf("DamageCategory(%d)", uint8(c))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c DamageCategory) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *DamageCategory) UnmarshalText(text []byte) error {
	switch string(text) {
	case "physical":
		*c = DamagePhysical
	case "magical":
		*c = DamageMagical
	case "pure":
		*c = DamagePure
	default:
		return fmt.Errorf("unknown damage category %q", text)
	}
	return nil
}

// Payload is the closed set of event bodies.
type Payload interface {
	EventType() EventType
	payload()
}

// Event is an immutable record of something that happened during a tick.
type Event struct {
	Tick    int64
	Payload Payload
}

// Type returns the payload tag, or "" for an empty event.
func (e Event) Type() EventType {
	if e.Payload == nil {
		return ""
	}
	return e.Payload.EventType()
}

// Hit is one damage instance dealt by an ability.
type Hit struct {
	// Actor is set when the victim is a hero.
	Actor    ActorID        `json:"actor,omitempty"`
	Target   TargetRef      `json:"target"`
	Amount   int32          `json:"amount"`
	Category DamageCategory `json:"category"`
	Killed   bool           `json:"killed,omitempty"`
	// Slowed records whether the hero was slowed when the hit landed,
	// before the ability applied any statuses of its own.
	Slowed bool `json:"slowed,omitempty"`
}

// StatusApplied records a buff placed on a hero by an ability.
type StatusApplied struct {
	Actor ActorID `json:"actor"`
	Buff  BuffID  `json:"buff"`
}

// AbilityCast is emitted once per successful ability resolution.
type AbilityCast struct {
	Caster    ActorID         `json:"caster"`
	Kit       KitID           `json:"kit"`
	Slot      Slot            `json:"slot"`
	Ability   string          `json:"ability"`
	Level     int32           `json:"level"`
	Zone      ZoneID          `json:"zone"`
	Target    *TargetRef      `json:"target,omitempty"`
	ManaSpent int32           `json:"mana_spent"`
	Hits      []Hit           `json:"hits,omitempty"`
	Statuses  []StatusApplied `json:"statuses,omitempty"`
	Healed    int32           `json:"healed,omitempty"`
}

// HitOn returns the total damage the cast dealt to actor and whether it hit at all.
func (c AbilityCast) HitOn(actor ActorID) (int32, bool) {
	var total int32
	found := false
	for _, h := range c.Hits {
		if h.Actor == actor {
			total += h.Amount
			found = true
		}
	}
	return total, found
}

// HitCountOn returns how many hit instances landed on actor.
func (c AbilityCast) HitCountOn(actor ActorID) int {
	n := 0
	for _, h := range c.Hits {
		if h.Actor == actor {
			n++
		}
	}
	return n
}

// AbilityFailed is a soft failure: the cast resolved but had no effect and cost nothing.
type AbilityFailed struct {
	Caster  ActorID `json:"caster"`
	Kit     KitID   `json:"kit"`
	Slot    Slot    `json:"slot"`
	Ability string  `json:"ability"`
	Target  ActorID `json:"target,omitempty"`
	Reason  string  `json:"reason"`
}

// ActorKilled is emitted when a hero's hp reaches zero.
// Killer is empty when the death has no attributable hero (environment).
type ActorKilled struct {
	Killer  ActorID   `json:"killer,omitempty"`
	Victim  ActorID   `json:"victim"`
	Zone    ZoneID    `json:"zone"`
	Assists []ActorID `json:"assists,omitempty"`
}

// ActorMoved is emitted when a hero changes zone.
type ActorMoved struct {
	Actor ActorID `json:"actor"`
	From  ZoneID  `json:"from"`
	To    ZoneID  `json:"to"`
	// Cause is "walk" for a move action or the ability name for forced movement.
	Cause string `json:"cause"`
}

// ActorRespawned is emitted when a dead hero comes back.
type ActorRespawned struct {
	Actor ActorID `json:"actor"`
	Zone  ZoneID  `json:"zone"`
}

// TickElapsed is emitted once at the end of every tick.
type TickElapsed struct{}

// TowerDestroyed is emitted when a tower's hp reaches zero.
type TowerDestroyed struct {
	Zone ZoneID  `json:"zone"`
	Team Team    `json:"team"`
	By   ActorID `json:"by,omitempty"`
	Base bool    `json:"base,omitempty"`
}

func (AbilityCast) EventType() EventType    { return EventAbilityCast }
func (AbilityFailed) EventType() EventType  { return EventAbilityFailed }
func (ActorKilled) EventType() EventType    { return EventActorKilled }
func (ActorMoved) EventType() EventType     { return EventActorMoved }
func (ActorRespawned) EventType() EventType { return EventActorRespawned }
func (TickElapsed) EventType() EventType    { return EventTickElapsed }
func (TowerDestroyed) EventType() EventType { return EventTowerDestroyed }

func (AbilityCast) payload()    {}
func (AbilityFailed) payload()  {}
func (ActorKilled) payload()    {}
func (ActorMoved) payload()     {}
func (ActorRespawned) payload() {}
func (TickElapsed) payload()    {}
func (TowerDestroyed) payload() {}

type eventEnvelope struct {
	Tick    int64           `json:"tick"`
	Type    EventType       `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// MarshalJSON encodes the event as {"tick":N,"type":"...","payload":{...}}.
func (e Event) MarshalJSON() ([]byte, error) {
	if e.Payload == nil {
		return nil, fmt.Errorf("event at tick %d has no payload", e.Tick)
	}
	body, err := json.Marshal(e.Payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s payload: %w", e.Payload.EventType(), err)
	}
	return json.Marshal(eventEnvelope{Tick: e.Tick, Type: e.Payload.EventType(), Payload: body})
}

// UnmarshalJSON decodes the envelope produced by MarshalJSON.
func (e *Event) UnmarshalJSON(data []byte) error {
	var env eventEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("decoding event envelope: %w", err)
	}

	var (
		p   Payload
		err error
	)
	switch env.Type {
	case EventAbilityCast:
		p, err = decodePayload[AbilityCast](env.Payload)
	case EventAbilityFailed:
		p, err = decodePayload[AbilityFailed](env.Payload)
	case EventActorKilled:
		p, err = decodePayload[ActorKilled](env.Payload)
	case EventActorMoved:
		p, err = decodePayload[ActorMoved](env.Payload)
	case EventActorRespawned:
		p, err = decodePayload[ActorRespawned](env.Payload)
	case EventTickElapsed:
		p = TickElapsed{}
	case EventTowerDestroyed:
		p, err = decodePayload[TowerDestroyed](env.Payload)
	default:
		return fmt.Errorf("unknown event type %q", env.Type)
	}
	if err != nil {
		return fmt.Errorf("decoding %s payload: %w", env.Type, err)
	}

	e.Tick = env.Tick
	e.Payload = p
	return nil
}

func decodePayload[T Payload](raw json.RawMessage) (Payload, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}
