package model

// ItemSlots is the size of a hero inventory.
const ItemSlots = 6

// ActorState is one hero inside a match snapshot.
//
// Invariants: 0 <= HP <= MaxHP, 0 <= Mana <= MaxMana and Alive == (HP > 0).
// Every mutator that touches HP recomputes Alive in the same step.
type ActorState struct {
	ID   ActorID `json:"id"`
	Name string  `json:"name"`
	Team Team    `json:"team"`
	// Kit is empty until the hero is picked.
	Kit  KitID  `json:"kit,omitempty"`
	Zone ZoneID `json:"zone"`

	HP      int32 `json:"hp"`
	MaxHP   int32 `json:"max_hp"`
	Mana    int32 `json:"mana"`
	MaxMana int32 `json:"max_mana"`

	Level      int32 `json:"level"`
	Experience int32 `json:"experience"`
	Gold       int32 `json:"gold"`

	Items     [ItemSlots]ItemID `json:"items"`
	Cooldowns [SlotCount]int32  `json:"cooldowns"`
	Buffs     []Buff            `json:"buffs,omitempty"`

	Alive       bool  `json:"alive"`
	RespawnTick int64 `json:"respawn_tick,omitempty"`

	Kills   int32 `json:"kills"`
	Deaths  int32 `json:"deaths"`
	Assists int32 `json:"assists"`
}

// Clone returns a deep copy of the actor (buff slice included).
func (a *ActorState) Clone() *ActorState {
	if a == nil {
		return nil
	}
	out := *a
	if len(a.Buffs) > 0 {
		out.Buffs = make([]Buff, len(a.Buffs))
		copy(out.Buffs, a.Buffs)
	} else {
		out.Buffs = nil
	}
	return &out
}

// HPPercent returns current hp as a percentage of max hp (0..100).
func (a *ActorState) HPPercent() int32 {
	if a.MaxHP <= 0 {
		return 0
	}
	return int32(int64(a.HP) * 100 / int64(a.MaxHP))
}

// SetHP sets hp clamped to [0, MaxHP] and recomputes Alive.
func (a *ActorState) SetHP(hp int32) {
	if hp < 0 {
		hp = 0
	}
	if hp > a.MaxHP {
		hp = a.MaxHP
	}
	a.HP = hp
	a.Alive = hp > 0
}

// SetMana sets mana clamped to [0, MaxMana].
func (a *ActorState) SetMana(mana int32) {
	if mana < 0 {
		mana = 0
	}
	if mana > a.MaxMana {
		mana = a.MaxMana
	}
	a.Mana = mana
}

// HasItem reports whether the inventory holds item.
func (a *ActorState) HasItem(item ItemID) bool {
	if item == "" {
		return false
	}
	for _, it := range a.Items {
		if it == item {
			return true
		}
	}
	return false
}
