package model

import "fmt"

// Slot is one of the four ability slots of a hero.
// Q, W and E are basic abilities, R is the ultimate.
type Slot uint8

const (
	SlotQ Slot = iota
	SlotW
	SlotE
	SlotR
)

// SlotCount is the number of ability slots per hero.
const SlotCount = 4

// Slots lists every slot in display order.
var Slots = [SlotCount]Slot{SlotQ, SlotW, SlotE, SlotR}

// IsUltimate reports whether s is the ultimate slot.
func (s Slot) IsUltimate() bool { return s == SlotR }

// Valid reports whether s is one of the four known slots.
func (s Slot) Valid() bool { return s <= SlotR }

func (s Slot) String() string {
	switch s {
	case SlotQ:
		return "Q"
	case SlotW:
		return "W"
	case SlotE:
		return "E"
	case SlotR:
		return "R"
	default:
		return fmt.Sprintf("Slot(%d)", uint8(s))
	}
}

// ParseSlot parses a slot letter (case-sensitive, "Q".."R").
func ParseSlot(s string) (Slot, error) {
	switch s {
	case "Q":
		return SlotQ, nil
	case "W":
		return SlotW, nil
	case "E":
		return SlotE, nil
	case "R":
		return SlotR, nil
	default:
		return 0, fmt.Errorf("unknown ability slot %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Slot) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Slot) UnmarshalText(text []byte) error {
	v, err := ParseSlot(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
