package model

// ActorID identifies a hero inside one match.
type ActorID string

// KitID identifies a hero archetype (its abilities and passive).
type KitID string

// ZoneID identifies a node of the match map graph.
type ZoneID string

// BuffID identifies a status effect kind ("stun", "burn", "focus", ...).
type BuffID string

// ItemID identifies an item template. Empty string marks an empty item slot.
type ItemID string

// Team is one side of a match.
type Team uint8

const (
	TeamNone Team = iota
	TeamBlue
	TeamRed
)

// String returns lowercase team name used in scenarios and journals.
func (t Team) String() string {
	switch t {
	case TeamBlue:
		return "blue"
	case TeamRed:
		return "red"
	default:
		return "none"
	}
}

// Opponent returns the other team. TeamNone has no opponent.
func (t Team) Opponent() Team {
	switch t {
	case TeamBlue:
		return TeamRed
	case TeamRed:
		return TeamBlue
	default:
		return TeamNone
	}
}

// ParseTeam parses "blue"/"red". Unknown values map to TeamNone.
func ParseTeam(s string) Team {
	switch s {
	case "blue":
		return TeamBlue
	case "red":
		return TeamRed
	default:
		return TeamNone
	}
}

// Phase is the lifecycle stage of a match.
type Phase uint8

const (
	PhaseLobby Phase = iota
	PhaseInProgress
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseLobby:
		return "lobby"
	case PhaseInProgress:
		return "in_progress"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}
