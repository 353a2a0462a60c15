package match

import (
	"github.com/udisondev/skirmish/internal/model"
)

// CauseWalk is the ActorMoved cause of a move action.
const CauseWalk = "walk"

// Action is a player decision submitted to a match.
// The set is closed: CastAction and MoveAction.
type Action interface {
	actor() model.ActorID
	action()
}

// CastAction casts the ability in Slot. Target may be nil for untargeted abilities.
type CastAction struct {
	Actor  model.ActorID
	Slot   model.Slot
	Target *model.TargetRef
}

// MoveAction walks a hero to an adjacent zone.
type MoveAction struct {
	Actor model.ActorID
	To    model.ZoneID
}

func (a CastAction) actor() model.ActorID { return a.Actor }
func (a MoveAction) actor() model.ActorID { return a.Actor }

func (CastAction) action() {}
func (MoveAction) action() {}
