package skill

import (
	"github.com/udisondev/skirmish/internal/model"
)

// FanOut delivers every event to the passive of every living hero and
// returns the resulting snapshot. s is not modified.
//
// Heroes are visited in actor id order for each event in turn, so the
// result is deterministic. A hero that dies while the batch is being
// delivered stops receiving the remaining events. Heroes without a kit, or
// with a kit missing from the registry, are skipped.
//
// Events that passives emit into the snapshot are recorded but not
// delivered again.
func (r *Resolver) FanOut(s *model.MatchState, events []model.Event) *model.MatchState {
	out := s.Clone()
	if len(events) == 0 {
		return out
	}

	ids := out.ActorIDs()
	for _, ev := range events {
		for _, id := range ids {
			a := out.Actor(id)
			if a == nil || !a.Alive || a.Kit == "" {
				continue
			}
			kit, ok := r.registry.Lookup(a.Kit)
			if !ok || kit.Passive == nil {
				continue
			}
			kit.Passive(r.env, out, id, ev)
		}
	}
	return out
}
