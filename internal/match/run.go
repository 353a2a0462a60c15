package match

import (
	"context"
	"errors"
	"log/slog"

	"github.com/udisondev/skirmish/internal/game/skill"
	"github.com/udisondev/skirmish/internal/model"
)

// Run replays script until the match is done. Hard action failures are
// counted and skipped; ctx is checked between ticks.
func (m *Match) Run(ctx context.Context, script Script) error {
	for !m.done {
		if err := ctx.Err(); err != nil {
			return err
		}

		for _, a := range script[m.state.Tick] {
			_, err := m.Apply(a)
			switch {
			case err == nil:
			case errors.Is(err, ErrMatchEnded):
			case skill.IsAbilityError(err):
			default:
				return err
			}
		}

		if err := m.Advance(); err != nil {
			return err
		}
	}
	return nil
}

// Summarize reports the outcome of a match, heroes in id order.
func Summarize(m *Match) model.MatchSummary {
	s := m.state
	sum := model.MatchSummary{
		ID:       m.id,
		Winner:   s.Winner,
		Ticks:    s.Tick,
		Blue:     s.Blue,
		Red:      s.Red,
		Rejected: m.rejected,
		Actors:   make([]model.ActorSummary, 0, len(s.Actors)),
	}
	for _, id := range s.ActorIDs() {
		a := s.Actors[id]
		sum.Actors = append(sum.Actors, model.ActorSummary{
			Actor:   a.ID,
			Name:    a.Name,
			Kit:     a.Kit,
			Team:    a.Team,
			Level:   a.Level,
			Gold:    a.Gold,
			Kills:   a.Kills,
			Deaths:  a.Deaths,
			Assists: a.Assists,
		})
	}
	if !m.done {
		slog.Warn("summarizing unfinished match", "match", m.id, "tick", s.Tick)
	}
	return sum
}
