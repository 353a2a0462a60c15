package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/skirmish/internal/model"
)

// MatchRepository stores finished match summaries.
type MatchRepository struct {
	pool *pgxpool.Pool
}

// NewMatchRepository creates a repository over pool.
func NewMatchRepository(pool *pgxpool.Pool) *MatchRepository {
	return &MatchRepository{pool: pool}
}

// Save writes a summary and its heroes in a single transaction.
// Saving an existing id replaces the previous summary.
func (r *MatchRepository) Save(ctx context.Context, sum model.MatchSummary) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx for match %s: %w", sum.ID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx,
		`INSERT INTO matches
		 (id, scenario, winner, ticks, blue_kills, red_kills,
		  blue_towers_lost, red_towers_lost, rejected)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		 ON CONFLICT (id) DO UPDATE SET
		  scenario=$2, winner=$3, ticks=$4, blue_kills=$5, red_kills=$6,
		  blue_towers_lost=$7, red_towers_lost=$8, rejected=$9, saved_at=now()`,
		sum.ID, sum.Scenario, sum.Winner.String(), sum.Ticks,
		sum.Blue.Kills, sum.Red.Kills, sum.Blue.TowersLost, sum.Red.TowersLost,
		sum.Rejected,
	); err != nil {
		return fmt.Errorf("saving match %s: %w", sum.ID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM match_actors WHERE match_id = $1`, sum.ID); err != nil {
		return fmt.Errorf("deleting old actors of match %s: %w", sum.ID, err)
	}

	if len(sum.Actors) > 0 {
		rows := make([][]any, 0, len(sum.Actors))
		for _, a := range sum.Actors {
			rows = append(rows, []any{
				sum.ID, string(a.Actor), a.Name, string(a.Kit), a.Team.String(),
				a.Level, a.Gold, a.Kills, a.Deaths, a.Assists,
			})
		}
		if _, err := tx.CopyFrom(ctx,
			pgx.Identifier{"match_actors"},
			[]string{"match_id", "actor_id", "name", "kit", "team", "level", "gold", "kills", "deaths", "assists"},
			pgx.CopyFromRows(rows),
		); err != nil {
			return fmt.Errorf("inserting actors of match %s: %w", sum.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit match %s: %w", sum.ID, err)
	}

	slog.Debug("saved match summary",
		"match", sum.ID,
		"winner", sum.Winner,
		"actors", len(sum.Actors))
	return nil
}

// Get loads a summary by id, heroes in id order.
// Returns nil, nil if the match does not exist.
func (r *MatchRepository) Get(ctx context.Context, id string) (*model.MatchSummary, error) {
	sum := model.MatchSummary{
		ID:   id,
		Blue: model.TeamState{Team: model.TeamBlue},
		Red:  model.TeamState{Team: model.TeamRed},
	}
	var winner string
	err := r.pool.QueryRow(ctx,
		`SELECT scenario, winner, ticks, blue_kills, red_kills,
		        blue_towers_lost, red_towers_lost, rejected
		 FROM matches WHERE id = $1`, id,
	).Scan(&sum.Scenario, &winner, &sum.Ticks, &sum.Blue.Kills, &sum.Red.Kills,
		&sum.Blue.TowersLost, &sum.Red.TowersLost, &sum.Rejected)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying match %s: %w", id, err)
	}
	sum.Winner = model.ParseTeam(winner)

	rows, err := r.pool.Query(ctx,
		`SELECT actor_id, name, kit, team, level, gold, kills, deaths, assists
		 FROM match_actors WHERE match_id = $1 ORDER BY actor_id`, id)
	if err != nil {
		return nil, fmt.Errorf("querying actors of match %s: %w", id, err)
	}
	defer rows.Close()

	sum.Actors = []model.ActorSummary{}
	for rows.Next() {
		var (
			a          model.ActorSummary
			actor, kit string
			team       string
		)
		if err := rows.Scan(&actor, &a.Name, &kit, &team, &a.Level, &a.Gold, &a.Kills, &a.Deaths, &a.Assists); err != nil {
			return nil, fmt.Errorf("scanning actor of match %s: %w", id, err)
		}
		a.Actor = model.ActorID(actor)
		a.Kit = model.KitID(kit)
		a.Team = model.ParseTeam(team)
		sum.Actors = append(sum.Actors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating actors of match %s: %w", id, err)
	}
	return &sum, nil
}
