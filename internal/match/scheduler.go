package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/skirmish/internal/game/skill"
	"github.com/udisondev/skirmish/internal/model"
)

// Journal is a per-match journal the scheduler closes once the match is over.
type Journal interface {
	JournalWriter
	Close() error
}

// JournalFactory opens the journal of one match.
type JournalFactory func(matchID string) (Journal, error)

// Job is one match to schedule. An empty ID is replaced with a random UUID.
type Job struct {
	ID       string
	Scenario *Scenario
}

// Scheduler runs independent matches concurrently. Matches share only the
// immutable resolver.
type Scheduler struct {
	resolver *skill.Resolver
	journals JournalFactory
	maxTicks int64
}

// NewScheduler creates a scheduler. journals may be nil to disable journaling;
// maxTicks applies to scenarios that set none.
func NewScheduler(resolver *skill.Resolver, journals JournalFactory, maxTicks int64) *Scheduler {
	return &Scheduler{resolver: resolver, journals: journals, maxTicks: maxTicks}
}

// RunAll runs every job with at most workers matches in flight and returns
// the summaries in job order. The first failing match cancels the rest.
func (sc *Scheduler) RunAll(ctx context.Context, jobs []Job, workers int) ([]model.MatchSummary, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]model.MatchSummary, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range jobs {
		if job.ID == "" {
			job.ID = uuid.NewString()
		}
		g.Go(func() error {
			sum, err := sc.run(gctx, job)
			if err != nil {
				return fmt.Errorf("match %s: %w", job.ID, err)
			}
			results[i] = sum
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (sc *Scheduler) run(ctx context.Context, job Job) (sum model.MatchSummary, err error) {
	if job.Scenario == nil {
		return sum, errors.New("no scenario")
	}

	state, err := job.Scenario.Build(sc.resolver.Env().Catalog)
	if err != nil {
		return sum, fmt.Errorf("building scenario %q: %w", job.Scenario.Name, err)
	}
	script, err := job.Scenario.Script()
	if err != nil {
		return sum, fmt.Errorf("compiling scenario %q: %w", job.Scenario.Name, err)
	}

	opts := Options{MaxTicks: job.Scenario.MaxTicks}
	if opts.MaxTicks == 0 {
		opts.MaxTicks = sc.maxTicks
	}

	if sc.journals != nil {
		j, err := sc.journals(job.ID)
		if err != nil {
			return sum, fmt.Errorf("opening journal: %w", err)
		}
		defer func() {
			if cerr := j.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing journal: %w", cerr)
			}
		}()
		opts.Journal = j
	}

	slog.Info("match started",
		"match", job.ID,
		"scenario", job.Scenario.Name,
		"heroes", len(state.Actors))

	m := New(job.ID, state, sc.resolver, opts)
	if err := m.Run(ctx, script); err != nil {
		return sum, err
	}

	sum = Summarize(m)
	sum.Scenario = job.Scenario.Name
	return sum, nil
}
