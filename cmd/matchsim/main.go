package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/udisondev/skirmish/internal/config"
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/db"
	"github.com/udisondev/skirmish/internal/game/kit"
	"github.com/udisondev/skirmish/internal/game/skill"
	"github.com/udisondev/skirmish/internal/game/zone"
	"github.com/udisondev/skirmish/internal/journal"
	"github.com/udisondev/skirmish/internal/match"
	"github.com/udisondev/skirmish/internal/model"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	defaultConfig, err := config.Path()
	if err != nil {
		return err
	}
	cfgPath := flag.String("config", defaultConfig, "config file (env SKIRMISH_CONFIG)")
	scenarioPath := flag.String("scenario", "scenarios/mid-skirmish.yaml", "scenario file")
	runs := flag.Int("runs", 0, "number of matches to run (overrides config)")
	verify := flag.Bool("verify", false, "read every journal back after the run")
	flag.Parse()

	cfg, err := config.LoadMatchServer(*cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *runs > 0 {
		cfg.Runs = *runs
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})))

	slog.Info("skirmish match simulator starting",
		"config", *cfgPath,
		"workers", cfg.Workers,
		"runs", cfg.Runs)

	// Static data
	if err := data.LoadZones(); err != nil {
		return fmt.Errorf("loading zones: %w", err)
	}
	catalog, err := data.LoadKitCatalog()
	if err != nil {
		return err
	}
	topo, err := zone.Load()
	if err != nil {
		return fmt.Errorf("building zone graph: %w", err)
	}
	registry, err := kit.NewRegistry()
	if err != nil {
		return err
	}
	resolver := skill.NewResolver(registry, skill.Env{Catalog: catalog, Topology: topo})
	slog.Info("static data loaded", "kits", registry.Len(), "zones", len(topo.Zones()))

	sc, err := match.LoadScenario(*scenarioPath)
	if err != nil {
		return err
	}

	var journals match.JournalFactory
	if cfg.Journal.Enabled {
		journals = func(id string) (match.Journal, error) {
			return journal.Create(cfg.Journal.Dir, id)
		}
	}

	jobs := make([]match.Job, cfg.Runs)
	for i := range jobs {
		jobs[i] = match.Job{Scenario: sc}
	}

	results, err := match.NewScheduler(resolver, journals, cfg.MaxTicks).RunAll(ctx, jobs, cfg.Workers)
	if err != nil {
		return fmt.Errorf("running matches: %w", err)
	}
	for _, sum := range results {
		slog.Info("match result",
			"match", sum.ID,
			"winner", sum.Winner,
			"ticks", sum.Ticks,
			"blueKills", sum.Blue.Kills,
			"redKills", sum.Red.Kills,
			"rejected", sum.Rejected)
	}

	if *verify && cfg.Journal.Enabled {
		if err := verifyJournals(cfg.Journal.Dir, results); err != nil {
			return err
		}
	}

	if cfg.Database.Enabled {
		if err := persist(ctx, cfg.Database, results); err != nil {
			return err
		}
	}
	return nil
}

func verifyJournals(dir string, results []model.MatchSummary) error {
	for _, sum := range results {
		entries, err := journal.ReadAll(journal.Path(dir, sum.ID))
		if err != nil {
			return fmt.Errorf("verifying journal of %s: %w", sum.ID, err)
		}
		if int64(len(entries)) != sum.Ticks {
			return fmt.Errorf("journal of %s has %d ticks, match ran %d", sum.ID, len(entries), sum.Ticks)
		}
	}
	slog.Info("journals verified", "count", len(results))
	return nil
}

func persist(ctx context.Context, cfg config.DatabaseConfig, results []model.MatchSummary) error {
	database, err := db.New(ctx, cfg.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	applied, err := database.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database schema ready", "applied", len(applied))

	repo := db.NewMatchRepository(database.Pool())
	for _, sum := range results {
		if err := repo.Save(ctx, sum); err != nil {
			return err
		}
	}
	slog.Info("match summaries saved", "count", len(results))
	return nil
}
