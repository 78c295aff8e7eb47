package simulator

import (
	"context"

	"github.com/fschuetz04/simgo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/emrzvv/gamerng/internal/config"
	"github.com/emrzvv/gamerng/internal/model"
	"github.com/emrzvv/gamerng/internal/rng"
	"github.com/emrzvv/gamerng/internal/stats"
)

// Run autoplays cfg.Simulation.Games games of pig, both sides following the
// hold-at strategy, and collects every turn and result.
//
// Each worker owns one discrete-event simulation and plays the games whose
// id modulo the worker count equals its index.  All workers draw from s, so
// more than one worker needs a concurrent-safe sampler; otherwise Run falls
// back to a single worker.
func Run(ctx context.Context, cfg *config.Config, s rng.Sampler, logger *zap.Logger) (*stats.Statistics, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	statistics := stats.NewStatistics()

	workers := cfg.Simulation.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > 1 && !rng.ConcurrentSafe(s) {
		logger.Warn("generator is not safe for concurrent use, running a single worker",
			zap.Int("workers", workers))
		workers = 1
	}
	if workers > cfg.Simulation.Games && cfg.Simulation.Games > 0 {
		workers = cfg.Simulation.Games
	}

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			runWorker(ctx, cfg, w, workers, s, statistics)
			logger.Debug("worker done", zap.Int("worker", w))
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return statistics, err
	}

	statistics.Sort()
	logger.Info("simulation finished",
		zap.Int("games", len(statistics.Games)),
		zap.Int("turns", len(statistics.Turns)),
		zap.Int("workers", workers))
	return statistics, nil
}

func runWorker(ctx context.Context, cfg *config.Config, worker, workers int, s rng.Sampler, st *stats.Statistics) {
	simulation := simgo.NewSimulation()
	ticks := model.NewTickSampler(cfg.Pig.Tick, cfg.Pig.TickCV, s)

	simulation.Process(func(proc simgo.Process) {
		startGames(ctx, proc, simulation, cfg, worker, workers, s, ticks, st)
	})

	simulation.RunUntil(cfg.Simulation.TimeSeconds)
}
