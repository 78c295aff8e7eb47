package simulator

import (
	"context"

	"github.com/fschuetz04/simgo"

	"github.com/emrzvv/gamerng/internal/config"
	"github.com/emrzvv/gamerng/internal/model"
	"github.com/emrzvv/gamerng/internal/rng"
	"github.com/emrzvv/gamerng/internal/stats"
)

// startGames opens this worker's games one tick apart, so that their moves
// interleave on the shared clock.
func startGames(
	ctx context.Context,
	proc simgo.Process,
	sim *simgo.Simulation,
	cfg *config.Config,
	worker, workers int,
	s rng.Sampler,
	ticks *model.TickSampler,
	st *stats.Statistics) {

	for id := worker; id < cfg.Simulation.Games; id += workers {
		if ctx.Err() != nil {
			return
		}
		gameID := id
		sim.Process(func(game simgo.Process) {
			playGame(ctx, game, cfg, gameID, s, ticks, st)
		})
		proc.Wait(proc.Timeout(ticks.Next()))
	}
}

func playGame(
	ctx context.Context,
	proc simgo.Process,
	cfg *config.Config,
	gameID int,
	s rng.Sampler,
	ticks *model.TickSampler,
	st *stats.Statistics) {

	g := model.NewGame(s, cfg.Pig.TargetScore)
	start := proc.Now()
	rolls := 0

	for !g.Over() {
		if ctx.Err() != nil {
			return
		}
		proc.Wait(proc.Timeout(ticks.Next()))

		phase := g.Phase
		hold := cfg.Pig.PlayerHold
		if phase == model.PhaseCPU {
			hold = cfg.Pig.CPUHold
		}

		if g.ShouldRoll(hold) {
			rolls++
			_, bust, err := g.Roll()
			if err != nil {
				return
			}
			if bust {
				st.AddTurn(&stats.TurnEvent{GameID: gameID, Phase: phase, T: proc.Now(), Rolls: rolls, Busted: true})
				rolls = 0
			}
			continue
		}

		banked, err := g.Pass()
		if err != nil {
			return
		}
		st.AddTurn(&stats.TurnEvent{GameID: gameID, Phase: phase, T: proc.Now(), Rolls: rolls, Banked: banked})
		rolls = 0
	}

	winner, _ := g.Winner()
	end := proc.Now()
	st.AddGame(&stats.GameResult{
		GameID:      gameID,
		Winner:      winner,
		PlayerScore: g.Scores.Player,
		CPUScore:    g.Scores.CPU,
		Turns:       g.Turns,
		Rolls:       g.Rolls,
		Start:       start,
		End:         end,
		Duration:    end - start,
	})
}
