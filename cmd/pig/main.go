package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/emrzvv/gamerng/internal/config"
	"github.com/emrzvv/gamerng/internal/host"
	"github.com/emrzvv/gamerng/internal/model"
	"github.com/emrzvv/gamerng/internal/rng"
)

func main() {
	cfgPath := flag.String("cfg", "./config/default.yaml", "path to config")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	app := host.NewApp(logger)
	if err := app.AddPlugins(cfg.Plugin()); err != nil {
		logger.Fatal("install generator", zap.Error(err))
	}
	gen := host.MustResource[rng.Resource](app)

	tick := time.Duration(cfg.Pig.Tick * float64(time.Second))
	g := model.NewGame(gen, cfg.Pig.TargetScore)
	if err := play(g, os.Stdin, os.Stdout, tick, cfg.Pig.CPUHold); err != nil {
		logger.Fatal("play", zap.Error(err))
	}
}

func printState(out io.Writer, g *model.Game) {
	fmt.Fprintf(out, "player %d  cpu %d  |  %s hand %v = %d\n",
		g.Scores.Player, g.Scores.CPU, g.Phase, g.Hand, g.HandScore())
}

func play(g *model.Game, in io.Reader, out io.Writer, tick time.Duration, cpuHold int) error {
	sc := bufio.NewScanner(in)
	fmt.Fprintf(out, "Pig to %d. r = roll, p = pass, q = quit\n", g.Target)

	for !g.Over() {
		if g.Phase == model.PhaseCPU {
			if err := cpuTurn(g, out, tick, cpuHold); err != nil {
				return err
			}
			continue
		}

		printState(out, g)
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			return sc.Err()
		}
		switch strings.TrimSpace(strings.ToLower(sc.Text())) {
		case "r":
			die, bust, err := g.Roll()
			if err != nil {
				return err
			}
			if bust {
				fmt.Fprintln(out, "rolled a 1, hand lost")
			} else {
				fmt.Fprintf(out, "rolled %d\n", die)
			}
		case "p":
			banked, err := g.Pass()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "banked %d\n", banked)
		case "q":
			fmt.Fprintln(out, "bye")
			return nil
		default:
			fmt.Fprintln(out, "r = roll, p = pass, q = quit")
		}
	}

	winner, _ := g.Winner()
	fmt.Fprintf(out, "%s wins %d to %d after %d turns\n",
		winner, g.Score(winner), g.Score(otherSide(winner)), g.Turns)
	return nil
}

// cpuTurn plays the CPU hand one move per tick.
func cpuTurn(g *model.Game, out io.Writer, tick time.Duration, hold int) error {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for g.Phase == model.PhaseCPU && !g.Over() {
		<-ticker.C
		if g.ShouldRoll(hold) {
			die, bust, err := g.Roll()
			if err != nil {
				return err
			}
			if bust {
				fmt.Fprintln(out, "cpu rolled a 1, hand lost")
				return nil
			}
			fmt.Fprintf(out, "cpu rolled %d (hand %d)\n", die, g.HandScore())
			continue
		}
		banked, err := g.Pass()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "cpu banked %d\n", banked)
	}
	return nil
}

func otherSide(p model.Phase) model.Phase {
	if p == model.PhaseCPU {
		return model.PhasePlayer
	}
	return model.PhaseCPU
}
