package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/emrzvv/gamerng/internal/config"
	"github.com/emrzvv/gamerng/internal/export"
	"github.com/emrzvv/gamerng/internal/host"
	"github.com/emrzvv/gamerng/internal/rng"
	"github.com/emrzvv/gamerng/internal/simulator"
)

func main() {
	cfgPath := flag.String("cfg", "./config/default.yaml", "path to config")
	outDir := flag.String("out", "./csv", "output directory for csv and plots")
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := simulator.Run(ctx, cfg, gen, logger)
	if err != nil {
		logger.Fatal("simulation", zap.Error(err))
	}

	export.SummaryTable(os.Stdout, st)

	if err := export.ToCSV(*outDir, st); err != nil {
		logger.Fatal("export csv", zap.Error(err))
	}
	if len(st.Games) > 0 {
		file := fmt.Sprintf("%s/durations.png", strings.TrimSuffix(*outDir, "/"))
		if err := export.PlotDurations(st, file); err != nil {
			logger.Fatal("plot durations", zap.Error(err))
		}
	}
}
