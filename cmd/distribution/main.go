package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/emrzvv/gamerng/internal/config"
	"github.com/emrzvv/gamerng/internal/dice"
	"github.com/emrzvv/gamerng/internal/export"
	"github.com/emrzvv/gamerng/internal/host"
	"github.com/emrzvv/gamerng/internal/rng"
)

func main() {
	cfgPath := flag.String("cfg", "./config/default.yaml", "path to config")
	outDir := flag.String("out", "", "output directory for csv and plot, empty to skip")
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

	spec := dice.Spec{Sides: cfg.Distribution.Sides, Count: cfg.Distribution.Dice}
	h, err := dice.Distribution(gen, spec, cfg.Distribution.Trials)
	if err != nil {
		logger.Fatal("roll", zap.Error(err))
	}

	fmt.Printf("%s, %d trials, mode %d\n", spec, h.Trials, h.Mode())
	if err := h.Render(os.Stdout); err != nil {
		logger.Fatal("render", zap.Error(err))
	}
	export.DistributionTable(os.Stdout, h)
	fit := h.GoodnessOfFit(cfg.Distribution.Alpha)
	fmt.Println(fit)
	if !fit.OK() {
		logger.Warn("sums do not follow the expected distribution",
			zap.Float64("chi2", fit.Stat), zap.Float64("critical", fit.Critical))
	}

	if *outDir == "" {
		return
	}
	if err := export.DistributionToCSV(*outDir, h); err != nil {
		logger.Fatal("export csv", zap.Error(err))
	}
	file := fmt.Sprintf("%s/distribution.png", strings.TrimSuffix(*outDir, "/"))
	if err := export.PlotDistribution(h, file); err != nil {
		logger.Fatal("plot distribution", zap.Error(err))
	}
}
