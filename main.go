package main

import (
	"flag"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/stickthruster/common"
	"github.com/milk9111/stickthruster/logging"
	"github.com/milk9111/stickthruster/prefabs"
	"github.com/milk9111/stickthruster/sim"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	seed := flag.Uint64("seed", 0, "random seed for obstacles and stars (0 = time based)")
	watch := flag.Bool("watch", false, "hot-reload tuning from prefabs/ on disk")
	tuningName := flag.String("tuning", prefabs.TuningFile, "tuning file name in prefabs/")
	flag.Parse()

	log := logging.Must(*debug)
	defer func() { _ = log.Sync() }()

	tuning, err := prefabs.LoadTuning(*tuningName)
	if err != nil {
		log.Fatal("load tuning", zap.Error(err))
	}

	var reloader *prefabs.Reloader
	if *watch {
		reloader, err = prefabs.NewReloader(*tuningName)
		if err != nil {
			log.Warn("tuning hot reload disabled", zap.Error(err))
		}
	}

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	session := sim.NewSession(sim.ConfigFromTuning(tuning),
		sim.WithRand(rand.New(rand.NewPCG(s, s>>1|1))),
		sim.WithLogger(log.Named("session")),
	)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle(tuning.Text.Title)
	ebiten.SetTPS(common.TicksPerSecond)
	ebiten.SetWindowClosingHandled(true)

	game, err := NewGame(tuning, session, reloader, log, *debug)
	if err != nil {
		log.Fatal("create game", zap.Error(err))
	}
	defer func() { _ = game.Close() }()

	log.Info("starting", zap.Uint64("seed", s), zap.Bool("watch", reloader != nil))
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("run game", zap.Error(err))
	}
}
