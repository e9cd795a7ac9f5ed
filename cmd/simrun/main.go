// Command simrun plays a session without a window, holding a fixed set of
// keys, and prints where the stick ended up.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/milk9111/stickthruster/logging"
	"github.com/milk9111/stickthruster/prefabs"
	"github.com/milk9111/stickthruster/sim"
	"go.uber.org/zap"
)

type result struct {
	Ticks     int
	State     sim.State
	Score     int
	X, Y      float64
	Angle     float64
	Obstacles int
}

func (r result) String() string {
	return fmt.Sprintf("ticks=%d state=%s score=%d pos=(%.2f, %.2f) angle=%.2f obstacles=%d",
		r.Ticks, r.State, r.Score, r.X, r.Y, r.Angle, r.Obstacles)
}

// parseHold turns "left,right,down" into held thrusters.
func parseHold(s string) (sim.Input, error) {
	var in sim.Input
	for _, key := range strings.Split(s, ",") {
		switch strings.TrimSpace(strings.ToLower(key)) {
		case "":
		case "left":
			in.Left = true
		case "right":
			in.Right = true
		case "down", "reverse":
			in.Reverse = true
		default:
			return sim.Input{}, fmt.Errorf("simrun: unknown key %q", key)
		}
	}
	return in, nil
}

// run starts a round and ticks until it ends or maxTicks is reached.
func run(session *sim.Session, hold sim.Input, maxTicks int) result {
	_ = session.Update(sim.Input{Start: true})

	ticks := 0
	for ticks < maxTicks && session.State() == sim.StatePlaying {
		_ = session.Update(hold)
		ticks++
	}

	body := session.Body()
	return result{
		Ticks:     ticks,
		State:     session.State(),
		Score:     session.Score(),
		X:         body.Pos.X,
		Y:         body.Pos.Y,
		Angle:     body.Angle,
		Obstacles: session.Field().Len(),
	}
}

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	ticks := flag.Int("ticks", 600, "maximum ticks to simulate")
	seed := flag.Uint64("seed", 1, "random seed")
	hold := flag.String("hold", "", "comma separated keys to hold: left,right,down")
	tuningName := flag.String("tuning", prefabs.TuningFile, "tuning file name in prefabs/")
	flag.Parse()

	log := logging.Must(*debug)
	defer func() { _ = log.Sync() }()

	in, err := parseHold(*hold)
	if err != nil {
		log.Error("bad -hold", zap.Error(err))
		os.Exit(2)
	}

	tuning, err := prefabs.LoadTuning(*tuningName)
	if err != nil {
		log.Fatal("load tuning", zap.Error(err))
	}

	session := sim.NewSession(sim.ConfigFromTuning(tuning),
		sim.WithRand(rand.New(rand.NewPCG(*seed, *seed>>1|1))),
		sim.WithLogger(log.Named("session")),
	)

	fmt.Println(run(session, in, *ticks))
}
