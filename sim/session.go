package sim

import (
	"errors"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/stickthruster/ecs"
	"go.uber.org/zap"
)

// ErrQuit is returned by Update once the player asks to quit.
var ErrQuit = errors.New("sim: quit requested")

type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Star is a fixed background point.
type Star struct {
	Pos cp.Vector
}

var StarComponent = ecs.NewComponentKind[Star]()

// Session owns one stick, the world holding stars and obstacles, and the
// score, and moves between menu, playing and game over.
type Session struct {
	cfg   Config
	state State
	score int
	input Input

	world     *ecs.World
	body      *PhysicsBody
	field     *ObstacleField
	scheduler *Scheduler

	rng *rand.Rand
	id  string
	log *zap.Logger
}

type Option func(*Session)

// WithRand makes spawns and the star field reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// NewSession returns a session sitting in the menu.
func NewSession(cfg Config, opts ...Option) *Session {
	s := &Session{
		cfg:   cfg,
		state: StateMenu,
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.body = NewPhysicsBody(cfg.Stick)
	s.body.Reset(s.center())
	s.world = ecs.NewWorld()
	s.field = NewObstacleField(s.world, s.rng, cfg.Obstacles.SpawnMargin, cfg.Obstacles.SpawnY)
	for range cfg.StarCount {
		pos := cp.Vector{X: s.rng.Float64() * cfg.Width, Y: s.rng.Float64() * cfg.Height}
		_ = ecs.Add(s.world, s.world.CreateEntity(), StarComponent, Star{Pos: pos})
	}
	s.scheduler = NewScheduler(
		ThrusterSystem{},
		ObstacleSystem{},
		CollisionSystem{},
		ScoreSystem{},
	)
	return s
}

// Update runs one tick. Quit is checked before anything else.
func (s *Session) Update(in Input) error {
	if in.Quit {
		return ErrQuit
	}
	s.input = in

	switch s.state {
	case StateMenu:
		if in.Start {
			s.Start()
		}
	case StatePlaying:
		s.scheduler.Update(s)
	case StateGameOver:
	}
	return nil
}

// Start begins a fresh round from the menu. It is a no-op in other states.
func (s *Session) Start() {
	if s.state != StateMenu {
		return
	}
	s.score = 0
	s.body.Reset(s.center())
	s.field.Clear()
	s.id = uuid.NewString()
	s.state = StatePlaying
	s.log.Info("session started", zap.String("session", s.id))
}

func (s *Session) end() {
	s.state = StateGameOver
	s.log.Info("session over",
		zap.String("session", s.id),
		zap.Int("score", s.score),
		zap.Int("obstacles", s.field.Len()),
	)
}

// SetConfig swaps tuning in place without resetting the round.
func (s *Session) SetConfig(cfg Config) {
	s.cfg = cfg
	s.body.Params = cfg.Stick
	s.field.SpawnMargin = cfg.Obstacles.SpawnMargin
	s.field.SpawnY = cfg.Obstacles.SpawnY
	s.log.Debug("tuning applied", zap.String("session", s.id))
}

func (s *Session) center() cp.Vector {
	return cp.Vector{X: s.cfg.Width / 2, Y: s.cfg.Height / 2}
}

func (s *Session) State() State { return s.state }
func (s *Session) Score() int { return s.score }
func (s *Session) Body() *PhysicsBody { return s.body }
func (s *Session) Field() *ObstacleField { return s.field }
func (s *Session) ID() string { return s.id }

// Stars returns the star positions. The field is fixed for the session's
// lifetime.
func (s *Session) Stars() []cp.Vector {
	out := make([]cp.Vector, 0, ecs.Count(s.world, StarComponent))
	for _, star := range ecs.All(s.world, StarComponent) {
		out = append(out, star.Pos)
	}
	return out
}
