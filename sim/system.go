package sim

// System updates a playing session once per tick.
type System interface {
	Update(s *Session)
}

// Scheduler runs systems in registration order.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (sc *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	sc.systems = append(sc.systems, system)
}

// Update stops early once a system ends the round.
func (sc *Scheduler) Update(s *Session) {
	for _, system := range sc.systems {
		if s.state != StatePlaying {
			return
		}
		system.Update(s)
	}
}

func (sc *Scheduler) Systems() []System {
	systems := make([]System, 0, len(sc.systems))
	return append(systems, sc.systems...)
}

// ThrusterSystem applies the held thrusters to the stick.
type ThrusterSystem struct{}

func (ThrusterSystem) Update(s *Session) {
	s.body.Update(s.input.Thrusters(), s.cfg.Width, s.cfg.Height)
}

// ObstacleSystem spawns, moves and prunes obstacles.
type ObstacleSystem struct{}

func (ObstacleSystem) Update(s *Session) {
	ob := s.cfg.Obstacles
	s.field.Tick(ob.SpawnInterval, ob.FallSpeed, s.cfg.Width)
	if ob.PruneMargin >= 0 {
		// Past this line an obstacle is out of reach of any clamped stick.
		s.field.Prune(s.cfg.Height + ob.Radius + s.cfg.HalfLength() + ob.PruneMargin)
	}
}

// CollisionSystem ends the round when the stick touches an obstacle.
type CollisionSystem struct{}

func (CollisionSystem) Update(s *Session) {
	if Collides(s.body, s.field.All(), s.cfg.HalfLength(), s.cfg.Obstacles.Radius) {
		s.end()
	}
}

// ScoreSystem awards one point per survived tick.
type ScoreSystem struct{}

func (ScoreSystem) Update(s *Session) {
	s.score++
}
