package ecs

type System interface {
	Update(w *World)
}

// Resetter is implemented by systems that cache per-world state, such as
// entity handles or trigger subscriptions.
type Resetter interface {
	Reset()
}

// Scheduler runs systems in registration order.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World) {
	if w == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w)
	}
}

// Reset clears cached state on every system that supports it. Call it
// before running the scheduler against a different world.
func (s *Scheduler) Reset() {
	for _, system := range s.systems {
		if r, ok := system.(Resetter); ok {
			r.Reset()
		}
	}
}

func (s *Scheduler) Len() int {
	return len(s.systems)
}
