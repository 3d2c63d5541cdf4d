package ecs

// entityStore tracks entity generations and free ids.
type entityStore struct {
	gen  []generation
	live []bool
	free []entityID
}

func (s *entityStore) create() Entity {
	if s == nil {
		return 0
	}
	var id entityID
	if len(s.free) > 0 {
		id = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
	} else {
		s.gen = append(s.gen, 0)
		s.live = append(s.live, false)
		id = entityID(len(s.gen))
	}
	s.live[id-1] = true
	return makeEntity(id, s.gen[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.id() - 1
	s.gen[idx]++
	s.live[idx] = false
	s.free = append(s.free, e.id())
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	if s == nil || e.id() == 0 || int(e.id()) > len(s.gen) {
		return false
	}
	idx := e.id() - 1
	return s.live[idx] && s.gen[idx] == e.generation()
}

// current returns the live handle for a raw id.
func (s *entityStore) current(id int) (Entity, bool) {
	if s == nil || id <= 0 || id > len(s.gen) || !s.live[id-1] {
		return 0, false
	}
	return makeEntity(entityID(id), s.gen[id-1]), true
}

func (s *entityStore) all() []Entity {
	if s == nil {
		return nil
	}
	out := make([]Entity, 0, len(s.gen)-len(s.free))
	for i := range s.gen {
		if s.live[i] {
			out = append(out, makeEntity(entityID(i+1), s.gen[i]))
		}
	}
	return out
}
