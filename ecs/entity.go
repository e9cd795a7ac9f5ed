package ecs

import "strconv"

// Entity is a generational handle. A destroyed entity's ID is reused with a
// bumped Gen, so stale handles stop resolving.
type Entity struct {
	ID  int
	Gen int
}

func (e Entity) Valid() bool {
	return e.ID > 0
}

func (e Entity) String() string {
	return strconv.Itoa(e.ID) + "v" + strconv.Itoa(e.Gen)
}

// entityStore tracks entity generations and free ids.
type entityStore struct {
	nextID int
	gen    []int
	free   []int
	alive  int
}

func (s *entityStore) create() Entity {
	var id int
	if len(s.free) > 0 {
		id = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
	} else {
		s.nextID++
		id = s.nextID
		if id > len(s.gen) {
			s.gen = append(s.gen, 0)
		}
	}
	s.alive++
	return Entity{ID: id, Gen: s.gen[id-1]}
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	s.gen[e.ID-1]++
	s.free = append(s.free, e.ID)
	s.alive--
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	if e.ID <= 0 || e.ID > len(s.gen) {
		return false
	}
	return s.gen[e.ID-1] == e.Gen
}

// handle rebuilds the live handle for id.
func (s *entityStore) handle(id int) Entity {
	return Entity{ID: id, Gen: s.gen[id-1]}
}
