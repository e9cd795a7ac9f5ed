package ecs

// World owns entities and their component storages.
type World struct {
	entities entityStore
	stores   map[ComponentID]*SparseSet
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: map[ComponentID]*SparseSet{}}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity drops every component of e and frees its id. It reports
// false for a handle that is already dead.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, set := range w.stores {
		set.Remove(e.ID)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// Len is the number of live entities.
func (w *World) Len() int {
	return w.entities.alive
}

func (w *World) store(id ComponentID) *SparseSet {
	set, ok := w.stores[id]
	if !ok {
		set = &SparseSet{}
		w.stores[id] = set
	}
	return set
}
