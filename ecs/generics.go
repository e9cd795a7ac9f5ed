package ecs

import (
	"iter"
	"slices"
)

// Add stores a copy of value on e, replacing any previous one.
func Add[T any](w *World, e Entity, kind ComponentKind[T], value T) error {
	if !kind.Valid() {
		return ErrInvalidComponentKind
	}
	if !w.IsAlive(e) {
		return ErrEntityNotAlive
	}
	w.store(kind.ID()).Set(e.ID, &value)
	return nil
}

func Remove[T any](w *World, e Entity, kind ComponentKind[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.store(kind.ID()).Remove(e.ID)
}

func Has[T any](w *World, e Entity, kind ComponentKind[T]) bool {
	return w.IsAlive(e) && w.store(kind.ID()).Has(e.ID)
}

// Get returns a pointer into the storage; writes through it are kept.
func Get[T any](w *World, e Entity, kind ComponentKind[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	v, ok := w.store(kind.ID()).Get(e.ID).(*T)
	return v, ok
}

// Count is the number of entities carrying kind.
func Count[T any](w *World, kind ComponentKind[T]) int {
	return w.store(kind.ID()).Len()
}

// All iterates entities carrying kind over a snapshot of ids, so the body
// may destroy entities. Entities destroyed mid-iteration are skipped.
func All[T any](w *World, kind ComponentKind[T]) iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		set := w.store(kind.ID())
		for _, id := range slices.Clone(set.Entities()) {
			v, ok := set.Get(id).(*T)
			if !ok {
				continue
			}
			if !yield(w.entities.handle(id), v) {
				return
			}
		}
	}
}

func ForEach[T any](w *World, kind ComponentKind[T], fn func(e Entity, v *T)) {
	for e, v := range All(w, kind) {
		fn(e, v)
	}
}

// DestroyWhere destroys every entity carrying kind for which match is true
// and returns how many went.
func DestroyWhere[T any](w *World, kind ComponentKind[T], match func(v *T) bool) int {
	n := 0
	for e, v := range All(w, kind) {
		if match(v) && w.DestroyEntity(e) {
			n++
		}
	}
	return n
}
