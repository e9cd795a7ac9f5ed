package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type position struct{ X, Y float64 }

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			require.Equal(t, c.create, w.Len())

			if c.destroyIndex >= 0 {
				e := ents[c.destroyIndex]
				require.True(t, w.DestroyEntity(e))
				assert.False(t, w.IsAlive(e))
				assert.False(t, w.DestroyEntity(e), "double destroy")
				assert.Equal(t, c.create-1, w.Len())
			}
		})
	}
}

func TestWorldReusesIDsWithNewGeneration(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	require.True(t, w.DestroyEntity(a))

	b := w.CreateEntity()

	assert.Equal(t, a.ID, b.ID)
	assert.NotEqual(t, a.Gen, b.Gen)
	assert.True(t, w.IsAlive(b))
	assert.False(t, w.IsAlive(a))
	assert.False(t, w.IsAlive(Entity{}))
}

func TestComponents(t *testing.T) {
	w := NewWorld()
	pos := NewComponentKind[position]()
	name := NewComponentKind[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	require.NoError(t, Add(w, e1, pos, position{X: 1, Y: 2}))
	require.NoError(t, Add(w, e2, pos, position{X: 3, Y: 4}))
	require.NoError(t, Add(w, e1, name, "stick"))

	p, ok := Get(w, e1, pos)
	require.True(t, ok)
	p.X = 10
	p, _ = Get(w, e1, pos)
	assert.Equal(t, 10.0, p.X, "writes through Get are kept")

	assert.True(t, Has(w, e1, name))
	assert.False(t, Has(w, e2, name))
	assert.Equal(t, 2, Count(w, pos))

	assert.True(t, Remove(w, e1, name))
	assert.False(t, Remove(w, e1, name))

	require.True(t, w.DestroyEntity(e2))
	assert.Equal(t, 1, Count(w, pos), "destroy drops components")
	assert.ErrorIs(t, Add(w, e2, pos, position{}), ErrEntityNotAlive)
	assert.ErrorIs(t, Add(w, e1, ComponentKind[position]{}, position{}), ErrInvalidComponentKind)
}

func TestAllSurvivesDestroyDuringIteration(t *testing.T) {
	w := NewWorld()
	pos := NewComponentKind[position]()
	for i := 0; i < 6; i++ {
		require.NoError(t, Add(w, w.CreateEntity(), pos, position{Y: float64(i)}))
	}

	removed := DestroyWhere(w, pos, func(p *position) bool { return int(p.Y)%2 == 1 })

	assert.Equal(t, 3, removed)
	var ys []float64
	ForEach(w, pos, func(_ Entity, p *position) { ys = append(ys, p.Y) })
	assert.ElementsMatch(t, []float64{0, 2, 4}, ys)
}

func TestAllStopsEarly(t *testing.T) {
	w := NewWorld()
	pos := NewComponentKind[position]()
	for i := 0; i < 4; i++ {
		require.NoError(t, Add(w, w.CreateEntity(), pos, position{}))
	}

	seen := 0
	for range All(w, pos) {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestSparseSet(t *testing.T) {
	var s SparseSet
	s.Set(3, "c")
	s.Set(1, "a")
	s.Set(5, "e")
	s.Set(3, "cc")

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "cc", s.Get(3))
	assert.Nil(t, s.Get(2))

	assert.True(t, s.Remove(3))
	assert.False(t, s.Has(3))
	assert.Equal(t, "e", s.Get(5), "moved element still resolves")
	assert.ElementsMatch(t, []int{1, 5}, s.Entities())
}
